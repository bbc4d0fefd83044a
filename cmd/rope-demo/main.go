// rope-demo exercises the rope library from the command line: the classic
// reverse demo, large repetitions, substring search, and decimal parsing.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Wang-Yuwei/rope"
)

var rootCmd = &cobra.Command{
	Use:   "rope-demo",
	Short: "demo driver for the rope library",
}

func bailf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

var reverseCmd = &cobra.Command{
	Use:   "reverse [text]",
	Short: "print text followed by its reverse",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text := "This is a string"
		if len(args) == 1 {
			text = args[0]
		}
		r := rope.ReversibleBytes(text)
		out := r.Append(rope.Bytes(" ")).Append(r.Reverse().Rope)
		fmt.Println(out.String())
	},
}

var repeatCmd = &cobra.Command{
	Use:   "repeat <count> <text>",
	Short: "build count copies of text and report the rope's shape",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		count, err := strconv.Atoi(args[0])
		if err != nil || count < 0 {
			bailf("repeat: bad count %q", args[0])
		}
		var r rope.ByteRope
		if len(args[1]) == 1 {
			r = rope.RepeatChar[byte, rope.NullLock](count, args[1][0])
		} else {
			r = rope.Repeat(count, rope.Bytes(args[1]))
		}
		fmt.Printf("length %d, tree depth %d\n", r.Len(), r.Depth())
		if r.Len() <= 200 {
			fmt.Println(r.String())
		}
	},
}

var findCmd = &cobra.Command{
	Use:   "find <haystack> <needle>",
	Short: "locate needle in haystack, highlighting the match",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		haystack, needle := args[0], args[1]
		r := rope.Bytes(haystack)
		it := r.FindString(needle)
		if !it.Valid() {
			color.Red("not found")
			os.Exit(1)
		}
		at := it.Index()
		fmt.Printf("found at index %d: %s%s%s\n",
			at,
			haystack[:at],
			color.GreenString("%s", haystack[at:at+len(needle)]),
			haystack[at+len(needle):])
	},
}

var decimalCmd = &cobra.Command{
	Use:   "decimal <text>",
	Short: "parse a leading base-10 number from text",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(rope.AsDecimal[int64](rope.Bytes(args[0])))
	},
}

func main() {
	rootCmd.AddCommand(reverseCmd, repeatCmd, findCmd, decimalCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
