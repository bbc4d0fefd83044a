// rope-bench is a benchmark and stress test for the rope library. It folds
// a million concatenations, tears the chain down with Release, walks huge
// repetitions, and measures comparison over shared trees.
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Wang-Yuwei/rope"
)

const (
	deepLinks  = 1_000_000
	hugeRepeat = 100_000_000
	sharedBody = 1_000_000
)

type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		return fmt.Sprintf("%-40s %12v  (%s ops, %s ops/sec) %s",
			r.Name, r.Duration.Round(time.Millisecond),
			humanize.Comma(int64(r.Ops)), humanize.CommafWithDigits(opsPerSec, 0), r.Extra)
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Millisecond), r.Extra)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Millisecond))
}

func timed(name string, ops int, fn func() string) BenchResult {
	start := time.Now()
	extra := fn()
	return BenchResult{Name: name, Duration: time.Since(start), Ops: ops, Extra: extra}
}

func main() {
	fmt.Println("Rope Benchmark and Stress Test")
	fmt.Println("==============================")
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Println()

	var results []BenchResult
	run := func(r BenchResult) {
		fmt.Println(r)
		results = append(results, r)
	}

	var deep rope.ByteRope
	run(timed("build deep concat chain", deepLinks, func() string {
		deep = rope.Bytes("x")
		for i := 1; i < deepLinks; i++ {
			deep.PushChar('x')
		}
		return fmt.Sprintf("len=%s depth=%s",
			humanize.Comma(int64(deep.Len())), humanize.Comma(int64(deep.Depth())))
	}))

	run(timed("random access in deep chain", 1000, func() string {
		step := deep.Len() / 1000
		for i := 0; i < 1000; i++ {
			_ = deep.At(i * step)
		}
		return ""
	}))

	run(timed("iterate deep chain", deep.Len(), func() string {
		count := 0
		for it := deep.Begin(); it.Valid(); it.Next() {
			count++
		}
		return fmt.Sprintf("visited %s", humanize.Comma(int64(count)))
	}))

	run(timed("substring of deep chain", 1, func() string {
		sub := deep.Substr(deepLinks/2, 3)
		defer sub.Release()
		return sub.String()
	}))

	run(timed("release deep chain", deepLinks, func() string {
		deep.Release()
		return ""
	}))

	var huge rope.ByteRope
	run(timed("build huge repetition", 1, func() string {
		huge = rope.RepeatChar[byte, rope.NullLock](hugeRepeat, 'a')
		return fmt.Sprintf("len=%s in O(1) nodes", humanize.Comma(int64(huge.Len())))
	}))

	run(timed("random access in huge repetition", 1000, func() string {
		step := huge.Len() / 1000
		for i := 0; i < 1000; i++ {
			_ = huge.At(i * step)
		}
		return ""
	}))

	run(timed("compare ropes sharing a subtree", 1, func() string {
		shared := rope.Repeat(sharedBody/8, rope.Bytes("sharing!"))
		l := rope.Bytes("x").Append(shared).Append(rope.Bytes("a"))
		r := rope.Bytes("x").Append(shared).Append(rope.Bytes("b"))
		return fmt.Sprintf("sign=%d over %s shared chars",
			l.Compare(r), humanize.Comma(int64(shared.Len())))
	}))

	mem := func() string {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return humanize.IBytes(ms.HeapAlloc)
	}
	fmt.Println()
	fmt.Printf("heap in use: %s\n", mem())
	fmt.Printf("ran %d benchmarks\n", len(results))
}
