package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseDemoSentence(t *testing.T) {
	test := Bytes("This is a string")
	r := ReversibleBytes("This is a string")

	out := test.Append(Bytes(" ")).Append(r.Reverse().Rope)

	assert.Equal(t, "This is a string gnirts a si sihT", out.String())
}

func TestReverseValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single", "a", "a"},
		{"word", "hello", "olleh"},
		{"palindrome", "racecar", "racecar"},
		{"long", strings.Repeat("abcdef", 50), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.want
			if want == "" && tt.in != "" {
				b := []byte(tt.in)
				for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
					b[i], b[j] = b[j], b[i]
				}
				want = string(b)
			}
			got := ReversibleBytes(tt.in).Reverse()
			assert.Equal(t, want, got.String())
		})
	}
}

func TestReverseInvolution(t *testing.T) {
	r := Reversible(Bytes("some structure to share").Append(Bytes(strings.Repeat("!", Chunk))))

	back := r.Reverse().Reverse()

	assert.True(t, back.Equal(r.Rope))
	assert.Same(t, r.root, back.root, "reversing twice shares the original root")
}

func TestReverseMemoized(t *testing.T) {
	r := ReversibleBytes("memoize me, I am long enough to matter")

	first := r.Reverse()
	second := r.Reverse()

	assert.Same(t, first.root, second.root, "the reverse window is built once")
}

func TestReverseIsWindowNotCopy(t *testing.T) {
	base := Bytes(strings.Repeat("share", 40))
	r := Reversible(base)

	rev := r.Reverse()

	require.NotNil(t, rev.root)
	assert.Equal(t, kindSubrange, rev.root.kind)
	assert.Same(t, base.root, rev.root.base)
	assert.Equal(t, base.Len(), rev.root.start)
	assert.Equal(t, 0, rev.root.end)
}

func TestReverseIteration(t *testing.T) {
	r := ReversibleBytes("abcdef")

	var got []byte
	for it := r.RBegin(); it.Valid(); it.Next() {
		got = append(got, it.At())
	}
	assert.Equal(t, "fedcba", string(got))

	var ranged []byte
	for c := range r.Reversed() {
		ranged = append(ranged, c)
	}
	assert.Equal(t, "fedcba", string(ranged))
}

func TestReverseEmpty(t *testing.T) {
	r := NewReversible[byte, NullLock]()
	rev := r.Reverse()
	assert.True(t, rev.Empty())
	assert.True(t, rev.Reverse().Empty())
}

// Releasing a reversed pair must drain every hold Reverse took: the memo
// on each side as well as the rope holds, so both the original tree and
// the cached window come all the way back to zero.
func TestReversibleRelease(t *testing.T) {
	r := Reversible(Bytes(strings.Repeat("ab", Chunk)))
	rev := r.Reverse()

	leaf := r.root
	window := rev.root
	require.Equal(t, kindSubrange, window.kind)
	// leaf: r's rope hold + the window's base edge + rev's memo.
	require.Equal(t, int64(3), leaf.refs.count())
	// window: r's memo + rev's rope hold.
	require.Equal(t, int64(2), window.refs.count())

	rev.Release()
	assert.Equal(t, int64(2), leaf.refs.count())
	assert.Equal(t, int64(1), window.refs.count(), "r's memo keeps the window cached")
	assert.Same(t, window, r.memo.load())

	r.Release()
	assert.Equal(t, int64(0), leaf.refs.count(), "every hold drained, tree recycled")
	assert.Equal(t, int64(0), window.refs.count())
	assert.True(t, r.Empty())
}

func TestReversibleReleaseWithoutReverse(t *testing.T) {
	r := Reversible(Bytes(strings.Repeat("cd", Chunk)))
	leaf := r.root

	r.Release()

	assert.True(t, r.Empty())
	assert.Equal(t, int64(0), leaf.refs.count())
}

func TestReversibleSharedPolicy(t *testing.T) {
	r := Reversible(FromString[byte, SyncLock]("concurrent reverse"))
	done := make(chan string, 4)
	for i := 0; i < 4; i++ {
		go func() { done <- r.Reverse().String() }()
	}
	for i := 0; i < 4; i++ {
		assert.Equal(t, "esrever tnerrucnoc", <-done)
	}
}
