package rope

import (
	"io"
	"iter"
	"strings"
)

// Rope is a persistent character sequence: a value wrapping one shared tree
// root. Operations return new ropes that share structure with their inputs;
// a rope held elsewhere never observes a change. The zero value is the
// empty rope.
//
// Two ropes are equal when their char sequences are equal, regardless of
// how their trees are shaped.
type Rope[C Char, L LockPolicy] struct {
	root *node[C, L]
}

// ByteRope is the common single-goroutine byte instantiation.
type ByteRope = Rope[byte, NullLock]

// SharedByteRope is the byte instantiation safe to share across goroutines.
type SharedByteRope = Rope[byte, SyncLock]

func newRope[C Char, L LockPolicy](root *node[C, L]) Rope[C, L] {
	retain(root)
	return Rope[C, L]{root: root}
}

// New returns the empty rope.
func New[C Char, L LockPolicy]() Rope[C, L] {
	return Rope[C, L]{}
}

// FromString builds a rope from the bytes of s, each widened to a C.
func FromString[C Char, L LockPolicy](s string) Rope[C, L] {
	if len(s) == 0 {
		return Rope[C, L]{}
	}
	str := make([]C, len(s))
	for i := 0; i < len(s); i++ {
		str[i] = C(s[i])
	}
	return newRope(leafNode[C, L](str))
}

// Bytes builds a ByteRope from s.
func Bytes(s string) ByteRope {
	return FromString[byte, NullLock](s)
}

// FromSlice builds a rope from a copy of str.
func FromSlice[C Char, L LockPolicy](str []C) Rope[C, L] {
	if len(str) == 0 {
		return Rope[C, L]{}
	}
	leaf := make([]C, len(str))
	copy(leaf, str)
	return newRope(leafNode[C, L](leaf))
}

// FromSeq builds a rope by draining a char sequence.
func FromSeq[C Char, L LockPolicy](seq iter.Seq[C]) Rope[C, L] {
	var str []C
	for c := range seq {
		str = append(str, c)
	}
	if len(str) == 0 {
		return Rope[C, L]{}
	}
	return newRope(leafNode[C, L](str))
}

// Repeat returns times copies of r laid end to end. The result references
// r's tree once; its memory cost is one node regardless of times.
func Repeat[C Char, L LockPolicy](times int, r Rope[C, L]) Rope[C, L] {
	return newRope(repeatNode(times, r.root))
}

// RepeatChar returns times copies of c. Large runs are built as a Repeat
// over a single Chunk-sized leaf plus a remainder leaf, so leaf memory stays
// bounded no matter how large times is.
func RepeatChar[C Char, L LockPolicy](times int, c C) Rope[C, L] {
	if times < 0 {
		panic(errNegativeArg)
	}
	var root *node[C, L]
	if full := times / Chunk; full > 0 {
		tile := make([]C, Chunk)
		for i := range tile {
			tile[i] = c
		}
		root = repeatNode(full, leafNode[C, L](tile))
	}
	if rest := times % Chunk; rest > 0 {
		tail := make([]C, rest)
		for i := range tail {
			tail[i] = c
		}
		root = concatNodes(root, leafNode[C, L](tail))
	}
	return newRope(root)
}

// Len returns the number of chars in the rope.
func (r Rope[C, L]) Len() int {
	return nodeLen(r.root)
}

// Empty reports whether the rope has no chars.
func (r Rope[C, L]) Empty() bool {
	return r.root == nil
}

// Depth returns the length of the longest root-to-leaf path through Concat
// nodes. The empty rope and single leaves have depth 1.
func (r Rope[C, L]) Depth() int {
	return nodeDepth(r.root)
}

// Clear resets the receiver to the empty rope. Other ropes sharing the old
// tree are unaffected.
func (r *Rope[C, L]) Clear() {
	r.root = nil
}

// Swap exchanges the contents of two ropes.
func (r *Rope[C, L]) Swap(other *Rope[C, L]) {
	r.root, other.root = other.root, r.root
}

// At returns the char at offset i.
func (r Rope[C, L]) At(i int) C {
	return r.root.get(i)
}

// Front returns the first char. The rope must not be empty.
func (r Rope[C, L]) Front() C {
	if r.root == nil {
		panic(errEmptyRope)
	}
	return r.root.get(0)
}

// Back returns the last char. The rope must not be empty.
func (r Rope[C, L]) Back() C {
	if r.root == nil {
		panic(errEmptyRope)
	}
	return r.root.get(r.root.length - 1)
}

// Append returns the concatenation of r and rhs. Either side being empty
// yields a rope sharing the other side's tree; short results fold into one
// leaf; everything else is a single new Concat node over both trees.
func (r Rope[C, L]) Append(rhs Rope[C, L]) Rope[C, L] {
	return newRope(concatNodes(r.root, rhs.root))
}

// AppendChar returns r with a single char appended. Appending one char at a
// time does not scale for building large ropes; the Chunk folding keeps the
// tree from degenerating but each call still copies up to Chunk chars.
func (r Rope[C, L]) AppendChar(c C) Rope[C, L] {
	return newRope(concatNodes(r.root, leafNode[C, L]([]C{c})))
}

// AppendString returns r with the chars of s appended.
func (r Rope[C, L]) AppendString(s string) Rope[C, L] {
	return r.Append(FromString[C, L](s))
}

// Concat returns the concatenation of a and b.
func Concat[C Char, L LockPolicy](a, b Rope[C, L]) Rope[C, L] {
	return a.Append(b)
}

// Push appends rhs in place, transferring the receiver's hold on its old
// tree to the new one. Built-up intermediates therefore carry no stale
// references, and a later Release dismantles the whole chain. Push assumes
// linear ownership: copies of the receiver made before a Push may find
// their tree recycled once the last hold moves on. For persistent sharing
// use Append, which never disturbs existing holds.
func (r *Rope[C, L]) Push(rhs Rope[C, L]) {
	old := r.root
	root := concatNodes(old, rhs.root)
	retain(root)
	releaseNode(old)
	r.root = root
}

// PushChar appends one char in place, with Push's ownership contract.
func (r *Rope[C, L]) PushChar(c C) {
	old := r.root
	root := concatNodes(old, leafNode[C, L]([]C{c}))
	retain(root)
	releaseNode(old)
	r.root = root
}

// PushString appends the chars of s in place, with Push's ownership
// contract.
func (r *Rope[C, L]) PushString(s string) {
	tmp := FromString[C, L](s)
	r.Push(tmp)
	tmp.Release()
}

// Substr returns the window of size chars starting at start, sharing the
// receiver's tree. The window is not validated against the rope's length;
// reading past the underlying sequence panics at access time.
func (r Rope[C, L]) Substr(start, size int) Rope[C, L] {
	if start < 0 || size < 0 {
		panic(errNegativeArg)
	}
	return newRope(subrangeNode(start, start+size, r.root))
}

// Materialize returns the rope's chars as a fresh contiguous slice.
func (r Rope[C, L]) Materialize() []C {
	return r.root.materialize()
}

// String renders the rope as a string. Byte ropes yield their chars
// verbatim and rune ropes their UTF-8 encoding; other char types are
// written rune by rune.
func (r Rope[C, L]) String() string {
	m := r.Materialize()
	switch v := any(m).(type) {
	case []byte:
		return string(v)
	case []rune:
		return string(v)
	}
	var b strings.Builder
	b.Grow(len(m))
	for _, c := range m {
		b.WriteRune(rune(c))
	}
	return b.String()
}

// WriteTo writes the rope's textual form, as defined by String, to w.
func (r Rope[C, L]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}

// Equal reports whether r and rhs hold the same char sequence.
func (r Rope[C, L]) Equal(rhs Rope[C, L]) bool {
	return r.Compare(rhs) == 0
}

// Less reports whether r sorts lexicographically before rhs.
func (r Rope[C, L]) Less(rhs Rope[C, L]) bool {
	return r.Compare(rhs) < 0
}

// EqualSlice reports whether the rope's chars equal str.
func (r Rope[C, L]) EqualSlice(str []C) bool {
	if r.Len() != len(str) {
		return false
	}
	i := 0
	for it := r.Begin(); it.Valid(); it.Next() {
		if it.At() != str[i] {
			return false
		}
		i++
	}
	return true
}

// EqualString reports whether the rope's chars equal the bytes of s, each
// widened to a C.
func (r Rope[C, L]) EqualString(s string) bool {
	if r.Len() != len(s) {
		return false
	}
	i := 0
	for it := r.Begin(); it.Valid(); it.Next() {
		if it.At() != C(s[i]) {
			return false
		}
		i++
	}
	return true
}

// Release drops the receiver's hold on its tree and recycles every node it
// solely owned, then resets the receiver to the empty rope. Optional: ropes
// that are simply dropped are reclaimed by the garbage collector. Release
// must only be called on the last live copy of a rope; releasing while
// copies, derived ropes, or iterators still reference the tree is a
// programmer error. Iterators in particular borrow the tree without taking
// a count, so a live iterator gives Release no way to notice it.
func (r *Rope[C, L]) Release() {
	releaseNode(r.root)
	r.root = nil
}
