package rope

// Find returns an iterator at the first occurrence of c, or End when c does
// not occur. Naive forward scan.
func (r Rope[C, L]) Find(c C) Iterator[C, L] {
	return r.FindFrom(c, r.Begin())
}

// FindFrom scans forward from the given iterator for the first char equal
// to c. The argument is not modified.
func (r Rope[C, L]) FindFrom(c C, from Iterator[C, L]) Iterator[C, L] {
	it := from.Clone()
	for it.Valid() && it.At() != c {
		it.Next()
	}
	return it
}

// FindSeq returns an iterator at the first occurrence of needle, or End
// when it does not occur. Each candidate position runs a parallel cursor
// over the needle; a mismatch restarts from the next position, so a
// recurring needle prefix cannot skip a match. O(n·m) worst case. An empty
// needle matches at the beginning.
func (r Rope[C, L]) FindSeq(needle []C) Iterator[C, L] {
	if len(needle) == 0 {
		return r.Begin()
	}
	for it := r.Begin(); it.Valid(); it.Next() {
		if it.At() != needle[0] {
			continue
		}
		probe := it.Clone()
		matched := 0
		for matched < len(needle) && probe.Valid() && probe.At() == needle[matched] {
			matched++
			probe.Next()
		}
		if matched == len(needle) {
			return it
		}
	}
	return r.End()
}

// FindString is FindSeq over the bytes of s, each widened to a C.
func (r Rope[C, L]) FindString(s string) Iterator[C, L] {
	needle := make([]C, len(s))
	for i := 0; i < len(s); i++ {
		needle[i] = C(s[i])
	}
	return r.FindSeq(needle)
}
