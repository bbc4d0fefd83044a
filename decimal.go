package rope

// Integer constrains the result type of AsDecimal.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// AsDecimal reads the rope as a base-10 number: an optional leading '-'
// followed by digits, accumulated into T. Reading stops at the first
// non-digit char or at end; it never fails, and the empty rope yields zero.
// Negation of an unsigned T wraps, as unsigned negation does in Go.
func AsDecimal[T Integer, C Char, L LockPolicy](r Rope[C, L]) T {
	var result T
	it := r.Begin()
	if !it.Valid() {
		return 0
	}
	negate := it.At() == C('-')
	if negate {
		it.Next()
	}
	for it.Valid() {
		c := it.At()
		if c < C('0') || c > C('9') {
			break
		}
		result = result*10 + T(c-C('0'))
		it.Next()
	}
	if negate {
		result = -result
	}
	return result
}
