package rope

import "sync/atomic"

// refCount counts references to a node. A node is referenced once by each
// parent node constructed over it, once for each rope constructed with it
// as root, and once by each ReversibleRope memo that caches it. Counts are
// only ever decremented by Release and by the Push family, which moves the
// receiver's hold to the new root; ropes that are simply dropped leave their
// counts behind for the garbage collector, which is always safe.
//
// All updates go through acquire and release so the lock policy is applied
// in exactly one place.
type refCount[L LockPolicy] struct {
	n int64
}

// acquire increments the counter and returns the new value.
func (rc *refCount[L]) acquire() int64 {
	if synchronized[L]() {
		return atomic.AddInt64(&rc.n, 1)
	}
	rc.n++
	return rc.n
}

// release decrements the counter and returns the new value. A release with
// no matching acquire is a programmer error.
func (rc *refCount[L]) release() int64 {
	if synchronized[L]() {
		n := atomic.AddInt64(&rc.n, -1)
		if n < 0 {
			panic(errRefUnderflow)
		}
		return n
	}
	if rc.n == 0 {
		panic(errRefUnderflow)
	}
	rc.n--
	return rc.n
}

// unique reports whether exactly one reference remains.
func (rc *refCount[L]) unique() bool {
	if synchronized[L]() {
		return atomic.LoadInt64(&rc.n) == 1
	}
	return rc.n == 1
}

// count returns the current reference count.
func (rc *refCount[L]) count() int64 {
	if synchronized[L]() {
		return atomic.LoadInt64(&rc.n)
	}
	return rc.n
}

// reset clears the counter on a node about to be recycled.
func (rc *refCount[L]) reset() {
	if synchronized[L]() {
		atomic.StoreInt64(&rc.n, 0)
		return
	}
	rc.n = 0
}
