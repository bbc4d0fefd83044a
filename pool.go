package rope

import (
	"reflect"
	"sync"
)

// Node allocation runs through a per-instantiation sync.Pool so that
// explicitly released trees can hand their nodes back instead of churning
// the garbage collector. The pools are an optimization only: ropes that are
// never released are collected normally.
var nodePools sync.Map // reflect.Type -> *sync.Pool

func poolOf[C Char, L LockPolicy]() *sync.Pool {
	key := reflect.TypeFor[node[C, L]]()
	if p, ok := nodePools.Load(key); ok {
		return p.(*sync.Pool)
	}
	p, _ := nodePools.LoadOrStore(key, &sync.Pool{
		New: func() any { return new(node[C, L]) },
	})
	return p.(*sync.Pool)
}

func alloc[C Char, L LockPolicy]() *node[C, L] {
	return poolOf[C, L]().Get().(*node[C, L])
}

// recycle scrubs a node whose last reference is gone and returns it to the
// pool. Clearing the references lets child payloads be collected even while
// the node itself sits in the pool.
func recycle[C Char, L LockPolicy](n *node[C, L]) {
	n.refs.reset()
	n.kind = kindLeaf
	n.length = 0
	n.depth = 0
	n.str = nil
	n.left, n.right = nil, nil
	n.times = 0
	n.seq = nil
	n.start, n.end = 0, 0
	n.base = nil
	poolOf[C, L]().Put(n)
}

// releaseNode drops one reference to n and, if that was the last one,
// dismantles the subtree it solely owned. The work list is an explicit
// stack: each popped node hands its children's references back, pushing any
// child that thereby becomes ownerless, and is then recycled. No destructor
// ever rides the call stack down a chain, so a rope built from a million
// concatenations unwinds in a flat loop with O(depth) auxiliary slots.
func releaseNode[C Char, L LockPolicy](n *node[C, L]) {
	if n == nil {
		return
	}
	if n.refs.release() > 0 {
		return
	}
	list := make([]*node[C, L], 0, max(8, n.depth))
	list = append(list, n)
	for len(list) > 0 {
		cur := list[len(list)-1]
		list = list[:len(list)-1]
		switch cur.kind {
		case kindConcat:
			if cur.left.refs.release() == 0 {
				list = append(list, cur.left)
			}
			if cur.right.refs.release() == 0 {
				list = append(list, cur.right)
			}
		case kindRepeat:
			if cur.seq.refs.release() == 0 {
				list = append(list, cur.seq)
			}
		case kindSubrange:
			if cur.base.refs.release() == 0 {
				list = append(list, cur.base)
			}
		}
		recycle(cur)
	}
}
