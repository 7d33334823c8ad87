package Trees

import (
	"fmt"
	"reflect"
	"strings"
)

// A node in the ReducerTree.
// The zero value is meaningless: reduced is undefined until the node is
// linked somewhere and recomputed.
type node[K, V, R any] struct {
	priority uint64
	key      K
	value    V
	reduced  R
	l, r     *node[K, V, R]
}

// recompute refreshes n.reduced from n's own pair and the cached reductions
// of its children. Must be called whenever a child pointer of n changes.
// Absent children are omitted from the combination, not combined in as a
// zero value.
// Time: O(1)
func (u *ReducerTree[K, V, R]) recompute(n *node[K, V, R]) {
	n.reduced = u.lift(n.key, n.value)
	if n.l != nil {
		n.reduced = u.combine(n.l.reduced, n.reduced)
	}
	if n.r != nil {
		n.reduced = u.combine(n.reduced, n.r.reduced)
	}
}

// insert places the fresh childless node n into the subtree rooted at root,
// returning the new root of the subtree. root may be nil. n.key must not be
// present in root's subtree. Recursive.
// Ownership of root and n transfers in, ownership of the result transfers
// out; root must not be used by the caller afterwards.
// Time: O(D)
func (u *ReducerTree[K, V, R]) insert(root, n *node[K, V, R]) *node[K, V, R] {
	if root == nil {
		u.recompute(n)
		return n
	}
	if n.priority < root.priority { //root stays the root.
		if n.key < root.key {
			root.l = u.insert(root.l, n)
		} else {
			root.r = u.insert(root.r, n)
		}
		u.recompute(root)
		return root
	}
	//n becomes the root of this subtree; equal priorities also land here so
	//the tie policy stays non-strict, matching merge and validate.
	n.l, n.r = u.split(root, n.key)
	u.recompute(n)
	return n
}

// split partitions the subtree rooted at n into two trees, the first holding
// every entry with key < the pivot and the second every entry with key >
// the pivot. n may be nil. The pivot must not be present; hitting it means
// the caller broke insert's no-duplicate precondition, which is a bug in
// this package. Recursive.
// Time: O(D)
func (u *ReducerTree[K, V, R]) split(n *node[K, V, R], key K) (*node[K, V, R], *node[K, V, R]) {
	if n == nil {
		return nil, nil
	}
	if key < n.key {
		l, r := u.split(n.l, key)
		n.l = r
		u.recompute(n)
		return l, n
	}
	if n.key < key {
		l, r := u.split(n.r, key)
		n.r = l
		u.recompute(n)
		return n, r
	}
	panic(CorruptError{fmt.Sprintf("split pivot %v is present", key)})
}

// merge concatenates two trees where every key in a is strictly less than
// every key in b, either of which may be nil. Both are heap ordered, so the
// higher priority root wins; ties go to b so the result is deterministic for
// a fixed pair. Recursive.
// Time: O(Da+Db)
func (u *ReducerTree[K, V, R]) merge(a, b *node[K, V, R]) *node[K, V, R] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.priority > b.priority {
		a.r = u.merge(a.r, b)
		u.recompute(a)
		return a
	}
	b.l = u.merge(a, b.l)
	u.recompute(b)
	return b
}

// erase removes the entry for key from the subtree rooted at n, if present,
// returning the new subtree root and whether an entry was removed. The
// removed node is replaced by the merge of its children. Recursive.
// Time: O(D)
func (u *ReducerTree[K, V, R]) erase(n *node[K, V, R], key K) (*node[K, V, R], bool) {
	if n == nil {
		return nil, false
	}
	var erased bool
	if key < n.key {
		n.l, erased = u.erase(n.l, key)
	} else if n.key < key {
		n.r, erased = u.erase(n.r, key)
	} else {
		return u.merge(n.l, n.r), true
	}
	if erased {
		u.recompute(n)
	}
	return n, erased
}

// prefixLt reduces every entry below n with key strictly less than key. The
// bool is false when no entry qualifies, so a zero R is never combined in.
// Exactly one child is recursed into per level: a left turn discards the
// right subtree outright, a right turn takes the left subtree's cached
// reduction. The right recursion can't be replaced by the cached value even
// when key is known larger than everything seen so far, because the boundary
// may still sit inside that subtree. Recursive.
// Time: O(D)
func (u *ReducerTree[K, V, R]) prefixLt(n *node[K, V, R], key K) (R, bool) {
	if n == nil {
		var zero R
		return zero, false
	}
	if key < n.key {
		return u.prefixLt(n.l, key)
	}
	if key == n.key { //the exact match itself is excluded.
		if n.l == nil {
			var zero R
			return zero, false
		}
		return n.l.reduced, true
	}
	acc := u.lift(n.key, n.value)
	if n.l != nil {
		acc = u.combine(n.l.reduced, acc)
	}
	if right, ok := u.prefixLt(n.r, key); ok {
		acc = u.combine(acc, right)
	}
	return acc, true
}

// validate checks the subtree rooted at n against open bounds inherited from
// ancestors: every key strictly between lo and hi (nil bound means
// unbounded), no child with a priority above its parent's, and every cached
// reduction equal to a fresh combination of the node's pair with its
// children's caches. Returns the subtree size for the caller to cross-check.
// Panics with CorruptError on any violation. Recursive.
// Time: O(n)
func (u *ReducerTree[K, V, R]) validate(n *node[K, V, R], lo, hi *K) uint {
	if n == nil {
		return 0
	}
	if lo != nil && !(*lo < n.key) {
		panic(CorruptError{fmt.Sprintf("key %v not above lower bound %v", n.key, *lo)})
	}
	if hi != nil && !(n.key < *hi) {
		panic(CorruptError{fmt.Sprintf("key %v not below upper bound %v", n.key, *hi)})
	}
	sz := uint(1)
	if n.l != nil {
		if n.l.priority > n.priority {
			panic(CorruptError{fmt.Sprintf("left child of %v outranks it", n.key)})
		}
		sz += u.validate(n.l, lo, &n.key)
	}
	if n.r != nil {
		if n.r.priority > n.priority {
			panic(CorruptError{fmt.Sprintf("right child of %v outranks it", n.key)})
		}
		sz += u.validate(n.r, &n.key, hi)
	}
	want := u.lift(n.key, n.value)
	if n.l != nil {
		want = u.combine(n.l.reduced, want)
	}
	if n.r != nil {
		want = u.combine(want, n.r.reduced)
	}
	if !reflect.DeepEqual(want, n.reduced) {
		panic(CorruptError{fmt.Sprintf("node %v caches reduction %v, want %v", n.key, n.reduced, want)})
	}
	return sz
}

// forAll applies f to every entry under n in ascending key order, stopping
// at the first false. Recursive.
// Time: O(n)
func forAll[K, V, R any](n *node[K, V, R], f func(K, V, R) bool) bool {
	if n == nil {
		return true
	}
	if !forAll(n.l, f) {
		return false
	}
	if !f(n.key, n.value, n.reduced) {
		return false
	}
	return forAll(n.r, f)
}

// str renders n as (key value priority reduced left right) with _ for a nil
// child. Debugging only; the format is not a compatibility surface.
func (n *node[K, V, R]) str(sb *strings.Builder) {
	fmt.Fprintf(sb, "(%v %v %d %v ", n.key, n.value, n.priority, n.reduced)
	if n.l == nil {
		sb.WriteByte('_')
	} else {
		n.l.str(sb)
	}
	sb.WriteByte(' ')
	if n.r == nil {
		sb.WriteByte('_')
	} else {
		n.r.str(sb)
	}
	sb.WriteByte(')')
}
