package Trees

import (
	"math/rand"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// ReducerTree is an ordered map implemented as a treap whose every subtree
// caches the reduction of its entries under the lift/combine pair given at
// construction. Keys and values are immutable once inserted: inserting an
// existing key is a no-op, there is no way to replace a value in place.
// This struct holds the root, the element count, and its own source of
// priorities; no state is shared between instances.
// The worst case height is O(n) with vanishing probability; the expected
// height, and therefore the cost of every point operation, is O(log n).
// ReducerTree shouldn't be created directly using struct literal.
type ReducerTree[K constraints.Ordered, V, R any] struct {
	root    *node[K, V, R]
	size    uint
	rg      *rand.Rand //private priority stream, drawn from once per successful Insert.
	lift    Lift[K, V, R]
	combine Combine[R]
}

var _ Map[int, int, int] = (*ReducerTree[int, int, int])(nil)

// New returns an empty ReducerTree over the given reduction. combine must be
// associative and its left-to-right application order equals key order, so
// it doesn't have to be commutative. The priority stream is time seeded; use
// NewSeeded for reproducible shapes.
func New[K constraints.Ordered, V, R any](lift Lift[K, V, R], combine Combine[R]) *ReducerTree[K, V, R] {
	return NewSeeded(lift, combine, time.Now().UnixNano())
}

// NewSeeded is New with a caller chosen seed for the priority stream. Two
// trees with the same seed fed the same insertions take the same shape.
func NewSeeded[K constraints.Ordered, V, R any](lift Lift[K, V, R], combine Combine[R], seed int64) *ReducerTree[K, V, R] {
	return &ReducerTree[K, V, R]{rg: rand.New(rand.NewSource(seed)), lift: lift, combine: combine}
}

// Insert [Map.Insert]. The new node's priority is drawn fresh from the
// tree's stream; placement is the split based treap insertion, so the shape
// afterwards is exactly the treap shape for the priorities drawn so far.
// Time: O(D)
func (u *ReducerTree[K, V, R]) Insert(key K, value V) bool {
	if u.Has(key) {
		return false
	}
	u.root = u.insert(u.root, &node[K, V, R]{priority: u.rg.Uint64(), key: key, value: value})
	u.size++
	return true
}

// Find [Map.Find]
// Time: O(D); Space: O(1)
func (u *ReducerTree[K, V, R]) Find(key K) (V, R, bool) {
	for cur := u.root; cur != nil; {
		if key < cur.key {
			cur = cur.l
		} else if cur.key < key {
			cur = cur.r
		} else {
			return cur.value, cur.reduced, true
		}
	}
	var v V
	var r R
	return v, r, false
}

// Has [Map.Has]
// Time: O(D); Space: O(1)
func (u *ReducerTree[K, V, R]) Has(key K) bool {
	for cur := u.root; cur != nil; {
		if key < cur.key {
			cur = cur.l
		} else if cur.key < key {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Erase [Map.Erase]. The removed node is replaced by the merge of its two
// children.
// Time: O(D)
func (u *ReducerTree[K, V, R]) Erase(key K) bool {
	root, erased := u.erase(u.root, key)
	u.root = root
	if erased {
		u.size--
	}
	return erased
}

// PrefixReduce [Map.PrefixReduce]. Exactly one subtree is descended into per
// level; everything strictly below the boundary contributes its cached
// reduction.
// Time: O(D)
func (u *ReducerTree[K, V, R]) PrefixReduce(key K) R {
	r, _ := u.prefixLt(u.root, key)
	return r
}

// Reduce [Map.Reduce]
// Time: O(1); Space: O(1)
func (u *ReducerTree[K, V, R]) Reduce() (R, bool) {
	if u.root == nil {
		var zero R
		return zero, false
	}
	return u.root.reduced, true
}

// ForAll [Map.ForAll]. Recursive.
// Time: O(n)
func (u *ReducerTree[K, V, R]) ForAll(f func(K, V, R) bool) bool {
	return forAll(u.root, f)
}

// Size [Map.Size]
// Time: O(1); Space: O(1)
func (u *ReducerTree[K, V, R]) Size() uint {
	return u.size
}

// Empty [Map.Empty]
// Time: O(1); Space: O(1)
func (u *ReducerTree[K, V, R]) Empty() bool {
	return u.size == 0
}

// Validate walks the whole tree checking key order, priority order, cached
// reductions, and the element count, panicking with CorruptError on the
// first violation. It exists to catch bugs in this package during testing;
// it never polices caller input and has no business in steady-state code.
// Time: O(n)
func (u *ReducerTree[K, V, R]) Validate() {
	if sz := u.validate(u.root, nil, nil); sz != u.size {
		panic(CorruptError{"cached size disagrees with the tree"})
	}
}

// String renders the whole tree for debugging, children in parentheses and
// nil children as _. Not a compatibility surface.
func (u *ReducerTree[K, V, R]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	if u.root != nil {
		u.root.str(&sb)
	}
	sb.WriteByte('}')
	return sb.String()
}
