/*
Package Trees implements an ordered map augmented with subtree reductions.

# Reductions
Every subtree caches the result of combining all of its key/value pairs, in
ascending key order, through a caller supplied associative operator. This is
what makes PrefixReduce O(log n): whole subtrees that lie entirely below the
queried key contribute their cached value and are never descended into.

# Balancing
The tree is a treap: each node carries a priority drawn uniformly at random
when it is created, and the tree is kept heap ordered on priorities (parents
never have a lower priority than children). With independent priorities the
expected height is O(log n); no rotations or explicit rebalancing is needed.

# Usage
All containers here are single-threaded. No internal synchronization exists
because no internal sharing exists: every structural operation takes ownership
of the subtrees it touches and hands back new ownership. Callers that share a
container across goroutines must serialize access themselves.
*/
package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Map represents an ordered associative container over keys of type K with
// values of type V, where every subtree additionally exposes the reduction
// of its entries into type R.
// Receivers that has a bool as a second (or third) return value indicates
// whether the other return values are defined. Methods implemented
// recursively should be noted, otherwise functions are implemented
// iteratively.
type Map[K constraints.Ordered, V, R any] interface {
	//Insert key with value into the Map. Returning true if key wasn't
	//present, false otherwise; a false return means nothing changed,
	//including the stored value for key.
	Insert(key K, value V) bool
	//Find the entry for key, returning its value and the cached reduction
	//of the subtree rooted at its node. Both are copies; they stay valid
	//across later mutations.
	Find(key K) (V, R, bool)
	//Has key. Prefer this over Find for existence checks.
	Has(key K) bool
	//Erase the entry for key. Returning true if an entry was removed.
	Erase(key K) bool
	//PrefixReduce combines, in ascending key order, every entry whose key
	//is strictly less than key. Entries with key >= the argument are
	//excluded, including an exact match. Returns the zero value of R when
	//no entry qualifies.
	PrefixReduce(key K) R
	//Reduce combines every entry in the Map in ascending key order. The
	//bool is false when the Map is empty.
	Reduce() (R, bool)
	//ForAll calls f on every entry in ascending key order with the entry's
	//key, value, and the cached reduction at its node. Stops and returns
	//false the first time f returns false, otherwise returns true. The Map
	//must not be modified during the traversal.
	ForAll(f func(K, V, R) bool) bool
	//Size of the Map.
	Size() uint
	//Empty reports whether the Map has no entries.
	Empty() bool
}

// CorruptError is the panic value used when a structural invariant is found
// broken: an out of order key, a child outranking its parent's priority, a
// stale cached reduction, or a size mismatch. It is only ever raised by
// Validate or by an internal precondition check, so seeing it means a bug in
// this package, not bad caller input.
type CorruptError struct {
	What string
}

func (e CorruptError) Error() string {
	return fmt.Sprintf("corrupt tree: %s", e.What)
}
