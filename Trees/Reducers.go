package Trees

import "golang.org/x/exp/constraints"

// Lift turns a single key/value pair into a reduction value.
type Lift[K, V, R any] func(K, V) R

// Combine merges two reduction values: the entries behind a, in key order,
// followed by the entries behind b. It must be associative; it need not be
// commutative. It is never called with the reduction of an empty range, so
// the zero value of R doesn't have to be an identity for it.
type Combine[R any] func(R, R) R

// Counter reduces every entry to 1 so that a subtree's reduction is its
// size. Usable as New(Counter[K, V]()).
func Counter[K, V any]() (Lift[K, V, uint], Combine[uint]) {
	return func(K, V) uint { return 1 }, func(a, b uint) uint { return a + b }
}

// Summer reduces entries to the sum of their values.
func Summer[K any, V constraints.Integer | constraints.Float]() (Lift[K, V, V], Combine[V]) {
	return func(_ K, v V) V { return v }, func(a, b V) V { return a + b }
}

// Concat reduces entries to their values concatenated in key order.
func Concat[K any]() (Lift[K, string, string], Combine[string]) {
	return func(_ K, v string) string { return v }, func(a, b string) string { return a + b }
}

// Span is the key range covered by a reduction.
type Span[K constraints.Ordered] struct {
	Min, Max K
}

// Spanner reduces entries to the smallest and largest key among them. The
// zero Span is not an identity for the combine, which is fine because empty
// ranges are never combined in.
func Spanner[K constraints.Ordered, V any]() (Lift[K, V, Span[K]], Combine[Span[K]]) {
	return func(k K, _ V) Span[K] { return Span[K]{k, k} },
		// a precedes b in key order, so a holds the min and b the max.
		func(a, b Span[K]) Span[K] { return Span[K]{a.Min, b.Max} }
}
