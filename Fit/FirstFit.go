/*
Package Fit implements a first-fit allocator over a linear address space.
Busy blocks are kept in a reducer tree keyed by start address with a summed
length reducer, so the total busy byte count and "busy bytes below an
address" fall out of the tree instead of needing bookkeeping of their own.
*/
package Fit

import "github.com/g-m-twostay/reducer-tree/Trees"

// Block is a busy interval of the managed address space.
type Block struct {
	Start, Length uint
}

// FirstFit hands out the lowest gap that fits each request. It remembers
// only the busy blocks; free space is whatever lies between them.
// Single-threaded, like the tree underneath.
type FirstFit struct {
	busy      *Trees.ReducerTree[uint, uint, uint] //start -> length, reduced to busy bytes.
	highWater uint
}

func New() *FirstFit {
	return &FirstFit{busy: Trees.New(Trees.Summer[uint, uint]())}
}

// Alloc reserves size bytes in the lowest gap that fits, extending past the
// last busy block when no gap does.
// Time: O(n)
func (u *FirstFit) Alloc(size uint) Block {
	prevEnd, start, found := uint(0), uint(0), false
	u.busy.ForAll(func(s, length, _ uint) bool {
		if s-prevEnd >= size {
			start, found = prevEnd, true
			return false
		}
		prevEnd = s + length
		return true
	})
	if !found { //prevEnd is the end of the last busy block.
		start = prevEnd
		if end := start + size; end > u.highWater {
			u.highWater = end
		}
	}
	u.busy.Insert(start, size)
	return Block{start, size}
}

// Free releases a block previously returned by Alloc. Returns false, and
// releases nothing, when no busy block with that exact start and length
// exists.
// Time: O(log n)
func (u *FirstFit) Free(b Block) bool {
	if length, _, ok := u.busy.Find(b.Start); !ok || length != b.Length {
		return false
	}
	return u.busy.Erase(b.Start)
}

// HighWater is the highest address ever covered by a busy block.
func (u *FirstFit) HighWater() uint {
	return u.highWater
}

// InUse is the total busy byte count.
func (u *FirstFit) InUse() uint {
	r, _ := u.busy.Reduce()
	return r
}

// AllocatedBelow counts the busy bytes in blocks starting below addr.
// Time: O(log n)
func (u *FirstFit) AllocatedBelow(addr uint) uint {
	return u.busy.PrefixReduce(addr)
}
