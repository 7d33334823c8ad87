// Point lookup baselines. The hash maps are unordered and answer no prefix
// queries; they bound what a lookup can cost when ordering is given up.

package cmps

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
)

func BenchmarkReducerTree_Load(b *testing.B) {
	tree := fillTree(b)
	b.ResetTimer()
	for i := range b.N {
		v, _, _ := tree.Find(i % (benchN * 2))
		sideEff += v
	}
}
func BenchmarkHaxMap_Load(b *testing.B) {
	m := haxmap.New[int, int]()
	for i := range benchN {
		m.Set(i*2, i*2)
	}
	b.ResetTimer()
	for i := range b.N {
		v, _ := m.Get(i % (benchN * 2))
		sideEff += v
	}
}
func BenchmarkHashMap_Load(b *testing.B) {
	m := hashmap.New[int, int]()
	for i := range benchN {
		m.Insert(i*2, i*2)
	}
	b.ResetTimer()
	for i := range b.N {
		v, _ := m.Get(i % (benchN * 2))
		sideEff += v
	}
}
func BenchmarkMap_Load(b *testing.B) {
	m := make(map[int]int, benchN)
	for i := range benchN {
		m[i*2] = i * 2
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff += m[i%(benchN*2)]
	}
}
