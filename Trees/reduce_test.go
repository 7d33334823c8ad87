package Trees

import (
	"strings"
	"testing"
)

func TestPrefixReduce_Concat(t *testing.T) {
	lift, comb := Concat[string]()
	tree := NewSeeded(lift, comb, rg.Int63())
	for _, k := range []string{"a", "b", "c", "d"} {
		if !tree.Insert(k, k) {
			t.Fatalf("failed to insert key %v", k)
		}
	}
	tree.Validate()
	for _, c := range []struct{ key, want string }{
		{"a", ""}, {"b", "a"}, {"c", "ab"}, {"d", "abc"}, {"zzz", "abcd"},
	} {
		if got := tree.PrefixReduce(c.key); got != c.want {
			t.Errorf("PrefixReduce(%q) = %q, want %q", c.key, got, c.want)
		}
	}
	if r, ok := tree.Reduce(); !ok || r != "abcd" {
		t.Errorf("Reduce() = %q, want abcd", r)
	}
}

func TestFind_LengthReducer(t *testing.T) {
	tree := NewSeeded(func(_ int, v string) int { return len(v) }, func(a, b int) int { return a + b }, 0)
	tree.Insert(3, "hello")
	tree.Insert(2, "a")
	tree.Validate()
	if v, _, ok := tree.Find(2); !ok || v != "a" {
		t.Errorf("Find(2) = %v, want a", v)
	}
	if v, _, ok := tree.Find(3); !ok || v != "hello" {
		t.Errorf("Find(3) = %v, want hello", v)
	}
	if r, ok := tree.Reduce(); !ok || r != 6 {
		t.Errorf("Reduce() = %v, want 6", r)
	}
	if !tree.Erase(3) {
		t.Errorf("failed to erase key 3")
	}
	tree.Validate()
	visited := 0
	tree.ForAll(func(k int, v string, r int) bool {
		visited++
		if k != 2 || v != "a" || r != 1 {
			t.Errorf("visited entry %v:%v (reduced %v), want 2:a (1)", k, v, r)
		}
		return true
	})
	if visited != 1 {
		t.Errorf("visited %d entries, want 1", visited)
	}
}

// Checks PrefixReduce against a linear scan oracle, including queries that
// land exactly on stored keys (which must be excluded).
func TestPrefixReduce_Oracle(t *testing.T) {
	lift, comb := Summer[int, int]()
	tree := NewSeeded(lift, comb, rg.Int63())
	content := make(map[int]int)
	for range 4096 {
		k, v := rg.Intn(8192), rg.Intn(100)
		if tree.Insert(k, v) {
			content[k] = v
		}
	}
	oracle := func(q int) int {
		s := 0
		for k, v := range content {
			if k < q {
				s += v
			}
		}
		return s
	}
	for range 512 {
		q := rg.Intn(8500) - 100
		if got := tree.PrefixReduce(q); got != oracle(q) {
			t.Errorf("PrefixReduce(%d) = %d, want %d", q, got, oracle(q))
		}
	}
	for k := range content { //exact boundaries.
		if got := tree.PrefixReduce(k); got != oracle(k) {
			t.Errorf("PrefixReduce(%d) = %d, want %d", k, got, oracle(k))
		}
	}
}

// The zero Span is not an identity for Spanner's combine: were it ever
// combined in, it would drag Min down to 0. Keys here all sit above 0, so
// any such mistake shows up in Min.
func TestSpanner_NeutralNeverCombined(t *testing.T) {
	lift, comb := Spanner[int, struct{}]()
	tree := NewSeeded(lift, comb, rg.Int63())
	minK, maxK := 1<<30, 0
	for range 1024 {
		k := 100 + rg.Intn(10000)
		tree.Insert(k, struct{}{})
		minK, maxK = min(minK, k), max(maxK, k)
	}
	tree.Validate()
	if r, ok := tree.Reduce(); !ok || r.Min != minK || r.Max != maxK {
		t.Errorf("Reduce() = %v, want {%d %d}", r, minK, maxK)
	}
	if s := tree.PrefixReduce(minK); s != (Span[int]{}) {
		t.Errorf("PrefixReduce below everything = %v, want the zero Span", s)
	}
	if s := tree.PrefixReduce(maxK + 1); s.Min != minK || s.Max != maxK {
		t.Errorf("PrefixReduce above everything = %v, want {%d %d}", s, minK, maxK)
	}
}

func TestForAll_EarlyStop(t *testing.T) {
	lift, comb := Counter[int, int]()
	tree := NewSeeded(lift, comb, rg.Int63())
	for i := range 100 {
		tree.Insert(i, i)
	}
	visited := 0
	if tree.ForAll(func(k, _ int, _ uint) bool { visited++; return k < 9 }) {
		t.Errorf("ForAll returned true despite the visitor quitting")
	}
	if visited != 10 {
		t.Errorf("visited %d entries, want 10", visited)
	}
}

func TestString(t *testing.T) {
	lift, comb := Counter[int, string]()
	tree := NewSeeded(lift, comb, 0)
	if tree.String() != "{}" {
		t.Errorf("empty tree renders as %s", tree.String())
	}
	tree.Insert(1, "x")
	if s := tree.String(); !strings.HasPrefix(s, "{(1 x ") || !strings.HasSuffix(s, " _ _)}") {
		t.Errorf("single node tree renders as %s", s)
	}
}
