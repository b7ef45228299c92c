package rbtree

import (
	"errors"
	"math/bits"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func intLess(a, b int) bool { return a < b }

func newIntTree(t *testing.T, alloc Allocator[int, int]) *Tree[int, int] {
	t.Helper()
	tree, err := New(Config[int, int]{Less: intLess, Allocator: alloc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tree
}

func collectKeys[K, V any](tree *Tree[K, V]) []K {
	var out []K
	tree.ForEach(func(n *Node[K, V]) bool {
		out = append(out, n.Key())
		return true
	})
	return out
}

func mustInsert(t *testing.T, tree *Tree[int, int], keys ...int) {
	t.Helper()
	for _, k := range keys {
		if _, _, err := tree.Insert(k, 2*k); err != nil {
			t.Fatalf("insert %d failed: %v", k, err)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("after insert %d: %v", k, err)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int, int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewNormalizesAllocator(t *testing.T) {
	tree := newIntTree(t, nil)
	if tree.Config().Allocator == nil {
		t.Fatalf("expected default allocator in normalized config")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
	if tree.Len() != 0 || !tree.IsEmpty() || tree.Height() != 0 {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
}

func TestInsertIntoEmptyTreeCreatesBlackRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbmap")
	defer teardown()

	tree := newIntTree(t, nil)
	n, inserted, err := tree.Insert(7, 70)
	if err != nil || !inserted {
		t.Fatalf("expected insert of 7 to succeed, got inserted=%v err=%v", inserted, err)
	}
	if tree.Root() != n || n.Color() != Black {
		t.Fatalf("expected new node to be the black root")
	}
	if n.Parent() != nil || n.Left() != nil || n.Right() != nil {
		t.Fatalf("root of single-node tree must not have links")
	}
}

func TestInsertEquivalentKeyKeepsValue(t *testing.T) {
	tree := newIntTree(t, nil)
	first, _, _ := tree.Insert(3, 30)
	n, inserted, err := tree.Insert(3, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted {
		t.Fatalf("insert of present key must report inserted=false")
	}
	if n != first || n.Value() != 30 {
		t.Fatalf("expected existing node with value 30, got value %d", n.Value())
	}
	if tree.Len() != 1 {
		t.Fatalf("size must not grow, is %d", tree.Len())
	}
}

func TestInsertAscendingStaysBalanced(t *testing.T) {
	tree := newIntTree(t, nil)
	const n = 1023
	for i := range n {
		mustInsert(t, tree, i)
	}
	// a red-black tree with n nodes has height <= 2*log2(n+1)
	limit := 2 * bits.Len(uint(n+1))
	if h := tree.Height(); h > limit {
		t.Fatalf("height %d exceeds bound %d", h, limit)
	}
	if tree.BlackHeight() < 1 {
		t.Fatalf("non-empty tree must have black-height >= 1")
	}
}

func TestRandomInsertDeleteKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		r := rand.New(rand.NewSource(seed))
		alloc := NewCountingAllocator[int, int](0)
		tree := newIntTree(t, alloc)
		const n = 300
		for _, k := range r.Perm(n) {
			mustInsert(t, tree, k)
		}
		remaining := make(map[int]bool, n)
		for k := range n {
			remaining[k] = true
		}
		for _, k := range r.Perm(n) {
			node := tree.Find(k)
			if node == nil {
				t.Fatalf("seed %d: key %d not found", seed, k)
			}
			tree.Delete(node)
			delete(remaining, k)
			if err := tree.Check(); err != nil {
				t.Fatalf("seed %d: after delete %d: %v", seed, k, err)
			}
			want := make([]int, 0, len(remaining))
			for key := range remaining {
				want = append(want, key)
			}
			slices.Sort(want)
			if got := collectKeys(tree); !slices.Equal(got, want) {
				t.Fatalf("seed %d: after delete %d: keys %v, want %v", seed, k, got, want)
			}
			if alloc.Live() != tree.Len() {
				t.Fatalf("seed %d: %d live nodes for %d keys", seed, alloc.Live(), tree.Len())
			}
		}
		if !tree.IsEmpty() || tree.Root() != nil {
			t.Fatalf("seed %d: tree not empty after deleting all keys", seed)
		}
	}
}

func TestDeleteKeepsIdentityOfOtherNodes(t *testing.T) {
	tree := newIntTree(t, nil)
	r := rand.New(rand.NewSource(42))
	nodes := make(map[int]*Node[int, int])
	for _, k := range r.Perm(200) {
		n, _, err := tree.Insert(k, k*10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		nodes[k] = n
	}
	for k := 0; k < 200; k += 3 {
		tree.Delete(nodes[k])
		delete(nodes, k)
	}
	for k, n := range nodes {
		if n.Key() != k || n.Value() != k*10 {
			t.Fatalf("node for %d now holds (%d, %d)", k, n.Key(), n.Value())
		}
		if tree.Find(k) != n {
			t.Fatalf("Find(%d) does not return the original node", k)
		}
	}
}

func TestBoundQueries(t *testing.T) {
	tree := newIntTree(t, nil)
	tree.Insert(4, 8)
	tree.Insert(9, 15)
	if n := tree.LowerBound(9); n == nil || n.Key() != 9 || n.Value() != 15 {
		t.Fatalf("LowerBound(9) should be (9,15)")
	}
	if n := tree.UpperBound(9); n != nil {
		t.Fatalf("UpperBound(9) should be end, is %v", n.Key())
	}
	if n := tree.UpperBound(4); n == nil || n.Key() != 9 {
		t.Fatalf("UpperBound(4) should be (9,15)")
	}
	if n := tree.LowerBound(5); n == nil || n.Key() != 9 {
		t.Fatalf("LowerBound(5) should be (9,15)")
	}
	if n := tree.LowerBound(1); n == nil || n.Key() != 4 {
		t.Fatalf("LowerBound(1) should be (4,8)")
	}
	if n := tree.LowerBound(10); n != nil {
		t.Fatalf("LowerBound(10) should be end")
	}
	if tree.Find(5) != nil {
		t.Fatalf("Find(5) should be end")
	}
}

func TestEqualRange(t *testing.T) {
	tree := newIntTree(t, nil)
	mustInsert(t, tree, 10, 20, 30)
	lo, hi := tree.EqualRange(20)
	if lo == nil || lo.Key() != 20 || hi == nil || hi.Key() != 30 {
		t.Fatalf("EqualRange(20) should be [20, 30)")
	}
	lo, hi = tree.EqualRange(25)
	if lo != hi || lo.Key() != 30 {
		t.Fatalf("EqualRange(25) should be empty at 30")
	}
	lo, hi = tree.EqualRange(30)
	if lo.Key() != 30 || hi != nil {
		t.Fatalf("EqualRange(30) should be [30, end)")
	}
	lo, hi = tree.EqualRange(99)
	if lo != nil || hi != nil {
		t.Fatalf("EqualRange(99) should be [end, end)")
	}
}

func TestNavigation(t *testing.T) {
	tree := newIntTree(t, nil)
	if tree.Min() != nil || tree.Max() != nil {
		t.Fatalf("empty tree has no min or max")
	}
	keys := []int{50, 20, 80, 10, 30, 70, 90, 25, 35}
	mustInsert(t, tree, keys...)
	slices.Sort(keys)
	var forward []int
	for n := tree.Min(); n != nil; n = n.Next() {
		forward = append(forward, n.Key())
	}
	if !slices.Equal(forward, keys) {
		t.Fatalf("forward navigation yields %v", forward)
	}
	var backward []int
	for n := tree.Max(); n != nil; n = n.Prev() {
		backward = append(backward, n.Key())
	}
	slices.Reverse(backward)
	if !slices.Equal(backward, keys) {
		t.Fatalf("backward navigation yields %v", backward)
	}
}

func TestInsertHint(t *testing.T) {
	tree := newIntTree(t, nil)
	// appending at the end with a nil hint
	for k := 0; k < 100; k += 2 {
		if _, ok, err := tree.InsertHint(nil, k, k); !ok || err != nil {
			t.Fatalf("hinted append of %d failed: %v", k, err)
		}
	}
	// correct hints: the upper neighbour
	for k := 1; k < 100; k += 4 {
		hint := tree.Find(k + 1)
		if _, ok, err := tree.InsertHint(hint, k, k); !ok || err != nil {
			t.Fatalf("hinted insert of %d failed: %v", k, err)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("after hinted insert %d: %v", k, err)
		}
	}
	// misleading hints fall back to a regular insert
	for k := 3; k < 100; k += 4 {
		hint := tree.Min()
		if _, ok, err := tree.InsertHint(hint, k, k); !ok || err != nil {
			t.Fatalf("insert of %d with wrong hint failed: %v", k, err)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 100 {
		t.Fatalf("expected 100 keys, have %d", tree.Len())
	}
	n, ok, _ := tree.InsertHint(tree.Find(42), 42, -1)
	if ok || n.Value() != 42 {
		t.Fatalf("hinted insert of present key must not modify the tree")
	}
}

func TestClearReleasesAllNodes(t *testing.T) {
	alloc := NewCountingAllocator[int, int](0)
	tree := newIntTree(t, alloc)
	mustInsert(t, tree, rand.New(rand.NewSource(3)).Perm(64)...)
	tree.Delete(tree.Find(5))
	tree.Clear()
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if alloc.Live() != 0 || alloc.Allocs() != 64 || alloc.Frees() != 64 {
		t.Fatalf("allocator accounting: live=%d allocs=%d frees=%d",
			alloc.Live(), alloc.Allocs(), alloc.Frees())
	}
	mustInsert(t, tree, 1, 2, 3)
	if tree.Len() != 3 {
		t.Fatalf("cleared tree must be reusable")
	}
}

func TestAllocationFailureLeavesTreeUnchanged(t *testing.T) {
	alloc := NewCountingAllocator[int, int](5)
	tree := newIntTree(t, alloc)
	mustInsert(t, tree, 10, 20, 30, 40, 50)
	before := collectKeys(tree)
	_, inserted, err := tree.Insert(25, 0)
	if !errors.Is(err, ErrAllocation) || inserted {
		t.Fatalf("expected ErrAllocation, got inserted=%v err=%v", inserted, err)
	}
	_, _, err = tree.InsertHint(nil, 60, 0)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("expected ErrAllocation for hinted insert, got %v", err)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if got := collectKeys(tree); !slices.Equal(got, before) {
		t.Fatalf("tree changed by failed insert: %v", got)
	}
	// an equivalent key needs no allocation
	if _, inserted, err := tree.Insert(30, 0); err != nil || inserted {
		t.Fatalf("insert of present key must succeed without allocating: %v", err)
	}
	alloc.SetBudget(0)
	mustInsert(t, tree, 25)
}

func TestCountingAllocatorRejectsDoubleFree(t *testing.T) {
	alloc := NewCountingAllocator[int, int](0)
	n, _ := alloc.Alloc()
	alloc.Free(n)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on double free")
		}
	}()
	alloc.Free(n)
}

func TestSwap(t *testing.T) {
	a := newIntTree(t, nil)
	b, err := New(Config[int, int]{Less: func(x, y int) bool { return x > y }})
	if err != nil {
		t.Fatal(err)
	}
	mustInsert(t, a, 1, 2, 3)
	b.Insert(7, 0)
	b.Insert(8, 0)
	a.Swap(b)
	if got := collectKeys(a); !slices.Equal(got, []int{8, 7}) {
		t.Fatalf("swapped tree a holds %v", got)
	}
	if got := collectKeys(b); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("swapped tree b holds %v", got)
	}
	a.Insert(9, 0)
	if got := collectKeys(a); !slices.Equal(got, []int{9, 8, 7}) {
		t.Fatalf("comparator did not travel with swap: %v", got)
	}
}

func TestCheckDetectsViolations(t *testing.T) {
	tree := newIntTree(t, nil)
	mustInsert(t, tree, 1, 2, 3, 4, 5, 6, 7, 8)
	tree.root.color = Red
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("red root not detected: %v", err)
	}
	tree.root.color = Black
	leaf := tree.Max()
	leaf.color = Black
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("black-height violation not detected: %v", err)
	}
	leaf.color = Red
	leaf.key = 0
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("order violation not detected: %v", err)
	}
	leaf.key = 8
	tree.size++
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("size mismatch not detected: %v", err)
	}
}

func TestRoundTripReproducesTraversal(t *testing.T) {
	tree := newIntTree(t, nil)
	mustInsert(t, tree, rand.New(rand.NewSource(9)).Perm(100)...)
	type pair struct{ k, v int }
	var dump []pair
	tree.ForEach(func(n *Node[int, int]) bool {
		dump = append(dump, pair{n.Key(), n.Value()})
		return true
	})
	tree.Clear()
	for _, p := range dump {
		if _, _, err := tree.Insert(p.k, p.v); err != nil {
			t.Fatal(err)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	i := 0
	tree.ForEach(func(n *Node[int, int]) bool {
		if n.Key() != dump[i].k || n.Value() != dump[i].v {
			t.Fatalf("round trip mismatch at %d", i)
		}
		i++
		return true
	})
	if i != len(dump) {
		t.Fatalf("round trip yields %d nodes, want %d", i, len(dump))
	}
}
