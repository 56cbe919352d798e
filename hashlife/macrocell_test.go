package hashlife

import "testing"

func TestLiveCellsLeafLevel(t *testing.T) {
	c := NewCache()
	// nw tile quadrant has a single live cell at its local (2,2).
	nw := Tile(1 << (2*8 + 2))
	leaf := c.Leaf(nw, 0, 0, 0)

	var got [][2]int
	for x, y := range leaf.LiveCells() {
		got = append(got, [2]int{x, y})
	}
	if len(got) != 1 || got[0] != [2]int{2, 2} {
		t.Fatalf("LiveCells() = %v, want [[2 2]]", got)
	}
}

func TestLiveCellsNodeLevel(t *testing.T) {
	c := NewCache()
	empty := c.Leaf(0, 0, 0, 0)
	seTileBit := Tile(1 << (2*8 + 2)) // local (2,2), inside the centre 4x4
	seLeaf := c.Leaf(seTileBit, 0, 0, 0)
	node, err := c.Node(empty, empty, empty, seLeaf)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}

	// The se child occupies the node's bottom-right 16x16 quadrant, so
	// its own nw tile's centred cell lands at (16+2, 16+2).
	found := false
	for x, y := range node.LiveCells() {
		if x == 18 && y == 18 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a live cell at (18, 18)")
	}
}

func TestCellsVisitsSharedChildOnce(t *testing.T) {
	c := NewCache()
	leaf := c.Leaf(1, 2, 3, 4)
	empty := c.Leaf(0, 0, 0, 0)

	// All four quadrants share the same two canonical leaves, so a naive
	// walk from top without dedup would count leaf/empty eight times each.
	node, err := c.Node(leaf, empty, empty, leaf)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	top, err := c.Node(node, node, node, node)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}

	seen := make(map[uint64]bool)
	var leaves, nodes int
	top.Cells(func(level int, id uint64, isLeaf bool) bool {
		if seen[id] {
			t.Fatalf("id %d visited more than once", id)
		}
		seen[id] = true
		if isLeaf {
			leaves++
		} else {
			nodes++
		}
		return true
	})

	// Distinct macrocells reachable from top: leaf, empty, node, top.
	if leaves != 2 {
		t.Fatalf("leaves visited = %d, want 2", leaves)
	}
	if nodes != 2 {
		t.Fatalf("nodes visited = %d, want 2", nodes)
	}
}

func TestCellsStopsEarly(t *testing.T) {
	c := NewCache()
	leaf := c.Leaf(1, 2, 3, 4)
	node, err := c.Node(leaf, leaf, leaf, leaf)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}

	count := 0
	cont := node.Cells(func(level int, id uint64, isLeaf bool) bool {
		count++
		return false
	})
	if cont {
		t.Fatal("Cells() = true after yield returned false, want false")
	}
	if count != 1 {
		t.Fatalf("visited %d macrocells before stopping, want 1", count)
	}
}

func TestDistinctNodeCount(t *testing.T) {
	c := NewCache()
	leaf := c.Leaf(1, 2, 3, 4)
	empty := c.Leaf(0, 0, 0, 0)
	node, err := c.Node(leaf, empty, empty, leaf)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	top, err := c.Node(node, node, node, node)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}

	distinct, apparent := top.DistinctNodeCount()
	if distinct != 4 {
		t.Fatalf("distinct = %d, want 4", distinct)
	}
	// top is level 6; a dense, unshared quadtree down to level 4 has
	// 4^(6-4) = 16 leaves.
	if apparent != 16 {
		t.Fatalf("apparent = %d, want 16", apparent)
	}
	if distinct >= apparent {
		t.Fatalf("distinct (%d) should be well below apparent (%d) given the sharing built above", distinct, apparent)
	}
}

func TestDecodeSize(t *testing.T) {
	c := NewCache()
	leaf := c.Leaf(0, 0, 0, 0)
	grid := c.Decode(leaf)
	if len(grid) != 16 || len(grid[0]) != 16 {
		t.Fatalf("Decode(leaf) size = %dx%d, want 16x16", len(grid), len(grid[0]))
	}
}
