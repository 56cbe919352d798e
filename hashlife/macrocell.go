package hashlife

import "iter"

// Quadrant indices into a Macrocell's tiles/children arrays, fixed at nw,
// ne, sw, se throughout the package.
const (
	nwQ = iota
	neQ
	swQ
	seQ
)

// Macrocell is a node in the hash-consed quadtree: a square of side 2^k
// cells, k >= 4. At level 4 (a leaf) it holds four quadrant tiles, each
// covering one full 8x8 quarter of the leaf's 16x16 extent (all 64 bits
// are cells of the leaf). At level > 4 (a node) it
// holds four child macrocells of level k-1 instead.
//
// Macrocells are produced only by Cache.Leaf and Cache.Node and are
// immutable and canonical: two macrocells built from equal children
// always have equal identity, so equality can be tested by comparing
// pointers.
type Macrocell struct {
	level int

	tiles    [4]Tile      // meaningful when level == 4
	children [4]*Macrocell // meaningful when level > 4

	result *Macrocell // memoised by the evolver, write-once
}

// Level returns the macrocell's level k (side length 2^k).
func (m *Macrocell) Level() int { return m.level }

// Empty reports whether every cell of m is dead.
func (m *Macrocell) Empty() bool {
	if m.level == 4 {
		return m.tiles[nwQ] == 0 && m.tiles[neQ] == 0 && m.tiles[swQ] == 0 && m.tiles[seQ] == 0
	}
	for _, c := range m.children {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// LiveCells yields the coordinates of every live cell in m, relative to
// m's own top-left corner, by an explicit-stack depth-first walk in NW,
// NE, SW, SE order.
func (m *Macrocell) LiveCells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		type frame struct {
			m      *Macrocell
			ox, oy int
		}
		stack := []frame{{m, 0, 0}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if f.m.level == 4 {
				side := 1 << uint(f.m.level-1)
				for q, t := range f.m.tiles {
					qx := f.ox + (q%2)*side
					qy := f.oy + (q/2)*side
					for i := 0; i < 64; i++ {
						if t&(1<<uint(i)) == 0 {
							continue
						}
						if !yield(qx+i%8, qy+i/8) {
							return
						}
					}
				}
				continue
			}

			half := 1 << uint(f.m.level-1)
			for q := 3; q >= 0; q-- {
				cx := f.ox + (q%2)*half
				cy := f.oy + (q/2)*half
				stack = append(stack, frame{f.m.children[q], cx, cy})
			}
		}
	}
}

// Cells performs a postorder, explicit-stack depth-first walk of the
// quadtree rooted at m (children before parent, NW/NE/SW/SE order among
// siblings), visiting each distinct macrocell exactly once. A hash-consed
// quadtree is a DAG, not a tree — the same canonical macrocell can be
// reached through more than one parent — so a seen set keyed by pointer
// identity guards against yielding it twice. yield receives the
// macrocell's level, a stable identity for it (as produced by idOf), and
// whether it is a leaf; returning false stops the walk early and Cells
// returns false. This is the same visit-once-per-identity shape a
// control-flow postorder needs at a merge block reached from two
// predecessors, applied here to a quadtree's shared children instead.
func (m *Macrocell) Cells(yield func(level int, id uint64, leaf bool) bool) bool {
	seen := make(map[*Macrocell]bool)
	type frame struct {
		m        *Macrocell
		expanded bool
	}
	stack := []frame{{m, false}}
	for len(stack) > 0 {
		top := len(stack) - 1
		f := stack[top]

		if seen[f.m] {
			stack = stack[:top]
			continue
		}

		if f.m.level == 4 || f.expanded {
			stack = stack[:top]
			seen[f.m] = true
			if !yield(f.m.level, idOf(f.m), f.m.level == 4) {
				return false
			}
			continue
		}

		stack[top].expanded = true
		for q := 3; q >= 0; q-- {
			stack = append(stack, frame{f.m.children[q], false})
		}
	}
	return true
}

// DistinctNodeCount reports how many distinct macrocells are reachable
// from m (via Cells, so shared children are counted once) alongside the
// apparent size a dense, unshared quadtree of m's level would have
// (4^(level-4) leaves). The ratio between the two is the compression
// Hashlife's hash-consing achieves on a given pattern.
func (m *Macrocell) DistinctNodeCount() (distinct, apparent int) {
	m.Cells(func(level int, id uint64, leaf bool) bool {
		distinct++
		return true
	})
	apparent = 1
	for l := 4; l < m.level; l++ {
		apparent *= 4
	}
	return distinct, apparent
}
