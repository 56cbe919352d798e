package dlx

import (
	"fmt"
	"io"
)

// root is the sentinel header id. Item headers occupy ids [1, nItems];
// matrix node cells occupy ids [nItems+1, nItems+1+totalCells). All ids
// share one flat id space and one pair of up/down arrays, following the
// classical dancing-links layout: a column header doubles as the sentinel
// of its own circular node list, so "walk down from the header until you
// see the header again" needs no special-casing.
//
// The id indexes flat up/down/top/owner slices instead of chasing
// pointers, and — because the arrays are allocated to their final size
// before any cover/uncover runs — no id is ever invalidated by
// relocation.
const root int32 = 0

// Problem is a constructed dancing-links matrix: a universe of items and a
// family of options (rows), each naming the items it covers.
type Problem struct {
	nItems int

	// up/down index the unified id space described above.
	up, down []int32

	// top and owner are meaningful only for node cells (ids > nItems):
	// top is the header id of the node's column, owner is the index (in
	// the input option family) of the option that owns it.
	top, owner []int32

	// itemPrev/itemNext form the circular header list; indexed by header
	// id in [0, nItems].
	itemPrev, itemNext []int32

	// count[h] is the number of node cells currently linked into column
	// h's list; indexed by header id in [1, nItems].
	count []int32

	// rows holds, for each input option, the node-cell ids it owns in
	// the order given at construction, used in place of a horizontal
	// linked list across the row.
	rows [][]int32

	debugLevel int
	debugOut   io.Writer
}

// New constructs a dancing-links matrix for a universe of nItems elements
// and a family of options, each a list of item indices in [0, nItems).
//
// An empty option family links no node cells: search then yields no
// solutions if nItems > 0, or the single trivially empty solution if
// nItems == 0, since an empty universe is vacuously covered.
func New(nItems int, options [][]int) (*Problem, error) {
	if nItems < 0 {
		return nil, newNegativeSizeError(nItems)
	}
	total := 0
	for _, opt := range options {
		total += len(opt)
	}
	for oi, opt := range options {
		for _, it := range opt {
			if it < 0 || it >= nItems {
				return nil, newItemIndexError(oi, it, nItems)
			}
		}
	}

	n := int32(nItems)
	size := n + 1 + int32(total)
	p := &Problem{
		nItems:   nItems,
		up:       make([]int32, size),
		down:     make([]int32, size),
		top:      make([]int32, size),
		owner:    make([]int32, size),
		itemPrev: make([]int32, n+1),
		itemNext: make([]int32, n+1),
		count:    make([]int32, n+1),
		rows:     make([][]int32, len(options)),
	}

	// Circular header list: root, 1, 2, ..., n, root.
	for h := int32(0); h <= n; h++ {
		p.itemPrev[h] = (h - 1 + (n + 1)) % (n + 1)
		p.itemNext[h] = (h + 1) % (n + 1)
	}
	// Each header starts as its own empty column (up/down point to self).
	for h := int32(1); h <= n; h++ {
		p.up[h] = h
		p.down[h] = h
	}

	nextID := n + 1
	for oi, opt := range options {
		row := make([]int32, 0, len(opt))
		for _, it := range opt {
			h := int32(it) + 1
			id := nextID
			nextID++

			p.top[id] = h
			p.owner[id] = int32(oi)

			// Append id to the bottom of column h's circular list.
			last := p.up[h]
			p.up[id] = last
			p.down[id] = h
			p.down[last] = id
			p.up[h] = id
			p.count[h]++

			row = append(row, id)
		}
		p.rows[oi] = row
	}

	return p, nil
}

// NItems returns the universe size the problem was constructed with.
func (p *Problem) NItems() int { return p.nItems }

// Debug enables diagnostic dumps of cover/uncover activity to w at the
// given verbosity level (0 disables them).
func (p *Problem) Debug(level int, w io.Writer) {
	p.debugLevel = level
	p.debugOut = w
}

func (p *Problem) tracef(level int, format string, args ...any) {
	if p.debugLevel < level || p.debugOut == nil {
		return
	}
	fmt.Fprintf(p.debugOut, format, args...)
}
