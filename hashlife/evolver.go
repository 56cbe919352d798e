package hashlife

import "github.com/pkg/errors"

// leafResultTile computes the level-4 leaf's true (level-3) result: the
// centre 8x8 of its 16x16 extent, advanced 2^(4-2) = 4 generations,
// returned as a single masked tile rather than wrapped in another leaf.
// There is no macrocell representation below level 4, so this base case
// is carried out entirely in Tile bit arithmetic.
func leafResultTile(m *Macrocell) Tile {
	nw, ne, sw, se := m.tiles[nwQ], m.tiles[neQ], m.tiles[swQ], m.tiles[seQ]

	_, nwNE, nwSW, nwSE := nw.Quarters()
	neNW, _, neSW, neSE := ne.Quarters()
	swNW, swNE, _, swSE := sw.Quarters()
	seNW, seNE, seSW, _ := se.Quarters()

	n := FromQuadrants(nwNE, neNW, nwSE, neSW)
	s := FromQuadrants(swNE, seNW, swSE, seSW)
	w := FromQuadrants(nwSW, nwSE, swNW, swNE)
	e := FromQuadrants(neSW, neSE, seNW, seNE)
	c := FromQuadrants(nwSE, neSW, swNE, seNW)

	nwR, neR, swR, seR := nw.Result(), ne.Result(), sw.Result(), se.Result()
	nR, sR, wR, eR, cR := n.Result(), s.Result(), w.Result(), e.Result(), c.Result()

	nw2 := FromQuadrants(nwR, nR, wR, cR)
	ne2 := FromQuadrants(nR, neR, cR, eR)
	sw2 := FromQuadrants(wR, cR, swR, sR)
	se2 := FromQuadrants(cR, eR, sR, seR)

	return FromQuadrants(nw2.Result(), ne2.Result(), sw2.Result(), se2.Result())
}

// mustNode wraps Cache.Node for calls inside the evolver where the
// operands are built from this package's own invariants (equal levels,
// non-nil children): an error here means an invariant was broken, not a
// caller mistake, so it escalates as a panic rather than threading an
// error return through every recursive call.
func mustNode(m *Macrocell, err error) *Macrocell {
	if err != nil {
		panic(errors.Wrap(err, "hashlife: evolver invariant violated"))
	}
	return m
}

// resultFromLeafChildren computes the result of a level-5 node, whose
// four children are leaves: the nine subsquares are leaves too, combined
// from the children's tile fields directly (no shifting needed — a
// leaf's stored quadrants are already correctly positioned level-3
// squares), and each subsquare's own result is leafResultTile.
func (c *Cache) resultFromLeafChildren(m *Macrocell) *Macrocell {
	nw, ne, sw, se := m.children[nwQ], m.children[neQ], m.children[swQ], m.children[seQ]

	n := c.Leaf(nw.tiles[neQ], ne.tiles[nwQ], nw.tiles[seQ], ne.tiles[swQ])
	s := c.Leaf(sw.tiles[neQ], se.tiles[nwQ], sw.tiles[seQ], se.tiles[swQ])
	w := c.Leaf(nw.tiles[swQ], nw.tiles[seQ], sw.tiles[nwQ], sw.tiles[neQ])
	e := c.Leaf(ne.tiles[swQ], ne.tiles[seQ], se.tiles[nwQ], se.tiles[neQ])
	cc := c.Leaf(nw.tiles[seQ], ne.tiles[swQ], sw.tiles[neQ], se.tiles[nwQ])

	nwR, neR, swR, seR := leafResultTile(nw), leafResultTile(ne), leafResultTile(sw), leafResultTile(se)
	nR, sR, wR, eR, ccR := leafResultTile(n), leafResultTile(s), leafResultTile(w), leafResultTile(e), leafResultTile(cc)

	nw2 := c.Leaf(nwR, nR, wR, ccR)
	ne2 := c.Leaf(nR, neR, ccR, eR)
	sw2 := c.Leaf(wR, ccR, swR, sR)
	se2 := c.Leaf(ccR, eR, sR, seR)

	return c.Leaf(leafResultTile(nw2), leafResultTile(ne2), leafResultTile(sw2), leafResultTile(se2))
}

// resultFromNodeChildren computes the result of a node at level >= 6,
// whose four children are themselves nodes: nine overlapping subsquares
// are assembled from the children's grandchildren, each advanced via
// Result, and those nine results are recombined into the four quadrants
// of the final answer.
func (c *Cache) resultFromNodeChildren(m *Macrocell) *Macrocell {
	nw, ne, sw, se := m.children[nwQ], m.children[neQ], m.children[swQ], m.children[seQ]

	n := mustNode(c.Node(nw.children[neQ], ne.children[nwQ], nw.children[seQ], ne.children[swQ]))
	s := mustNode(c.Node(sw.children[neQ], se.children[nwQ], sw.children[seQ], se.children[swQ]))
	w := mustNode(c.Node(nw.children[swQ], nw.children[seQ], sw.children[nwQ], sw.children[neQ]))
	e := mustNode(c.Node(ne.children[swQ], ne.children[seQ], se.children[nwQ], se.children[neQ]))
	cc := mustNode(c.Node(nw.children[seQ], ne.children[swQ], sw.children[neQ], se.children[nwQ]))

	nwR, neR, swR, seR := c.Result(nw), c.Result(ne), c.Result(sw), c.Result(se)
	nR, sR, wR, eR, ccR := c.Result(n), c.Result(s), c.Result(w), c.Result(e), c.Result(cc)

	nw2 := mustNode(c.Node(nwR, nR, wR, ccR))
	ne2 := mustNode(c.Node(nR, neR, ccR, eR))
	sw2 := mustNode(c.Node(wR, ccR, swR, sR))
	se2 := mustNode(c.Node(ccR, eR, sR, seR))

	return mustNode(c.Node(c.Result(nw2), c.Result(ne2), c.Result(sw2), c.Result(se2)))
}

// Result returns the canonical macrocell representing m's centre
// 2^(k-1) x 2^(k-1) subsquare advanced by 2^(k-2) generations. It is
// memoised on m: repeated calls on the same macrocell identity return
// the same result identity, computed only on first demand.
//
// m at level 4 is a degenerate case not reached by the recursive
// algorithm proper (which only ever asks a level-5-or-above node for its
// result, bottoming out internally via leafResultTile): calling Result
// directly on a bare leaf returns a new leaf holding that level-3 result
// in its NW quadrant with the other three left empty, so the public API
// always returns a Macrocell even at the smallest level. Callers driving
// the evolver are expected to keep the root well above level 4 and never
// rely on this padding convention.
func (c *Cache) Result(m *Macrocell) *Macrocell {
	if m.result != nil {
		return m.result
	}

	var r *Macrocell
	switch {
	case m.level == 4:
		r = c.Leaf(leafResultTile(m), 0, 0, 0)
	case m.level == 5:
		r = c.resultFromLeafChildren(m)
	default:
		r = c.resultFromNodeChildren(m)
	}

	m.result = r
	return r
}
