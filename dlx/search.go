package dlx

import "iter"

// cover removes item header c from the header list and hides every row
// still passing through c's column. c's own prev/next are left untouched
// so uncover can relink it verbatim, and within each hidden row every
// other cell is unlinked from its own column (but never from the row,
// since rows aren't linked lists here — see hideRow).
func (p *Problem) cover(c int32) {
	p.itemNext[p.itemPrev[c]] = p.itemNext[c]
	p.itemPrev[p.itemNext[c]] = p.itemPrev[c]

	for r := p.down[c]; r != c; r = p.down[r] {
		p.hideRow(r)
	}
}

// uncover is cover's exact inverse, walking c's column upward and each
// row leftward, so that every pointer and every count matches its
// pre-cover value byte-for-byte.
func (p *Problem) uncover(c int32) {
	for r := p.up[c]; r != c; r = p.up[r] {
		p.unhideRow(r)
	}
	p.itemNext[p.itemPrev[c]] = c
	p.itemPrev[p.itemNext[c]] = c
}

// hideRow unlinks every cell of r's option other than r itself from its
// column, decrementing that column's count. The row is walked in its
// owned-vector order rather than via row links.
func (p *Problem) hideRow(r int32) {
	row := p.rows[p.owner[r]]
	for _, j := range row {
		if j == r {
			continue
		}
		p.down[p.up[j]] = p.down[j]
		p.up[p.down[j]] = p.up[j]
		p.count[p.top[j]]--
	}
}

// unhideRow is hideRow's exact inverse, walked in reverse row order (not
// required for correctness here, since each cell's own up/down were
// never rewritten by hideRow, but kept symmetric with it).
func (p *Problem) unhideRow(r int32) {
	row := p.rows[p.owner[r]]
	for i := len(row) - 1; i >= 0; i-- {
		j := row[i]
		if j == r {
			continue
		}
		p.count[p.top[j]]++
		p.down[p.up[j]] = j
		p.up[p.down[j]] = j
	}
}

// nextCandidate picks the item with minimum remaining count (MRV),
// breaking ties in favor of the first one encountered in header-list
// order.
func (p *Problem) nextCandidate() int32 {
	best := p.itemNext[root]
	bestCount := p.count[best]
	for c := p.itemNext[best]; c != root; c = p.itemNext[c] {
		if p.count[c] < bestCount {
			best, bestCount = c, p.count[c]
		}
	}
	return best
}

// search implements Algorithm X. Choosing row r additionally
// covers every other column r's option touches, removing from consideration
// every other row that would conflict with r; backtracking uncovers them in
// reverse order before trying the next row down c's column. It returns false
// once the caller's yield has asked for iteration to stop, propagating that
// signal up through the recursion so no further branches are explored.
func (p *Problem) search(subset []int32, yield func([]int) bool) bool {
	if p.itemNext[root] == root {
		sol := make([]int, len(subset))
		for i, oi := range subset {
			sol[i] = int(oi)
		}
		p.tracef(1, "dlx: emit solution %v\n", sol)
		return yield(sol)
	}

	c := p.nextCandidate()
	if p.count[c] == 0 {
		return true // dead end; not a stop request, just nothing here
	}

	p.cover(c)
	cont := true
	for r := p.down[c]; cont && r != c; r = p.down[r] {
		row := p.rows[p.owner[r]]
		for _, j := range row {
			if j != r {
				p.cover(p.top[j])
			}
		}

		subset = append(subset, p.owner[r])
		cont = p.search(subset, yield)
		subset = subset[:len(subset)-1]

		for i := len(row) - 1; i >= 0; i-- {
			if j := row[i]; j != r {
				p.uncover(p.top[j])
			}
		}
	}
	p.uncover(c)
	return cont
}

// Solutions returns a lazy iterator over every exact cover of the universe,
// in search order. Each yielded slice holds the option indices (0-based
// positions in the input option family) making up one solution.
//
// This is the iter.Seq companion to SolveAll: a caller that only needs
// the first few solutions, or wants to stop early, avoids the cost of
// the rest of the search tree.
func (p *Problem) Solutions() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		subset := make([]int32, 0, p.nItems)
		p.search(subset, yield)
	}
}

// SolveAll collects every distinct exact-cover solution by running the
// full search.
func (p *Problem) SolveAll() [][]int {
	var out [][]int
	for sol := range p.Solutions() {
		out = append(out, sol)
	}
	return out
}

// SolveOne returns the first exact-cover solution found, short-circuiting
// the search as soon as it is found.
func (p *Problem) SolveOne() ([]int, bool) {
	for sol := range p.Solutions() {
		return sol, true
	}
	return nil, false
}
