// Package hashlife implements Gosper's Hashlife algorithm: a hash-consed
// quadtree of "macrocells" memoising Conway's-Life evolution so that
// self-similar regions of a pattern are advanced in time only once.
package hashlife

// Tile is an 8x8 block of Life cells packed one-per-bit, bit i holding the
// cell at (x = i%8, y = i/8). Depending on how it was produced, a Tile's
// meaningful content may occupy its full 8x8 extent or only a centred
// sub-square (side 2, 4 or 6) with the remaining cells held at zero — the
// nominal side a Tile carries is a property of where it came from, not of
// the type itself.
type Tile uint64

const (
	mask6x6 uint64 = 0x007e7e7e7e7e7e00
	mask4x4 uint64 = 0x00003c3c3c3c0000
	mask2x2 uint64 = 0x0000001818000000

	// Raw (uncentred) quadrant masks: cols/rows 0-3 or 4-7.
	rawNW uint64 = 0x000000000f0f0f0f
	rawNE uint64 = 0x00000000f0f0f0f0
	rawSW uint64 = 0x0f0f0f0f00000000
	rawSE uint64 = 0xf0f0f0f000000000
)

// shift moves a tile's bits right columns and down rows (either may be
// negative) as a single signed bit shift of (right + 8*down) bits, left
// for positive amounts and right for negative ones. It is used both to
// move a centred quadrant out to a corner (FromQuadrants) and a corner
// out to the centre (Quarters).
func shift(t Tile, right, down int) Tile {
	amt := right + 8*down
	if amt >= 0 {
		return Tile(uint64(t) << uint(amt))
	}
	return Tile(uint64(t) >> uint(-amt))
}

// Shift moves every live cell right columns and down rows. Cells moved
// above the top row or below the bottom row are dropped; cells moved past
// the left or right edge wrap onto the neighbouring row, since the move is
// a single shift of the 64-bit word. Used to compare a tile
// against a translated copy of itself, e.g. to check that a glider drifts
// by a fixed offset every few generations.
func (t Tile) Shift(right, down int) Tile {
	return shift(t, right, down)
}

// FromQuadrants builds an 8x8 tile from four same-level subtiles, each
// assumed to carry its content centred (as Quarters and Result leave it):
// nw/ne/sw/se are shifted 2 cells horizontally and vertically into the
// tile's four corners and OR-ed together.
func FromQuadrants(nw, ne, sw, se Tile) Tile {
	return shift(nw, -2, -2) | shift(ne, 2, -2) | shift(sw, -2, 2) | shift(se, 2, 2)
}

// Quarters splits an 8x8 tile into its four 4x4 corners, each re-centred
// within a fresh 8x8 word.
func (t Tile) Quarters() (nw, ne, sw, se Tile) {
	nw = Tile(uint64(shift(t&Tile(rawNW), 2, 2)) & mask4x4)
	ne = Tile(uint64(shift(t&Tile(rawNE), -2, 2)) & mask4x4)
	sw = Tile(uint64(shift(t&Tile(rawSW), 2, -2)) & mask4x4)
	se = Tile(uint64(shift(t&Tile(rawSE), -2, -2)) & mask4x4)
	return
}

func fullAdder(a, b, c uint64) (sum, carry uint64) {
	sum = a ^ b ^ c
	carry = (a & b) | (b & c) | (a & c)
	return
}

func halfAdder(a, b uint64) (sum, carry uint64) {
	return a ^ b, a & b
}

// Next evolves the tile one Life generation under standard B3/S23 rules,
// using a bit-parallel "Life in a Register" adder network: three
// bit-planes carry the horizontal-then-vertical neighbour count modulo 8,
// and a cell is live next generation at count 3 (born with 3 neighbours,
// or surviving with 2) or, if already live, at count 4 (itself plus 3
// live neighbours). Only the centre 6x6 of the result is meaningful; the
// outer ring is zeroed since it has no full neighbourhood inside the
// tile.
func (t Tile) Next() Tile {
	c := uint64(t)

	left := c << 1
	right := c >> 1
	m1, m2 := fullAdder(left, c, right)

	up1, up2 := m1<<8, m2<<8
	dn1, dn2 := m1>>8, m2>>8

	s1, s2a := fullAdder(up1, m1, dn1)
	s2b, s4a := fullAdder(up2, m2, dn2)
	s2, s4b := halfAdder(s2a, s2b)
	s4 := s4a ^ s4b

	next := (c &^ s1 &^ s2 & s4) | (s1 & s2 &^ s4)
	return Tile(next & mask6x6)
}

// Result advances the tile two Life generations, returning the centre
// 4x4.
func (t Tile) Result() Tile {
	return Tile(uint64(t.Next().Next()) & mask4x4)
}
