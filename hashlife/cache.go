package hashlife

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"

	"github.com/dchest/siphash"
)

// Cache is a hash-consed quadtree store: the single source of canonical
// Macrocells for one evolver session. Two caches never share macrocells;
// each evolving universe owns its own Cache rather than sharing
// process-wide state.
type Cache struct {
	k0, k1  uint64
	buckets [][]*Macrocell

	leaves int
	nodes  int
	hits   int
	misses int

	debugLevel int
	debugOut   io.Writer
}

// NewCache constructs an empty hash cons.
func NewCache(opts ...Option) *Cache {
	cfg := makeConfig()
	for _, o := range opts {
		o(cfg)
	}
	return &Cache{
		k0:      cfg.seed0,
		k1:      cfg.seed1,
		buckets: make([][]*Macrocell, cfg.buckets),
	}
}

// Debug enables diagnostic dumps of cache-statistics activity to w at the
// given verbosity level (0 disables them).
func (c *Cache) Debug(level int, w io.Writer) {
	c.debugLevel = level
	c.debugOut = w
}

func (c *Cache) tracef(level int, format string, args ...any) {
	if c.debugLevel < level || c.debugOut == nil {
		return
	}
	fmt.Fprintf(c.debugOut, format, args...)
}

// Stats reports the cache's current population and hash-cons hit rate,
// for diagnostics and benchmarking.
type Stats struct {
	Leaves int
	Nodes  int
	Hits   int
	Misses int
}

func (c *Cache) Stats() Stats {
	return Stats{Leaves: c.leaves, Nodes: c.nodes, Hits: c.hits, Misses: c.misses}
}

func (c *Cache) hash(level int, a, b, c2, d uint64) uint64 {
	var buf [40]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(level))
	binary.LittleEndian.PutUint64(buf[8:16], a)
	binary.LittleEndian.PutUint64(buf[16:24], b)
	binary.LittleEndian.PutUint64(buf[24:32], c2)
	binary.LittleEndian.PutUint64(buf[32:40], d)
	return siphash.Hash(c.k0, c.k1, buf[:])
}

func (c *Cache) bucketFor(h uint64) int {
	if len(c.buckets) == 0 {
		return 0
	}
	return int(h % uint64(len(c.buckets)))
}

// maybeGrow doubles the bucket count once load factor reaches 1; entries
// are never removed so this only ever runs forward.
func (c *Cache) maybeGrow() {
	total := c.leaves + c.nodes
	if total < len(c.buckets) {
		return
	}
	grown := make([][]*Macrocell, len(c.buckets)*2)
	for _, bucket := range c.buckets {
		for _, m := range bucket {
			var h uint64
			if m.level == 4 {
				h = c.hash(4, uint64(m.tiles[nwQ]), uint64(m.tiles[neQ]), uint64(m.tiles[swQ]), uint64(m.tiles[seQ]))
			} else {
				h = c.hash(m.level, idOf(m.children[nwQ]), idOf(m.children[neQ]), idOf(m.children[swQ]), idOf(m.children[seQ]))
			}
			idx := int(h % uint64(len(grown)))
			grown[idx] = append(grown[idx], m)
		}
	}
	c.buckets = grown
	c.tracef(1, "hashlife: grew bucket table to %d buckets (leaves=%d nodes=%d)\n", len(grown), c.leaves, c.nodes)
}

// idOf gives a stable 64-bit identity for a canonical macrocell, used to
// build hash-cons keys for parent nodes and as the id Macrocell.Cells
// yields — safe because canonical macrocells never move or get replaced.
func idOf(m *Macrocell) uint64 {
	return uint64(uintptr(unsafe.Pointer(m)))
}

// Leaf returns the canonical level-4 macrocell for the given quadrant
// tiles, creating one if none exists yet.
func (c *Cache) Leaf(nw, ne, sw, se Tile) *Macrocell {
	h := c.hash(4, uint64(nw), uint64(ne), uint64(sw), uint64(se))
	idx := c.bucketFor(h)
	for _, cand := range c.buckets[idx] {
		if cand.level == 4 && cand.tiles[nwQ] == nw && cand.tiles[neQ] == ne &&
			cand.tiles[swQ] == sw && cand.tiles[seQ] == se {
			c.hits++
			c.tracef(2, "hashlife: leaf hit (leaves=%d hits=%d misses=%d)\n", c.leaves, c.hits, c.misses)
			return cand
		}
	}
	m := &Macrocell{level: 4, tiles: [4]Tile{nw, ne, sw, se}}
	c.buckets[idx] = append(c.buckets[idx], m)
	c.leaves++
	c.misses++
	c.tracef(2, "hashlife: leaf miss, interning (leaves=%d hits=%d misses=%d)\n", c.leaves, c.hits, c.misses)
	c.maybeGrow()
	return m
}

// Node returns the canonical level-(k+1) macrocell for four equal-level
// children, creating one if none exists yet. It errors if any child is
// nil or if the children's levels differ.
func (c *Cache) Node(nw, ne, sw, se *Macrocell) (*Macrocell, error) {
	if nw == nil || ne == nil || sw == nil || se == nil {
		return nil, newNilChildError()
	}
	if nw.level != ne.level || nw.level != sw.level || nw.level != se.level {
		return nil, newLevelMismatchError(nw.level, ne.level, sw.level, se.level)
	}

	level := nw.level + 1
	h := c.hash(level, idOf(nw), idOf(ne), idOf(sw), idOf(se))
	idx := c.bucketFor(h)
	for _, cand := range c.buckets[idx] {
		if cand.level == level && cand.children[nwQ] == nw && cand.children[neQ] == ne &&
			cand.children[swQ] == sw && cand.children[seQ] == se {
			c.hits++
			c.tracef(2, "hashlife: node hit at level %d (nodes=%d hits=%d misses=%d)\n", level, c.nodes, c.hits, c.misses)
			return cand, nil
		}
	}
	m := &Macrocell{level: level, children: [4]*Macrocell{nw, ne, sw, se}}
	c.buckets[idx] = append(c.buckets[idx], m)
	c.nodes++
	c.misses++
	c.tracef(2, "hashlife: node miss at level %d, interning (nodes=%d hits=%d misses=%d)\n", level, c.nodes, c.hits, c.misses)
	c.maybeGrow()
	return m, nil
}

// Decode renders m as an explicit dense boolean grid, row-major,
// side 2^level on a side — a counterpart to TileFromASCII used mainly by
// tests comparing against a naive reference evolver.
func (c *Cache) Decode(m *Macrocell) [][]bool {
	side := 1 << uint(m.level)
	grid := make([][]bool, side)
	for y := range grid {
		grid[y] = make([]bool, side)
	}
	for x, y := range m.LiveCells() {
		grid[y][x] = true
	}
	return grid
}
