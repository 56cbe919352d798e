package hashlife

import "testing"

// Oscillators round-trip, and the empty tile is a fixed point.
func TestTileOscillators(t *testing.T) {
	var empty Tile
	if got := empty.Next(); got != empty {
		t.Fatalf("empty.Next() = %#x, want 0", uint64(got))
	}

	// Blinker: horizontal three-cell row at row 3, columns 2-4.
	blinker := Tile(1<<26 | 1<<27 | 1<<28)
	if got := blinker.Result(); got != blinker {
		t.Fatalf("blinker.Result() = %#x, want %#x", uint64(got), uint64(blinker))
	}

	// Toad: the classic two-row, offset-by-one oscillator, placed so its
	// whole footprint (and the wider transient phase) stays inside the
	// tile with room to spare.
	toad := Tile(1<<19 | 1<<20 | 1<<21 | 1<<26 | 1<<27 | 1<<28)
	if got := toad.Result(); got != toad {
		t.Fatalf("toad.Result() = %#x, want %#x", uint64(got), uint64(toad))
	}
}

// A blinker oscillates into a vertical column after one step, and two
// steps return it to its original shape (masked to the centre 6x6).
func TestBlinkerLeafLevel(t *testing.T) {
	tile, err := TileFromASCII(
		"00000000" +
			"00000000" +
			"00000000" +
			"00111000" +
			"00000000" +
			"00000000" +
			"00000000" +
			"00000000",
	)
	if err != nil {
		t.Fatalf("TileFromASCII: %v", err)
	}

	column, err := TileFromASCII(
		"00000000" +
			"00000000" +
			"00010000" +
			"00010000" +
			"00010000" +
			"00000000" +
			"00000000" +
			"00000000",
	)
	if err != nil {
		t.Fatalf("TileFromASCII: %v", err)
	}

	if got := tile.Next(); got != column {
		t.Fatalf("blinker.Next() = %#x, want vertical column %#x", uint64(got), uint64(column))
	}
	if got := tile.Next().Next(); got != tile&Tile(mask6x6) {
		t.Fatalf("blinker.Next().Next() = %#x, want %#x", uint64(got), uint64(tile&Tile(mask6x6)))
	}
}

// A glider advanced four generations equals itself shifted by (1, 1).
func TestGliderDrift(t *testing.T) {
	glider, err := TileFromASCII(
		"00000000" +
			"00100000" +
			"00010000" +
			"01110000" +
			"00000000" +
			"00000000" +
			"00000000" +
			"00000000",
	)
	if err != nil {
		t.Fatalf("TileFromASCII: %v", err)
	}

	advanced := glider.Next().Next().Next().Next()
	shifted := glider.Shift(1, 1)
	if advanced != shifted {
		t.Fatalf("glider advanced 4 gens = %#x, want shifted %#x", uint64(advanced), uint64(shifted))
	}
}

func TestTileFromASCIIShort(t *testing.T) {
	if _, err := TileFromASCII("0101"); err == nil {
		t.Fatal("expected error for fewer than 64 cell characters")
	}
}

func TestTileFromASCIIIgnoresOtherCharacters(t *testing.T) {
	withSpaces := "0000 0000\n" +
		"00000000\n00000000\n00111000\n00000000\n00000000\n00000000\n00000000"
	got, err := TileFromASCII(withSpaces)
	if err != nil {
		t.Fatalf("TileFromASCII: %v", err)
	}
	want := Tile(1<<26 | 1<<27 | 1<<28)
	if got != want {
		t.Fatalf("TileFromASCII(with whitespace) = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestQuartersFromQuadrantsRoundTrip(t *testing.T) {
	samples := []Tile{0, ^Tile(0), Tile(1<<26 | 1<<27 | 1<<28), Tile(0x0102030405060708)}
	for _, tile := range samples {
		nw, ne, sw, se := tile.Quarters()
		got := FromQuadrants(nw, ne, sw, se)
		if got != tile {
			t.Errorf("FromQuadrants(tile.Quarters()) = %#x, want %#x", uint64(got), uint64(tile))
		}
	}
}
