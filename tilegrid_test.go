package rowan

import "testing"

func TestNewTileGridDefaultsToGrass(t *testing.T) {
	g := NewTileGrid(3, 3, 32)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if g.Tile(x, y) != TileGrass {
				t.Fatalf("tile (%d,%d) = %d, want grass", x, y, g.Tile(x, y))
			}
		}
	}
}

func TestWalkabilityScenario(t *testing.T) {
	// 3x3 grid, water at (1,1), everything else default grass.
	g := NewTileGrid(3, 3, 32)
	g.SetTile(1, 1, TileWater)

	if g.IsWalkable(1, 1) {
		t.Error("water should not be walkable")
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			if !g.IsWalkable(x, y) {
				t.Errorf("grass at (%d,%d) should be walkable", x, y)
			}
		}
	}
}

func TestDirtIsWalkableUnknownIsSolid(t *testing.T) {
	g := NewTileGrid(2, 1, 16)
	g.SetTile(0, 0, TileDirt)
	g.SetTile(1, 0, TileID(99))

	if !g.IsWalkable(0, 0) {
		t.Error("dirt should be walkable")
	}
	if !g.IsSolid(1, 0) {
		t.Error("unknown tile id should be solid by default")
	}
	if g.IsSolid(0, 0) {
		t.Error("dirt should not be solid")
	}
}

func TestSetTileWritesLinearIndex(t *testing.T) {
	g := NewTileGrid(4, 3, 16)
	g.SetTile(2, 1, TileWater)

	if g.Tile(2, 1) != TileWater {
		t.Error("SetTile should write the addressed cell")
	}
	// Neighbors untouched.
	if g.Tile(1, 1) != TileGrass || g.Tile(2, 0) != TileGrass || g.Tile(2, 2) != TileGrass {
		t.Error("SetTile must not write any other cell")
	}
	if g.tiles[1*4+2] != TileWater {
		t.Error("storage is row-major tiles[y*width+x]")
	}
}

func TestSetTileOutOfRangeIgnored(t *testing.T) {
	g := NewTileGrid(2, 2, 16)
	g.SetTile(-1, 0, TileWater)
	g.SetTile(0, -1, TileWater)
	g.SetTile(2, 0, TileWater)
	g.SetTile(0, 2, TileWater)

	for i, id := range g.tiles {
		if id != TileGrass {
			t.Fatalf("cell %d mutated by out-of-range SetTile", i)
		}
	}
}

func TestFill(t *testing.T) {
	g := NewTileGrid(2, 2, 16)
	g.Fill(TileEmpty)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if g.Tile(x, y) != TileEmpty {
				t.Fatalf("tile (%d,%d) not filled", x, y)
			}
		}
	}
}

func TestTileAt(t *testing.T) {
	g := NewTileGrid(10, 10, 32)
	x, y := g.TileAt(Vec2{95, 32})
	if x != 2 || y != 1 {
		t.Errorf("TileAt(95, 32) = (%d, %d), want (2, 1)", x, y)
	}
	x, y = g.TileAt(Vec2{0, 0})
	if x != 0 || y != 0 {
		t.Errorf("TileAt(0, 0) = (%d, %d), want (0, 0)", x, y)
	}
}

func TestPixelExtent(t *testing.T) {
	g := NewTileGrid(20, 15, 32)
	if g.PixelWidth() != 640 || g.PixelHeight() != 480 {
		t.Errorf("pixel extent = %dx%d, want 640x480", g.PixelWidth(), g.PixelHeight())
	}
}
