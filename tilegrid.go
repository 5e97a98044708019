package rowan

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// TileID identifies a ground tile type. Non-negative values index the fixed
// tile enumeration and double as positions in the tileset atlas; negative
// values mean "empty" and are skipped during rendering.
type TileID int

const (
	TileGrass TileID = iota
	TileDirt
	TileWater
)

// TileEmpty marks a cell with no tile. Empty cells are not rendered.
const TileEmpty TileID = -1

// TileGrid is a dense rectangular array of tile ids stored row-major:
// tiles[y*width+x]. It answers walkability queries and renders itself as
// discrete textured quads.
type TileGrid struct {
	width    int
	height   int
	tileSize int
	tiles    []TileID
}

// NewTileGrid creates a grid of the given dimensions with every cell set to
// TileGrass.
func NewTileGrid(width, height, tileSize int) *TileGrid {
	return &TileGrid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		tiles:    make([]TileID, width*height),
	}
}

// Tile returns the id stored at (x, y). No bounds check is performed:
// callers are responsible for staying within [0,Width) x [0,Height), and
// out-of-range access panics or reads the wrong cell.
func (g *TileGrid) Tile(x, y int) TileID {
	return g.tiles[y*g.width+x]
}

// SetTile stores id at (x, y). Out-of-range coordinates are ignored.
func (g *TileGrid) SetTile(x, y int, id TileID) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.tiles[y*g.width+x] = id
}

// Fill sets every cell to id.
func (g *TileGrid) Fill(id TileID) {
	for i := range g.tiles {
		g.tiles[i] = id
	}
}

// IsWalkable reports whether the tile at (x, y) can be walked on.
// Grass and dirt are walkable; everything else, water included, is not.
// Coordinates follow the Tile contract: out of range is the caller's fault.
func (g *TileGrid) IsWalkable(x, y int) bool {
	switch g.Tile(x, y) {
	case TileGrass, TileDirt:
		return true
	default:
		return false
	}
}

// IsSolid reports whether the tile at (x, y) blocks movement. The
// enumeration is closed: any id outside the known walkable set is solid.
func (g *TileGrid) IsSolid(x, y int) bool {
	return !g.IsWalkable(x, y)
}

// Width returns the grid width in tiles.
func (g *TileGrid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *TileGrid) Height() int { return g.height }

// TileSize returns the edge length of one tile in pixels.
func (g *TileGrid) TileSize() int { return g.tileSize }

// PixelWidth returns the grid width in pixels.
func (g *TileGrid) PixelWidth() int { return g.width * g.tileSize }

// PixelHeight returns the grid height in pixels.
func (g *TileGrid) PixelHeight() int { return g.height * g.tileSize }

// TileAt converts a world-space point to grid coordinates. Floor division,
// so points left of or above the grid map to negative coordinates rather
// than truncating toward cell zero.
func (g *TileGrid) TileAt(p Vec2) (x, y int) {
	ts := float64(g.tileSize)
	return int(math.Floor(p.X / ts)), int(math.Floor(p.Y / ts))
}

// Draw renders every non-empty cell as one independent quad, positioned at
// (x*tileSize, y*tileSize) in world space and sourced from the tileset
// atlas by tile id: column id % tilesPerRow, row id / tilesPerRow.
// No batching or frustum culling is performed; every stored cell issues a
// draw call regardless of visibility.
func (g *TileGrid) Draw(dst *ebiten.Image, cam *Camera, tileset *Texture) {
	if tileset == nil || tileset.Image() == nil {
		return
	}
	tilesPerRow := tileset.Width() / g.tileSize
	if tilesPerRow <= 0 {
		return
	}

	view := cam.GeoM()
	atlas := tileset.Image()
	ts := g.tileSize

	for i, id := range g.tiles {
		if id < 0 {
			continue
		}

		col := int(id) % tilesPerRow
		row := int(id) / tilesPerRow
		src := atlas.SubImage(image.Rect(col*ts, row*ts, (col+1)*ts, (row+1)*ts)).(*ebiten.Image)

		x := i % g.width
		y := i / g.width

		var op ebiten.DrawImageOptions
		op.GeoM.Translate(float64(x*ts), float64(y*ts))
		op.GeoM.Concat(view)
		dst.DrawImage(src, &op)
	}
}
