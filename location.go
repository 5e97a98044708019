package rowan

import "github.com/hajimehoshi/ebiten/v2"

// EnemySpawn records where an enemy appears when its location activates.
type EnemySpawn struct {
	Name     string
	Position Vec2
	Damage   int
	Speed    float64
}

// Location is one world the player can be in: a tile grid, the warp zones
// leading out of it, and the enemies that spawn in it. Locations are built
// once and switched between by the Scene's transition protocol.
type Location struct {
	id          string
	grid        *TileGrid
	warps       []WarpZone
	enemySpawns []EnemySpawn
}

// NewLocation creates a location with a tilesX by tilesY grid of the given
// tile size, initially all grass.
func NewLocation(id string, tilesX, tilesY, tileSize int) *Location {
	return &Location{
		id:   id,
		grid: NewTileGrid(tilesX, tilesY, tileSize),
	}
}

// ID returns the location's identifier.
func (l *Location) ID() string {
	return l.id
}

// Grid returns the location's tile grid.
func (l *Location) Grid() *TileGrid {
	return l.grid
}

// AddWarp registers a warp zone. Zones are tested in registration order, so
// overlapping zones resolve deterministically to the earliest one added.
func (l *Location) AddWarp(x, y, w, h float64, destinationID string, spawn Vec2) {
	l.warps = append(l.warps, WarpZone{
		Bounds:        Rect{X: x, Y: y, Width: w, Height: h},
		DestinationID: destinationID,
		SpawnPosition: spawn,
	})
}

// CheckWarpCollisions returns the first registered warp zone containing
// position, or nil when none does.
func (l *Location) CheckWarpCollisions(position Vec2) *WarpZone {
	for i := range l.warps {
		if l.warps[i].Contains(position) {
			return &l.warps[i]
		}
	}
	return nil
}

// Warps returns the registered warp zones in registration order. The
// returned slice MUST NOT be mutated.
func (l *Location) Warps() []WarpZone {
	return l.warps
}

// AddEnemySpawn registers an enemy spawn point.
func (l *Location) AddEnemySpawn(spawn EnemySpawn) {
	l.enemySpawns = append(l.enemySpawns, spawn)
}

// EnemySpawns returns the registered spawn points.
func (l *Location) EnemySpawns() []EnemySpawn {
	return l.enemySpawns
}

// Bounds returns the location's extent in pixels, the rectangle the camera
// is confined to while this location is active.
func (l *Location) Bounds() Rect {
	return Rect{
		Width:  float64(l.grid.PixelWidth()),
		Height: float64(l.grid.PixelHeight()),
	}
}

// OnEnter is called when the location becomes active.
func (l *Location) OnEnter() {
	debugf("entering location %s", l.id)
}

// OnExit is called when the location is retired.
func (l *Location) OnExit() {
	debugf("leaving location %s", l.id)
}

// Draw renders the location's tile grid with the given tileset.
func (l *Location) Draw(dst *ebiten.Image, cam *Camera, tileset *Texture) {
	l.grid.Draw(dst, cam, tileset)
}
