package rowan

import "github.com/hajimehoshi/ebiten/v2"

// Scene owns the world: every location, the active one, the camera, the
// player and enemies, and the GPU resources polled for hot reload. All
// state is mutated from a single frame-stepped thread; reload checks run
// before anything renders, so a swap and a draw never observe each other
// mid-change.
//
// Each Update runs the frame pipeline in a fixed order: reload poll, entity
// updates (which may arm a location transition), transition apply, camera.
type Scene struct {
	// EnemyFactory builds an enemy when a location activates. Defaults to
	// a headless enemy with no sprite; games replace it to attach visuals.
	EnemyFactory func(EnemySpawn) *Enemy

	locations map[string]*Location
	active    *Location
	pending   PendingTransition

	camera  *Camera
	player  *Player
	enemies []*Enemy

	tileset     *Texture
	reloadables []Reloadable
}

// NewScene creates an empty scene viewed through camera.
func NewScene(camera *Camera) *Scene {
	return &Scene{
		EnemyFactory: func(spawn EnemySpawn) *Enemy {
			return NewEnemy(spawn, nil, nil)
		},
		locations: make(map[string]*Location),
		camera:    camera,
	}
}

// AddLocation registers a location under its id. The first location added
// becomes active.
func (s *Scene) AddLocation(loc *Location) {
	s.locations[loc.ID()] = loc
	if s.active == nil {
		s.activate(loc, Vec2{}, false)
	}
}

// Location returns the location registered under id, or nil.
func (s *Scene) Location(id string) *Location {
	return s.locations[id]
}

// Active returns the currently active location, or nil before any location
// has been added.
func (s *Scene) Active() *Location {
	return s.active
}

// SetPlayer installs the focus entity. The camera follows it and its
// position is tested against the active location's warp zones.
func (s *Scene) SetPlayer(player *Player) {
	s.player = player
}

// Player returns the focus entity.
func (s *Scene) Player() *Player {
	return s.player
}

// Enemies returns the enemies of the active location. The returned slice
// MUST NOT be mutated.
func (s *Scene) Enemies() []*Enemy {
	return s.enemies
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetTileset sets the texture used to render tile grids.
func (s *Scene) SetTileset(tileset *Texture) {
	s.tileset = tileset
}

// Track adds a resource to the per-frame reload poll.
func (s *Scene) Track(r Reloadable) {
	s.reloadables = append(s.reloadables, r)
}

// Pending reports whether a location transition is waiting to be applied.
func (s *Scene) Pending() bool {
	return s.pending.Armed()
}

// RequestTransition arms a transition to the named location if none is
// already armed. Gameplay code can call this directly; warp-zone collisions
// arm it automatically during Update.
func (s *Scene) RequestTransition(destinationID string, spawn Vec2) bool {
	return s.pending.TryArm(destinationID, spawn)
}

// Update advances the scene by dt seconds: reload poll, entity updates and
// warp collision, at most one transition apply, then camera.
func (s *Scene) Update(dt float64) {
	for _, r := range s.reloadables {
		r.CheckReload()
	}

	if s.player != nil && s.active != nil {
		before := s.player.Position()
		s.player.Update(dt)
		s.resolveWalkability(before)

		if zone := s.active.CheckWarpCollisions(s.player.Position()); zone != nil {
			s.pending.TryArm(zone.DestinationID, zone.SpawnPosition)
		}
	}
	for _, e := range s.enemies {
		if s.player != nil {
			e.SetTarget(s.player.Position())
		}
		e.Update(dt)
	}

	s.applyPendingTransition()

	s.camera.Update(dt)
	if s.player != nil {
		s.camera.CenterOn(s.player.Position())
	}
}

// resolveWalkability reverts the player's move when it landed on a
// non-walkable or out-of-range tile. Tile queries are pre-validated here
// because TileGrid.Tile performs no bounds check of its own.
func (s *Scene) resolveWalkability(before Vec2) {
	grid := s.active.Grid()
	pos := s.player.Position()
	x, y := grid.TileAt(pos)
	if x < 0 || x >= grid.Width() || y < 0 || y >= grid.Height() || !grid.IsWalkable(x, y) {
		s.player.SetPosition(before)
	}
}

// applyPendingTransition applies at most one deferred transition. It runs
// after all entity updates have completed and before anything renders, so a
// world swap never invalidates state still in use. An unknown destination
// is logged and dropped.
func (s *Scene) applyPendingTransition() {
	destID, spawn, ok := s.pending.take()
	if !ok {
		return
	}
	dest, found := s.locations[destID]
	if !found {
		errorf("transition to unknown location %q dropped", destID)
		return
	}
	if s.active != nil {
		s.active.OnExit()
	}
	s.activate(dest, spawn, true)
}

// activate makes loc the active location: enters it, repositions the
// player (except when the very first location comes up and the player
// keeps its starting position), confines the camera to the new extent, and
// spawns the location's enemies.
func (s *Scene) activate(loc *Location, spawn Vec2, reposition bool) {
	s.active = loc
	loc.OnEnter()

	if reposition && s.player != nil {
		s.player.SetPosition(spawn)
	}

	bounds := loc.Bounds()
	s.camera.SetWorldBounds(bounds.X, bounds.Y, bounds.X+bounds.Width, bounds.Y+bounds.Height)

	s.enemies = s.enemies[:0]
	for _, es := range loc.EnemySpawns() {
		s.enemies = append(s.enemies, s.EnemyFactory(es))
	}
}

// Draw renders the active location's tile grid, then the enemies, then the
// player, all through the camera transform.
func (s *Scene) Draw(dst *ebiten.Image) {
	if s.active == nil {
		return
	}
	s.active.Draw(dst, s.camera, s.tileset)
	for _, e := range s.enemies {
		e.Draw(dst, s.camera)
	}
	if s.player != nil {
		s.player.Draw(dst, s.camera)
	}
}
