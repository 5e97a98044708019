package rowan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldConfig is the YAML description of a scene's worlds: tile size, each
// location's tile rows, warp zones, enemy spawns, and the animation tables
// shared by entities.
//
// Example:
//
//	tileSize: 32
//	start: village
//	locations:
//	  - id: village
//	    tiles:
//	      - [0, 0, 1]
//	      - [0, 2, 0]
//	    warps:
//	      - { x: 0, y: 0, w: 32, h: 64, to: forest, spawnX: 48, spawnY: 48 }
//	animations:
//	  - { name: walk, row: 1, frames: 4, duration: 0.1, loop: true }
type WorldConfig struct {
	TileSize   int               `yaml:"tileSize"`
	Start      string            `yaml:"start"`
	Locations  []LocationConfig  `yaml:"locations"`
	Animations []AnimationConfig `yaml:"animations"`
}

// LocationConfig describes one location.
type LocationConfig struct {
	ID     string        `yaml:"id"`
	Tiles  [][]int       `yaml:"tiles"`
	Warps  []WarpConfig  `yaml:"warps"`
	Spawns []SpawnConfig `yaml:"spawns"`
}

// WarpConfig describes one warp zone.
type WarpConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	To     string  `yaml:"to"`
	SpawnX float64 `yaml:"spawnX"`
	SpawnY float64 `yaml:"spawnY"`
}

// SpawnConfig describes one enemy spawn point.
type SpawnConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Damage int     `yaml:"damage"`
	Speed  float64 `yaml:"speed"`
}

// AnimationConfig describes one sprite-sheet animation.
type AnimationConfig struct {
	Name     string  `yaml:"name"`
	Row      int     `yaml:"row"`
	Frames   int     `yaml:"frames"`
	Duration float64 `yaml:"duration"`
	Loop     bool    `yaml:"loop"`
}

// ParseWorldConfig parses and validates a YAML world description.
func ParseWorldConfig(data []byte) (*WorldConfig, error) {
	var cfg WorldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("rowan: failed to parse world config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWorldConfig reads and parses a YAML world description from disk.
func LoadWorldConfig(path string) (*WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rowan: failed to read world config: %w", err)
	}
	return ParseWorldConfig(data)
}

func (cfg *WorldConfig) validate() error {
	if cfg.TileSize <= 0 {
		return fmt.Errorf("rowan: world config: tileSize must be positive, got %d", cfg.TileSize)
	}
	if len(cfg.Locations) == 0 {
		return fmt.Errorf("rowan: world config: no locations")
	}
	seen := make(map[string]bool, len(cfg.Locations))
	for _, loc := range cfg.Locations {
		if loc.ID == "" {
			return fmt.Errorf("rowan: world config: location with empty id")
		}
		if seen[loc.ID] {
			return fmt.Errorf("rowan: world config: duplicate location id %q", loc.ID)
		}
		seen[loc.ID] = true
		if len(loc.Tiles) == 0 || len(loc.Tiles[0]) == 0 {
			return fmt.Errorf("rowan: world config: location %q has no tiles", loc.ID)
		}
		width := len(loc.Tiles[0])
		for y, row := range loc.Tiles {
			if len(row) != width {
				return fmt.Errorf("rowan: world config: location %q row %d has %d tiles, want %d",
					loc.ID, y, len(row), width)
			}
		}
	}
	for _, loc := range cfg.Locations {
		for _, warp := range loc.Warps {
			if !seen[warp.To] {
				return fmt.Errorf("rowan: world config: location %q warps to unknown location %q",
					loc.ID, warp.To)
			}
		}
	}
	for _, anim := range cfg.Animations {
		if anim.Frames <= 0 {
			return fmt.Errorf("rowan: world config: animation %q has %d frames", anim.Name, anim.Frames)
		}
		if anim.Frames > 1 && anim.Duration <= 0 {
			return fmt.Errorf("rowan: world config: animation %q needs a positive duration", anim.Name)
		}
	}
	if cfg.Start != "" && !seen[cfg.Start] {
		return fmt.Errorf("rowan: world config: start location %q not defined", cfg.Start)
	}
	return nil
}

// BuildScene constructs a Scene from the configuration: one Location per
// entry with its tiles, warps, and spawn points, viewed through camera. The
// start location (or the first listed) becomes active.
func (cfg *WorldConfig) BuildScene(camera *Camera) *Scene {
	scene := NewScene(camera)

	ordered := cfg.Locations
	if cfg.Start != "" {
		// Register the start location first so it activates.
		for i := range ordered {
			if ordered[i].ID == cfg.Start {
				scene.AddLocation(cfg.buildLocation(&ordered[i]))
				break
			}
		}
	}
	for i := range ordered {
		if scene.Location(ordered[i].ID) != nil {
			continue
		}
		scene.AddLocation(cfg.buildLocation(&ordered[i]))
	}
	return scene
}

func (cfg *WorldConfig) buildLocation(lc *LocationConfig) *Location {
	height := len(lc.Tiles)
	width := len(lc.Tiles[0])
	loc := NewLocation(lc.ID, width, height, cfg.TileSize)
	for y, row := range lc.Tiles {
		for x, id := range row {
			loc.Grid().SetTile(x, y, TileID(id))
		}
	}
	for _, w := range lc.Warps {
		loc.AddWarp(w.X, w.Y, w.W, w.H, w.To, Vec2{w.SpawnX, w.SpawnY})
	}
	for _, sp := range lc.Spawns {
		loc.AddEnemySpawn(EnemySpawn{
			Name:     sp.Name,
			Position: Vec2{sp.X, sp.Y},
			Damage:   sp.Damage,
			Speed:    sp.Speed,
		})
	}
	return loc
}

// Register adds every configured animation to animator.
func (cfg *WorldConfig) Register(animator *SpriteAnimator) {
	for _, a := range cfg.Animations {
		animator.Add(Animation{
			Name:          a.Name,
			Row:           a.Row,
			FrameCount:    a.Frames,
			FrameDuration: a.Duration,
			Loop:          a.Loop,
		})
	}
}
