package rowan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validWorldYAML = `
tileSize: 32
start: village
locations:
  - id: village
    tiles:
      - [0, 0, 1]
      - [0, 2, 0]
    warps:
      - { x: 0, y: 0, w: 32, h: 64, to: forest, spawnX: 48, spawnY: 48 }
  - id: forest
    tiles:
      - [0, 0]
      - [0, 0]
    spawns:
      - { name: goblin, x: 40, y: 40, damage: 15, speed: 40 }
animations:
  - { name: walk, row: 1, frames: 4, duration: 0.1, loop: true }
  - { name: idle, row: 0, frames: 1, duration: 0.1, loop: true }
`

func TestParseWorldConfig(t *testing.T) {
	cfg, err := ParseWorldConfig([]byte(validWorldYAML))
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.TileSize)
	assert.Equal(t, "village", cfg.Start)
	require.Len(t, cfg.Locations, 2)
	assert.Equal(t, [][]int{{0, 0, 1}, {0, 2, 0}}, cfg.Locations[0].Tiles)
	require.Len(t, cfg.Locations[0].Warps, 1)
	assert.Equal(t, "forest", cfg.Locations[0].Warps[0].To)
	require.Len(t, cfg.Animations, 2)
	assert.True(t, cfg.Animations[0].Loop)
}

func TestParseWorldConfigRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"not yaml", `{{{`},
		{"zero tile size", `
tileSize: 0
locations:
  - id: a
    tiles: [[0]]
`},
		{"no locations", `tileSize: 32`},
		{"empty id", `
tileSize: 32
locations:
  - tiles: [[0]]
`},
		{"duplicate id", `
tileSize: 32
locations:
  - id: a
    tiles: [[0]]
  - id: a
    tiles: [[0]]
`},
		{"ragged rows", `
tileSize: 32
locations:
  - id: a
    tiles:
      - [0, 0]
      - [0]
`},
		{"warp to unknown location", `
tileSize: 32
locations:
  - id: a
    tiles: [[0]]
    warps:
      - { x: 0, y: 0, w: 1, h: 1, to: missing }
`},
		{"zero frame animation", `
tileSize: 32
locations:
  - id: a
    tiles: [[0]]
animations:
  - { name: broken, frames: 0 }
`},
		{"multi frame without duration", `
tileSize: 32
locations:
  - id: a
    tiles: [[0]]
animations:
  - { name: broken, frames: 4, duration: 0 }
`},
		{"unknown start", `
tileSize: 32
start: elsewhere
locations:
  - id: a
    tiles: [[0]]
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseWorldConfig([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestBuildScene(t *testing.T) {
	cfg, err := ParseWorldConfig([]byte(validWorldYAML))
	require.NoError(t, err)

	scene := cfg.BuildScene(NewCamera(100, 100))

	require.NotNil(t, scene.Active())
	assert.Equal(t, "village", scene.Active().ID(), "start location should be active")

	village := scene.Location("village")
	require.NotNil(t, village)
	assert.Equal(t, TileDirt, village.Grid().Tile(2, 0))
	assert.Equal(t, TileWater, village.Grid().Tile(1, 1))
	require.Len(t, village.Warps(), 1)
	assert.Equal(t, Vec2{48, 48}, village.Warps()[0].SpawnPosition)

	forest := scene.Location("forest")
	require.NotNil(t, forest)
	require.Len(t, forest.EnemySpawns(), 1)
	assert.Equal(t, "goblin", forest.EnemySpawns()[0].Name)
}

func TestBuildSceneStartOverridesListOrder(t *testing.T) {
	yaml := `
tileSize: 16
start: second
locations:
  - id: first
    tiles: [[0]]
  - id: second
    tiles: [[0]]
`
	cfg, err := ParseWorldConfig([]byte(yaml))
	require.NoError(t, err)

	scene := cfg.BuildScene(NewCamera(50, 50))
	assert.Equal(t, "second", scene.Active().ID())
}

func TestRegisterAnimations(t *testing.T) {
	cfg, err := ParseWorldConfig([]byte(validWorldYAML))
	require.NoError(t, err)

	animator := NewSpriteAnimator(&Sprite{}, 16, 16)
	cfg.Register(animator)

	animator.Play("walk")
	assert.Equal(t, "walk", animator.Playing())
}

func TestLoadWorldConfigFromDisk(t *testing.T) {
	path := writeTempFile(t, "world.yaml", validWorldYAML)

	cfg, err := LoadWorldConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.TileSize)

	_, err = LoadWorldConfig(path + ".missing")
	assert.Error(t, err)
}
