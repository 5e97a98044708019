package rowan

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// game adapts a Scene to the ebiten.Game interface. Input polling and draw
// submission stay in ebiten; the Scene only sees fixed update steps.
type game struct {
	scene *Scene
}

func (g *game) Update() error {
	g.scene.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.scene.Camera().ViewportWidth), int(g.scene.Camera().ViewportHeight)
}

// Run creates a window and drives scene until the window closes or an error
// occurs. For full control over the loop, implement ebiten.Game yourself
// and call Scene.Update and Scene.Draw directly.
func Run(scene *Scene, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{scene: scene})
}
