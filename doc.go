// Package rowan is a small real-time 2D scene engine for [Ebitengine].
//
// Rowan provides the live-composition layer of a tile-based game: a
// hot-reloading asset layer that swaps Kage shaders and textures into the
// running process when their source files change on disk, a bounded
// world-to-screen camera, a dense tile grid with walkability queries, a
// frame-timer sprite animator, and a deferred location-transition protocol
// that lets warp-zone collisions request a world change which is applied at
// a safe point in the frame.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := rowan.NewScene(rowan.NewCamera(640, 480))
//	// ... add locations, a player, tracked resources ...
//	rowan.Run(scene, rowan.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly:
//
//	type Game struct{ scene *rowan.Scene }
//
//	func (g *Game) Update() error              { g.scene.Update(1.0 / float64(ebiten.TPS())); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Frame pipeline
//
// Every [Scene.Update] runs the same fully synchronous sequence: poll tracked
// [Reloadable] resources, update entities (which may arm a location
// transition through warp-zone collision), apply at most one pending
// transition, then center the camera on the player. Rendering in [Scene.Draw]
// always observes a consistent world: resources are swapped whole or not at
// all, and the active location never changes mid-update.
//
// # Hot reload
//
// [Shader] and [Texture] own a GPU-resident handle plus the source paths it
// was built from. [Shader.CheckReload] and [Texture.CheckReload] compare
// on-disk modification timestamps against the last observed values and, on
// change, rebuild the complete handle before swapping it in. Any failure
// (unreadable file, empty source, compile or decode error) is logged and
// leaves the previous handle bound and usable.
//
// [Ebitengine]: https://ebitengine.org
package rowan
