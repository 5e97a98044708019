package rowan

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps world coordinates to screen coordinates. The position is the
// focus center of the view, not its top-left corner, and is kept clamped to
// the configured world bounds. The view transform is a pure translation; no
// rotation or zoom is modeled.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// ViewportWidth and ViewportHeight are the visible area in pixels.
	ViewportWidth, ViewportHeight float64

	worldMin Vec2
	worldMax Vec2

	scrollTween *scrollAnim
}

// NewCamera creates a camera with the given viewport size and zero-extent
// world bounds. Call SetWorldBounds before the first CenterOn.
func NewCamera(viewportWidth, viewportHeight float64) *Camera {
	c := &Camera{}
	c.SetViewportSize(viewportWidth, viewportHeight)
	return c
}

// SetWorldBounds sets the world rectangle the camera is confined to.
// Swapped components are normalized so min <= max always holds afterwards.
func (c *Camera) SetWorldBounds(minX, minY, maxX, maxY float64) {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	c.worldMin = Vec2{minX, minY}
	c.worldMax = Vec2{maxX, maxY}
}

// SetViewportSize sets the visible area. Negative dimensions are clamped
// to zero.
func (c *Camera) SetViewportSize(width, height float64) {
	c.ViewportWidth = math.Max(width, 0)
	c.ViewportHeight = math.Max(height, 0)
}

// WorldBounds returns the current world bounds.
func (c *Camera) WorldBounds() (min, max Vec2) {
	return c.worldMin, c.worldMax
}

// SetPosition moves the focus without clamping. Use CenterOn to respect
// world bounds.
func (c *Camera) SetPosition(pos Vec2) {
	c.X = pos.X
	c.Y = pos.Y
}

// Position returns the current focus center.
func (c *Camera) Position() Vec2 {
	return Vec2{c.X, c.Y}
}

// CenterOn focuses the camera on target and clamps per axis so the visible
// area stays within the world bounds. On an axis where the world extent is
// smaller than the viewport, clamping would invert its range, so the focus
// is set to the world midpoint instead.
func (c *Camera) CenterOn(target Vec2) {
	c.X = target.X
	c.Y = target.Y
	c.clampToBounds()
}

// clampToBounds restricts the focus so the visible area stays within the
// world bounds.
func (c *Camera) clampToBounds() {
	halfW := c.ViewportWidth / 2
	halfH := c.ViewportHeight / 2

	minX := c.worldMin.X + halfW
	maxX := c.worldMax.X - halfW
	minY := c.worldMin.Y + halfH
	maxY := c.worldMax.Y - halfH

	// If the world is smaller than the visible area, center the camera.
	if minX > maxX {
		c.X = (c.worldMin.X + c.worldMax.X) / 2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = (c.worldMin.Y + c.worldMax.Y) / 2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// ScrollTo animates the camera focus to the given world position over
// duration seconds. The scroll advances in Update and is re-clamped to the
// world bounds every step.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Update advances an active scroll animation by dt seconds. No-op when no
// scroll is in progress.
func (c *Camera) Update(dt float64) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(float32(dt))
		c.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(float32(dt))
		c.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
	c.clampToBounds()
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	return Vec2{
		X: p.X - c.X + c.ViewportWidth/2,
		Y: p.Y - c.Y + c.ViewportHeight/2,
	}
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	return Vec2{
		X: p.X + c.X - c.ViewportWidth/2,
		Y: p.Y + c.Y - c.ViewportHeight/2,
	}
}

// GeoM returns the render-time view transform: the same translation
// WorldToScreen applies, as an ebiten.GeoM for draw options.
func (c *Camera) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-c.X+c.ViewportWidth/2, -c.Y+c.ViewportHeight/2)
	return m
}
