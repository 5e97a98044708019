package rowan

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a textured quad positioned in world space. It holds a
// non-owning reference to a Texture it does not manage; the reference is
// valid as long as the scene that owns the texture is alive.
//
// The displayed portion of the texture is a pixel-space sub-rectangle,
// normally driven by a SpriteAnimator selecting atlas frames.
type Sprite struct {
	// X and Y are the sprite's top-left corner in world space.
	X, Y float64

	texture *Texture
	region  image.Rectangle
}

// NewSprite creates a sprite showing the full extent of texture.
func NewSprite(texture *Texture) *Sprite {
	return &Sprite{
		texture: texture,
		region:  image.Rect(0, 0, texture.Width(), texture.Height()),
	}
}

// SetRegion selects the atlas sub-rectangle to display, in pixels.
func (s *Sprite) SetRegion(r image.Rectangle) {
	s.region = r
}

// Region returns the current atlas sub-rectangle.
func (s *Sprite) Region() image.Rectangle {
	return s.region
}

// Texture returns the borrowed texture reference.
func (s *Sprite) Texture() *Texture {
	return s.texture
}

// Position returns the sprite's world-space top-left corner.
func (s *Sprite) Position() Vec2 {
	return Vec2{s.X, s.Y}
}

// SetPosition moves the sprite's world-space top-left corner.
func (s *Sprite) SetPosition(pos Vec2) {
	s.X = pos.X
	s.Y = pos.Y
}

// Draw renders the sprite's current region through the camera transform.
// The texture handle is fetched at draw time, so a hot reload earlier in
// the frame is picked up automatically.
func (s *Sprite) Draw(dst *ebiten.Image, cam *Camera) {
	if s.texture == nil || s.texture.Image() == nil {
		return
	}
	src := s.texture.Image().SubImage(s.region).(*ebiten.Image)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(s.X, s.Y)
	op.GeoM.Concat(cam.GeoM())
	dst.DrawImage(src, &op)
}
