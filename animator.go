package rowan

import "image"

// Animation describes one row of a sprite sheet: frameCount frames of equal
// duration on atlas row Row, played left to right. Immutable once
// registered with an animator.
type Animation struct {
	Name          string
	Row           int
	FrameCount    int
	FrameDuration float64 // seconds per frame
	Loop          bool
}

// SpriteAnimator is a per-sprite frame-timer state machine. It selects a
// sub-rectangle of the sprite's texture atlas over time: column = current
// frame, row = the active animation's atlas row.
//
// The animator has two states: inactive (no animation bound, the initial
// state) and playing. A non-looping animation that runs past its last frame
// enters a terminal hold on that frame until Play selects a different
// animation.
type SpriteAnimator struct {
	sprite      *Sprite
	frameWidth  int
	frameHeight int

	animations map[string]*Animation
	current    *Animation
	frame      int
	elapsed    float64
}

// NewSpriteAnimator creates an animator driving sprite with frames of the
// given pixel size.
func NewSpriteAnimator(sprite *Sprite, frameWidth, frameHeight int) *SpriteAnimator {
	return &SpriteAnimator{
		sprite:      sprite,
		frameWidth:  frameWidth,
		frameHeight: frameHeight,
		animations:  make(map[string]*Animation),
	}
}

// Add registers an animation under its name, replacing any previous
// registration. The animator stores its own copy; the caller's value is not
// referenced afterwards.
func (a *SpriteAnimator) Add(anim Animation) {
	stored := anim
	a.animations[anim.Name] = &stored
}

// Play switches to the named animation from its first frame. Unknown names
// are ignored, and so is the currently active animation: re-triggering the
// same animation every frame never restarts it.
func (a *SpriteAnimator) Play(name string) {
	next, ok := a.animations[name]
	if !ok || next == a.current {
		return
	}
	a.current = next
	a.frame = 0
	a.elapsed = 0
	a.applyRegion()
}

// Update advances the frame timer by dt seconds. No-op while inactive or
// when the active animation is a static pose (FrameCount <= 1).
//
// Whole frame steps are computed arithmetically, so the cost per call is
// constant even after a large dt spike.
func (a *SpriteAnimator) Update(dt float64) {
	anim := a.current
	if anim == nil || anim.FrameCount <= 1 {
		return
	}

	a.elapsed += dt
	if a.elapsed < anim.FrameDuration {
		return
	}

	steps := int(a.elapsed / anim.FrameDuration)
	a.elapsed -= float64(steps) * anim.FrameDuration

	if anim.Loop {
		a.frame = (a.frame + steps) % anim.FrameCount
	} else if a.frame+steps >= anim.FrameCount {
		// Terminal hold: clamp to the last frame and stop the timer.
		a.frame = anim.FrameCount - 1
		a.elapsed = 0
	} else {
		a.frame += steps
	}
	a.applyRegion()
}

// applyRegion pushes the current frame's atlas rectangle to the sprite.
func (a *SpriteAnimator) applyRegion() {
	if a.current == nil || a.sprite == nil {
		return
	}
	x := a.frame * a.frameWidth
	y := a.current.Row * a.frameHeight
	a.sprite.SetRegion(image.Rect(x, y, x+a.frameWidth, y+a.frameHeight))
}

// Playing returns the active animation's name, or "" while inactive.
func (a *SpriteAnimator) Playing() string {
	if a.current == nil {
		return ""
	}
	return a.current.Name
}

// Frame returns the current frame index within the active animation.
func (a *SpriteAnimator) Frame() int {
	return a.frame
}

// Elapsed returns the time accumulated toward the next frame advance.
func (a *SpriteAnimator) Elapsed() float64 {
	return a.elapsed
}
