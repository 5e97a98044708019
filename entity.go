package rowan

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Entity is the capability set shared by everything the scene updates and
// draws each frame. The set is closed: Player and Enemy are the two kinds,
// dispatched through this interface rather than open-ended subclassing.
type Entity interface {
	Update(dt float64)
	Draw(dst *ebiten.Image, cam *Camera)
}

// Player is the focus entity: the camera follows it and its position is
// tested against warp zones.
type Player struct {
	position Vec2
	velocity Vec2
	speed    float64

	health    int
	maxHealth int

	sprite   *Sprite
	animator *SpriteAnimator
}

// NewPlayer creates a player at (x, y). Sprite and animator are optional;
// a nil sprite gives a headless player, which tests use.
func NewPlayer(x, y float64, sprite *Sprite, animator *SpriteAnimator) *Player {
	return &Player{
		position:  Vec2{x, y},
		speed:     120,
		health:    100,
		maxHealth: 100,
		sprite:    sprite,
		animator:  animator,
	}
}

// Move sets the player's movement direction for this frame. The direction
// is normalized so diagonal movement is not faster.
func (p *Player) Move(direction Vec2) {
	length := math.Hypot(direction.X, direction.Y)
	if length == 0 {
		p.velocity = Vec2{}
		return
	}
	p.velocity = direction.Scale(1 / length)
}

// Update integrates velocity and advances the walk/idle animation. The
// movement intent is consumed: callers set it again each frame via Move.
func (p *Player) Update(dt float64) {
	p.position = p.position.Add(p.velocity.Scale(p.speed * dt))

	if p.animator != nil {
		if p.velocity.X != 0 || p.velocity.Y != 0 {
			p.animator.Play("walk")
		} else {
			p.animator.Play("idle")
		}
		p.animator.Update(dt)
	}
	if p.sprite != nil {
		p.sprite.SetPosition(p.position)
	}
	p.velocity = Vec2{}
}

// Draw renders the player's sprite, if it has one.
func (p *Player) Draw(dst *ebiten.Image, cam *Camera) {
	if p.sprite != nil {
		p.sprite.Draw(dst, cam)
	}
}

// Position returns the player's world position.
func (p *Player) Position() Vec2 {
	return p.position
}

// SetPosition teleports the player. Used by the transition protocol to
// place the player at a warp's spawn point.
func (p *Player) SetPosition(pos Vec2) {
	p.position = pos
	if p.sprite != nil {
		p.sprite.SetPosition(pos)
	}
}

// TakeDamage reduces health, to a floor of zero.
func (p *Player) TakeDamage(amount int) {
	p.health -= amount
	if p.health < 0 {
		p.health = 0
	}
}

// Heal restores health, to a cap of MaxHealth.
func (p *Player) Heal(amount int) {
	p.health += amount
	if p.health > p.maxHealth {
		p.health = p.maxHealth
	}
}

// Health returns the current health.
func (p *Player) Health() int { return p.health }

// MaxHealth returns the health cap.
func (p *Player) MaxHealth() int { return p.maxHealth }

// IsDead reports whether health has reached zero.
func (p *Player) IsDead() bool { return p.health <= 0 }

// SetSpeed sets movement speed in pixels per second.
func (p *Player) SetSpeed(speed float64) { p.speed = speed }

// Enemy walks toward a target position at constant speed.
type Enemy struct {
	name     string
	position Vec2
	target   Vec2
	damage   int
	speed    float64

	sprite   *Sprite
	animator *SpriteAnimator
}

// NewEnemy creates an enemy from a spawn record. Sprite and animator are
// optional, as for Player.
func NewEnemy(spawn EnemySpawn, sprite *Sprite, animator *SpriteAnimator) *Enemy {
	return &Enemy{
		name:     spawn.Name,
		position: spawn.Position,
		target:   spawn.Position,
		damage:   spawn.Damage,
		speed:    spawn.Speed,
		sprite:   sprite,
		animator: animator,
	}
}

// SetTarget updates the position the enemy walks toward.
func (e *Enemy) SetTarget(target Vec2) {
	e.target = target
}

// Update moves the enemy toward its target, stopping on arrival rather
// than oscillating around it.
func (e *Enemy) Update(dt float64) {
	delta := e.target.Sub(e.position)
	dist := math.Hypot(delta.X, delta.Y)
	step := e.speed * dt
	if dist <= step {
		e.position = e.target
	} else if dist > 0 {
		e.position = e.position.Add(delta.Scale(step / dist))
	}

	if e.animator != nil {
		if dist > step {
			e.animator.Play("walk")
		} else {
			e.animator.Play("idle")
		}
		e.animator.Update(dt)
	}
	if e.sprite != nil {
		e.sprite.SetPosition(e.position)
	}
}

// Draw renders the enemy's sprite, if it has one.
func (e *Enemy) Draw(dst *ebiten.Image, cam *Camera) {
	if e.sprite != nil {
		e.sprite.Draw(dst, cam)
	}
}

// Position returns the enemy's world position.
func (e *Enemy) Position() Vec2 { return e.position }

// Name returns the enemy's name.
func (e *Enemy) Name() string { return e.name }

// Damage returns the damage dealt on contact.
func (e *Enemy) Damage() int { return e.damage }
