package rowan

import (
	"math"
	"testing"
)

func TestPlayerMoveNormalizesDiagonal(t *testing.T) {
	p := NewPlayer(0, 0, nil, nil)
	p.SetSpeed(100)

	p.Move(Vec2{1, 1})
	p.Update(1.0)

	dist := math.Hypot(p.Position().X, p.Position().Y)
	if math.Abs(dist-100) > 1e-9 {
		t.Errorf("diagonal move covered %f px in 1s at speed 100, want 100", dist)
	}
}

func TestPlayerMoveIntentIsConsumed(t *testing.T) {
	p := NewPlayer(0, 0, nil, nil)
	p.SetSpeed(100)

	p.Move(Vec2{1, 0})
	p.Update(0.5)
	x := p.Position().X

	// No Move call this frame: the player stands still.
	p.Update(0.5)
	if p.Position().X != x {
		t.Error("player moved without a Move call")
	}
}

func TestPlayerZeroDirectionStops(t *testing.T) {
	p := NewPlayer(10, 10, nil, nil)
	p.Move(Vec2{})
	p.Update(1.0)
	if p.Position() != (Vec2{10, 10}) {
		t.Error("zero direction should not move the player")
	}
}

func TestPlayerDamageAndHealClamp(t *testing.T) {
	p := NewPlayer(0, 0, nil, nil)

	p.TakeDamage(30)
	if p.Health() != 70 {
		t.Errorf("health = %d, want 70", p.Health())
	}
	p.TakeDamage(1000)
	if p.Health() != 0 {
		t.Errorf("health = %d, want floor 0", p.Health())
	}
	if !p.IsDead() {
		t.Error("player at 0 health should be dead")
	}
	p.Heal(1000)
	if p.Health() != p.MaxHealth() {
		t.Errorf("health = %d, want cap %d", p.Health(), p.MaxHealth())
	}
}

func TestEnemyChasesAndStopsAtTarget(t *testing.T) {
	e := NewEnemy(EnemySpawn{Name: "goblin", Position: Vec2{0, 0}, Speed: 10}, nil, nil)
	e.SetTarget(Vec2{100, 0})

	e.Update(1.0)
	if math.Abs(e.Position().X-10) > 1e-9 {
		t.Errorf("X = %f after 1s at speed 10, want 10", e.Position().X)
	}

	// A step past the target lands exactly on it, no oscillation.
	e.SetTarget(Vec2{12, 0})
	e.Update(1.0)
	if e.Position() != (Vec2{12, 0}) {
		t.Errorf("position = %v, want exactly the target", e.Position())
	}
	e.Update(1.0)
	if e.Position() != (Vec2{12, 0}) {
		t.Error("enemy at target should stay put")
	}
}
