package rowan

import "testing"

func TestCheckWarpCollisionsRegistrationOrder(t *testing.T) {
	loc := NewLocation("village", 10, 10, 32)
	loc.AddWarp(0, 0, 64, 64, "first", Vec2{1, 1})
	loc.AddWarp(32, 32, 64, 64, "second", Vec2{2, 2})

	// Point inside both zones resolves to the earliest registration.
	zone := loc.CheckWarpCollisions(Vec2{48, 48})
	if zone == nil {
		t.Fatal("expected a collision")
	}
	if zone.DestinationID != "first" {
		t.Errorf("destination = %q, want the first registered zone", zone.DestinationID)
	}

	// Point inside only the second zone.
	zone = loc.CheckWarpCollisions(Vec2{90, 90})
	if zone == nil || zone.DestinationID != "second" {
		t.Error("point in the second zone only should resolve to it")
	}

	if loc.CheckWarpCollisions(Vec2{300, 300}) != nil {
		t.Error("point outside every zone should return nil")
	}
}

func TestLocationBounds(t *testing.T) {
	loc := NewLocation("village", 20, 15, 32)
	b := loc.Bounds()
	if b != (Rect{X: 0, Y: 0, Width: 640, Height: 480}) {
		t.Errorf("bounds = %v, want 640x480 at origin", b)
	}
}

func TestLocationEnemySpawns(t *testing.T) {
	loc := NewLocation("cave", 5, 5, 32)
	loc.AddEnemySpawn(EnemySpawn{Name: "goblin", Position: Vec2{64, 64}, Damage: 15, Speed: 40})
	loc.AddEnemySpawn(EnemySpawn{Name: "bat", Position: Vec2{96, 32}, Damage: 5, Speed: 80})

	spawns := loc.EnemySpawns()
	if len(spawns) != 2 {
		t.Fatalf("got %d spawns, want 2", len(spawns))
	}
	if spawns[0].Name != "goblin" || spawns[1].Name != "bat" {
		t.Error("spawns should preserve registration order")
	}
}
