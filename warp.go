package rowan

// WarpZone is a rectangular trigger area that, when entered, requests a
// transition to a different location. Zones are registered at world-build
// time and never move.
type WarpZone struct {
	Bounds        Rect
	DestinationID string
	SpawnPosition Vec2
}

// Contains reports whether p lies inside the zone. Boundary points on all
// four edges are inside.
func (w WarpZone) Contains(p Vec2) bool {
	return w.Bounds.Contains(p)
}

// PendingTransition records a deferred "move to location X at position Y"
// request raised during collision checks. At most one request can be armed
// at a time; the Scene applies and clears it at a fixed point in the frame,
// after entity updates and before rendering.
type PendingTransition struct {
	destinationID string
	spawn         Vec2
	armed         bool
}

// TryArm records a transition request if none is currently armed. It
// reports whether the request was accepted; while armed, further calls
// return false and leave the first request intact, so the first zone
// touched in a frame wins.
func (t *PendingTransition) TryArm(destinationID string, spawn Vec2) bool {
	if t.armed {
		return false
	}
	t.destinationID = destinationID
	t.spawn = spawn
	t.armed = true
	return true
}

// Armed reports whether a transition request is waiting to be applied.
func (t *PendingTransition) Armed() bool {
	return t.armed
}

// take returns the armed request and disarms it. The second return is false
// when nothing was armed.
func (t *PendingTransition) take() (destinationID string, spawn Vec2, ok bool) {
	if !t.armed {
		return "", Vec2{}, false
	}
	t.armed = false
	return t.destinationID, t.spawn, true
}
