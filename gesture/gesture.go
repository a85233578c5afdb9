// Package gesture turns raw touch sequences into directional swipes.
//
// The Tracker is host-agnostic: it consumes touch samples in arrival
// order and classifies the interaction when it ends. The Swipe type in
// swipe.go adapts Gio pointer events onto a Tracker.
package gesture

import (
	"time"

	"gioui.org/f32"
)

// TouchSample is a single captured touch point.
type TouchSample struct {
	Pos  f32.Point
	Time time.Duration
}

type Direction uint8

const (
	// None marks an interaction that didn't qualify as a swipe.
	None Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// AxisMode restricts which swipe axis is recognized. The zero value is
// Vertical, matching the common page-scrolling use.
type AxisMode uint8

const (
	Vertical AxisMode = iota
	Horizontal
	Any
)

// SwipeEvent describes one classified interaction. Delta is the signed
// displacement from the interaction's origin to its end.
type SwipeEvent struct {
	Direction Direction
	Delta     f32.Point
	Duration  time.Duration
}

// Classify maps a final displacement to a swipe direction, or None if
// the interaction doesn't qualify. The governing axis must strictly
// dominate the other one (except in Any mode) and its absolute delta
// must reach minDistance. Ties in Any mode resolve to the vertical
// branch. Non-positive deltas map to Up and Left; positive ones to Down
// and Right.
func Classify(axis AxisMode, minDistance, dx, dy float32) Direction {
	adx, ady := abs(dx), abs(dy)
	switch axis {
	case Vertical:
		if ady < minDistance || ady <= adx {
			return None
		}
		if dy > 0 {
			return Down
		}
		return Up
	case Horizontal:
		if adx < minDistance || adx <= ady {
			return None
		}
		if dx > 0 {
			return Right
		}
		return Left
	case Any:
		if ady >= adx {
			if ady < minDistance {
				return None
			}
			if dy > 0 {
				return Down
			}
			return Up
		}
		if adx < minDistance {
			return None
		}
		if dx > 0 {
			return Right
		}
		return Left
	default:
		return None
	}
}

// DefaultMinDistance is the minimum governing-axis displacement, in
// pixels, for an interaction to count as a swipe.
const DefaultMinDistance = 30

// Tracker follows one in-flight touch interaction. The zero value is a
// valid tracker in vertical mode; a MinDistance of 0 falls back to
// DefaultMinDistance.
//
// Events must arrive in order: Start before any Move, all Moves before
// End or Cancel. Out-of-order events degrade to no-ops, they never
// corrupt state.
type Tracker struct {
	Axis        AxisMode
	MinDistance float32
	// Timeout, if non-zero, abandons an interaction whose next event
	// arrives more than Timeout after the previous one. This is an
	// opt-in watchdog for hosts that can lose release events; without
	// it a lost release parks the tracker until the next Cancel.
	Timeout time.Duration

	tracking bool
	origin   TouchSample
	last     time.Duration
	locked   bool
}

func (t *Tracker) minDistance() float32 {
	if t.MinDistance == 0 {
		return DefaultMinDistance
	}
	return t.MinDistance
}

// Tracking reports whether an interaction is in progress.
func (t *Tracker) Tracking() bool {
	return t.tracking
}

// AxisLocked reports whether the interaction's dominant axis has been
// determined. While locked in vertical mode the host must not suppress
// its native scrolling.
func (t *Tracker) AxisLocked() bool {
	return t.locked
}

func (t *Tracker) expired(now time.Duration) bool {
	return t.Timeout > 0 && t.tracking && now-t.last > t.Timeout
}

// Start begins tracking at s. A Start while already tracking is
// ignored; interactions are single-touch.
func (t *Tracker) Start(s TouchSample) {
	if t.expired(s.Time) {
		t.reset()
	}
	if t.tracking {
		return
	}
	t.tracking = true
	t.origin = s
	t.last = s.Time
	t.locked = false
}

// Move records an intermediate sample and locks the dominant axis once
// early movement determines it.
func (t *Tracker) Move(s TouchSample) {
	if t.expired(s.Time) {
		t.reset()
	}
	if !t.tracking {
		return
	}
	t.last = s.Time
	if t.locked {
		return
	}
	dx := abs(s.Pos.X - t.origin.Pos.X)
	dy := abs(s.Pos.Y - t.origin.Pos.Y)
	switch t.Axis {
	case Vertical:
		if dy > dx {
			t.locked = true
		}
	case Horizontal:
		if dx > dy {
			t.locked = true
		}
	case Any:
		t.locked = true
	}
}

// End finishes the interaction and classifies it. The returned event
// has Direction None if the interaction didn't qualify, or if no
// interaction was in progress.
func (t *Tracker) End(s TouchSample) SwipeEvent {
	if t.expired(s.Time) {
		t.reset()
	}
	if !t.tracking {
		return SwipeEvent{}
	}
	delta := s.Pos.Sub(t.origin.Pos)
	ev := SwipeEvent{
		Direction: Classify(t.Axis, t.minDistance(), delta.X, delta.Y),
		Delta:     delta,
		Duration:  s.Time - t.origin.Time,
	}
	t.reset()
	return ev
}

// Cancel discards the in-flight interaction without classifying it.
// Cancel while idle is a no-op.
func (t *Tracker) Cancel() {
	t.reset()
}

func (t *Tracker) reset() {
	t.tracking = false
	t.origin = TouchSample{}
	t.locked = false
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
