// Package widget holds the behavioral state of the swipe-to-scroll
// pipeline: momentum amplification, scroll target resolution and
// section snapping, and feedback overlay visibility. Presentation lives
// in the theme package.
package widget

import (
	"time"

	"github.com/flickui/flick/gesture"
)

const (
	// DefaultMultiplier amplifies the scroll distance of fast swipes.
	DefaultMultiplier = 2.5
	// DefaultVelocityThreshold is the speed, in pixels per millisecond,
	// above which momentum amplification kicks in.
	DefaultVelocityThreshold = 0.5
	// maxVelocityFactor caps the velocity's contribution to the
	// amplification so that very fast flicks can't scroll arbitrarily
	// far.
	maxVelocityFactor = 2
)

// Momentum converts a swipe displacement and its duration into a scroll
// distance. The zero value is disabled; an enabled Momentum with zero
// Multiplier or VelocityThreshold uses the defaults.
type Momentum struct {
	Enabled           bool
	Multiplier        float32
	VelocityThreshold float32
}

// Amount returns the scroll distance for a swipe that moved delta
// pixels on the governing axis in elapsed time. Swipes slower than the
// velocity threshold scroll by their raw distance; faster ones are
// amplified by Multiplier times the velocity, with the velocity
// contribution capped. A zero elapsed time counts as above-threshold.
func (m Momentum) Amount(delta float32, elapsed time.Duration) float32 {
	amount := delta
	if amount < 0 {
		amount = -amount
	}
	if !m.Enabled {
		return amount
	}

	multiplier := m.Multiplier
	if multiplier == 0 {
		multiplier = DefaultMultiplier
	}
	threshold := m.VelocityThreshold
	if threshold == 0 {
		threshold = DefaultVelocityThreshold
	}

	ms := float32(elapsed) / float32(time.Millisecond)
	if ms <= 0 {
		// Instantaneous swipe; velocity is unbounded, so the capped
		// factor applies in full.
		return amount * multiplier * maxVelocityFactor
	}
	velocity := amount / ms
	if velocity <= threshold {
		return amount
	}
	return amount * multiplier * min(velocity, maxVelocityFactor)
}

// Scroller tracks the scroll offset of a vertical viewport and resolves
// swipes into scroll targets. Offsets grow downwards: offset 0 shows
// the top of the content.
type Scroller struct {
	Momentum Momentum

	offset   float32
	viewport float32
	content  float32
}

// SetExtents records the viewport and content heights, re-clamping the
// current offset.
func (s *Scroller) SetExtents(viewport, content float32) {
	s.viewport = viewport
	s.content = content
	s.offset = s.clamp(s.offset)
}

func (s *Scroller) max() float32 {
	if s.content <= s.viewport {
		return 0
	}
	return s.content - s.viewport
}

func (s *Scroller) clamp(offset float32) float32 {
	if offset < 0 {
		return 0
	}
	if m := s.max(); offset > m {
		return m
	}
	return offset
}

// Offset returns the current scroll offset.
func (s *Scroller) Offset() float32 {
	return s.offset
}

// Viewport returns the viewport height set by SetExtents.
func (s *Scroller) Viewport() float32 {
	return s.viewport
}

// ScrollTo sets the offset, clamped to the scrollable range.
func (s *Scroller) ScrollTo(offset float32) {
	s.offset = s.clamp(offset)
}

// ApplySwipe resolves a vertical swipe into a scroll target. Swiping up
// moves forward through the content (the offset grows), swiping down
// moves back. Horizontal and unclassified swipes report ok == false.
// The target is clamped to the scrollable range; the offset itself is
// left untouched so that the caller can animate towards the target.
func (s *Scroller) ApplySwipe(ev gesture.SwipeEvent) (target float32, ok bool) {
	amount := s.Momentum.Amount(ev.Delta.Y, ev.Duration)
	switch ev.Direction {
	case gesture.Up:
		return s.clamp(s.offset + amount), true
	case gesture.Down:
		return s.clamp(s.offset - amount), true
	default:
		return 0, false
	}
}

// Snap returns the top of the section nearest to the current offset,
// considering only sections within one viewport height. ok is false
// when no section is in range.
func (s *Scroller) Snap(sections []float32) (target float32, ok bool) {
	return NearestSection(sections, s.offset, s.viewport)
}

// NearestSection returns the element of sections closest to scrollTop,
// ignoring candidates a full viewport height or more away. Bounding the
// search keeps a snap from jumping across the whole document.
func NearestSection(sections []float32, scrollTop, viewport float32) (target float32, ok bool) {
	best := viewport
	for _, top := range sections {
		d := top - scrollTop
		if d < 0 {
			d = -d
		}
		if d < best {
			best = d
			target = top
			ok = true
		}
	}
	return target, ok
}
