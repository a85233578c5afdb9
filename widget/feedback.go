package widget

import (
	"time"

	"github.com/flickui/flick/gesture"
)

// DefaultFeedbackDuration is how long a feedback overlay stays visible
// after a swipe.
const DefaultFeedbackDuration = 600 * time.Millisecond

// Feedback tracks the visibility of the two directional overlays. Each
// overlay stays visible for Duration after its last trigger;
// re-triggering restarts the window, it doesn't queue.
type Feedback struct {
	// Duration of the visible window. Zero means
	// DefaultFeedbackDuration.
	Duration time.Duration

	upShown   bool
	upAt      time.Time
	downShown bool
	downAt    time.Time
}

func (f *Feedback) duration() time.Duration {
	if f.Duration == 0 {
		return DefaultFeedbackDuration
	}
	return f.Duration
}

// Show makes the overlay for dir visible as of now. Directions other
// than Up and Down are ignored.
func (f *Feedback) Show(dir gesture.Direction, now time.Time) {
	switch dir {
	case gesture.Up:
		f.upShown = true
		f.upAt = now
	case gesture.Down:
		f.downShown = true
		f.downAt = now
	}
}

// Hide hides the overlay for dir immediately.
func (f *Feedback) Hide(dir gesture.Direction) {
	switch dir {
	case gesture.Up:
		f.upShown = false
	case gesture.Down:
		f.downShown = false
	}
}

// Visible reports whether the overlay for dir is visible at now.
func (f *Feedback) Visible(dir gesture.Direction, now time.Time) bool {
	shownAt, shown := f.state(dir)
	return shown && now.Sub(shownAt) < f.duration()
}

// HideAt returns the time at which the overlay for dir reverts to
// hidden, and whether it is currently shown.
func (f *Feedback) HideAt(dir gesture.Direction) (time.Time, bool) {
	shownAt, shown := f.state(dir)
	return shownAt.Add(f.duration()), shown
}

func (f *Feedback) state(dir gesture.Direction) (time.Time, bool) {
	switch dir {
	case gesture.Up:
		return f.upAt, f.upShown
	case gesture.Down:
		return f.downAt, f.downShown
	default:
		return time.Time{}, false
	}
}
