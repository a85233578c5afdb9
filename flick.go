// Package flick classifies touch interactions into directional swipes
// and drives momentum scrolling on an abstract surface.
//
// The package is host-agnostic: anything that can report a scroll
// position and accept a scroll command can be a Surface. Gio programs
// will usually use theme.ScrollArea instead, which wires the same
// pipeline into a widget; Attach exists for hosts that deliver their
// own touch events.
package flick

import (
	"log"
	"time"

	"github.com/flickui/flick/gesture"
	"github.com/flickui/flick/mysync"
	"github.com/flickui/flick/widget"

	"gioui.org/f32"
)

// Config controls swipe recognition and the scroll behavior derived
// from it. Numeric zero values fall back to the package defaults;
// boolean fields are taken as configured. DefaultConfig returns the
// fully populated default set.
type Config struct {
	// MinSwipeDistance is the minimum governing-axis displacement, in
	// pixels, for an interaction to count as a swipe.
	MinSwipeDistance float32
	// Axis restricts the recognized swipe axis. Momentum scrolling is
	// only engaged in Vertical mode.
	Axis gesture.AxisMode
	// Momentum enables velocity-based scroll amplification.
	Momentum           bool
	MomentumMultiplier float32
	// VelocityThreshold is the minimum speed, in pixels per
	// millisecond, for momentum to engage.
	VelocityThreshold float32
	// SnapToSections aligns the viewport to the nearest section
	// shortly after a swipe scroll.
	SnapToSections bool
	// Feedback shows the surface's directional overlays after each
	// swipe.
	Feedback         bool
	FeedbackDuration time.Duration
	// Timeout abandons an interaction whose events stop arriving; zero
	// disables the watchdog.
	Timeout time.Duration

	// OnSwipe is invoked synchronously once per classified swipe,
	// before the momentum scroll executes. A panicking callback is
	// logged and isolated.
	OnSwipe func(gesture.SwipeEvent)
}

// SnapDelay gives the momentum scroll a head start before the section
// snap corrects it.
const SnapDelay = 100 * time.Millisecond

// DefaultConfig returns the default configuration: vertical swipes with
// momentum, no snapping, no feedback.
func DefaultConfig() Config {
	return Config{
		MinSwipeDistance:   gesture.DefaultMinDistance,
		Axis:               gesture.Vertical,
		Momentum:           true,
		MomentumMultiplier: widget.DefaultMultiplier,
		VelocityThreshold:  widget.DefaultVelocityThreshold,
		FeedbackDuration:   widget.DefaultFeedbackDuration,
	}
}

func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.MinSwipeDistance == 0 {
		cfg.MinSwipeDistance = def.MinSwipeDistance
	}
	if cfg.MomentumMultiplier == 0 {
		cfg.MomentumMultiplier = def.MomentumMultiplier
	}
	if cfg.VelocityThreshold == 0 {
		cfg.VelocityThreshold = def.VelocityThreshold
	}
	if cfg.FeedbackDuration == 0 {
		cfg.FeedbackDuration = def.FeedbackDuration
	}
	return cfg
}

// Surface is the scrollable host a Handle drives. Scroll commands are
// fire-and-forget: the handle never waits for or verifies their
// completion. ShowFeedback and HideFeedback may be no-ops for hosts
// without overlays.
type Surface interface {
	// ScrollTop returns the current scroll offset; 0 is the top of the
	// content.
	ScrollTop() float32
	// ViewportHeight returns the visible height of the surface.
	ViewportHeight() float32
	// SectionTops returns the content-relative top offsets of the
	// snappable sections, in any order. It may return nil.
	SectionTops() []float32
	// ScrollTo smoothly scrolls to the given offset.
	ScrollTo(offset float32)
	ShowFeedback(dir gesture.Direction)
	HideFeedback(dir gesture.Direction)
}

// Handle is one attached swipe handler. Handles on different surfaces
// are fully independent.
type Handle struct {
	cfg      Config
	surface  Surface
	tracker  gesture.Tracker
	momentum widget.Momentum

	timers *mysync.Mutex[handleTimers]
}

type handleTimers struct {
	destroyed bool
	hideUp    *time.Timer
	hideDown  *time.Timer
	snap      *time.Timer
}

// Attach binds a swipe handler to surface. A nil surface logs a
// warning and returns an inert handle whose methods are all no-ops;
// it never panics.
func Attach(surface Surface, cfg Config) *Handle {
	cfg = cfg.withDefaults()
	h := &Handle{
		cfg:     cfg,
		surface: surface,
		tracker: gesture.Tracker{
			Axis:        cfg.Axis,
			MinDistance: cfg.MinSwipeDistance,
			Timeout:     cfg.Timeout,
		},
		momentum: widget.Momentum{
			Enabled:           cfg.Momentum,
			Multiplier:        cfg.MomentumMultiplier,
			VelocityThreshold: cfg.VelocityThreshold,
		},
		timers: mysync.NewMutex(handleTimers{}),
	}
	if surface == nil {
		log.Printf("flick: attach: no surface, handler disabled")
		h.timers.Do(func(t *handleTimers) { t.destroyed = true })
	}
	return h
}

func (h *Handle) destroyed() bool {
	var d bool
	h.timers.Do(func(t *handleTimers) { d = t.destroyed })
	return d
}

// TouchStart begins an interaction at pos. Events must be delivered in
// arrival order; t is the host's event timestamp.
func (h *Handle) TouchStart(pos f32.Point, t time.Duration) {
	if h.destroyed() {
		return
	}
	h.tracker.Start(gesture.TouchSample{Pos: pos, Time: t})
}

// TouchMove records an intermediate touch position.
func (h *Handle) TouchMove(pos f32.Point, t time.Duration) {
	if h.destroyed() {
		return
	}
	h.tracker.Move(gesture.TouchSample{Pos: pos, Time: t})
}

// TouchEnd finishes the interaction and, if it classifies as a swipe,
// runs the pipeline: callback, momentum scroll, feedback, snap.
func (h *Handle) TouchEnd(pos f32.Point, t time.Duration) {
	if h.destroyed() {
		return
	}
	ev := h.tracker.End(gesture.TouchSample{Pos: pos, Time: t})
	if ev.Direction == gesture.None {
		return
	}
	h.dispatch(ev)
}

// TouchCancel discards the in-flight interaction with no side effects.
func (h *Handle) TouchCancel() {
	h.tracker.Cancel()
}

// NativeScroll reports whether the host must leave its own scrolling
// unsuppressed for the in-flight interaction: true once a vertical-mode
// interaction has locked onto the vertical axis.
func (h *Handle) NativeScroll() bool {
	return h.cfg.Axis == gesture.Vertical && h.tracker.AxisLocked()
}

func (h *Handle) dispatch(ev gesture.SwipeEvent) {
	if fn := h.cfg.OnSwipe; fn != nil {
		func() {
			defer func() {
				if err := recover(); err != nil {
					log.Printf("flick: swipe callback panicked: %v", err)
				}
			}()
			fn(ev)
		}()
	}

	// Momentum scrolling is a vertical-mode behavior; horizontal and
	// any-mode swipes only notify.
	if h.cfg.Axis != gesture.Vertical || !ev.Direction.Vertical() {
		return
	}

	amount := h.momentum.Amount(ev.Delta.Y, ev.Duration)
	target := h.surface.ScrollTop()
	// Swiping up moves forward through the content, so the offset
	// grows; swiping down moves back.
	if ev.Direction == gesture.Up {
		target += amount
	} else {
		target -= amount
	}
	if target < 0 {
		target = 0
	}
	h.surface.ScrollTo(target)

	if h.cfg.Feedback {
		h.showFeedback(ev.Direction)
	}
	if h.cfg.SnapToSections {
		h.armSnap()
	}
}

func (h *Handle) showFeedback(dir gesture.Direction) {
	h.surface.ShowFeedback(dir)
	h.timers.Do(func(t *handleTimers) {
		timer := &t.hideUp
		if dir == gesture.Down {
			timer = &t.hideDown
		}
		// Last trigger wins: restart the hide timer instead of queueing.
		if *timer != nil {
			(*timer).Stop()
		}
		*timer = time.AfterFunc(h.cfg.FeedbackDuration, func() {
			if h.destroyed() {
				return
			}
			h.surface.HideFeedback(dir)
		})
	})
}

func (h *Handle) armSnap() {
	h.timers.Do(func(t *handleTimers) {
		if t.snap != nil {
			t.snap.Stop()
		}
		t.snap = time.AfterFunc(SnapDelay, func() {
			if h.destroyed() {
				return
			}
			sections := h.surface.SectionTops()
			top, ok := widget.NearestSection(sections, h.surface.ScrollTop(), h.surface.ViewportHeight())
			if !ok {
				return
			}
			h.surface.ScrollTo(top)
		})
	})
}

// Destroy detaches the handler: pending timers are cancelled, overlays
// hidden and further events ignored. Destroy is idempotent.
func (h *Handle) Destroy() {
	var wasDestroyed bool
	h.timers.Do(func(t *handleTimers) {
		wasDestroyed = t.destroyed
		t.destroyed = true
		for _, timer := range []*time.Timer{t.hideUp, t.hideDown, t.snap} {
			if timer != nil {
				timer.Stop()
			}
		}
		t.hideUp, t.hideDown, t.snap = nil, nil, nil
	})
	if wasDestroyed || h.surface == nil {
		return
	}
	h.tracker.Cancel()
	h.surface.HideFeedback(gesture.Up)
	h.surface.HideFeedback(gesture.Down)
}
