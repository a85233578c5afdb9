package theme

import (
	"context"
	"image"
	"log"
	"math"
	rtrace "runtime/trace"
	"time"

	"github.com/flickui/flick/gesture"
	"github.com/flickui/flick/layout"
	"github.com/flickui/flick/widget"

	"gioui.org/op"
	"gioui.org/op/clip"
	"golang.org/x/exp/slices"
)

const (
	// animateLength is the duration of the programmatic scroll
	// animation.
	animateLength = 250 * time.Millisecond
	// snapDelay gives the momentum scroll a head start before the
	// section snap corrects it.
	snapDelay = 100 * time.Millisecond
	// maxContentHeight bounds the measuring pass for content of
	// unknown height.
	maxContentHeight = 1 << 20
)

// ScrollArea drives a vertical viewport from swipe gestures: it
// recognizes swipes, applies momentum, animates the offset towards the
// target and optionally snaps to the nearest section afterwards.
type ScrollArea struct {
	Swipe    gesture.Swipe
	Scroller widget.Scroller
	Feedback widget.Feedback

	anim      Animation
	sections  []float32
	snapAt    time.Time
	snapArmed bool
	observers []func(gesture.SwipeEvent)
}

// Subscribe registers fn to be invoked once per classified swipe,
// before the scroll executes. A panicking observer is logged and
// isolated; it can't break gesture tracking.
func (sa *ScrollArea) Subscribe(fn func(gesture.SwipeEvent)) {
	sa.observers = append(sa.observers, fn)
}

// SetSections records the content-relative top offsets of the
// snappable sections.
func (sa *ScrollArea) SetSections(tops []float32) {
	sa.sections = slices.Clone(tops)
	slices.Sort(sa.sections)
}

func (sa *ScrollArea) notify(ev gesture.SwipeEvent) {
	for _, fn := range sa.observers {
		func() {
			defer func() {
				if err := recover(); err != nil {
					log.Printf("swipe observer panicked: %v", err)
				}
			}()
			fn(ev)
		}()
	}
}

// ScrollAreaStyle configures the presentation of a ScrollArea.
type ScrollAreaStyle struct {
	State *ScrollArea
	// Snap aligns the viewport to the nearest section shortly after a
	// swipe scroll.
	Snap bool
	// Feedback shows the directional overlays.
	Feedback      bool
	FeedbackStyle FeedbackStyle
}

// Scrollable constructs a ScrollAreaStyle using the provided theme and
// state.
func Scrollable(th *Theme, state *ScrollArea) ScrollAreaStyle {
	return ScrollAreaStyle{
		State:         state,
		FeedbackStyle: FeedbackOverlay(th, &state.Feedback),
	}
}

// Layout processes pending swipes and lays out w, a widget of
// arbitrary height, inside the scrolled viewport.
func (s ScrollAreaStyle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.ScrollAreaStyle.Layout").End()

	state := s.State
	for _, ev := range state.Swipe.Events(gtx.Queue) {
		state.notify(ev)
		target, ok := state.Scroller.ApplySwipe(ev)
		if !ok {
			continue
		}
		state.anim.Start(gtx, state.Scroller.Offset(), target, animateLength, EaseBezier)
		if s.Feedback {
			state.Feedback.Show(ev.Direction, gtx.Now)
		}
		if s.Snap {
			state.snapAt = gtx.Now.Add(snapDelay)
			state.snapArmed = true
		}
	}

	state.Scroller.ScrollTo(state.anim.Value(gtx))

	if state.snapArmed {
		if gtx.Now.Before(state.snapAt) {
			op.InvalidateOp{At: state.snapAt}.Add(gtx.Ops)
		} else {
			state.snapArmed = false
			if target, ok := state.Scroller.Snap(state.sections); ok {
				state.anim.Start(gtx, state.Scroller.Offset(), target, animateLength, EaseBezier)
			}
		}
	}

	// Measure the content first; the scroll extents of this frame
	// depend on its height.
	macro := op.Record(gtx.Ops)
	cgtx := gtx
	cgtx.Constraints.Min.Y = 0
	cgtx.Constraints.Max.Y = maxContentHeight
	dims := w(cgtx)
	call := macro.Stop()

	state.Scroller.SetExtents(float32(gtx.Constraints.Max.Y), float32(dims.Size.Y))

	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	state.Swipe.Add(gtx.Ops)

	off := op.Offset(image.Pt(0, -int(math.Round(float64(state.Scroller.Offset()))))).Push(gtx.Ops)
	call.Add(gtx.Ops)
	off.Pop()

	if s.Feedback {
		s.FeedbackStyle.Layout(gtx)
	}

	return layout.Dimensions{Size: gtx.Constraints.Max}
}
