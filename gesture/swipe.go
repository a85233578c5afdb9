package gesture

import (
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
)

// Swipe detects swipe gestures in the form of SwipeEvents. It tracks a
// single pointer; additional pointers pressed during an interaction are
// ignored.
type Swipe struct {
	Tracker

	pid pointer.ID
}

// Add the handler to the operation list to receive pointer events. The
// input area passes events through, so native scrolling of widgets
// below is never suppressed.
func (s *Swipe) Add(ops *op.Ops) {
	defer pointer.PassOp{}.Push(ops).Pop()
	pointer.InputOp{
		Tag:   s,
		Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(ops)
}

// Events returns the swipes completed since the last call. Interactions
// that don't qualify produce no event.
func (s *Swipe) Events(q event.Queue) []SwipeEvent {
	var events []SwipeEvent
	for _, evt := range q.Events(s) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}

		switch e.Kind {
		case pointer.Press:
			if s.Tracking() {
				continue
			}
			s.pid = e.PointerID
			s.Start(TouchSample{Pos: e.Position, Time: e.Time})
		case pointer.Drag:
			if e.PointerID != s.pid {
				continue
			}
			s.Move(TouchSample{Pos: e.Position, Time: e.Time})
		case pointer.Release:
			if e.PointerID != s.pid {
				continue
			}
			ev := s.End(TouchSample{Pos: e.Position, Time: e.Time})
			if ev.Direction != None {
				events = append(events, ev)
			}
		case pointer.Cancel:
			s.Tracker.Cancel()
		}
	}
	return events
}
