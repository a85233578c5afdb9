package gesture

import (
	"testing"
	"time"

	"gioui.org/f32"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		axis AxisMode
		min  float32
		dx   float32
		dy   float32
		want Direction
	}{
		{"vertical down", Vertical, 26, 0, 50, Down},
		{"vertical up", Vertical, 26, 0, -50, Up},
		{"vertical too short", Vertical, 26, 0, 25, None},
		{"vertical exactly min", Vertical, 26, 0, 26, Down},
		{"vertical one below min", Vertical, 26, 0, -25, None},
		{"vertical dominated by x", Vertical, 26, 80, 60, None},
		{"vertical equal axes", Vertical, 26, 60, 60, None},
		{"horizontal right", Horizontal, 26, 50, 0, Right},
		{"horizontal left", Horizontal, 26, -50, 0, Left},
		{"horizontal dominated by y", Horizontal, 26, 60, 80, None},
		{"horizontal too short", Horizontal, 26, 20, 0, None},
		{"any prefers larger axis", Any, 26, 30, -80, Up},
		{"any horizontal", Any, 26, -80, 30, Left},
		{"any tie is vertical", Any, 26, 40, -40, Up},
		{"any tie positive", Any, 26, 40, 40, Down},
		{"any too short", Any, 26, 10, 20, None},
	}
	for _, tt := range tests {
		if got := Classify(tt.axis, tt.min, tt.dx, tt.dy); got != tt.want {
			t.Errorf("%s: Classify(%v, %v, %v, %v) = %v, want %v",
				tt.name, tt.axis, tt.min, tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestClassifyZeroDeltaFavorsUp(t *testing.T) {
	// Non-positive deltas map to Up; with a zero minimum distance even a
	// motionless vertical interaction resolves to Up.
	if got := Classify(Vertical, 0, 0, 0); got != None {
		// |dy| <= |dx| fails the strict dominance check.
		t.Errorf("Classify(Vertical, 0, 0, 0) = %v, want %v", got, None)
	}
	if got := Classify(Any, 0, 0, 0); got != Up {
		t.Errorf("Classify(Any, 0, 0, 0) = %v, want %v", got, Up)
	}
}

func sample(x, y float32, t time.Duration) TouchSample {
	return TouchSample{Pos: f32.Pt(x, y), Time: t}
}

func TestTrackerSwipe(t *testing.T) {
	tr := Tracker{Axis: Vertical, MinDistance: 26}

	tr.Start(sample(100, 500, 0))
	tr.Move(sample(100, 470, 50*time.Millisecond))
	ev := tr.End(sample(100, 440, 100*time.Millisecond))

	if ev.Direction != Up {
		t.Errorf("direction = %v, want %v", ev.Direction, Up)
	}
	if ev.Delta.Y != -60 {
		t.Errorf("delta.Y = %v, want -60", ev.Delta.Y)
	}
	if ev.Duration != 100*time.Millisecond {
		t.Errorf("duration = %v, want 100ms", ev.Duration)
	}
	if tr.Tracking() {
		t.Error("tracker still tracking after End")
	}
}

func TestTrackerAxisLock(t *testing.T) {
	tr := Tracker{Axis: Vertical}
	tr.Start(sample(0, 0, 0))
	if tr.AxisLocked() {
		t.Error("axis locked before any movement")
	}
	tr.Move(sample(10, 5, time.Millisecond))
	if tr.AxisLocked() {
		t.Error("axis locked on horizontal-dominant movement in vertical mode")
	}
	tr.Move(sample(10, 40, 2*time.Millisecond))
	if !tr.AxisLocked() {
		t.Error("axis not locked on vertical-dominant movement")
	}
	tr.Cancel()

	tr = Tracker{Axis: Any}
	tr.Start(sample(0, 0, 0))
	tr.Move(sample(1, 0, time.Millisecond))
	if !tr.AxisLocked() {
		t.Error("Any mode must lock on first movement")
	}
}

func TestTrackerCancelDiscards(t *testing.T) {
	tr := Tracker{Axis: Vertical, MinDistance: 26}

	tr.Start(sample(100, 500, 0))
	tr.Move(sample(100, 400, 50*time.Millisecond))
	tr.Cancel()
	if tr.Tracking() {
		t.Error("tracker still tracking after Cancel")
	}

	// A fresh interaction behaves identically to the very first one.
	tr.Start(sample(100, 500, time.Second))
	ev := tr.End(sample(100, 440, time.Second+100*time.Millisecond))
	if ev.Direction != Up || ev.Delta.Y != -60 || ev.Duration != 100*time.Millisecond {
		t.Errorf("post-cancel swipe = %+v, want Up with delta.Y=-60 over 100ms", ev)
	}
}

func TestTrackerDefensiveNoOps(t *testing.T) {
	var tr Tracker

	// End and Cancel while idle must not panic and must not classify.
	if ev := tr.End(sample(0, 100, 0)); ev.Direction != None {
		t.Errorf("End while idle = %v, want %v", ev.Direction, None)
	}
	tr.Cancel()
	tr.Move(sample(0, 100, 0))
	if tr.Tracking() {
		t.Error("Move while idle started tracking")
	}

	// A second Start mid-interaction is ignored.
	tr.Start(sample(0, 0, 0))
	tr.Start(sample(500, 500, time.Millisecond))
	ev := tr.End(sample(0, 60, 100*time.Millisecond))
	if ev.Delta.Y != 60 {
		t.Errorf("delta.Y = %v, want 60 measured from the first Start", ev.Delta.Y)
	}
}

func TestTrackerWatchdog(t *testing.T) {
	tr := Tracker{Axis: Vertical, Timeout: 2 * time.Second}

	tr.Start(sample(0, 0, 0))
	// The release for this interaction was lost; the next interaction
	// starts well past the timeout and must not be treated as a
	// continuation.
	tr.Start(sample(0, 500, 10*time.Second))
	ev := tr.End(sample(0, 560, 10*time.Second+100*time.Millisecond))
	if ev.Direction != Down {
		t.Errorf("direction = %v, want %v", ev.Direction, Down)
	}
	if ev.Delta.Y != 60 {
		t.Errorf("delta.Y = %v, want 60 measured from the second Start", ev.Delta.Y)
	}

	// An End arriving past the timeout abandons the interaction.
	tr.Start(sample(0, 0, 20*time.Second))
	if ev := tr.End(sample(0, 500, 30*time.Second)); ev.Direction != None {
		t.Errorf("stale End = %v, want %v", ev.Direction, None)
	}
}

func TestTrackerZeroValueDefaults(t *testing.T) {
	var tr Tracker
	tr.Start(sample(0, 0, 0))
	ev := tr.End(sample(0, DefaultMinDistance-1, 100*time.Millisecond))
	if ev.Direction != None {
		t.Errorf("below default distance = %v, want %v", ev.Direction, None)
	}
	tr.Start(sample(0, 0, time.Second))
	ev = tr.End(sample(0, DefaultMinDistance, time.Second+100*time.Millisecond))
	if ev.Direction != Down {
		t.Errorf("at default distance = %v, want %v", ev.Direction, Down)
	}
}
