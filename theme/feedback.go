package theme

import (
	"context"
	"image/color"
	rtrace "runtime/trace"

	myclip "github.com/flickui/flick/clip"
	"github.com/flickui/flick/gesture"
	"github.com/flickui/flick/layout"
	"github.com/flickui/flick/widget"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// FeedbackStyle configures the presentation of the directional
// overlays: a gradient fading in from the viewport edge the new content
// arrives from. Each style instance draws the overlays of its own state;
// nothing is shared between areas.
type FeedbackStyle struct {
	State *widget.Feedback
	// Color at the viewport edge; it fades to transparent over Height.
	Color  color.NRGBA
	Height unit.Dp
}

// FeedbackOverlay constructs a FeedbackStyle using the provided theme
// and state.
func FeedbackOverlay(th *Theme, state *widget.Feedback) FeedbackStyle {
	return FeedbackStyle{
		State:  state,
		Color:  th.Palette.Feedback,
		Height: th.FeedbackHeight,
	}
}

// Layout draws the visible overlays over the current viewport, given by
// the maximum constraints.
func (f FeedbackStyle) Layout(gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.FeedbackStyle.Layout").End()

	width := float32(gtx.Constraints.Max.X)
	height := float32(gtx.Constraints.Max.Y)
	fade := float32(gtx.Dp(f.Height))

	// Swiping up scrolls forward: new content slides in from the
	// bottom. Swiping down brings content back in from the top.
	if f.State.Visible(gesture.Up, gtx.Now) {
		f.gradient(gtx,
			myclip.FRect{Min: f32.Pt(0, height-fade), Max: f32.Pt(width, height)},
			f32.Pt(0, height), f32.Pt(0, height-fade))
		f.scheduleHide(gtx, gesture.Up)
	}
	if f.State.Visible(gesture.Down, gtx.Now) {
		f.gradient(gtx,
			myclip.FRect{Min: f32.Pt(0, 0), Max: f32.Pt(width, fade)},
			f32.Pt(0, 0), f32.Pt(0, fade))
		f.scheduleHide(gtx, gesture.Down)
	}

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (f FeedbackStyle) gradient(gtx layout.Context, r myclip.FRect, from, to f32.Point) {
	defer r.Op(gtx.Ops).Push(gtx.Ops).Pop()
	transparent := f.Color
	transparent.A = 0
	paint.LinearGradientOp{
		Stop1:  from,
		Color1: f.Color,
		Stop2:  to,
		Color2: transparent,
	}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

func (f FeedbackStyle) scheduleHide(gtx layout.Context, dir gesture.Direction) {
	if at, shown := f.State.HideAt(dir); shown {
		op.InvalidateOp{At: at}.Add(gtx.Ops)
	}
}
