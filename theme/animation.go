package theme

import (
	"math"
	"time"

	"honnef.co/go/stuff/math/mathutil"

	"github.com/flickui/flick/layout"

	"gioui.org/op"
)

type EasingFunction func(float64) float64

// Animation eases a scalar from a start to an end value over a fixed
// duration. The zero value is an inactive animation whose Value is 0.
type Animation struct {
	StartValue float32
	EndValue   float32
	StartTime  time.Time
	Duration   time.Duration
	Ease       EasingFunction

	active bool
}

func (anim *Animation) Start(gtx layout.Context, v1, v2 float32, d time.Duration, ease EasingFunction) {
	anim.StartValue = v1
	anim.EndValue = v2
	anim.StartTime = gtx.Now
	anim.Duration = d
	anim.Ease = ease
	anim.active = true
	op.InvalidateOp{}.Add(gtx.Ops)
}

func (anim *Animation) Value(gtx layout.Context) float32 {
	if !anim.active {
		return anim.EndValue
	}

	d := gtx.Now.Sub(anim.StartTime)
	if d >= anim.Duration {
		anim.active = false
		return anim.EndValue
	}

	ratio := anim.Ease(float64(d) / float64(anim.Duration))
	op.InvalidateOp{}.Add(gtx.Ops)
	return mathutil.Lerp(anim.StartValue, anim.EndValue, ratio)
}

func (anim *Animation) Cancel() {
	anim.active = false
}

func (anim *Animation) Done() bool {
	return !anim.active
}

func EaseOut(power int) EasingFunction {
	switch power {
	case 1:
		return func(r float64) float64 { return r }
	case 2:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r }
	case 3:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r*r }
	default:
		return func(r float64) float64 { return 1 - math.Pow(1-r, float64(power)) }
	}
}

func EaseBezier(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}
