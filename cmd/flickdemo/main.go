// Command flickdemo shows the swipe-to-scroll pipeline on a page of
// colored sections. Swipe up or down anywhere; fast swipes scroll
// further, and with snapping enabled the page settles on the nearest
// section.
package main

import (
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/flickui/flick/gesture"
	"github.com/flickui/flick/layout"
	"github.com/flickui/flick/theme"
	"github.com/flickui/flick/widget"
)

func main() {
	cfg, err := loadConfig("flickdemo.yaml")
	if err != nil {
		log.Printf("flickdemo: %v, continuing with defaults", err)
	}

	go func() {
		w := app.NewWindow(
			app.Title("flick"),
			app.Size(unit.Dp(480), unit.Dp(800)),
		)
		if err := run(w, cfg); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(w *app.Window, cfg demoConfig) error {
	page := newPage(theme.NewTheme(), cfg)

	var ops op.Ops
	for {
		e := <-w.Events()
		switch ev := e.(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, ev)
			page.Layout(gtx)
			ev.Frame(&ops)
		}
	}
}

type section struct {
	height unit.Dp
	color  color.NRGBA
	cards  int
}

type page struct {
	th   *theme.Theme
	cfg  demoConfig
	area theme.ScrollArea

	sections []section
	cards    []color.NRGBA
}

func newPage(th *theme.Theme, cfg demoConfig) *page {
	p := &page{
		th:  th,
		cfg: cfg,
		sections: []section{
			{height: 560, color: nrgba(0x8ECAE6FF)},
			{height: 480, color: nrgba(0xFFF1D6FF), cards: 9},
			{height: 560, color: nrgba(0xFFB5A7FF)},
			{height: 480, color: nrgba(0xD8F3DCFF), cards: 6},
			{height: 560, color: nrgba(0xCDB4DBFF)},
		},
		cards: []color.NRGBA{
			nrgba(0x219EBCFF),
			nrgba(0xFB8500FF),
			nrgba(0x2A9D8FFF),
			nrgba(0xE76F51FF),
		},
	}

	p.area.Swipe.Tracker = gesture.Tracker{
		Axis:        gesture.Vertical,
		MinDistance: cfg.MinSwipeDistance,
	}
	p.area.Scroller.Momentum = widget.Momentum{
		Enabled:    cfg.Momentum,
		Multiplier: cfg.MomentumMultiplier,
	}
	p.area.Subscribe(func(ev gesture.SwipeEvent) {
		log.Printf("swipe %s, delta %v over %v", ev.Direction, ev.Delta, ev.Duration)
	})
	return p
}

func (p *page) Layout(gtx layout.Context) layout.Dimensions {
	style := theme.Scrollable(p.th, &p.area)
	style.Snap = p.cfg.Snap
	style.Feedback = p.cfg.Feedback
	return style.Layout(gtx, p.layoutContent)
}

// layoutContent stacks the sections and records their tops for
// snapping.
func (p *page) layoutContent(gtx layout.Context) layout.Dimensions {
	tops := make([]float32, 0, len(p.sections))
	y := 0
	for _, sec := range p.sections {
		tops = append(tops, float32(y))

		offset := op.Offset(image.Pt(0, y)).Push(gtx.Ops)
		sgtx := gtx
		sgtx.Constraints = layout.Exact(image.Pt(gtx.Constraints.Max.X, gtx.Dp(sec.height)))
		p.layoutSection(sgtx, sec)
		offset.Pop()

		y += gtx.Dp(sec.height)
	}
	p.area.SetSections(tops)
	return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, y)}
}

func (p *page) layoutSection(gtx layout.Context, sec section) layout.Dimensions {
	return widget.Background{Color: sec.color}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if sec.cards > 0 {
			return layout.UniformInset(16).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				p.layoutCards(gtx, sec.cards)
				return layout.Dimensions{Size: gtx.Constraints.Max}
			})
		}
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})
}

func (p *page) layoutCards(gtx layout.Context, n int) layout.Dimensions {
	grid := layout.UniformGrid{
		CellSize: image.Pt(gtx.Dp(96), gtx.Dp(96)),
		Padding:  gtx.Dp(8),
	}
	cols := gtx.Constraints.Max.X / (grid.CellSize.X + grid.Padding)
	if cols < 1 {
		cols = 1
	}
	rows := (n + cols - 1) / cols
	return grid.Layout(gtx, rows, cols, func(gtx layout.Context, row, col int) layout.Dimensions {
		c := p.cards[(row*cols+col)%len(p.cards)]
		return widget.Bordered{Color: p.th.Palette.Border, Width: 1}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return widget.Background{Color: c}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: gtx.Constraints.Max}
			})
		})
	})
}

func nrgba(c uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}
