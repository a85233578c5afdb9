// Package theme renders the swipe-to-scroll pipeline: the scrollable
// area widget, its offset animation, and the directional feedback
// overlays.
package theme

import (
	"image/color"

	"gioui.org/unit"
)

type Theme struct {
	Palette        Palette
	FeedbackHeight unit.Dp
}

type Palette struct {
	Background color.NRGBA
	Foreground color.NRGBA
	Border     color.NRGBA
	// Feedback is the edge color of the directional overlays; it fades
	// to transparent towards the viewport center.
	Feedback color.NRGBA
}

var DefaultPalette = Palette{
	Background: rgba(0xFFFFEAFF),
	Foreground: rgba(0x000000FF),
	Border:     rgba(0x000000FF),
	Feedback:   rgba(0x9C6FCCB0),
}

func NewTheme() *Theme {
	return &Theme{
		Palette:        DefaultPalette,
		FeedbackHeight: 96,
	}
}

func rgba(c uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}
