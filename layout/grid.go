package layout

import (
	"image"

	"gioui.org/layout"
	"gioui.org/x/outlay"
)

// UniformGrid lays out uniformly sized cells in rows and columns.
// outlay.Grid assumes one height per row, which a uniform cell size
// satisfies trivially.
type UniformGrid struct {
	Grid     outlay.Grid
	CellSize image.Point
	Padding  int
}

func (g UniformGrid) Layout(gtx layout.Context, rows, cols int, cell outlay.Cell) layout.Dimensions {
	dimmer := func(axis layout.Axis, index, constraint int) int {
		switch axis {
		case layout.Vertical:
			return g.CellSize.Y + g.Padding
		case layout.Horizontal:
			return g.CellSize.X + g.Padding
		default:
			panic("unreachable")
		}
	}

	height := rows*(g.CellSize.Y+g.Padding) - g.Padding
	width := cols*(g.CellSize.X+g.Padding) - g.Padding
	// outlay.Grid fills the Max constraint.
	gtx.Constraints.Max = gtx.Constraints.Constrain(image.Pt(width, height))

	wrapper := func(gtx layout.Context, row, col int) layout.Dimensions {
		cgtx := gtx
		cgtx.Constraints = layout.Exact(g.CellSize)
		return cell(cgtx, row, col)
	}
	return g.Grid.Layout(gtx, rows, cols, dimmer, wrapper)
}
