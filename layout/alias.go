package layout

import "gioui.org/layout"

type Context = layout.Context
type Dimensions = layout.Dimensions
type Constraints = layout.Constraints
type Widget = layout.Widget
type Flex = layout.Flex
type FlexChild = layout.FlexChild
type Alignment = layout.Alignment
type Axis = layout.Axis
type Direction = layout.Direction
type Inset = layout.Inset
type Spacer = layout.Spacer
type Stack = layout.Stack

var UniformInset = layout.UniformInset
var Rigid = layout.Rigid
var Flexed = layout.Flexed
var Exact = layout.Exact
var Expanded = layout.Expanded
var Stacked = layout.Stacked
var NewContext = layout.NewContext

const (
	Start  Alignment = layout.Start
	End    Alignment = layout.End
	Middle Alignment = layout.Middle
)

const (
	Horizontal Axis = layout.Horizontal
	Vertical   Axis = layout.Vertical
)

const (
	N      Direction = layout.N
	S      Direction = layout.S
	Center Direction = layout.Center
)
