package surface

import (
	"fmt"
	"strconv"
)

// Position mirrors the CSS positioning schemes the renderer understands.
type Position int

const (
	// PositionStatic regions stack vertically inside their parent.
	PositionStatic Position = iota
	// PositionRelative stacks like static but anchors absolute children.
	PositionRelative
	// PositionAbsolute regions are placed at Top/Left of the parent's box.
	PositionAbsolute
)

// Line types accepted for borders.
const (
	LineSolid  = "solid"
	LineDashed = "dashed"
	LineDotted = "dotted"
	LineDouble = "double"
	LineThick  = "thick"
	LineNone   = "none"
)

// LineTypes lists every supported border line type.
var LineTypes = []string{LineSolid, LineDashed, LineDotted, LineDouble, LineThick, LineNone}

// Border describes one border edge (or all four when used as Style.Border).
type Border struct {
	Width float64
	Type  string
	Color string
}

// IsZero reports whether the border draws nothing.
func (b Border) IsZero() bool {
	return b.Width <= 0 || b.Type == "" || b.Type == LineNone
}

// String renders the border in CSS shorthand, e.g. "1px solid #000".
func (b Border) String() string {
	if b.IsZero() {
		return "none"
	}
	return fmt.Sprintf("%spx %s %s", strconv.FormatFloat(b.Width, 'f', -1, 64), b.Type, b.Color)
}

// Edges holds per-side lengths for margin and padding.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns Edges with the same length on every side.
func Uniform(v float64) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// Style is the declarative descriptor applied to a region when it is
// appended. Lengths are layout units (pixels). Only the width transition and
// the text content change afterwards.
type Style struct {
	Position Position
	Top      float64
	Left     float64
	Width    float64
	Height   float64

	Margin  Edges
	Padding Edges

	Border      Border
	BorderLeft  Border
	BorderRight Border

	Background      string
	BackgroundImage string // tiled along x from the top-left corner

	Color      string
	Bold       bool
	FontFamily string
	FontSize   float64
}

// leftBorder returns the border drawn on the left edge.
func (s Style) leftBorder() Border {
	if !s.BorderLeft.IsZero() {
		return s.BorderLeft
	}
	return s.Border
}

func (s Style) rightBorder() Border {
	if !s.BorderRight.IsZero() {
		return s.BorderRight
	}
	return s.Border
}
