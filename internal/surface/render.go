package surface

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Default layout scale: a 100x20 px gauge renders as 50 columns by 2 rows.
const (
	DefaultScaleX = 2.0
	DefaultScaleY = 10.0
)

// Canvas limits. Lengths that would lay out past them are clipped.
const (
	MaxColumns = 1024
	MaxRows    = 256
)

// Renderer lays a node tree out in terminal cells and paints it.
type Renderer struct {
	scaleX     float64
	scaleY     float64
	monochrome bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithScale sets how many layout units one column (x) and one row (y) cover.
func WithScale(x, y float64) RendererOption {
	return func(r *Renderer) {
		if x > 0 {
			r.scaleX = x
		}
		if y > 0 {
			r.scaleY = y
		}
	}
}

// WithMonochrome drops colors and paints backgrounds with shade glyphs
// picked from the color's lightness.
func WithMonochrome(on bool) RendererOption {
	return func(r *Renderer) {
		r.monochrome = on
	}
}

// NewRenderer creates a renderer with the default scale.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{scaleX: DefaultScaleX, scaleY: DefaultScaleY}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// box is the laid-out position of one node, in cells.
type box struct {
	node           *Node
	x, y           int // outer (border) box origin
	w, h           int // outer size
	bl, br, bt, bb int // border thickness per side
	padX, padY     int // padding-box origin
	padW, padH     int // padding-box size
	textX, textY   int
}

// Render returns the painted tree. Unpainted trailing space is trimmed.
func (r *Renderer) Render(root *Node) string {
	var boxes []box
	r.layoutChildren(root, 0, 0, 0, 0, 0, &boxes)

	w, h := 0, 0
	for _, b := range boxes {
		w = max(w, b.x+b.w)
		h = max(h, b.y+b.h)
		if t := b.node.text; t != "" {
			lines := strings.Split(t, "\n")
			for i, line := range lines {
				w = max(w, b.textX+runewidth.StringWidth(line))
				h = max(h, b.textY+i+1)
			}
		}
	}
	if w <= 0 || h <= 0 {
		return ""
	}
	w, h = min(w, MaxColumns), min(h, MaxRows)

	c := newCanvas(w, h)
	for _, b := range boxes {
		r.paint(c, b)
	}
	return c.String(r.monochrome)
}

// Size returns the width and height in cells of the tree's layout.
func (r *Renderer) Size(root *Node) (int, int) {
	out := r.Render(root)
	if out == "" {
		return 0, 0
	}
	return lipgloss.Width(out), lipgloss.Height(out)
}

// layoutChildren lays out n's children. (cx, cy) is n's content origin,
// (px, py) its padding-box origin, and cw its content width.
func (r *Renderer) layoutChildren(n *Node, cx, cy, px, py, cw int, boxes *[]box) int {
	flowY := cy
	if n.text != "" {
		flowY += len(strings.Split(n.text, "\n"))
	}
	for _, child := range n.children {
		s := child.style
		if s.Position == PositionAbsolute {
			r.layout(child, px+r.cols(s.Left)+r.cols(s.Margin.Left), py+r.rows(s.Top)+r.rows(s.Margin.Top), cw, boxes)
			continue
		}
		y := flowY + r.rows(s.Margin.Top)
		h := r.layout(child, cx+r.cols(s.Margin.Left), y, cw, boxes)
		flowY = y + h + r.rows(s.Margin.Bottom)
	}
	return flowY - cy
}

// layout places n with its outer box at (x, y) and returns its outer height.
func (r *Renderer) layout(n *Node, x, y, parentW int, boxes *[]box) int {
	s := n.style
	b := box{node: n, x: x, y: y}
	b.bl = edge(s.leftBorder())
	b.br = edge(s.rightBorder())
	b.bt = edge(s.Border)
	b.bb = edge(s.Border)

	padL, padR := r.cols(s.Padding.Left), r.cols(s.Padding.Right)
	padT, padB := r.rows(s.Padding.Top), r.rows(s.Padding.Bottom)

	contentW := r.cols(s.Width)
	if s.Width == 0 {
		if s.Position == PositionAbsolute {
			contentW = textWidth(n.text)
		} else {
			contentW = max(0, parentW-b.bl-b.br-padL-padR)
		}
	}

	b.padX, b.padY = x+b.bl, y+b.bt
	b.textX, b.textY = b.padX+padL, b.padY+padT

	// Index before recursing so parents paint under their children.
	idx := len(*boxes)
	*boxes = append(*boxes, b)

	flowH := r.layoutChildren(n, b.textX, b.textY, b.padX, b.padY, contentW, boxes)

	contentH := r.rows(s.Height)
	if s.Height == 0 {
		contentH = flowH
	}

	b.padW = padL + contentW + padR
	b.padH = padT + contentH + padB
	b.w = b.bl + b.padW + b.br
	b.h = b.bt + b.padH + b.bb
	(*boxes)[idx] = b
	return b.h
}

func (r *Renderer) paint(c *canvas, b box) {
	s := b.node.style

	if s.Background != "" && s.BackgroundImage == "" {
		if r.monochrome {
			c.fill(b.padX, b.padY, b.padW, b.padH, shade(s.Background), "", "")
		} else {
			c.fill(b.padX, b.padY, b.padW, b.padH, ' ', "", s.Background)
		}
	}
	if s.BackgroundImage != "" {
		c.tile(b.padX, b.padY, b.padW, b.padH, []rune(s.BackgroundImage), s.Background)
	}

	r.paintBorders(c, b)

	if b.node.text != "" {
		for i, line := range strings.Split(b.node.text, "\n") {
			c.text(b.textX, b.textY+i, line, s.Color, s.Bold)
		}
	}
}

func (r *Renderer) paintBorders(c *canvas, b box) {
	s := b.node.style
	right := b.x + b.w - 1
	bottom := b.y + b.h - 1

	if b.bt > 0 {
		set := borderSet(s.Border.Type)
		c.glyph(b.x, b.y, first(set.TopLeft), s.Border.Color)
		c.glyph(right, b.y, first(set.TopRight), s.Border.Color)
		c.glyph(b.x, bottom, first(set.BottomLeft), s.Border.Color)
		c.glyph(right, bottom, first(set.BottomRight), s.Border.Color)
		for col := b.x + 1; col < right; col++ {
			c.glyph(col, b.y, first(set.Top), s.Border.Color)
			c.glyph(col, bottom, first(set.Bottom), s.Border.Color)
		}
	}

	top, last := b.y+b.bt, bottom-b.bb
	if b.bl > 0 {
		lb := s.leftBorder()
		set := borderSet(lb.Type)
		for row := top; row <= last; row++ {
			c.glyph(b.x, row, first(set.Left), lb.Color)
		}
	}
	if b.br > 0 {
		rb := s.rightBorder()
		set := borderSet(rb.Type)
		for row := top; row <= last; row++ {
			c.glyph(right, row, first(set.Right), rb.Color)
		}
	}
}

// cols converts a horizontal length to columns.
func (r *Renderer) cols(v float64) int {
	return toCells(v, r.scaleX, MaxColumns)
}

// rows converts a vertical length to rows.
func (r *Renderer) rows(v float64) int {
	return toCells(v, r.scaleY, MaxRows)
}

// toCells rounds a length to whole cells, at most limit. Non-finite and
// negative lengths collapse to zero.
func toCells(v, scale float64, limit int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	cells := math.Round(v / scale)
	if cells > float64(limit) {
		return limit
	}
	return int(cells)
}

func edge(b Border) int {
	if b.IsZero() {
		return 0
	}
	return 1
}

func textWidth(t string) int {
	w := 0
	for _, line := range strings.Split(t, "\n") {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}

func first(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// borderSet maps a line type to the runes used to draw it.
func borderSet(lineType string) lipgloss.Border {
	switch lineType {
	case LineDouble:
		return lipgloss.DoubleBorder()
	case LineThick:
		return lipgloss.ThickBorder()
	case LineDashed:
		b := lipgloss.NormalBorder()
		b.Top, b.Bottom = "╌", "╌"
		b.Left, b.Right = "╎", "╎"
		return b
	case LineDotted:
		b := lipgloss.NormalBorder()
		b.Top, b.Bottom = "┈", "┈"
		b.Left, b.Right = "┊", "┊"
		return b
	default:
		return lipgloss.NormalBorder()
	}
}

// shade picks a block glyph whose density follows the color's darkness.
func shade(color string) rune {
	c, err := colorful.Hex(color)
	if err != nil {
		return ' '
	}
	l, _, _ := c.Lab()
	switch {
	case l > 0.9:
		return ' '
	case l > 0.7:
		return '░'
	case l > 0.5:
		return '▒'
	case l > 0.3:
		return '▓'
	default:
		return '█'
	}
}
