package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal character position.
type cell struct {
	r    rune
	fg   string
	bg   string
	bold bool
	wide bool // continuation of a double-width rune on the left
}

func (c cell) blank() bool {
	return (c.r == 0 || c.r == ' ') && c.bg == ""
}

type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return nil
	}
	return &c.cells[y][x]
}

// fill paints a background over the rectangle.
func (c *canvas) fill(x, y, w, h int, r rune, fg, bg string) {
	x0, y0, x1, y1 := c.clip(x, y, w, h)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			c.cells[row][col] = cell{r: r, fg: fg, bg: bg}
		}
	}
}

// clip intersects the rectangle with the canvas.
func (c *canvas) clip(x, y, w, h int) (x0, y0, x1, y1 int) {
	return max(x, 0), max(y, 0), min(x+w, c.w), min(y+h, c.h)
}

// tile repeats pattern along each row of the rectangle, keeping the
// background underneath.
func (c *canvas) tile(x, y, w, h int, pattern []rune, fg string) {
	if len(pattern) == 0 {
		return
	}
	x0, y0, x1, y1 := c.clip(x, y, w, h)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			p := &c.cells[row][col]
			p.r = pattern[(col-x)%len(pattern)]
			p.fg = fg
			p.wide = false
		}
	}
}

// glyph draws a border or line rune, keeping the background underneath.
func (c *canvas) glyph(x, y int, r rune, fg string) {
	if p := c.at(x, y); p != nil {
		p.r = r
		p.fg = fg
		p.wide = false
	}
}

// text writes s starting at (x, y) and returns the number of columns used.
func (c *canvas) text(x, y int, s string, fg string, bold bool) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if p := c.at(col, y); p != nil {
			p.r = r
			p.fg = fg
			p.bold = bold
			p.wide = false
		}
		if w == 2 {
			if p := c.at(col+1, y); p != nil {
				p.r = 0
				p.wide = true
			}
		}
		col += w
	}
	return col - x
}

// String emits the canvas row by row, trimming blank trailing cells and rows.
func (c *canvas) String(monochrome bool) string {
	lines := make([]string, 0, c.h)
	for _, row := range c.cells {
		end := len(row)
		for end > 0 && row[end-1].blank() && !row[end-1].wide {
			end--
		}
		lines = append(lines, renderRow(row[:end], monochrome))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func renderRow(row []cell, monochrome bool) string {
	var sb strings.Builder
	var run strings.Builder
	var cur cell
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(styleFor(cur, monochrome).Render(run.String()))
		run.Reset()
	}
	for i, ce := range row {
		if ce.wide {
			continue
		}
		if i == 0 || ce.fg != cur.fg || ce.bg != cur.bg || ce.bold != cur.bold {
			flush()
			cur = ce
		}
		r := ce.r
		if r == 0 {
			r = ' '
		}
		run.WriteRune(r)
	}
	flush()
	return sb.String()
}

func styleFor(c cell, monochrome bool) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.bold {
		st = st.Bold(true)
	}
	if monochrome {
		return st
	}
	if c.fg != "" {
		st = st.Foreground(lipgloss.Color(c.fg))
	}
	if c.bg != "" {
		st = st.Background(lipgloss.Color(c.bg))
	}
	return st
}
