package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Painter draws into a cell buffer, clipped to a rectangle. Containers hand
// widgets a painter so a widget can never scribble outside the region it was
// asked to redraw.
type Painter struct {
	buf  [][]Cell
	clip Rect
}

// NewPainter wraps buf with the given clip rectangle. The clip is further
// bounded by the buffer's own dimensions.
func NewPainter(buf [][]Cell, clip Rect) *Painter {
	h := len(buf)
	w := 0
	if h > 0 {
		w = len(buf[0])
	}
	return &Painter{buf: buf, clip: clip.Intersect(Rect{W: w, H: h})}
}

// Clip returns the effective clip rectangle.
func (p *Painter) Clip() Rect {
	return p.clip
}

// SetCell writes a single cell if it falls inside the clip.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	p.buf[y][x] = Cell{Ch: ch, Style: style}
}

// Fill paints every cell of r inside the clip.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	area := r.Intersect(p.clip)
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			p.buf[y][x] = Cell{Ch: ch, Style: style}
		}
	}
}

// DrawText draws a single line of text starting at (x, y). Wide runes occupy
// two columns; the shadowed column is written as a transparent filler so the
// terminal keeps the glyph intact.
func (p *Painter) DrawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		p.SetCell(x, y, ch, style)
		if cw == 2 {
			p.SetCell(x+1, y, rune(0), style)
		}
		x += cw
	}
	return x
}

// DrawBorder draws a box around r using charset [h, v, tl, tr, bl, br].
func (p *Painter) DrawBorder(r Rect, style tcell.Style, charset [6]rune) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x1 := r.X + r.W - 1
	y1 := r.Y + r.H - 1
	for x := r.X + 1; x < x1; x++ {
		p.SetCell(x, r.Y, charset[0], style)
		p.SetCell(x, y1, charset[0], style)
	}
	for y := r.Y + 1; y < y1; y++ {
		p.SetCell(r.X, y, charset[1], style)
		p.SetCell(x1, y, charset[1], style)
	}
	p.SetCell(r.X, r.Y, charset[2], style)
	p.SetCell(x1, r.Y, charset[3], style)
	p.SetCell(r.X, y1, charset[4], style)
	p.SetCell(x1, y1, charset[5], style)
}
