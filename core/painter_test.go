package core

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestPainterClips(t *testing.T) {
	buf := NewBuffer(10, 5, ' ', tcell.StyleDefault)
	p := NewPainter(buf, Rect{X: 2, Y: 1, W: 4, H: 2})

	p.Fill(Rect{X: 0, Y: 0, W: 10, H: 5}, '#', tcell.StyleDefault)

	if buf[0][0].Ch != ' ' || buf[4][9].Ch != ' ' {
		t.Error("fill escaped the clip")
	}
	if buf[1][2].Ch != '#' || buf[2][5].Ch != '#' {
		t.Error("fill missed cells inside the clip")
	}
	if buf[1][6].Ch != ' ' {
		t.Error("fill crossed the right clip edge")
	}
}

func TestPainterSetCellOutsideClip(t *testing.T) {
	buf := NewBuffer(4, 4, ' ', tcell.StyleDefault)
	p := NewPainter(buf, Rect{X: 0, Y: 0, W: 2, H: 2})
	p.SetCell(3, 3, 'x', tcell.StyleDefault)
	if buf[3][3].Ch != ' ' {
		t.Error("SetCell wrote outside the clip")
	}
}

func TestPainterClipBoundedByBuffer(t *testing.T) {
	buf := NewBuffer(3, 3, ' ', tcell.StyleDefault)
	p := NewPainter(buf, Rect{X: -5, Y: -5, W: 100, H: 100})
	if p.Clip() != (Rect{X: 0, Y: 0, W: 3, H: 3}) {
		t.Errorf("clip not bounded: %+v", p.Clip())
	}
}

func TestDrawTextAdvancesWideRunes(t *testing.T) {
	buf := NewBuffer(10, 1, ' ', tcell.StyleDefault)
	p := NewPainter(buf, Rect{W: 10, H: 1})

	end := p.DrawText(0, 0, "a漢b", tcell.StyleDefault)
	if end != 4 {
		t.Fatalf("expected advance of 4 columns, got %d", end)
	}
	if buf[0][0].Ch != 'a' || buf[0][1].Ch != '漢' || buf[0][3].Ch != 'b' {
		t.Error("unexpected glyph placement")
	}
	if buf[0][2].Ch != rune(0) {
		t.Error("expected transparent filler after wide rune")
	}
}

func TestDrawBorder(t *testing.T) {
	buf := NewBuffer(5, 4, ' ', tcell.StyleDefault)
	p := NewPainter(buf, Rect{W: 5, H: 4})
	charset := [6]rune{'─', '│', '┌', '┐', '└', '┘'}

	p.DrawBorder(Rect{X: 0, Y: 0, W: 5, H: 4}, tcell.StyleDefault, charset)

	if buf[0][0].Ch != '┌' || buf[0][4].Ch != '┐' || buf[3][0].Ch != '└' || buf[3][4].Ch != '┘' {
		t.Error("corners misplaced")
	}
	if buf[0][2].Ch != '─' || buf[1][0].Ch != '│' {
		t.Error("edges misplaced")
	}
	if buf[1][1].Ch != ' ' {
		t.Error("interior must stay untouched")
	}

	// Too small to hold a border: nothing drawn.
	tiny := NewBuffer(1, 1, ' ', tcell.StyleDefault)
	tp := NewPainter(tiny, Rect{W: 1, H: 1})
	tp.DrawBorder(Rect{W: 1, H: 1}, tcell.StyleDefault, charset)
	if tiny[0][0].Ch != ' ' {
		t.Error("border drawn in degenerate rect")
	}
}
