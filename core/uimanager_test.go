// Copyright 2025 StackedUI contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// mockWidget fills its rect with a rune for visibility in tests.
type mockWidget struct {
	BaseWidget
	ch     rune
	keyHit bool
}

func newMockWidget(x, y, w, h int, ch rune, focusable bool) *mockWidget {
	m := &mockWidget{ch: ch}
	m.SetPosition(x, y)
	m.Resize(w, h)
	m.SetFocusable(focusable)
	return m
}

func (m *mockWidget) Draw(p *Painter) {
	for y := 0; y < m.Rect.H; y++ {
		for x := 0; x < m.Rect.W; x++ {
			p.SetCell(m.Rect.X+x, m.Rect.Y+y, m.ch, tcell.StyleDefault)
		}
	}
}

func (m *mockWidget) HandleKey(ev *tcell.EventKey) bool {
	if ev.Rune() == 'k' {
		m.keyHit = true
		return true
	}
	return false
}

// zWidget stacks above default widgets.
type zWidget struct {
	mockWidget
	z int
}

func (z *zWidget) ZIndex() int { return z.z }

// mockContainer draws its children and exposes them for traversal.
type mockContainer struct {
	BaseWidget
	children []Widget
}

func (c *mockContainer) Draw(p *Painter) {
	for _, child := range c.children {
		child.Draw(p)
	}
}

func (c *mockContainer) VisitChildren(visit func(Widget)) {
	for _, child := range c.children {
		visit(child)
	}
}

func TestUIManagerRendersWidgets(t *testing.T) {
	u := NewUIManager()
	u.Resize(10, 4)
	u.AddWidget(newMockWidget(1, 1, 3, 2, 'X', false))

	buf := u.Render()
	if len(buf) != 4 || len(buf[0]) != 10 {
		t.Fatalf("unexpected buffer size %dx%d", len(buf[0]), len(buf))
	}
	if buf[1][1].Ch != 'X' || buf[2][3].Ch != 'X' {
		t.Error("widget cells missing")
	}
	if buf[0][0].Ch != ' ' {
		t.Error("background missing")
	}
}

func TestUIManagerZOrder(t *testing.T) {
	u := NewUIManager()
	u.Resize(6, 3)

	top := &zWidget{z: 10}
	top.ch = 'T'
	top.SetPosition(0, 0)
	top.Resize(2, 1)

	u.AddWidget(top)
	u.AddWidget(newMockWidget(0, 0, 6, 3, 'b', false))

	buf := u.Render()
	if buf[0][0].Ch != 'T' {
		t.Errorf("expected z-indexed widget on top, got %q", buf[0][0].Ch)
	}
	if buf[2][5].Ch != 'b' {
		t.Error("expected base elsewhere")
	}
}

func TestUIManagerDirtyRedraw(t *testing.T) {
	u := NewUIManager()
	u.Resize(8, 3)
	w := newMockWidget(0, 0, 2, 1, 'a', false)
	u.AddWidget(w)
	u.Render() // consume initial dirty state

	w.ch = 'z'
	u.Invalidate(Rect{X: 0, Y: 0, W: 2, H: 1})
	buf := u.Render()
	if buf[0][0].Ch != 'z' {
		t.Errorf("dirty region not repainted, got %q", buf[0][0].Ch)
	}
}

func TestUIManagerFocusAndKeys(t *testing.T) {
	u := NewUIManager()
	u.Resize(20, 5)

	a := newMockWidget(0, 0, 2, 1, 'a', true)
	b := newMockWidget(3, 0, 2, 1, 'b', true)
	container := &mockContainer{children: []Widget{a, b}}
	container.Resize(20, 5)
	u.AddWidget(container)

	u.Focus(a)
	if u.Focused() != a {
		t.Fatal("focus not applied")
	}

	if !u.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone)) {
		t.Fatal("focused widget should consume the key")
	}
	if !a.keyHit {
		t.Fatal("key not delivered to focused widget")
	}

	// Tab moves to the next focusable child; wraps at the end.
	u.HandleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	if u.Focused() != b {
		t.Fatal("tab did not advance focus")
	}
	u.HandleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	if u.Focused() != a {
		t.Fatal("tab did not wrap focus")
	}

	// Shift-Tab goes back.
	u.HandleKey(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift))
	if u.Focused() != b {
		t.Fatal("backtab did not reverse focus")
	}
}

func TestUIManagerClickToFocus(t *testing.T) {
	u := NewUIManager()
	u.Resize(10, 4)

	a := newMockWidget(0, 0, 3, 1, 'a', true)
	u.AddWidget(a)

	press := tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone)
	if !u.HandleMouse(press) {
		t.Fatal("click over a widget should be consumed")
	}
	if u.Focused() != a {
		t.Fatal("click did not focus widget")
	}
	// Release ends the capture.
	u.HandleMouse(tcell.NewEventMouse(1, 0, tcell.ButtonNone, tcell.ModNone))

	miss := tcell.NewEventMouse(9, 3, tcell.Button1, tcell.ModNone)
	if u.HandleMouse(miss) {
		t.Fatal("click over empty space should not be consumed")
	}
}
