package core

import "github.com/gdamore/tcell/v2"

// Widget is the minimal contract for drawable UI elements.
type Widget interface {
	SetPosition(x, y int)
	Position() (int, int)
	Resize(w, h int)
	Size() (int, int)
	// SizeHint is the widget's natural size, used by containers that
	// position children instead of filling them.
	SizeHint() (int, int)
	Draw(p *Painter)
	Focusable() bool
	Focus()
	Blur()
	HandleKey(ev *tcell.EventKey) bool
	HitTest(x, y int) bool
}

// BaseWidget provides common fields/behaviour for widgets.
type BaseWidget struct {
	Rect       Rect
	focused    bool
	focusable  bool
	focusStyle tcell.Style
	useFocus   bool
}

func (b *BaseWidget) SetPosition(x, y int) { b.Rect.X, b.Rect.Y = x, y }
func (b *BaseWidget) Position() (int, int) { return b.Rect.X, b.Rect.Y }
func (b *BaseWidget) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.Rect.W, b.Rect.H = w, h
}
func (b *BaseWidget) Size() (int, int)     { return b.Rect.W, b.Rect.H }
func (b *BaseWidget) SizeHint() (int, int) { return b.Rect.W, b.Rect.H }
func (b *BaseWidget) Focusable() bool      { return b.focusable }
func (b *BaseWidget) SetFocusable(f bool)  { b.focusable = f }
func (b *BaseWidget) Focus() {
	if b.focusable {
		b.focused = true
	}
}
func (b *BaseWidget) Blur()                             { b.focused = false }
func (b *BaseWidget) IsFocused() bool                   { return b.focused }
func (b *BaseWidget) HitTest(x, y int) bool             { return b.Rect.Contains(x, y) }
func (b *BaseWidget) HandleKey(ev *tcell.EventKey) bool { return false }

// SetFocusedStyle registers the style used while the widget holds focus.
func (b *BaseWidget) SetFocusedStyle(style tcell.Style, use bool) {
	b.focusStyle = style
	b.useFocus = use
}

// EffectiveStyle returns the focused style when the widget holds focus and
// one was registered, the given base style otherwise.
func (b *BaseWidget) EffectiveStyle(base tcell.Style) tcell.Style {
	if b.focused && b.useFocus {
		return b.focusStyle
	}
	return base
}

// MouseAware widgets can consume mouse events directly.
type MouseAware interface {
	HandleMouse(ev *tcell.EventMouse) bool
}

// InvalidationAware widgets accept an invalidation callback to mark dirty regions.
type InvalidationAware interface {
	SetInvalidator(func(Rect))
}

// ChildContainer allows recursive operations over widget trees without
// depending on concrete widget packages.
type ChildContainer interface {
	VisitChildren(func(Widget))
}

// HitTester allows a container to return the deepest widget under a point.
type HitTester interface {
	WidgetAt(x, y int) Widget
}

// ZIndexer widgets choose their stacking position; higher values draw on top.
type ZIndexer interface {
	ZIndex() int
}
