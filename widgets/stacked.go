package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/stackedui/core"
)

// StackedPane overlays one widget on top of another. The base widget fills
// the pane's whole rect; the overlay widget keeps its natural size and is
// positioned inside that rect according to an alignment and a margin. The
// layout is recomputed on every resize.
//
// The pane holds non-owning references to both children: their lifecycle
// belongs to whoever built the tree.
type StackedPane struct {
	core.BaseWidget
	base    core.Widget
	overlay core.Widget
	margin  int
	align   core.Alignment
}

// StackedOption configures a StackedPane at construction.
type StackedOption func(*StackedPane)

// WithMargin sets the inset, in cells, applied at the aligned edges.
func WithMargin(m int) StackedOption {
	return func(s *StackedPane) { s.margin = m }
}

// WithAlignment sets where the overlay sits inside the pane.
func WithAlignment(a core.Alignment) StackedOption {
	return func(s *StackedPane) { s.align = a }
}

// NewStackedPane builds a pane stacking overlay on top of base. Margin
// defaults to 0 and alignment to core.DefaultAlignment; both are fixed once
// the pane is built. A nil child, a negative margin or an alignment outside
// the closed set yields a ConfigError.
func NewStackedPane(base, overlay core.Widget, opts ...StackedOption) (*StackedPane, error) {
	s := &StackedPane{
		base:    base,
		overlay: overlay,
		align:   core.DefaultAlignment,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.base == nil {
		return nil, &ConfigError{Reason: "stacked pane requires a base widget"}
	}
	if s.overlay == nil {
		return nil, &ConfigError{Reason: "stacked pane requires an overlay widget"}
	}
	if s.margin < 0 {
		return nil, &ConfigError{Reason: "margin must not be negative"}
	}
	if !s.align.Valid() {
		return nil, &ConfigError{Reason: "unrecognized alignment"}
	}
	return s, nil
}

// Base returns the background child.
func (s *StackedPane) Base() core.Widget { return s.base }

// Overlay returns the foreground child.
func (s *StackedPane) Overlay() core.Widget { return s.overlay }

// Margin returns the configured inset.
func (s *StackedPane) Margin() int { return s.margin }

// Alignment returns the configured overlay placement.
func (s *StackedPane) Alignment() core.Alignment { return s.align }

func (s *StackedPane) SetPosition(x, y int) {
	s.BaseWidget.SetPosition(x, y)
	s.layout()
}

// Resize re-applies the stacking layout: base fills the pane, overlay is
// re-geometried from its size hint. Calling it twice with the same size
// yields identical child geometry.
func (s *StackedPane) Resize(w, h int) {
	s.BaseWidget.Resize(w, h)
	s.layout()
}

func (s *StackedPane) layout() {
	r := s.Rect
	s.base.SetPosition(r.X, r.Y)
	s.base.Resize(r.W, r.H)

	hw, hh := s.overlay.SizeHint()
	or := core.OverlayRect(r, hw, hh, s.margin, s.align)
	s.overlay.SetPosition(or.X, or.Y)
	s.overlay.Resize(or.W, or.H)
}

// SizeHint grows the base hint so the overlay plus margin always has room at
// the configured edge.
func (s *StackedPane) SizeHint() (int, int) {
	bw, bh := s.base.SizeHint()
	ow, oh := s.overlay.SizeHint()

	w := bw
	switch s.align.H {
	case core.HLeft, core.HRight:
		w = bw + 2*(ow+s.margin)
	case core.HCenter:
		w = max(bw, ow+2*s.margin)
	case core.HStretch:
		w = max(bw, ow+s.margin)
	}

	h := bh
	switch s.align.V {
	case core.VTop, core.VBottom:
		h = bh + 2*(oh+s.margin)
	case core.VCenter:
		h = max(bh, oh+2*s.margin)
	case core.VStretch:
		h = max(bh, oh+s.margin)
	}
	return w, h
}

// Draw paints the base first, then the overlay on top.
func (s *StackedPane) Draw(p *core.Painter) {
	s.base.Draw(p)
	s.overlay.Draw(p)
}

// VisitChildren reports both children, base first.
func (s *StackedPane) VisitChildren(visit func(core.Widget)) {
	visit(s.base)
	visit(s.overlay)
}

// WidgetAt hit-tests the overlay before the base, mirroring draw order.
func (s *StackedPane) WidgetAt(x, y int) core.Widget {
	for _, w := range []core.Widget{s.overlay, s.base} {
		if ht, ok := w.(core.HitTester); ok {
			if dw := ht.WidgetAt(x, y); dw != nil {
				return dw
			}
		}
		if w.HitTest(x, y) {
			return w
		}
	}
	return nil
}

// HandleKey forwards to the overlay, then the base.
func (s *StackedPane) HandleKey(ev *tcell.EventKey) bool {
	if s.overlay.HandleKey(ev) {
		return true
	}
	return s.base.HandleKey(ev)
}
