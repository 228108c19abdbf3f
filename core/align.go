package core

import (
	"fmt"
	"strings"
)

// HAlign places a child on the horizontal axis of a container.
type HAlign int

const (
	HLeft HAlign = iota
	HCenter
	HRight
	// HStretch spans the full width minus the margin, split evenly
	// between both sides.
	HStretch
)

// VAlign places a child on the vertical axis of a container.
type VAlign int

const (
	VTop VAlign = iota
	VCenter
	VBottom
	VStretch
)

func (h HAlign) String() string {
	switch h {
	case HLeft:
		return "left"
	case HCenter:
		return "center"
	case HRight:
		return "right"
	case HStretch:
		return "stretch"
	}
	return "invalid"
}

func (v VAlign) String() string {
	switch v {
	case VTop:
		return "top"
	case VCenter:
		return "center"
	case VBottom:
		return "bottom"
	case VStretch:
		return "stretch"
	}
	return "invalid"
}

// Alignment is a closed combination of a vertical and a horizontal placement
// rule. The zero value is top-left.
type Alignment struct {
	H HAlign
	V VAlign
}

var (
	AlignTopLeft      = Alignment{HLeft, VTop}
	AlignTop          = Alignment{HCenter, VTop}
	AlignTopRight     = Alignment{HRight, VTop}
	AlignLeft         = Alignment{HLeft, VCenter}
	AlignCenter       = Alignment{HCenter, VCenter}
	AlignRight        = Alignment{HRight, VCenter}
	AlignBottomLeft   = Alignment{HLeft, VBottom}
	AlignBottom       = Alignment{HCenter, VBottom}
	AlignBottomRight  = Alignment{HRight, VBottom}
	AlignFill         = Alignment{HStretch, VStretch}
	AlignFillTop      = Alignment{HStretch, VTop}
	AlignFillCenter   = Alignment{HStretch, VCenter}
	AlignLeftStretch  = Alignment{HLeft, VStretch}
	AlignRightStretch = Alignment{HRight, VStretch}
)

// DefaultAlignment is used when a container is built without an explicit one.
var DefaultAlignment = AlignTopRight

// Valid reports whether both axes hold recognized values.
func (a Alignment) Valid() bool {
	return a.H >= HLeft && a.H <= HStretch && a.V >= VTop && a.V <= VStretch
}

// String renders the canonical "vertical-horizontal" form, with the usual
// shorthands for centered and stretched combinations.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignFill:
		return "fill"
	}
	if a.V == VCenter {
		return a.H.String()
	}
	if a.H == HCenter {
		return a.V.String()
	}
	return a.V.String() + "-" + a.H.String()
}

// ParseAlignment reads an alignment spelled like String produces:
// "top-right", "bottom-left", "center", "fill", or single-axis shorthands
// such as "top" or "right".
func ParseAlignment(s string) (Alignment, error) {
	a := AlignCenter
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "-")
	if len(parts) == 0 || len(parts) > 2 || parts[0] == "" {
		return Alignment{}, fmt.Errorf("unrecognized alignment %q", s)
	}

	if len(parts) == 1 {
		switch parts[0] {
		case "center":
			return AlignCenter, nil
		case "fill":
			return AlignFill, nil
		case "top", "bottom":
			v, _ := parseVAlign(parts[0])
			a.V = v
			return a, nil
		case "left", "right", "stretch":
			h, _ := parseHAlign(parts[0])
			a.H = h
			return a, nil
		}
		return Alignment{}, fmt.Errorf("unrecognized alignment %q", s)
	}

	v, ok := parseVAlign(parts[0])
	if !ok {
		return Alignment{}, fmt.Errorf("unrecognized alignment %q", s)
	}
	h, ok := parseHAlign(parts[1])
	if !ok {
		return Alignment{}, fmt.Errorf("unrecognized alignment %q", s)
	}
	return Alignment{H: h, V: v}, nil
}

func parseHAlign(s string) (HAlign, bool) {
	switch s {
	case "left":
		return HLeft, true
	case "center":
		return HCenter, true
	case "right":
		return HRight, true
	case "stretch":
		return HStretch, true
	}
	return 0, false
}

func parseVAlign(s string) (VAlign, bool) {
	switch s {
	case "top":
		return VTop, true
	case "center":
		return VCenter, true
	case "bottom":
		return VBottom, true
	case "stretch":
		return VStretch, true
	}
	return 0, false
}

// OverlayRect computes the rectangle for an overlay of natural size
// (hintW, hintH) placed inside bounds with the given margin and alignment.
// Offsets are clamped to the bounds origin so degenerate container sizes
// never push a child to negative coordinates.
func OverlayRect(bounds Rect, hintW, hintH, margin int, align Alignment) Rect {
	w := max(hintW, 0)
	h := max(hintH, 0)

	var x int
	switch align.H {
	case HLeft:
		x = margin
	case HCenter:
		x = (bounds.W - w) / 2
	case HRight:
		x = bounds.W - w - margin
	case HStretch:
		x = margin / 2
		w = max(bounds.W-margin, 0)
	}

	var y int
	switch align.V {
	case VTop:
		y = margin
	case VCenter:
		y = (bounds.H - h) / 2
	case VBottom:
		y = bounds.H - h - margin
	case VStretch:
		y = margin / 2
		h = max(bounds.H-margin, 0)
	}

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Rect{X: bounds.X + x, Y: bounds.Y + y, W: w, H: h}
}
