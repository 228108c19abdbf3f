package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/stackedui/core"
	"github.com/framegrace/stackedui/theme"
)

// Button is a focusable widget activated with Enter, Space or a click.
// A disabled button ignores activation and renders dimmed.
type Button struct {
	core.BaseWidget
	Label   string
	Enabled bool
	Style   tcell.Style

	disabledStyle tcell.Style
	OnPress       func()
}

func NewButton(x, y int, label string) *Button {
	b := &Button{
		Label:   label,
		Enabled: true,
	}

	tm := theme.Get()
	fg := tm.GetColor("ui", "text_fg", tcell.ColorWhite)
	bg := tm.GetColor("ui", "surface_bg", tcell.ColorBlack)
	b.Style = tcell.StyleDefault.Foreground(fg).Background(bg).Bold(true)

	dimFg := tm.GetColor("ui", "disabled_fg", tcell.ColorGray)
	b.disabledStyle = tcell.StyleDefault.Foreground(dimFg).Background(bg)

	focusFg := tm.GetColor("ui", "focus_text_fg", tcell.ColorSilver)
	focusBg := tm.GetColor("ui", "focus_surface_bg", bg)
	b.SetFocusedStyle(tcell.StyleDefault.Foreground(focusFg).Background(focusBg).Bold(true), true)

	b.SetPosition(x, y)
	w, h := b.SizeHint()
	b.Resize(w, h)
	b.SetFocusable(true)

	return b
}

func (b *Button) SizeHint() (int, int) {
	// "[ " + label + " ]"
	return 4 + runewidth.StringWidth(b.Label), 1
}

func (b *Button) Draw(p *core.Painter) {
	style := b.Style
	if !b.Enabled {
		style = b.disabledStyle
	}
	style = b.EffectiveStyle(style)

	p.Fill(b.Rect, ' ', style)

	text := "[ " + b.Label + " ]"
	// Center the caption inside wider rects.
	x := b.Rect.X + max((b.Rect.W-runewidth.StringWidth(text))/2, 0)
	y := b.Rect.Y + b.Rect.H/2
	p.DrawText(x, y, text, style)
}

func (b *Button) HandleKey(ev *tcell.EventKey) bool {
	if ev.Rune() == ' ' || ev.Key() == tcell.KeyEnter {
		return b.press()
	}
	return false
}

func (b *Button) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !b.HitTest(x, y) {
		return false
	}
	if ev.Buttons() == tcell.Button1 {
		return b.press()
	}
	return false
}

func (b *Button) press() bool {
	if !b.Enabled {
		return false
	}
	if b.OnPress != nil {
		b.OnPress()
	}
	return true
}
