package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/stackedui/core"
	"github.com/framegrace/stackedui/theme"
)

// Checkbox is a toggleable widget that displays a checked or unchecked state.
// Format: [X] Label or [ ] Label
// When focused, shows a cursor: > [X] Label
type Checkbox struct {
	core.BaseWidget
	Label    string
	Checked  bool
	Style    tcell.Style
	OnChange func(checked bool)
}

// NewCheckbox creates a checkbox at the specified position.
// Width is calculated automatically based on label length.
func NewCheckbox(x, y int, label string) *Checkbox {
	c := &Checkbox{
		Label:   label,
		Checked: false,
	}

	tm := theme.Get()
	fg := tm.GetColor("ui", "text_fg", tcell.ColorWhite)
	bg := tm.GetColor("ui", "surface_bg", tcell.ColorBlack)
	c.Style = tcell.StyleDefault.Foreground(fg).Background(bg)

	focusFg := tm.GetColor("ui", "focus_text_fg", tcell.ColorSilver)
	focusBg := tm.GetColor("ui", "focus_surface_bg", bg)
	c.SetFocusedStyle(tcell.StyleDefault.Foreground(focusFg).Background(focusBg), true)

	c.SetPosition(x, y)

	// Width: "> [X] " + label (includes cursor when focused)
	w, h := c.SizeHint()
	c.Resize(w, h)

	c.SetFocusable(true)

	return c
}

func (c *Checkbox) SizeHint() (int, int) {
	return 6 + runewidth.StringWidth(c.Label), 1
}

// Draw renders the checkbox with its current state.
func (c *Checkbox) Draw(painter *core.Painter) {
	style := c.EffectiveStyle(c.Style)

	painter.Fill(core.Rect{X: c.Rect.X, Y: c.Rect.Y, W: c.Rect.W, H: 1}, ' ', style)

	var cursor string
	if c.IsFocused() {
		cursor = "> "
	} else {
		cursor = "  "
	}

	var checkChar string
	if c.Checked {
		checkChar = "[X] "
	} else {
		checkChar = "[ ] "
	}

	painter.DrawText(c.Rect.X, c.Rect.Y, cursor+checkChar+c.Label, style)
}

// HandleKey processes keyboard input. Space or Enter toggles the checkbox.
func (c *Checkbox) HandleKey(ev *tcell.EventKey) bool {
	if ev.Rune() == ' ' || ev.Key() == tcell.KeyEnter {
		c.toggle()
		return true
	}
	return false
}

// HandleMouse processes mouse input. Click toggles the checkbox.
func (c *Checkbox) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !c.HitTest(x, y) {
		return false
	}

	switch ev.Buttons() {
	case tcell.Button1:
		c.toggle()
		return true
	}

	return false
}

func (c *Checkbox) toggle() {
	c.Checked = !c.Checked
	if c.OnChange != nil {
		c.OnChange(c.Checked)
	}
}
