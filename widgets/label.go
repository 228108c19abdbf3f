package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/stackedui/core"
	"github.com/framegrace/stackedui/theme"
)

// Label is a one-line text widget. Its natural width follows the text's
// printable width, so overlay containers can size it without help. When the
// label is resized wider than its text, Align places the text inside the rect.
type Label struct {
	core.BaseWidget
	Text  string
	Style tcell.Style
	Align core.HAlign
}

func NewLabel(x, y int, text string) *Label {
	l := &Label{Text: text}

	tm := theme.Get()
	fg := tm.GetColor("ui", "text_fg", tcell.ColorWhite)
	bg := tm.GetColor("ui", "surface_bg", tcell.ColorBlack)
	l.Style = tcell.StyleDefault.Foreground(fg).Background(bg)

	l.SetPosition(x, y)
	l.Resize(runewidth.StringWidth(text), 1)
	return l
}

// NewBadge is a label styled as a floating tag, the usual overlay content.
func NewBadge(text string) *Label {
	l := NewLabel(0, 0, " "+text+" ")
	tm := theme.Get()
	fg := tm.GetColor("ui", "badge_fg", tcell.ColorBlack)
	bg := tm.GetColor("ui", "badge_bg", tcell.ColorYellow)
	l.Style = tcell.StyleDefault.Foreground(fg).Background(bg).Bold(true)
	return l
}

func (l *Label) SizeHint() (int, int) {
	return runewidth.StringWidth(l.Text), 1
}

func (l *Label) Draw(p *core.Painter) {
	style := l.EffectiveStyle(l.Style)
	p.Fill(core.Rect{X: l.Rect.X, Y: l.Rect.Y, W: l.Rect.W, H: l.Rect.H}, ' ', style)

	x := l.Rect.X
	tw := runewidth.StringWidth(l.Text)
	switch l.Align {
	case core.HCenter:
		x += max((l.Rect.W-tw)/2, 0)
	case core.HRight:
		x += max(l.Rect.W-tw, 0)
	}
	p.DrawText(x, l.Rect.Y, l.Text, style)
}
