package widgets

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	enry "github.com/go-enry/go-enry/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/stackedui/core"
	"github.com/framegrace/stackedui/theme"
)

const defaultChromaStyle = "catppuccin-mocha"

// span is a run of text sharing one style within a line.
type span struct {
	text  string
	style tcell.Style
}

// CodeView is a read-only, vertically scrollable source viewer. The language
// is taken from the file name when possible and guessed from the content
// otherwise; tokens are colored through Chroma.
type CodeView struct {
	core.BaseWidget
	baseStyle tcell.Style

	lines    [][]span
	widest   int
	language string
	offset   int

	invalidate func(core.Rect)
}

func NewCodeView(x, y, w, h int) *CodeView {
	v := &CodeView{}

	tm := theme.Get()
	fg := tm.GetColor("code", "text_fg", tcell.ColorWhite)
	bg := tm.GetColor("code", "surface_bg", tcell.ColorBlack)
	v.baseStyle = tcell.StyleDefault.Foreground(fg).Background(bg)

	v.SetPosition(x, y)
	v.Resize(w, h)
	v.SetFocusable(true)
	return v
}

func (v *CodeView) SetInvalidator(fn func(core.Rect)) { v.invalidate = fn }

// Language returns the detected language name, empty before SetSource.
func (v *CodeView) Language() string { return v.language }

// LineCount returns the number of source lines held.
func (v *CodeView) LineCount() int { return len(v.lines) }

// Offset returns the index of the first visible line.
func (v *CodeView) Offset() int { return v.offset }

// SetSource replaces the viewer content. The language is resolved from the
// file name first, then from the content classifier.
func (v *CodeView) SetSource(filename string, content []byte) {
	v.language = enry.GetLanguage(filename, content)
	v.lines, v.widest = tokenizeSource(v.language, string(content), v.baseStyle)
	v.offset = 0
	v.markDirty()
}

func tokenizeSource(language, text string, base tcell.Style) ([][]span, int) {
	lexer := getLexer(language, text)
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(defaultChromaStyle)
	baseColour := style.Get(chroma.Text).Colour

	var lines [][]span
	current := []span{}
	flush := func() {
		lines = append(lines, current)
		current = []span{}
	}

	tokens, err := chroma.Tokenise(lexer, nil, text)
	if err != nil {
		// Uncolored fallback: plain lines in the base style.
		for _, l := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
			lines = append(lines, []span{{text: l, style: base}})
		}
	} else {
		for _, tok := range tokens {
			if tok.Type == chroma.EOFType {
				break
			}
			st := tokenStyle(style.Get(tok.Type), baseColour, base)
			parts := strings.Split(tok.Value, "\n")
			for i, part := range parts {
				if i > 0 {
					flush()
				}
				if part != "" {
					current = append(current, span{text: part, style: st})
				}
			}
		}
		if len(current) > 0 {
			flush()
		}
	}

	widest := 0
	for _, line := range lines {
		w := 0
		for _, sp := range line {
			w += runewidth.StringWidth(sp.text)
		}
		if w > widest {
			widest = w
		}
	}
	return lines, widest
}

// tokenStyle layers a Chroma style entry over the base style. Tokens whose
// color matches the style's base text color keep the themed foreground.
func tokenStyle(entry chroma.StyleEntry, baseColour chroma.Colour, base tcell.Style) tcell.Style {
	st := base
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		st = st.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

// getLexer returns a Chroma lexer by name, or auto-detects from content.
func getLexer(name, text string) chroma.Lexer {
	if name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

// SizeHint is the widest line by the full line count, so an unconstrained
// host shows the whole file.
func (v *CodeView) SizeHint() (int, int) {
	return v.widest, len(v.lines)
}

func (v *CodeView) Resize(w, h int) {
	v.BaseWidget.Resize(w, h)
	v.clampOffset()
}

// ScrollTo moves the first visible line, clamped to the content.
func (v *CodeView) ScrollTo(line int) {
	v.offset = line
	v.clampOffset()
	v.markDirty()
}

func (v *CodeView) scrollBy(delta int) {
	v.ScrollTo(v.offset + delta)
}

func (v *CodeView) clampOffset() {
	maxOffset := max(len(v.lines)-v.Rect.H, 0)
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func (v *CodeView) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		v.scrollBy(-1)
	case tcell.KeyDown:
		v.scrollBy(1)
	case tcell.KeyPgUp:
		v.scrollBy(-max(v.Rect.H-1, 1))
	case tcell.KeyPgDn:
		v.scrollBy(max(v.Rect.H-1, 1))
	case tcell.KeyHome:
		v.ScrollTo(0)
	case tcell.KeyEnd:
		v.ScrollTo(len(v.lines))
	default:
		return false
	}
	return true
}

func (v *CodeView) HandleMouse(ev *tcell.EventMouse) bool {
	if !v.HitTest(ev.Position()) {
		return false
	}
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		v.scrollBy(-3)
	case ev.Buttons()&tcell.WheelDown != 0:
		v.scrollBy(3)
	default:
		return false
	}
	return true
}

func (v *CodeView) Draw(p *core.Painter) {
	p.Fill(v.Rect, ' ', v.baseStyle)
	for row := 0; row < v.Rect.H; row++ {
		idx := v.offset + row
		if idx >= len(v.lines) {
			break
		}
		x := v.Rect.X
		y := v.Rect.Y + row
		for _, sp := range v.lines[idx] {
			x = p.DrawText(x, y, sp.text, sp.style)
			if x >= v.Rect.X+v.Rect.W {
				break
			}
		}
	}
}

func (v *CodeView) markDirty() {
	if v.invalidate != nil {
		v.invalidate(v.Rect)
	}
}
