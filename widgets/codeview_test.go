package widgets

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/stackedui/core"
)

const goSnippet = `package main

import "fmt"

func main() {
	fmt.Println("hello")
}
`

func TestCodeViewDetectsLanguage(t *testing.T) {
	v := NewCodeView(0, 0, 40, 10)
	v.SetSource("main.go", []byte(goSnippet))

	if v.Language() != "Go" {
		t.Errorf("expected Go, got %q", v.Language())
	}
	if v.LineCount() < 6 {
		t.Errorf("expected at least 6 lines, got %d", v.LineCount())
	}
	w, h := v.SizeHint()
	if w <= 0 || h != v.LineCount() {
		t.Errorf("unexpected hint %dx%d", w, h)
	}
}

func TestCodeViewScrollClamping(t *testing.T) {
	v := NewCodeView(0, 0, 40, 3)
	v.SetSource("main.go", []byte(goSnippet))

	v.ScrollTo(-5)
	if v.Offset() != 0 {
		t.Errorf("offset must clamp at 0, got %d", v.Offset())
	}
	v.ScrollTo(1000)
	want := v.LineCount() - 3
	if v.Offset() != want {
		t.Errorf("offset must clamp at %d, got %d", want, v.Offset())
	}

	// Growing the viewport pulls the offset back in range.
	v.Resize(40, v.LineCount())
	if v.Offset() != 0 {
		t.Errorf("resize did not re-clamp, offset %d", v.Offset())
	}
}

func TestCodeViewKeys(t *testing.T) {
	v := NewCodeView(0, 0, 40, 2)
	v.SetSource("main.go", []byte(goSnippet))

	if !v.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)) {
		t.Fatal("down must be consumed")
	}
	if v.Offset() != 1 {
		t.Fatalf("down did not scroll, offset %d", v.Offset())
	}
	v.HandleKey(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	if v.Offset() != 0 {
		t.Fatal("home did not rewind")
	}
	v.HandleKey(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	if v.Offset() != v.LineCount()-2 {
		t.Fatalf("end did not reach the bottom, offset %d", v.Offset())
	}
	if v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("unrelated keys must pass through")
	}
}

func TestCodeViewDraw(t *testing.T) {
	v := NewCodeView(0, 0, 30, 1)
	v.SetSource("main.go", []byte(goSnippet))

	buf := core.NewBuffer(30, 1, ' ', tcell.StyleDefault)
	p := core.NewPainter(buf, core.Rect{W: 30, H: 1})
	v.Draw(p)

	line := strings.ReplaceAll(bufLine(buf, 0, 14), string(rune(0)), "")
	if !strings.HasPrefix(line, "package main") {
		t.Errorf("unexpected first line %q", line)
	}
}
