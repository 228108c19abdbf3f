package adapter

import (
	"testing"

	"github.com/framegrace/stackedui/core"
)

func TestUIAppResizeHook(t *testing.T) {
	ui := core.NewUIManager()
	app := NewUIApp("t", ui)

	var gotW, gotH int
	app.OnResize(func(w, h int) { gotW, gotH = w, h })

	app.Resize(17, 5)
	if gotW != 17 || gotH != 5 {
		t.Fatalf("hook saw %dx%d", gotW, gotH)
	}

	buf := app.Render()
	if len(buf) != 5 || len(buf[0]) != 17 {
		t.Fatalf("render surface %dx%d", len(buf[0]), len(buf))
	}
}

func TestUIAppRunBlocksUntilStop(t *testing.T) {
	app := NewUIApp("", nil)

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	app.Stop()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Stop is idempotent.
	app.Stop()

	if app.GetTitle() != "StackedUI" {
		t.Errorf("empty title must fall back, got %q", app.GetTitle())
	}
}
