// Copyright © 2025 StackedUI contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/code-overlay/main.go
// Summary: Shows a source file with a floating language badge stacked on top.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/framegrace/stackedui/adapter"
	"github.com/framegrace/stackedui/config"
	"github.com/framegrace/stackedui/core"
	"github.com/framegrace/stackedui/host"
	"github.com/framegrace/stackedui/widgets"
)

func main() {
	// Flags default to the overlay section of stackedui.json.
	cfg := config.System()
	alignFlag := flag.String("align", cfg.String("overlay", "alignment", "top-right"), "badge alignment (e.g. top-right, bottom-left)")
	marginFlag := flag.Int("margin", cfg.Int("overlay", "margin", 1), "inset in cells at the aligned edges")
	badgeFlag := flag.String("badge", "", "badge text (defaults to the detected language)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: code-overlay [flags] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "code-overlay must run on a terminal")
		os.Exit(1)
	}

	logFile, err := os.OpenFile("code-overlay.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	align, err := core.ParseAlignment(*alignFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "code-overlay: %v\n", err)
		os.Exit(1)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "code-overlay: %v\n", err)
		os.Exit(1)
	}

	view := widgets.NewCodeView(0, 0, 0, 0)
	view.SetSource(filepath.Base(path), content)
	log.Printf("loaded %s: %d lines, language %q", path, view.LineCount(), view.Language())

	text := *badgeFlag
	if text == "" {
		text = view.Language()
	}
	if text == "" {
		text = "plain"
	}
	badge := widgets.NewBadge(text)

	stacked, err := widgets.NewStackedPane(view, badge,
		widgets.WithAlignment(align),
		widgets.WithMargin(*marginFlag),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "code-overlay: %v\n", err)
		os.Exit(1)
	}

	ui := core.NewUIManager()
	ui.AddWidget(stacked)
	ui.Focus(view)

	app := adapter.NewUIApp("Code Overlay", ui)
	app.OnResize(func(w, h int) {
		stacked.SetPosition(0, 0)
		stacked.Resize(w, h)
	})

	shell, err := host.NewTcellShell()
	if err != nil {
		fmt.Fprintf(os.Stderr, "code-overlay: %v\n", err)
		os.Exit(1)
	}
	shell.SetApp(app)

	if err := shell.Run(); err != nil {
		log.Fatalf("Application exited with error: %v", err)
	}
}
