// Copyright © 2025 StackedUI contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/stacked-demo/main.go
// Summary: Overlay container demo: a checkbox stacked over a button.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

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
	alignFlag := flag.String("align", cfg.String("overlay", "alignment", core.DefaultAlignment.String()), "overlay alignment (e.g. top-right, center, bottom-left, fill)")
	marginFlag := flag.Int("margin", cfg.Int("overlay", "margin", 0), "inset in cells at the aligned edges")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stacked-demo must run on a terminal")
		os.Exit(1)
	}

	// Setup logging
	logFile, err := os.OpenFile("stacked-demo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Println("Application starting...")

	align, err := core.ParseAlignment(*alignFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stacked-demo: %v\n", err)
		os.Exit(1)
	}

	button := widgets.NewButton(0, 0, "Click Me!")
	button.Enabled = false
	presses := 0
	button.OnPress = func() {
		presses++
		button.Label = fmt.Sprintf("Clicked %d times", presses)
		log.Printf("button pressed (%d)", presses)
	}

	checkbox := widgets.NewCheckbox(0, 0, "Enable Button")
	checkbox.OnChange = func(checked bool) {
		button.Enabled = checked
	}

	stacked, err := widgets.NewStackedPane(button, checkbox,
		widgets.WithAlignment(align),
		widgets.WithMargin(*marginFlag),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stacked-demo: %v\n", err)
		os.Exit(1)
	}

	ui := core.NewUIManager()
	ui.AddWidget(stacked)
	ui.Focus(checkbox)

	app := adapter.NewUIApp("Stacked Demo", ui)
	app.OnResize(func(w, h int) {
		stacked.SetPosition(0, 0)
		stacked.Resize(w, h)
	})

	shell, err := host.NewTcellShell()
	if err != nil {
		fmt.Fprintf(os.Stderr, "stacked-demo: %v\n", err)
		os.Exit(1)
	}
	shell.SetApp(app)

	if err := shell.Run(); err != nil {
		log.Fatalf("Application exited with error: %v", err)
	}
	log.Println("Application stopped cleanly.")
}
