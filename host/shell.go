// Copyright © 2025 StackedUI contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/shell.go
// Summary: Full-screen shell hosting a single app over a screen driver.
// Usage: Commands build a widget tree, wrap it in an app and hand it to the shell.

package host

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/stackedui/core"
)

const keyQuit = tcell.KeyCtrlQ

// Shell hosts exactly one app full-screen. It owns the event loop: resize
// events are forwarded to the app (which re-lays out its widgets), key and
// mouse events are delegated, and refresh requests trigger a redraw. All
// widget mutation happens on the loop goroutine.
type Shell struct {
	driver      ScreenDriver
	app         core.App
	lifecycle   AppLifecycleManager
	quit        chan struct{}
	refreshChan chan bool
	closeOnce   sync.Once
}

// NewShell initializes the driver and wraps it in a shell.
func NewShell(driver ScreenDriver) (*Shell, error) {
	if driver == nil {
		return nil, fmt.Errorf("screen driver is required")
	}
	if err := driver.Init(); err != nil {
		return nil, fmt.Errorf("init screen driver: %w", err)
	}

	defStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	driver.SetStyle(defStyle)
	driver.HideCursor()

	return &Shell{
		driver:      driver,
		lifecycle:   &LocalAppLifecycle{},
		quit:        make(chan struct{}),
		refreshChan: make(chan bool, 1),
	}, nil
}

// NewTcellShell builds a shell over the real terminal.
func NewTcellShell() (*Shell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewShell(NewTcellScreenDriver(screen))
}

// SetApp installs the hosted app and applies the current screen size, which
// is the app's initial layout pass.
func (s *Shell) SetApp(app core.App) {
	s.app = app
	app.SetRefreshNotifier(s.refreshChan)
	w, h := s.driver.Size()
	app.Resize(w, h)
}

// Run starts the app and blocks running the event loop until Stop is called
// or the quit key (Ctrl-Q) is pressed. The driver is finalized on exit.
func (s *Shell) Run() error {
	if s.app == nil {
		return fmt.Errorf("no app set")
	}

	s.lifecycle.StartApp(s.app)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.driver.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-s.quit:
				return
			}
		}
	}()

	s.draw()

	for {
		select {
		case <-s.quit:
			s.lifecycle.StopApp(s.app)
			s.driver.Fini()
			return nil

		case <-s.refreshChan:
			s.draw()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				s.app.Resize(w, h)
				s.draw()

			case *tcell.EventKey:
				if ev.Key() == keyQuit {
					s.Stop()
					continue
				}
				s.app.HandleKey(ev)

			case *tcell.EventMouse:
				if mh, ok := s.app.(core.MouseHandler); ok {
					mh.HandleMouse(ev)
				}
			}
		}
	}
}

// Stop requests the event loop to terminate. Safe to call more than once and
// from any goroutine.
func (s *Shell) Stop() {
	s.closeOnce.Do(func() { close(s.quit) })
}

func (s *Shell) draw() {
	buf := s.app.Render()
	for y, row := range buf {
		for x, cell := range row {
			if cell.Ch == rune(0) {
				// Transparent filler: also covers the shadow column of a
				// wide rune, which must not be overwritten.
				continue
			}
			s.driver.SetContent(x, y, cell.Ch, nil, cell.Style)
		}
	}
	s.driver.Show()
}
