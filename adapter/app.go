package adapter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/stackedui/core"
)

// UIApp adapts a core.UIManager to the core.App interface so a widget tree
// can be hosted by a runtime shell.
type UIApp struct {
	title    string
	ui       *core.UIManager
	stopCh   chan struct{}
	onResize func(w, h int)
}

func NewUIApp(title string, ui *core.UIManager) *UIApp {
	if ui == nil {
		ui = core.NewUIManager()
	}
	return &UIApp{title: title, ui: ui, stopCh: make(chan struct{})}
}

// OnResize registers a hook invoked after the surface resizes, typically to
// re-layout root widgets.
func (a *UIApp) OnResize(fn func(w, h int)) { a.onResize = fn }

func (a *UIApp) Run() error { <-a.stopCh; return nil }

func (a *UIApp) Stop() {
	select {
	case <-a.stopCh:
	default:
		close(a.stopCh)
	}
}

func (a *UIApp) Resize(cols, rows int) {
	a.ui.Resize(cols, rows)
	if a.onResize != nil {
		a.onResize(cols, rows)
	}
}

func (a *UIApp) Render() [][]core.Cell { return a.ui.Render() }

func (a *UIApp) GetTitle() string {
	if a.title == "" {
		return "StackedUI"
	}
	return a.title
}

func (a *UIApp) HandleKey(ev *tcell.EventKey) { a.ui.HandleKey(ev) }

func (a *UIApp) HandleMouse(ev *tcell.EventMouse) { a.ui.HandleMouse(ev) }

func (a *UIApp) SetRefreshNotifier(ch chan<- bool) { a.ui.SetRefreshNotifier(ch) }

// UI exposes the manager for composition.
func (a *UIApp) UI() *core.UIManager { return a.ui }
