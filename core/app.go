package core

import "github.com/gdamore/tcell/v2"

// App is the unit hosted by a runtime shell: it owns its content, renders a
// cell buffer on demand and is told about resizes by the host. Run blocks
// until Stop is called.
type App interface {
	Run() error
	Stop()
	Resize(cols, rows int)
	Render() [][]Cell
	GetTitle() string
	HandleKey(ev *tcell.EventKey)
	SetRefreshNotifier(ch chan<- bool)
}

// MouseHandler is implemented by apps that want mouse events.
type MouseHandler interface {
	HandleMouse(ev *tcell.EventMouse)
}
