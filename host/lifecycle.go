// Copyright © 2025 StackedUI contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/lifecycle.go
// Summary: App lifecycle management for the runtime shell.

package host

import (
	"sync"

	"github.com/framegrace/stackedui/core"
)

// AppLifecycleManager governs how app instances are started and stopped.
type AppLifecycleManager interface {
	StartApp(app core.App)
	StopApp(app core.App)
}

// LocalAppLifecycle runs apps in-process. It spawns each app's Run loop in a
// goroutine and delegates Stop calls directly.
type LocalAppLifecycle struct {
	wg sync.WaitGroup
}

// StartApp launches the app's Run method asynchronously.
func (l *LocalAppLifecycle) StartApp(app core.App) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		_ = app.Run()
	}()
}

// StopApp forwards the stop request to the app implementation.
func (l *LocalAppLifecycle) StopApp(app core.App) {
	app.Stop()
}

// Wait blocks until all started apps have exited. Primarily useful for tests.
func (l *LocalAppLifecycle) Wait() {
	l.wg.Wait()
}

// NoopAppLifecycle is a helper used in tests where the app run loop is
// stubbed out and should not be invoked.
type NoopAppLifecycle struct{}

func (NoopAppLifecycle) StartApp(app core.App) {}
func (NoopAppLifecycle) StopApp(app core.App)  {}
