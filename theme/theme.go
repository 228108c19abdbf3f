// Copyright © 2025 StackedUI contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Palette and themed value lookup backed by the config store.

package theme

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/stackedui/config"
)

// Theme resolves themed values. Lookups check the config section named after
// the caller's component first, then fall back to the provided default.
// Color values may be "#rrggbb" hex, an "@name" palette reference, or a bare
// palette name.
type Theme struct {
	name    string
	palette map[string]tcell.Color
	cfg     config.Config
}

var (
	once    sync.Once
	current *Theme
)

// Get returns the active theme, loading it on first use.
func Get() *Theme {
	once.Do(func() {
		cfg := config.System()
		name := cfg.String("", "activeTheme", "mocha")
		current = &Theme{
			name:    name,
			palette: paletteFor(name),
			cfg:     cfg,
		}
	})
	return current
}

// Name returns the active theme name.
func (t *Theme) Name() string { return t.name }

// GetColor resolves a themed color, falling back to def.
func (t *Theme) GetColor(section, key string, def tcell.Color) tcell.Color {
	raw := t.cfg.String("theme."+section, key, "")
	if raw == "" {
		raw, _ = builtinColors[t.name][section+"."+key]
	}
	if raw == "" {
		return def
	}
	if c, ok := t.resolveColor(raw); ok {
		return c
	}
	return def
}

// GetInt resolves a themed integer, falling back to def.
func (t *Theme) GetInt(section, key string, def int) int {
	return t.cfg.Int("theme."+section, key, def)
}

// GetFloat resolves a themed float, falling back to def.
func (t *Theme) GetFloat(section, key string, def float64) float64 {
	return t.cfg.Float("theme."+section, key, def)
}

func (t *Theme) resolveColor(raw string) (tcell.Color, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if strings.HasPrefix(raw, "#") {
		return parseHexColor(raw)
	}
	name := strings.TrimPrefix(raw, "@")
	if c, ok := t.palette[name]; ok {
		return c, true
	}
	return 0, false
}

func parseHexColor(s string) (tcell.Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, false
	}
	var rgb [3]int32
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[1+2*i])
		lo, ok2 := hexDigit(s[2+2*i])
		if !ok1 || !ok2 {
			return 0, false
		}
		rgb[i] = hi<<4 | lo
	}
	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), true
}

func hexDigit(b byte) (int32, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int32(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int32(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int32(b-'A') + 10, true
	}
	return 0, false
}
