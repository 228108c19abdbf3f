// Copyright © 2025 StackedUI contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/stackedui/config"
)

func testTheme(cfg config.Config) *Theme {
	return &Theme{name: "mocha", palette: paletteFor("mocha"), cfg: cfg}
}

func TestParseHexColor(t *testing.T) {
	c, ok := parseHexColor("#1e1e2e")
	if !ok {
		t.Fatal("valid hex rejected")
	}
	if c != tcell.NewRGBColor(0x1e, 0x1e, 0x2e) {
		t.Errorf("wrong color %v", c)
	}

	for _, bad := range []string{"", "#fff", "1e1e2e", "#gggggg", "#12345"} {
		if _, ok := parseHexColor(bad); ok {
			t.Errorf("accepted %q", bad)
		}
	}
}

func TestResolveColorPaletteReference(t *testing.T) {
	tm := testTheme(config.Config{})

	if c, ok := tm.resolveColor("@mauve"); !ok || c != tm.palette["mauve"] {
		t.Error("palette reference with @ failed")
	}
	if c, ok := tm.resolveColor("mauve"); !ok || c != tm.palette["mauve"] {
		t.Error("bare palette name failed")
	}
	if _, ok := tm.resolveColor("@nosuch"); ok {
		t.Error("unknown palette name resolved")
	}
}

func TestGetColorPrecedence(t *testing.T) {
	cfg := config.Config{
		"theme.ui": map[string]interface{}{"text_fg": "#ff0000"},
	}
	tm := testTheme(cfg)

	// Config entry wins over the builtin.
	if got := tm.GetColor("ui", "text_fg", tcell.ColorBlack); got != tcell.NewRGBColor(0xff, 0, 0) {
		t.Errorf("config color not used: %v", got)
	}

	// Builtin covers keys the config does not set.
	if got := tm.GetColor("ui", "surface_bg", tcell.ColorBlack); got == tcell.ColorBlack {
		t.Error("builtin color not resolved")
	}

	// Unknown keys fall back to the caller's default.
	if got := tm.GetColor("ui", "no_such_key", tcell.ColorFuchsia); got != tcell.ColorFuchsia {
		t.Errorf("default not returned: %v", got)
	}
}

func TestBuiltinColorsResolve(t *testing.T) {
	tm := testTheme(config.Config{})
	for key := range builtinColors["mocha"] {
		if _, ok := tm.resolveColor(builtinColors["mocha"][key]); !ok {
			t.Errorf("builtin %q does not resolve", key)
		}
	}
}
