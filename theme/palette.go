// Copyright © 2025 StackedUI contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/palette.go
// Summary: Built-in palettes and per-theme default color assignments.

package theme

import "github.com/gdamore/tcell/v2"

func paletteFor(name string) map[string]tcell.Color {
	switch name {
	case "mocha":
		return mochaPalette()
	default:
		return mochaPalette()
	}
}

// Catppuccin Mocha, the subset the widgets reference.
func mochaPalette() map[string]tcell.Color {
	return map[string]tcell.Color{
		"base":     tcell.NewRGBColor(0x1e, 0x1e, 0x2e),
		"crust":    tcell.NewRGBColor(0x11, 0x11, 0x1b),
		"surface0": tcell.NewRGBColor(0x31, 0x32, 0x44),
		"surface1": tcell.NewRGBColor(0x45, 0x47, 0x5a),
		"overlay0": tcell.NewRGBColor(0x6c, 0x70, 0x86),
		"text":     tcell.NewRGBColor(0xcd, 0xd6, 0xf4),
		"subtext0": tcell.NewRGBColor(0xa6, 0xad, 0xc8),
		"lavender": tcell.NewRGBColor(0xb4, 0xbe, 0xfe),
		"mauve":    tcell.NewRGBColor(0xcb, 0xa6, 0xf7),
		"green":    tcell.NewRGBColor(0xa6, 0xe3, 0xa1),
		"red":      tcell.NewRGBColor(0xf3, 0x8b, 0xa8),
		"yellow":   tcell.NewRGBColor(0xf9, 0xe2, 0xaf),
		"peach":    tcell.NewRGBColor(0xfa, 0xb3, 0x87),
		"blue":     tcell.NewRGBColor(0x89, 0xb4, 0xfa),
		"teal":     tcell.NewRGBColor(0x94, 0xe2, 0xd5),
	}
}

// builtinColors maps "section.key" to a palette reference per theme, so the
// widgets look coherent without any config file present.
var builtinColors = map[string]map[string]string{
	"mocha": {
		"ui.surface_bg":       "@base",
		"ui.surface_fg":       "@text",
		"ui.text_fg":          "@text",
		"ui.focus_text_fg":    "@lavender",
		"ui.focus_surface_bg": "@surface0",
		"ui.disabled_fg":      "@overlay0",
		"ui.accent_fg":        "@mauve",
		"ui.badge_fg":         "@crust",
		"ui.badge_bg":         "@peach",
		"code.text_fg":        "@text",
		"code.surface_bg":     "@crust",
	},
}
