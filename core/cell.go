// Copyright © 2025 StackedUI contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/cell.go
// Summary: Cell buffers and compositing helpers shared by widgets and hosts.

package core

import "github.com/gdamore/tcell/v2"

// Cell is a single character cell with its display style.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// NewBuffer allocates a w×h cell buffer filled with the given rune and style.
func NewBuffer(w, h int, ch rune, style tcell.Style) [][]Cell {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	buf := make([][]Cell, h)
	for y := 0; y < h; y++ {
		row := make([]Cell, w)
		for x := 0; x < w; x++ {
			row[x] = Cell{Ch: ch, Style: style}
		}
		buf[y] = row
	}
	return buf
}

// Composite overlays the top buffer onto the base buffer.
// Cells with rune(0) in the top buffer are treated as transparent.
func Composite(base, overlay [][]Cell) [][]Cell {
	if len(overlay) == 0 || len(overlay[0]) == 0 {
		return base
	}

	height := len(base)
	if height == 0 {
		return base
	}
	width := len(base[0])

	result := make([][]Cell, height)
	for y := 0; y < height; y++ {
		result[y] = make([]Cell, width)
		copy(result[y], base[y])
	}

	overlayHeight := len(overlay)
	for y := 0; y < overlayHeight && y < height; y++ {
		overlayWidth := len(overlay[y])
		for x := 0; x < overlayWidth && x < width; x++ {
			// Skip transparent cells (rune 0 = transparent)
			if overlay[y][x].Ch != rune(0) {
				result[y][x] = overlay[y][x]
			}
		}
	}

	return result
}
