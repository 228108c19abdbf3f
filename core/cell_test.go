// Copyright © 2025 StackedUI contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNewBuffer(t *testing.T) {
	buf := NewBuffer(3, 2, '.', tcell.StyleDefault)
	if len(buf) != 2 || len(buf[0]) != 3 {
		t.Fatalf("expected 3x2 buffer, got %dx%d", len(buf[0]), len(buf))
	}
	if buf[1][2].Ch != '.' {
		t.Fatalf("expected fill rune")
	}

	if got := NewBuffer(-1, -1, ' ', tcell.StyleDefault); len(got) != 0 {
		t.Fatalf("expected empty buffer for negative dimensions")
	}
}

func TestCompositeOverlaysOpaqueCells(t *testing.T) {
	base := NewBuffer(3, 2, 'b', tcell.StyleDefault)
	overlay := NewBuffer(2, 1, 'o', tcell.StyleDefault)
	overlay[0][1].Ch = rune(0) // transparent

	out := Composite(base, overlay)
	if out[0][0].Ch != 'o' {
		t.Errorf("expected overlay cell at (0,0), got %q", out[0][0].Ch)
	}
	if out[0][1].Ch != 'b' {
		t.Errorf("expected transparent cell to keep base, got %q", out[0][1].Ch)
	}
	if out[1][0].Ch != 'b' {
		t.Errorf("expected base outside overlay, got %q", out[1][0].Ch)
	}

	// Input buffers are untouched.
	if base[0][0].Ch != 'b' {
		t.Error("expected composite to leave the base buffer alone")
	}
}

func TestCompositeDegenerateInputs(t *testing.T) {
	base := NewBuffer(2, 2, 'b', tcell.StyleDefault)
	if got := Composite(base, nil); len(got) != 2 {
		t.Error("nil overlay must return the base")
	}
	if got := Composite(nil, NewBuffer(1, 1, 'o', tcell.StyleDefault)); got != nil {
		t.Error("empty base must come back unchanged")
	}

	// Overlay larger than base is clipped.
	big := NewBuffer(5, 5, 'o', tcell.StyleDefault)
	out := Composite(base, big)
	if len(out) != 2 || len(out[0]) != 2 {
		t.Fatalf("expected base dimensions, got %dx%d", len(out[0]), len(out))
	}
}
