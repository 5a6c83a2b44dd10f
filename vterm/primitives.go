// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vterm/primitives.go
// Summary: The output primitives (§4.3) — the low-level grid mutations the
// state machine and CSI dispatch build on.

package vterm

// advanceLine moves the cursor down one row, scrolling the active region
// up by one if that exits it through the bottom, or clamping to the last
// row if it exits the grid entirely. Shared by LineFeed and the pre-write
// wrap in WriteGlyph, which both advance the cursor the same way.
func (t *Terminal) advanceLine() {
	t.cursor.Y++
	if t.cursor.Y == t.grid.scrollBottom+1 {
		t.grid.ScrollRegionUp(1)
		t.cursor.Y = t.grid.scrollBottom
	} else if t.cursor.Y >= t.grid.height {
		t.cursor.Y = t.grid.height - 1
	}
}

// WriteGlyph stamps c at the cursor under the current pen, performing a
// pre-write wrap first if the cursor has reached the pending-wrap column.
func (t *Terminal) WriteGlyph(c rune) {
	if t.cursor.X >= t.grid.width {
		t.cursor.X = 0
		t.advanceLine()
	}
	t.grid.SetCell(t.cursor.Y, t.cursor.X, stampedCell(c, t.cursor.Pen))
	t.cursor.X++
}

// WriteTab advances the cursor to the next multiple-of-8 column, wrapping
// to column 0 of the next line if that would overflow the grid.
func (t *Terminal) WriteTab() {
	next := (t.cursor.X + 8) &^ 7
	if next > t.grid.width {
		t.cursor.X = 0
		t.LineFeed()
		return
	}
	t.cursor.X = next
}

// LineFeed moves the cursor down one row, scrolling the region if needed.
func (t *Terminal) LineFeed() {
	t.advanceLine()
}

// ReverseLineFeed moves the cursor up one row, scrolling the region down
// if that exits it through the top, or clamping to row 0 otherwise.
func (t *Terminal) ReverseLineFeed() {
	t.cursor.Y--
	if t.cursor.Y == t.grid.scrollTop-1 {
		t.grid.ScrollRegionDown(1)
		t.cursor.Y = t.grid.scrollTop
	} else if t.cursor.Y < 0 {
		t.cursor.Y = 0
	}
}

// CarriageReturn returns the cursor to column 0.
func (t *Terminal) CarriageReturn() {
	t.cursor.X = 0
}

// Backspace moves the cursor back one column, wrapping to the end of the
// previous row if already at column 0.
func (t *Terminal) Backspace() {
	if t.cursor.X > 0 {
		t.cursor.X--
	} else if t.cursor.Y > 0 {
		t.cursor.Y--
		t.cursor.X = t.grid.width - 1
	}
}

// ScrollRegionUp scrolls the active region up by n lines.
func (t *Terminal) ScrollRegionUp(n int) {
	t.grid.ScrollRegionUp(n)
}

// ScrollRegionDown scrolls the active region down by n lines.
func (t *Terminal) ScrollRegionDown(n int) {
	t.grid.ScrollRegionDown(n)
}
