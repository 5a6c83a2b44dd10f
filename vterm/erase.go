// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vterm/erase.go
// Summary: Erase in Display (ED) and Erase in Line (EL), CSI J and K.

package vterm

// eraseInDisplay implements CSI J. Mode 1 ("erase from start through
// cursor, inclusive") clears every row above the cursor in full and the
// cursor's own row only up to and including the cursor column, mirroring
// mode 0's symmetry and eraseInLine's mode 1.
func (t *Terminal) eraseInDisplay(mode int) {
	rows, cols := t.grid.height, t.grid.width
	switch mode {
	case 0:
		t.grid.ClearRange(t.cursor.Y, t.cursor.X, cols-1)
		for y := t.cursor.Y + 1; y < rows; y++ {
			t.grid.ClearRange(y, 0, cols-1)
		}
	case 1:
		for y := 0; y < t.cursor.Y; y++ {
			t.grid.ClearRange(y, 0, cols-1)
		}
		t.grid.ClearRange(t.cursor.Y, 0, t.cursor.X)
	case 2:
		for y := 0; y < rows; y++ {
			t.grid.ClearRange(y, 0, cols-1)
		}
	case 3:
		// Scrollback reserved; no scrollback in this core, so no-op.
	}
}

// eraseInLine implements CSI K.
func (t *Terminal) eraseInLine(mode int) {
	cols := t.grid.width
	switch mode {
	case 0:
		t.grid.ClearRange(t.cursor.Y, t.cursor.X, cols-1)
	case 1:
		t.grid.ClearRange(t.cursor.Y, 0, t.cursor.X)
	case 2:
		t.grid.ClearRange(t.cursor.Y, 0, cols-1)
	}
}
