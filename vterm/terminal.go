// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vterm/terminal.go
// Summary: Terminal ties the grid, cursor, and parser state together and
// exposes the public entry points described in §6: Ingest, Resize,
// TakeDirty, ReadRow, ReadCursor.

package vterm

// Terminal is the core byte-stream interpreter and character grid model.
// It owns no threads and performs no I/O; every entry point runs to
// completion synchronously (§5).
type Terminal struct {
	grid   *Grid
	cursor Cursor

	state  parserState
	csiBuf []byte

	stringEscapePending bool

	kbOutput KeyboardOutput
	resizer  ResizeNotifier
	logger   Logger
}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithKeyboardOutput wires the collaborator that receives DA/DSR replies.
func WithKeyboardOutput(out KeyboardOutput) Option {
	return func(t *Terminal) { t.kbOutput = out }
}

// WithResizeNotifier wires the collaborator notified after a Resize.
func WithResizeNotifier(n ResizeNotifier) Option {
	return func(t *Terminal) { t.resizer = n }
}

// WithLogger wires the collaborator that receives advisory diagnostics.
func WithLogger(l Logger) Option {
	return func(t *Terminal) { t.logger = l }
}

// New creates a Terminal of the given dimensions, clamped to the minimums
// in §3 (rows≥10, cols≥20).
func New(rows, cols int, opts ...Option) *Terminal {
	t := &Terminal{
		grid:     NewGrid(rows, cols),
		cursor:   newCursor(),
		state:    stateDefault,
		kbOutput: nopKeyboardOutput{},
		resizer:  nopResizeNotifier{},
		logger:   nopLogger{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Ingest decodes bytes from the upstream PTY stream, driving the state
// machine one byte at a time. The effect of byte i is fully applied before
// byte i+1 is consumed (§5).
func (t *Terminal) Ingest(data []byte) {
	for _, b := range data {
		t.step(b)
	}
}

// Resize reallocates the grid to the new dimensions and notifies the
// resize collaborator. Any partially accumulated escape sequence survives
// the resize unchanged; it completes against the new dimensions. pixHints
// is accepted for interface parity with hosts that track pixel geometry
// alongside cell geometry but is not interpreted by the core.
func (t *Terminal) Resize(rows, cols int, pixHints ...int) {
	t.grid.Resize(rows, cols)
	if t.cursor.X > t.grid.width {
		t.cursor.X = t.grid.width
	}
	if t.cursor.Y >= t.grid.height {
		t.cursor.Y = t.grid.height - 1
	}
	h, w := t.grid.Dimensions()
	t.resizer.Notify(h, w)
}

// TakeDirty returns the set of dirty row indices and clears them.
func (t *Terminal) TakeDirty() []int {
	return t.grid.TakeDirty()
}

// ReadRow returns a snapshot of row y's cells.
func (t *Terminal) ReadRow(y int) []Cell {
	return t.grid.ReadRow(y)
}

// ReadCursor returns the cursor's current (x, y).
func (t *Terminal) ReadCursor() (int, int) {
	return t.cursor.X, t.cursor.Y
}

// Dimensions returns the terminal's current (rows, cols).
func (t *Terminal) Dimensions() (int, int) {
	return t.grid.Dimensions()
}

// ScrollRegion returns the active (top, bottom) scroll bounds.
func (t *Terminal) ScrollRegion() (int, int) {
	return t.grid.ScrollRegion()
}
