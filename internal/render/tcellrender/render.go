// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/render/tcellrender/render.go
// Summary: Paints a vterm.Terminal's dirty rows onto a tcell.Screen.

package tcellrender

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vtgrid/webterm/vterm"
)

// ScreenDriver is the subset of tcell.Screen this package depends on,
// narrowed to ease substituting a simulation screen in tests.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	HideCursor()
	ShowCursor(x, y int)
	Show()
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	PollEvent() tcell.Event
}

// Renderer adapts a tcell.Screen into something TakeDirty/ReadRow output can
// be painted onto directly.
type Renderer struct {
	screen ScreenDriver
}

// New wraps the provided screen. The screen must already be initialized by
// the caller (tcell.Screen.Init).
func New(screen ScreenDriver) *Renderer {
	return &Renderer{screen: screen}
}

// Notify implements vterm.ResizeNotifier so a Renderer can be handed
// straight to vterm.WithResizeNotifier; tcell already tracks its own size
// from the PollEvent resize events, so this is a no-op placeholder kept for
// interface symmetry with other collaborators.
func (r *Renderer) Notify(rows, cols int) {}

// Draw repaints every row Terminal reports dirty since the last call, then
// positions the hardware cursor and flushes the screen. Call this once per
// received pty chunk or on a fixed tick; it is not safe to call
// concurrently with itself.
func (r *Renderer) Draw(term *vterm.Terminal) {
	for _, y := range term.TakeDirty() {
		row := term.ReadRow(y)
		for x, cell := range row {
			r.screen.SetContent(x, y, cell.Glyph, nil, styleFor(cell))
		}
	}
	cx, cy := term.ReadCursor()
	r.screen.ShowCursor(cx, cy)
	r.screen.Show()
}

// styleFor translates a vterm.Cell's resolved RGB and attribute bits into a
// tcell.Style. tcell's TrueColor support means no nearest-color quantization
// is needed here.
func styleFor(c vterm.Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.FG.R), int32(c.FG.G), int32(c.FG.B))).
		Background(tcell.NewRGBColor(int32(c.BG.R), int32(c.BG.G), int32(c.BG.B)))

	if c.Attr&vterm.AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.Attr&vterm.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if c.Attr&vterm.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if c.Attr&vterm.AttrStrikethrough != 0 {
		style = style.StrikeThrough(true)
	}
	return style
}

// Size reports the screen's current dimensions, for the caller to drive an
// initial vterm.New / vterm.Terminal.Resize call.
func (r *Renderer) Size() (cols, rows int) {
	return r.screen.Size()
}
