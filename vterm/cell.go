// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vterm/cell.go
// Summary: The Cell type and the rendering attribute/color primitives that
// stamp it.

package vterm

// Attr is a bitset over the rendering attributes a Cell can carry.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrItalic
	AttrUnderline
	AttrStrikethrough
)

// Color is a resolved 24-bit RGB color. Even when a sequence selects a
// palette index, the decoder resolves it to RGB immediately (§9: "store
// the resolved RGB in the cell") so downstream snapshots are
// self-describing and never need the palette to render.
type Color struct {
	R, G, B uint8
}

// RGB constructs a Color from its three channels.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

var (
	// DefaultFG is pure white, the cursor pen's default foreground.
	DefaultFG = Color{R: 0xFF, G: 0xFF, B: 0xFF}
	// DefaultBG is pure black, the cursor pen's default background.
	DefaultBG = Color{R: 0x00, G: 0x00, B: 0x00}
)

// Pen carries the rendering state stamped into every newly written cell. It
// is always copied by value — cells never share attribute storage with the
// cursor.
type Pen struct {
	Attr Attr
	FG   Color
	BG   Color
}

// defaultPen is the pen SGR 0 restores and the one a fresh Terminal starts
// with.
func defaultPen() Pen {
	return Pen{Attr: 0, FG: DefaultFG, BG: DefaultBG}
}

// Cell is one visible character position.
type Cell struct {
	Glyph rune
	Attr  Attr
	FG    Color
	BG    Color
}

// defaultCell is a blank space cell stamped with the default pen.
func defaultCell() Cell {
	return Cell{Glyph: ' ', FG: DefaultFG, BG: DefaultBG}
}

// stampedCell builds the cell written when placing r under the given pen.
func stampedCell(r rune, pen Pen) Cell {
	return Cell{Glyph: r, Attr: pen.Attr, FG: pen.FG, BG: pen.BG}
}
