// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vterm/palette.go
// Summary: The fixed 8-entry normal and bright ANSI color tables consulted
// by the SGR decoder.

package vterm

// NormalColors is the SGR 30-37 / 40-47 palette.
var NormalColors = [8]Color{
	RGB(0x00, 0x00, 0x00),
	RGB(0xD0, 0x00, 0x00),
	RGB(0x00, 0xC0, 0x00),
	RGB(0xF0, 0x80, 0x00),
	RGB(0x00, 0x00, 0xD0),
	RGB(0xA0, 0x00, 0xA0),
	RGB(0x10, 0xB0, 0xB0),
	RGB(0xA0, 0xA0, 0xA0),
}

// BrightColors is the SGR 90-97 / 100-107 palette.
var BrightColors = [8]Color{
	RGB(0x50, 0x50, 0x50),
	RGB(0xFF, 0x30, 0x30),
	RGB(0x20, 0xFF, 0x20),
	RGB(0xFF, 0xFF, 0x40),
	RGB(0x30, 0x30, 0xFF),
	RGB(0xFF, 0x20, 0xFF),
	RGB(0x30, 0xFF, 0xFF),
	RGB(0xFF, 0xFF, 0xFF),
}
