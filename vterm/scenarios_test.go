// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vterm/scenarios_test.go
// Summary: End-to-end byte-stream scenarios covering cursor movement,
// scroll regions, SGR color runs, wraparound, and device-attribute replies.

package vterm

import (
	"bytes"
	"testing"
)

func TestScenarioPlainTextWrap(t *testing.T) {
	term, _ := newTestTerminal(25, 80)
	send(term, strRepeat("A", 81))

	row0 := term.ReadRow(0)
	for x := 0; x < 80; x++ {
		if row0[x].Glyph != 'A' {
			t.Fatalf("row 0 col %d = %q, want A", x, row0[x].Glyph)
		}
	}
	x, y := term.ReadCursor()
	if x != 1 || y != 1 {
		t.Fatalf("cursor = (%d,%d), want (1,1)", x, y)
	}
	row1 := term.ReadRow(1)
	if row1[0].Glyph != 'A' {
		t.Fatalf("row 1 col 0 = %q, want A", row1[0].Glyph)
	}
}

func TestScenarioCRLF(t *testing.T) {
	term, _ := newTestTerminal(25, 80)
	send(term, "hi\r\nyo")

	if s := rowString(term, 0, 2); s != "hi" {
		t.Fatalf("row 0 = %q, want hi", s)
	}
	if s := rowString(term, 1, 2); s != "yo" {
		t.Fatalf("row 1 = %q, want yo", s)
	}
	x, y := term.ReadCursor()
	if x != 2 || y != 1 {
		t.Fatalf("cursor = (%d,%d), want (2,1)", x, y)
	}
}

func TestScenarioColorAndReset(t *testing.T) {
	term, _ := newTestTerminal(25, 80)
	send(term, "\x1b[31mRED\x1b[0mOK")

	row := term.ReadRow(0)
	for i, want := range "RED" {
		if row[i].Glyph != want {
			t.Fatalf("col %d glyph = %q, want %q", i, row[i].Glyph, want)
		}
		if row[i].FG != NormalColors[1] {
			t.Fatalf("col %d fg = %+v, want %+v", i, row[i].FG, NormalColors[1])
		}
	}
	for i, want := range "OK" {
		col := 3 + i
		if row[col].Glyph != want {
			t.Fatalf("col %d glyph = %q, want %q", col, row[col].Glyph, want)
		}
		if row[col].FG != DefaultFG {
			t.Fatalf("col %d fg = %+v, want default white", col, row[col].FG)
		}
	}
}

func TestScenarioCursorAddressingAndEL(t *testing.T) {
	term, _ := newTestTerminal(25, 80)
	send(term, "aaa\r\nbbb\x1b[1;1H\x1b[2K")

	row0 := term.ReadRow(0)
	for x, c := range row0 {
		if c != defaultCell() {
			t.Fatalf("row 0 col %d = %+v, want default cell", x, c)
		}
	}
	if s := rowString(term, 1, 3); s != "bbb" {
		t.Fatalf("row 1 = %q, want bbb", s)
	}
	x, y := term.ReadCursor()
	if x != 0 || y != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", x, y)
	}
}

func TestScenarioScrollRegion(t *testing.T) {
	term, _ := newTestTerminal(25, 80)
	send(term, "\x1b[2;4r")

	top, bottom := term.ScrollRegion()
	if top != 1 || bottom != 3 {
		t.Fatalf("scroll region = (%d,%d), want (1,3)", top, bottom)
	}
	x, y := term.ReadCursor()
	if x != 0 || y != 0 {
		t.Fatalf("cursor after DECSTBM = (%d,%d), want (0,0)", x, y)
	}

	for i := 0; i < 5; i++ {
		term.LineFeed()
	}
	_, y = term.ReadCursor()
	if y != 3 {
		t.Fatalf("cursor row after 5 LFs = %d, want 3", y)
	}
}

func TestScenarioTrueColorSGR(t *testing.T) {
	term, _ := newTestTerminal(25, 80)
	send(term, "\x1b[38;2;18;52;86mX")

	cell := term.ReadRow(0)[0]
	if cell.Glyph != 'X' {
		t.Fatalf("glyph = %q, want X", cell.Glyph)
	}
	want := RGB(18, 52, 86)
	if cell.FG != want {
		t.Fatalf("fg = %+v, want %+v", cell.FG, want)
	}
}

func TestScenarioDeviceAttributesQuery(t *testing.T) {
	term, out := newTestTerminal(25, 80)
	beforeRow := term.ReadRow(0)
	beforeX, beforeY := term.ReadCursor()

	send(term, "\x1b[c")

	if len(out.sent) != 1 {
		t.Fatalf("got %d replies, want 1", len(out.sent))
	}
	want := []byte{0x1B, 0x5B, 0x3F, 0x31, 0x3B, 0x32, 0x63}
	if !bytes.Equal(out.sent[0], want) {
		t.Fatalf("reply = %x, want %x", out.sent[0], want)
	}

	afterX, afterY := term.ReadCursor()
	if afterX != beforeX || afterY != beforeY {
		t.Fatalf("cursor moved: before (%d,%d) after (%d,%d)", beforeX, beforeY, afterX, afterY)
	}
	afterRow := term.ReadRow(0)
	for i := range beforeRow {
		if beforeRow[i] != afterRow[i] {
			t.Fatalf("row 0 mutated by DA query at col %d", i)
		}
	}
}

func rowString(term *Terminal, y, n int) string {
	row := term.ReadRow(y)
	b := make([]rune, n)
	for i := 0; i < n; i++ {
		b[i] = row[i].Glyph
	}
	return string(b)
}

func strRepeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
