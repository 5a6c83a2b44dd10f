// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package vterm

import "testing"

func TestMalformedCSIParamByteDropsSequenceWithoutEffect(t *testing.T) {
	term, _ := newTestTerminal(24, 80)
	send(term, "\x1b[5;5H")
	wantX, wantY := term.ReadCursor()

	// ':' is inside the CSI parameter range (0x30-0x3F) but is neither a
	// digit nor ';', so the buffer "3:5" is malformed; CUU must not move
	// the cursor by the fallback default of 1.
	send(term, "\x1b[3:5A")

	gotX, gotY := term.ReadCursor()
	if gotX != wantX || gotY != wantY {
		t.Fatalf("cursor = (%d,%d), want unchanged (%d,%d)", gotX, gotY, wantX, wantY)
	}
}

func TestMalformedSGRParamByteLeavesPenUntouched(t *testing.T) {
	term, _ := newTestTerminal(24, 80)
	send(term, "\x1b[31;44m")
	wantFG, wantBG := term.cursor.Pen.FG, term.cursor.Pen.BG

	send(term, "\x1b[3:mX")

	if term.cursor.Pen.FG != wantFG || term.cursor.Pen.BG != wantBG {
		t.Fatalf("pen after malformed SGR = (%v,%v), want untouched (%v,%v)", term.cursor.Pen.FG, term.cursor.Pen.BG, wantFG, wantBG)
	}
}

func TestExcessCSIParamsDropsSequence(t *testing.T) {
	term, _ := newTestTerminal(24, 80)
	send(term, "\x1b[5;5H")
	wantX, wantY := term.ReadCursor()

	// CUU documents a single argument; a second field must drop the whole
	// sequence rather than reading params[0] and ignoring params[1].
	send(term, "\x1b[1;2A")

	gotX, gotY := term.ReadCursor()
	if gotX != wantX || gotY != wantY {
		t.Fatalf("cursor = (%d,%d), want unchanged (%d,%d)", gotX, gotY, wantX, wantY)
	}
}

func TestExcessDECSTBMParamsDropsSequence(t *testing.T) {
	term, _ := newTestTerminal(24, 80)
	wantTop, wantBottom := term.ScrollRegion()

	send(term, "\x1b[2;10;99r")

	gotTop, gotBottom := term.ScrollRegion()
	if gotTop != wantTop || gotBottom != wantBottom {
		t.Fatalf("scroll region = (%d,%d), want unchanged (%d,%d)", gotTop, gotBottom, wantTop, wantBottom)
	}
}

func TestCUPWithExcessParamsDropsSequence(t *testing.T) {
	term, _ := newTestTerminal(24, 80)
	send(term, "\x1b[5;5H")
	wantX, wantY := term.ReadCursor()

	// CUP/HVP documents two arguments; a third field must drop the whole
	// sequence.
	send(term, "\x1b[1;1;1H")

	gotX, gotY := term.ReadCursor()
	if gotX != wantX || gotY != wantY {
		t.Fatalf("cursor = (%d,%d), want unchanged (%d,%d)", gotX, gotY, wantX, wantY)
	}
}

func TestBareDECSTBMResetsTopMarginToZero(t *testing.T) {
	term, _ := newTestTerminal(24, 80)
	send(term, "\x1b[5;20r") // narrow the region first

	send(term, "\x1b[r") // bare reset: both margins back to full screen

	top, bottom := term.ScrollRegion()
	if top != 0 || bottom != 23 {
		t.Fatalf("scroll region = (%d,%d), want (0,23)", top, bottom)
	}
}

func TestExplicitZeroDECSTBMTopResetsToZero(t *testing.T) {
	term, _ := newTestTerminal(24, 80)
	send(term, "\x1b[5;20r")

	send(term, "\x1b[0r")

	top, bottom := term.ScrollRegion()
	if top != 0 || bottom != 23 {
		t.Fatalf("scroll region = (%d,%d), want (0,23)", top, bottom)
	}
}

func TestDeviceAttributesSecondaryPrefixReachesDispatch(t *testing.T) {
	term, out := newTestTerminal(24, 80)

	send(term, "\x1b[>c")

	if len(out.sent) != 1 || string(out.sent[0]) != "\x1b[0;0;0c" {
		t.Fatalf("sent = %q, want one reply of %q", out.sent, "\x1b[0;0;0c")
	}
}

func TestDeviceAttributesTertiaryPrefixReachesDispatchAsNoOp(t *testing.T) {
	term, out := newTestTerminal(24, 80)

	send(term, "\x1b[=c")

	if len(out.sent) != 0 {
		t.Fatalf("sent = %q, want no reply for the tertiary DA form", out.sent)
	}
}

func TestDeviceAttributesPrimaryNoPrefixStillReplies(t *testing.T) {
	term, out := newTestTerminal(24, 80)

	send(term, "\x1b[c")

	if len(out.sent) != 1 || string(out.sent[0]) != "\x1b[?1;2c" {
		t.Fatalf("sent = %q, want one reply of %q", out.sent, "\x1b[?1;2c")
	}
}
