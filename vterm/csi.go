// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vterm/csi.go
// Summary: CSI parameter parsing (§4.4.1) and the CSI dispatch table
// (§4.4.2).

package vterm

import "fmt"

// parseCSIParams splits buf on ';' into decimal integer fields (§4.4.1).
// An empty field becomes 0; any byte outside digits and ';' anywhere in
// the remaining buffer makes the whole sequence malformed, yielding an
// empty parameter list. A buffer that is empty or ends in ';' gets its
// implicit trailing 0 for free, because the field loop always closes a
// final field at the end of the buffer.
//
// A single leading private-marker byte (>, =, ?, <) is stripped before
// the malformed check runs — it belongs to the command's identity, not
// its parameter list, and DA's private forms ("\x1b[>c", "\x1b[=c") need
// dispatchCSI to still run so deviceAttributes can inspect it via raw.
func parseCSIParams(buf []byte) []int {
	if len(buf) > 0 {
		switch buf[0] {
		case '>', '=', '?', '<':
			buf = buf[1:]
		}
	}
	for _, b := range buf {
		if b != ';' && (b < '0' || b > '9') {
			return nil
		}
	}

	params := make([]int, 0, 4)
	fieldStart := 0
	for i := 0; i <= len(buf); i++ {
		if i == len(buf) || buf[i] == ';' {
			params = append(params, atoiField(buf[fieldStart:i]))
			fieldStart = i + 1
		}
	}
	return params
}

func atoiField(f []byte) int {
	n := 0
	for _, c := range f {
		n = n*10 + int(c-'0')
	}
	return n
}

// param returns params[i] if present and nonzero, else def — the "empty or
// zero means default" rule used by nearly every entry in §4.4.2's table.
func param(params []int, i, def int) int {
	if i < len(params) && params[i] != 0 {
		return params[i]
	}
	return def
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// dispatchCSI executes the command named by the CSI final byte b, using
// params parsed from raw (§4.4.1) and raw itself for the private-prefix
// check DA needs (§4.4.2). A command that
// documents a fixed argument count silently drops the whole sequence when
// given more fields than that, rather than reading the first ones and
// ignoring the rest.
func (t *Terminal) dispatchCSI(b byte, params []int, raw []byte) {
	rows, cols := t.grid.height, t.grid.width

	switch b {
	case '@': // ICH
		if len(params) > 1 {
			return
		}
		n := clampInt(param(params, 0, 1), 1, cols-t.cursor.X)
		if n > 0 {
			t.grid.RowInsertBlank(t.cursor.Y, t.cursor.X, n)
		}
	case 'A': // CUU
		if len(params) > 1 {
			return
		}
		t.cursor.Y = maxInt(0, t.cursor.Y-param(params, 0, 1))
	case 'B': // CUD
		if len(params) > 1 {
			return
		}
		t.cursor.Y = minInt(rows-1, t.cursor.Y+param(params, 0, 1))
	case 'C': // CUF
		if len(params) > 1 {
			return
		}
		t.cursor.X = minInt(cols-1, t.cursor.X+param(params, 0, 1))
	case 'D': // CUB
		if len(params) > 1 {
			return
		}
		t.cursor.X = maxInt(0, t.cursor.X-param(params, 0, 1))
	case 'E': // CNL
		if len(params) > 1 {
			return
		}
		t.cursor.Y = minInt(rows-1, t.cursor.Y+param(params, 0, 1))
		t.cursor.X = 0
	case 'F': // CPL
		if len(params) > 1 {
			return
		}
		t.cursor.Y = maxInt(0, t.cursor.Y-param(params, 0, 1))
		t.cursor.X = 0
	case 'G': // CHA
		if len(params) > 1 {
			return
		}
		t.cursor.X = clampInt(param(params, 0, 1)-1, 0, cols)
	case 'H', 'f': // CUP / HVP
		if len(params) > 2 {
			return
		}
		t.cursor.Y = clampInt(param(params, 0, 1)-1, 0, rows-1)
		t.cursor.X = clampInt(param(params, 1, 1)-1, 0, cols)
	case 'J': // ED
		if len(params) > 1 {
			return
		}
		t.eraseInDisplay(param(params, 0, 0))
	case 'K': // EL
		if len(params) > 1 {
			return
		}
		t.eraseInLine(param(params, 0, 0))
	case 'L': // IL
		if len(params) > 1 {
			return
		}
		n := clampInt(param(params, 0, 1), 1, rows)
		t.grid.InsertLines(t.cursor.Y, n)
	case 'P': // DCH
		if len(params) > 1 {
			return
		}
		n := clampInt(param(params, 0, 1), 1, cols-t.cursor.X)
		if n > 0 {
			t.grid.RowDelete(t.cursor.Y, t.cursor.X, n)
		}
	case 'S': // SU
		if len(params) > 1 {
			return
		}
		t.grid.ScrollRegionUp(maxInt(0, param(params, 0, 0)))
	case 'T': // SD
		if len(params) > 1 {
			return
		}
		t.grid.ScrollRegionDown(maxInt(0, param(params, 0, 0)))
	case 'X': // ECH
		if len(params) > 1 {
			return
		}
		t.eraseCharacters(maxInt(1, param(params, 0, 1)))
	case 'c': // DA
		t.deviceAttributes(raw)
	case 'd': // VPA
		if len(params) > 1 {
			return
		}
		t.cursor.Y = clampInt(param(params, 0, 1)-1, 0, rows-1)
	case 'm': // SGR
		t.handleSGR(params)
	case 'n': // DSR
		if len(params) == 1 && params[0] == 6 {
			t.kbOutput.Send([]byte(fmt.Sprintf("\x1b[%d;%dR", t.cursor.Y+1, t.cursor.X+1)))
		}
	case 'r': // DECSTBM
		t.setScrollRegion(params)
	default:
		t.logger.Logf("vterm: unimplemented CSI final byte %q", string(b))
	}
}

func (t *Terminal) deviceAttributes(raw []byte) {
	if len(raw) > 0 && raw[0] == '>' {
		t.kbOutput.Send([]byte("\x1b[0;0;0c"))
		return
	}
	if len(raw) > 0 && raw[0] == '=' {
		return
	}
	t.kbOutput.Send([]byte("\x1b[?1;2c"))
}

func (t *Terminal) setScrollRegion(params []int) {
	rows := t.grid.height
	var top, bottom int
	switch len(params) {
	case 0:
		top, bottom = 0, rows-1
	case 1:
		top, bottom = param(params, 0, 0), rows-1
	case 2:
		top, bottom = param(params, 0, 1)-1, param(params, 1, rows)-1
	default:
		return
	}
	top = clampInt(top, 0, rows-1)
	bottom = clampInt(bottom, 0, rows-1)
	if top >= bottom-1 {
		return
	}
	t.grid.SetScrollRegion(top, bottom)
	t.cursor.X, t.cursor.Y = 0, 0
}

func (t *Terminal) eraseCharacters(n int) {
	x, y := t.cursor.X, t.cursor.Y
	rows, cols := t.grid.height, t.grid.width
	for ; n > 0; n-- {
		if x >= cols {
			x = 0
			y++
			if y >= rows {
				return
			}
		}
		t.grid.SetCell(y, x, defaultCell())
		x++
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
