// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vterm/testharness_test.go
// Summary: Small helpers shared across the package's test files.

package vterm

type recordingOutput struct {
	sent [][]byte
}

func (r *recordingOutput) Send(b []byte) {
	cp := make([]byte, len(b))
	copy(cp, b)
	r.sent = append(r.sent, cp)
}

func newTestTerminal(rows, cols int) (*Terminal, *recordingOutput) {
	out := &recordingOutput{}
	t := New(rows, cols, WithKeyboardOutput(out))
	return t, out
}

func send(t *Terminal, s string) {
	t.Ingest([]byte(s))
}
