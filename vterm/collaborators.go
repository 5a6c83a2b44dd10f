// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vterm/collaborators.go
// Summary: The plug-in interfaces the core consumes. Everything on the
// other side of these is out of scope for this package (§1): transport,
// rendering, session management.

package vterm

// KeyboardOutput receives reply bytes the core generates in response to
// DA and DSR queries. Implementations forward them to the pty; the core
// never writes to a transport directly.
type KeyboardOutput interface {
	Send(b []byte)
}

// ResizeNotifier is invoked at the end of a Resize so a transport can
// inform the pty of the new window size.
type ResizeNotifier interface {
	Notify(rows, cols int)
}

// Logger receives advisory diagnostics for malformed or unimplemented
// sequences (§7). These never carry program data and are never required
// for correct operation.
type Logger interface {
	Logf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

type nopKeyboardOutput struct{}

func (nopKeyboardOutput) Send([]byte) {}

type nopResizeNotifier struct{}

func (nopResizeNotifier) Notify(int, int) {}
