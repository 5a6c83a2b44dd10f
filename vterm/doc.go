// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package vterm implements the byte-stream interpreter and character grid
// model of a terminal emulator: an ECMA-48/VT100 escape-sequence state
// machine driving a two-dimensional cell grid with an independent scrolling
// region, cursor, and SGR-decoded rendering attributes.
//
// The package owns no transport, rendering, or session state. Callers feed
// raw PTY output to Terminal.Ingest, poll Terminal.TakeDirty and
// Terminal.ReadRow to paint, and forward DA/DSR replies produced through
// the KeyboardOutput collaborator back to the pty. See the package-level
// interfaces in collaborators.go for the plug-in boundary.
package vterm
