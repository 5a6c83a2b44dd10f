// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/ptyio/ptyio.go
// Summary: Spawns a shell under a pseudo-terminal and pipes it into a
// vterm.Terminal. Implements vterm.KeyboardOutput (writes DA/DSR replies
// back to the shell) and vterm.ResizeNotifier (forwards Resize to the pty).

package ptyio

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/creack/pty"

	"github.com/vtgrid/webterm/vterm"
)

// RawSink receives a copy of every raw chunk read from the pty, alongside
// (not instead of) the Terminal's own Ingest. internal/session.TitleScanner
// satisfies this so title recovery can watch the same bytes the core
// consumes without the core needing to know about it.
type RawSink interface {
	Feed(data []byte)
}

// Session owns one shell process and the Terminal fed by its output.
type Session struct {
	cmd   *exec.Cmd
	pty   *os.File
	term  *vterm.Terminal
	sinks []RawSink

	mu     sync.Mutex
	closed bool
}

// Open spawns shellCmd under a new pty sized rows x cols. The returned
// Session already satisfies vterm.KeyboardOutput and vterm.ResizeNotifier,
// so it can be wired into a vterm.Terminal's options before Run starts
// streaming pty output into that Terminal — avoiding a construction-order
// cycle between the Terminal and the Session it feeds.
func Open(shellCmd string, rows, cols int) (*Session, error) {
	cmd := exec.Command(shellCmd)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"COLUMNS="+strconv.Itoa(cols),
		"LINES="+strconv.Itoa(rows),
	)

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return nil, fmt.Errorf("ptyio: failed to start %q: %w", shellCmd, err)
	}

	return &Session{cmd: cmd, pty: f}, nil
}

// Run begins streaming the pty's output into term, and into any sinks
// given, on a new goroutine. Run does not wait for the process; the caller
// runs the Session's Wait method in its own goroutine if the process's exit
// needs to be observed.
func (s *Session) Run(term *vterm.Terminal, sinks ...RawSink) {
	s.term = term
	s.sinks = sinks
	go s.readLoop()
}

// readLoop feeds pty output into the terminal (and any raw sinks) until the
// pty closes. It runs for the lifetime of the session and is the only
// writer of term.Ingest.
func (s *Session) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.term.Ingest(buf[:n])
			for _, sink := range s.sinks {
				sink.Feed(buf[:n])
			}
		}
		if err != nil {
			return
		}
	}
}

// Send implements vterm.KeyboardOutput: reply bytes (DA, DSR, keystrokes
// forwarded by the host) are written straight to the pty's input side.
func (s *Session) Send(b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if _, err := s.pty.Write(b); err != nil {
		log.Printf("ptyio: write to pty failed: %v", err)
	}
}

// Notify implements vterm.ResizeNotifier: after Terminal.Resize reallocates
// the grid, the pty's kernel-side window size is updated to match so the
// shell's own SIGWINCH-driven reflow agrees with the new grid dimensions.
func (s *Session) Notify(rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if err := pty.Setsize(s.pty, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)}); err != nil {
		log.Printf("ptyio: Setsize failed: %v", err)
	}
}

// Close terminates the shell process and releases the pty file descriptor.
func (s *Session) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	return s.pty.Close()
}

// Wait blocks until the shell process exits.
func (s *Session) Wait() error {
	return s.cmd.Wait()
}
