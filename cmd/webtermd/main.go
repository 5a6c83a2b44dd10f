// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/webtermd/main.go
// Summary: Implements main capabilities for the terminal daemon.
// Usage: Executed by operators to start a session that spawns a shell,
// interprets its output with vterm, and renders it through tcell.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/vtgrid/webterm/internal/highlight"
	"github.com/vtgrid/webterm/internal/ptyio"
	"github.com/vtgrid/webterm/internal/render/tcellrender"
	"github.com/vtgrid/webterm/internal/session"
	"github.com/vtgrid/webterm/vterm"
)

func main() {
	shellCmd := flag.String("shell", os.Getenv("SHELL"), "Shell command to spawn")
	title := flag.String("title", "webterm session", "Initial title for the session record")
	stylePath := flag.String("highlight-style", "", "Chroma style name used when highlighting the session banner")
	flag.Parse()

	if *shellCmd == "" {
		*shellCmd = "/bin/sh"
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "webtermd: failed to set raw mode: %v\n", err)
			os.Exit(1)
		}
		defer term.Restore(fd, oldState)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "webtermd: failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "webtermd: failed to init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	renderer := tcellrender.New(screen)
	cols, rows := renderer.Size()

	storePath, err := session.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "webtermd: %v\n", err)
		os.Exit(1)
	}
	store, err := session.OpenStore(storePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "webtermd: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	dir, err := session.NewDirectory(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "webtermd: %v\n", err)
		os.Exit(1)
	}
	record, err := dir.Create(*title)
	if err != nil {
		fmt.Fprintf(os.Stderr, "webtermd: %v\n", err)
		os.Exit(1)
	}

	scanner := &session.TitleScanner{
		OnTitle: func(t string) { dir.SetTitle(record.ID, t) },
	}

	shell, err := ptyio.Open(*shellCmd, rows, cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "webtermd: %v\n", err)
		os.Exit(1)
	}
	defer shell.Close()

	vt := vterm.New(rows, cols, vterm.WithResizeNotifier(shell), vterm.WithKeyboardOutput(shell))

	banner := highlight.New(*stylePath).Highlight(fmt.Sprintf("# session %s\n", record.ID), "markdown")
	vt.Ingest(banner)

	shell.Run(vt, scanner)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	fmt.Fprintf(os.Stderr, "webtermd: session %s started (%s)\n", record.ID, *shellCmd)
	renderer.Draw(vt)

	for {
		select {
		case sig := <-sigCh:
			_ = sig
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				cols, rows := e.Size()
				vt.Resize(rows, cols)
				renderer.Draw(vt)
			case *tcell.EventKey:
				shell.Send(encodeKey(e))
			}
		}
		dir.Touch(record.ID)
		renderer.Draw(vt)
	}
}

// encodeKey turns a tcell key event back into the bytes a shell expects on
// its stdin — the inverse of the bytes vterm.Terminal.Ingest consumes.
func encodeKey(e *tcell.EventKey) []byte {
	if e.Key() == tcell.KeyRune {
		return []byte(string(e.Rune()))
	}
	switch e.Key() {
	case tcell.KeyEnter:
		return []byte("\r")
	case tcell.KeyTab:
		return []byte("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []byte{0x7F}
	case tcell.KeyEscape:
		return []byte{0x1B}
	case tcell.KeyCtrlC:
		return []byte{0x03}
	case tcell.KeyUp:
		return []byte("\x1b[A")
	case tcell.KeyDown:
		return []byte("\x1b[B")
	case tcell.KeyRight:
		return []byte("\x1b[C")
	case tcell.KeyLeft:
		return []byte("\x1b[D")
	default:
		return nil
	}
}
