// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/highlight/highlight.go
// Summary: Detects a transcript's language with go-enry, tokenizes it with
// chroma, and emits ANSI SGR-coded bytes — the mirror image of vterm's SGR
// decoder: this package produces the byte stream vterm.Terminal.Ingest
// consumes instead of painting cells directly.

package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
)

const defaultStyleName = "catppuccin-mocha"

// Highlighter tokenizes plain-text transcripts and renders them as
// SGR-coded ANSI bytes suitable for feeding into vterm.Terminal.Ingest.
type Highlighter struct {
	style *chroma.Style
}

// New builds a Highlighter using the named chroma style, falling back to
// a default style when styleName is empty or unknown.
func New(styleName string) *Highlighter {
	if styleName == "" {
		styleName = defaultStyleName
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{style: style}
}

// DetectLanguage guesses the language of a transcript body from its
// filename (if known) and content, the same go-enry entry points used to
// classify files in repository-scanning tools.
func DetectLanguage(filename, content string) string {
	if filename != "" {
		if langs := enry.GetLanguagesByFilename(filename, []byte(content), nil); len(langs) > 0 {
			return langs[0]
		}
		if lang, safe := enry.GetLanguageByExtension(filename); safe {
			return lang
		}
	}
	if lang, safe := enry.GetLanguageByContent(filename, []byte(content)); safe {
		return lang
	}
	return ""
}

// Highlight tokenizes text as language lang (empty for auto-detection) and
// returns it as a byte stream carrying SGR escape sequences, one color run
// per token, reset at the end.
func (h *Highlighter) Highlight(text, lang string) []byte {
	lexer := lexerFor(lang, text)
	lexer = chroma.Coalesce(lexer)

	tokens, err := chroma.Tokenise(lexer, nil, text)
	if err != nil {
		return []byte(text)
	}

	var b strings.Builder
	baseColour := h.style.Get(chroma.Text).Colour
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		writeToken(&b, tok, h.style.Get(tok.Type), baseColour)
	}
	b.WriteString("\x1b[0m")
	return []byte(b.String())
}

func lexerFor(lang, text string) chroma.Lexer {
	if lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

// writeToken emits the SGR prefix for entry's style (skipped when it does
// not differ from the base text color, the same "don't override the
// default FG" rule txfmt.resolveTokenStyle applies) followed by the
// token's literal text.
func writeToken(b *strings.Builder, tok chroma.Token, entry chroma.StyleEntry, baseColour chroma.Colour) {
	var codes []string
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	if entry.Bold == chroma.Yes {
		codes = append(codes, "1")
	}
	if entry.Italic == chroma.Yes {
		codes = append(codes, "3")
	}
	if entry.Underline == chroma.Yes {
		codes = append(codes, "4")
	}

	if len(codes) > 0 {
		b.WriteString("\x1b[")
		b.WriteString(strings.Join(codes, ";"))
		b.WriteByte('m')
	}
	b.WriteString(tok.Value)
	if len(codes) > 0 {
		b.WriteString("\x1b[0m")
	}
}
