// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: surface/highlight.go
// Summary: Chroma-based styling of surface text for terminal rendering.

package surface

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

const defaultStyleName = "catppuccin-mocha"

// Cell is one styled rune of highlighted output.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Highlight tokenises the buffer with the lexer for its language and
// returns one row of cells per line. Tokens in the style's base text colour
// keep the provided base style.
func (s *Surface) Highlight(styleName string, base tcell.Style) [][]Cell {
	text := s.Text()
	lines := make([][]Cell, 1)
	if text == "" {
		return lines
	}

	style := chromaStyle(styleName)
	lexer := chroma.Coalesce(lexerFor(s.Language(), text))
	tokens, err := chroma.Tokenise(lexer, nil, text)
	if err != nil {
		return plainCells(text, base)
	}

	baseColour := style.Get(chroma.Text).Colour
	row := 0
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		cellStyle := tokenStyle(style.Get(tok.Type), baseColour, base)
		for _, r := range tok.Value {
			if r == '\n' {
				lines = append(lines, nil)
				row++
				continue
			}
			lines[row] = append(lines[row], Cell{Ch: r, Style: cellStyle})
		}
	}
	// Chroma appends a trailing newline the buffer may not have had.
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 && text[len(text)-1] != '\n' {
		lines = lines[:n-1]
	}
	return lines
}

func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}

func lexerFor(language, text string) chroma.Lexer {
	if language != "" {
		if l := lexers.Get(language); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

func tokenStyle(entry chroma.StyleEntry, baseColour chroma.Colour, base tcell.Style) tcell.Style {
	st := base
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		st = st.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	return st
}

func plainCells(text string, base tcell.Style) [][]Cell {
	lines := make([][]Cell, 1)
	row := 0
	for _, r := range text {
		if r == '\n' {
			lines = append(lines, nil)
			row++
			continue
		}
		lines[row] = append(lines[row], Cell{Ch: r, Style: base})
	}
	return lines
}
