// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: surface/language.go
// Summary: Language detection for surface buffers.

package surface

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Language returns the detected language name of the buffer, or "" when
// nothing conclusive was found.
func (s *Surface) Language() string {
	if s.opts.Language != "" {
		return s.opts.Language
	}

	s.mu.Lock()
	if s.languageDone {
		lang := s.language
		s.mu.Unlock()
		return lang
	}
	text := s.text.String()
	s.mu.Unlock()

	lang := detectLanguage(s.opts.Path, text)

	s.mu.Lock()
	s.language = lang
	s.languageDone = true
	s.mu.Unlock()
	return lang
}

// detectLanguage tries the path first, then shebang and modeline markers
// inside the content. It does not classify content otherwise; Highlight
// falls back to chroma's lexer analysis when no language is known.
func detectLanguage(path, text string) string {
	content := []byte(text)
	if path != "" {
		name := filepath.Base(path)
		if lang, ok := enry.GetLanguageByFilename(name); ok {
			return lang
		}
		if lang, ok := enry.GetLanguageByExtension(name); ok {
			return lang
		}
	}
	if lang, ok := enry.GetLanguageByShebang(content); ok {
		return lang
	}
	if lang, ok := enry.GetLanguageByModeline(content); ok {
		return lang
	}
	return ""
}
