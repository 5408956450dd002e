// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package surface

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTitleFallbacks(t *testing.T) {
	s := New(DefaultOptions())
	if got := s.Title(); got != "untitled" {
		t.Fatalf("expected untitled, got %q", got)
	}

	opts := DefaultOptions()
	opts.Path = "/tmp/project/main.go"
	s = New(opts)
	if got := s.Title(); got != "main.go" {
		t.Fatalf("expected base name title, got %q", got)
	}

	s.SetTitle("Search results")
	if got := s.Title(); got != "Search results" {
		t.Fatalf("expected override title, got %q", got)
	}
	s.SetTitle("")
	if got := s.Title(); got != "main.go" {
		t.Fatalf("expected title to fall back after clearing override, got %q", got)
	}
}

func TestModificationTracking(t *testing.T) {
	opts := DefaultOptions()
	opts.Text = "seed"
	s := New(opts)
	if s.IsModified() {
		t.Fatalf("initial text must not mark surface modified")
	}
	s.InsertText(" hello")
	if !s.IsModified() {
		t.Fatalf("expected modified after edit")
	}
	if got := s.Text(); got != "seed hello" {
		t.Fatalf("unexpected text %q", got)
	}

	s.SetTrackModified(false)
	if s.IsModified() {
		t.Fatalf("expected unmodified when tracking is disabled")
	}
}

func TestClassList(t *testing.T) {
	s := New(DefaultOptions())
	s.AddClass("narrow", "", "narrow", "search")
	if !s.HasClass("narrow") || !s.HasClass("search") {
		t.Fatalf("expected classes to be present, got %v", s.ClassList())
	}
	if got := len(s.ClassList()); got != 2 {
		t.Fatalf("expected duplicates and empties ignored, got %d classes", got)
	}
}

func TestDestroyRunsHandlersOnce(t *testing.T) {
	s := New(DefaultOptions())
	calls := 0
	s.OnDidDestroy(func() { calls++ })
	removed := 0
	unsubscribe := s.OnDidDestroy(func() { removed++ })
	unsubscribe()

	s.Destroy()
	s.Destroy()

	if !s.IsDestroyed() {
		t.Fatalf("expected surface destroyed")
	}
	if calls != 1 {
		t.Fatalf("expected one destroy callback, got %d", calls)
	}
	if removed != 0 {
		t.Fatalf("expected unsubscribed handler not to run")
	}

	s.InsertText("ignored")
	if s.Text() != "" {
		t.Fatalf("expected edits on destroyed surface to be ignored")
	}
}

func TestLanguageDetection(t *testing.T) {
	opts := DefaultOptions()
	opts.Path = "cmd/main.go"
	if got := New(opts).Language(); got != "Go" {
		t.Fatalf("expected Go from extension, got %q", got)
	}

	opts = DefaultOptions()
	opts.Text = "#!/usr/bin/env python3\nimport os\n"
	if got := New(opts).Language(); got != "Python" {
		t.Fatalf("expected Python from shebang, got %q", got)
	}

	opts = DefaultOptions()
	opts.Text = "just some notes"
	if got := New(opts).Language(); got != "" {
		t.Fatalf("expected no language for plain notes, got %q", got)
	}

	opts = DefaultOptions()
	opts.Language = "JSON"
	if got := New(opts).Language(); got != "JSON" {
		t.Fatalf("expected explicit language to win, got %q", got)
	}
}

func TestHighlightSplitsLines(t *testing.T) {
	opts := DefaultOptions()
	opts.Path = "main.go"
	opts.Text = "package main\n\nfunc main() {}"
	s := New(opts)

	lines := s.Highlight("", tcell.StyleDefault)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if got := cellsString(lines[0]); got != "package main" {
		t.Fatalf("unexpected first line %q", got)
	}
	if len(lines[1]) != 0 {
		t.Fatalf("expected empty second line, got %q", cellsString(lines[1]))
	}

	styled := false
	for _, c := range lines[0] {
		if c.Style != tcell.StyleDefault {
			styled = true
			break
		}
	}
	if !styled {
		t.Fatalf("expected keyword cells to carry a style")
	}
}

func TestHighlightEmpty(t *testing.T) {
	lines := New(DefaultOptions()).Highlight("", tcell.StyleDefault)
	if len(lines) != 1 || len(lines[0]) != 0 {
		t.Fatalf("expected a single empty line, got %v", lines)
	}
}

func cellsString(cells []Cell) string {
	runes := make([]rune, len(cells))
	for i, c := range cells {
		runes[i] = c.Ch
	}
	return string(runes)
}

func TestHighlightWithoutDetectedLanguage(t *testing.T) {
	opts := DefaultOptions()
	opts.Text = "package main\n\nfunc main() {}"
	s := New(opts)

	if got := s.Language(); got != "" {
		t.Fatalf("content without a path or marker must not be classified, got %q", got)
	}
	lines := s.Highlight("", tcell.StyleDefault)
	if len(lines) != 3 || cellsString(lines[2]) != "func main() {}" {
		t.Fatalf("expected analysed content to keep its text, got %d lines", len(lines))
	}
}
