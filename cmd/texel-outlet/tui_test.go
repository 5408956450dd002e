// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"strings"
	"testing"

	"github.com/framegrace/texeloutlet/config"
	"github.com/framegrace/texeloutlet/outlet"
	"github.com/framegrace/texeloutlet/texel"
	"github.com/gdamore/tcell/v2"
)

func newTestSession(t *testing.T) *session {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)

	keys := loadKeymap(config.Config{"keybindings": map[string]interface{}{
		actionRelocate:    "Ctrl-R",
		actionToggle:      "Ctrl-T",
		actionToggleFocus: "Ctrl-F",
		actionLink:        "Ctrl-L",
		actionNewOutlet:   "Ctrl-O",
		actionSplitEditor: "Ctrl-E",
		actionClose:       "Ctrl-W",
		actionQuit:        "Ctrl-Q",
	}})
	s, err := newSession(context.Background(), texel.NewTcellScreenDriver(sim), outlet.DefaultOptions(), keys, texel.DefaultRenderOptions())
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	return s
}

func press(t *testing.T, s *session, key tcell.Key) bool {
	t.Helper()
	quit, err := s.handleKey(context.Background(), tcell.NewEventKey(key, 0, tcell.ModCtrl))
	if err != nil {
		t.Fatalf("key %v: %v", key, err)
	}
	return quit
}

func typeRune(t *testing.T, s *session, r rune) {
	t.Helper()
	if _, err := s.handleKey(context.Background(), tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)); err != nil {
		t.Fatalf("type %q: %v", r, err)
	}
}

func TestSessionStartsWithEditorAndOutlet(t *testing.T) {
	s := newTestSession(t)
	o, ok := s.runner.Outlet("output")
	if !ok {
		t.Fatalf("expected the initial outlet")
	}
	if o.Location() != outlet.LocationBottom || !s.ws.DockAt(outlet.LocationBottom).IsVisible() {
		t.Fatalf("expected the outlet shown in the bottom dock")
	}
	editor, _ := s.runner.Item("scratch.go")
	if !s.ws.HasFocus(editor) {
		t.Fatalf("expected the scratch editor focused")
	}
}

func TestSessionKeysDriveOutlet(t *testing.T) {
	s := newTestSession(t)
	o, _ := s.runner.Outlet("output")
	editor, _ := s.runner.Item("scratch.go")

	press(t, s, tcell.KeyCtrlR)
	if o.Location() != outlet.LocationCenter {
		t.Fatalf("expected relocation to center, got %s", o.Location())
	}

	typeRune(t, s, 'x')
	if text := editor.(interface{ Text() string }).Text(); !strings.HasSuffix(text, "x") {
		t.Fatalf("expected typing into the focused editor")
	}

	press(t, s, tcell.KeyCtrlF)
	if !s.ws.HasFocus(o) {
		t.Fatalf("expected focus on the outlet")
	}
	typeRune(t, s, 'y')
	if o.Text() != "y" {
		t.Fatalf("expected typing into the outlet, got %q", o.Text())
	}

	press(t, s, tcell.KeyCtrlT)
	if o.IsVisible() {
		t.Fatalf("expected toggle to hide the outlet")
	}
	if !s.ws.HasFocus(editor) {
		t.Fatalf("expected focus back on the editor")
	}

	if !press(t, s, tcell.KeyCtrlQ) {
		t.Fatalf("expected quit")
	}
}

func TestSessionNewOutletBecomesCurrent(t *testing.T) {
	s := newTestSession(t)
	press(t, s, tcell.KeyCtrlO)
	second, ok := s.runner.Outlet("output-2")
	if !ok {
		t.Fatalf("expected a second outlet")
	}
	press(t, s, tcell.KeyCtrlR)
	if second.Location() != outlet.LocationCenter {
		t.Fatalf("expected the newest outlet to relocate")
	}
	first, _ := s.runner.Outlet("output")
	if first.Location() != outlet.LocationBottom {
		t.Fatalf("expected the first outlet untouched")
	}
}

func TestSessionLinkAndClose(t *testing.T) {
	s := newTestSession(t)
	press(t, s, tcell.KeyCtrlE)
	editor, ok := s.runner.Item("editor-1.txt")
	if !ok || !s.ws.HasFocus(editor) {
		t.Fatalf("expected a new focused editor")
	}
	press(t, s, tcell.KeyCtrlL)
	o, _ := s.runner.Outlet("output")
	if id, linked := o.LinkedEditorID(); !linked || id != editor.ItemID() {
		t.Fatalf("expected the outlet linked to the center editor")
	}

	press(t, s, tcell.KeyCtrlW)
	if _, ok := s.runner.Item("editor-1.txt"); ok {
		t.Fatalf("expected the focused editor closed")
	}
	if got := len(s.ws.Center().Panes()); got != 1 {
		t.Fatalf("expected the emptied split to collapse, got %d panes", got)
	}
}

func TestRenderTextDrawsLayout(t *testing.T) {
	s := newTestSession(t)
	text, err := renderText(s.ws, texel.DefaultRenderOptions(), 60, 20)
	if err != nil {
		t.Fatalf("renderText: %v", err)
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "scratch.go") {
		t.Fatalf("expected the editor tab on the first row, got %q", lines[0])
	}
	if !strings.Contains(text, "output") {
		t.Fatalf("expected the outlet tab in the dock")
	}
}

func TestParseSize(t *testing.T) {
	if w, h, err := parseSize("80x24"); err != nil || w != 80 || h != 24 {
		t.Fatalf("unexpected parse: %d %d %v", w, h, err)
	}
	for _, bad := range []string{"", "80", "0x10", "axb"} {
		if _, _, err := parseSize(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
