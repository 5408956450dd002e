// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"testing"

	"github.com/framegrace/texeloutlet/config"
	"github.com/gdamore/tcell/v2"
)

func TestParseBinding(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"Ctrl-R", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl)},
		{"ctrl+t", tcell.NewEventKey(tcell.KeyCtrlT, 0, tcell.ModCtrl)},
		{"F5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)},
		{"Alt-x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt)},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)},
	}
	for _, tc := range cases {
		b, err := parseBinding(tc.name)
		if err != nil {
			t.Fatalf("parseBinding(%q): %v", tc.name, err)
		}
		if !b.matches(tc.ev) {
			t.Fatalf("%q did not match its key event", tc.name)
		}
	}

	if _, err := parseBinding("Hyper-Space-Bar"); err == nil {
		t.Fatalf("expected an error for an unknown key")
	}
}

func TestBindingDistinguishesModifiers(t *testing.T) {
	plain, err := parseBinding("x")
	if err != nil {
		t.Fatalf("parseBinding: %v", err)
	}
	if plain.matches(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt)) {
		t.Fatalf("plain binding must not match Alt-x")
	}
	ctrl, err := parseBinding("Ctrl-R")
	if err != nil {
		t.Fatalf("parseBinding: %v", err)
	}
	if ctrl.matches(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)) {
		t.Fatalf("Ctrl-R must not match a plain r")
	}
	if !ctrl.matches(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModCtrl)) {
		t.Fatalf("Ctrl-R must match a ctrl-modified rune")
	}
}

func TestLoadKeymapSkipsBadEntries(t *testing.T) {
	km := loadKeymap(config.Config{
		"keybindings": map[string]interface{}{
			"relocate": "Ctrl-R",
			"toggle":   "NoSuchKey",
			"hide":     42.0,
		},
	})
	if len(km.actions) != 1 {
		t.Fatalf("expected only the valid binding, got %v", km.actions)
	}
	action, ok := km.lookup(tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl))
	if !ok || action != actionRelocate {
		t.Fatalf("expected relocate, got %q", action)
	}
	if _, ok := km.lookup(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)); ok {
		t.Fatalf("unbound key must not resolve")
	}
}
