// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texel-outlet/keys.go
// Summary: Parses key binding names from config and matches key events.

package main

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/framegrace/texeloutlet/config"
	"github.com/gdamore/tcell/v2"
)

// Actions the interactive session can bind.
const (
	actionRelocate    = "relocate"
	actionToggle      = "toggle"
	actionToggleFocus = "toggle_focus"
	actionShow        = "show"
	actionHide        = "hide"
	actionLink        = "link"
	actionNewOutlet   = "new_outlet"
	actionSplitEditor = "split_editor"
	actionClose       = "close"
	actionQuit        = "quit"
)

type binding struct {
	key  tcell.Key
	ch   rune
	ctrl rune
	alt  bool
}

var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// parseBinding accepts "Ctrl-X", "Alt-x", tcell key names such as "F5"
// or "PgUp", and single characters.
func parseBinding(s string) (binding, error) {
	name := strings.TrimSpace(s)
	lower := strings.ToLower(name)

	if rest, ok := trimPrefixFold(lower, "ctrl-", "ctrl+", "c-"); ok && len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
		letter := unicode.ToUpper(rune(rest[0]))
		return binding{key: tcell.KeyCtrlA + tcell.Key(letter-'A'), ctrl: letter}, nil
	}
	if rest, ok := trimPrefixFold(name, "alt-", "alt+", "m-"); ok && utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		return binding{key: tcell.KeyRune, ch: r, alt: true}, nil
	}
	if k, ok := keysByName[lower]; ok {
		return binding{key: k}, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return binding{key: tcell.KeyRune, ch: r}, nil
	}
	return binding{}, fmt.Errorf("unknown key %q", s)
}

func trimPrefixFold(s string, prefixes ...string) (string, bool) {
	for _, p := range prefixes {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return s[len(p):], true
		}
	}
	return s, false
}

func (b binding) matches(ev *tcell.EventKey) bool {
	if b.ctrl != 0 {
		if ev.Key() == b.key {
			return true
		}
		// Some terminals report control combinations as modified runes.
		return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToUpper(ev.Rune()) == b.ctrl
	}
	if b.key != tcell.KeyRune {
		return ev.Key() == b.key
	}
	if ev.Key() != tcell.KeyRune || ev.Rune() != b.ch {
		return false
	}
	return b.alt == (ev.Modifiers()&tcell.ModAlt != 0)
}

// keymap maps actions to their bindings.
type keymap struct {
	actions  []string
	bindings map[string]binding
}

// loadKeymap reads the keybindings section. Unknown keys are logged and
// skipped.
func loadKeymap(cfg config.Config) keymap {
	km := keymap{bindings: make(map[string]binding)}
	section := cfg.Section("keybindings")
	for action, raw := range section {
		name, ok := raw.(string)
		if !ok || name == "" {
			continue
		}
		b, err := parseBinding(name)
		if err != nil {
			log.Printf("Keys: %s: %v", action, err)
			continue
		}
		km.bindings[action] = b
		km.actions = append(km.actions, action)
	}
	sort.Strings(km.actions)
	return km
}

// lookup returns the action bound to ev.
func (km keymap) lookup(ev *tcell.EventKey) (string, bool) {
	for _, action := range km.actions {
		if km.bindings[action].matches(ev) {
			return action, true
		}
	}
	return "", false
}
