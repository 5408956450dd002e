// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and app configuration files.

package config

// OutletApp is the app config that holds outlet defaults.
const OutletApp = "outlet"

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"verbose": false,
	})
	cfg.RegisterDefaults("render", Section{
		"style":       "catppuccin-mocha",
		"dock_width":  32,
		"dock_height": 10,
	})
	cfg.RegisterDefaults("keybindings", defaultKeyBindings())
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case OutletApp:
		cfg.RegisterDefaults("outlet", Section{
			"allowed_locations": []interface{}{"center", "bottom"},
			"default_location":  "bottom",
			"split":             "right",
			"use_adjacent_pane": true,
			"track_modified":    false,
			"line_numbers":      true,
		})
	}
}

func defaultKeyBindings() Section {
	return Section{
		"relocate":     "Ctrl-R",
		"toggle":       "Ctrl-T",
		"toggle_focus": "Ctrl-F",
		"show":         "Ctrl-S",
		"hide":         "Ctrl-H",
		"link":         "Ctrl-L",
		"new_outlet":   "Ctrl-O",
		"split_editor": "Ctrl-E",
		"close":        "Ctrl-W",
		"quit":         "Ctrl-Q",
	}
}
