// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texel-outlet/config.go
// Summary: Reads and writes single settings in the config files.
// Usage: `texel-outlet config set render.dock_height 12` or, for the outlet
// app config, `texel-outlet config set --app outlet outlet.split down`.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/framegrace/texeloutlet/config"
	"github.com/spf13/cobra"
)

var configApp string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read or change settings",
	Long: `Read or change one setting of texel-outlet.json, or of an app config with
--app. Keys are written as section.key; a key without a section is top level.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <section.key>",
	Short: "Print a setting as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configTarget(configApp)
		if err != nil {
			return err
		}
		section, key := splitSettingKey(args[0])
		value, ok := cfg.Section(section)[key]
		if !ok {
			return fmt.Errorf("%s is not set", args[0])
		}
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <section.key> <value>",
	Short: "Change a setting and save it",
	Long: `Change a setting and save the file. The value is parsed as JSON when it
can be (true, 12, ["center","left"]) and stored as a string otherwise.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		section, key := splitSettingKey(args[0])
		return saveSetting(configApp, section, key, parseSettingValue(args[1]))
	},
}

func init() {
	configCmd.PersistentFlags().StringVar(&configApp, "app", "", "app config to use instead of the system config ("+config.OutletApp+")")
	configCmd.AddCommand(configGetCmd, configSetCmd)
}

func configTarget(app string) (config.Config, error) {
	switch app {
	case "":
		return config.System(), nil
	case config.OutletApp:
		return config.App(app), nil
	}
	return nil, fmt.Errorf("unknown app %q", app)
}

// saveSetting updates a copy of the target config, saves it and reloads it
// from disk so the stored form is what later reads see.
func saveSetting(app, section, key string, value interface{}) error {
	current, err := configTarget(app)
	if err != nil {
		return err
	}
	cfg := config.Clone(current)
	if cfg == nil {
		cfg = make(config.Config)
	}
	setSettingValue(cfg, section, key, value)

	if app == "" {
		config.SetSystem(cfg)
		if err := config.SaveSystem(); err != nil {
			return fmt.Errorf("save system config: %w", err)
		}
		return config.ReloadSystem()
	}
	config.SetApp(app, cfg)
	if err := config.SaveApp(app); err != nil {
		return fmt.Errorf("save %s config: %w", app, err)
	}
	return config.ReloadApp(app)
}

func splitSettingKey(path string) (string, string) {
	if i := strings.Index(path, "."); i >= 0 {
		return path[:i], path[i+1:]
	}
	return "", path
}

func parseSettingValue(raw string) interface{} {
	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err == nil {
		return value
	}
	return raw
}

func setSettingValue(cfg config.Config, section, key string, value interface{}) {
	if section == "" {
		cfg[key] = value
		return
	}
	values := cfg.Section(section)
	if values == nil {
		values = make(config.Section)
		cfg[section] = values
	}
	values[key] = value
}
