// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load and reload logic for the config store.

package config

import "log"

func loadSystemLocked() error {
	path, err := systemConfigPath()
	if err != nil {
		log.Printf("Config: Failed to resolve system config path: %v", err)
		system = make(Config)
		applySystemDefaults(system)
		return err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read system config %s: %v", path, readErr)
		cfg = make(Config)
	}

	// A missing or empty file is seeded from the embedded defaults. A file
	// that failed to parse is left alone so the user can fix it.
	if readErr == nil && len(cfg) == 0 {
		if def := defaultSystemConfig(); def != nil {
			cfg = def
			if err := writeConfig(path, cfg); err != nil {
				log.Printf("Config: Failed to write default system config: %v", err)
				readErr = err
			}
		} else {
			cfg = make(Config)
		}
	}
	applySystemDefaults(cfg)

	system = cfg
	if readErr == nil && exists {
		log.Printf("Config: Loaded system config from %s", path)
	}
	return readErr
}

func loadAppLocked(name string) (Config, error) {
	path, err := appConfigPath(name)
	if err != nil {
		return nil, err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read app config %s: %v", path, readErr)
		cfg = make(Config)
	}

	if readErr == nil && len(cfg) == 0 {
		if def := defaultAppConfig(name); def != nil {
			cfg = def
			if err := writeConfig(path, cfg); err != nil {
				log.Printf("Config: Failed to write default app config: %v", err)
				readErr = err
			}
		} else {
			cfg = make(Config)
		}
	}
	applyAppDefaults(name, cfg)

	if readErr == nil && exists {
		log.Printf("Config: Loaded app %q config from %s", name, path)
	}
	return cfg, readErr
}
