// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: outlet/options.go
// Summary: Outlet construction options, defaults and validation.

package outlet

import (
	"errors"
	"fmt"

	"github.com/framegrace/texeloutlet/config"
	"github.com/framegrace/texeloutlet/surface"
)

// ConfigSection is the app config section outlet defaults are read from.
const ConfigSection = "outlet"

// ErrInvalidOptions is returned by Create when options cannot be used.
var ErrInvalidOptions = errors.New("outlet: invalid options")

// Options configure a new outlet.
type Options struct {
	// AllowedLocations is cycled through by Relocate.
	AllowedLocations []Location
	// DefaultLocation is where Open places the outlet.
	DefaultLocation Location
	// Split is the direction used when a new center pane is needed.
	Split SplitDirection
	// Title overrides the surface title when non-empty.
	Title string
	// TrackModified lets edits mark the outlet modified.
	TrackModified bool
	ClassList     []string
	// UseAdjacentPane prefers an existing sibling pane over splitting.
	UseAdjacentPane bool
	// Surface is passed through to surface.New.
	Surface surface.Options
}

// DefaultOptions returns the options an outlet gets when the caller does
// not override anything.
func DefaultOptions() Options {
	return Options{
		AllowedLocations: []Location{LocationCenter, LocationBottom},
		DefaultLocation:  LocationBottom,
		Split:            SplitRight,
		TrackModified:    false,
		UseAdjacentPane:  true,
		Surface:          surface.DefaultOptions(),
	}
}

// OptionsFromConfig starts from DefaultOptions and applies the keys of the
// "outlet" section of cfg.
func OptionsFromConfig(cfg config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}

	if raw := cfg.GetStringSlice(ConfigSection, "allowed_locations", nil); len(raw) > 0 {
		locations := make([]Location, 0, len(raw))
		for _, name := range raw {
			locations = append(locations, Location(name))
		}
		opts.AllowedLocations = locations
	}
	opts.DefaultLocation = Location(cfg.GetString(ConfigSection, "default_location", string(opts.DefaultLocation)))
	opts.Split = SplitDirection(cfg.GetString(ConfigSection, "split", string(opts.Split)))
	opts.UseAdjacentPane = cfg.GetBool(ConfigSection, "use_adjacent_pane", opts.UseAdjacentPane)
	opts.TrackModified = cfg.GetBool(ConfigSection, "track_modified", opts.TrackModified)
	opts.ClassList = cfg.GetStringSlice(ConfigSection, "class_list", opts.ClassList)
	opts.Surface.LineNumberGutterVisible = cfg.GetBool(ConfigSection, "line_numbers", opts.Surface.LineNumberGutterVisible)
	return opts
}

// Validate reports the first problem that would make the outlet unusable.
func (o Options) Validate() error {
	if len(o.AllowedLocations) == 0 {
		return fmt.Errorf("%w: no allowed locations", ErrInvalidOptions)
	}
	for _, loc := range o.AllowedLocations {
		if !loc.Valid() {
			return fmt.Errorf("%w: unknown allowed location %q", ErrInvalidOptions, loc)
		}
	}
	if !o.DefaultLocation.Valid() {
		return fmt.Errorf("%w: unknown default location %q", ErrInvalidOptions, o.DefaultLocation)
	}
	if !o.Split.Valid() {
		return fmt.Errorf("%w: unknown split direction %q", ErrInvalidOptions, o.Split)
	}
	return nil
}
