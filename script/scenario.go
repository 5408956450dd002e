// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: script/scenario.go
// Summary: YAML scenario files describing outlet placement sessions.
// Usage: Parse or Load a scenario, then replay it with a Runner.

package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/framegrace/texeloutlet/outlet"
	"gopkg.in/yaml.v3"
)

// Step operations.
const (
	OpEditor      = "editor"
	OpOutlet      = "outlet"
	OpActivate    = "activate"
	OpRelocate    = "relocate"
	OpShow        = "show"
	OpHide        = "hide"
	OpToggle      = "toggle"
	OpFocus       = "focus"
	OpToggleFocus = "toggle-focus"
	OpLink        = "link"
	OpEdit        = "edit"
	OpClose       = "close"
	OpShowDock    = "show-dock"
	OpHideDock    = "hide-dock"
	OpExpect      = "expect"
)

// ErrInvalidScenario is returned for scenarios that cannot be replayed.
var ErrInvalidScenario = errors.New("script: invalid scenario")

// Scenario is a named list of steps.
type Scenario struct {
	Name string `yaml:"name"`
	// Trace logs the layout after every step.
	Trace bool   `yaml:"trace"`
	Steps []Step `yaml:"steps"`
}

// Step is one operation. Which fields apply depends on Op:
//
//	editor:       name, split, text
//	outlet:       name, options
//	link:         target, editor
//	edit:         target, text
//	show-dock:    name (dock location)
//	expect:       target, expect
//
// The placement operations (relocate, show, hide, toggle, focus,
// toggle-focus), activate and close only use target.
type Step struct {
	Op      string         `yaml:"op"`
	Name    string         `yaml:"name,omitempty"`
	Target  string         `yaml:"target,omitempty"`
	Split   string         `yaml:"split,omitempty"`
	Text    string         `yaml:"text,omitempty"`
	Editor  string         `yaml:"editor,omitempty"`
	Options *OutletOptions `yaml:"options,omitempty"`
	Expect  *Expectation   `yaml:"expect,omitempty"`
}

// OutletOptions overrides the configured outlet options for one outlet.
type OutletOptions struct {
	AllowedLocations []string `yaml:"allowed_locations,omitempty"`
	DefaultLocation  string   `yaml:"default_location,omitempty"`
	Split            string   `yaml:"split,omitempty"`
	UseAdjacentPane  *bool    `yaml:"use_adjacent_pane,omitempty"`
	Title            string   `yaml:"title,omitempty"`
	TrackModified    *bool    `yaml:"track_modified,omitempty"`
	ClassList        []string `yaml:"class_list,omitempty"`
	LineNumbers      *bool    `yaml:"line_numbers,omitempty"`
}

// Apply overlays the set fields onto opts.
func (o *OutletOptions) Apply(opts outlet.Options) outlet.Options {
	if o == nil {
		return opts
	}
	if len(o.AllowedLocations) > 0 {
		opts.AllowedLocations = make([]outlet.Location, len(o.AllowedLocations))
		for i, loc := range o.AllowedLocations {
			opts.AllowedLocations[i] = outlet.Location(loc)
		}
	}
	if o.DefaultLocation != "" {
		opts.DefaultLocation = outlet.Location(o.DefaultLocation)
	}
	if o.Split != "" {
		opts.Split = outlet.SplitDirection(o.Split)
	}
	if o.UseAdjacentPane != nil {
		opts.UseAdjacentPane = *o.UseAdjacentPane
	}
	if o.Title != "" {
		opts.Title = o.Title
	}
	if o.TrackModified != nil {
		opts.TrackModified = *o.TrackModified
	}
	if len(o.ClassList) > 0 {
		opts.ClassList = append([]string(nil), o.ClassList...)
	}
	if o.LineNumbers != nil {
		opts.Surface.LineNumberGutterVisible = *o.LineNumbers
	}
	return opts
}

// Expectation is checked by an expect step. Unset fields are not checked.
type Expectation struct {
	// Focus names the item that must have focus.
	Focus string `yaml:"focus,omitempty"`
	// Location is where the target must be; "none" means detached.
	Location string `yaml:"location,omitempty"`
	// Visible is whether the target is the shown item of a visible pane.
	Visible *bool `yaml:"visible,omitempty"`
	// HiddenInCenter checks the target outlet's marker.
	HiddenInCenter *bool `yaml:"hidden_in_center,omitempty"`
	// CenterPanes is the number of center panes.
	CenterPanes *int `yaml:"center_panes,omitempty"`
	// Docks maps dock locations to their expected visibility.
	Docks map[string]bool `yaml:"docks,omitempty"`
	// Text is the target's expected buffer content.
	Text *string `yaml:"text,omitempty"`
	// Modified is the target's expected modified flag.
	Modified *bool `yaml:"modified,omitempty"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario and validates it. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks that every step has what its operation needs.
func (sc *Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidScenario)
	}
	for i, step := range sc.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("%w: step %d (%s): %v", ErrInvalidScenario, i+1, step.Op, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.Op {
	case OpEditor, OpOutlet:
		if s.Name == "" {
			return errors.New("name is required")
		}
		if s.Split != "" && !outlet.SplitDirection(s.Split).Valid() {
			return fmt.Errorf("unknown split %q", s.Split)
		}
	case OpShowDock, OpHideDock:
		if !outlet.Location(s.Name).IsDock() {
			return fmt.Errorf("%q is not a dock", s.Name)
		}
	case OpLink:
		if s.Target == "" || s.Editor == "" {
			return errors.New("target and editor are required")
		}
	case OpExpect:
		if s.Expect == nil {
			return errors.New("expect is required")
		}
		needsTarget := s.Expect.Location != "" || s.Expect.Visible != nil || s.Expect.HiddenInCenter != nil ||
			s.Expect.Text != nil || s.Expect.Modified != nil
		if needsTarget && s.Target == "" {
			return errors.New("target is required")
		}
	case OpActivate, OpRelocate, OpShow, OpHide, OpToggle, OpFocus, OpToggleFocus, OpEdit, OpClose:
		if s.Target == "" {
			return errors.New("target is required")
		}
	case "":
		return errors.New("op is required")
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}
