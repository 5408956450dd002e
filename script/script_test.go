// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package script

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/framegrace/texeloutlet/outlet"
	"github.com/framegrace/texeloutlet/texel"
)

func runScenario(t *testing.T, sc *Scenario) (*Runner, error) {
	t.Helper()
	r := NewRunner(texel.NewWorkspace(), outlet.DefaultOptions())
	return r, r.Run(context.Background(), sc)
}

func TestTestdataScenarios(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no scenarios found")
	}
	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			sc, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if _, err := runScenario(t, sc); err != nil {
				t.Fatalf("Run: %v", err)
			}
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - op: editor\n    name: a\n    colour: red\n"))
	if !errors.Is(err, ErrInvalidScenario) {
		t.Fatalf("expected ErrInvalidScenario, got %v", err)
	}
}

func TestParseValidatesSteps(t *testing.T) {
	cases := map[string]string{
		"empty":          "name: nothing\n",
		"unknown op":     "steps:\n  - op: explode\n",
		"missing op":     "steps:\n  - name: a\n",
		"missing name":   "steps:\n  - op: editor\n",
		"bad split":      "steps:\n  - op: editor\n    name: a\n    split: sideways\n",
		"missing target": "steps:\n  - op: relocate\n",
		"bad dock":       "steps:\n  - op: show-dock\n    name: center\n",
		"link editor":    "steps:\n  - op: link\n    target: o\n",
		"expect body":    "steps:\n  - op: expect\n",
		"expect target":  "steps:\n  - op: expect\n    expect:\n      location: center\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); !errors.Is(err, ErrInvalidScenario) {
			t.Errorf("%s: expected ErrInvalidScenario, got %v", name, err)
		}
	}
}

func TestRunReportsFailingStep(t *testing.T) {
	sc, err := Parse([]byte(`
steps:
  - op: editor
    name: a.txt
  - op: outlet
    name: out
  - op: expect
    target: out
    expect:
      location: center
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = runScenario(t, sc)
	if !errors.Is(err, ErrExpectation) {
		t.Fatalf("expected ErrExpectation, got %v", err)
	}
	if !strings.Contains(err.Error(), "step 3 (expect)") || !strings.Contains(err.Error(), "have bottom") {
		t.Fatalf("expected the failing step and location in the error, got %v", err)
	}
}

func TestRunUnknownTarget(t *testing.T) {
	sc, err := Parse([]byte("steps:\n  - op: relocate\n    target: ghost\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := runScenario(t, sc); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

func TestRunRejectsPlacementOnEditors(t *testing.T) {
	sc, err := Parse([]byte("steps:\n  - op: editor\n    name: a\n  - op: hide\n    target: a\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := runScenario(t, sc); err == nil || !strings.Contains(err.Error(), "not an outlet") {
		t.Fatalf("expected not-an-outlet error, got %v", err)
	}
}

func TestRunOutletOptionsAndDocks(t *testing.T) {
	sc, err := Parse([]byte(`
steps:
  - op: editor
    name: main.go
  - op: outlet
    name: tree
    options:
      allowed_locations: [left, right]
      default_location: left
      title: Project
  - op: expect
    target: tree
    expect:
      location: left
      docks: {left: true, right: false}
  - op: relocate
    target: tree
  - op: expect
    target: tree
    expect:
      location: right
      docks: {left: false, right: true}
  - op: hide-dock
    name: right
  - op: expect
    target: tree
    expect:
      visible: false
  - op: show-dock
    name: right
  - op: expect
    target: tree
    expect:
      visible: true
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r, err := runScenario(t, sc)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	o, ok := r.Outlet("tree")
	if !ok || o.Title() != "Project" {
		t.Fatalf("expected titled outlet")
	}
}

func TestRunCanceledContext(t *testing.T) {
	sc, err := Parse([]byte("steps:\n  - op: editor\n    name: a\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(texel.NewWorkspace(), outlet.DefaultOptions())
	if err := r.Run(ctx, sc); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, ok := r.Item("a"); ok {
		t.Fatalf("canceled run must not apply steps")
	}
}

func TestOutletOptionsApply(t *testing.T) {
	yes, no := true, false
	opts := (&OutletOptions{
		AllowedLocations: []string{"center", "right"},
		Split:            "down",
		UseAdjacentPane:  &no,
		TrackModified:    &yes,
		LineNumbers:      &no,
	}).Apply(outlet.DefaultOptions())

	if len(opts.AllowedLocations) != 2 || opts.AllowedLocations[1] != outlet.LocationRight {
		t.Fatalf("unexpected allowed locations %v", opts.AllowedLocations)
	}
	if opts.Split != outlet.SplitDown || opts.UseAdjacentPane || !opts.TrackModified || opts.Surface.LineNumberGutterVisible {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.DefaultLocation != outlet.LocationBottom {
		t.Fatalf("unset fields must keep the base value")
	}
	var nilOpts *OutletOptions
	if got := nilOpts.Apply(outlet.DefaultOptions()); got.Split != outlet.SplitRight {
		t.Fatalf("nil overrides must return the base options")
	}
}
