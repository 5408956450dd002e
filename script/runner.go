// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: script/runner.go
// Summary: Replays scenario steps against a workspace.

package script

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/framegrace/texeloutlet/outlet"
	"github.com/framegrace/texeloutlet/surface"
	"github.com/framegrace/texeloutlet/texel"
)

var (
	// ErrUnknownItem is returned when a step names an item that was never
	// created.
	ErrUnknownItem = errors.New("script: unknown item")
	// ErrExpectation is returned when an expect step does not hold.
	ErrExpectation = errors.New("script: expectation failed")
)

// Runner owns a workspace and the named editors and outlets created by
// scenario steps.
type Runner struct {
	ws      *texel.Workspace
	base    outlet.Options
	items   map[string]outlet.Item
	outlets map[string]*outlet.Outlet
}

// NewRunner replays onto ws. base is the starting point for every outlet
// step's options.
func NewRunner(ws *texel.Workspace, base outlet.Options) *Runner {
	return &Runner{
		ws:      ws,
		base:    base,
		items:   make(map[string]outlet.Item),
		outlets: make(map[string]*outlet.Outlet),
	}
}

// Workspace returns the workspace being driven.
func (r *Runner) Workspace() *texel.Workspace {
	return r.ws
}

// SetBase replaces the options later outlet steps start from.
func (r *Runner) SetBase(base outlet.Options) {
	r.base = base
}

// Outlet returns a named outlet.
func (r *Runner) Outlet(name string) (*outlet.Outlet, bool) {
	o, ok := r.outlets[name]
	return o, ok
}

// Item returns a named editor or outlet.
func (r *Runner) Item(name string) (outlet.Item, bool) {
	item, ok := r.items[name]
	return item, ok
}

// NameOf returns the name item was created under.
func (r *Runner) NameOf(item outlet.Item) (string, bool) {
	if item == nil {
		return "", false
	}
	for name, candidate := range r.items {
		if candidate.ItemID() == item.ItemID() {
			return name, true
		}
	}
	return "", false
}

// Run applies every step in order and stops at the first failure.
func (r *Runner) Run(ctx context.Context, sc *Scenario) error {
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Step(ctx, step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		if sc.Trace {
			log.Printf("Script: after step %d (%s)\n%s", i+1, step.Op, r.ws.Dump())
		}
	}
	return nil
}

// Step applies a single step.
func (r *Runner) Step(ctx context.Context, step Step) error {
	switch step.Op {
	case OpEditor:
		return r.openEditor(step)
	case OpOutlet:
		return r.openOutlet(ctx, step)
	case OpShowDock, OpHideDock:
		dock := r.ws.DockAt(outlet.Location(step.Name))
		if dock == nil {
			return fmt.Errorf("%w: dock %q", ErrUnknownItem, step.Name)
		}
		if step.Op == OpShowDock {
			dock.Show()
		} else {
			dock.Hide()
		}
		return nil
	case OpExpect:
		return r.expect(step)
	}

	item, ok := r.items[step.Target]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, step.Target)
	}
	switch step.Op {
	case OpActivate:
		r.ws.Focus(item)
		return nil
	case OpEdit:
		editable, ok := item.(interface{ InsertText(string) })
		if !ok {
			return fmt.Errorf("%q cannot be edited", step.Target)
		}
		editable.InsertText(step.Text)
		return nil
	case OpClose:
		if !r.ws.Dispatch(item, outlet.CommandClose) {
			r.ws.DestroyItem(item)
		}
		delete(r.items, step.Target)
		delete(r.outlets, step.Target)
		return nil
	}

	o, ok := r.outlets[step.Target]
	if !ok {
		return fmt.Errorf("%q is not an outlet", step.Target)
	}
	switch step.Op {
	case OpRelocate:
		o.Relocate()
	case OpShow:
		o.Show()
	case OpHide:
		o.Hide()
	case OpToggle:
		o.Toggle()
	case OpFocus:
		o.Focus()
	case OpToggleFocus:
		o.ToggleFocus()
	case OpLink:
		editor, ok := r.items[step.Editor]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownItem, step.Editor)
		}
		o.Link(editor)
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidScenario, step.Op)
	}
	return nil
}

func (r *Runner) openEditor(step Step) error {
	if _, exists := r.items[step.Name]; exists {
		return fmt.Errorf("%w: duplicate name %q", ErrInvalidScenario, step.Name)
	}
	opts := surface.DefaultOptions()
	opts.Path = step.Name
	opts.Text = step.Text
	editor := surface.New(opts)
	if _, err := r.ws.OpenInCenter(editor, outlet.SplitDirection(step.Split)); err != nil {
		return err
	}
	r.items[step.Name] = editor
	return nil
}

func (r *Runner) openOutlet(ctx context.Context, step Step) error {
	if _, exists := r.items[step.Name]; exists {
		return fmt.Errorf("%w: duplicate name %q", ErrInvalidScenario, step.Name)
	}
	opts := step.Options.Apply(r.base)
	if opts.Title == "" {
		opts.Title = step.Name
	}
	if step.Text != "" {
		opts.Surface.Text = step.Text
	}
	o, err := outlet.Create(r.ws, opts)
	if err != nil {
		return err
	}
	if _, err := o.Open(ctx); err != nil {
		return err
	}
	r.items[step.Name] = o
	r.outlets[step.Name] = o
	return nil
}

func (r *Runner) expect(step Step) error {
	exp := step.Expect
	var failures []string
	fail := func(format string, args ...interface{}) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	if exp.Focus != "" {
		item, ok := r.items[exp.Focus]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownItem, exp.Focus)
		}
		if !r.ws.HasFocus(item) {
			fail("focus: want %s, have %s", exp.Focus, r.focusName())
		}
	}
	if exp.CenterPanes != nil {
		if got := len(r.ws.Center().Panes()); got != *exp.CenterPanes {
			fail("center panes: want %d, have %d", *exp.CenterPanes, got)
		}
	}
	for name, want := range exp.Docks {
		dock := r.ws.DockAt(outlet.Location(name))
		if dock == nil {
			return fmt.Errorf("%w: dock %q", ErrUnknownItem, name)
		}
		if dock.IsVisible() != want {
			fail("dock %s visible: want %v", name, want)
		}
	}

	if step.Target != "" {
		item, ok := r.items[step.Target]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownItem, step.Target)
		}
		if exp.Location != "" {
			got := "none"
			if pane := r.ws.PaneForItem(item); pane != nil {
				got = string(pane.Location())
			}
			if got != exp.Location {
				fail("%s location: want %s, have %s", step.Target, exp.Location, got)
			}
		}
		if exp.Visible != nil && r.ws.IsVisibleItem(item) != *exp.Visible {
			fail("%s visible: want %v", step.Target, *exp.Visible)
		}
		if exp.HiddenInCenter != nil {
			o, ok := r.outlets[step.Target]
			if !ok {
				return fmt.Errorf("%q is not an outlet", step.Target)
			}
			if o.HiddenInCenter() != *exp.HiddenInCenter {
				fail("%s hidden in center: want %v", step.Target, *exp.HiddenInCenter)
			}
		}
		if exp.Text != nil || exp.Modified != nil {
			s, ok := item.(interface {
				Text() string
				IsModified() bool
			})
			if !ok {
				return fmt.Errorf("%q has no buffer", step.Target)
			}
			if exp.Text != nil && s.Text() != *exp.Text {
				fail("%s text: want %q, have %q", step.Target, *exp.Text, s.Text())
			}
			if exp.Modified != nil && s.IsModified() != *exp.Modified {
				fail("%s modified: want %v", step.Target, *exp.Modified)
			}
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%w: %s", ErrExpectation, strings.Join(failures, "; "))
	}
	return nil
}

func (r *Runner) focusName() string {
	active := r.ws.ActiveItem()
	if active == nil {
		return "nothing"
	}
	if name, ok := r.NameOf(active); ok {
		return name
	}
	return active.Title()
}
