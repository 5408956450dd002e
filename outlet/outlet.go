// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: outlet/outlet.go
// Summary: Outlet factory and placement state record.
// Usage: Create an outlet against a Host, then Open, Relocate, Hide, Show
// or Focus it.

package outlet

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/framegrace/texeloutlet/surface"
	"github.com/google/uuid"
)

// CommandClose is the command an outlet registers to destroy itself.
const CommandClose = "core:close"

// ErrDestroyed is returned when opening an outlet that was destroyed.
var ErrDestroyed = errors.New("outlet: destroyed")

// Behaviors is the fixed set of placement operations every outlet has.
type Behaviors interface {
	Open(ctx context.Context) (*Outlet, error)
	Relocate()
	Show()
	Hide() bool
	Toggle()
	Focus()
	ToggleFocus()
	Link(editor Item)
	OnDidRelocate(fn func()) (unsubscribe func())
}

var _ Behaviors = (*Outlet)(nil)
var _ Item = (*Outlet)(nil)

// State is the placement bookkeeping an outlet carries for its lifetime.
type State struct {
	// Split and UseAdjacentPane are the durable placement preferences.
	Split           SplitDirection
	UseAdjacentPane bool
	// HiddenInCenter is set while a center outlet is parked in a dock to
	// emulate hiding.
	HiddenInCenter bool
	// LinkedEditor is the companion editor, uuid.Nil when unlinked.
	LinkedEditor uuid.UUID
}

// Outlet is an editable surface with placement behavior.
type Outlet struct {
	*surface.Surface

	host            Host
	allowed         []Location
	defaultLocation Location
	state           State
	relocated       observers
	removeClose     func()
}

// Create builds an outlet for host. The outlet is not placed anywhere
// until Open is called.
func Create(host Host, opts Options) (*Outlet, error) {
	if host == nil {
		return nil, fmt.Errorf("%w: nil host", ErrInvalidOptions)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	s := surface.New(opts.Surface)
	if opts.Title != "" {
		s.SetTitle(opts.Title)
	}
	s.SetTrackModified(opts.TrackModified)
	s.AddClass(opts.ClassList...)

	o := &Outlet{
		Surface:         s,
		host:            host,
		allowed:         append([]Location(nil), opts.AllowedLocations...),
		defaultLocation: opts.DefaultLocation,
		state: State{
			Split:           opts.Split,
			UseAdjacentPane: opts.UseAdjacentPane,
		},
	}
	o.removeClose = host.AddCommand(o, CommandClose, o.Destroy)
	return o, nil
}

// IsOutlet reports whether item is an outlet.
func IsOutlet(item Item) bool {
	_, ok := item.(*Outlet)
	return ok
}

// AllowedLocations returns a copy of the locations Relocate cycles through.
func (o *Outlet) AllowedLocations() []Location {
	return append([]Location(nil), o.allowed...)
}

// DefaultLocation returns where Open places the outlet.
func (o *Outlet) DefaultLocation() Location {
	return o.defaultLocation
}

// State returns a snapshot of the placement state.
func (o *Outlet) State() State {
	return o.state
}

// HiddenInCenter reports whether the outlet is parked in a dock after
// being hidden from the center.
func (o *Outlet) HiddenInCenter() bool {
	return o.state.HiddenInCenter
}

// LinkedEditorID returns the linked companion's identity, if any.
func (o *Outlet) LinkedEditorID() (uuid.UUID, bool) {
	return o.state.LinkedEditor, o.state.LinkedEditor != uuid.Nil
}

// Location returns the location of the pane holding the outlet, or "" when
// the outlet is not in any pane.
func (o *Outlet) Location() Location {
	return locationOf(o.host, o)
}

// IsActive reports whether the outlet is the active item of the active pane.
func (o *Outlet) IsActive() bool {
	return isActiveItem(o.host, o)
}

// IsVisible reports whether the outlet is the active item of a visible pane.
func (o *Outlet) IsVisible() bool {
	return isVisibleItem(o.host, o)
}

// Destroy removes the outlet from its pane and destroys the surface.
func (o *Outlet) Destroy() {
	if o.Surface.IsDestroyed() {
		return
	}
	if o.removeClose != nil {
		o.removeClose()
		o.removeClose = nil
	}
	o.host.DestroyItem(o)
	o.Surface.Destroy()
	log.Printf("Outlet: destroyed %q", o.Title())
}
