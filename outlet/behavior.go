// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: outlet/behavior.go
// Summary: Open, relocate, show, hide, toggle, focus and link.

package outlet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Open attaches the outlet to the pane for its default location without
// activating that pane, then reveals it. An outlet that is already in a
// pane is only revealed.
func (o *Outlet) Open(ctx context.Context) (*Outlet, error) {
	if o.Surface.IsDestroyed() {
		return o, ErrDestroyed
	}
	if err := ctx.Err(); err != nil {
		return o, err
	}
	if o.host.PaneForItem(o) != nil {
		o.reveal()
		return o, nil
	}
	pane := o.paneFor(o.defaultLocation)
	if pane == nil {
		return o, fmt.Errorf("open outlet %q: no pane for location %q", o.Title(), o.defaultLocation)
	}
	if err := o.host.Open(ctx, o, pane); err != nil {
		return o, fmt.Errorf("open outlet %q: %w", o.Title(), err)
	}
	o.reveal()
	return o, nil
}

// Relocate moves the outlet to the next allowed location and notifies
// relocation observers. With a single allowed location it does nothing.
func (o *Outlet) Relocate() {
	location, ok := o.nextLocation()
	if !ok || o.host.PaneForItem(o) == nil {
		return
	}
	dest := o.paneFor(location)
	if dest == nil {
		return
	}
	o.moveToPane(dest, false)
	o.reveal()
	o.relocated.notify()
}

// Show reveals the outlet, bringing it back to the center first if it was
// hidden from there.
func (o *Outlet) Show() {
	o.moveToCenterIfHidden()
	o.reveal()
}

func (o *Outlet) moveToCenterIfHidden() {
	if !o.state.HiddenInCenter {
		return
	}
	if !o.IsVisible() {
		o.moveToPane(o.paneFor(LocationCenter), false)
	}
	o.state.HiddenInCenter = false
}

// Hide hides the outlet and reports whether anything was hidden. Center
// panes cannot hide an item without destroying it, so a center outlet is
// parked at the end of the next allowed dock instead.
func (o *Outlet) Hide() bool {
	wasActive := o.IsActive()

	var hidden bool
	if o.Location() == LocationCenter {
		hidden = o.hideInCenter()
	} else {
		o.state.HiddenInCenter = false
		hidden = o.host.HideItem(o)
	}

	if hidden && wasActive {
		o.focusLinkedCenterPane()
	}
	return hidden
}

func (o *Outlet) hideInCenter() bool {
	location, ok := o.nextDockLocation()
	if !ok {
		return false
	}
	dock := o.host.Dock(location)
	if dock == nil {
		return false
	}
	pane := dock.ActivePane()
	if pane == nil {
		return false
	}
	previous := pane.ActiveItem()
	wasVisible := dock.IsVisible()

	// Observers of the move must already see the marker.
	o.state.HiddenInCenter = true
	o.moveToPane(pane, true)

	// A hidden dock keeps the outlet as its active item so the most
	// recently hidden outlet is the one shown next. A visible dock keeps
	// showing what it showed before.
	if wasVisible {
		if previous != nil {
			pane.ActivateItem(previous)
		}
	} else {
		dock.Hide()
	}
	return true
}

// Toggle hides the outlet when it is showing, otherwise shows it. It never
// moves focus to the outlet.
func (o *Outlet) Toggle() {
	if !o.Hide() {
		o.Show()
	}
}

// Focus shows the outlet, activates its pane and focuses it. The pane is
// activated first because focusing an item outside the active pane may
// fail without an activation notification.
func (o *Outlet) Focus() {
	o.moveToCenterIfHidden()
	o.reveal()
	if pane := o.host.PaneForItem(o); pane != nil {
		pane.Activate()
	}
	o.host.Focus(o)
}

// ToggleFocus moves focus away to the linked editor (or the center) when the
// outlet has it, otherwise focuses the outlet.
func (o *Outlet) ToggleFocus() {
	if o.host.HasFocus(o) {
		o.focusLinkedCenterPane()
		return
	}
	o.Focus()
}

// Link remembers editor as the companion kept visible while the outlet
// moves. Only center editors can be linked; anything else clears the link.
func (o *Outlet) Link(editor Item) {
	if editor != nil && locationOf(o.host, editor) == LocationCenter {
		o.state.LinkedEditor = editor.ItemID()
		return
	}
	o.state.LinkedEditor = uuid.Nil
}

// Unlink forgets the linked editor.
func (o *Outlet) Unlink() {
	o.state.LinkedEditor = uuid.Nil
}
