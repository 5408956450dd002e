// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: outlet/placement.go
// Summary: Host queries and pane resolution used by the placement logic.

package outlet

import "log"

func sameItem(a, b Item) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ItemID() == b.ItemID()
}

func locationOf(host Host, item Item) Location {
	pane := host.PaneForItem(item)
	if pane == nil {
		return ""
	}
	return pane.Location()
}

func isActiveItem(host Host, item Item) bool {
	pane := host.ActivePane()
	return pane != nil && sameItem(pane.ActiveItem(), item)
}

func isVisibleItem(host Host, item Item) bool {
	for _, pane := range host.VisiblePanes() {
		if sameItem(pane.ActiveItem(), item) {
			return true
		}
	}
	return false
}

// wrapIndex maps any index onto [0, length).
func wrapIndex(length, index int) int {
	if length == 0 {
		return -1
	}
	index %= length
	if index < 0 {
		index += length
	}
	return index
}

func (o *Outlet) currentIndex() int {
	current := o.Location()
	for i, loc := range o.allowed {
		if loc == current {
			return i
		}
	}
	return -1
}

// nextLocation is the allowed location after the current one.
func (o *Outlet) nextLocation() (Location, bool) {
	if len(o.allowed) <= 1 {
		return "", false
	}
	return o.allowed[wrapIndex(len(o.allowed), o.currentIndex()+1)], true
}

// nextDockLocation is the first dock among the allowed locations after the
// current one.
func (o *Outlet) nextDockLocation() (Location, bool) {
	if len(o.allowed) <= 1 {
		return "", false
	}
	start := o.currentIndex()
	for step := 1; step < len(o.allowed); step++ {
		loc := o.allowed[wrapIndex(len(o.allowed), start+step)]
		if loc.IsDock() {
			return loc, true
		}
	}
	return "", false
}

// moveToPane moves the outlet into dest and makes it dest's active item.
// The destination pane is activated only when the outlet was the active
// item, so moving never steals focus. Arriving in the center clears the
// hidden-in-center marker.
func (o *Outlet) moveToPane(dest Pane, toLast bool) {
	current := o.host.PaneForItem(o)
	if current == nil || dest == nil {
		log.Printf("Outlet: cannot move %q (current=%v dest=%v)", o.Title(), current != nil, dest != nil)
		return
	}
	wasActive := o.IsActive()
	index := -1
	if toLast {
		index = len(dest.Items())
	}
	current.MoveItem(o, dest, index)
	dest.ActivateItem(o)
	if dest.Location() == LocationCenter {
		o.state.HiddenInCenter = false
	}
	if wasActive {
		dest.Activate()
	}
}

// reveal makes the outlet the active item of its pane and shows its dock.
// Activating a dock pane alone does not show the dock.
func (o *Outlet) reveal() {
	pane := o.host.PaneForItem(o)
	if pane == nil {
		return
	}
	pane.ActivateItem(o)
	if loc := pane.Location(); loc.IsDock() {
		if dock := o.host.Dock(loc); dock != nil {
			dock.Show()
		}
	}
}

// paneFor resolves the pane the outlet should go to for location.
func (o *Outlet) paneFor(location Location) Pane {
	if location == LocationCenter {
		base := o.linkedCenterPane()
		if base == nil {
			base = o.host.CenterActivePane()
		}
		return o.centerPaneFor(base)
	}
	dock := o.host.Dock(location)
	if dock == nil {
		return nil
	}
	return dock.ActivePane()
}

func (o *Outlet) centerPaneFor(base Pane) Pane {
	if base == nil {
		return nil
	}
	if o.state.UseAdjacentPane {
		if pane := adjacentPane(base, o.state.Split.Axis()); pane != nil {
			return pane
		}
	}

	// Splitting may activate the new pane; put activation back.
	active := o.host.ActivePane()
	pane := base.Split(o.state.Split)
	if active != nil {
		active.Activate()
	}
	return pane
}

// adjacentPane returns the sibling right after base, else right before it,
// when base's parent is split along axis.
func adjacentPane(base Pane, axis Axis) Pane {
	siblings, index, parentAxis, ok := base.Siblings()
	if !ok || parentAxis != axis {
		return nil
	}
	for _, offset := range []int{+1, -1} {
		i := index + offset
		if i >= 0 && i < len(siblings) && siblings[i] != nil {
			return siblings[i]
		}
	}
	return nil
}

// linkedCenterPane returns the pane of the linked editor while that editor
// is still in the center.
func (o *Outlet) linkedCenterPane() Pane {
	id, ok := o.LinkedEditorID()
	if !ok {
		return nil
	}
	editor, found := o.host.FindItem(id)
	if !found {
		return nil
	}
	pane := o.host.PaneForItem(editor)
	if pane == nil || pane.Location() != LocationCenter {
		return nil
	}
	return pane
}

func (o *Outlet) focusLinkedCenterPane() {
	pane := o.linkedCenterPane()
	if pane == nil {
		pane = o.host.CenterActivePane()
	}
	if pane != nil {
		pane.Activate()
	}
}
