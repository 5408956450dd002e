// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: outlet/host.go
// Summary: Host windowing contract the outlet placement logic drives.
// Usage: Implemented by texel.Workspace; tests may substitute their own host.

package outlet

import (
	"context"

	"github.com/google/uuid"
)

// Location is where a pane container lives in the workspace.
type Location string

const (
	LocationCenter Location = "center"
	LocationLeft   Location = "left"
	LocationRight  Location = "right"
	LocationBottom Location = "bottom"
)

// Valid reports whether l is one of the known locations.
func (l Location) Valid() bool {
	switch l {
	case LocationCenter, LocationLeft, LocationRight, LocationBottom:
		return true
	}
	return false
}

// IsDock reports whether l names a dock rather than the center area.
func (l Location) IsDock() bool {
	return l.Valid() && l != LocationCenter
}

// Axis is the arrangement of a split node's children.
type Axis int

const (
	// AxisRow lays children out side by side.
	AxisRow Axis = iota
	// AxisColumn stacks children top to bottom.
	AxisColumn
)

// SplitDirection tells the host on which side of a pane a new pane goes.
type SplitDirection string

const (
	SplitLeft  SplitDirection = "left"
	SplitRight SplitDirection = "right"
	SplitUp    SplitDirection = "up"
	SplitDown  SplitDirection = "down"
)

// Valid reports whether d is one of the four split directions.
func (d SplitDirection) Valid() bool {
	switch d {
	case SplitLeft, SplitRight, SplitUp, SplitDown:
		return true
	}
	return false
}

// Axis returns the axis a split in this direction creates.
func (d SplitDirection) Axis() Axis {
	if d == SplitUp || d == SplitDown {
		return AxisColumn
	}
	return AxisRow
}

// Before reports whether the new pane is placed before the split pane.
func (d SplitDirection) Before() bool {
	return d == SplitLeft || d == SplitUp
}

// Item is anything a pane can hold.
type Item interface {
	ItemID() uuid.UUID
	Title() string
}

// Pane holds an ordered list of items, one of which is active.
type Pane interface {
	Location() Location
	Items() []Item
	ActiveItem() Item
	ActivateItem(item Item)
	// Activate makes this pane the workspace's active pane.
	Activate()
	IsActive() bool
	// MoveItem moves item from this pane into dest at index. A negative
	// index lets the host pick its default insertion point.
	MoveItem(item Item, dest Pane, index int)
	// Split creates an empty pane next to this one. Hosts may activate
	// the new pane.
	Split(dir SplitDirection) Pane
	// Siblings returns the children of this pane's parent split in order,
	// with nil entries for children that are nested splits, this pane's
	// index among them and the parent's axis. ok is false for a root pane.
	Siblings() (siblings []Pane, index int, axis Axis, ok bool)
	IsDestroyed() bool
}

// Dock is a showable side or bottom container.
type Dock interface {
	Location() Location
	ActivePane() Pane
	Show()
	Hide()
	IsVisible() bool
}

// Host is the windowing runtime an outlet is placed into.
type Host interface {
	PaneForItem(item Item) Pane
	Dock(loc Location) Dock
	CenterActivePane() Pane
	// ActivePane is the active pane of the active container.
	ActivePane() Pane
	// VisiblePanes lists center panes and the panes of visible docks.
	VisiblePanes() []Pane
	FindItem(id uuid.UUID) (Item, bool)
	// Open attaches item to pane without activating the pane and returns
	// once the item is part of the pane.
	Open(ctx context.Context, item Item, pane Pane) error
	// HideItem hides item through the host's own mechanism and reports
	// whether anything was hidden.
	HideItem(item Item) bool
	// DestroyItem removes item from whatever pane holds it.
	DestroyItem(item Item)
	HasFocus(item Item) bool
	Focus(item Item)
	// AddCommand registers a named command scoped to item. The returned
	// function removes it.
	AddCommand(item Item, name string, fn func()) func()
}
