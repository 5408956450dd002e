// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/container.go
// Summary: Pane containers for the center area and the three docks.
// Usage: Docks implement outlet.Dock; the center is always visible.

package texel

import (
	"github.com/framegrace/texeloutlet/outlet"
)

// Container owns a pane tree at one workspace location.
type Container struct {
	ws       *Workspace
	location outlet.Location
	tree     *Tree
	visible  bool
}

var _ outlet.Dock = (*Container)(nil)

func newContainer(ws *Workspace, loc outlet.Location) *Container {
	c := &Container{
		ws:       ws,
		location: loc,
		visible:  loc == outlet.LocationCenter,
	}
	c.tree = NewTree(newPane(c))
	return c
}

// Location returns where the container lives.
func (c *Container) Location() outlet.Location {
	return c.location
}

// Tree exposes the layout tree.
func (c *Container) Tree() *Tree {
	return c.tree
}

// IsCenter reports whether this is the center area.
func (c *Container) IsCenter() bool {
	return c.location == outlet.LocationCenter
}

// ActivePane returns the container's most recently activated pane.
func (c *Container) ActivePane() outlet.Pane {
	if p := c.activeLeafPane(); p != nil {
		return p
	}
	return nil
}

func (c *Container) activeLeafPane() *Pane {
	if c.tree.ActiveLeaf == nil {
		return nil
	}
	return c.tree.ActiveLeaf.Pane
}

// ActivePaneItem returns the active item of the active pane.
func (c *Container) ActivePaneItem() outlet.Item {
	if p := c.activeLeafPane(); p != nil {
		return p.ActiveItem()
	}
	return nil
}

// Panes returns the container's panes in layout order.
func (c *Container) Panes() []*Pane {
	return c.tree.Leaves()
}

// Items returns every item in the container.
func (c *Container) Items() []outlet.Item {
	var items []outlet.Item
	for _, p := range c.Panes() {
		items = append(items, p.items...)
	}
	return items
}

// IsVisible reports whether the container is shown. The center always is.
func (c *Container) IsVisible() bool {
	return c.visible
}

// Show makes a dock visible.
func (c *Container) Show() {
	if c.visible {
		return
	}
	c.visible = true
	c.ws.debugf("Dock.Show: %s", c.location)
	c.ws.Broadcast(Event{Type: EventDockVisibilityChanged, Payload: DockEvent{Location: c.location, Visible: true}})
}

// Hide hides a dock. If the dock held the active pane, activation returns
// to the center. The center cannot be hidden.
func (c *Container) Hide() {
	if c.IsCenter() || !c.visible {
		return
	}
	c.visible = false
	c.ws.debugf("Dock.Hide: %s", c.location)
	c.ws.Broadcast(Event{Type: EventDockVisibilityChanged, Payload: DockEvent{Location: c.location, Visible: false}})
	if c.ws.activeContainer == c {
		if p := c.ws.center.activeLeafPane(); p != nil {
			p.Activate()
		}
	}
}

// Toggle flips a dock's visibility.
func (c *Container) Toggle() {
	if c.visible {
		c.Hide()
	} else {
		c.Show()
	}
}

func (c *Container) activatePane(p *Pane) {
	node := c.tree.FindNodeWithPane(p)
	if node == nil {
		return
	}
	changed := c.tree.ActiveLeaf != node || c.ws.activeContainer != c
	c.tree.ActiveLeaf = node
	c.ws.activeContainer = c
	if changed {
		c.ws.Broadcast(Event{Type: EventPaneActiveChanged, Payload: p})
	}
}

// paneEmptied destroys a pane that lost its last item unless it is the
// container's only pane. A dock with no items left hides itself.
func (c *Container) paneEmptied(p *Pane) {
	node := c.tree.FindNodeWithPane(p)
	if node != nil && node.Parent != nil {
		wasActive := c.ws.activePane() == p
		next := c.tree.RemoveLeaf(node)
		p.destroyed = true
		c.ws.debugf("Container.paneEmptied: destroyed empty pane %s in %s", p.id, c.location)
		c.ws.Broadcast(Event{Type: EventPaneDestroyed, Payload: p})
		c.ws.Broadcast(Event{Type: EventTreeChanged, Payload: c})
		if wasActive && next != nil && next.Pane != nil {
			next.Pane.Activate()
		}
	}
	if !c.IsCenter() && len(c.Items()) == 0 {
		c.Hide()
	}
}
