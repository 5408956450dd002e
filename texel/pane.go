// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/pane.go
// Summary: Panes hold an ordered list of items with one active item.
// Usage: Leaves of a container's layout tree; implements outlet.Pane.

package texel

import (
	"fmt"
	"strings"

	"github.com/framegrace/texeloutlet/outlet"
	"github.com/google/uuid"
)

// Pane represents a rectangular area that shows one of its items at a time.
type Pane struct {
	absX0, absY0, absX1, absY1 int

	id        uuid.UUID
	container *Container
	items     []outlet.Item
	active    outlet.Item
	destroyed bool
}

var _ outlet.Pane = (*Pane)(nil)

func newPane(c *Container) *Pane {
	return &Pane{id: uuid.New(), container: c}
}

// ID returns the pane identity.
func (p *Pane) ID() uuid.UUID {
	return p.id
}

// Container returns the container the pane belongs to.
func (p *Pane) Container() *Container {
	return p.container
}

// Location returns the location of the pane's container.
func (p *Pane) Location() outlet.Location {
	return p.container.location
}

// Items returns a copy of the pane's items in tab order.
func (p *Pane) Items() []outlet.Item {
	return append([]outlet.Item(nil), p.items...)
}

// ActiveItem returns the item shown by the pane, or nil when empty.
func (p *Pane) ActiveItem() outlet.Item {
	if p.active == nil {
		return nil
	}
	return p.active
}

// ActivateItem makes item the pane's shown item. Items not in the pane are
// ignored.
func (p *Pane) ActivateItem(item outlet.Item) {
	if item == nil || p.indexOf(item) == -1 {
		return
	}
	if p.active != nil && p.active.ItemID() == item.ItemID() {
		return
	}
	p.active = item
	p.container.ws.Broadcast(Event{Type: EventActiveItemChanged, Payload: ItemEvent{Pane: p, Item: item, Index: p.indexOf(item)}})
}

// Activate makes this pane the active pane of its container and the
// container the active one of the workspace.
func (p *Pane) Activate() {
	if p.destroyed {
		return
	}
	p.container.activatePane(p)
}

// IsActive reports whether this is the workspace's active pane.
func (p *Pane) IsActive() bool {
	return p.container.ws.activePane() == p
}

// MoveItem moves item from this pane into dest at index; a negative index
// inserts after dest's active item.
func (p *Pane) MoveItem(item outlet.Item, dest outlet.Pane, index int) {
	target, ok := dest.(*Pane)
	if !ok || target == nil || target.container.ws != p.container.ws {
		p.container.ws.debugf("Pane.MoveItem: destination is not a pane of this workspace")
		return
	}
	if p.indexOf(item) == -1 {
		return
	}
	if target == p {
		p.reorder(item, index)
		return
	}
	p.removeItem(item, true)
	target.addItem(item, index, true)
}

// Split creates an empty pane on the dir side of this one and activates it.
func (p *Pane) Split(dir outlet.SplitDirection) outlet.Pane {
	if p.destroyed {
		return nil
	}
	tree := p.container.tree
	node := tree.FindNodeWithPane(p)
	if node == nil {
		return nil
	}
	created := newPane(p.container)
	if tree.SplitLeaf(node, dir, created) == nil {
		return nil
	}
	p.container.ws.debugf("Pane.Split: %s split %s of pane %s", dir, p.container.location, p.id)
	p.container.ws.Broadcast(Event{Type: EventTreeChanged, Payload: p.container})
	created.Activate()
	return created
}

// Siblings reports the panes sharing this pane's parent split.
func (p *Pane) Siblings() ([]outlet.Pane, int, outlet.Axis, bool) {
	node := p.container.tree.FindNodeWithPane(p)
	if node == nil || node.Parent == nil {
		return nil, -1, outlet.AxisRow, false
	}
	parent := node.Parent
	siblings := make([]outlet.Pane, len(parent.Children))
	index := -1
	for i, child := range parent.Children {
		if child == node {
			index = i
		}
		if child.Pane != nil {
			siblings[i] = child.Pane
		}
	}
	return siblings, index, parent.Split.axis(), true
}

// IsDestroyed reports whether the pane was removed from its container.
func (p *Pane) IsDestroyed() bool {
	return p.destroyed
}

func (p *Pane) indexOf(item outlet.Item) int {
	if item == nil {
		return -1
	}
	id := item.ItemID()
	for i, it := range p.items {
		if it.ItemID() == id {
			return i
		}
	}
	return -1
}

func (p *Pane) activeIndex() int {
	return p.indexOf(p.active)
}

// addItem inserts item at index, or after the active item when index is
// negative. An empty pane activates the added item.
func (p *Pane) addItem(item outlet.Item, index int, moved bool) {
	if index < 0 {
		index = p.activeIndex() + 1
	}
	if index > len(p.items) {
		index = len(p.items)
	}
	p.items = append(p.items, nil)
	copy(p.items[index+1:], p.items[index:])
	p.items[index] = item
	if p.active == nil {
		p.active = item
	}
	p.container.ws.Broadcast(Event{Type: EventItemAdded, Payload: ItemEvent{Pane: p, Item: item, Index: index, Moved: moved}})
}

// removeItem drops item. When it was active, the next item (or previous for
// any but the first) becomes active. An emptied pane is handed back to its
// container.
func (p *Pane) removeItem(item outlet.Item, moved bool) {
	index := p.indexOf(item)
	if index == -1 {
		return
	}
	wasActive := index == p.activeIndex()
	p.items = append(p.items[:index], p.items[index+1:]...)
	if wasActive {
		switch {
		case len(p.items) == 0:
			p.active = nil
		case index == 0:
			p.active = p.items[0]
		default:
			p.active = p.items[index-1]
		}
	}
	p.container.ws.Broadcast(Event{Type: EventItemRemoved, Payload: ItemEvent{Pane: p, Item: item, Index: index, Moved: moved}})
	if len(p.items) == 0 {
		p.container.paneEmptied(p)
	}
}

func (p *Pane) reorder(item outlet.Item, index int) {
	from := p.indexOf(item)
	p.items = append(p.items[:from], p.items[from+1:]...)
	if index < 0 || index > len(p.items) {
		index = len(p.items)
	}
	p.items = append(p.items, nil)
	copy(p.items[index+1:], p.items[index:])
	p.items[index] = item
}

func (p *Pane) setDimensions(x0, y0, x1, y1 int) {
	p.absX0, p.absY0, p.absX1, p.absY1 = x0, y0, x1, y1
}

// Bounds returns the last laid out screen rectangle [x0,y0)-(x1,y1).
func (p *Pane) Bounds() (int, int, int, int) {
	return p.absX0, p.absY0, p.absX1, p.absY1
}

func (p *Pane) describe(activeLeaf bool) string {
	titles := make([]string, len(p.items))
	for i, item := range p.items {
		title := item.Title()
		if p.active != nil && item.ItemID() == p.active.ItemID() {
			title = "*" + title
		}
		titles[i] = title
	}
	marker := ""
	if activeLeaf {
		marker = " (active)"
	}
	return fmt.Sprintf("pane [%s]%s", strings.Join(titles, ", "), marker)
}
