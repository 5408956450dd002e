// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/workspace.go
// Summary: Workspace with a center area and left/right/bottom docks.
// Usage: In-memory windowing host that outlets are placed into.
// Notes: Not safe for concurrent use; callers run on one event loop.

package texel

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/framegrace/texeloutlet/outlet"
	"github.com/google/uuid"
)

var (
	// ErrItemAttached is returned when opening an item already in a pane.
	ErrItemAttached = errors.New("texel: item already attached")
	// ErrUnknownPane is returned when a pane does not belong to the workspace.
	ErrUnknownPane = errors.New("texel: unknown pane")
)

// dockLocations lists the docks in layout order.
var dockLocations = []outlet.Location{outlet.LocationLeft, outlet.LocationRight, outlet.LocationBottom}

// Workspace holds the center pane container and the docks.
type Workspace struct {
	center          *Container
	docks           map[outlet.Location]*Container
	activeContainer *Container
	dispatcher      *EventDispatcher
	commands        map[uuid.UUID]map[string][]*command
	verbose         bool
}

type command struct {
	fn func()
}

var _ outlet.Host = (*Workspace)(nil)

// NewWorkspace creates a workspace with one empty center pane and three
// hidden docks, each with one empty pane.
func NewWorkspace() *Workspace {
	w := &Workspace{
		docks:      make(map[outlet.Location]*Container, len(dockLocations)),
		dispatcher: NewEventDispatcher(),
		commands:   make(map[uuid.UUID]map[string][]*command),
	}
	w.center = newContainer(w, outlet.LocationCenter)
	for _, loc := range dockLocations {
		w.docks[loc] = newContainer(w, loc)
	}
	w.activeContainer = w.center
	return w
}

// SetVerbose enables tracing of layout changes.
func (w *Workspace) SetVerbose(verbose bool) {
	w.verbose = verbose
}

func (w *Workspace) debugf(format string, args ...interface{}) {
	if w.verbose {
		log.Printf(format, args...)
	}
}

// Subscribe registers a listener for workspace events.
func (w *Workspace) Subscribe(listener Listener) func() {
	return w.dispatcher.Subscribe(listener)
}

// Broadcast sends an event to all listeners.
func (w *Workspace) Broadcast(event Event) {
	w.dispatcher.Broadcast(event)
}

// Center returns the center container.
func (w *Workspace) Center() *Container {
	return w.center
}

// DockAt returns the dock container at loc, or nil.
func (w *Workspace) DockAt(loc outlet.Location) *Container {
	return w.docks[loc]
}

// Containers returns the center followed by the docks.
func (w *Workspace) Containers() []*Container {
	containers := []*Container{w.center}
	for _, loc := range dockLocations {
		containers = append(containers, w.docks[loc])
	}
	return containers
}

// ActiveContainer returns the container of the active pane.
func (w *Workspace) ActiveContainer() *Container {
	return w.activeContainer
}

func (w *Workspace) activePane() *Pane {
	return w.activeContainer.activeLeafPane()
}

func (w *Workspace) paneOf(item outlet.Item) *Pane {
	if item == nil {
		return nil
	}
	for _, c := range w.Containers() {
		for _, p := range c.Panes() {
			if p.indexOf(item) != -1 {
				return p
			}
		}
	}
	return nil
}

// PaneForItem returns the pane holding item, or nil.
func (w *Workspace) PaneForItem(item outlet.Item) outlet.Pane {
	if p := w.paneOf(item); p != nil {
		return p
	}
	return nil
}

// Dock returns the dock at loc, or nil for the center or unknown locations.
func (w *Workspace) Dock(loc outlet.Location) outlet.Dock {
	if c, ok := w.docks[loc]; ok {
		return c
	}
	return nil
}

// CenterActivePane returns the active pane of the center area.
func (w *Workspace) CenterActivePane() outlet.Pane {
	return w.center.ActivePane()
}

// ActivePane returns the active pane of the active container.
func (w *Workspace) ActivePane() outlet.Pane {
	if p := w.activePane(); p != nil {
		return p
	}
	return nil
}

// ActiveItem returns the active pane's active item.
func (w *Workspace) ActiveItem() outlet.Item {
	if p := w.activePane(); p != nil {
		return p.ActiveItem()
	}
	return nil
}

// VisiblePanes lists center panes and the panes of visible docks.
func (w *Workspace) VisiblePanes() []outlet.Pane {
	var panes []outlet.Pane
	for _, c := range w.Containers() {
		if !c.IsVisible() {
			continue
		}
		for _, p := range c.Panes() {
			panes = append(panes, p)
		}
	}
	return panes
}

// IsVisibleItem reports whether item is shown in a visible pane.
func (w *Workspace) IsVisibleItem(item outlet.Item) bool {
	for _, p := range w.VisiblePanes() {
		if active := p.ActiveItem(); active != nil && active.ItemID() == item.ItemID() {
			return true
		}
	}
	return false
}

// Items returns every item in the workspace.
func (w *Workspace) Items() []outlet.Item {
	var items []outlet.Item
	for _, c := range w.Containers() {
		items = append(items, c.Items()...)
	}
	return items
}

// FindItem looks an item up by identity among attached items.
func (w *Workspace) FindItem(id uuid.UUID) (outlet.Item, bool) {
	for _, item := range w.Items() {
		if item.ItemID() == id {
			return item, true
		}
	}
	return nil, false
}

// Open attaches item to pane and shows it there without activating pane.
func (w *Workspace) Open(ctx context.Context, item outlet.Item, pane outlet.Pane) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, ok := pane.(*Pane)
	if !ok || target == nil || target.container.ws != w || target.destroyed {
		return ErrUnknownPane
	}
	if w.paneOf(item) != nil {
		return fmt.Errorf("%w: %s", ErrItemAttached, item.Title())
	}
	target.addItem(item, -1, false)
	target.ActivateItem(item)
	w.debugf("Workspace.Open: %q in %s", item.Title(), target.Location())
	return nil
}

// OpenInCenter adds item to the center's active pane, or to a new pane split
// off it when split is set, and activates both item and pane.
func (w *Workspace) OpenInCenter(item outlet.Item, split outlet.SplitDirection) (*Pane, error) {
	if w.paneOf(item) != nil {
		return nil, fmt.Errorf("%w: %s", ErrItemAttached, item.Title())
	}
	pane := w.center.activeLeafPane()
	if split.Valid() {
		created, ok := pane.Split(split).(*Pane)
		if !ok {
			return nil, fmt.Errorf("split %s: %w", split, ErrUnknownPane)
		}
		pane = created
	}
	pane.addItem(item, -1, false)
	pane.ActivateItem(item)
	pane.Activate()
	return pane, nil
}

// HideItem hides a dock whose pane shows item. Center items cannot be
// hidden. It reports whether a dock was hidden.
func (w *Workspace) HideItem(item outlet.Item) bool {
	hidden := false
	for _, loc := range dockLocations {
		dock := w.docks[loc]
		if !dock.IsVisible() {
			continue
		}
		for _, p := range dock.Panes() {
			if active := p.ActiveItem(); active != nil && active.ItemID() == item.ItemID() {
				dock.Hide()
				hidden = true
				break
			}
		}
	}
	return hidden
}

// DestroyItem removes item from its pane and drops its commands.
func (w *Workspace) DestroyItem(item outlet.Item) {
	if item == nil {
		return
	}
	if p := w.paneOf(item); p != nil {
		p.removeItem(item, false)
	}
	delete(w.commands, item.ItemID())
}

// HasFocus reports whether item is the active item of the active pane.
func (w *Workspace) HasFocus(item outlet.Item) bool {
	active := w.ActiveItem()
	return active != nil && item != nil && active.ItemID() == item.ItemID()
}

// Focus shows item in its pane and activates that pane.
func (w *Workspace) Focus(item outlet.Item) {
	p := w.paneOf(item)
	if p == nil {
		return
	}
	p.ActivateItem(item)
	p.Activate()
}

// AddCommand registers fn under name for item.
func (w *Workspace) AddCommand(item outlet.Item, name string, fn func()) func() {
	id := item.ItemID()
	byName := w.commands[id]
	if byName == nil {
		byName = make(map[string][]*command)
		w.commands[id] = byName
	}
	cmd := &command{fn: fn}
	byName[name] = append(byName[name], cmd)
	return func() {
		list := w.commands[id][name]
		for i, c := range list {
			if c == cmd {
				w.commands[id][name] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// Dispatch runs the handlers registered for name on item and reports
// whether any ran.
func (w *Workspace) Dispatch(item outlet.Item, name string) bool {
	if item == nil {
		return false
	}
	handlers := append([]*command(nil), w.commands[item.ItemID()][name]...)
	if len(handlers) == 0 {
		return false
	}
	w.Broadcast(Event{Type: EventCommandDispatched, Payload: CommandEvent{Item: item, Name: name}})
	for _, c := range handlers {
		c.fn()
	}
	return true
}

// Dump describes the layout of every container.
func (w *Workspace) Dump() string {
	var sb strings.Builder
	for _, c := range w.Containers() {
		state := "hidden"
		if c.IsVisible() {
			state = "visible"
		}
		if c == w.activeContainer {
			state += ", active"
		}
		fmt.Fprintf(&sb, "%s (%s)\n", c.location, state)
		for _, line := range strings.Split(strings.TrimRight(c.tree.Dump(), "\n"), "\n") {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
