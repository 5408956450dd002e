// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/dispatcher.go
// Summary: Workspace event types and the listener dispatcher.

package texel

import (
	"sync"

	"github.com/framegrace/texeloutlet/outlet"
)

// EventType defines the type of an event.
type EventType int

const (
	// Item events carry an ItemEvent payload.
	EventItemAdded EventType = iota
	EventItemRemoved
	EventActiveItemChanged
	// Pane events carry the *Pane.
	EventPaneActiveChanged
	EventPaneDestroyed
	// EventTreeChanged carries the *Container whose layout changed.
	EventTreeChanged
	// EventDockVisibilityChanged carries a DockEvent.
	EventDockVisibilityChanged
	// EventCommandDispatched carries a CommandEvent.
	EventCommandDispatched
)

func (t EventType) String() string {
	switch t {
	case EventItemAdded:
		return "item-added"
	case EventItemRemoved:
		return "item-removed"
	case EventActiveItemChanged:
		return "active-item-changed"
	case EventPaneActiveChanged:
		return "pane-active-changed"
	case EventPaneDestroyed:
		return "pane-destroyed"
	case EventTreeChanged:
		return "tree-changed"
	case EventDockVisibilityChanged:
		return "dock-visibility-changed"
	case EventCommandDispatched:
		return "command-dispatched"
	}
	return "unknown"
}

// Event represents a message passed through the system.
// It has a type and can carry an arbitrary data payload.
type Event struct {
	Type    EventType
	Payload interface{}
}

// ItemEvent describes an item entering, leaving or being shown in a pane.
type ItemEvent struct {
	Pane  *Pane
	Item  outlet.Item
	Index int
	// Moved is set when the item arrives from or leaves for another pane.
	Moved bool
}

// DockEvent describes a dock visibility change.
type DockEvent struct {
	Location outlet.Location
	Visible  bool
}

// CommandEvent describes a dispatched item command.
type CommandEvent struct {
	Item outlet.Item
	Name string
}

// Listener is an interface that any component can implement to receive events.
type Listener interface {
	// OnEvent is the callback method for receiving events.
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// OnEvent calls f.
func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	listener Listener
}

// EventDispatcher manages a list of listeners and broadcasts events to them.
type EventDispatcher struct {
	mu        sync.RWMutex
	listeners []*subscription
}

// NewEventDispatcher creates a new dispatcher.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{}
}

// Subscribe adds a listener and returns a function that removes it.
func (d *EventDispatcher) Subscribe(listener Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	sub := &subscription{listener: listener}
	d.listeners = append(d.listeners, sub)
	return func() { d.unsubscribe(sub) }
}

func (d *EventDispatcher) unsubscribe(sub *subscription) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, s := range d.listeners {
		if s == sub {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
}

// Broadcast sends an event to all subscribed listeners. Listeners may
// subscribe or unsubscribe while being notified.
func (d *EventDispatcher) Broadcast(event Event) {
	d.mu.RLock()
	listeners := append([]*subscription(nil), d.listeners...)
	d.mu.RUnlock()
	for _, s := range listeners {
		s.listener.OnEvent(event)
	}
}
