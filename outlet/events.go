// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: outlet/events.go
// Summary: Ordered relocation observers.

package outlet

import "sync"

type observer struct {
	id int
	fn func()
}

// observers delivers notifications synchronously in registration order.
type observers struct {
	mu     sync.Mutex
	nextID int
	list   []observer
}

func (s *observers) add(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.list = append(s.list, observer{id: id, fn: fn})
	return func() { s.remove(id) }
}

func (s *observers) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.list {
		if o.id == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			return
		}
	}
}

func (s *observers) notify() {
	s.mu.Lock()
	list := append([]observer(nil), s.list...)
	s.mu.Unlock()
	for _, o := range list {
		o.fn()
	}
}

// OnDidRelocate registers fn to be called after every relocation. The
// returned function unsubscribes it.
func (o *Outlet) OnDidRelocate(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	return o.relocated.add(fn)
}
