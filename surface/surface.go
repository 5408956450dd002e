// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: surface/surface.go
// Summary: Editable text surface hosted as an item inside workspace panes.
// Usage: Wrapped by outlets; also used directly for plain editors.

package surface

import (
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const untitled = "untitled"

// Options configure a new surface.
type Options struct {
	// Text is the initial buffer content. Loading it does not mark the
	// surface modified.
	Text string
	// Path names the buffer for titles and language detection.
	Path string
	// Language overrides detection when set.
	Language string

	AutoHeight              bool
	SoftWrap                bool
	LineNumberGutterVisible bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		AutoHeight:              false,
		LineNumberGutterVisible: true,
	}
}

// Surface is a titled text buffer with an identity. It implements the item
// contract expected by pane hosts.
type Surface struct {
	mu sync.Mutex

	id            uuid.UUID
	opts          Options
	text          strings.Builder
	titleOverride string
	modified      bool
	trackModified bool
	classList     []string
	destroyed     bool

	language     string
	languageDone bool

	destroyHandlers []*func()
}

// New creates a surface from opts.
func New(opts Options) *Surface {
	s := &Surface{
		id:            uuid.New(),
		opts:          opts,
		trackModified: true,
	}
	s.text.WriteString(opts.Text)
	return s
}

// ItemID returns the stable identity of the surface.
func (s *Surface) ItemID() uuid.UUID {
	return s.id
}

// Title returns the override title, the base name of the path, or
// "untitled".
func (s *Surface) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.titleOverride != "" {
		return s.titleOverride
	}
	if s.opts.Path != "" {
		return filepath.Base(s.opts.Path)
	}
	return untitled
}

// SetTitle overrides the title. An empty string restores the default.
func (s *Surface) SetTitle(title string) {
	s.mu.Lock()
	s.titleOverride = title
	s.mu.Unlock()
}

// Path returns the path the surface was created with.
func (s *Surface) Path() string {
	return s.opts.Path
}

// Options returns the construction options.
func (s *Surface) Options() Options {
	return s.opts
}

// LineNumberGutterVisible reports whether line numbers are drawn.
func (s *Surface) LineNumberGutterVisible() bool {
	return s.opts.LineNumberGutterVisible
}

// InsertText appends text to the buffer.
func (s *Surface) InsertText(text string) {
	if text == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		log.Printf("Surface: InsertText on destroyed surface %s", s.id)
		return
	}
	s.text.WriteString(text)
	s.modified = true
	s.languageDone = false
}

// Text returns the buffer content.
func (s *Surface) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text.String()
}

// Lines returns the buffer split on newlines.
func (s *Surface) Lines() []string {
	return strings.Split(s.Text(), "\n")
}

// SetTrackModified controls whether edits are reported by IsModified.
func (s *Surface) SetTrackModified(track bool) {
	s.mu.Lock()
	s.trackModified = track
	s.mu.Unlock()
}

// IsModified reports unsaved edits. It is always false when modification
// tracking is disabled.
func (s *Surface) IsModified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trackModified && s.modified
}

// AddClass tags the surface with style class names.
func (s *Surface) AddClass(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		if name == "" || containsString(s.classList, name) {
			continue
		}
		s.classList = append(s.classList, name)
	}
}

// HasClass reports whether name was added with AddClass.
func (s *Surface) HasClass(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return containsString(s.classList, name)
}

// ClassList returns a copy of the class names.
func (s *Surface) ClassList() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.classList...)
}

// OnDidDestroy registers fn to run once when the surface is destroyed.
func (s *Surface) OnDidDestroy(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	handler := &fn
	s.destroyHandlers = append(s.destroyHandlers, handler)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, h := range s.destroyHandlers {
			if h == handler {
				s.destroyHandlers = append(s.destroyHandlers[:i], s.destroyHandlers[i+1:]...)
				return
			}
		}
	}
}

// Destroy marks the surface destroyed and notifies destroy handlers.
// Subsequent calls do nothing.
func (s *Surface) Destroy() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.destroyed = true
	handlers := s.destroyHandlers
	s.destroyHandlers = nil
	s.mu.Unlock()

	for _, h := range handlers {
		(*h)()
	}
}

// IsDestroyed reports whether Destroy has been called.
func (s *Surface) IsDestroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
