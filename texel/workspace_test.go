// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package texel

import (
	"context"
	"errors"
	"testing"

	"github.com/framegrace/texeloutlet/outlet"
	"github.com/google/uuid"
)

type fakeItem struct {
	id    uuid.UUID
	title string
}

func newFakeItem(title string) *fakeItem {
	return &fakeItem{id: uuid.New(), title: title}
}

func (f *fakeItem) ItemID() uuid.UUID { return f.id }
func (f *fakeItem) Title() string     { return f.title }

func mustOpenInCenter(t *testing.T, w *Workspace, item outlet.Item, split outlet.SplitDirection) *Pane {
	t.Helper()
	p, err := w.OpenInCenter(item, split)
	if err != nil {
		t.Fatalf("OpenInCenter(%s): %v", item.Title(), err)
	}
	return p
}

func TestNewWorkspaceLayout(t *testing.T) {
	w := NewWorkspace()
	if got := len(w.Center().Panes()); got != 1 {
		t.Fatalf("expected one center pane, got %d", got)
	}
	for _, loc := range []outlet.Location{outlet.LocationLeft, outlet.LocationRight, outlet.LocationBottom} {
		dock := w.DockAt(loc)
		if dock == nil {
			t.Fatalf("missing %s dock", loc)
		}
		if dock.IsVisible() {
			t.Fatalf("expected %s dock hidden initially", loc)
		}
		if dock.ActivePane() == nil {
			t.Fatalf("expected %s dock to have an active pane", loc)
		}
	}
	if w.Dock(outlet.LocationCenter) != nil {
		t.Fatalf("center must not be returned as a dock")
	}
	if !w.Center().IsVisible() {
		t.Fatalf("center must always be visible")
	}
}

func TestOpenInCenterSplitActivatesNewPane(t *testing.T) {
	w := NewWorkspace()
	editor1 := newFakeItem("editor1")
	editor2 := newFakeItem("editor2")
	left := mustOpenInCenter(t, w, editor1, "")
	right := mustOpenInCenter(t, w, editor2, outlet.SplitRight)

	panes := w.Center().Panes()
	if len(panes) != 2 || panes[0] != left || panes[1] != right {
		t.Fatalf("expected [left, right] panes, got %d panes", len(panes))
	}
	if !right.IsActive() || !w.HasFocus(editor2) {
		t.Fatalf("expected new right pane and its item to be active")
	}

	siblings, index, axis, ok := right.Siblings()
	if !ok || index != 1 || axis != outlet.AxisRow || len(siblings) != 2 || siblings[0] != outlet.Pane(left) {
		t.Fatalf("unexpected siblings: ok=%v index=%d axis=%v n=%d", ok, index, axis, len(siblings))
	}

	if _, _, _, ok := w.DockAt(outlet.LocationBottom).Panes()[0].Siblings(); ok {
		t.Fatalf("root pane must report no siblings")
	}
}

func TestSplitBeforeAndNestedAxis(t *testing.T) {
	w := NewWorkspace()
	root := mustOpenInCenter(t, w, newFakeItem("a"), "")
	leftPane := root.Split(outlet.SplitLeft).(*Pane)
	panes := w.Center().Panes()
	if panes[0] != leftPane || panes[1] != root {
		t.Fatalf("expected split-left pane to come first")
	}

	down := root.Split(outlet.SplitDown).(*Pane)
	siblings, index, axis, ok := down.Siblings()
	if !ok || axis != outlet.AxisColumn || index != 1 || siblings[0] != outlet.Pane(root) {
		t.Fatalf("expected nested column split, got axis=%v index=%d", axis, index)
	}

	siblings, _, axis, _ = leftPane.Siblings()
	if axis != outlet.AxisRow || siblings[1] != nil {
		t.Fatalf("expected nested split to appear as nil sibling in the row")
	}
}

func TestMovingLastItemDestroysPaneAndCollapses(t *testing.T) {
	w := NewWorkspace()
	editor := newFakeItem("editor")
	other := newFakeItem("other")
	left := mustOpenInCenter(t, w, editor, "")
	right := mustOpenInCenter(t, w, other, outlet.SplitRight)

	var destroyed []*Pane
	w.Subscribe(ListenerFunc(func(ev Event) {
		if ev.Type == EventPaneDestroyed {
			destroyed = append(destroyed, ev.Payload.(*Pane))
		}
	}))

	right.MoveItem(other, left, -1)

	if !right.IsDestroyed() {
		t.Fatalf("expected emptied right pane to be destroyed")
	}
	if len(destroyed) != 1 || destroyed[0] != right {
		t.Fatalf("expected one pane-destroyed event")
	}
	if root := w.Center().Tree().Root; root.Pane != left {
		t.Fatalf("expected split to collapse back to the left pane")
	}
	if !left.IsActive() {
		t.Fatalf("expected activation to move to the remaining pane")
	}
	if got := left.Items(); len(got) != 2 || got[1].ItemID() != other.ItemID() {
		t.Fatalf("expected moved item after the active item")
	}
}

func TestDockHidesWhenLastItemLeaves(t *testing.T) {
	w := NewWorkspace()
	editor := newFakeItem("editor")
	mustOpenInCenter(t, w, editor, "")

	dock := w.DockAt(outlet.LocationBottom)
	item := newFakeItem("panel")
	if err := w.Open(context.Background(), item, dock.ActivePane()); err != nil {
		t.Fatalf("Open: %v", err)
	}
	dock.Show()
	if dock.ActivePaneItem().ItemID() != item.ItemID() {
		t.Fatalf("expected panel to be the dock's active item")
	}
	if !w.HasFocus(editor) {
		t.Fatalf("opening into a dock must not steal focus")
	}

	w.PaneForItem(item).MoveItem(item, w.CenterActivePane(), -1)
	if dock.IsVisible() {
		t.Fatalf("expected empty dock to hide")
	}
	if dock.ActivePaneItem() != nil {
		t.Fatalf("expected empty dock to have no active item")
	}
	if got := len(dock.Panes()); got != 1 {
		t.Fatalf("dock root pane must survive, got %d panes", got)
	}
}

func TestHideItem(t *testing.T) {
	w := NewWorkspace()
	editor := newFakeItem("editor")
	mustOpenInCenter(t, w, editor, "")
	dock := w.DockAt(outlet.LocationBottom)
	a := newFakeItem("a")
	b := newFakeItem("b")
	ctx := context.Background()
	if err := w.Open(ctx, a, dock.ActivePane()); err != nil {
		t.Fatalf("Open a: %v", err)
	}
	if err := w.Open(ctx, b, dock.ActivePane()); err != nil {
		t.Fatalf("Open b: %v", err)
	}

	if w.HideItem(b) {
		t.Fatalf("hidden dock has nothing to hide")
	}
	dock.Show()
	if w.HideItem(a) {
		t.Fatalf("a is not the dock's shown item")
	}
	if !w.HideItem(b) || dock.IsVisible() {
		t.Fatalf("expected dock showing b to hide")
	}
	if w.HideItem(editor) {
		t.Fatalf("center items cannot be hidden")
	}
}

func TestDockHideReturnsActivationToCenter(t *testing.T) {
	w := NewWorkspace()
	editor := newFakeItem("editor")
	mustOpenInCenter(t, w, editor, "")
	dock := w.DockAt(outlet.LocationRight)
	panel := newFakeItem("panel")
	if err := w.Open(context.Background(), panel, dock.ActivePane()); err != nil {
		t.Fatalf("Open: %v", err)
	}
	dock.Show()
	w.Focus(panel)
	if !w.HasFocus(panel) || w.ActiveContainer() != dock {
		t.Fatalf("expected focus in the right dock")
	}

	dock.Hide()
	if !w.HasFocus(editor) {
		t.Fatalf("expected focus back on the center editor")
	}
}

func TestOpenErrors(t *testing.T) {
	w := NewWorkspace()
	item := newFakeItem("item")
	pane := w.CenterActivePane()
	if err := w.Open(context.Background(), item, pane); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := w.Open(context.Background(), item, pane); !errors.Is(err, ErrItemAttached) {
		t.Fatalf("expected ErrItemAttached, got %v", err)
	}

	other := NewWorkspace()
	if err := w.Open(context.Background(), newFakeItem("x"), other.CenterActivePane()); !errors.Is(err, ErrUnknownPane) {
		t.Fatalf("expected ErrUnknownPane, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Open(ctx, newFakeItem("y"), pane); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestItemEventsReportMoves(t *testing.T) {
	w := NewWorkspace()
	item := newFakeItem("item")
	mustOpenInCenter(t, w, item, "")
	dockPane := w.DockAt(outlet.LocationBottom).ActivePane()

	var added []ItemEvent
	w.Subscribe(ListenerFunc(func(ev Event) {
		if ev.Type == EventItemAdded {
			added = append(added, ev.Payload.(ItemEvent))
		}
	}))
	w.PaneForItem(item).MoveItem(item, dockPane, 0)

	if len(added) != 1 || !added[0].Moved || added[0].Item.ItemID() != item.ItemID() {
		t.Fatalf("expected one moved item-added event, got %+v", added)
	}
}

func TestRemovingActiveItemActivatesNeighbor(t *testing.T) {
	w := NewWorkspace()
	a, b, c := newFakeItem("a"), newFakeItem("b"), newFakeItem("c")
	pane := mustOpenInCenter(t, w, a, "")
	mustOpenInCenter(t, w, b, "")
	mustOpenInCenter(t, w, c, "")

	pane.ActivateItem(b)
	w.DestroyItem(b)
	if pane.ActiveItem().ItemID() != a.ItemID() {
		t.Fatalf("expected previous item to become active")
	}
	pane.ActivateItem(a)
	w.DestroyItem(a)
	if pane.ActiveItem().ItemID() != c.ItemID() {
		t.Fatalf("expected next item to become active when the first is removed")
	}
}

func TestCommands(t *testing.T) {
	w := NewWorkspace()
	item := newFakeItem("item")
	calls := 0
	remove := w.AddCommand(item, "core:close", func() { calls++ })

	if !w.Dispatch(item, "core:close") || calls != 1 {
		t.Fatalf("expected command to run once")
	}
	if w.Dispatch(item, "core:unknown") {
		t.Fatalf("unknown command must not report handled")
	}
	remove()
	if w.Dispatch(item, "core:close") {
		t.Fatalf("removed command must not run")
	}
}

func TestDumpMarksActiveItems(t *testing.T) {
	w := NewWorkspace()
	mustOpenInCenter(t, w, newFakeItem("main.go"), "")
	dump := w.Dump()
	want := "center (visible, active)\n  pane [*main.go] (active)\n"
	if len(dump) < len(want) || dump[:len(want)] != want {
		t.Fatalf("unexpected dump prefix:\n%s", dump)
	}
}
