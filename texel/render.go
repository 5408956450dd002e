// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/render.go
// Summary: Draws the workspace layout onto a ScreenDriver.
// Usage: Layout assigns screen rectangles to every visible pane; Draw paints
// borders, tab titles and the active item of each pane.

package texel

import (
	"strings"

	"github.com/framegrace/texeloutlet/outlet"
	"github.com/framegrace/texeloutlet/surface"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// RenderOptions controls dock sizes and the syntax highlighting style.
type RenderOptions struct {
	Style      string
	DockWidth  int
	DockHeight int
}

// DefaultRenderOptions returns the sizes used when config has none.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Style: "catppuccin-mocha", DockWidth: 32, DockHeight: 10}
}

// Highlighter is implemented by items that can provide styled content.
type Highlighter interface {
	Highlight(styleName string, base tcell.Style) [][]surface.Cell
}

// TextItem is implemented by items that can provide plain content.
type TextItem interface {
	Lines() []string
}

type modifiedItem interface {
	IsModified() bool
}

// Renderer paints a workspace.
type Renderer struct {
	ws     *Workspace
	screen ScreenDriver
	opts   RenderOptions

	base     tcell.Style
	border   tcell.Style
	active   tcell.Style
	tab      tcell.Style
	tabFront tcell.Style
}

// NewRenderer creates a renderer drawing ws onto screen.
func NewRenderer(ws *Workspace, screen ScreenDriver, opts RenderOptions) *Renderer {
	base := tcell.StyleDefault
	return &Renderer{
		ws:       ws,
		screen:   screen,
		opts:     opts.withDefaults(),
		base:     base,
		border:   base.Foreground(tcell.ColorGray),
		active:   base.Foreground(tcell.ColorLightSkyBlue).Bold(true),
		tab:      base.Foreground(tcell.ColorGray),
		tabFront: base.Reverse(true),
	}
}

// SetOptions replaces the render options, e.g. after a config reload.
func (r *Renderer) SetOptions(opts RenderOptions) {
	r.opts = opts.withDefaults()
}

// withDefaults fills unset or non-positive dock sizes.
func (o RenderOptions) withDefaults() RenderOptions {
	def := DefaultRenderOptions()
	if o.DockWidth <= 0 {
		o.DockWidth = def.DockWidth
	}
	if o.DockHeight <= 0 {
		o.DockHeight = def.DockHeight
	}
	return o
}

// Layout assigns rectangles to all containers for a w x h screen. Hidden
// docks take no space. Docks shrink when the screen is too small.
func (r *Renderer) Layout(w, h int) {
	x0, y0, x1, y1 := 0, 0, w, h

	if bottom := r.ws.DockAt(outlet.LocationBottom); bottom.IsVisible() {
		dh := clamp(r.opts.DockHeight, 0, h/2)
		bottom.tree.Resize(0, h-dh, w, dh)
		y1 -= dh
	}
	if left := r.ws.DockAt(outlet.LocationLeft); left.IsVisible() {
		dw := clamp(r.opts.DockWidth, 0, w/3)
		left.tree.Resize(x0, y0, dw, y1-y0)
		x0 += dw
	}
	if right := r.ws.DockAt(outlet.LocationRight); right.IsVisible() {
		dw := clamp(r.opts.DockWidth, 0, w/3)
		right.tree.Resize(x1-dw, y0, dw, y1-y0)
		x1 -= dw
	}
	r.ws.Center().tree.Resize(x0, y0, x1-x0, y1-y0)
}

// Draw lays the workspace out for the current screen size and paints it.
func (r *Renderer) Draw() {
	w, h := r.screen.Size()
	r.Layout(w, h)
	r.screen.SetStyle(r.base)
	r.screen.Clear()
	activePane := r.ws.activePane()
	for _, c := range r.ws.Containers() {
		if !c.IsVisible() {
			continue
		}
		for _, p := range c.Panes() {
			r.drawPane(p, p == activePane)
		}
	}
	r.screen.Show()
}

func (r *Renderer) drawPane(p *Pane, isActive bool) {
	x0, y0, x1, y1 := p.Bounds()
	w, h := x1-x0, y1-y0
	if w < 2 || h < 2 {
		return
	}

	borderStyle := r.border
	if isActive {
		borderStyle = r.active
	}
	for x := x0; x < x1; x++ {
		r.screen.SetContent(x, y0, tcell.RuneHLine, nil, borderStyle)
		r.screen.SetContent(x, y1-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := y0; y < y1; y++ {
		r.screen.SetContent(x0, y, tcell.RuneVLine, nil, borderStyle)
		r.screen.SetContent(x1-1, y, tcell.RuneVLine, nil, borderStyle)
	}
	r.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, borderStyle)
	r.screen.SetContent(x1-1, y0, tcell.RuneURCorner, nil, borderStyle)
	r.screen.SetContent(x0, y1-1, tcell.RuneLLCorner, nil, borderStyle)
	r.screen.SetContent(x1-1, y1-1, tcell.RuneLRCorner, nil, borderStyle)

	r.drawTabs(p, x0+1, y0, w-2)
	r.drawContent(p.ActiveItem(), x0+1, y0+1, w-2, h-2)
}

// drawTabs writes " title " for every item along the top border. The shown
// item is drawn reversed; modified items get a trailing "+".
func (r *Renderer) drawTabs(p *Pane, x, y, width int) {
	if width <= 0 {
		return
	}
	end := x + width
	active := p.ActiveItem()
	for _, item := range p.items {
		label := " " + TabLabel(item) + " "
		room := end - x
		if room <= 0 {
			return
		}
		label = runewidth.Truncate(label, room, "…")
		style := r.tab
		if active != nil && item.ItemID() == active.ItemID() {
			style = r.tabFront
		}
		x = r.putString(x, y, end, label, style)
	}
}

// TabLabel is the title shown in an item's tab.
func TabLabel(item outlet.Item) string {
	title := item.Title()
	if m, ok := item.(modifiedItem); ok && m.IsModified() {
		title += "+"
	}
	return title
}

func (r *Renderer) drawContent(item outlet.Item, x, y, width, height int) {
	if item == nil || width <= 0 || height <= 0 {
		return
	}
	end := x + width
	if hl, ok := item.(Highlighter); ok {
		for row, cells := range hl.Highlight(r.opts.Style, r.base) {
			if row >= height {
				return
			}
			cx := x
			for _, cell := range cells {
				cw := runewidth.RuneWidth(cell.Ch)
				if cell.Ch == '\t' {
					cell.Ch, cw = ' ', 1
				}
				if cw == 0 {
					continue
				}
				if cx+cw > end {
					break
				}
				r.screen.SetContent(cx, y+row, cell.Ch, nil, cell.Style)
				cx += cw
			}
		}
		return
	}
	if ti, ok := item.(TextItem); ok {
		for row, line := range ti.Lines() {
			if row >= height {
				return
			}
			r.putString(x, y+row, end, strings.ReplaceAll(line, "\t", " "), r.base)
		}
	}
}

// putString draws s from x and returns the column after it. Wide runes that
// would cross end are dropped.
func (r *Renderer) putString(x, y, end int, s string, style tcell.Style) int {
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x+cw > end {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += cw
	}
	return x
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
