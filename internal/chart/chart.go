// Package chart owns the per-card score charts: the Renderer that draws a
// breakdown and the Registry that tracks live handles by game id.
package chart

import "github.com/abelbrown/horizon/internal/game"

// Labels are the localized axis names in Breakdown.Axes order.
type Labels [5]string

// Spec describes one chart to draw.
type Spec struct {
	Breakdown game.Breakdown
	Labels    Labels
	Style     Style
}

// Chart is a live chart handle.
type Chart interface {
	// View returns the rendered chart, or "" once destroyed.
	View() string
	Destroy()
}

// Renderer creates charts. The terminal implementation is TermRenderer.
type Renderer interface {
	Render(spec Spec) Chart
}

// Registry maps game id to its live chart. At most one handle exists per id.
// Not safe for concurrent use; it lives on the UI loop.
type Registry struct {
	r    Renderer
	live map[string]Chart
}

// NewRegistry returns an empty registry drawing with r.
func NewRegistry(r Renderer) *Registry {
	return &Registry{r: r, live: make(map[string]Chart)}
}

// Mount creates the chart for id, destroying any handle already mounted there.
func (g *Registry) Mount(id string, spec Spec) Chart {
	if old, ok := g.live[id]; ok {
		old.Destroy()
		delete(g.live, id)
	}
	c := g.r.Render(spec)
	g.live[id] = c
	return c
}

// Get returns the live chart for id.
func (g *Registry) Get(id string) (Chart, bool) {
	c, ok := g.live[id]
	return c, ok
}

// View returns the rendered chart for id, or "" if none is mounted.
func (g *Registry) View(id string) string {
	if c, ok := g.live[id]; ok {
		return c.View()
	}
	return ""
}

// DestroyAll releases every live chart.
func (g *Registry) DestroyAll() {
	for id, c := range g.live {
		c.Destroy()
		delete(g.live, id)
	}
}

// Live is the number of mounted charts.
func (g *Registry) Live() int {
	return len(g.live)
}
