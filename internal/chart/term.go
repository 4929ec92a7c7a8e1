package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is the bar length in cells.
const DefaultWidth = 20

// Style colors a chart to match the active theme.
type Style struct {
	Fill  lipgloss.Color
	Track lipgloss.Color
	Label lipgloss.Color
}

// TermRenderer draws a breakdown as one bar per axis.
type TermRenderer struct {
	Width int
}

// Render implements Renderer.
func (t TermRenderer) Render(spec Spec) Chart {
	w := t.Width
	if w <= 0 {
		w = DefaultWidth
	}
	return &termChart{view: drawBars(spec, w)}
}

type termChart struct {
	view      string
	destroyed bool
}

func (c *termChart) View() string {
	if c.destroyed {
		return ""
	}
	return c.view
}

func (c *termChart) Destroy() {
	c.destroyed = true
	c.view = ""
}

func drawBars(spec Spec, width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(spec.Style.Label)
	fillStyle := lipgloss.NewStyle().Foreground(spec.Style.Fill)
	trackStyle := lipgloss.NewStyle().Foreground(spec.Style.Track)

	labelWidth := 0
	for _, l := range spec.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	rows := make([]string, 0, len(spec.Labels))
	for i, v := range spec.Breakdown.Axes() {
		v = clampScore(v)
		filled := int(math.Round(v / 100 * float64(width)))
		bar := fillStyle.Render(strings.Repeat("█", filled)) +
			trackStyle.Render(strings.Repeat("░", width-filled))
		label := labelStyle.Width(labelWidth).Render(spec.Labels[i])
		rows = append(rows, fmt.Sprintf("%s %s %3.0f", label, bar, v))
	}
	return strings.Join(rows, "\n")
}

func clampScore(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
