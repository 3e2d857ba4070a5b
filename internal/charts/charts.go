// Package charts renders per-status count distributions as terminal charts.
//
// Each chart lives on a Canvas that holds at most one instance at a time:
// drawing destroys any previous instance first, so repeated draws with the
// same canvas always leave exactly one visible chart.
package charts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Kind selects the chart style drawn on a canvas.
type Kind int

const (
	// Bar draws one scaled horizontal bar per status.
	Bar Kind = iota
	// Distribution draws a proportional segment band with a legend, the
	// terminal stand-in for the original pie chart.
	Distribution
)

// palette cycles through the original console's chart colors.
var palette = []lipgloss.Color{
	lipgloss.Color("#3498db"),
	lipgloss.Color("#e74c3c"),
	lipgloss.Color("#2ecc71"),
	lipgloss.Color("#f1c40f"),
}

// Chart is one rendered chart instance.
type Chart struct {
	kind      Kind
	title     string
	labels    []string
	data      map[string]int
	destroyed bool
}

// Canvas owns at most one chart instance.
type Canvas struct {
	current *Chart
}

// Draw replaces the canvas content with a new chart. Any prior instance is
// destroyed first. The data map is copied; later caller mutations do not
// leak into the chart.
func (c *Canvas) Draw(kind Kind, title string, data map[string]int) *Chart {
	if c.current != nil {
		c.current.Destroy()
		c.current = nil
	}

	labels := make([]string, 0, len(data))
	copied := make(map[string]int, len(data))
	for label, count := range data {
		labels = append(labels, label)
		copied[label] = count
	}
	sort.Strings(labels)

	c.current = &Chart{
		kind:   kind,
		title:  title,
		labels: labels,
		data:   copied,
	}
	return c.current
}

// Current returns the chart on the canvas, or nil when the canvas is empty.
func (c *Canvas) Current() *Chart {
	return c.current
}

// Clear destroys and removes any chart on the canvas.
func (c *Canvas) Clear() {
	if c.current != nil {
		c.current.Destroy()
		c.current = nil
	}
}

// View renders the canvas content at the given width. An empty canvas
// renders to an empty string.
func (c *Canvas) View(width int) string {
	if c.current == nil {
		return ""
	}
	return c.current.Render(width)
}

// Destroy marks the chart dead. A destroyed chart renders to nothing, so a
// stale handle can never paint over its successor.
func (ch *Chart) Destroy() {
	ch.destroyed = true
}

// Destroyed reports whether the chart has been destroyed.
func (ch *Chart) Destroyed() bool {
	return ch.destroyed
}

// Data returns the chart's status counts.
func (ch *Chart) Data() map[string]int {
	return ch.data
}

// Render draws the chart as styled text. Width bounds the widest bar or the
// segment band; values below 20 are clamped up so labels stay legible.
func (ch *Chart) Render(width int) string {
	if ch.destroyed {
		return ""
	}
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true)
	b.WriteString(titleStyle.Render(ch.title))
	b.WriteByte('\n')

	if len(ch.labels) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("(no data)"))
		return b.String()
	}

	switch ch.kind {
	case Bar:
		ch.renderBars(&b, width)
	case Distribution:
		ch.renderDistribution(&b, width)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (ch *Chart) renderBars(b *strings.Builder, width int) {
	maxCount := 0
	labelWidth := 0
	for _, label := range ch.labels {
		if ch.data[label] > maxCount {
			maxCount = ch.data[label]
		}
		if w := lipgloss.Width(label); w > labelWidth {
			labelWidth = w
		}
	}

	barSpace := width - labelWidth - 8
	if barSpace < 5 {
		barSpace = 5
	}

	for i, label := range ch.labels {
		count := ch.data[label]
		barLen := 0
		if maxCount > 0 {
			barLen = count * barSpace / maxCount
		}
		if count > 0 && barLen == 0 {
			barLen = 1
		}
		bar := lipgloss.NewStyle().
			Foreground(palette[i%len(palette)]).
			Render(strings.Repeat("█", barLen))
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(label))
		fmt.Fprintf(b, "%s%s  %s %d\n", label, pad, bar, count)
	}
}

func (ch *Chart) renderDistribution(b *strings.Builder, width int) {
	total := 0
	for _, label := range ch.labels {
		total += ch.data[label]
	}
	if total == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("(no data)"))
		return
	}

	// Proportional band: each status gets a run of blocks sized by share.
	band := width - 2
	for i, label := range ch.labels {
		run := ch.data[label] * band / total
		if ch.data[label] > 0 && run == 0 {
			run = 1
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(palette[i%len(palette)]).
			Render(strings.Repeat("■", run)))
	}
	b.WriteByte('\n')

	for i, label := range ch.labels {
		count := ch.data[label]
		pct := float64(count) * 100 / float64(total)
		swatch := lipgloss.NewStyle().
			Foreground(palette[i%len(palette)]).
			Render("■")
		fmt.Fprintf(b, "%s %s: %d (%.1f%%)\n", swatch, label, count, pct)
	}
}
