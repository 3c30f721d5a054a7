// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gsbench/bench"
)

// DefaultChartWidth is the bar length, in cells, of the largest mean.
const DefaultChartWidth = 50

const (
	barCell    = "█"
	legendCell = "■"
)

// palette follows the classic legend: red for the direct method, blue for the
// iterative one; further series cycle through the rest.
var palette = []lipgloss.Color{"9", "12", "10", "11", "13", "14"}

// Chart draws horizontal bars grouped by size, every bar scaled against the
// maximum mean across ALL series, followed by the value in seconds. Sizes
// without counted trials print "n/a" instead of a bar. width < 1 selects
// DefaultChartWidth.
func Chart(w io.Writer, width int, series ...*bench.Timings) error {
	series, err := validSeries(series)
	if err != nil {
		return err
	}
	if width < 1 {
		width = DefaultChartWidth
	}

	var peak float64
	labelWidth := 0
	for _, s := range series {
		peak = max(peak, s.Max())
		labelWidth = max(labelWidth, lipgloss.Width(s.Algorithm().Label()))
	}

	var b strings.Builder
	// Legend.
	for i, s := range series {
		style := lipgloss.NewStyle().Foreground(palette[i%len(palette)])
		fmt.Fprintf(&b, "%s %s\n", style.Render(legendCell), s.Algorithm().Label())
	}
	b.WriteString("\n")

	for _, n := range unionSizes(series) {
		fmt.Fprintf(&b, "n=%d\n", n)
		for i, s := range series {
			style := lipgloss.NewStyle().Foreground(palette[i%len(palette)])
			label := s.Algorithm().Label()
			pad := strings.Repeat(" ", labelWidth-lipgloss.Width(label))
			e, ok := s.Get(n)
			if !ok || !e.OK() {
				fmt.Fprintf(&b, "  %s%s │ %s\n", label, pad, notAvailable)
				continue
			}
			fmt.Fprintf(&b, "  %s%s │ %s %.6fs\n", label, pad, style.Render(bar(e.Mean, peak, width)), e.Mean)
		}
	}
	b.WriteString(fmt.Sprintf("\nscale: %d cells = %.6fs\n", width, peak))

	_, err = io.WriteString(w, b.String())

	return err
}

// bar returns round(v/peak*width) cells, at least one for a positive v.
func bar(v, peak float64, width int) string {
	if peak <= 0 || v <= 0 {
		return ""
	}
	cells := int(math.Round(v / peak * float64(width)))
	if cells < 1 {
		cells = 1
	}

	return strings.Repeat(barCell, cells)
}
