// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/gsbench/bench"
)

// ErrNoSeries is returned when nothing was given to render.
var ErrNoSeries = errors.New("report: no timing series")

// notAvailable marks a size without counted trials.
const notAvailable = "n/a"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// unionSizes merges the keys of every series in ascending order.
func unionSizes(series []*bench.Timings) []int {
	var sizes []int
	for _, s := range series {
		sizes = append(sizes, s.Sizes()...)
	}
	slices.Sort(sizes)

	return slices.Compact(sizes)
}

// validSeries drops nil entries and reports ErrNoSeries when none remain.
func validSeries(series []*bench.Timings) ([]*bench.Timings, error) {
	out := make([]*bench.Timings, 0, len(series))
	for _, s := range series {
		if s != nil {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoSeries
	}

	return out, nil
}

// Table writes one row per size: mean seconds per algorithm and a notes
// column listing failed and non-converged trial counts.
func Table(w io.Writer, series ...*bench.Timings) error {
	series, err := validSeries(series)
	if err != nil {
		return err
	}

	headers := make([]string, 0, len(series)+2)
	headers = append(headers, "Size")
	for _, s := range series {
		headers = append(headers, s.Algorithm().Label()+" (s)")
	}
	headers = append(headers, "Notes")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 || col == len(headers)-1:
				return cellStyle
			default:
				return numberStyle
			}
		})

	for _, n := range unionSizes(series) {
		cells := make([]string, 0, len(headers))
		cells = append(cells, fmt.Sprintf("%d", n))
		var notes []string
		for _, s := range series {
			e, ok := s.Get(n)
			if !ok || !e.OK() {
				cells = append(cells, notAvailable)
			} else {
				cells = append(cells, fmt.Sprintf("%.6f", e.Mean))
			}
			if e.Failed > 0 {
				notes = append(notes, fmt.Sprintf("%s: %d failed", s.Algorithm(), e.Failed))
			}
			if e.NotConverged > 0 {
				notes = append(notes, fmt.Sprintf("%s: %d not converged", s.Algorithm(), e.NotConverged))
			}
		}
		cells = append(cells, strings.Join(notes, "; "))
		t.Row(cells...)
	}

	_, err = fmt.Fprintln(w, t.Render())

	return err
}
