// SPDX-License-Identifier: MIT

package bench

import (
	"sort"
	"time"

	"github.com/katalvlaran/gsbench/solve"
)

// TrialStatus classifies a single solver call.
type TrialStatus int

const (
	// TrialOK: solver returned a converged result.
	TrialOK TrialStatus = iota

	// TrialNotConverged: iterative budget exhausted. Timed and averaged, but flagged.
	TrialNotConverged

	// TrialFailed: solver returned an error. Excluded from the mean.
	TrialFailed
)

// String implements fmt.Stringer; values double as metric label values.
func (s TrialStatus) String() string {
	switch s {
	case TrialOK:
		return "ok"
	case TrialNotConverged:
		return "not_converged"
	case TrialFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TrialTiming is one timed solver call. It is folded into the per-size
// accumulator as soon as it is produced.
type TrialTiming struct {
	Algorithm solve.Algorithm
	Size      int
	Trial     int // 0-based trial index within the size
	Elapsed   time.Duration
	Status    TrialStatus
	Err       error   // non-nil iff Status == TrialFailed
	Residual  float64 // ‖Ax − b‖; NaN unless Config.Verify and the trial did not fail
}

// Seconds returns Elapsed in seconds.
func (t TrialTiming) Seconds() float64 { return t.Elapsed.Seconds() }

// Entry is the aggregate for one (algorithm, size).
type Entry struct {
	Size         int
	Mean         float64 // seconds; Total / Samples, 0 when Samples == 0
	Total        float64 // seconds summed over counted trials
	Samples      int     // trials counted in the mean
	Failed       int     // trials excluded (solver error)
	NotConverged int     // counted trials that exhausted the iteration cap
}

// OK reports whether Mean is backed by at least one counted trial.
func (e Entry) OK() bool { return e.Samples > 0 }

// Point is a (size, seconds) pair in ascending size order.
type Point struct {
	Size    int
	Seconds float64
}

// Timings is the ordered size → mean mapping of one algorithm.
// Entries are kept sorted by ascending Size at all times; there is no
// unordered intermediate. Not safe for concurrent mutation.
type Timings struct {
	alg     solve.Algorithm
	entries []Entry
}

// NewTimings returns an empty mapping for alg.
func NewTimings(alg solve.Algorithm) *Timings {
	return &Timings{alg: alg}
}

// Algorithm returns the algorithm this mapping belongs to.
func (t *Timings) Algorithm() solve.Algorithm { return t.alg }

// search returns the insertion index of size and whether it is present.
// Complexity: O(log n).
func (t *Timings) search(size int) (int, bool) {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].Size >= size })

	return i, i < len(t.entries) && t.entries[i].Size == size
}

// Put inserts e, or replaces the entry with the same Size.
// Complexity: O(n) worst case (slice shift).
func (t *Timings) Put(e Entry) {
	i, found := t.search(e.Size)
	if found {
		t.entries[i] = e
		return
	}
	t.entries = append(t.entries, Entry{})
	copy(t.entries[i+1:], t.entries[i:])
	t.entries[i] = e
}

// Get returns the entry for size.
func (t *Timings) Get(size int) (Entry, bool) {
	i, found := t.search(size)
	if !found {
		return Entry{}, false
	}

	return t.entries[i], true
}

// Len returns the number of sizes recorded.
func (t *Timings) Len() int { return len(t.entries) }

// Sizes returns the keys in ascending order (fresh slice).
func (t *Timings) Sizes() []int {
	out := make([]int, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Size
	}

	return out
}

// Entries returns a copy of all entries in ascending size order.
func (t *Timings) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Points returns (size, mean) pairs in ascending size order, skipping
// entries without counted trials.
func (t *Timings) Points() []Point {
	out := make([]Point, 0, len(t.entries))
	for _, e := range t.entries {
		if e.OK() {
			out = append(out, Point{Size: e.Size, Seconds: e.Mean})
		}
	}

	return out
}

// Max returns the largest mean over counted entries (0 when empty).
func (t *Timings) Max() float64 {
	var m float64
	for _, e := range t.entries {
		if e.OK() && e.Mean > m {
			m = e.Mean
		}
	}

	return m
}

// accumulator folds TrialTimings of one (algorithm, size).
type accumulator struct {
	total        float64
	samples      int
	failed       int
	notConverged int
}

// add folds t in. Failed trials only bump the failure count.
func (a *accumulator) add(t TrialTiming) {
	switch t.Status {
	case TrialFailed:
		a.failed++
		return
	case TrialNotConverged:
		a.notConverged++
	}
	a.total += t.Seconds()
	a.samples++
}

// entry finalizes the mean for size.
func (a *accumulator) entry(size int) Entry {
	e := Entry{
		Size:         size,
		Total:        a.total,
		Samples:      a.samples,
		Failed:       a.failed,
		NotConverged: a.notConverged,
	}
	if a.samples > 0 {
		e.Mean = a.total / float64(a.samples)
	}

	return e
}
