// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series pivots benchmark timing runs into aligned series
// keyed by variant label, and derives values from them.
package series

import (
	"fmt"
	"math"
	"strings"

	"github.com/hpclab/timeplot/timelog"
)

// A Set is a group of timing series sharing one problem-size axis.
// Every series in Values has exactly len(N) entries; a missing
// measurement is NaN.
//
// A Set must not be modified after construction.
type Set struct {
	// N is the problem size of each run, in log order.
	N []int
	// Labels lists the variant labels in order of first appearance.
	Labels []string
	// Values maps each label to its durations in milliseconds,
	// aligned by index with N.
	Values map[string][]float64

	ratios map[string]bool
}

// Options control how runs are pivoted into a Set.
type Options struct {
	// Strict rejects runs that are missing a measurement for some
	// label. Otherwise the missing entry is NaN.
	Strict bool

	// Warn, if non-nil, is called for each missing measurement
	// that is padded with NaN.
	Warn func(format string, args ...interface{})

	// Labels lists labels every run is expected to have. A label
	// that appears in no run still gets a series, after the labels
	// that do appear, and each run is missing it.
	Labels []string
}

// A RaggedError reports a run that is missing a measurement for a
// label seen in other runs.
type RaggedError struct {
	Label string
	N     int
	Index int // index of the run
}

func (e *RaggedError) Error() string {
	return fmt.Sprintf("run %d (N = %d) has no %s measurement", e.Index, e.N, e.Label)
}

// A ShapeError reports series whose lengths should agree but don't.
type ShapeError struct {
	What      string
	Got, Want int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: length %d, want %d", e.What, e.Got, e.Want)
}

// FromRuns pivots runs into a Set. Labels are ordered by their first
// appearance across runs.
func FromRuns(runs []*timelog.Run, opts *Options) (*Set, error) {
	if opts == nil {
		opts = &Options{}
	}
	s := &Set{
		N:      make([]int, len(runs)),
		Values: make(map[string][]float64),
	}
	for _, run := range runs {
		for _, label := range run.Labels {
			if _, ok := s.Values[label]; !ok {
				s.Labels = append(s.Labels, label)
				s.Values[label] = make([]float64, 0, len(runs))
			}
		}
	}
	for _, label := range opts.Labels {
		if _, ok := s.Values[label]; !ok {
			s.Labels = append(s.Labels, label)
			s.Values[label] = make([]float64, 0, len(runs))
		}
	}
	for i, run := range runs {
		s.N[i] = run.N
		for _, label := range s.Labels {
			v, ok := run.Measurements[label]
			if !ok {
				if opts.Strict {
					return nil, &RaggedError{label, run.N, i}
				}
				if opts.Warn != nil {
					opts.Warn("%s:%d: run %d (N = %d): no %s measurement\n", run.FileName, run.Line, i, run.N, label)
				}
				v = math.NaN()
			}
			s.Values[label] = append(s.Values[label], v)
		}
	}
	return s, nil
}

// New returns a Set from literal data. The labels are taken in the
// given order and each must have a series in values of length len(n).
func New(n []int, labels []string, values map[string][]float64) (*Set, error) {
	s := &Set{
		N:      append([]int(nil), n...),
		Labels: append([]string(nil), labels...),
		Values: make(map[string][]float64, len(labels)),
	}
	for _, label := range labels {
		vs, ok := values[label]
		if !ok {
			return nil, fmt.Errorf("no series for label %q", label)
		}
		if len(vs) != len(n) {
			return nil, &ShapeError{label, len(vs), len(n)}
		}
		s.Values[label] = append([]float64(nil), vs...)
	}
	return s, nil
}

// Series returns the values for label, or nil if there is none.
func (s *Set) Series(label string) []float64 {
	return s.Values[label]
}

// XYs returns the defined points of label's series as (N, value)
// pairs, skipping NaN entries.
func (s *Set) XYs(label string) (xs, ys []float64) {
	for i, v := range s.Values[label] {
		if math.IsNaN(v) {
			continue
		}
		xs = append(xs, float64(s.N[i]))
		ys = append(ys, v)
	}
	return
}

// WithRatio returns a copy of s with an extra dimensionless series,
// such as a speedup. It returns a *ShapeError if vs is not aligned
// with s.N.
func (s *Set) WithRatio(label string, vs []float64) (*Set, error) {
	if len(vs) != len(s.N) {
		return nil, &ShapeError{label, len(vs), len(s.N)}
	}
	values := make(map[string][]float64, len(s.Values)+1)
	for k, v := range s.Values {
		values[k] = v
	}
	values[label] = vs
	labels := s.Labels
	if _, ok := s.Values[label]; !ok {
		labels = append(labels[:len(labels):len(labels)], label)
	}
	ns, err := New(s.N, labels, values)
	if err != nil {
		return nil, err
	}
	ns.ratios = map[string]bool{label: true}
	for k := range s.ratios {
		ns.ratios[k] = true
	}
	return ns, nil
}

// IsRatio reports whether label's series is dimensionless rather than
// a duration in milliseconds.
func (s *Set) IsRatio(label string) bool {
	return s.ratios[label]
}

func (s *Set) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "N=%v", s.N)
	for _, label := range s.Labels {
		fmt.Fprintf(&b, " %s=%v", label, s.Values[label])
	}
	return b.String()
}
