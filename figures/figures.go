// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figures holds the built-in chart configurations and the
// timing tables recorded for them.
package figures

import (
	"fmt"
	"sort"

	"github.com/hpclab/timeplot/chart"
	"github.com/hpclab/timeplot/series"
)

// A Builtin is a figure together with where its data comes from.
type Builtin struct {
	chart.Figure

	// Labels are the log labels to recognize, in priority order,
	// when the figure is drawn from a timing log.
	Labels []string

	// Data returns the recorded timings for the figure. It is nil
	// for figures that can only be drawn from a timing log.
	Data func() (*series.Set, error)

	// Speedup, if set, derives a ratio series named Speedup.Key
	// from Baseline / Comparison before drawing.
	Speedup *SpeedupOf
}

// SpeedupOf describes a derived speedup series.
type SpeedupOf struct {
	Key                  string
	Baseline, Comparison string
}

// Prepare returns the series to draw for b. Series read from a
// timing log take precedence over recorded data; logged may be nil
// for figures that have recorded data.
func (b *Builtin) Prepare(logged *series.Set) (*series.Set, error) {
	s := logged
	if s == nil && b.Data != nil {
		var err error
		if s, err = b.Data(); err != nil {
			return nil, fmt.Errorf("figure %s: %w", b.Name, err)
		}
	}
	if s == nil {
		return nil, fmt.Errorf("figure %s needs a timing log", b.Name)
	}
	if sp := b.Speedup; sp != nil {
		ratios, err := s.Speedup(sp.Baseline, sp.Comparison)
		if err != nil {
			return nil, fmt.Errorf("figure %s: %w", b.Name, err)
		}
		if s, err = s.WithRatio(sp.Key, ratios); err != nil {
			return nil, fmt.Errorf("figure %s: %w", b.Name, err)
		}
	}
	return s, nil
}

var builtins = map[string]*Builtin{}

func register(b *Builtin) {
	if _, ok := builtins[b.Name]; ok {
		panic("duplicate figure " + b.Name)
	}
	builtins[b.Name] = b
}

// Lookup returns the built-in figure with the given name.
func Lookup(name string) (*Builtin, bool) {
	b, ok := builtins[name]
	return b, ok
}

// Names returns the names of all built-in figures, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
