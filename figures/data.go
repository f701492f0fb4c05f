// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figures

import (
	"github.com/hpclab/timeplot/chart"
	"github.com/hpclab/timeplot/series"
)

func table(n []int, cols ...column) func() (*series.Set, error) {
	return func() (*series.Set, error) {
		labels := make([]string, len(cols))
		values := make(map[string][]float64, len(cols))
		for i, c := range cols {
			labels[i] = c.label
			values[c.label] = c.ms
		}
		return series.New(n, labels, values)
	}
}

type column struct {
	label string
	ms    []float64
}

// Matrix-vector timings, problem sizes 200 to 6000.
var (
	largeSizes    = []int{200, 500, 1000, 2000, 3000, 4000, 5000, 6000}
	largeSerial   = []float64{19.284, 301.546, 2434.87, 19620.7, 65878.5, 158788, 259545.3, 448727.686}
	largeParallel = []float64{12.712, 197.319, 1592.47, 12837.6, 42919.8, 103591, 169738.75, 292886.5}
)

// Sparse workload timings.
var (
	sparseSizes    = []int{8399, 23045, 37960}
	sparseSerial   = []float64{97.412, 227.282, 475.283}
	sparseParallel = []float64{82.391, 216.58, 438.493}
)

func init() {
	register(&Builtin{
		Figure: chart.Figure{
			Name:   "loop",
			Title:  "Performance Comparison",
			XLabel: "N Value",
			YLabel: "Execution Time (ms)",
			Lines: []chart.Line{
				{Key: "ordinary", Legend: "Ordinary", Style: chart.Style{Color: "blue"}},
				{Key: "optimize", Legend: "Optimize", Style: chart.Style{Color: "red"}},
				{Key: "unroll", Legend: "Unroll", Style: chart.Style{Color: "green"}},
			},
		},
		Labels: []string{"ordinary", "optimize", "unroll"},
	})

	register(&Builtin{
		Figure: chart.Figure{
			Name:   "simd",
			Title:  "Development Execution Time Comparison",
			XLabel: "Data Point Index",
			YLabel: "Execution Time (ms)",
			Lines: []chart.Line{
				{Key: "sse", Legend: "SSE", Style: chart.Style{Color: "blue", Dash: "-", Marker: "o"}},
				{Key: "avx256", Legend: "AVX-256", Style: chart.Style{Color: "green", Dash: "--", Marker: "s"}},
				{Key: "avx512", Legend: "AVX-512", Style: chart.Style{Color: "red", Dash: "-.", Marker: "^"}},
			},
		},
		Labels: []string{"sse", "avx256", "avx512"},
		Data: table([]int{1, 2, 3, 4, 5},
			column{"sse", []float64{4.36, 7.912, 80.62, 517.78, 2542.37}},
			column{"avx256", []float64{3.84, 6.14, 57.55, 471.40, 2317.17}},
			column{"avx512", []float64{1.6, 3.87, 52.49, 452.24, 2111.37}},
		),
	})

	register(&Builtin{
		Figure: chart.Figure{
			Name:   "cache",
			Title:  "Performance Comparison: Naive vs. Cache Optimized Algorithms",
			XLabel: "Problem Size",
			YLabel: "Execution Time (ms)",
			Lines: []chart.Line{
				{Key: "naive", Legend: "Naive Algorithm (Serial)", Style: chart.Style{Marker: "o"}},
				{Key: "cache", Legend: "Cache Optimized (Serial)", Style: chart.Style{Marker: "s"}},
			},
		},
		Labels: []string{"naive", "cache"},
		Data: table([]int{200, 500, 1000, 2000, 3000},
			column{"naive", []float64{19.288, 300.876, 2509.59, 20975.7, 58691.8}},
			column{"cache", []float64{19.357, 300.75, 2503.35, 19635.5, 52580.6}},
		),
	})

	timeLines := []chart.Line{
		{Key: "serial", Legend: "Serial Time", Style: chart.Style{Marker: "o"}},
		{Key: "parallel", Legend: "Parallel Time", Style: chart.Style{Marker: "o"}},
	}
	speedupLines := []chart.Line{
		{Key: "speedup", Legend: "Speedup", Style: chart.Style{Marker: "o"}},
	}
	serialParallel := []string{"serial", "parallel"}
	speedup := &SpeedupOf{Key: "speedup", Baseline: "serial", Comparison: "parallel"}

	for _, d := range []struct {
		suffix           string
		n                []int
		serial, parallel []float64
		logY             bool
	}{
		{"", sparseSizes, sparseSerial, sparseParallel, false},
		// Large timings span 19ms to 448s.
		{"-large", largeSizes, largeSerial, largeParallel, true},
	} {
		data := table(d.n, column{"serial", d.serial}, column{"parallel", d.parallel})
		register(&Builtin{
			Figure: chart.Figure{
				Name:   "parallel" + d.suffix,
				Title:  "Serial Time vs Parallel Time",
				XLabel: "Problem Size",
				YLabel: "Time (ms)",
				Lines:  timeLines,
				LogY:   d.logY,
			},
			Labels: serialParallel,
			Data:   data,
		})
		register(&Builtin{
			Figure: chart.Figure{
				Name:   "speedup" + d.suffix,
				Title:  "Speedup vs Problem Size",
				XLabel: "Problem Size",
				YLabel: "Speedup",
				Lines:  speedupLines,
			},
			Labels:  serialParallel,
			Data:    data,
			Speedup: speedup,
		})
	}
}
