// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/hpclab/timeplot/timelog"
)

func parse(t *testing.T, log string, opts *Options) *Set {
	t.Helper()
	runs, err := timelog.ReadRuns(strings.NewReader(log), "test")
	if err != nil {
		t.Fatal(err)
	}
	s, err := FromRuns(runs, opts)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFromRuns(t *testing.T) {
	s := parse(t, "Testing with N = 5\nordinary:12.3ms\n", nil)
	if !reflect.DeepEqual(s.N, []int{5}) {
		t.Errorf("N = %v, want [5]", s.N)
	}
	if got := s.Series("ordinary"); !reflect.DeepEqual(got, []float64{12.3}) {
		t.Errorf("ordinary = %v, want [12.3]", got)
	}

	s = parse(t, `Testing with N = 100
unroll:3ms
ordinary:10ms
ordinary:11ms
Testing with N = 200
ordinary:40ms
unroll:12ms
`, nil)
	if !reflect.DeepEqual(s.Labels, []string{"unroll", "ordinary"}) {
		t.Errorf("Labels = %v", s.Labels)
	}
	if got := s.Series("ordinary"); !reflect.DeepEqual(got, []float64{11, 40}) {
		t.Errorf("ordinary = %v, want last write to win", got)
	}
	if got := s.Series("unroll"); !reflect.DeepEqual(got, []float64{3, 12}) {
		t.Errorf("unroll = %v", got)
	}
}

const raggedLog = `Testing with N = 1
ordinary:1ms
optimize:2ms
Testing with N = 2
ordinary:3ms
Testing with N = 3
ordinary:5ms
optimize:6ms
`

func TestRagged(t *testing.T) {
	var warnings []string
	s := parse(t, raggedLog, &Options{Warn: func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}})
	opt := s.Series("optimize")
	if len(opt) != 3 || opt[0] != 2 || !math.IsNaN(opt[1]) || opt[2] != 6 {
		t.Errorf("optimize = %v, want [2 NaN 6]", opt)
	}
	if want := []string{"test:4: run 1 (N = 2): no optimize measurement\n"}; !reflect.DeepEqual(warnings, want) {
		t.Errorf("warnings = %q, want %q", warnings, want)
	}
	xs, ys := s.XYs("optimize")
	if !reflect.DeepEqual(xs, []float64{1, 3}) || !reflect.DeepEqual(ys, []float64{2, 6}) {
		t.Errorf("XYs = %v, %v", xs, ys)
	}

	runs, err := timelog.ReadRuns(strings.NewReader(raggedLog), "test")
	if err != nil {
		t.Fatal(err)
	}
	_, err = FromRuns(runs, &Options{Strict: true})
	var re *RaggedError
	if !errors.As(err, &re) {
		t.Fatalf("want *RaggedError, got %v", err)
	}
	if re.Label != "optimize" || re.N != 2 || re.Index != 1 {
		t.Errorf("got %+v", re)
	}
}

// A label that never appears is padded like one that is sometimes
// missing.
func TestExpectedLabels(t *testing.T) {
	const log = "Testing with N = 1\nordinary:1ms\nunroll:2ms\nTesting with N = 2\nordinary:3ms\nunroll:4ms\n"
	runs, err := timelog.ReadRuns(strings.NewReader(log), "test")
	if err != nil {
		t.Fatal(err)
	}
	var warnings []string
	s, err := FromRuns(runs, &Options{
		Labels: []string{"ordinary", "optimize", "unroll"},
		Warn: func(format string, args ...interface{}) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"ordinary", "unroll", "optimize"}; !reflect.DeepEqual(s.Labels, want) {
		t.Errorf("Labels = %v, want %v", s.Labels, want)
	}
	if opt := s.Series("optimize"); len(opt) != 2 || !math.IsNaN(opt[0]) || !math.IsNaN(opt[1]) {
		t.Errorf("optimize = %v, want [NaN NaN]", opt)
	}
	want := []string{
		"test:1: run 0 (N = 1): no optimize measurement\n",
		"test:4: run 1 (N = 2): no optimize measurement\n",
	}
	if !reflect.DeepEqual(warnings, want) {
		t.Errorf("warnings = %q, want %q", warnings, want)
	}

	_, err = FromRuns(runs, &Options{Strict: true, Labels: []string{"ordinary", "optimize"}})
	var re *RaggedError
	if !errors.As(err, &re) || re.Label != "optimize" || re.Index != 0 {
		t.Errorf("strict: want RaggedError for optimize at run 0, got %v", err)
	}
}

func TestNew(t *testing.T) {
	s, err := New([]int{200, 500}, []string{"naive", "cache"}, map[string][]float64{
		"naive": {19.288, 300.876},
		"cache": {19.357, 300.75},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.String(), "N=[200 500] naive=[19.288 300.876] cache=[19.357 300.75]"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	_, err = New([]int{1, 2}, []string{"a"}, map[string][]float64{"a": {1}})
	var se *ShapeError
	if !errors.As(err, &se) || se.Got != 1 || se.Want != 2 {
		t.Errorf("want *ShapeError, got %v", err)
	}

	if _, err := New([]int{1}, []string{"a"}, nil); err == nil {
		t.Error("want error for missing series")
	}
}

// Every series of a well-formed log is aligned with N, whatever
// subset of labels each run reports.
func TestAlignedProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		labels := timelog.DefaultLabels
		nruns := rapid.IntRange(0, 8).Draw(t, "runs")
		var b strings.Builder
		seen := make(map[string]bool)
		for i := 0; i < nruns; i++ {
			fmt.Fprintf(&b, "Testing with N = %d\n", rapid.IntRange(1, 100000).Draw(t, "n"))
			for _, label := range labels {
				if rapid.Bool().Draw(t, "present") {
					seen[label] = true
					fmt.Fprintf(&b, "%s:%gms\n", label, rapid.Float64Range(0, 1e6).Draw(t, "v"))
				}
			}
			if rapid.Bool().Draw(t, "noise") {
				b.WriteString("some unrelated output\n")
			}
		}
		runs, err := timelog.ReadRuns(strings.NewReader(b.String()), "gen")
		if err != nil {
			t.Fatal(err)
		}
		s, err := FromRuns(runs, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(s.N) != nruns {
			t.Fatalf("len(N) = %d, want %d", len(s.N), nruns)
		}
		if len(s.Labels) != len(seen) {
			t.Fatalf("labels %v, want %d", s.Labels, len(seen))
		}
		for _, label := range s.Labels {
			if got := len(s.Series(label)); got != len(s.N) {
				t.Fatalf("len(%s) = %d, want %d", label, got, len(s.N))
			}
		}
	})
}

func TestSpeedup(t *testing.T) {
	got, err := Speedup([]float64{97.412, 227.282}, []float64{82.391, 216.58})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1.1823, 1.0494}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-3 {
			t.Errorf("speedup[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	_, err = Speedup([]float64{1.0}, []float64{0.0})
	var de *DomainError
	if !errors.As(err, &de) || de.Index != 0 {
		t.Errorf("want *DomainError at 0, got %v", err)
	}

	_, err = Speedup([]float64{1, 2}, []float64{1})
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Errorf("want *ShapeError, got %v", err)
	}

	got, err = Speedup([]float64{math.NaN(), math.Inf(1)}, []float64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(got[0]) || !math.IsInf(got[1], 1) {
		t.Errorf("non-finite inputs: got %v", got)
	}
}

func TestSetSpeedup(t *testing.T) {
	s, err := New([]int{8399, 23045}, []string{"serial", "parallel"}, map[string][]float64{
		"serial":   {97.412, 227.282},
		"parallel": {82.391, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.Speedup("serial", "parallel")
	var de *DomainError
	if !errors.As(err, &de) || de.Index != 1 {
		t.Errorf("want wrapped *DomainError at 1, got %v", err)
	}
	if _, err := s.Speedup("serial", "missing"); err == nil {
		t.Error("want error for missing series")
	}

	sp, err := Speedup(s.Series("parallel"), s.Series("serial"))
	if err != nil {
		t.Fatal(err)
	}
	s2, err := s.WithRatio("speedup", sp)
	if err != nil {
		t.Fatal(err)
	}
	if !s2.IsRatio("speedup") || s2.IsRatio("serial") || s.IsRatio("speedup") {
		t.Error("ratio flags not tracked per set")
	}
	if !reflect.DeepEqual(s2.Labels, []string{"serial", "parallel", "speedup"}) {
		t.Errorf("Labels = %v", s2.Labels)
	}
	if len(s.Labels) != 2 {
		t.Errorf("WithRatio modified receiver: %v", s.Labels)
	}
	if _, err := s.WithRatio("short", []float64{1}); err == nil {
		t.Error("want *ShapeError for misaligned ratio")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, math.NaN(), 4})
	if s.Count != 2 || s.Min != 1 || s.Max != 4 || s.Mean != 2.5 || math.Abs(s.GeoMean-2) > 1e-12 {
		t.Errorf("got %+v", s)
	}
	s = Summarize([]float64{0, 2})
	if !math.IsNaN(s.GeoMean) || s.Mean != 1 {
		t.Errorf("got %+v", s)
	}
	s = Summarize(nil)
	if s.Count != 0 || !math.IsNaN(s.Mean) {
		t.Errorf("got %+v", s)
	}
}
