// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Summary describes the defined values of one series.
type Summary struct {
	Count          int
	Min, Max, Mean float64
	// GeoMean is NaN if any value is not positive.
	GeoMean float64
}

// Summarize summarizes the non-NaN values of xs. If there are none,
// every field but Count is NaN.
func Summarize(xs []float64) Summary {
	def := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			def = append(def, x)
		}
	}
	if len(def) == 0 {
		nan := math.NaN()
		return Summary{0, nan, nan, nan, nan}
	}
	s := Summary{Count: len(def)}
	s.Min, s.Max = stats.Bounds(def)
	s.Mean = stats.Mean(def)
	s.GeoMean = math.NaN()
	if s.Min > 0 {
		s.GeoMean = stats.GeoMean(def)
	}
	return s
}
