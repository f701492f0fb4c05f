// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import "fmt"

// A DomainError reports a zero divisor in a ratio computation.
type DomainError struct {
	Index int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("division by zero at index %d", e.Index)
}

// Speedup returns serial[i] / parallel[i] for every i.
//
// The inputs must have the same length, otherwise Speedup returns a
// *ShapeError. A zero parallel value is a *DomainError. Non-finite
// inputs follow IEEE 754 division, so NaN propagates as NaN.
func Speedup(serial, parallel []float64) ([]float64, error) {
	if len(serial) != len(parallel) {
		return nil, &ShapeError{"parallel", len(parallel), len(serial)}
	}
	out := make([]float64, len(serial))
	for i, p := range parallel {
		if p == 0 {
			return nil, &DomainError{i}
		}
		out[i] = serial[i] / p
	}
	return out, nil
}

// Speedup returns the elementwise ratio of the baseline series to the
// comparison series.
func (s *Set) Speedup(baseline, comparison string) ([]float64, error) {
	b, ok := s.Values[baseline]
	if !ok {
		return nil, fmt.Errorf("no series %q", baseline)
	}
	c, ok := s.Values[comparison]
	if !ok {
		return nil, fmt.Errorf("no series %q", comparison)
	}
	sp, err := Speedup(b, c)
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", baseline, comparison, err)
	}
	return sp, nil
}
