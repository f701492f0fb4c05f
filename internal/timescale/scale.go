// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timescale formats millisecond durations with SI prefixes.
package timescale

import (
	"fmt"
	"math"
	"strconv"
)

// A Scaler represents a scaling factor for a duration in seconds and
// its printed prefix.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Seconds in 1 Prefix-second (e.g., 1 ms => 1e-3)
	Prefix string  // Unit prefix ("m", "µ", etc)
}

// Format formats a duration given in seconds, appending the prefixed
// unit "s". For example, a millisecond Scaler formats 0.0123 as
// "12.30ms".
func (s Scaler) Format(sec float64) string {
	if math.IsNaN(sec) {
		return "-"
	}
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, sec/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	buf = append(buf, 's')
	return string(buf)
}

// FormatMillis formats a duration given in milliseconds.
func (s Scaler) FormatMillis(ms float64) string {
	return s.Format(ms * 1e-3)
}

type factor struct {
	factor float64
	prefix string
	// Thresholds for 100.0, 10.00, 1.000.
	t100, t10, t1 float64
}

var factors = mkFactors()

func mkFactors() []factor {
	// Build the thresholds from the printed representation so they
	// round exactly the way Format will.
	var factors []factor
	exp := 0
	for _, p := range []string{"", "m", "µ", "n"} {
		t100, _ := strconv.ParseFloat(fmt.Sprintf("99.995e%d", exp), 64)
		t10, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		t1, _ := strconv.ParseFloat(fmt.Sprintf(".99995e%d", exp), 64)
		factors = append(factors, factor{math.Pow(10, float64(exp)), p, t100, t10, t1})
		exp -= 3
	}
	return factors
}

// Millis returns a common Scaler for durations given in milliseconds.
// It shows at least three significant digits of the smallest non-zero
// defined value.
func Millis(ms []float64) Scaler {
	var min float64
	for _, v := range ms {
		v = math.Abs(v) * 1e-3
		if math.IsNaN(v) || v == 0 {
			continue
		}
		if min == 0 || v < min {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1e-3, "m"}
	}
	for _, f := range factors {
		switch {
		case min >= f.t100:
			return Scaler{1, f.factor, f.prefix}
		case min >= f.t10:
			return Scaler{2, f.factor, f.prefix}
		case min >= f.t1:
			return Scaler{3, f.factor, f.prefix}
		}
	}
	// Below a nanosecond; print more digits.
	f := factors[len(factors)-1]
	return Scaler{6, f.factor, f.prefix}
}
