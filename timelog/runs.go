// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timelog

import (
	"io"
	"os"
)

// A Run is the block of measurements following one
// "Testing with N = " line, up to the next such line or EOF.
type Run struct {
	N int
	// FileName and Line give the position of the marker line.
	FileName string
	Line     int
	// Measurements maps a variant label to its duration in
	// milliseconds. If a label repeats within a run, the last value
	// wins.
	Measurements map[string]float64
	// Labels lists the keys of Measurements in the order they were
	// first seen in this run.
	Labels []string
}

func (r *Run) set(label string, v float64) {
	if _, ok := r.Measurements[label]; !ok {
		r.Labels = append(r.Labels, label)
	}
	r.Measurements[label] = v
}

// ReadRuns reads the whole timing log from r and groups it into runs.
// Measurements that appear before the first marker line belong to no
// run and are dropped. On a malformed line it returns the
// *ParseError and no runs.
func ReadRuns(r io.Reader, fileName string, labels ...string) ([]*Run, error) {
	var runs []*Run
	var cur *Run
	lr := NewReader(r, fileName, labels...)
	for lr.Scan() {
		switch rec := lr.Record().(type) {
		case *Marker:
			cur = &Run{N: rec.N, Measurements: make(map[string]float64)}
			cur.FileName, cur.Line = rec.Pos()
			runs = append(runs, cur)
		case *Measurement:
			if cur != nil {
				cur.set(rec.Label, rec.Value)
			}
		}
	}
	if err := lr.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// ParseFile reads the timing log at path and groups it into runs.
// The path "-" reads standard input. The file is closed before
// ParseFile returns, including when the log is malformed.
func ParseFile(path string, labels ...string) ([]*Run, error) {
	if path == "-" {
		return ReadRuns(os.Stdin, "<stdin>", labels...)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRuns(f, path, labels...)
}
