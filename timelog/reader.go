// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timelog

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// DefaultLabels are the variant labels recognized when a Reader is
// constructed without an explicit label list, in priority order.
var DefaultLabels = []string{"ordinary", "optimize", "unroll"}

// A Reader reads a benchmark timing log.
//
// Its API is modeled on bufio.Scanner. A Reader retains ownership of
// the Records it returns; a caller should copy anything it needs to
// keep past the next call to Scan.
type Reader struct {
	s   *bufio.Scanner
	err error

	fileName string
	line     int

	rules []rule

	marker Marker
	meas   Measurement
	rec    Record
}

// A Record is a single recognized line of a timing log. It is either
// a *Marker or a *Measurement.
type Record interface {
	// Pos returns the file name and 1-based line number the record
	// was read from.
	Pos() (fileName string, line int)
}

// A Marker is a "Testing with N = <n>" line. It starts a new run.
type Marker struct {
	N int

	fileName string
	line     int
}

func (m *Marker) Pos() (string, int) { return m.fileName, m.line }

// A Measurement is a "<label>:<value>ms" line.
type Measurement struct {
	Label string
	// Value is the duration in milliseconds.
	Value float64

	fileName string
	line     int
}

func (m *Measurement) Pos() (string, int) { return m.fileName, m.line }

var _ Record = (*Marker)(nil)
var _ Record = (*Measurement)(nil)

// A ParseError reports a line that matched a recognized shape but
// whose numeric part could not be parsed.
type ParseError struct {
	FileName string
	Line     int
	Text     string // the offending line
	Msg      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.FileName, e.Line, e.Msg, e.Text)
}

// A rule classifies one line shape. Rules are tried in order and the
// first whose match reports true handles the line.
type rule struct {
	match func(line []byte) bool
	parse func(r *Reader, line []byte) error
}

// NewReader returns a Reader that parses the timing log in r.
// fileName is used in error messages only.
//
// labels lists the variant labels to recognize, in priority order.
// If labels is empty, DefaultLabels is used.
func NewReader(r io.Reader, fileName string, labels ...string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	if len(labels) == 0 {
		labels = DefaultLabels
	}
	reader := &Reader{
		s:        bufio.NewScanner(r),
		fileName: fileName,
	}
	reader.rules = append(reader.rules, rule{isMarkerLine, (*Reader).parseMarker})
	for _, label := range labels {
		key := []byte(label + ":")
		label := label
		reader.rules = append(reader.rules, rule{
			match: func(line []byte) bool { return labelIndex(line, key) >= 0 },
			parse: func(r *Reader, line []byte) error { return r.parseMeasurement(label, line) },
		})
	}
	return reader
}

// Scan advances to the next recognized line and reports whether one
// was read. Unrecognized lines are skipped. Scan returns false at EOF,
// on an I/O error, or on the first malformed line; the caller should
// then check Err.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	r.rec = nil
	for r.s.Scan() {
		r.line++
		line := r.s.Bytes()
		for _, ru := range r.rules {
			if !ru.match(line) {
				continue
			}
			if err := ru.parse(r, line); err != nil {
				r.err = err
				return false
			}
			return true
		}
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// Record returns the record read by the last call to Scan, or nil if
// Scan has not returned true.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first parse or non-EOF I/O error encountered by the
// Reader. A malformed line is reported as a *ParseError.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) newParseError(line []byte, msg string) *ParseError {
	return &ParseError{r.fileName, r.line, string(line), msg}
}

var (
	markerText = []byte("Testing with N = ")
	markerSep  = []byte("= ")
	unitSuffix = []byte("ms")
)

func isMarkerLine(line []byte) bool {
	return bytes.Contains(line, markerText)
}

func (r *Reader) parseMarker(line []byte) error {
	f := line[bytes.LastIndex(line, markerSep)+len(markerSep):]
	f = bytes.TrimSpace(f)
	n, err := strconv.Atoi(string(f))
	if err != nil {
		return r.newParseError(line, "expected Testing with N = <integer>: "+numErr(err))
	}
	r.marker = Marker{N: n, fileName: r.fileName, line: r.line}
	r.rec = &r.marker
	return nil
}

func (r *Reader) parseMeasurement(label string, line []byte) error {
	// The value is the field after the first colon of the line.
	f := line[bytes.IndexByte(line, ':')+1:]
	if j := bytes.IndexByte(f, ':'); j >= 0 {
		f = f[:j]
	}
	f = bytes.TrimSpace(f)
	f = bytes.TrimSuffix(f, unitSuffix)
	f = bytes.TrimSpace(f)
	val, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return r.newParseError(line, "expected "+label+":<float>ms: "+numErr(err))
	}
	r.meas = Measurement{Label: label, Value: val, fileName: r.fileName, line: r.line}
	r.rec = &r.meas
	return nil
}

// labelIndex returns the index of the first occurrence of key in line
// that does not directly follow an identifier character, or -1.
func labelIndex(line, key []byte) int {
	off := 0
	for {
		i := bytes.Index(line[off:], key)
		if i < 0 {
			return -1
		}
		i += off
		if i == 0 {
			return 0
		}
		prev, _ := utf8.DecodeLastRune(line[:i])
		if !(prev == '_' || unicode.IsLetter(prev) || unicode.IsDigit(prev)) {
			return i
		}
		off = i + 1
	}
}

func numErr(err error) string {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err.Error()
	}
	return err.Error()
}
