// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/google/safehtml/template"

	"github.com/hpclab/timeplot/internal/texttab"
	"github.com/hpclab/timeplot/internal/timescale"
)

// WriteCSV writes s as CSV: a header of "N" and the labels, then one
// row per run. Durations are in milliseconds with full precision and
// missing values are empty.
func WriteCSV(w io.Writer, s *Set) error {
	tab := make([][]string, 0, len(s.N)+1)
	tab = append(tab, append([]string{"N"}, s.Labels...))
	for i, n := range s.N {
		row := []string{strconv.Itoa(n)}
		for _, label := range s.Labels {
			row = append(row, csvFloat(s.Values[label][i]))
		}
		tab = append(tab, row)
	}
	return csv.NewWriter(w).WriteAll(tab)
}

func csvFloat(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// cellFormatter returns the text formatter for label's column.
func (s *Set) cellFormatter(label string) func(float64) string {
	if s.IsRatio(label) {
		return func(x float64) string {
			if math.IsNaN(x) {
				return "-"
			}
			return strconv.FormatFloat(x, 'f', 3, 64) + "x"
		}
	}
	return timescale.Millis(s.Values[label]).FormatMillis
}

// rows returns the header and body of the human-readable table,
// including a trailing geomean row.
func (s *Set) rows() (hdr []string, body [][]string) {
	hdr = append([]string{"N"}, s.Labels...)
	fmts := make([]func(float64) string, len(s.Labels))
	for j, label := range s.Labels {
		fmts[j] = s.cellFormatter(label)
	}
	for i, n := range s.N {
		row := []string{strconv.Itoa(n)}
		for j, label := range s.Labels {
			row = append(row, fmts[j](s.Values[label][i]))
		}
		body = append(body, row)
	}
	if len(s.N) > 1 {
		row := []string{"geomean"}
		for j, label := range s.Labels {
			row = append(row, fmts[j](Summarize(s.Values[label]).GeoMean))
		}
		body = append(body, row)
	}
	return
}

// WriteText writes s as an aligned text table with scaled durations.
func WriteText(w io.Writer, s *Set) error {
	var tab texttab.Table
	hdr, body := s.rows()
	tab.Row()
	for i, h := range hdr {
		if i == 0 {
			tab.Cell(h)
		} else {
			tab.Cell(h, texttab.Right)
		}
	}
	for _, row := range body {
		tab.Row()
		for i, c := range row {
			if i == 0 {
				tab.Cell(c)
			} else {
				tab.Cell(c, texttab.Right)
			}
		}
	}
	return tab.Format(w)
}

var htmlTemplate = template.Must(template.New("series").Parse(`<table class='timeplot'>
{{- with .Title}}
<caption>{{.}}</caption>
{{- end}}
<thead>
<tr>{{range .Header}}<th>{{.}}{{end}}
</thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}{{end}}
{{- end}}
</tbody>
</table>
`))

// WriteHTML writes s as an HTML table captioned with title.
func WriteHTML(w io.Writer, s *Set, title string) error {
	hdr, body := s.rows()
	return htmlTemplate.Execute(w, struct {
		Title  string
		Header []string
		Rows   [][]string
	}{title, hdr, body})
}
