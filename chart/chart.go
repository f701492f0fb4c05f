// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders timing series as line charts.
//
// A Figure names which series of a series.Set to draw and how; one
// Render call handles every figure.
package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hpclab/timeplot/series"
)

// A Line draws the series with the given key.
type Line struct {
	Key    string // label in the series.Set
	Legend string // legend text; Key if empty
	Style  Style
}

// A Figure describes one chart.
type Figure struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	Lines  []Line
	// LogY draws the Y axis on a log scale. Every drawn value must
	// then be positive.
	LogY bool
}

// Default figure size, matching a 10x6 inch canvas.
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// Render draws the lines of fig from set. Lines whose series has no
// defined points are left out. It is an error for a line to name a
// label that set does not have.
func Render(fig *Figure, set *series.Set) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	if fig.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	for i, l := range fig.Lines {
		if _, ok := set.Values[l.Key]; !ok {
			return nil, fmt.Errorf("figure %s: no series %q", fig.Name, l.Key)
		}
		xs, ys := set.XYs(l.Key)
		if len(xs) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(xs))
		for j := range xs {
			if fig.LogY && ys[j] <= 0 {
				return nil, fmt.Errorf("figure %s: %s: value %v at N = %v on a log scale", fig.Name, l.Key, ys[j], xs[j])
			}
			xys[j].X, xys[j].Y = xs[j], ys[j]
		}
		if err := addLine(p, i, l, xys); err != nil {
			return nil, fmt.Errorf("figure %s: %s: %w", fig.Name, l.Key, err)
		}
	}
	return p, nil
}

func addLine(p *plot.Plot, i int, l Line, xys plotter.XYs) error {
	clr, err := l.Style.color(i)
	if err != nil {
		return err
	}
	dashes, err := l.Style.dashes()
	if err != nil {
		return err
	}
	glyph, err := l.Style.glyph()
	if err != nil {
		return err
	}
	legend := l.Legend
	if legend == "" {
		legend = l.Key
	}

	if glyph == nil {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Color = clr
		line.LineStyle.Width = l.Style.width()
		line.LineStyle.Dashes = dashes
		p.Add(line)
		p.Legend.Add(legend, line)
		return nil
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Color = clr
	line.LineStyle.Width = l.Style.width()
	line.LineStyle.Dashes = dashes
	points.GlyphStyle.Color = clr
	points.GlyphStyle.Shape = glyph
	points.GlyphStyle.Radius = vg.Points(3)
	p.Add(line, points)
	p.Legend.Add(legend, line, points)
	return nil
}

// Save writes p to path at the default size in the given format.
// An empty format is taken from the file extension. Nothing is
// created when the format is unsupported.
func Save(p *plot.Plot, path, format string) error {
	if format == "" {
		format = FormatOf(path)
	}
	wt, err := writerTo(p, format)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTo writes p to w in the named format at the default size.
func WriteTo(w io.Writer, p *plot.Plot, format string) error {
	wt, err := writerTo(p, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func writerTo(p *plot.Plot, format string) (io.WriterTo, error) {
	if err := CheckFormat(format); err != nil {
		return nil, err
	}
	return p.WriterTo(DefaultWidth, DefaultHeight, strings.ToLower(format))
}

// Formats lists the supported chart formats.
var Formats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tex", "tif", "tiff"}

// CheckFormat reports whether format is one of Formats.
func CheckFormat(format string) error {
	f := strings.ToLower(format)
	for _, ok := range Formats {
		if f == ok {
			return nil
		}
	}
	return fmt.Errorf("unsupported chart format %q; have %s", format, strings.Join(Formats, ", "))
}

// FormatOf returns the chart format implied by path's extension.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
