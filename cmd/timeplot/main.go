// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Timeplot tabulates and charts execution-time measurements of
// benchmark variants across problem sizes.
//
// Usage:
//
//	timeplot [-figure name] [-labels a,b,c] [-strict] [-format text|csv|html|none] [-o chart.png] [-chartformat fmt] [-logy] [log.txt]
//
// Given a timing log, timeplot reads runs of the form
//
//	Testing with N = 1000
//	ordinary:12.3ms
//	optimize:7.0ms
//	unroll:6.1ms
//
// and prints one row per N with a column per variant. The log "-"
// is standard input. Without a log, timeplot uses the data recorded
// for the built-in figure named by -figure.
//
// The -figure option selects the chart layout: titles, axis labels
// and the style of each variant's line. The built-in figures are
// loop (the default), simd, cache, parallel, parallel-large, speedup
// and speedup-large. The speedup figures derive serial/parallel
// ratios.
//
// The -labels option overrides which variant labels are recognized
// in the log, in priority order. By default these are the figure's
// labels.
//
// If a run lacks a measurement for some variant, including a variant
// that appears in no run at all, the missing entry is left blank in
// the table and skipped in the chart, and timeplot prints a warning.
// The -strict option makes this an error instead.
//
// The -o option writes the chart to the named file, or to standard
// output if the name is "-". The -chartformat option selects the
// format: png, svg, pdf, eps, jpg, tiff or tex. By default it comes
// from the file extension, and is svg for standard output. Writing
// the chart to standard output requires -format none.
//
// The -logy option draws the time axis on a log scale. The
// parallel-large figure always does.
//
// The -format option selects the table printed on standard output:
// text (the default), csv, html, or none.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gonum.org/v1/plot"

	"github.com/hpclab/timeplot/chart"
	"github.com/hpclab/timeplot/figures"
	"github.com/hpclab/timeplot/series"
	"github.com/hpclab/timeplot/timelog"
)

func main() {
	log.SetPrefix("timeplot: ")
	log.SetFlags(0)
	if err := timeplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func timeplot(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("timeplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: timeplot [options] [log.txt]\n")
		fmt.Fprintf(wErr, "options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(wErr, "figures: %s\n", strings.Join(figures.Names(), ", "))
	}
	flagFigure := flags.String("figure", "loop", "chart layout `name`")
	flagLabels := flags.String("labels", "", "comma-separated variant `labels` to read from the log")
	flagStrict := flags.Bool("strict", false, "fail if a run is missing a variant")
	flagFormat := flags.String("format", "text", "print table as `format`: text, csv, html, or none")
	flagOut := flags.String("o", "", "write chart to `file`; - is standard output")
	flagChartFormat := flags.String("chartformat", "", "chart `format` (default from the -o extension, svg for -o -)")
	flagLogY := flags.Bool("logy", false, "draw the time axis on a log scale")
	if err := flags.Parse(args); err != nil {
		// Parse has already printed the problem and usage.
		return flag.ErrHelp
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return flag.ErrHelp
	}
	switch *flagFormat {
	case "text", "csv", "html", "none":
	default:
		return fmt.Errorf("unknown format %q", *flagFormat)
	}

	chartFormat := *flagChartFormat
	if *flagOut != "" {
		if chartFormat == "" {
			if *flagOut == "-" {
				chartFormat = "svg"
			} else {
				chartFormat = chart.FormatOf(*flagOut)
			}
		}
		if err := chart.CheckFormat(chartFormat); err != nil {
			return err
		}
		if *flagOut == "-" && *flagFormat != "none" {
			return fmt.Errorf("-o - writes the chart to standard output; use -format none")
		}
	}

	fig, ok := figures.Lookup(*flagFigure)
	if !ok {
		return fmt.Errorf("unknown figure %q; have %s", *flagFigure, strings.Join(figures.Names(), ", "))
	}
	labels := fig.Labels
	if *flagLabels != "" {
		labels = strings.Split(*flagLabels, ",")
		for i, label := range labels {
			labels[i] = strings.TrimSpace(label)
			if labels[i] == "" {
				return fmt.Errorf("-labels %q: empty label", *flagLabels)
			}
		}
	}

	var logged *series.Set
	if flags.NArg() == 1 {
		runs, err := timelog.ParseFile(flags.Arg(0), labels...)
		if err != nil {
			return err
		}
		opts := &series.Options{
			Strict: *flagStrict,
			Labels: labels,
			Warn: func(format string, args ...interface{}) {
				fmt.Fprintf(wErr, "warning: "+format, args...)
			},
		}
		if logged, err = series.FromRuns(runs, opts); err != nil {
			return fmt.Errorf("%s: %w", flags.Arg(0), err)
		}
	}
	set, err := fig.Prepare(logged)
	if err != nil {
		return err
	}

	// Render before printing so a bad figure produces no output.
	var p *plot.Plot
	if *flagOut != "" {
		f := fig.Figure
		f.LogY = f.LogY || *flagLogY
		if p, err = chart.Render(&f, set); err != nil {
			return err
		}
	}

	switch *flagFormat {
	case "text":
		err = series.WriteText(w, set)
	case "csv":
		err = series.WriteCSV(w, set)
	case "html":
		err = series.WriteHTML(w, set, fig.Title)
	}
	if err != nil {
		return err
	}

	switch *flagOut {
	case "":
		return nil
	case "-":
		return chart.WriteTo(w, p, chartFormat)
	default:
		return chart.Save(p, *flagOut, chartFormat)
	}
}
