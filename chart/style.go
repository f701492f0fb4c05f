// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style is how one series is drawn. The zero Style picks a color,
// solid line and no marker from the series' position in the figure.
type Style struct {
	// Color is an SVG color name such as "navy" or "limegreen", or
	// a "#rrggbb" hex triple.
	Color string
	// Dash is "-" (solid), "--" (dashed), "-." (dash-dot) or ":"
	// (dotted).
	Dash string
	// Marker is "" (none), "o", "s", "^", "x" or "+".
	Marker string
	// Width is the line width in points. Zero means 2.
	Width float64
}

func (s Style) color(i int) (color.Color, error) {
	if s.Color == "" {
		return plotutil.Color(i), nil
	}
	if c, ok := colornames.Map[strings.ToLower(s.Color)]; ok {
		return c, nil
	}
	var r, g, b uint8
	if n, err := fmt.Sscanf(s.Color, "#%02x%02x%02x", &r, &g, &b); err == nil && n == 3 && len(s.Color) == 7 {
		return color.RGBA{r, g, b, 0xff}, nil
	}
	return nil, fmt.Errorf("unknown color %q", s.Color)
}

func (s Style) dashes() ([]vg.Length, error) {
	switch s.Dash {
	case "", "-":
		return nil, nil
	case "--":
		return []vg.Length{vg.Points(6), vg.Points(3)}, nil
	case "-.":
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}, nil
	case ":":
		return []vg.Length{vg.Points(1), vg.Points(2)}, nil
	}
	return nil, fmt.Errorf("unknown dash style %q", s.Dash)
}

func (s Style) glyph() (draw.GlyphDrawer, error) {
	switch s.Marker {
	case "":
		return nil, nil
	case "o":
		return draw.CircleGlyph{}, nil
	case "s":
		return draw.SquareGlyph{}, nil
	case "^":
		return draw.TriangleGlyph{}, nil
	case "x":
		return draw.CrossGlyph{}, nil
	case "+":
		return draw.PlusGlyph{}, nil
	}
	return nil, fmt.Errorf("unknown marker %q", s.Marker)
}

func (s Style) width() vg.Length {
	if s.Width == 0 {
		return vg.Points(2)
	}
	return vg.Points(s.Width)
}
