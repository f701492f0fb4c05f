// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package timelog reads the plain-text timing logs written by simple
benchmark harnesses.

A timing log consists of runs. Each run begins with a marker line
announcing the problem size:

	Testing with N = 1000

and is followed by one line per measured variant, giving the duration
in milliseconds:

	ordinary:12.3ms
	optimize:7.0ms
	unroll:6.1

The "ms" suffix is optional. Variant lines are recognized by the
substring "<label>:" for a fixed, ordered set of labels; the first
label that matches wins. All other lines are ignored.

A line that has a recognized shape but an unparseable number stops
the Reader with a *ParseError.
*/
package timelog
