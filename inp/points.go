// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp loads sample points into a tessellation from text files
package inp

import (
	"log"
	"strconv"
	"strings"

	"github.com/cpmech/gotess/geo"
	"github.com/cpmech/gotess/tess"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// LoadPoints reads a points file into the complex c. The format is:
//
//	line 1:  space dimension (must match the complex)
//	line 2:  advisory point count (not enforced)
//	line 3+: whitespace-separated reals, one point per line
//
// Tokens beyond the first ndim are ignored as coordinates; missing trailing
// coordinates default to zero; unparsable tokens are skipped. With filter
// set, points with a coordinate outside the display box are dropped.
//
// The scalar value attached to each point depends on strictValues. False
// mirrors the historical reader: the value is the last parsed token of the
// line, which conflates the last coordinate with the sample on short lines.
// True requires an explicit value column: every line must carry at least
// ndim+1 tokens and the value is the token right after the coordinates.
func LoadPoints(c *tess.Complex, fn string, filter, strictValues bool) (err error) {

	// read file
	b, err := io.ReadFile(fn)
	if LogErr(err, "points: cannot open points file "+fn) {
		return chk.Err("cannot open points file %q", fn)
	}

	lines := strings.Split(string(b), "\n")
	if LogErrCond(len(lines) < 2, "points: file %s is missing the dim/count header", fn) {
		return chk.Err("points file %q is missing the dim/count header", fn)
	}

	// header: dimension and advisory count
	dim, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if LogErr(err, "points: cannot read the dimension header of "+fn) {
		return chk.Err("cannot read the dimension header of %q", fn)
	}
	if LogErrCond(dim != c.Ndim(), "points: file %s has dimension %d but the complex has %d", fn, dim, c.Ndim()) {
		return chk.Err("points file %q has dimension %d but the complex has %d", fn, dim, c.Ndim())
	}

	// add points
	for k, line := range lines[2:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var vals []float64
		for _, tok := range fields {
			v, e := strconv.ParseFloat(tok, 64)
			if e != nil {
				log.Printf("points: skipping token %q on line %d of %s", tok, k+3, fn)
				continue
			}
			vals = append(vals, v)
		}
		if len(vals) == 0 {
			continue
		}

		ncoords := c.Ndim()
		if len(vals) < ncoords {
			ncoords = len(vals)
		}
		p := geo.NewPoint(c.Ndim(), vals[:ncoords]...)

		var val float64
		if strictValues {
			if LogErrCond(len(vals) < c.Ndim()+1, "points: line %d of %s has no value column", k+3, fn) {
				return chk.Err("line %d of %q has no value column", k+3, fn)
			}
			val = vals[c.Ndim()]
		} else {
			val = vals[len(vals)-1]
		}

		if filter && p.OutOfDisplayBounds() {
			continue
		}
		c.AddPoint(p, val)
	}
	return nil
}
