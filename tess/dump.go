// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cpmech/gotess/geo"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// String returns the human-readable dump of the complex:
//
//	<npoints> points, <nfigures> figures.
//	Figure 1 : (x, y)  (x, y)  (x, y)
//	...
func (o *Complex) String() string {
	l := io.Sf("%d points, %d figures.\n", len(o.verts), len(o.figs))
	for k, fig := range o.Figures() {
		l += io.Sf("Figure %d : ", k+1)
		for _, h := range fig {
			l += o.Vertex(h).P.String() + "  "
		}
		l += "\n"
	}
	return l
}

// ParseDump reads a dump produced by String back into the declared point
// count and the per-figure point tuples. The figure count declared on the
// first line must match the number of figure lines.
func ParseDump(s string) (npoints int, figs [][]*geo.Point, err error) {

	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		err = chk.Err("dump is empty")
		return
	}

	// header: "<npoints> points, <nfigures> figures."
	var nfigs int
	header := strings.TrimSpace(lines[0])
	n, err := fmt.Sscanf(header, "%d points, %d figures.", &npoints, &nfigs)
	if err != nil || n != 2 {
		err = chk.Err("cannot parse dump header %q", header)
		return
	}

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sep := strings.Index(line, " : ")
		if !strings.HasPrefix(line, "Figure ") || sep < 0 {
			err = chk.Err("cannot parse figure line %q", line)
			return
		}
		pts, e := parsePoints(line[sep+3:])
		if e != nil {
			err = e
			return
		}
		figs = append(figs, pts)
	}

	if len(figs) != nfigs {
		err = chk.Err("dump declares %d figures but lists %d", nfigs, len(figs))
	}
	return
}

// parsePoints reads a sequence of "(c0, c1, ...)" tuples
func parsePoints(s string) (pts []*geo.Point, err error) {
	for _, chunk := range strings.Split(s, ")") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if !strings.HasPrefix(chunk, "(") {
			return nil, chk.Err("cannot parse point %q", chunk)
		}
		var coords []float64
		for _, tok := range strings.Split(chunk[1:], ",") {
			c, e := strconv.ParseFloat(strings.TrimSpace(tok), 64)
			if e != nil {
				return nil, chk.Err("cannot parse coordinate %q", tok)
			}
			coords = append(coords, c)
		}
		pts = append(pts, geo.NewPoint(len(coords), coords...))
	}
	return
}
