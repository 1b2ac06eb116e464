// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"strings"
	"testing"

	"github.com/cpmech/gotess/geo"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/google/go-cmp/cmp"
)

// coordsOf flattens point tuples for structural comparison
func coordsOf(figs [][]*geo.Point) [][][]float64 {
	res := make([][][]float64, len(figs))
	for i, pts := range figs {
		res[i] = make([][]float64, len(pts))
		for j, p := range pts {
			row := make([]float64, p.Ndim())
			for k := range row {
				row[k] = p.Coord(k)
			}
			res[i][j] = row
		}
	}
	return res
}

func Test_dump01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("dump01. format of the human-readable dump")

	c := NewComplex(2)
	c.AddPoint(geo.NewPoint(2, 0, 0), 0)
	c.AddPoint(geo.NewPoint(2, 4, 0), 1)
	c.AddPoint(geo.NewPoint(2, 0, 4), 2)

	l := c.String()
	lines := strings.Split(strings.TrimSpace(l), "\n")
	chk.Int(tst, "number of lines", len(lines), 2)
	chk.String(tst, lines[0], "3 points, 1 figures.")
	chk.String(tst, strings.TrimRight(lines[1], " "), "Figure 1 : (0, 0)  (4, 0)  (0, 4)")
}

func Test_dump02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("dump02. dump and re-parse round trip")

	c := NewComplex(2)
	c.AddPoint(geo.NewPoint(2, 0, 0), 0)
	c.AddPoint(geo.NewPoint(2, 8, 0), 1)
	c.AddPoint(geo.NewPoint(2, 0, 8), 2)
	c.AddPoint(geo.NewPoint(2, 1.5, 1.5), 3)

	npoints, figs, err := ParseDump(c.String())
	if err != nil {
		tst.Errorf("re-parse failed: %v", err)
		return
	}
	chk.Int(tst, "npoints", npoints, c.NumPoints())
	chk.Int(tst, "nfigures", len(figs), c.NumFigures())

	var correct [][]*geo.Point
	for _, fig := range c.Figures() {
		correct = append(correct, c.points(fig))
	}
	if diff := cmp.Diff(coordsOf(correct), coordsOf(figs)); diff != "" {
		tst.Errorf("re-parsed figures differ:\n%s", diff)
	}
}

func Test_dump03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("dump03. malformed dumps are rejected")

	if _, _, err := ParseDump(""); err == nil {
		tst.Errorf("an empty dump must be rejected")
	}
	if _, _, err := ParseDump("nonsense header\n"); err == nil {
		tst.Errorf("a broken header must be rejected")
	}
	if _, _, err := ParseDump("0 points, 2 figures.\n"); err == nil {
		tst.Errorf("a figure count mismatch must be rejected")
	}
	if _, _, err := ParseDump("3 points, 1 figures.\nFigure 1 : (1, oops)  \n"); err == nil {
		tst.Errorf("a broken coordinate must be rejected")
	}
	io.Pforan("OK, all rejections came\n")
}
