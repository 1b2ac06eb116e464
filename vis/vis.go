// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vis renders 2-D tessellations to image files
package vis

import (
	"github.com/cpmech/gotess/tess"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Draw renders a 2-D tessellation to fname (format selected by extension,
// e.g. ".png"): one closed polyline per figure plus a marker for every
// stored point.
func Draw(c *tess.Complex, fname string) (err error) {

	if c.Ndim() != 2 {
		return chk.Err("can only draw 2-D tessellations. ndim=%d is invalid", c.Ndim())
	}

	p := plot.New()
	p.Title.Text = io.Sf("%d points, %d figures", c.NumPoints(), c.NumFigures())
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	// figure edges
	for _, fig := range c.Figures() {
		xys := make(plotter.XYs, 0, len(fig)+1)
		for _, h := range fig {
			v := c.Vertex(h)
			xys = append(xys, plotter.XY{X: v.P.Coord(0), Y: v.P.Coord(1)})
		}
		xys = append(xys, xys[0]) // close the loop
		line, e := plotter.NewLine(xys)
		if e != nil {
			return e
		}
		p.Add(line)
	}

	// stored points
	xys := make(plotter.XYs, 0, c.NumPoints())
	for _, pt := range c.SinglePoints() {
		xys = append(xys, plotter.XY{X: pt.Coord(0), Y: pt.Coord(1)})
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return
	}
	p.Add(scatter)

	return p.Save(15*vg.Centimeter, 15*vg.Centimeter, fname)
}
