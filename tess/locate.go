// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"github.com/cpmech/gotess/geo"
	"github.com/cpmech/gotess/num"

	"github.com/cpmech/gosl/la"
)

// Contains reports whether q lies strictly inside fig. For each vertex Pi of
// the simplex two determinants are paired: one from the vectors joining q to
// the other vertices, one from the vectors joining Pi to them. q is inside
// iff every pair has a strictly positive product; a zero product means q
// sits on the face opposite Pi and is reported outside.
func (o *Complex) Contains(fig Simplex, q *geo.Point) bool {
	return o.contains(fig, q, false)
}

// containsClosed widens the test to the closed simplex: only a strictly
// negative product rejects, so face and vertex points count as inside
func (o *Complex) containsClosed(fig Simplex, q *geo.Point) bool {
	return o.contains(fig, q, true)
}

func (o *Complex) contains(fig Simplex, q *geo.Point, closed bool) bool {
	d1 := la.MatAlloc(o.ndim, o.ndim)
	d2 := la.MatAlloc(o.ndim, o.ndim)
	for i := range fig {
		pi := o.Vertex(fig[i]).P
		for j := 0; j < o.ndim; j++ {
			c := 0
			for k, h := range fig {
				if k == i {
					continue
				}
				pk := o.Vertex(h).P
				d1[j][c] = q.Coord(j) - pk.Coord(j)
				d2[j][c] = pi.Coord(j) - pk.Coord(j)
				c++
			}
		}
		prod := num.Det(d1) * num.Det(d2)
		if closed {
			if prod < 0 {
				return false
			}
		} else {
			if prod <= 0 {
				return false
			}
		}
	}
	return true
}

// FindFigure locates a simplex strictly containing q. At most one exists
// since the simplices partition the envelope up to shared faces.
func (o *Complex) FindFigure(q *geo.Point) (fig Simplex, found bool) {
	for _, f := range o.figs {
		if o.Contains(f, q) {
			return f, true
		}
	}
	return nil, false
}
