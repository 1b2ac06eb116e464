// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"github.com/cpmech/gotess/geo"
	"github.com/cpmech/gotess/num"

	"github.com/cpmech/gosl/la"
)

// Volume returns the signed volume of a simplex held by the registry. The
// sign is not normalised; callers take the absolute value where a magnitude
// is needed.
func (o *Complex) Volume(fig Simplex) float64 {
	return o.volumeOf(o.points(fig))
}

// volumeOf computes the signed volume of the simplex spanned by pts. Point
// tuples of fewer than three entries have zero volume by convention. For
// triangles the homogeneous 3x3 matrix with a trailing column of ones is
// used; above that, the edge matrix whose rows join the first point to the
// others. Either determinant is divided by ndim factorial.
func (o *Complex) volumeOf(pts []*geo.Point) float64 {
	nv := len(pts)
	if nv < 3 {
		return 0
	}
	var m [][]float64
	if nv == 3 {
		m = la.MatAlloc(nv, nv)
		for i, p := range pts {
			for j := 0; j < o.ndim; j++ {
				m[i][j] = p.Coord(j)
			}
			m[i][o.ndim] = 1
		}
	} else {
		m = la.MatAlloc(nv-1, o.ndim)
		p0 := pts[0]
		for i := 1; i < nv; i++ {
			for j := 0; j < o.ndim; j++ {
				m[i-1][j] = pts[i].Coord(j) - p0.Coord(j)
			}
		}
	}
	return num.Det(m) / num.Factorial(o.ndim)
}
