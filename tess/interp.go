// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"math"

	"github.com/cpmech/gotess/geo"

	"github.com/cpmech/gosl/chk"
)

// Interpolate evaluates the scalar field at q by barycentric interpolation
// over the simplex strictly enclosing it. A query equal to a stored vertex
// returns that vertex's value exactly. A query enclosed by no simplex (and
// matching no vertex) returns 0.
func (o *Complex) Interpolate(q *geo.Point) float64 {
	if h := o.findVertex(q); h >= 0 {
		return o.verts[h].Val
	}

	fig, found := o.FindFigure(q)
	if !found {
		return 0
	}
	pts := o.points(fig)
	den := o.volumeOf(pts)
	if den == 0 {
		chk.Panic("found a degenerate simplex on the interpolation path: %v", fig)
	}

	// barycentric weight i: ratio of the volume of the simplex with vertex i
	// replaced by q over the volume of the enclosing simplex
	res := 0.0
	sub := make([]*geo.Point, len(pts))
	for i := range pts {
		copy(sub, pts)
		sub[i] = q
		w := math.Abs(o.volumeOf(sub)) / math.Abs(den)
		res += w * o.Vertex(fig[i]).Val
	}
	return res
}

// Weights returns the barycentric weights of q with respect to fig. When q
// lies inside fig the weights are non-negative and sum to one.
func (o *Complex) Weights(fig Simplex, q *geo.Point) []float64 {
	pts := o.points(fig)
	den := o.volumeOf(pts)
	if den == 0 {
		chk.Panic("found a degenerate simplex on the interpolation path: %v", fig)
	}
	sub := make([]*geo.Point, len(pts))
	res := make([]float64, len(pts))
	for i := range pts {
		copy(sub, pts)
		sub[i] = q
		res[i] = math.Abs(o.volumeOf(sub)) / math.Abs(den)
	}
	return res
}
