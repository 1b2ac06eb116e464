// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"gonum.org/v1/gonum/floats"
)

// Boundaries returns the vertices created by the envelope constructor
func (o *Complex) Boundaries() []*Vertex {
	var res []*Vertex
	for _, v := range o.verts {
		if v.P.IsBoundary() {
			res = append(res, v)
		}
	}
	return res
}

// UpdateBoundaryValues refreshes the scalar value of every boundary vertex
// with the distance-weighted mean of the interior samples. The weight is the
// raw Euclidean distance, so farther samples dominate. With no interior
// sample the boundary values are left untouched.
func (o *Complex) UpdateBoundaryValues() {
	o.updateBoundaryValues(false)
}

// UpdateBoundaryValuesInverse is the corrected weighting: interior samples
// count with the inverse of their distance, so nearby samples dominate
func (o *Complex) UpdateBoundaryValuesInverse() {
	o.updateBoundaryValues(true)
}

func (o *Complex) updateBoundaryValues(inverse bool) {
	var interior []*Vertex
	for _, v := range o.verts {
		if !v.P.IsBoundary() {
			interior = append(interior, v)
		}
	}
	if len(interior) == 0 {
		return
	}

	dist := make([]float64, len(interior))
	wval := make([]float64, len(interior))
	for _, b := range o.verts {
		if !b.P.IsBoundary() {
			continue
		}
		for i, v := range interior {
			d := b.P.Distance(v.P)
			if inverse {
				d = 1.0 / d // stored points are pairwise distinct, d > 0
			}
			dist[i] = d
			wval[i] = d * v.Val
		}
		sum := floats.Sum(dist)
		if sum == 0 {
			continue
		}
		b.Val = floats.Sum(wval) / sum
	}
}
