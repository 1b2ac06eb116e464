// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"math"

	"github.com/cpmech/gotess/geo"
)

// envelope scales: the computational envelope is wide; the display one fits
// the viewer's box
const (
	EnvScale        = 25000.0
	EnvScaleDisplay = 300.0
)

// NewEnvelope creates a complex covered by a canonical axis-aligned bounding
// envelope of 2*ndim boundary vertices:
//
//	Pmin   = (-S, 0, ..., 0)
//	Pmax   = (+S, 0, ..., 0)
//	Q2i    = (0, ..., -S, ..., 0)
//	Q2i+1  = (0, ..., +S, ..., 0)
//
// Each simplex joins Pmin, Pmax and one choice of signed extremes over axes
// 2..ndim; enumerating the sign arrangements yields 2^(ndim-1) simplices.
// With display=true the scale drops from 25000 to 300 and, in 2-D, every
// vertex is rotated by pi/4 (rounded), which turns the diamond into an
// axis-aligned square with corners at (+-212, +-212).
func NewEnvelope(ndim int, display bool) *Complex {
	o := NewComplex(ndim)
	scale := EnvScale
	if display {
		scale = EnvScaleDisplay
	}
	vmin := -scale
	vmax := +scale

	pmin := geo.NewPoint(ndim, vmin)
	pmin.MarkBoundary()
	hmin := o.appendVertex(pmin, 0)

	pmax := geo.NewPoint(ndim, vmax)
	pmax.MarkBoundary()
	hmax := o.appendVertex(pmax, 0)

	for i := 0; i < ndim; i++ {

		// sign arrangement over axes 2..ndim: i extremes at +S, the rest at -S,
		// starting from the lexicographically largest arrangement
		v := make([]float64, ndim-1)
		for j := range v {
			v[j] = vmin
		}
		for j := 0; j < i; j++ {
			v[j] = vmax
		}

		for {
			fig := make(Simplex, 0, ndim+1)
			fig = append(fig, hmin, hmax)
			for k, val := range v {
				q := geo.NewPoint(ndim)
				q.SetCoord(k+1, val)
				q.MarkBoundary()
				h := o.findVertex(q)
				if h < 0 {
					h = o.appendVertex(q, 0)
				}
				fig = append(fig, h)
			}
			o.insertFig(fig)
			if !prevPermutation(v) {
				break
			}
		}
	}

	if display && ndim == 2 {
		o.rotateForDisplay()
	}
	return o
}

// rotateForDisplay turns every stored vertex by pi/4 around the origin,
// rounding to the nearest integer
func (o *Complex) rotateForDisplay() {
	theta := math.Pi / 4.0
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	for _, v := range o.verts {
		x := v.P.Coord(0)
		y := v.P.Coord(1)
		v.P.SetCoord(0, math.Round(sin*y+cos*x))
		v.P.SetCoord(1, math.Round(cos*y-sin*x))
	}
}

// prevPermutation rearranges v into the previous permutation in
// lexicographic order, returning false once the ascending arrangement wraps
// around to the descending one
func prevPermutation(v []float64) bool {
	n := len(v)
	if n < 2 {
		return false
	}
	i := n - 1
	for {
		j := i
		i--
		if v[j] < v[i] {
			k := n - 1
			for v[k] >= v[i] {
				k--
			}
			v[i], v[k] = v[k], v[i]
			reverse(v[j:])
			return true
		}
		if i == 0 {
			reverse(v)
			return false
		}
	}
}

func reverse(v []float64) {
	for a, b := 0, len(v)-1; a < b; a, b = a+1, b-1 {
		v[a], v[b] = v[b], v[a]
	}
}
