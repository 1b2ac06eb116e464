// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements n-dimensional points for tessellations
package geo

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"gonum.org/v1/gonum/floats"
)

// display limits: points outside this box are dropped when loading data
// meant for the 2-D viewer
const (
	DisplayMin = -250.0
	DisplayMax = +250.0
)

// Point is a point in n-dimensional space. The boundary flag marks points
// created by the envelope constructor; user-inserted points never carry it.
type Point struct {
	coords   []float64
	boundary bool
}

// NewPoint creates a new ndim-dimensional point. Missing trailing
// coordinates default to zero; extra values are a programmer error.
func NewPoint(ndim int, vals ...float64) *Point {
	if len(vals) > ndim {
		chk.Panic("too many coordinates: got %d for an %d-dimensional point", len(vals), ndim)
	}
	o := &Point{coords: make([]float64, ndim)}
	copy(o.coords, vals)
	return o
}

// Ndim returns the dimension of the space the point lives in
func (o *Point) Ndim() int {
	return len(o.coords)
}

// Coord returns the i-th coordinate. i must be within [0,ndim-1].
func (o *Point) Coord(i int) float64 {
	if i < 0 || i >= len(o.coords) {
		chk.Panic("coordinate index %d is out of range [0,%d]", i, len(o.coords)-1)
	}
	return o.coords[i]
}

// SetCoord sets the i-th coordinate. i must be within [0,ndim-1].
func (o *Point) SetCoord(i int, val float64) {
	if i < 0 || i >= len(o.coords) {
		chk.Panic("coordinate index %d is out of range [0,%d]", i, len(o.coords)-1)
	}
	o.coords[i] = val
}

// Clone returns a deep copy of this point, boundary flag included
func (o *Point) Clone() *Point {
	p := &Point{coords: make([]float64, len(o.coords)), boundary: o.boundary}
	copy(p.coords, o.coords)
	return p
}

// Equal reports exact componentwise equality. Points of different
// dimensions are never equal.
func (o *Point) Equal(p *Point) bool {
	if len(o.coords) != len(p.coords) {
		return false
	}
	for i, c := range o.coords {
		if p.coords[i] != c {
			return false
		}
	}
	return true
}

// Less is the strict total order used for set keys: lexicographic on the
// coordinate tuple
func (o *Point) Less(p *Point) bool {
	if len(o.coords) != len(p.coords) {
		return len(o.coords) < len(p.coords)
	}
	for i, c := range o.coords {
		if c != p.coords[i] {
			return c < p.coords[i]
		}
	}
	return false
}

// Distance returns the Euclidean distance between this point and p
func (o *Point) Distance(p *Point) float64 {
	return floats.Distance(o.coords, p.coords, 2)
}

// MarkBoundary flags this point as an envelope vertex
func (o *Point) MarkBoundary() {
	o.boundary = true
}

// IsBoundary tells whether this point is an envelope vertex
func (o *Point) IsBoundary() bool {
	return o.boundary
}

// OutOfDisplayBounds reports whether any coordinate falls outside the
// [DisplayMin,DisplayMax] box
func (o *Point) OutOfDisplayBounds() bool {
	for _, c := range o.coords {
		if c < DisplayMin || c > DisplayMax {
			return true
		}
	}
	return false
}

// String returns the representation of this point; e.g. "(1, 2, 3)"
func (o *Point) String() string {
	l := "("
	for i, c := range o.coords {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%g", c)
	}
	l += ")"
	return l
}
