// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tess maintains a simplicial tessellation of an n-dimensional
// region and interpolates a scalar field sampled at its vertices
package tess

import (
	"sort"

	"github.com/cpmech/gotess/geo"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// constants
const (
	MinDim = 2  // smallest supported space dimension
	MaxDim = 15 // largest supported space dimension; the determinant kernel is O(k!)

	// the envelope values are refreshed once the insertion count exceeds this
	UpdatePeriod = 5
)

// Vertex is one entry of the append-only vertex store: a point and the
// scalar sample attached to it. Simplices refer to vertices by index
// (handle) into the store, never by copy, so handles stay valid across
// appends and value updates.
type Vertex struct {
	P   *geo.Point // position; never moves once stored
	Val float64    // scalar sample; derived for boundary vertices
}

// Simplex is an ordered tuple of ndim+1 vertex handles
type Simplex []int

// key returns the registry key of this simplex; two simplices are the same
// iff their handle tuples are equal as ordered tuples
func (o Simplex) key() string {
	return io.Sf("%v", []int(o))
}

// Complex holds the tessellation: the vertex store and the simplex registry
type Complex struct {
	ndim    int                // space dimension
	verts   []*Vertex          // vertex store; append-only
	figs    map[string]Simplex // simplex registry keyed by handle tuple
	pending int                // insertions since the last boundary refresh
}

// NewComplex creates an empty complex of the given dimension. Dimensions
// outside [MinDim,MaxDim] are a fatal error.
func NewComplex(ndim int) *Complex {
	if ndim < MinDim || ndim > MaxDim {
		chk.Panic("space dimension must be within [%d,%d]. ndim=%d is invalid", MinDim, MaxDim, ndim)
	}
	return &Complex{ndim: ndim, figs: make(map[string]Simplex)}
}

// Ndim returns the space dimension
func (o *Complex) Ndim() int {
	return o.ndim
}

// NumPoints returns the number of stored vertices
func (o *Complex) NumPoints() int {
	return len(o.verts)
}

// NumFigures returns the number of simplices in the registry
func (o *Complex) NumFigures() int {
	return len(o.figs)
}

// IsEmpty tells whether the complex has no simplex yet
func (o *Complex) IsEmpty() bool {
	return len(o.figs) == 0
}

// Vertex returns the stored vertex for a handle
func (o *Complex) Vertex(h int) *Vertex {
	if h < 0 || h >= len(o.verts) {
		chk.Panic("vertex handle %d does not resolve in a store of %d entries", h, len(o.verts))
	}
	return o.verts[h]
}

// Figures returns the simplices of the registry, ordered by key so that
// repeated dumps of the same complex agree
func (o *Complex) Figures() []Simplex {
	keys := make([]string, 0, len(o.figs))
	for k := range o.figs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := make([]Simplex, len(keys))
	for i, k := range keys {
		res[i] = o.figs[k]
	}
	return res
}

// SinglePoints returns the stored points, in insertion order
func (o *Complex) SinglePoints() []*geo.Point {
	res := make([]*geo.Point, len(o.verts))
	for i, v := range o.verts {
		res[i] = v.P
	}
	return res
}

// points resolves the handles of fig into their stored points
func (o *Complex) points(fig Simplex) []*geo.Point {
	res := make([]*geo.Point, len(fig))
	for i, h := range fig {
		res[i] = o.Vertex(h).P
	}
	return res
}

// appendVertex adds a vertex to the store and returns its handle
func (o *Complex) appendVertex(p *geo.Point, val float64) (handle int) {
	o.verts = append(o.verts, &Vertex{P: p, Val: val})
	return len(o.verts) - 1
}

// findVertex returns the handle of the stored point equal to p, or -1
func (o *Complex) findVertex(p *geo.Point) int {
	for h, v := range o.verts {
		if v.P.Equal(p) {
			return h
		}
	}
	return -1
}

// insertFig adds a simplex to the registry; duplicates are ignored
func (o *Complex) insertFig(fig Simplex) {
	if len(fig) != o.ndim+1 {
		chk.Panic("a simplex needs %d vertices in %d-dimensional space. got %d", o.ndim+1, o.ndim, len(fig))
	}
	o.figs[fig.key()] = fig
}

// eraseFig removes a simplex from the registry
func (o *Complex) eraseFig(fig Simplex) {
	delete(o.figs, fig.key())
}

// HasFigure tells whether the registry holds the given simplex. Two
// simplices are the same iff their handle tuples are equal as ordered
// tuples.
func (o *Complex) HasFigure(fig Simplex) bool {
	_, ok := o.figs[fig.key()]
	return ok
}
