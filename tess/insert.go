// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"github.com/cpmech/gotess/geo"
)

// AddPoint inserts a labeled sample point. Until the store holds ndim
// vertices points are only appended; the ndim+1-th point closes the first
// simplex; afterwards each insertion star-splits the enclosing simplices.
// Every call counts towards the boundary-value refresh, which runs once the
// count exceeds UpdatePeriod, i.e. on every (UpdatePeriod+1)-th call.
func (o *Complex) AddPoint(p *geo.Point, val float64) {
	switch {
	case len(o.figs) > 0:
		o.starSplit(p, val)
	case len(o.verts) == o.ndim:
		o.appendVertex(p, val)
		fig := make(Simplex, len(o.verts))
		for i := range fig {
			fig[i] = i
		}
		if o.Volume(fig) != 0 {
			o.insertFig(fig)
		}
	default:
		o.appendVertex(p, val)
	}

	o.pending++
	if o.pending > UpdatePeriod {
		o.pending = 0
		o.UpdateBoundaryValues()
	}
}

// starSplit adds p to a complex that already has simplices. A point equal
// to a stored vertex only refreshes that vertex's value. Otherwise every
// simplex whose closed hull holds p is replaced by the sub-simplices joining
// p to each of its faces; children of zero volume are discarded. A point
// enclosed by no simplex stays in the store as an orphan vertex.
func (o *Complex) starSplit(p *geo.Point, val float64) {
	if h := o.findVertex(p); h >= 0 {
		o.verts[h].Val = val
		return
	}

	h := o.appendVertex(p, val)

	var enclosing []Simplex
	for _, fig := range o.figs {
		if o.containsClosed(fig, p) {
			enclosing = append(enclosing, fig)
		}
	}

	children := make(map[string]Simplex)
	for _, fig := range enclosing {
		for i := range fig {
			child := make(Simplex, 0, len(fig))
			for j, hj := range fig {
				if j != i {
					child = append(child, hj)
				}
			}
			child = append(child, h)
			children[child.key()] = child
		}
		o.eraseFig(fig)
	}

	for _, child := range children {
		if o.Volume(child) != 0 {
			o.insertFig(child)
		}
	}
}
