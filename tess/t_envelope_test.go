// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_env01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("env01. 2-D display envelope is a rotated diamond")

	c := NewEnvelope(2, true)
	chk.Int(tst, "npoints", c.NumPoints(), 4)
	chk.Int(tst, "nfigures", c.NumFigures(), 2)

	// +/-300 rotated by pi/4 and rounded
	chk.Array(tst, "pmin", 1e-17, []float64{c.Vertex(0).P.Coord(0), c.Vertex(0).P.Coord(1)}, []float64{-212, 212})
	chk.Array(tst, "pmax", 1e-17, []float64{c.Vertex(1).P.Coord(0), c.Vertex(1).P.Coord(1)}, []float64{212, -212})
	chk.Array(tst, "q1", 1e-17, []float64{c.Vertex(2).P.Coord(0), c.Vertex(2).P.Coord(1)}, []float64{-212, -212})
	chk.Array(tst, "q2", 1e-17, []float64{c.Vertex(3).P.Coord(0), c.Vertex(3).P.Coord(1)}, []float64{212, 212})

	for _, v := range c.SinglePoints() {
		if !v.IsBoundary() {
			tst.Errorf("envelope vertices must carry the boundary flag")
		}
	}
}

func Test_env02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("env02. 3-D envelope census")

	c := NewEnvelope(3, false)
	chk.Int(tst, "npoints", c.NumPoints(), 6)
	chk.Int(tst, "nfigures", c.NumFigures(), 4)

	// boundary vertices at the axis extremes
	correct := [][]float64{
		{-25000, 0, 0},
		{25000, 0, 0},
		{0, -25000, 0},
		{0, 0, -25000},
		{0, 25000, 0},
		{0, 0, 25000},
	}
	for h, row := range correct {
		p := c.Vertex(h).P
		chk.Array(tst, io.Sf("vertex %d", h), 1e-17, []float64{p.Coord(0), p.Coord(1), p.Coord(2)}, row)
	}

	// every simplex holds both axis-1 extremes and only live handles
	for _, fig := range c.Figures() {
		chk.Int(tst, "nverts per simplex", len(fig), 4)
		hasMin, hasMax := false, false
		for _, h := range fig {
			if h < 0 || h >= c.NumPoints() {
				tst.Errorf("handle %d does not resolve", h)
			}
			if h == 0 {
				hasMin = true
			}
			if h == 1 {
				hasMax = true
			}
		}
		if !hasMin || !hasMax {
			tst.Errorf("every envelope simplex must contain Pmin and Pmax")
		}
	}

	// non-degenerate cover: each simplex spans one (y,z) quadrant, i.e. two
	// octants, and has volume S^3/3
	S := 25000.0
	total := 0.0
	for _, fig := range c.Figures() {
		vol := math.Abs(c.Volume(fig))
		chk.Float64(tst, "quadrant simplex volume", 1e-6*vol, vol, S*S*S/3.0)
		total += vol
	}
	chk.Float64(tst, "envelope volume", 1e-6*total, total, 4.0*S*S*S/3.0)
}

func Test_env03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("env03. 2-D computational envelope is not rotated")

	c := NewEnvelope(2, false)
	chk.Int(tst, "npoints", c.NumPoints(), 4)
	chk.Int(tst, "nfigures", c.NumFigures(), 2)
	chk.Array(tst, "pmin", 1e-17, []float64{c.Vertex(0).P.Coord(0), c.Vertex(0).P.Coord(1)}, []float64{-25000, 0})
	chk.Array(tst, "pmax", 1e-17, []float64{c.Vertex(1).P.Coord(0), c.Vertex(1).P.Coord(1)}, []float64{25000, 0})
	chk.Array(tst, "q1", 1e-17, []float64{c.Vertex(2).P.Coord(0), c.Vertex(2).P.Coord(1)}, []float64{0, -25000})
	chk.Array(tst, "q2", 1e-17, []float64{c.Vertex(3).P.Coord(0), c.Vertex(3).P.Coord(1)}, []float64{0, 25000})

	for _, fig := range c.Figures() {
		if c.Volume(fig) == 0 {
			tst.Errorf("envelope simplices must have non-zero volume")
		}
	}
}

func Test_env04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("env04. simplex count grows as 2^(ndim-1)")

	for ndim := 2; ndim <= 6; ndim++ {
		c := NewEnvelope(ndim, false)
		chk.Int(tst, io.Sf("npoints ndim=%d", ndim), c.NumPoints(), 2*ndim)
		chk.Int(tst, io.Sf("nfigures ndim=%d", ndim), c.NumFigures(), 1<<(ndim-1))
	}
}

func Test_env05(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("env05. dimension out of range")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("a dimension outside [2,15] must panic")
		} else {
			io.Pforan("OK, panic came: %v\n", err)
		}
	}()
	NewComplex(16)
}

func Test_env06(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("env06. previous-permutation iteration")

	v := []float64{3, 1, 2}
	var seen [][]float64
	for {
		seen = append(seen, append([]float64{}, v...))
		if !prevPermutation(v) {
			break
		}
	}
	correct := [][]float64{
		{3, 1, 2},
		{2, 3, 1},
		{2, 1, 3},
		{1, 3, 2},
		{1, 2, 3},
	}
	chk.Int(tst, "count", len(seen), len(correct))
	for i := range correct {
		chk.Array(tst, io.Sf("perm %d", i), 1e-17, seen[i], correct[i])
	}

	// wrap-around restores the descending arrangement
	chk.Array(tst, "wrapped", 1e-17, v, []float64{3, 2, 1})
}
