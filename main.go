// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cpmech/gotess/geo"
	"github.com/cpmech/gotess/inp"
	"github.com/cpmech/gotess/tess"
	"github.com/cpmech/gotess/vis"

	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// message
	io.Pf("\nGotess -- simplicial tessellations of dimension 2 to 15\n\n")

	rdr := bufio.NewReader(os.Stdin)
	for {
		io.Pf("\n")
		io.Pf(" 1. create an empty tessellation\n")
		io.Pf(" 2. create a tessellation with a bounding envelope\n")
		io.Pf(" 3. create a tessellation from a points file\n")
		io.Pf(" 4. quit\n\n")

		switch readInt(rdr, "choice: ") {
		case 1:
			runComplex(rdr, tess.NewComplex(readDim(rdr)))
		case 2:
			runComplex(rdr, tess.NewEnvelope(readDim(rdr), false))
		case 3:
			fromFile(rdr)
		case 4:
			io.Pf("\nbye\n")
			return
		default:
			io.Pfyel("please type an integer between 1 and 4\n")
		}
	}
}

// fromFile builds a tessellation from a points file; in 2-D the result can
// also be drawn to a picture
func fromFile(rdr *bufio.Reader) {
	dim := readDim(rdr)
	fn := readString(rdr, "points file path: ")
	draw := false
	if dim == 2 {
		draw = readString(rdr, "draw the tessellation (y/n)? ") == "y"
	}

	c := tess.NewEnvelope(dim, draw)
	if err := inp.LoadPoints(c, fn, draw, false); err != nil {
		io.Pfred("ERROR: %v\n", err)
		os.Exit(1)
	}
	io.Pf("%v\n", c)

	if draw {
		if err := vis.Draw(c, "tessellation.png"); err != nil {
			io.Pfred("ERROR: %v\n", err)
			os.Exit(1)
		}
		io.Pf("tessellation drawn to tessellation.png\n")
	}
	runComplex(rdr, c)
}

// runComplex runs the per-tessellation menu
func runComplex(rdr *bufio.Reader, c *tess.Complex) {
	for {
		io.Pf("\n")
		io.Pf(" 1. add a point\n")
		io.Pf(" 2. interpolate at a point\n")
		io.Pf(" 3. print the tessellation\n")
		io.Pf(" 4. back to the main menu\n\n")

		switch readInt(rdr, "choice: ") {
		case 1:
			p := readPoint(rdr, c.Ndim())
			val := readFloat(rdr, "value attached to the point: ")
			c.AddPoint(p, val)
		case 2:
			p := readPoint(rdr, c.Ndim())
			io.Pf("interpolated value at %v: %g\n", p, c.Interpolate(p))
		case 3:
			io.Pf("%v\n", c)
		case 4:
			return
		default:
			io.Pfyel("please type an integer between 1 and 4\n")
		}
	}
}

// readDim reads and validates the space dimension
func readDim(rdr *bufio.Reader) int {
	dim := readInt(rdr, "space dimension: ")
	if dim < tess.MinDim || dim > tess.MaxDim {
		io.Pfred("ERROR: the dimension must be within [%d,%d]\n", tess.MinDim, tess.MaxDim)
		os.Exit(1)
	}
	return dim
}

// readPoint reads one coordinate per prompt
func readPoint(rdr *bufio.Reader, ndim int) *geo.Point {
	p := geo.NewPoint(ndim)
	for i := 0; i < ndim; i++ {
		p.SetCoord(i, readFloat(rdr, io.Sf("coordinate %d of the point: ", i)))
	}
	return p
}

func readInt(rdr *bufio.Reader, prompt string) (res int) {
	io.Pf("%s", prompt)
	fmt.Fscan(rdr, &res)
	return
}

func readFloat(rdr *bufio.Reader, prompt string) (res float64) {
	io.Pf("%s", prompt)
	fmt.Fscan(rdr, &res)
	return
}

func readString(rdr *bufio.Reader, prompt string) (res string) {
	io.Pf("%s", prompt)
	fmt.Fscan(rdr, &res)
	return
}
