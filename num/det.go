// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package num implements the small dense-matrix kernel of the tessellation
// engine: a recursive Laplace determinant and integer helpers
package num

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Det computes the determinant of the square matrix m, given as a slice of
// rows, by Laplace expansion along the first row. An empty matrix has
// determinant 0. Cost is O(k!) for a k-by-k matrix; callers keep k at the
// space dimension + 1, which the outer shell caps at 16.
func Det(m [][]float64) float64 {
	k := len(m)
	for i := 0; i < k; i++ {
		if len(m[i]) != k {
			chk.Panic("malformed matrix: row %d has %d entries whereas the matrix has %d rows", i, len(m[i]), k)
		}
	}
	return det(m)
}

// det runs the expansion on an already checked square matrix
func det(m [][]float64) (res float64) {
	k := len(m)
	switch k {
	case 0:
		return 0
	case 1:
		return m[0][0]
	case 2:
		return m[0][0]*m[1][1] - m[1][0]*m[0][1]
	}
	sub := la.MatAlloc(k-1, k-1)
	for j := 0; j < k; j++ {
		eps := 1.0
		if j%2 != 0 {
			eps = -1.0
		}
		for r := 1; r < k; r++ {
			c := 0
			for p := 0; p < k; p++ {
				if p != j {
					sub[r-1][c] = m[r][p]
					c++
				}
			}
		}
		res += eps * m[0][j] * det(sub)
	}
	return
}

// Factorial returns n! as a float64. n must be non-negative.
func Factorial(n int) (res float64) {
	if n < 0 {
		chk.Panic("factorial needs a non-negative argument. n=%d is invalid", n)
	}
	res = 1
	for i := 2; i <= n; i++ {
		res *= float64(i)
	}
	return
}

// PowN returns x raised to the small non-negative integer power n
func PowN(x float64, n int) (res float64) {
	if n < 0 {
		chk.Panic("PowN needs a non-negative exponent. n=%d is invalid", n)
	}
	res = 1
	for i := 0; i < n; i++ {
		res *= x
	}
	return
}
