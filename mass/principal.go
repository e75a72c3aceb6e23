// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mass

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
)

// Tensor assembles the symmetric 3×3 inertia matrix from the six components
// {Ixx, Iyy, Izz, Ixy, Ixz, Iyz}. The products are stored as Σ m・x・y, hence
// the off-diagonal entries carry a minus sign.
func Tensor(I []float64) *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		I[0], -I[3], -I[4],
		-I[3], I[1], -I[5],
		-I[4], -I[5], I[2],
	})
}

// Principal returns the principal moments of inertia in ascending order and
// the corresponding principal axes as the columns of a 3×3 matrix
func Principal(I []float64) (vals []float64, axes *mat.Dense, err error) {
	if len(I) != 6 {
		err = chk.Err("inertia tensor must have 6 components {Ixx,Iyy,Izz,Ixy,Ixz,Iyz}; got %d", len(I))
		return
	}
	var eig mat.EigenSym
	if !eig.Factorize(Tensor(I), true) {
		err = chk.Err("eigendecomposition of inertia tensor failed")
		return
	}
	vals = eig.Values(nil)
	axes = mat.NewDense(3, 3, nil)
	eig.VectorsTo(axes)
	return
}
