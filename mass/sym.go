// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mass

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomass/inp"
)

// symAxes enumerates the allowed symmetry specifiers
var symAxes = map[string]bool{
	"": true, "no": true, "none": true,
	"x": true, "y": true, "z": true,
	"xy": true, "yz": true, "xz": true,
	"xyz": true,
}

// applySymmetry post-processes mass, cg and inertia for a model that
// represents one half (quarter, eighth) of a mirror-symmetric structure.
// Per axis: mass and the diagonal terms double, the cross terms involving
// the axis vanish, the remaining cross term doubles, and the cg coordinate
// along the axis becomes exactly zero. Multiple axes compose sequentially.
// cg and I are modified in place.
func applySymmetry(symAxis string, mass float64, cg, I []float64) (newMass float64, err error) {
	if !symAxes[symAxis] {
		return 0, chk.Err("invalid symmetry axis %q; options are \"no\", \"x\", \"y\", \"z\", \"xy\", \"yz\", \"xz\" and \"xyz\"", symAxis)
	}
	newMass = mass
	switch symAxis {
	case "", "no", "none":
		return
	}
	for _, axis := range symAxis {
		newMass *= 2.0
		I[0] *= 2.0
		I[1] *= 2.0
		I[2] *= 2.0
		switch axis {
		case 'x':
			I[3] = 0.0 // Ixy
			I[4] = 0.0 // Ixz
			I[5] *= 2.0
			cg[0] = 0.0
		case 'y':
			I[3] = 0.0 // Ixy
			I[5] = 0.0 // Iyz
			I[4] *= 2.0
			cg[1] = 0.0
		case 'z':
			I[4] = 0.0 // Ixz
			I[5] = 0.0 // Iyz
			I[3] *= 2.0
			cg[2] = 0.0
		}
	}
	return
}

// resolveScale returns the effective mass scale: a positive argument is used
// verbatim; otherwise the model "wtmass" parameter, defaulting to 1.0
func resolveScale(mdl *inp.Model, scale float64) float64 {
	if scale > 0 {
		return scale
	}
	return mdl.WeightScale()
}

// applyScale scales mass and inertia; the cg is a ratio and is unaffected
func applyScale(scale, mass float64, I []float64) (float64, []float64) {
	for i := range I {
		I[i] *= scale
	}
	return mass * scale, I
}
