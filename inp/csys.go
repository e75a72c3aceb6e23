// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gomass/la3"
)

// Csys holds one coordinate system defined by an origin, a point along the
// positive local z axis, and a point in the local x-z plane. The three points
// are given in the frame identified by Rid (0 means the global frame), thus
// systems may be chained. Kind selects the meaning of local point components:
//  "rect" : x, y, z
//  "cyl"  : r, θ [degrees], z
type Csys struct {

	// input
	Id      int       `json:"id"`      // identifier (must be > 0; 0 is the global frame)
	Kind    string    `json:"kind"`    // "rect" (default) or "cyl"
	Rid     int       `json:"rid"`     // frame in which the defining points are expressed
	Origin  []float64 `json:"origin"`  // origin point
	Zpoint  []float64 `json:"zpoint"`  // point along local z axis
	Xzplane []float64 `json:"xzplane"` // point in local x-z plane

	// derived
	origin   []float64  // origin in the global frame
	rot      *la.Matrix // rotation to global; columns are the local base vectors
	built    bool       // Build has completed
	building bool       // Build in progress; for cycle detection
}

// Build resolves the defining points into the global frame and assembles the
// rotation matrix. It is idempotent and follows Rid chains recursively.
func (o *Csys) Build(mdl *Model) (err error) {
	if o.built {
		return
	}
	if o.building {
		return chk.Err("coordinate system #%d is defined in terms of itself", o.Id)
	}
	o.building = true
	defer func() { o.building = false }()

	// check input
	switch o.Kind {
	case "", "rect", "cyl":
	default:
		return chk.Err("coordinate system #%d has unknown kind %q", o.Id, o.Kind)
	}
	for _, p := range [][]float64{o.Origin, o.Zpoint, o.Xzplane} {
		if len(p) != 3 {
			return chk.Err("coordinate system #%d must define origin, zpoint and xzplane as 3-component points", o.Id)
		}
	}

	// defining points in the global frame
	p0, err := mdl.PointToGlobal(o.Rid, o.Origin)
	if err != nil {
		return chk.Err("coordinate system #%d: %v", o.Id, err)
	}
	pz, err := mdl.PointToGlobal(o.Rid, o.Zpoint)
	if err != nil {
		return chk.Err("coordinate system #%d: %v", o.Id, err)
	}
	pxz, err := mdl.PointToGlobal(o.Rid, o.Xzplane)
	if err != nil {
		return chk.Err("coordinate system #%d: %v", o.Id, err)
	}

	// base vectors: e3 along z; e2 normal to the x-z plane; e1 = e2 × e3
	e3 := la3.Sub(pz, p0)
	n3 := la3.Norm(e3)
	if n3 < 1e-14 {
		return chk.Err("coordinate system #%d is degenerate: zpoint coincides with origin", o.Id)
	}
	e3 = la3.Scale(1.0/n3, e3)
	v := la3.Sub(pxz, p0)
	e2 := la3.Cross(e3, v)
	n2 := la3.Norm(e2)
	if n2 < 1e-14 {
		return chk.Err("coordinate system #%d is degenerate: xzplane point lies on the z axis", o.Id)
	}
	e2 = la3.Scale(1.0/n2, e2)
	e1 := la3.Cross(e2, e3)

	// rotation matrix with base vectors as columns
	o.rot = la.NewMatrix(3, 3)
	for i := 0; i < 3; i++ {
		o.rot.Set(i, 0, e1[i])
		o.rot.Set(i, 1, e2[i])
		o.rot.Set(i, 2, e3[i])
	}
	o.origin = p0
	o.built = true
	return
}

// PointToGlobal converts a point given in this system to the global frame.
// Build must have been called.
func (o *Csys) PointToGlobal(x []float64) (g []float64) {
	l := x
	if o.Kind == "cyl" {
		θ := x[1] * math.Pi / 180.0
		l = []float64{x[0] * math.Cos(θ), x[0] * math.Sin(θ), x[2]}
	}
	g = make([]float64, 3)
	la.MatVecMul(g, 1, o.rot, l)
	return la3.Add(o.origin, g)
}

// VecToGlobal rotates a vector given in this system to the global frame.
// Cylindrical systems have a position-dependent basis and are rejected.
func (o *Csys) VecToGlobal(v []float64) (g []float64, err error) {
	if o.Kind == "cyl" {
		err = chk.Err("cannot transform vector with cylindrical system #%d: basis is position-dependent", o.Id)
		return
	}
	g = make([]float64, 3)
	la.MatVecMul(g, 1, o.rot, v)
	return
}
