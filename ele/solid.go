// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gomass/inp"
	"github.com/cpmech/gomass/la3"
)

// Tet4 implements a 4-node tetrahedron
type Tet4 struct {
	data
}

// Solid implements the remaining volumetric elements ("penta6", "hexa8",
// "pyra5") with the volume computed from a face decomposition about the
// vertex centroid
type Solid struct {
	data
	faces [][]int
}

// solidFaces holds the face tables of the generic solids
var solidFaces = map[string][][]int{
	"penta6": {
		{0, 1, 2}, {3, 4, 5},
		{0, 1, 4, 3}, {1, 2, 5, 4}, {2, 0, 3, 5},
	},
	"hexa8": {
		{0, 1, 2, 3}, {4, 5, 6, 7},
		{0, 1, 5, 4}, {1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	},
	"pyra5": {
		{0, 1, 2, 3},
		{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4},
	},
}

func init() {
	SetAllocator("tet4", 4, func(mdl *inp.Model, cell *inp.Cell, prop *inp.Property) Element {
		return &Tet4{data{cell, mdl, prop}}
	})
	salloc := func(mdl *inp.Model, cell *inp.Cell, prop *inp.Property) Element {
		return &Solid{data{cell, mdl, prop}, solidFaces[cell.Kind]}
	}
	SetAllocator("penta6", 6, salloc)
	SetAllocator("hexa8", 8, salloc)
	SetAllocator("pyra5", 5, salloc)
}

// tetVolume returns the volume of the tetrahedron (a, b, c, d)
func tetVolume(a, b, c, d []float64) float64 {
	return math.Abs(la3.Dot(la3.Sub(b, a), la3.Cross(la3.Sub(c, a), la3.Sub(d, a)))) / 6.0
}

// Volume returns the tetrahedron volume
func (o *Tet4) Volume() (v float64, err error) {
	x, err := o.allpos()
	if err != nil {
		return
	}
	return tetVolume(x[0], x[1], x[2], x[3]), nil
}

// Centroid returns the centroid in the global frame
func (o *Tet4) Centroid() (c []float64, err error) {
	x, err := o.allpos()
	if err != nil {
		return
	}
	return la3.Mean(x...), nil
}

// Mass returns density × volume
func (o *Tet4) Mass() (m float64, err error) {
	return solidMass(&o.data, o)
}

// Volume sums the tetrahedra formed by the triangulated faces and the
// vertex centroid. Exact for convex cells.
func (o *Solid) Volume() (v float64, err error) {
	x, err := o.allpos()
	if err != nil {
		return
	}
	c := la3.Mean(x...)
	for _, f := range o.faces {
		for i := 1; i < len(f)-1; i++ {
			v += tetVolume(x[f[0]], x[f[i]], x[f[i+1]], c)
		}
	}
	return
}

// Centroid returns the average of the vertices. For the mildly distorted
// cells this engine targets, the deviation from the true volumetric centroid
// is below the m·r² approximation error.
func (o *Solid) Centroid() (c []float64, err error) {
	x, err := o.allpos()
	if err != nil {
		return
	}
	return la3.Mean(x...), nil
}

// Mass returns density × volume
func (o *Solid) Mass() (m float64, err error) {
	return solidMass(&o.data, o)
}

// solidMass computes the mass of a volumetric element: the property must be
// solid-like; any other combination is a hard error
func solidMass(d *data, e WithVolume) (m float64, err error) {
	cat, err := d.category()
	if err != nil {
		return
	}
	if cat != inp.CatSolid {
		return 0, d.badCombo("mass")
	}
	v, err := e.Volume()
	if err != nil {
		return
	}
	return d.prop.Rho * v, nil
}
