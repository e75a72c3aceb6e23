// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomass/inp"
	"github.com/cpmech/gomass/la3"
)

// Tri3 implements a 3-node surface element
type Tri3 struct {
	data
}

// Quad4 implements a 4-node surface element. The same geometry backs the
// "quad4" and "shear4" kinds; the referenced property decides the mass rule.
type Quad4 struct {
	data
}

func init() {
	SetAllocator("tri3", 3, func(mdl *inp.Model, cell *inp.Cell, prop *inp.Property) Element {
		return &Tri3{data{cell, mdl, prop}}
	})
	qalloc := func(mdl *inp.Model, cell *inp.Cell, prop *inp.Property) Element {
		return &Quad4{data{cell, mdl, prop}}
	}
	SetAllocator("quad4", 4, qalloc)
	SetAllocator("shear4", 4, qalloc)
}

// Area returns the triangle area
func (o *Tri3) Area() (a float64, err error) {
	x, err := o.allpos()
	if err != nil {
		return
	}
	n := la3.Cross(la3.Sub(x[1], x[0]), la3.Sub(x[2], x[0]))
	return 0.5 * la3.Norm(n), nil
}

// Normal returns the unit normal following the vertex ordering
func (o *Tri3) Normal() (n []float64, err error) {
	x, err := o.allpos()
	if err != nil {
		return
	}
	n = la3.Cross(la3.Sub(x[1], x[0]), la3.Sub(x[2], x[0]))
	a := la3.Norm(n)
	if a < 1e-14 {
		return nil, chk.Err("element %q #%d is degenerate: zero area", o.cell.Kind, o.cell.Id)
	}
	return la3.Scale(1.0/a, n), nil
}

// Centroid returns the centroid in the global frame
func (o *Tri3) Centroid() (c []float64, err error) {
	x, err := o.allpos()
	if err != nil {
		return
	}
	return la3.Mean(x...), nil
}

// Mass returns area × (surface density + non-structural mass)
func (o *Tri3) Mass() (m float64, err error) {
	return shellMass(&o.data, o)
}

// Area returns the quadrilateral area from the diagonals cross product
func (o *Quad4) Area() (a float64, err error) {
	x, err := o.allpos()
	if err != nil {
		return
	}
	n := la3.Cross(la3.Sub(x[2], x[0]), la3.Sub(x[3], x[1]))
	return 0.5 * la3.Norm(n), nil
}

// Normal returns the unit normal following the vertex ordering
func (o *Quad4) Normal() (n []float64, err error) {
	x, err := o.allpos()
	if err != nil {
		return
	}
	n = la3.Cross(la3.Sub(x[2], x[0]), la3.Sub(x[3], x[1]))
	a := la3.Norm(n)
	if a < 1e-14 {
		return nil, chk.Err("element %q #%d is degenerate: zero area", o.cell.Kind, o.cell.Id)
	}
	return la3.Scale(1.0/a, n), nil
}

// Centroid returns the centroid in the global frame
func (o *Quad4) Centroid() (c []float64, err error) {
	x, err := o.allpos()
	if err != nil {
		return
	}
	return la3.Mean(x...), nil
}

// Mass returns area × (surface density + non-structural mass)
func (o *Quad4) Mass() (m float64, err error) {
	return shellMass(&o.data, o)
}

// shellMass computes the mass of a surface element: the property must be
// shell-like; any other combination is a hard error
func shellMass(d *data, e WithArea) (m float64, err error) {
	cat, err := d.category()
	if err != nil {
		return
	}
	if cat != inp.CatShell {
		return 0, d.badCombo("mass")
	}
	a, err := e.Area()
	if err != nil {
		return
	}
	return a * d.prop.MassPerArea(), nil
}
