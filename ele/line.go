// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomass/inp"
	"github.com/cpmech/gomass/la3"
)

// Line2 implements the 2-node axial elements: "bar", "beam", "rod" and
// "tube". The cross-section area comes from the property, not the geometry.
type Line2 struct {
	data
}

func init() {
	alloc := func(mdl *inp.Model, cell *inp.Cell, prop *inp.Property) Element {
		return &Line2{data{cell, mdl, prop}}
	}
	for _, kind := range []string{"bar", "beam", "rod", "tube"} {
		SetAllocator(kind, 2, alloc)
	}
}

// Length returns the distance between the end nodes
func (o *Line2) Length() (l float64, err error) {
	x, err := o.allpos()
	if err != nil {
		return
	}
	l = la3.Dist(x[0], x[1])
	if l < 1e-14 {
		return 0, chk.Err("element %q #%d is degenerate: zero length", o.cell.Kind, o.cell.Id)
	}
	return
}

// Area returns the cross-section area from the property
func (o *Line2) Area() (a float64, err error) {
	cat, err := o.category()
	if err != nil {
		return
	}
	if cat != inp.CatLine {
		return 0, o.badCombo("area")
	}
	return o.prop.A, nil
}

// Centroid returns the axis midpoint
func (o *Line2) Centroid() (c []float64, err error) {
	x, err := o.allpos()
	if err != nil {
		return
	}
	return la3.Mean(x[0], x[1]), nil
}

// Mass returns area × (density × length + non-structural mass)
func (o *Line2) Mass() (m float64, err error) {
	cat, err := o.category()
	if err != nil {
		return
	}
	if cat != inp.CatLine {
		return 0, o.badCombo("mass")
	}
	l, err := o.Length()
	if err != nil {
		return
	}
	return o.prop.A * (o.prop.Rho*l + o.prop.Nsm), nil
}
