// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/chk"

// Category labels the family a property kind belongs to. The classification
// table is closed: every kind used by a model must appear in one family,
// otherwise mass/area/volume aggregation fails naming the offending kind.
type Category int

const (
	CatShell Category = iota + 1 // surface properties: area × thickness
	CatLine                      // line properties: cross-section area × length
	CatSolid                     // solid properties: volume × density
	CatZero                      // discrete properties: no area, volume or mass
)

// kind2category classifies all known property kinds
var kind2category = map[string]Category{

	// shell-like
	"shell": CatShell, // homogeneous plate: thickness, density, nsm per area
	"comp":  CatShell, // layered composite: ply stack
	"shear": CatShell, // shear panel: thickness, density, nsm per area

	// line-like
	"bar":  CatLine,
	"beam": CatLine,
	"rod":  CatLine,
	"tube": CatLine,

	// solid-like
	"solid":  CatSolid,
	"lsolid": CatSolid, // layered solid
	"csolid": CatSolid, // composite solid

	// zero-mass
	"spring": CatZero,
	"damper": CatZero,
	"bush":   CatZero,
	"gap":    CatZero,
	"visc":   CatZero,
	"plane":  CatZero, // 2D plane-strain modelling property
	"cone":   CatZero, // axisymmetric conic property
}

// Ply holds one layer of a composite property
type Ply struct {
	T   float64 `json:"t"`   // layer thickness
	Rho float64 `json:"rho"` // layer density
}

// Property holds scalar physical attributes shared by the elements that
// reference it. Only the fields relevant for the property kind are used.
type Property struct {
	Id    int     `json:"id"`
	Kind  string  `json:"kind"`
	T     float64 `json:"t"`     // thickness [shell, shear]
	Nsm   float64 `json:"nsm"`   // non-structural mass per area [shell] or per length [line]
	Rho   float64 `json:"rho"`   // density [shell, shear, line, solid]
	A     float64 `json:"a"`     // cross-section area [line]
	Plies []*Ply  `json:"plies"` // layer stack [comp]
}

// Category returns the family of this property. An unclassified kind is a
// hard error; new kinds must be added to the classification table explicitly.
func (o *Property) Category() (cat Category, err error) {
	cat, ok := kind2category[o.Kind]
	if !ok {
		err = chk.Err("property #%d has unclassified kind %q", o.Id, o.Kind)
	}
	return
}

// Thickness returns the total thickness. For composites this is the sum of
// the ply thicknesses; otherwise the T attribute.
func (o *Property) Thickness() float64 {
	if o.Kind == "comp" {
		t := 0.0
		for _, ply := range o.Plies {
			t += ply.T
		}
		return t
	}
	return o.T
}

// MassPerArea returns the surface density of a shell-like property,
// including the non-structural mass
func (o *Property) MassPerArea() float64 {
	if o.Kind == "comp" {
		μ := o.Nsm
		for _, ply := range o.Plies {
			μ += ply.Rho * ply.T
		}
		return μ
	}
	return o.Rho*o.T + o.Nsm
}
