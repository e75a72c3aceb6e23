// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomass/inp"
	"github.com/cpmech/gomass/la3"
)

// MassObject defines concentrated masses: entities with an explicit mass
// scalar and position, independent of the element/property graph
type MassObject interface {
	Id() int
	Kind() string
	Mass() float64
	Centroid() ([]float64, error) // position in the global frame
	OwnInertia() []float64        // inertia about its own centre {Ixx,Iyy,Izz,Ixy,Ixz,Iyz}; nil if none
}

// PointMass wraps a concentrated mass card: mass at a node plus an optional
// offset and an optional rigid-body inertia about its own centre
type PointMass struct {
	mdl  *inp.Model
	card *inp.PMass
}

// ScalarMass wraps a scalar mass lumped directly at a node
type ScalarMass struct {
	mdl  *inp.Model
	card *inp.SMass
}

// NewPointMass returns a point-mass object
func NewPointMass(mdl *inp.Model, card *inp.PMass) *PointMass {
	return &PointMass{mdl, card}
}

// NewScalarMass returns a scalar-mass object
func NewScalarMass(mdl *inp.Model, card *inp.SMass) *ScalarMass {
	return &ScalarMass{mdl, card}
}

// Id returns the mass id
func (o *PointMass) Id() int { return o.card.Id }

// Kind returns "pmass"
func (o *PointMass) Kind() string { return "pmass" }

// Mass returns the explicit mass value
func (o *PointMass) Mass() float64 { return o.card.M }

// Centroid returns the node position plus the rotated offset
func (o *PointMass) Centroid() (c []float64, err error) {
	c, err = o.mdl.NodePosition(o.card.Nid)
	if err != nil {
		return nil, chk.Err("mass #%d: %v", o.card.Id, err)
	}
	if len(o.card.X) == 0 {
		return
	}
	d, err := o.mdl.VecToGlobal(o.card.Cs, o.card.X)
	if err != nil {
		return nil, chk.Err("mass #%d: %v", o.card.Id, err)
	}
	return la3.Add(c, d), nil
}

// OwnInertia returns the inertia about the mass centre, or nil
func (o *PointMass) OwnInertia() []float64 { return o.card.I }

// Id returns the mass id
func (o *ScalarMass) Id() int { return o.card.Id }

// Kind returns "smass"
func (o *ScalarMass) Kind() string { return "smass" }

// Mass returns the explicit mass value
func (o *ScalarMass) Mass() float64 { return o.card.M }

// Centroid returns the node position
func (o *ScalarMass) Centroid() (c []float64, err error) {
	c, err = o.mdl.NodePosition(o.card.Nid)
	if err != nil {
		return nil, chk.Err("mass #%d: %v", o.card.Id, err)
	}
	return
}

// OwnInertia returns nil: scalar masses carry no inertia of their own
func (o *ScalarMass) OwnInertia() []float64 { return nil }
