// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gomass/inp"
	"github.com/cpmech/gomass/la3"
)

// Discrete implements the 2-node zero-mass elements: "spring2", "damper2",
// "bush2" and "gap2". They contribute nothing to mass, area or volume.
type Discrete struct {
	data
}

func init() {
	alloc := func(mdl *inp.Model, cell *inp.Cell, prop *inp.Property) Element {
		return &Discrete{data{cell, mdl, prop}}
	}
	for _, kind := range []string{"spring2", "damper2", "bush2", "gap2"} {
		SetAllocator(kind, 2, alloc)
	}
}

// Centroid returns the midpoint between the connected nodes
func (o *Discrete) Centroid() (c []float64, err error) {
	x, err := o.allpos()
	if err != nil {
		return
	}
	return la3.Mean(x[0], x[1]), nil
}

// Mass returns zero; the property must still be a zero-mass kind
func (o *Discrete) Mass() (m float64, err error) {
	cat, err := o.category()
	if err != nil {
		return
	}
	if cat != inp.CatZero {
		return 0, o.badCombo("mass")
	}
	return 0, nil
}
