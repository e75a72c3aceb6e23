// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the geometry and mass formulas of elements
package ele

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomass/inp"
)

// Element defines what all elements must implement. Geometric quantities are
// recomputed on demand from the current node positions; nothing is cached
// across node edits.
type Element interface {
	Id() int                      // element id
	Pid() int                     // referenced property id
	Kind() string                 // kind tag; e.g. "quad4"
	Centroid() ([]float64, error) // geometric centroid in the global frame
	Mass() (float64, error)       // mass from the kind/property-specific formula
}

// WithArea defines elements with a surface area
type WithArea interface {
	Area() (float64, error)
}

// WithLength defines elements with an axis length
type WithLength interface {
	Length() (float64, error)
}

// WithVolume defines elements with a volume
type WithVolume interface {
	Volume() (float64, error)
}

// WithNormal defines elements with a surface normal; e.g. for pressure loads
type WithNormal interface {
	Normal() ([]float64, error)
}

// data holds what every concrete element needs: the raw cell, the model for
// node-position queries and the resolved property
type data struct {
	cell *inp.Cell
	mdl  *inp.Model
	prop *inp.Property
}

// Id returns the element id
func (o *data) Id() int { return o.cell.Id }

// Pid returns the referenced property id
func (o *data) Pid() int { return o.cell.Pid }

// Kind returns the element kind tag
func (o *data) Kind() string { return o.cell.Kind }

// pos returns the global position of the i-th vertex
func (o *data) pos(i int) ([]float64, error) {
	return o.mdl.NodePosition(o.cell.Verts[i])
}

// allpos returns the global positions of all vertices
func (o *data) allpos() (x [][]float64, err error) {
	x = make([][]float64, len(o.cell.Verts))
	for i, nid := range o.cell.Verts {
		x[i], err = o.mdl.NodePosition(nid)
		if err != nil {
			return nil, chk.Err("element #%d: %v", o.cell.Id, err)
		}
	}
	return
}

// category returns the property category, with element context on error
func (o *data) category() (cat inp.Category, err error) {
	cat, err = o.prop.Category()
	if err != nil {
		err = chk.Err("element %q #%d: %v", o.cell.Kind, o.cell.Id, err)
	}
	return
}

// badCombo builds the degenerate element/property combination error
func (o *data) badCombo(what string) error {
	return chk.Err("element %q #%d cannot compute %s with property %q #%d", o.cell.Kind, o.cell.Id, what, o.prop.Kind, o.prop.Id)
}
