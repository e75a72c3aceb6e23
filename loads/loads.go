// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package loads sums the applied loads of a load case into one resultant
// force and moment about a reference point. Same accumulation pattern as
// the mass engine: one pass over an already-resolved, heterogeneous set,
// classifying by card kind.
package loads

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomass/ele"
	"github.com/cpmech/gomass/inp"
	"github.com/cpmech/gomass/la3"
)

// SumForcesMoments sums all loads of case sid about point p0 (global frame),
// returning the resultant force and moment
func SumForcesMoments(mdl *inp.Model, p0 []float64, sid int, includeGrav bool) (F, M []float64, err error) {
	return SumForcesMomentsSelected(mdl, p0, sid, nil, nil, includeGrav)
}

// SumForcesMomentsSelected sums the loads of case sid restricted to a
// selection: nodal cards apply only if their node is in nids, distributed
// cards only for the elements in eids. nil selections mean "all". Note that
// summing sections separately double-counts loads on shared boundary nodes.
func SumForcesMomentsSelected(mdl *inp.Model, p0 []float64, sid int, eids, nids []int, includeGrav bool) (F, M []float64, err error) {
	if len(p0) != 3 {
		err = chk.Err("reference point must have 3 components; got %d", len(p0))
		return
	}
	ls, err := mdl.LoadCase(sid)
	if err != nil {
		return
	}

	// selection filters; nil admits everything
	var ef, nf map[int]bool
	if eids != nil {
		ef = make(map[int]bool)
		for _, eid := range eids {
			ef[eid] = true
		}
	}
	if nids != nil {
		nf = make(map[int]bool)
		for _, nid := range nids {
			nf[nid] = true
		}
	}

	F = make([]float64, 3)
	M = make([]float64, 3)
	addForce := func(f, at []float64) {
		F = la3.Add(F, f)
		M = la3.Add(M, la3.Cross(la3.Sub(at, p0), f))
	}
	addMoment := func(m []float64) {
		M = la3.Add(M, m)
	}

	for _, sl := range ls {
		card := sl.Card
		s := sl.Factor
		switch card.Kind {

		case "force":
			if nf != nil && !nf[card.Nid] {
				continue
			}
			at, v, err1 := nodalVector(mdl, card)
			if err1 != nil {
				return nil, nil, err1
			}
			addForce(la3.Scale(s*card.F, v), at)

		case "force2":
			if nf != nil && !nf[card.Nid] {
				continue
			}
			at, dir, err1 := twoNodeDirection(mdl, card)
			if err1 != nil {
				return nil, nil, err1
			}
			addForce(la3.Scale(s*card.F, dir), at)

		case "moment":
			if nf != nil && !nf[card.Nid] {
				continue
			}
			_, v, err1 := nodalVector(mdl, card)
			if err1 != nil {
				return nil, nil, err1
			}
			addMoment(la3.Scale(s*card.F, v))

		case "moment2":
			if nf != nil && !nf[card.Nid] {
				continue
			}
			_, dir, err1 := twoNodeDirection(mdl, card)
			if err1 != nil {
				return nil, nil, err1
			}
			addMoment(la3.Scale(s*card.F, dir))

		case "pload":
			if skipPatch(nf, card.Verts) {
				continue
			}
			at, an, err1 := patchVectorArea(mdl, card)
			if err1 != nil {
				return nil, nil, err1
			}
			addForce(la3.Scale(s*card.P, an), at)

		case "pload2":
			for _, eid := range card.Eids {
				if ef != nil && !ef[eid] {
					continue
				}
				at, an, err1 := elemVectorArea(mdl, sid, eid)
				if err1 != nil {
					return nil, nil, err1
				}
				addForce(la3.Scale(s*card.P, an), at)
			}

		case "grav":
			if includeGrav {
				return nil, nil, chk.Err("gravity loads are not supported in force summation")
			}

		default:
			return nil, nil, chk.Err("load card kind %q in case #%d is not supported", card.Kind, sid)
		}
	}
	return
}

// nodalVector resolves the application point and the card vector in the
// global frame
func nodalVector(mdl *inp.Model, card *inp.Load) (at, v []float64, err error) {
	at, err = mdl.NodePosition(card.Nid)
	if err != nil {
		return
	}
	if len(card.N) != 3 {
		err = chk.Err("%q card at node #%d in case #%d must have a 3-component vector", card.Kind, card.Nid, card.Sid)
		return
	}
	v, err = mdl.VecToGlobal(card.Cs, card.N)
	if err != nil {
		err = chk.Err("%q card at node #%d in case #%d: %v", card.Kind, card.Nid, card.Sid, err)
	}
	return
}

// twoNodeDirection resolves the application point and the unit vector from
// node G1 to node G2
func twoNodeDirection(mdl *inp.Model, card *inp.Load) (at, dir []float64, err error) {
	at, err = mdl.NodePosition(card.Nid)
	if err != nil {
		return
	}
	a, err := mdl.NodePosition(card.G1)
	if err != nil {
		return
	}
	b, err := mdl.NodePosition(card.G2)
	if err != nil {
		return
	}
	dir = la3.Sub(b, a)
	n := la3.Norm(dir)
	if n < 1e-14 {
		err = chk.Err("%q card in case #%d has coincident direction nodes #%d and #%d", card.Kind, card.Sid, card.G1, card.G2)
		return
	}
	dir = la3.Scale(1.0/n, dir)
	return
}

// skipPatch reports whether a patch card falls outside the nodal selection
func skipPatch(nf map[int]bool, verts []int) bool {
	if nf == nil {
		return false
	}
	for _, nid := range verts {
		if !nf[nid] {
			return true
		}
	}
	return false
}

// patchVectorArea returns the centroid and the vector area (normal times
// area, following the vertex ordering) of a 3- or 4-node pressure patch
func patchVectorArea(mdl *inp.Model, card *inp.Load) (at, an []float64, err error) {
	n := len(card.Verts)
	if n != 3 && n != 4 {
		err = chk.Err("\"pload\" card in case #%d must have 3 or 4 vertices; got %d", card.Sid, n)
		return
	}
	x := make([][]float64, n)
	for i, nid := range card.Verts {
		x[i], err = mdl.NodePosition(nid)
		if err != nil {
			return
		}
	}
	if n == 3 {
		an = la3.Scale(0.5, la3.Cross(la3.Sub(x[1], x[0]), la3.Sub(x[2], x[0])))
	} else {
		an = la3.Scale(0.5, la3.Cross(la3.Sub(x[2], x[0]), la3.Sub(x[3], x[1])))
	}
	at = la3.Mean(x...)
	return
}

// elemVectorArea returns the centroid and vector area of a shell element
// loaded by pressure
func elemVectorArea(mdl *inp.Model, sid, eid int) (at, an []float64, err error) {
	cell, ok := mdl.Eid2cell[eid]
	if !ok {
		err = chk.Err("cannot find element #%d referenced by load case #%d", eid, sid)
		return
	}
	e, err := ele.New(mdl, cell)
	if err != nil {
		return
	}
	ea, oka := e.(ele.WithArea)
	en, okn := e.(ele.WithNormal)
	if !oka || !okn {
		err = chk.Err("pressure load in case #%d needs a surface element; %q #%d has no area/normal", sid, e.Kind(), eid)
		return
	}
	a, err := ea.Area()
	if err != nil {
		return
	}
	nrm, err := en.Normal()
	if err != nil {
		return
	}
	at, err = e.Centroid()
	if err != nil {
		return
	}
	an = la3.Scale(a, nrm)
	return
}
