// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mass implements the mass-properties engine: total mass, centre of
// gravity and inertia tensor of a selection of elements and concentrated
// masses, plus area/volume/mass breakdowns by property region.
//
// All sums run in the global frame about the global origin; the inertia
// tensor is shifted to the requested reference point afterwards with the
// parallel-axis theorem. The tensor is reported as six components
// {Ixx, Iyy, Izz, Ixy, Ixz, Iyz} with the products stored as Σ m・x・y.
// Element inertia uses the m・r² approximation: only concentrated masses
// carry an inertia of their own.
package mass

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomass/ele"
	"github.com/cpmech/gomass/inp"
)

// Ref identifies the reference point of the inertia tensor: an explicit
// point, a node, or the centre of gravity of the selection itself.
// The zero value means the global origin.
type Ref struct {
	kind  int // 0: point, 1: node, 2: cg
	point []float64
	nid   int
}

// RefPoint returns a reference at an explicit point in the global frame
func RefPoint(x []float64) Ref { return Ref{point: x} }

// RefNode returns a reference at the position of a node
func RefNode(nid int) Ref { return Ref{kind: 1, nid: nid} }

// RefCG returns a reference at the centre of gravity of the selection
func RefCG() Ref { return Ref{kind: 2} }

// Calc computes mass properties over one model. Each call is a pure
// function of the model snapshot; Calc itself holds no per-call state.
type Calc struct {
	Mdl    *inp.Model
	Elems  map[int]ele.Element    // eid → element, allocated once from the factory
	Masses map[int]ele.MassObject // mid → concentrated/scalar mass

	// StopIfNoMass makes a selection with entities but zero total mass an
	// error instead of an all-zero result
	StopIfNoMass bool
}

// New allocates the element and mass objects of a model
func New(mdl *inp.Model) (o *Calc, err error) {
	o = &Calc{
		Mdl:    mdl,
		Elems:  make(map[int]ele.Element),
		Masses: make(map[int]ele.MassObject),
	}
	for _, cell := range mdl.Cells {
		o.Elems[cell.Id], err = ele.New(mdl, cell)
		if err != nil {
			return nil, err
		}
	}
	for _, pm := range mdl.Pmasses {
		o.Masses[pm.Id] = ele.NewPointMass(mdl, pm)
	}
	for _, sm := range mdl.Smasses {
		o.Masses[sm.Id] = ele.NewScalarMass(mdl, sm)
	}
	return
}

// Properties computes total mass, centre of gravity and inertia tensor
// about the reference point, using the resolved node-position cache.
//
//	eids, mids -- element/mass selections; nil means all, an empty slice means none
//	ref        -- reference point of the inertia tensor
//	symAxis    -- reflective symmetry: "", "no", "x", "y", "z", "xy", "yz", "xz", "xyz"
//	scale      -- mass scale; values <= 0 select the model "wtmass" parameter (or 1.0)
func (o *Calc) Properties(eids, mids []int, ref Ref, symAxis string, scale float64) (mass float64, cg, I []float64, err error) {
	if !o.Mdl.Resolved {
		err = chk.Err("model must be resolved before computing mass properties; call ResolveNodes or use PropertiesNoResolve")
		return
	}
	return o.properties(eids, mids, ref, symAxis, scale)
}

// PropertiesNoResolve computes the same mass properties without requiring
// the node-position cache: coordinate transforms run per call. Slower, but
// usable before ResolveNodes, with identical results for the same model.
func (o *Calc) PropertiesNoResolve(eids, mids []int, ref Ref, symAxis string, scale float64) (mass float64, cg, I []float64, err error) {
	return o.properties(eids, mids, ref, symAxis, scale)
}

func (o *Calc) properties(eids, mids []int, ref Ref, symAxis string, scale float64) (mass float64, cg, I []float64, err error) {

	// selection
	elems, masses, err := o.selection(eids, mids)
	if err != nil {
		return
	}

	// accumulation about the global origin
	M, S, P, Iown, err := accumulate(elems, masses)
	if err != nil {
		return
	}

	// centre of gravity; a selection with entities but no mass yields zeros
	// unless strict mode was requested
	cg = make([]float64, 3)
	if M > 0 {
		cg[0] = S[0] / M
		cg[1] = S[1] / M
		cg[2] = S[2] / M
	} else if len(elems)+len(masses) > 0 && o.StopIfNoMass {
		err = chk.Err("no mass found in selection with %d elements and %d masses", len(elems), len(masses))
		return
	}

	// reference point
	p0 := []float64{0, 0, 0}
	switch ref.kind {
	case 0:
		if ref.point != nil {
			if len(ref.point) != 3 {
				err = chk.Err("reference point must have 3 components; got %d", len(ref.point))
				return
			}
			p0 = ref.point
		}
	case 1:
		p0, err = o.Mdl.NodePosition(ref.nid)
		if err != nil {
			return
		}
	case 2:
		p0 = cg
	}

	// parallel-axis shift to the reference point
	I = inertiaAbout(p0, M, S, P, Iown)

	// symmetry and scale post-processing
	mass, err = applySymmetry(symAxis, M, cg, I)
	if err != nil {
		return
	}
	mass, I = applyScale(resolveScale(o.Mdl, scale), mass, I)
	return
}

// selection resolves id selections into concrete objects. Iteration order is
// fixed: ascending ids for "all", given order otherwise.
func (o *Calc) selection(eids, mids []int) (elems []ele.Element, masses []ele.MassObject, err error) {
	if eids == nil {
		eids = o.Mdl.ElemIds()
	}
	for _, eid := range eids {
		e, ok := o.Elems[eid]
		if !ok {
			err = chk.Err("cannot find element #%d in model", eid)
			return
		}
		elems = append(elems, e)
	}
	if mids == nil {
		mids = o.Mdl.MassIds()
	}
	for _, mid := range mids {
		mo, ok := o.Masses[mid]
		if !ok {
			err = chk.Err("cannot find mass #%d in model", mid)
			return
		}
		masses = append(masses, mo)
	}
	return
}

// accumulate runs one pass over the selection, collecting the total mass M,
// the first moments S = Σ m・x and the raw second moments
// P = {Σ m・x², Σ m・y², Σ m・z², Σ m・x・y, Σ m・x・z, Σ m・y・z}, all about the
// global origin, plus the summed own inertia of concentrated masses.
func accumulate(elems []ele.Element, masses []ele.MassObject) (M float64, S, P, Iown []float64, err error) {
	S = make([]float64, 3)
	P = make([]float64, 6)
	Iown = make([]float64, 6)
	add := func(m float64, c []float64) {
		M += m
		S[0] += m * c[0]
		S[1] += m * c[1]
		S[2] += m * c[2]
		P[0] += m * c[0] * c[0]
		P[1] += m * c[1] * c[1]
		P[2] += m * c[2] * c[2]
		P[3] += m * c[0] * c[1]
		P[4] += m * c[0] * c[2]
		P[5] += m * c[1] * c[2]
	}
	for _, e := range elems {
		m, err1 := e.Mass()
		if err1 != nil {
			return 0, nil, nil, nil, err1
		}
		c, err1 := e.Centroid()
		if err1 != nil {
			return 0, nil, nil, nil, err1
		}
		add(m, c)
	}
	for _, mo := range masses {
		c, err1 := mo.Centroid()
		if err1 != nil {
			return 0, nil, nil, nil, err1
		}
		add(mo.Mass(), c)
		if own := mo.OwnInertia(); own != nil {
			for i := 0; i < 6; i++ {
				Iown[i] += own[i]
			}
		}
	}
	return
}

// inertiaAbout evaluates the inertia tensor about point p0 from the raw
// origin sums, via the parallel-axis theorem
func inertiaAbout(p0 []float64, M float64, S, P, Iown []float64) (I []float64) {
	x, y, z := p0[0], p0[1], p0[2]
	return []float64{
		P[1] + P[2] - 2*y*S[1] - 2*z*S[2] + M*(y*y+z*z) + Iown[0], // Ixx
		P[0] + P[2] - 2*x*S[0] - 2*z*S[2] + M*(x*x+z*z) + Iown[1], // Iyy
		P[0] + P[1] - 2*x*S[0] - 2*y*S[1] + M*(x*x+y*y) + Iown[2], // Izz
		P[3] - x*S[1] - y*S[0] + M*x*y + Iown[3],                  // Ixy
		P[4] - x*S[2] - z*S[0] + M*x*z + Iown[4],                  // Ixz
		P[5] - y*S[2] - z*S[1] + M*y*z + Iown[5],                  // Iyz
	}
}
