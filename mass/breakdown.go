// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mass

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomass/ele"
	"github.com/cpmech/gomass/inp"
)

// solidShapes lists the solid element kinds with a closed-form volume used
// by the breakdowns. Other kinds under a solid property are skipped and
// logged once per (element kind, property kind) pair.
var solidShapes = map[string]bool{
	"tet4":   true,
	"penta6": true,
	"hexa8":  true,
}

// skipLog deduplicates skip messages by (element kind, property kind).
// It is created per call; the breakdowns keep no state between calls.
type skipLog struct {
	what string
	seen map[[2]string]bool
}

func newSkipLog(what string) *skipLog {
	return &skipLog{what, make(map[[2]string]bool)}
}

func (o *skipLog) log(ekind, pkind string) {
	key := [2]string{ekind, pkind}
	if o.seen[key] {
		return
	}
	o.seen[key] = true
	io.Pfgrey("skipping %s of (%s, %s)\n", o.what, ekind, pkind)
}

// pidEids collects the element ids referencing each requested property.
// pids = nil means all properties. Unknown ids are errors.
func (o *Calc) pidEids(pids []int) (map[int][]int, error) {
	if pids == nil {
		pids = o.Mdl.PropIds()
	}
	requested := make(map[int]bool)
	for _, pid := range pids {
		if _, ok := o.Mdl.Pid2prop[pid]; !ok {
			return nil, chk.Err("cannot find property #%d in model", pid)
		}
		requested[pid] = true
	}
	out := make(map[int][]int)
	for _, eid := range o.Mdl.ElemIds() {
		cell := o.Mdl.Eid2cell[eid]
		if requested[cell.Pid] {
			out[cell.Pid] = append(out[cell.Pid], eid)
		}
	}
	return out, nil
}

// AreaBreakdown partitions area by property region.
//
//	pids       -- property selection; nil means all
//	sumBarArea -- line properties: sum the per-element areas instead of
//	              taking one representative cross-section
//
// Properties that contribute nothing are omitted from the result.
func (o *Calc) AreaBreakdown(pids []int, sumBarArea bool) (area map[int]float64, err error) {
	grouped, err := o.pidEids(pids)
	if err != nil {
		return
	}
	area = make(map[int]float64)
	for pid, eids := range grouped {
		prop := o.Mdl.Pid2prop[pid]
		cat, err1 := prop.Category()
		if err1 != nil {
			return nil, err1
		}
		sum, n := 0.0, 0
		switch cat {
		case inp.CatShell:
			for _, eid := range eids {
				a, err1 := o.elemArea(eid, prop)
				if err1 != nil {
					return nil, err1
				}
				sum += a
				n++
			}
		case inp.CatLine:
			for _, eid := range eids {
				a, err1 := o.elemArea(eid, prop)
				if err1 != nil {
					return nil, err1
				}
				if sumBarArea {
					sum += a
				} else {
					sum = a // one representative cross-section
				}
				n++
			}
		case inp.CatSolid, inp.CatZero:
			// no area
		}
		if n > 0 {
			area[pid] = sum
		}
	}
	return
}

// VolumeBreakdown partitions volume by property region. Shell-like regions
// use area × thickness; line-like use section area × length; solid regions
// use the element volume for the supported shapes, skipping (and logging
// once) the unsupported ones. Properties that contribute nothing are
// omitted.
func (o *Calc) VolumeBreakdown(pids []int) (vol map[int]float64, err error) {
	grouped, err := o.pidEids(pids)
	if err != nil {
		return
	}
	sk := newSkipLog("volume")
	vol = make(map[int]float64)
	for pid, eids := range grouped {
		prop := o.Mdl.Pid2prop[pid]
		cat, err1 := prop.Category()
		if err1 != nil {
			return nil, err1
		}
		sum, n := 0.0, 0
		switch cat {
		case inp.CatShell:
			t := prop.Thickness()
			for _, eid := range eids {
				a, err1 := o.elemArea(eid, prop)
				if err1 != nil {
					return nil, err1
				}
				sum += a * t
				n++
			}
		case inp.CatLine:
			for _, eid := range eids {
				l, err1 := o.elemLength(eid, prop)
				if err1 != nil {
					return nil, err1
				}
				sum += prop.A * l
				n++
			}
		case inp.CatSolid:
			for _, eid := range eids {
				e := o.Elems[eid]
				if !solidShapes[e.Kind()] {
					sk.log(e.Kind(), prop.Kind)
					continue
				}
				v, err1 := e.(ele.WithVolume).Volume()
				if err1 != nil {
					return nil, err1
				}
				sum += v
				n++
			}
		case inp.CatZero:
			// no volume
		}
		if n > 0 {
			vol[pid] = sum
		}
	}
	return
}

// Breakdown partitions mass by property region and, independently, by
// concentrated-mass kind. The property filter does not affect the mass-kind
// map: concentrated masses have no property reference.
//
// With stopIfNoMass, finding no mass at all is the "no mass found" error;
// otherwise two empty maps are returned.
func (o *Calc) Breakdown(pids []int, stopIfNoMass bool) (pmass map[int]float64, kmass map[string]float64, err error) {

	// concentrated masses by kind
	kmass = make(map[string]float64)
	for _, mid := range o.Mdl.MassIds() {
		mo := o.Masses[mid]
		kmass[mo.Kind()] += mo.Mass()
	}

	// elements by property region
	grouped, err := o.pidEids(pids)
	if err != nil {
		return nil, nil, err
	}
	sk := newSkipLog("mass")
	pmass = make(map[int]float64)
	for pid, eids := range grouped {
		prop := o.Mdl.Pid2prop[pid]
		cat, err1 := prop.Category()
		if err1 != nil {
			return nil, nil, err1
		}
		sum, n := 0.0, 0
		switch cat {
		case inp.CatShell, inp.CatLine:
			for _, eid := range eids {
				m, err1 := o.Elems[eid].Mass()
				if err1 != nil {
					return nil, nil, err1
				}
				sum += m
				n++
			}
		case inp.CatSolid:
			for _, eid := range eids {
				e := o.Elems[eid]
				if !solidShapes[e.Kind()] {
					sk.log(e.Kind(), prop.Kind)
					continue
				}
				v, err1 := e.(ele.WithVolume).Volume()
				if err1 != nil {
					return nil, nil, err1
				}
				sum += prop.Rho * v
				n++
			}
		case inp.CatZero:
			// no mass
		}
		if n > 0 {
			pmass[pid] = sum
		}
	}
	if stopIfNoMass && len(pmass) == 0 && len(kmass) == 0 {
		return nil, nil, chk.Err("no elements with mass were found")
	}
	return
}

// elemArea returns the area of an element referenced by a shell-like or
// line-like property; elements without area are degenerate combinations
func (o *Calc) elemArea(eid int, prop *inp.Property) (a float64, err error) {
	e := o.Elems[eid]
	ea, ok := e.(ele.WithArea)
	if !ok {
		return 0, chk.Err("element %q #%d referenced by property %q #%d has no area", e.Kind(), eid, prop.Kind, prop.Id)
	}
	return ea.Area()
}

// elemLength returns the length of an element referenced by a line-like
// property; elements without length are degenerate combinations
func (o *Calc) elemLength(eid int, prop *inp.Property) (l float64, err error) {
	e := o.Elems[eid]
	el, ok := e.(ele.WithLength)
	if !ok {
		return 0, chk.Err("element %q #%d referenced by property %q #%d has no length", e.Kind(), eid, prop.Kind, prop.Id)
	}
	return el.Length()
}
