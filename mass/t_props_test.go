// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mass

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomass/inp"
)

// readCalc reads a model from the data directory, resolves the nodes and
// allocates the engine
func readCalc(tst *testing.T, fn string) *Calc {
	mdl, err := inp.ReadModel("data", fn)
	if err != nil {
		tst.Fatalf("cannot read model:\n%v", err)
	}
	err = mdl.ResolveNodes()
	if err != nil {
		tst.Fatalf("cannot resolve nodes:\n%v", err)
	}
	c, err := New(mdl)
	if err != nil {
		tst.Fatalf("cannot allocate engine:\n%v", err)
	}
	return c
}

func Test_props01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props01. unit cube about several references")

	c := readCalc(tst, "cube.json")

	// about the global origin: the cube is lumped at its centroid
	m, cg, I, err := c.Properties(nil, nil, Ref{}, "", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("m  = %v\n", m)
	io.Pforan("cg = %v\n", cg)
	io.Pforan("I  = %v\n", I)
	chk.Float64(tst, "mass", 1e-15, m, 2.0)
	chk.Array(tst, "cg", 1e-15, cg, []float64{0.5, 0.5, 0.5})
	chk.Array(tst, "I about origin", 1e-15, I, []float64{1, 1, 1, 0.5, 0.5, 0.5})

	// about the cg the lumped tensor vanishes
	_, _, I, err = c.Properties(nil, nil, RefCG(), "", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "I about cg", 1e-15, I, []float64{0, 0, 0, 0, 0, 0})

	// about node #2 at (1,0,0)
	_, _, I, err = c.Properties(nil, nil, RefNode(2), "", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "I about node #2", 1e-15, I, []float64{1, 1, 1, -0.5, -0.5, 0.5})

	// an explicit point at the cg matches the cg reference
	_, _, I, err = c.Properties(nil, nil, RefPoint([]float64{0.5, 0.5, 0.5}), "", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "I about explicit cg", 1e-15, I, []float64{0, 0, 0, 0, 0, 0})

	// bad reference point
	_, _, _, err = c.Properties(nil, nil, RefPoint([]float64{1, 2}), "", 0)
	if err == nil {
		tst.Errorf("reference point with 2 components must fail\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)
}

func Test_props02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props02. plate with attachments, selections and scales")

	c := readCalc(tst, "plate.json")

	// totals about the origin, unscaled
	m, cg, I, err := c.Properties(nil, nil, Ref{}, "", 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("m  = %v\n", m)
	io.Pforan("cg = %v\n", cg)
	io.Pforan("I  = %v\n", I)
	chk.Float64(tst, "mass", 1e-14, m, 6.6)
	chk.Array(tst, "cg", 1e-14, cg, []float64{7.6 / 6.6, 5.0 / 6.6, 0})
	chk.Array(tst, "I", 1e-13, I, []float64{5.7, 15.8, 21.5, 6.0, 0, 0})

	// scale <= 0 falls back to the model wtmass parameter
	m, cg2, I2, err := c.Properties(nil, nil, Ref{}, "", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "mass (wtmass)", 1e-14, m, 3.3)
	chk.Array(tst, "cg (wtmass)", 1e-14, cg2, cg)
	chk.Array(tst, "I (wtmass)", 1e-13, I2, []float64{2.85, 7.9, 10.75, 3.0, 0, 0})

	// positive scale is used verbatim
	m, _, _, err = c.Properties(nil, nil, Ref{}, "", 2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "mass (scale 2)", 1e-14, m, 13.2)

	// elements and masses are additive
	me, _, _, err := c.Properties(nil, []int{}, Ref{}, "", 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	mm, _, _, err := c.Properties([]int{}, nil, Ref{}, "", 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "elements only", 1e-14, me, 4.6)
	chk.Float64(tst, "masses only", 1e-14, mm, 2.0)
	chk.Float64(tst, "additivity", 1e-14, me+mm, 6.6)

	// one element
	m, _, _, err = c.Properties([]int{1}, []int{}, Ref{}, "", 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "quad4 only", 1e-14, m, 2.8)

	// unknown ids
	_, _, _, err = c.Properties([]int{99}, nil, Ref{}, "", 1)
	if err == nil {
		tst.Errorf("selecting unknown element must fail\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)
	_, _, _, err = c.Properties(nil, []int{99}, Ref{}, "", 1)
	if err == nil {
		tst.Errorf("selecting unknown mass must fail\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)
}

func Test_props03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props03. symmetry post-processing")

	c := readCalc(tst, "cube.json")

	// half model mirrored across the y-z plane
	m, cg, I, err := c.Properties(nil, nil, Ref{}, "x", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "mass (sym x)", 1e-15, m, 4.0)
	chk.Array(tst, "cg (sym x)", 1e-15, cg, []float64{0, 0.5, 0.5})
	chk.Array(tst, "I (sym x)", 1e-15, I, []float64{2, 2, 2, 0, 0, 1})

	// one eighth mirrored across all three planes
	m, cg, I, err = c.Properties(nil, nil, Ref{}, "xyz", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "mass (sym xyz)", 1e-15, m, 16.0)
	chk.Array(tst, "cg (sym xyz)", 1e-15, cg, []float64{0, 0, 0})
	chk.Array(tst, "I (sym xyz)", 1e-15, I, []float64{8, 8, 8, 0, 0, 0})

	// "no" leaves everything unchanged
	m, cg, I, err = c.Properties(nil, nil, Ref{}, "no", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "mass (sym no)", 1e-15, m, 2.0)
	chk.Array(tst, "cg (sym no)", 1e-15, cg, []float64{0.5, 0.5, 0.5})
	chk.Array(tst, "I (sym no)", 1e-15, I, []float64{1, 1, 1, 0.5, 0.5, 0.5})

	// invalid specifier
	_, _, _, err = c.Properties(nil, nil, Ref{}, "q", 0)
	if err == nil {
		tst.Errorf("invalid symmetry axis must fail\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)
}

func Test_props04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props04. resolution modes and strict no-mass")

	c := readCalc(tst, "cube.json")

	// without the cache the slow path must give identical results
	mr, cgr, Ir, err := c.Properties(nil, nil, Ref{}, "", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	c.Mdl.UnresolveNodes()
	_, _, _, err = c.Properties(nil, nil, Ref{}, "", 0)
	if err == nil {
		tst.Errorf("fast path with unresolved model must fail\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)
	m, cg, I, err := c.PropertiesNoResolve(nil, nil, Ref{}, "", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "mass (no resolve)", 1e-15, m, mr)
	chk.Array(tst, "cg (no resolve)", 1e-15, cg, cgr)
	chk.Array(tst, "I (no resolve)", 1e-15, I, Ir)

	// springs only: zero mass is an error only in strict mode
	mdl, err := inp.DecodeModel([]byte(`{
		"nodes" : [ { "id":1, "x":[0,0,0] }, { "id":2, "x":[1,0,0] } ],
		"props" : [ { "id":1, "kind":"spring" } ],
		"elems" : [ { "id":1, "kind":"spring2", "pid":1, "verts":[1,2] } ]
	}`))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	cs, err := New(mdl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	m, cg, I, err = cs.PropertiesNoResolve(nil, nil, Ref{}, "", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "mass (springs)", 1e-17, m, 0.0)
	chk.Array(tst, "cg (springs)", 1e-17, cg, []float64{0, 0, 0})
	chk.Array(tst, "I (springs)", 1e-17, I, []float64{0, 0, 0, 0, 0, 0})

	cs.StopIfNoMass = true
	_, _, _, err = cs.PropertiesNoResolve(nil, nil, Ref{}, "", 0)
	if err == nil {
		tst.Errorf("strict mode with zero total mass must fail\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)
}

func Test_props05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props05. two point masses with own inertia")

	mdl, err := inp.DecodeModel([]byte(`{
		"nodes" : [
			{ "id":1, "x":[1,0,0] },
			{ "id":2, "x":[-1,0,0] }
		],
		"pmasses" : [
			{ "id":1, "nid":1, "m":3, "i":[1,1,1,0,0,0] },
			{ "id":2, "nid":2, "m":2 }
		]
	}`))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	err = mdl.ResolveNodes()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	c, err := New(mdl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// about the origin
	m, cg, I, err := c.Properties(nil, nil, Ref{}, "", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("m  = %v\n", m)
	io.Pforan("cg = %v\n", cg)
	io.Pforan("I  = %v\n", I)
	chk.Float64(tst, "mass", 1e-15, m, 5.0)
	chk.Array(tst, "cg", 1e-15, cg, []float64{0.2, 0, 0})
	chk.Array(tst, "I about origin", 1e-15, I, []float64{1, 6, 6, 0, 0, 0})

	// about the cg: the own inertia survives, the transport term shrinks
	_, _, I, err = c.Properties(nil, nil, RefCG(), "", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "I about cg", 1e-14, I, []float64{1, 5.8, 5.8, 0, 0, 0})
}
