// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loads

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomass/inp"
)

var origin = []float64{0, 0, 0}

func readModel(tst *testing.T) *inp.Model {
	mdl, err := inp.ReadModel("data", "loads.json")
	if err != nil {
		tst.Fatalf("cannot read model:\n%v", err)
	}
	err = mdl.ResolveNodes()
	if err != nil {
		tst.Fatalf("cannot resolve nodes:\n%v", err)
	}
	return mdl
}

func Test_loads01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loads01. resultants of the elementary cards")

	mdl := readModel(tst)

	for _, test := range []struct {
		comment string
		sid     int
		F, M    []float64
	}{
		{"force and moment", 1, []float64{10, 0, 0}, []float64{0, 0, 5}},
		{"force along two nodes", 2, []float64{0, 0, 4}, []float64{0, -4, 0}},
		{"pressure patch", 3, []float64{0, 0, 2}, []float64{1, -1, 0}},
		{"combination", 4, []float64{60, 0, 0}, []float64{0, 0, 30}},
		{"pressure on element", 6, []float64{0, 0, 3}, []float64{1.5, -1.5, 0}},
		{"moment along two nodes", 7, []float64{0, 0, 0}, []float64{6, 0, 0}},
		{"force in local system", 8, []float64{2, 0, 0}, []float64{0, 0, 0}},
	} {
		F, M, err := SumForcesMoments(mdl, origin, test.sid, false)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		io.Pforan("case #%d: F = %v, M = %v\n", test.sid, F, M)
		chk.Array(tst, test.comment+": F", 1e-14, F, test.F)
		chk.Array(tst, test.comment+": M", 1e-14, M, test.M)
	}

	// the reference point shifts the moment
	F, M, err := SumForcesMoments(mdl, []float64{0, 0, 1}, 1, false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "shifted: F", 1e-14, F, []float64{10, 0, 0})
	chk.Array(tst, "shifted: M", 1e-14, M, []float64{0, -10, 5})
}

func Test_loads02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loads02. gravity cards")

	mdl := readModel(tst)

	// gravity is skipped when excluded; the nodal force remains
	F, M, err := SumForcesMoments(mdl, origin, 5, false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "F without gravity", 1e-14, F, []float64{0, 0, 1})
	chk.Array(tst, "M without gravity", 1e-14, M, []float64{0, 0, 0})

	// including gravity is not supported
	_, _, err = SumForcesMoments(mdl, origin, 5, true)
	if err == nil {
		tst.Errorf("summation including gravity must fail\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)
}

func Test_loads03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loads03. selections")

	mdl := readModel(tst)

	// only the force at node #1 survives the nodal filter
	F, M, err := SumForcesMomentsSelected(mdl, origin, 1, nil, []int{1}, false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "filtered: F", 1e-14, F, []float64{10, 0, 0})
	chk.Array(tst, "filtered: M", 1e-14, M, []float64{0, 0, 0})

	// empty selections admit nothing
	F, M, err = SumForcesMomentsSelected(mdl, origin, 1, nil, []int{}, false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "empty nodes: F", 1e-14, F, []float64{0, 0, 0})
	chk.Array(tst, "empty nodes: M", 1e-14, M, []float64{0, 0, 0})
	F, M, err = SumForcesMomentsSelected(mdl, origin, 6, []int{}, nil, false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "empty elements: F", 1e-14, F, []float64{0, 0, 0})
	chk.Array(tst, "empty elements: M", 1e-14, M, []float64{0, 0, 0})
}

func Test_loads04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loads04. invalid cases")

	mdl := readModel(tst)

	// unknown case
	_, _, err := SumForcesMoments(mdl, origin, 99, false)
	if err == nil {
		tst.Errorf("summing unknown load case must fail\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)

	// bad reference point
	_, _, err = SumForcesMoments(mdl, []float64{0, 0}, 1, false)
	if err == nil {
		tst.Errorf("summation about 2-component point must fail\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)

	// degenerate and unsupported cards
	bad, err := inp.DecodeModel([]byte(`{
		"nodes" : [
			{ "id":1, "x":[0,0,0] },
			{ "id":2, "x":[1,0,0] }
		],
		"loads" : [
			{ "sid":1, "kind":"force2", "nid":1, "f":1, "g1":1, "g2":1 },
			{ "sid":2, "kind":"ice",    "nid":1, "f":1 },
			{ "sid":3, "kind":"pload",  "p":1, "verts":[1,2] }
		]
	}`))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	for sid, comment := range map[int]string{
		1: "coincident direction nodes",
		2: "unsupported card kind",
		3: "patch with 2 vertices",
	} {
		_, _, err = SumForcesMoments(bad, origin, sid, false)
		if err == nil {
			tst.Errorf("summing case with %s must fail\n", comment)
			return
		}
		io.Pfgrey("%s: %v\n", comment, err)
	}
}
