// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the model database read from a (.json) input file:
// nodes, coordinate systems, properties, elements, concentrated masses,
// load cards and global parameters. The data is read-only for the
// aggregation engines; only the node-position cache is derived here.
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Node holds one mesh vertex. Coordinates are given in the frame identified
// by Cs and are resolved to the global frame on demand or via ResolveNodes.
type Node struct {

	// input
	Id int       `json:"id"`
	Cs int       `json:"cs"` // defining coordinate system; 0 means global
	X  []float64 `json:"x"`  // coordinates in Cs

	// derived
	xyz []float64 // cached global position; set by ResolveNodes
}

// Cell holds the raw data of one element: its kind tag, the property it
// references and its vertices. Behaviour (area, volume, mass formulas) is
// implemented by package ele.
type Cell struct {
	Id    int    `json:"id"`
	Kind  string `json:"kind"`
	Pid   int    `json:"pid"`
	Verts []int  `json:"verts"`
}

// PMass holds one concentrated mass attached to a node, with an optional
// offset (expressed in frame Cs) and an optional rigid-body inertia
// contribution I = {Ixx, Iyy, Izz, Ixy, Ixz, Iyz} about its own centre.
type PMass struct {
	Id  int       `json:"id"`
	Nid int       `json:"nid"`
	Cs  int       `json:"cs"`
	M   float64   `json:"m"`
	X   []float64 `json:"x"` // offset from node, in Cs; may be empty
	I   []float64 `json:"i"` // own inertia six-pack; may be empty
}

// SMass holds one scalar mass lumped directly at a node
type SMass struct {
	Id  int     `json:"id"`
	Nid int     `json:"nid"`
	M   float64 `json:"m"`
}

// Model is the database consumed by the aggregation engines
type Model struct {

	// input
	Desc     string             `json:"desc"`
	Params   map[string]float64 `json:"params"` // global parameters; e.g. "wtmass"
	Csystems []*Csys            `json:"csystems"`
	Nodes    []*Node            `json:"nodes"`
	Props    []*Property        `json:"props"`
	Cells    []*Cell            `json:"elems"`
	Pmasses  []*PMass           `json:"pmasses"`
	Smasses  []*SMass           `json:"smasses"`
	Loads    []*Load            `json:"loads"`

	// derived
	Nid2node map[int]*Node
	Cid2csys map[int]*Csys
	Pid2prop map[int]*Property
	Eid2cell map[int]*Cell
	Resolved bool // node-position cache is valid
}

// ReadModel reads a model from a JSON file
func ReadModel(dir, fn string) (mdl *Model, err error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	return DecodeModel(b)
}

// DecodeModel decodes a model from JSON data and initialises the derived
// maps. Node positions are not resolved; see ResolveNodes.
func DecodeModel(b []byte) (mdl *Model, err error) {
	mdl = new(Model)
	err = json.Unmarshal(b, mdl)
	if err != nil {
		return nil, err
	}
	err = mdl.init()
	if err != nil {
		return nil, err
	}
	return
}

// init builds id maps and validates references
func (o *Model) init() (err error) {

	// coordinate systems
	o.Cid2csys = make(map[int]*Csys)
	for _, cs := range o.Csystems {
		if cs.Id < 1 {
			return chk.Err("coordinate system ids must be greater than zero (0 is the global frame); got #%d", cs.Id)
		}
		if _, ok := o.Cid2csys[cs.Id]; ok {
			return chk.Err("duplicate coordinate system #%d", cs.Id)
		}
		o.Cid2csys[cs.Id] = cs
	}
	for _, cs := range o.Csystems {
		err = cs.Build(o)
		if err != nil {
			return
		}
	}

	// nodes
	o.Nid2node = make(map[int]*Node)
	for _, nd := range o.Nodes {
		if _, ok := o.Nid2node[nd.Id]; ok {
			return chk.Err("duplicate node #%d", nd.Id)
		}
		if len(nd.X) != 3 {
			return chk.Err("node #%d must have 3 coordinates; got %d", nd.Id, len(nd.X))
		}
		if _, ok := o.Cid2csys[nd.Cs]; !ok && nd.Cs != 0 {
			return chk.Err("node #%d references unknown coordinate system #%d", nd.Id, nd.Cs)
		}
		o.Nid2node[nd.Id] = nd
	}

	// properties
	o.Pid2prop = make(map[int]*Property)
	for _, prp := range o.Props {
		if _, ok := o.Pid2prop[prp.Id]; ok {
			return chk.Err("duplicate property #%d", prp.Id)
		}
		o.Pid2prop[prp.Id] = prp
	}

	// cells
	o.Eid2cell = make(map[int]*Cell)
	for _, cell := range o.Cells {
		if _, ok := o.Eid2cell[cell.Id]; ok {
			return chk.Err("duplicate element #%d", cell.Id)
		}
		if _, ok := o.Pid2prop[cell.Pid]; !ok {
			return chk.Err("element #%d references unknown property #%d", cell.Id, cell.Pid)
		}
		for _, nid := range cell.Verts {
			if _, ok := o.Nid2node[nid]; !ok {
				return chk.Err("element #%d references unknown node #%d", cell.Id, nid)
			}
		}
		o.Eid2cell[cell.Id] = cell
	}

	// masses: concentrated and scalar share one id space
	mids := make(map[int]bool)
	for _, pm := range o.Pmasses {
		if mids[pm.Id] {
			return chk.Err("duplicate mass #%d", pm.Id)
		}
		mids[pm.Id] = true
		if _, ok := o.Nid2node[pm.Nid]; !ok {
			return chk.Err("mass #%d references unknown node #%d", pm.Id, pm.Nid)
		}
		if _, ok := o.Cid2csys[pm.Cs]; !ok && pm.Cs != 0 {
			return chk.Err("mass #%d references unknown coordinate system #%d", pm.Id, pm.Cs)
		}
		if len(pm.X) != 0 && len(pm.X) != 3 {
			return chk.Err("mass #%d offset must have 3 components; got %d", pm.Id, len(pm.X))
		}
		if len(pm.I) != 0 && len(pm.I) != 6 {
			return chk.Err("mass #%d inertia must have 6 components {Ixx,Iyy,Izz,Ixy,Ixz,Iyz}; got %d", pm.Id, len(pm.I))
		}
	}
	for _, sm := range o.Smasses {
		if mids[sm.Id] {
			return chk.Err("duplicate mass #%d", sm.Id)
		}
		mids[sm.Id] = true
		if _, ok := o.Nid2node[sm.Nid]; !ok {
			return chk.Err("mass #%d references unknown node #%d", sm.Id, sm.Nid)
		}
	}
	return
}

// PointToGlobal converts a point expressed in coordinate system cid to the
// global frame. cid = 0 returns a copy of the point.
func (o *Model) PointToGlobal(cid int, x []float64) (g []float64, err error) {
	if cid == 0 {
		g = make([]float64, 3)
		copy(g, x)
		return
	}
	cs, ok := o.Cid2csys[cid]
	if !ok {
		err = chk.Err("cannot find coordinate system #%d in model", cid)
		return
	}
	err = cs.Build(o)
	if err != nil {
		return
	}
	return cs.PointToGlobal(x), nil
}

// VecToGlobal rotates a vector expressed in coordinate system cid to the
// global frame. cid = 0 returns a copy.
func (o *Model) VecToGlobal(cid int, v []float64) (g []float64, err error) {
	if cid == 0 {
		g = make([]float64, 3)
		copy(g, v)
		return
	}
	cs, ok := o.Cid2csys[cid]
	if !ok {
		err = chk.Err("cannot find coordinate system #%d in model", cid)
		return
	}
	err = cs.Build(o)
	if err != nil {
		return
	}
	return cs.VecToGlobal(v)
}

// ResolveNodes computes and caches the global position of all nodes.
// Afterwards NodePosition returns cached values until UnresolveNodes is
// called or node data is edited.
func (o *Model) ResolveNodes() (err error) {
	for _, nd := range o.Nodes {
		nd.xyz, err = o.PointToGlobal(nd.Cs, nd.X)
		if err != nil {
			return chk.Err("cannot resolve node #%d: %v", nd.Id, err)
		}
	}
	o.Resolved = true
	return
}

// UnresolveNodes discards the node-position cache
func (o *Model) UnresolveNodes() {
	for _, nd := range o.Nodes {
		nd.xyz = nil
	}
	o.Resolved = false
}

// NodePosition returns the global position of a node. The cache is used if
// the model is resolved; otherwise the coordinate transform runs per call.
func (o *Model) NodePosition(nid int) (x []float64, err error) {
	nd, ok := o.Nid2node[nid]
	if !ok {
		err = chk.Err("cannot find node #%d in model", nid)
		return
	}
	if o.Resolved {
		return nd.xyz, nil
	}
	return o.PointToGlobal(nd.Cs, nd.X)
}

// WeightScale returns the global mass-scale parameter, or 1.0 if absent
func (o *Model) WeightScale() float64 {
	if s, ok := o.Params["wtmass"]; ok {
		return s
	}
	return 1.0
}

// ElemIds returns all element ids, sorted
func (o *Model) ElemIds() (eids []int) {
	for eid := range o.Eid2cell {
		eids = append(eids, eid)
	}
	sort.Ints(eids)
	return
}

// PropIds returns all property ids, sorted
func (o *Model) PropIds() (pids []int) {
	for pid := range o.Pid2prop {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	return
}

// MassIds returns all mass ids (concentrated and scalar), sorted
func (o *Model) MassIds() (mids []int) {
	for _, pm := range o.Pmasses {
		mids = append(mids, pm.Id)
	}
	for _, sm := range o.Smasses {
		mids = append(mids, sm.Id)
	}
	sort.Ints(mids)
	return
}
