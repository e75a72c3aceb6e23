// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomass/inp"
)

// AllocatorType defines a function that allocates an element
type AllocatorType func(mdl *inp.Model, cell *inp.Cell, prop *inp.Property) Element

// entry holds one registered element kind
type entry struct {
	nverts int
	fcn    AllocatorType
}

// allocators holds all element allocators, indexed by kind tag
var allocators = make(map[string]entry)

// SetAllocator registers a new element kind with its vertex count.
// Element files call this from init.
func SetAllocator(kind string, nverts int, fcn AllocatorType) {
	if _, ok := allocators[kind]; ok {
		chk.Panic("cannot set allocator for %q because element kind exists already", kind)
	}
	allocators[kind] = entry{nverts, fcn}
}

// New returns a new element from the factory
func New(mdl *inp.Model, cell *inp.Cell) (e Element, err error) {
	ent, ok := allocators[cell.Kind]
	if !ok {
		err = chk.Err("cannot get allocator for element {kind=%q, id=%d}", cell.Kind, cell.Id)
		return
	}
	if len(cell.Verts) != ent.nverts {
		err = chk.Err("element {kind=%q, id=%d} must have %d vertices; got %d", cell.Kind, cell.Id, ent.nverts, len(cell.Verts))
		return
	}
	prop, ok := mdl.Pid2prop[cell.Pid]
	if !ok {
		err = chk.Err("element {kind=%q, id=%d} references unknown property #%d", cell.Kind, cell.Id, cell.Pid)
		return
	}
	e = ent.fcn(mdl, cell, prop)
	if e == nil {
		err = chk.Err("element {kind=%q, id=%d} is not available", cell.Kind, cell.Id)
	}
	return
}
