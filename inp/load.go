// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/chk"

// Load holds one load card. Sid groups cards into load cases. Kind selects
// the card and which fields are meaningful:
//  "force"  : concentrated force F・N at node Nid; N expressed in frame Cs
//  "force2" : force of magnitude F at Nid, direction from node G1 to node G2
//  "moment" : concentrated moment F・N at node Nid; N expressed in frame Cs
//  "moment2": moment of magnitude F, direction from node G1 to node G2
//  "pload"  : pressure P over the patch defined by 3 or 4 nodes in Verts
//  "pload2" : pressure P along the normal of the shell elements in Eids
//  "grav"   : gravity field (skipped by the force summation)
//  "combo"  : combination F・Σ Factors[i]・(case Sids[i])
type Load struct {
	Sid     int       `json:"sid"`
	Kind    string    `json:"kind"`
	Nid     int       `json:"nid"`
	Cs      int       `json:"cs"`
	F       float64   `json:"f"`
	N       []float64 `json:"n"`
	G1      int       `json:"g1"`
	G2      int       `json:"g2"`
	P       float64   `json:"p"`
	Verts   []int     `json:"verts"`
	Eids    []int     `json:"eids"`
	Factors []float64 `json:"factors"`
	Sids    []int     `json:"sids"`
}

// ScaledLoad is one expanded (non-combo) card with its accumulated scale
// factor from the combination chain that reached it
type ScaledLoad struct {
	Factor float64
	Card   *Load
}

// LoadCase expands load case sid into scaled elementary cards, resolving
// combination cards recursively
func (o *Model) LoadCase(sid int) (ls []*ScaledLoad, err error) {
	return o.loadCase(sid, 1.0, make(map[int]bool))
}

func (o *Model) loadCase(sid int, factor float64, visiting map[int]bool) (ls []*ScaledLoad, err error) {
	if visiting[sid] {
		return nil, chk.Err("load case #%d is defined in terms of itself", sid)
	}
	visiting[sid] = true
	defer delete(visiting, sid)
	found := false
	for _, card := range o.Loads {
		if card.Sid != sid {
			continue
		}
		found = true
		if card.Kind == "combo" {
			if len(card.Factors) != len(card.Sids) {
				return nil, chk.Err("combination card in load case #%d must have as many factors as sub-cases: %d != %d", sid, len(card.Factors), len(card.Sids))
			}
			for i, sub := range card.Sids {
				sls, err := o.loadCase(sub, factor*card.F*card.Factors[i], visiting)
				if err != nil {
					return nil, err
				}
				ls = append(ls, sls...)
			}
			continue
		}
		ls = append(ls, &ScaledLoad{factor, card})
	}
	if !found {
		return nil, chk.Err("cannot find load case #%d in model", sid)
	}
	return
}
