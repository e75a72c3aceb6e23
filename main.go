// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"gopkg.in/gcfg.v1"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomass/inp"
	"github.com/cpmech/gomass/mass"
	"github.com/cpmech/gomass/out"
)

// Config holds the optional INI configuration file
type Config struct {
	Mass struct {
		Sym   string    // symmetry axis; e.g. "xz"
		Scale float64   // mass scale; 0 means use the model "wtmass" parameter
		Ref   []float64 // reference point; empty means the global origin
	}
	Report struct {
		Title string
		Xlsx  string // spreadsheet output path; empty disables
		Pdf   string // PDF output path; empty disables
	}
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	cfgpath := io.ArgToString(1, "")
	verbose := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGomass -- Mass Properties of Finite Element Models\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"model path", "fnamepath", fnamepath,
			"configuration file", "cfgpath", cfgpath,
			"show messages", "verbose", verbose,
		))
	}

	// configuration
	var cfg Config
	if cfgpath != "" {
		if err := gcfg.ReadFileInto(&cfg, cfgpath); err != nil {
			chk.Panic("cannot read configuration file: %v", err)
		}
	}
	if cfg.Report.Title == "" {
		cfg.Report.Title = "Mass Properties Report"
	}

	// read and resolve model
	dir, fn := filepath.Split(fnamepath)
	mdl, err := inp.ReadModel(dir, fn)
	if err != nil {
		chk.Panic("cannot read model: %v", err)
	}
	if err = mdl.ResolveNodes(); err != nil {
		chk.Panic("cannot resolve nodes: %v", err)
	}
	calc, err := mass.New(mdl)
	if err != nil {
		chk.Panic("cannot initialise engine: %v", err)
	}

	// compute mass properties
	ref := mass.Ref{}
	if len(cfg.Mass.Ref) == 3 {
		ref = mass.RefPoint(cfg.Mass.Ref)
	}
	m, cg, I, err := calc.Properties(nil, nil, ref, cfg.Mass.Sym, cfg.Mass.Scale)
	if err != nil {
		chk.Panic("cannot compute mass properties: %v", err)
	}

	// results
	io.Pf("%v\n", io.ArgsTable("MASS PROPERTIES",
		"total mass", "mass", m,
		"centre of gravity x", "cgx", cg[0],
		"centre of gravity y", "cgy", cg[1],
		"centre of gravity z", "cgz", cg[2],
		"inertia Ixx", "Ixx", I[0],
		"inertia Iyy", "Iyy", I[1],
		"inertia Izz", "Izz", I[2],
		"inertia Ixy", "Ixy", I[3],
		"inertia Ixz", "Ixz", I[4],
		"inertia Iyz", "Iyz", I[5],
	))

	// reports
	if cfg.Report.Xlsx != "" {
		if err = out.ReportXLSX(calc, cfg.Report.Xlsx); err != nil {
			chk.Panic("cannot write spreadsheet report: %v", err)
		}
		io.Pf("file <%s> written\n", cfg.Report.Xlsx)
	}
	if cfg.Report.Pdf != "" {
		if err = out.ReportPDF(calc, cfg.Report.Title, cfg.Report.Pdf); err != nil {
			chk.Panic("cannot write PDF report: %v", err)
		}
		io.Pf("file <%s> written\n", cfg.Report.Pdf)
	}
}
