// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out writes mass-properties reports to spreadsheet and PDF files
package out

import (
	"sort"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomass/mass"
)

// ReportXLSX writes the whole-model mass properties and the per-property
// area/volume/mass breakdowns into a spreadsheet
func ReportXLSX(c *mass.Calc, path string) (err error) {

	// compute
	m, cg, I, err := c.PropertiesNoResolve(nil, nil, mass.Ref{}, "", 0)
	if err != nil {
		return
	}
	area, err := c.AreaBreakdown(nil, true)
	if err != nil {
		return
	}
	vol, err := c.VolumeBreakdown(nil)
	if err != nil {
		return
	}
	pmass, kmass, err := c.Breakdown(nil, false)
	if err != nil {
		return
	}

	// write
	f := excelize.NewFile()
	defer f.Close()
	set := func(sheet, cell string, v interface{}) {
		if err == nil {
			err = f.SetCellValue(sheet, cell, v)
		}
	}
	const totals = "Sheet1"
	set(totals, "A1", "total mass")
	set(totals, "B1", m)
	for i, name := range []string{"cgx", "cgy", "cgz"} {
		set(totals, io.Sf("A%d", 2+i), name)
		set(totals, io.Sf("B%d", 2+i), cg[i])
	}
	for i, name := range []string{"Ixx", "Iyy", "Izz", "Ixy", "Ixz", "Iyz"} {
		set(totals, io.Sf("A%d", 5+i), name)
		set(totals, io.Sf("B%d", 5+i), I[i])
	}
	if err != nil {
		return
	}

	const breakdown = "breakdown"
	if _, err = f.NewSheet(breakdown); err != nil {
		return
	}
	for j, name := range []string{"property", "area", "volume", "mass"} {
		set(breakdown, io.Sf("%c1", 'A'+j), name)
	}
	row := 2
	for _, pid := range c.Mdl.PropIds() {
		_, hasA := area[pid]
		_, hasV := vol[pid]
		_, hasM := pmass[pid]
		if !hasA && !hasV && !hasM {
			continue
		}
		set(breakdown, io.Sf("A%d", row), pid)
		set(breakdown, io.Sf("B%d", row), area[pid])
		set(breakdown, io.Sf("C%d", row), vol[pid])
		set(breakdown, io.Sf("D%d", row), pmass[pid])
		row++
	}
	kinds := make([]string, 0, len(kmass))
	for kind := range kmass {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		set(breakdown, io.Sf("A%d", row), kind)
		set(breakdown, io.Sf("D%d", row), kmass[kind])
		row++
	}
	if err != nil {
		return
	}
	return f.SaveAs(path)
}

// ReportPDF writes a one-page mass-properties summary
func ReportPDF(c *mass.Calc, title, path string) (err error) {
	m, cg, I, err := c.PropertiesNoResolve(nil, nil, mass.Ref{}, "", 0)
	if err != nil {
		return
	}
	vals, _, err := mass.Principal(I)
	if err != nil {
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	line := func(txt string) {
		pdf.Cell(0, 6, txt)
		pdf.Ln(6)
	}
	line(io.Sf("Model: %s", c.Mdl.Desc))
	line(io.Sf("Total mass: %g", m))
	line(io.Sf("Centre of gravity: (%g, %g, %g)", cg[0], cg[1], cg[2]))
	line(io.Sf("Inertia: Ixx=%g Iyy=%g Izz=%g", I[0], I[1], I[2]))
	line(io.Sf("         Ixy=%g Ixz=%g Iyz=%g", I[3], I[4], I[5]))
	line(io.Sf("Principal moments: (%g, %g, %g)", vals[0], vals[1], vals[2]))
	err = pdf.OutputFileAndClose(path)
	if err != nil {
		return chk.Err("cannot write PDF report to %s: %v", path, err)
	}
	return
}
