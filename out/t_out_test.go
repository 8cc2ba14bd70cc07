// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cpmech/gopsi/mdl/soil"
	"github.com/cpmech/gopsi/psi"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. surface-laid report and saved records")

	// run analysis
	main := psi.NewMain("data/surfacelaid01.psi", true, chk.Verbose)
	err := main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// report
	rep := Report(main)
	if chk.Verbose {
		io.Pf("%s\n", rep)
	}
	for _, txt := range []string{
		"STABILITY OK",
		"Axial Brk (kN/m)", "Xbrk (mm)", "Lat Res (kN/m)", "Yres (mm)",
		"Concrete", "PET",
	} {
		if !strings.Contains(rep, txt) {
			tst.Errorf("report must contain %q\n", txt)
			return
		}
	}

	// save and read back results record
	err = Save(main)
	if err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}
	b, err := io.ReadFile("/tmp/gopsi/out/surfacelaid01.json")
	if err != nil {
		tst.Errorf("cannot read results record:\n%v", err)
		return
	}
	var res Results
	err = json.Unmarshal(b, &res)
	if err != nil {
		tst.Errorf("cannot unmarshal results record:\n%v", err)
		return
	}
	if res.Key != "surfacelaid01" || res.Mode != "surfacelaid" {
		tst.Errorf("results record header is incorrect: %q %q\n", res.Key, res.Mode)
		return
	}
	if res.Metrics == nil || len(res.Profiles) != 6 {
		tst.Errorf("results record must carry the metrics and 6 profiles\n")
		return
	}
	chk.Float64(tst, "V", 1e-14, res.Metrics.V, 1.6609322165216571)
	chk.Float64(tst, "Qv", 1e-13, res.Metrics.Qv, 6.162876596167553)
	chk.Float64(tst, "pet P50 AxlBrk", 1e-14, res.Profiles[4].AxlBrk.F, 0.2754700196810967)
}

func Test_report02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report02. trenched report and saved records")

	// run analysis
	main := psi.NewMain("data/trenched01.psi", true, chk.Verbose)
	err := main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// report
	rep := Report(main)
	if chk.Verbose {
		io.Pf("%s\n", rep)
	}
	for _, txt := range []string{
		"effective vertical force (V)",
		"P5 (Low)", "P50 (Best)", "P95 (High)",
		"Axial Resistance (kN/m)", "Uplift Resistance (kN/m)",
	} {
		if !strings.Contains(rep, txt) {
			tst.Errorf("report must contain %q\n", txt)
			return
		}
	}

	// save and read back results record
	err = Save(main)
	if err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}
	b, err := io.ReadFile("/tmp/gopsi/out/trenched01.json")
	if err != nil {
		tst.Errorf("cannot read results record:\n%v", err)
		return
	}
	var res Results
	err = json.Unmarshal(b, &res)
	if err != nil {
		tst.Errorf("cannot unmarshal results record:\n%v", err)
		return
	}
	if res.Metrics != nil || len(res.Profiles) != 0 {
		tst.Errorf("surface-laid records must be omitted in trenched mode\n")
		return
	}
	chk.Float64(tst, "V", 1e-14, res.V, 2.4269486545383345)
	chk.Float64(tst, "P5 Fa", 1e-14, res.Resist[soil.P5].Fa, 1.2566370614359172)
	chk.Float64(tst, "P95 Fu", 1e-13, res.Resist[soil.P95].Fu, 15.316486768079223)
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. mobilisation curves")

	// run analysis
	main := psi.NewMain("data/surfacelaid01.psi", true, chk.Verbose)
	err := main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// plot
	if chk.Verbose {
		PlotAll(main)
	}
}
