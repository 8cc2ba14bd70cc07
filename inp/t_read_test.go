// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"testing"

	"github.com/cpmech/gopsi/mdl/pipe"
	"github.com/cpmech/gopsi/mdl/soil"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. surface-laid analysis file")

	ana := ReadPsi("data/surfacelaid01.psi", false, false)
	io.Pforan("key    = %v\n", ana.Key)
	io.Pforan("mode   = %v\n", ana.Data.Mode)
	io.Pforan("dirout = %v\n", ana.DirOut)

	if ana.Key != "surfacelaid01" {
		tst.Errorf("key = %q is incorrect\n", ana.Key)
		return
	}
	if ana.Data.Mode != "surfacelaid" {
		tst.Errorf("mode = %q is incorrect\n", ana.Data.Mode)
		return
	}
	if ana.DirOut != "/tmp/gopsi/surfacelaid01" {
		tst.Errorf("dirout = %q is incorrect\n", ana.DirOut)
		return
	}

	chk.Float64(tst, "Dop", 1e-15, ana.Pip.Dop, 0.3239)
	chk.Float64(tst, "tp", 1e-15, ana.Pip.Tp, 0.0127)
	chk.Float64(tst, "Su", 1e-15, ana.Sol.Su, 5)
	chk.Float64(tst, "GamSub", 1e-15, ana.Sol.GamSub, 5.949999999999999)

	// concrete keeps the example coefficients whereas pet is overridden
	chk.Float64(tst, "concrete P50 SSR", 1e-15, ana.Fric[pipe.Concrete][soil.P50].SSR, 0.35)
	chk.Float64(tst, "pet P5 SSR", 1e-15, ana.Fric[pipe.PET][soil.P5].SSR, 0.20)
	chk.Float64(tst, "pet P50 SSR", 1e-15, ana.Fric[pipe.PET][soil.P50].SSR, 0.30)
	chk.Float64(tst, "pet P95 SSR", 1e-15, ana.Fric[pipe.PET][soil.P95].SSR, 0.40)
	chk.Float64(tst, "pet P50 Prem", 1e-15, ana.Fric[pipe.PET][soil.P50].Prem, 1.0)

	var buf bytes.Buffer
	err := ana.GetInfo(&buf)
	if err != nil {
		tst.Errorf("GetInfo failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("%v\n", buf.String())
	}
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. trenched analysis file")

	ana := ReadPsi("data/trenched01.psi", false, false)
	io.Pforan("key  = %v\n", ana.Key)
	io.Pforan("mode = %v\n", ana.Data.Mode)

	if ana.Key != "trenched01" {
		tst.Errorf("key = %q is incorrect\n", ana.Key)
		return
	}
	if ana.Data.Mode != "trenched" {
		tst.Errorf("mode = %q is incorrect\n", ana.Data.Mode)
		return
	}

	chk.Float64(tst, "Dop", 1e-15, ana.Pip.Dop, 0.40)
	chk.Float64(tst, "tp", 1e-15, ana.Pip.Tp, 0.015)
	if len(ana.Bfl) != int(soil.NumEstimates) {
		tst.Errorf("wrong number of backfill sets: %d\n", len(ana.Bfl))
		return
	}
	chk.Float64(tst, "P5 alpha", 1e-15, ana.Bfl[soil.P5].Alpha, 0.5)
	chk.Float64(tst, "P50 sbnb", 1e-15, ana.Bfl[soil.P50].Sbnb, 3)
	chk.Float64(tst, "P95 gamsub", 1e-15, ana.Bfl[soil.P95].GamSub, 7.949999999999999)

	// trench height is read by the trenched model later
	p := ana.TrenchPrms.Find("h")
	if p == nil {
		tst.Errorf("trench parameters must provide h\n")
		return
	}
	chk.Float64(tst, "h", 1e-15, p.V, 1.0)
}

func Test_read03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read03. defaults fill missing blocks")

	fn := "missing01.psi"
	io.WriteStringToFileD("/tmp/gopsi/inp", fn, "{ \"data\" : { \"desc\" : \"all defaults\" } }")

	ana := ReadPsi("/tmp/gopsi/inp/"+fn, false, false)
	if ana.Data.Mode != "surfacelaid" {
		tst.Errorf("default mode = %q is incorrect\n", ana.Data.Mode)
		return
	}
	chk.Float64(tst, "Dop", 1e-15, ana.Pip.Dop, 0.3239)
	chk.Float64(tst, "Su", 1e-15, ana.Sol.Su, 5)
	chk.Float64(tst, "concrete P95 SSR", 1e-15, ana.Fric[pipe.Concrete][soil.P95].SSR, 0.45)
	if len(ana.LayPrms) != 0 {
		tst.Errorf("laying parameters must be left to the model defaults\n")
		return
	}
}
