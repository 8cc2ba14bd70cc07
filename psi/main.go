// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package psi implements the pipe-soil interaction analysis runner
package psi

import (
	"math"
	"time"

	"github.com/cpmech/gopsi/inp"
	"github.com/cpmech/gopsi/mdl/seabed"
	"github.com/cpmech/gopsi/mdl/trench"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for one pipe-soil interaction analysis
type Main struct {
	Ana     *inp.Analysis       // analysis data
	ShowMsg bool                // show messages
	Sbd     *seabed.Model       // seabed model; surface-laid mode
	Trn     *trench.Model       // trench model; trenched mode
	Met     seabed.Metrics      // summary metrics; surface-laid mode
	Prf     []seabed.Profile    // resistance profiles; surface-laid mode
	Res     []trench.Resistance // axial and uplift resistances; trenched mode
}

// NewMain returns a new Main structure
//  Input:
//   filename  -- analysis (.psi) filename including full path
//   erasePrev -- erase previous results files
//   verbose   -- show messages
func NewMain(filename string, erasePrev, verbose bool) (o *Main) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Ana = inp.ReadPsi(filename, erasePrev, true)
	if o.Ana == nil {
		chk.Panic("cannot read analysis input data")
	}

	// message
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
		io.Pf("> Analysis (.psi) file read\n")
	}

	// allocate model
	switch o.Ana.Data.Mode {
	case "surfacelaid":
		o.Sbd = new(seabed.Model)
		err := o.Sbd.Init(o.Ana.LayPrms, &o.Ana.Pip, &o.Ana.Sol, o.Ana.Fric)
		if err != nil {
			chk.Panic("cannot initialise seabed model:\n%v", err)
		}
	case "trenched":
		o.Trn = new(trench.Model)
		err := o.Trn.Init(o.Ana.TrenchPrms, &o.Ana.Pip, o.Ana.Bfl)
		if err != nil {
			chk.Panic("cannot initialise trench model:\n%v", err)
		}
	}
	return
}

// Run computes all resistances of the analysis
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// surface-laid pipe
	if o.Sbd != nil {
		if o.ShowMsg {
			io.Pf("> Computing embedment and vertical capacity\n")
		}
		o.Met = o.Sbd.Metrics()
		if o.ShowMsg {
			io.Pf("> Computing resistance profiles\n")
		}
		o.Prf = o.Sbd.Profiles()
	}

	// trenched and buried pipe
	if o.Trn != nil {
		if o.ShowMsg {
			io.Pf("> Computing axial and uplift resistances\n")
		}
		o.Res = o.Trn.Resistances()
	}

	// check results
	err = o.checkFinite()
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints the final message with the analysis status and cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	err = prevErr
	return
}

// checkFinite returns an error if any computed quantity is NaN or Inf
func (o *Main) checkFinite() (err error) {
	var vals []float64
	if o.Sbd != nil {
		vals = append(vals, o.Met.Wp, o.Met.Wpf, o.Met.V, o.Met.Abm, o.Met.Qv, o.Met.Zeta, o.Met.FlRem)
		for _, p := range o.Prf {
			vals = append(vals, p.AxlBrk.F, p.AxlBrk.D, p.AxlRes.F, p.AxlRes.D)
			vals = append(vals, p.LatBrk.F, p.LatBrk.D, p.LatRes.F, p.LatRes.D)
		}
	}
	if o.Trn != nil {
		vals = append(vals, o.Trn.V)
		for _, r := range o.Res {
			vals = append(vals, r.FaDeep, r.FaShallow, r.Fa, r.FuLocal, r.FuGlobal, r.Fu)
		}
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("analysis produced NaN or Inf results")
		}
	}
	return
}
