// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.psi) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gopsi/mdl/pipe"
	"github.com/cpmech/gopsi/mdl/seabed"
	"github.com/cpmech/gopsi/mdl/soil"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global analysis data
type Data struct {
	Desc   string `json:"desc"`   // description of analysis
	Mode   string `json:"mode"`   // analysis mode: "surfacelaid" or "trenched"
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/gopsi/mycase01
}

// FricData holds the skin friction coefficients of one (surface, estimate)
// pair, as read from the input file
type FricData struct {
	Surface  string  `json:"surface"`  // surface kind key; e.g. "concrete"
	Estimate string  `json:"estimate"` // estimate kind key; e.g. "p50"
	SSR      float64 `json:"ssr"`      // skin-to-strength ratio
	Prem     float64 `json:"prem"`     // exponent applied to OCR
}

// BackfillData holds the backfill parameters of one estimate, as read from
// the input file
type BackfillData struct {
	Estimate string     `json:"estimate"` // estimate kind key; e.g. "p50"
	Prms     dbf.Params `json:"prms"`     // backfill parameters
}

// Analysis holds all analysis data
type Analysis struct {

	// input
	Data       Data            `json:"data"`     // global analysis data
	PipePrms   dbf.Params      `json:"pipe"`     // pipe parameters
	SoilPrms   dbf.Params      `json:"soil"`     // native soil parameters; surface-laid mode
	LayPrms    dbf.Params      `json:"laying"`   // embedment and interaction parameters; surface-laid mode
	Friction   []*FricData     `json:"friction"` // skin friction overrides; surface-laid mode
	TrenchPrms dbf.Params      `json:"trench"`   // trench parameters; trenched mode
	Backfill   []*BackfillData `json:"backfill"` // backfill overrides per estimate; trenched mode

	// derived
	Key    string           // analysis key; e.g. mycase01.psi => mycase01
	DirOut string           // directory to save results
	Pip    pipe.Pipe        // pipe data
	Sol    soil.Props       // native soil properties; surface-laid mode
	Fric   seabed.Table     // skin friction coefficients; surface-laid mode
	Bfl    []*soil.Backfill // backfill properties per estimate; trenched mode
}

// ReadPsi reads all analysis data from a .psi JSON file. Missing parameter
// blocks are filled with the example values of the respective models
//  Note: this function panics on errors
func ReadPsi(filename string, erasePrev, createDirOut bool) *Analysis {

	// new analysis
	var o Analysis

	// read file
	b, err := io.ReadFile(filename)
	if err != nil {
		chk.Panic("ReadPsi: cannot read analysis file %q", filename)
	}

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadPsi: cannot unmarshal analysis file %q", filename)
	}

	// filename key
	fn := filepath.Base(filename)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gopsi/" + o.Key
	}

	// analysis mode
	switch o.Data.Mode {
	case "":
		o.Data.Mode = "surfacelaid"
	case "surfacelaid", "trenched":
	default:
		chk.Panic("ReadPsi: analysis mode %q is not available", o.Data.Mode)
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// pipe data
	if len(o.PipePrms) == 0 {
		o.PipePrms = pipe.GetPrms(true)
	}
	err = o.Pip.Init(o.PipePrms)
	if err != nil {
		chk.Panic("ReadPsi: cannot initialise pipe data:\n%v", err)
	}

	// surface-laid data
	if o.Data.Mode == "surfacelaid" {
		if len(o.SoilPrms) == 0 {
			o.SoilPrms = soil.GetPrms(true)
		}
		err = o.Sol.Init(o.SoilPrms)
		if err != nil {
			chk.Panic("ReadPsi: cannot initialise soil properties:\n%v", err)
		}
		o.Fric = seabed.GetFricTable(true)
		for _, fd := range o.Friction {
			sfc, err := pipe.SurfaceByKey(fd.Surface)
			if err != nil {
				chk.Panic("ReadPsi: cannot set friction coefficients:\n%v", err)
			}
			est, err := soil.EstimateByKey(fd.Estimate)
			if err != nil {
				chk.Panic("ReadPsi: cannot set friction coefficients:\n%v", err)
			}
			o.Fric[sfc][est] = seabed.Friction{SSR: fd.SSR, Prem: fd.Prem}
		}
		return &o
	}

	// trenched data
	o.Bfl = make([]*soil.Backfill, soil.NumEstimates)
	for _, est := range soil.Estimates {
		prms := soil.GetBackfillPrms(est)
		for _, bd := range o.Backfill {
			key, err := soil.EstimateByKey(bd.Estimate)
			if err != nil {
				chk.Panic("ReadPsi: cannot set backfill properties:\n%v", err)
			}
			if key == est {
				prms = bd.Prms
			}
		}
		o.Bfl[est] = new(soil.Backfill)
		err = o.Bfl[est].Init(prms)
		if err != nil {
			chk.Panic("ReadPsi: cannot initialise %v backfill properties:\n%v", est, err)
		}
	}
	return &o
}

// GetInfo returns formatted analysis data
func (o *Analysis) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
