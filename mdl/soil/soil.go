// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package soil implements the soil data used by the pipe-soil interaction
// models: native seabed clay properties, trench backfill properties and
// the statistical strength estimates
package soil

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// GamSw is the unit weight of seawater subtracted from bulk unit weights
// to obtain submerged (effective) unit weights [kN/m³]
const GamSw = 10.05

// Props holds the undrained strength and weight properties of the native
// seabed clay
type Props struct {

	// input
	Su      float64 // undrained shear strength at pipe invert [kPa]
	OCR     float64 // overconsolidation ratio
	St      float64 // soil sensitivity (intact over remoulded strength)
	SuPas   float64 // undrained shear strength of the passive berm [kPa]
	GamBulk float64 // bulk unit weight [kN/m³]

	// derived
	GamSub float64 // submerged unit weight [kN/m³]
}

// Init initialises the soil properties. prms must provide "su", "ocr",
// "st", "supas" and "gambulk"
func (o *Props) Init(prms dbf.Params) (err error) {

	// read parameters
	prms.Connect(&o.Su, "su", "soil properties")
	prms.Connect(&o.OCR, "ocr", "soil properties")
	prms.Connect(&o.St, "st", "soil properties")
	prms.Connect(&o.SuPas, "supas", "soil properties")
	prms.Connect(&o.GamBulk, "gambulk", "soil properties")

	// check
	if o.Su <= 0 {
		return chk.Err("soil: undrained shear strength su = %g is invalid; it must be positive", o.Su)
	}
	if o.OCR < 1 {
		return chk.Err("soil: overconsolidation ratio ocr = %g is invalid; it must be greater than or equal to 1", o.OCR)
	}
	if o.St <= 0 {
		return chk.Err("soil: sensitivity st = %g is invalid; it must be positive", o.St)
	}
	if o.SuPas <= 0 {
		return chk.Err("soil: passive shear strength supas = %g is invalid; it must be positive", o.SuPas)
	}
	if o.GamBulk <= GamSw {
		return chk.Err("soil: bulk unit weight gambulk = %g is invalid; it must exceed the seawater unit weight = %g", o.GamBulk, GamSw)
	}

	// derived
	o.GamSub = o.GamBulk - GamSw
	return
}

// GetPrms gets (an example of) parameters
func GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "su", V: 5},       // [kPa]
			&dbf.P{N: "ocr", V: 1},      // [-]
			&dbf.P{N: "st", V: 3},       // [-]
			&dbf.P{N: "supas", V: 5},    // [kPa]
			&dbf.P{N: "gambulk", V: 16}, // [kN/m³]
		}
	}
	return dbf.Params{
		&dbf.P{N: "su", V: 0},
		&dbf.P{N: "ocr", V: 1},
		&dbf.P{N: "st", V: 0},
		&dbf.P{N: "supas", V: 0},
		&dbf.P{N: "gambulk", V: 0},
	}
}
