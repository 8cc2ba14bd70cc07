// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Backfill holds the strength and weight properties of the material used
// to backfill a trench, for one strength estimate
type Backfill struct {

	// input
	Alpha   float64 // pipe-backfill adhesion factor
	GamBulk float64 // bulk unit weight [kN/m³]
	Sbnb    float64 // non-brittle (remoulded) backfill shear strength [kPa]
	Sbo     float64 // backfill shear strength at breakout [kPa]
	Sba     float64 // backfill shear strength for axial sliding [kPa]

	// derived
	GamSub float64 // submerged unit weight [kN/m³]
}

// Init initialises the backfill properties. prms must provide "alpha",
// "gambulk", "sbnb", "sbo" and "sba"
func (o *Backfill) Init(prms dbf.Params) (err error) {

	// read parameters
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alpha":
			o.Alpha = p.V
		case "gambulk":
			o.GamBulk = p.V
		case "sbnb":
			o.Sbnb = p.V
		case "sbo":
			o.Sbo = p.V
		case "sba":
			o.Sba = p.V
		default:
			return chk.Err("backfill: parameter named %q is incorrect\n", p.N)
		}
	}

	// check
	if o.Alpha <= 0 {
		return chk.Err("backfill: adhesion factor alpha = %g is invalid; it must be positive", o.Alpha)
	}
	if o.Sbnb <= 0 {
		return chk.Err("backfill: non-brittle shear strength sbnb = %g is invalid; it must be positive", o.Sbnb)
	}
	if o.Sbo <= 0 {
		return chk.Err("backfill: breakout shear strength sbo = %g is invalid; it must be positive", o.Sbo)
	}
	if o.Sba <= 0 {
		return chk.Err("backfill: axial shear strength sba = %g is invalid; it must be positive", o.Sba)
	}
	if o.GamBulk <= GamSw {
		return chk.Err("backfill: bulk unit weight gambulk = %g is invalid; it must exceed the seawater unit weight = %g", o.GamBulk, GamSw)
	}

	// derived
	o.GamSub = o.GamBulk - GamSw
	return
}

// GetBackfillPrms gets example backfill parameters for one estimate.
// Returns nil for an unknown estimate
func GetBackfillPrms(est Estimate) dbf.Params {
	switch est {
	case P5:
		return dbf.Params{
			&dbf.P{N: "alpha", V: 0.5},
			&dbf.P{N: "gambulk", V: 16},
			&dbf.P{N: "sbnb", V: 2},
			&dbf.P{N: "sbo", V: 3},
			&dbf.P{N: "sba", V: 2.5},
		}
	case P50:
		return dbf.Params{
			&dbf.P{N: "alpha", V: 0.6},
			&dbf.P{N: "gambulk", V: 17},
			&dbf.P{N: "sbnb", V: 3},
			&dbf.P{N: "sbo", V: 4},
			&dbf.P{N: "sba", V: 3.5},
		}
	case P95:
		return dbf.Params{
			&dbf.P{N: "alpha", V: 0.8},
			&dbf.P{N: "gambulk", V: 18},
			&dbf.P{N: "sbnb", V: 5},
			&dbf.P{N: "sbo", V: 6},
			&dbf.P{N: "sba", V: 5},
		}
	}
	return nil
}
