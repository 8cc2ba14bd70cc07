// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package trench implements the pipe-soil interaction model for trenched
// and buried pipelines per DNV-RP-F114. For each soil strength estimate,
// two axial and two uplift failure mechanisms are evaluated and the
// weaker mechanism governs
package trench

import (
	"math"
	"strings"

	"github.com/cpmech/gopsi/mdl/pipe"
	"github.com/cpmech/gopsi/mdl/soil"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Nc is the bearing capacity coefficient of the local uplift failure mode
const Nc = 9.0

// Model implements the trenched pipe-soil interaction model
type Model struct {

	// input
	Pip *pipe.Pipe                        // pipe data
	H   float64                           // trench height (soil cover above pipe) [m]
	Bfl [soil.NumEstimates]*soil.Backfill // backfill properties, one set per estimate

	// derived
	V float64 // effective vertical force [kN/m]
}

// Resistance holds the axial and uplift resistance of one estimate
type Resistance struct {
	Est       soil.Estimate // soil strength estimate
	FaDeep    float64       // axial resistance, deep failure mode [kN/m]
	FaShallow float64       // axial resistance, shallow/breakout failure mode [kN/m]
	Fa        float64       // governing axial resistance [kN/m]
	FuLocal   float64       // uplift resistance, local failure mode [kN/m]
	FuGlobal  float64       // uplift resistance, trench-block failure mode [kN/m]
	Fu        float64       // governing uplift resistance [kN/m]
}

// Init initialises the model. prms may provide "h"; pip and all backfill
// sets must be initialised already
func (o *Model) Init(prms dbf.Params, pip *pipe.Pipe, bfl []*soil.Backfill) (err error) {

	// default parameters
	o.H = 1.0

	// read parameters
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "h":
			o.H = p.V
		default:
			return chk.Err("trench: parameter named %q is incorrect\n", p.N)
		}
	}

	// check
	if pip == nil {
		return chk.Err("trench: pipe data must be non-nil\n")
	}
	if o.H <= 0 {
		return chk.Err("trench: trench height h = %g is invalid; it must be positive", o.H)
	}
	if len(bfl) != int(soil.NumEstimates) {
		return chk.Err("trench: %d backfill sets are required; %d were given\n", int(soil.NumEstimates), len(bfl))
	}
	o.Pip = pip
	for _, est := range soil.Estimates {
		if bfl[est] == nil {
			return chk.Err("trench: backfill properties of the %v estimate are missing\n", est)
		}
		o.Bfl[est] = bfl[est]
	}

	// effective vertical force; contrary to the surface-laid model, the
	// installation weight here is already scaled to kN/m before the lay
	// factor is applied
	o.V = utl.Max(o.Pip.WpinsSub*o.Pip.Klay, o.Pip.Wpf)
	return
}

// Resistance computes the governing axial and uplift resistance of one
// estimate
func (o *Model) Resistance(est soil.Estimate) (r Resistance) {
	r.Est = est
	bfl := o.Bfl[est]
	D := o.Pip.Dop

	// axial failure modes
	r.FaDeep = bfl.Alpha * bfl.Sbnb * math.Pi * D
	r.FaShallow = bfl.Alpha*bfl.Sbo*(math.Pi*D/2.0) + 2.0*bfl.Sba*(o.H+D/2.0)
	r.Fa = utl.Min(r.FaDeep, r.FaShallow)

	// uplift failure modes
	r.FuLocal = Nc*bfl.Sbnb*D - bfl.GamSub*o.Pip.Ap
	r.FuGlobal = bfl.GamSub*o.H*D + bfl.GamSub*(D*D)*(0.5-math.Pi/8.0) + 2.0*bfl.Sbnb*(o.H+D/2.0)
	r.Fu = utl.Min(r.FuLocal, r.FuGlobal)
	return
}

// Resistances computes the governing resistance of all estimates, in
// report order
func (o *Model) Resistances() (res []Resistance) {
	res = make([]Resistance, soil.NumEstimates)
	for _, est := range soil.Estimates {
		res[est] = o.Resistance(est)
	}
	return
}

// GetPrms gets (an example of) trench parameters
func GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "h", V: 1.0}, // [m]
		}
	}
	return dbf.Params{
		&dbf.P{N: "h", V: 0},
	}
}
