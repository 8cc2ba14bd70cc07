// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package seabed implements the pipe-soil interaction model for
// surface-laid (exposed, partially embedded) pipelines resting on soft
// clay, following DNV-RP-F114. The model computes the effective vertical
// force, the penetration geometry, the vertical bearing capacity, the
// wedging factor and the passive berm resistance, and from these the
// axial and lateral breakout-residual resistance profiles for all
// (surface, estimate) pairs
package seabed

import (
	"math"
	"strings"

	"github.com/cpmech/gopsi/mdl/pipe"
	"github.com/cpmech/gopsi/mdl/soil"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Model implements the surface-laid pipe-soil interaction model
type Model struct {

	// input
	Pip   *pipe.Pipe  // pipe data
	Sol   *soil.Props // native soil properties
	Z     float64     // pipe embedment depth [m]
	Alpha float64     // pipe-soil adhesion factor
	Rate  float64     // displacement rate factor
	Fric  Table       // skin friction coefficients

	// derived
	V     float64 // effective vertical force [kN/m]
	B     float64 // pipe-seabed contact width [m]
	Abm   float64 // penetrated cross-section area [m²]
	Qv    float64 // vertical bearing capacity [kN/m]
	Zeta  float64 // wedging factor
	FlRem float64 // passive berm lateral resistance [kN/m]
}

// Metrics holds the summary quantities of one surface-laid analysis
type Metrics struct {
	Wp     float64 // steel mass per unit length [kg/m]
	Wpf    float64 // flooded submerged weight [kN/m]
	V      float64 // effective vertical force [kN/m]
	Abm    float64 // penetrated cross-section area [m²]
	Qv     float64 // vertical bearing capacity [kN/m]
	Zeta   float64 // wedging factor
	FlRem  float64 // passive berm lateral resistance [kN/m]
	Stable bool    // vertical stability flag: V < Qv
}

// Init initialises the model. prms may provide "z", "alpha" and "rate";
// pip and sol must be initialised already
func (o *Model) Init(prms dbf.Params, pip *pipe.Pipe, sol *soil.Props, fric Table) (err error) {

	// default parameters
	o.Z = 0.05
	o.Alpha = 0.5
	o.Rate = 1.0

	// read parameters
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "z":
			o.Z = p.V
		case "alpha":
			o.Alpha = p.V
		case "rate":
			o.Rate = p.V
		default:
			return chk.Err("seabed: parameter named %q is incorrect\n", p.N)
		}
	}

	// check
	if pip == nil || sol == nil {
		return chk.Err("seabed: pipe and soil data must be non-nil\n")
	}
	if o.Z < 0 {
		return chk.Err("seabed: embedment depth z = %g is invalid; it must be non-negative", o.Z)
	}
	if o.Rate <= 0 {
		return chk.Err("seabed: rate factor rate = %g is invalid; it must be positive", o.Rate)
	}
	o.Pip = pip
	o.Sol = sol
	o.Fric = fric

	// effective vertical force; the larger of the amplified installation
	// weight and the flooded weight governs
	o.V = utl.Max(o.Pip.Wpins*o.Pip.Klay*o.Pip.Grav/1000.0, o.Pip.Wpf)

	// penetration geometry
	D := o.Pip.Dop
	if o.Z < D/2.0 {
		val := D*o.Z - o.Z*o.Z
		o.B = 0
		if val > 0 {
			o.B = 2.0 * math.Sqrt(val)
		}
		asinVal := 0.0
		if math.Abs(o.B/D) <= 1.0 {
			asinVal = math.Asin(o.B / D)
		}
		o.Abm = asinVal*(D*D/4.0) - o.B*(D/4.0)*math.Cos(asinVal)
	} else {
		o.B = D
		o.Abm = math.Pi*D*D/8.0 + D*(o.Z-D/2.0)
	}

	// vertical bearing capacity; the smaller of the shallow and deep
	// failure mechanisms governs
	qa := 6.0 * math.Pow(o.Z/D, 0.25)
	qb := 3.4 * math.Pow(10.0*o.Z/D, 0.5)
	o.Qv = (utl.Min(qa, qb) + 1.5*o.Sol.GamSub*o.Abm/(D*o.Sol.Su)) * D * o.Sol.Su

	// wedging factor; cv is clamped to [-1,1] before the inverse cosine
	cv := 1.0 - o.Z/(D/2.0)
	cv = utl.Max(-1.0, utl.Min(1.0, cv))
	β := math.Acos(cv)
	den := β + math.Sin(β)*math.Cos(β)
	o.Zeta = 1.0
	if den != 0 {
		o.Zeta = 2.0 * math.Sin(β) / den
	}

	// passive berm resistance
	o.FlRem = o.Z * o.Rate * (2.0*o.Sol.SuPas + 0.5*o.Sol.GamSub*o.Z)
	return
}

// Metrics returns the summary quantities of this analysis
func (o *Model) Metrics() Metrics {
	return Metrics{o.Pip.Wp, o.Pip.Wpf, o.V, o.Abm, o.Qv, o.Zeta, o.FlRem, o.V < o.Qv}
}

// GetPrms gets (an example of) laying parameters
func GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "z", V: 0.05},    // [m]
			&dbf.P{N: "alpha", V: 0.5}, // [-]
			&dbf.P{N: "rate", V: 1},    // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "z", V: 0},
		&dbf.P{N: "alpha", V: 0},
		&dbf.P{N: "rate", V: 1},
	}
}
