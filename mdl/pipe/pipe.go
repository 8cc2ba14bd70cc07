// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pipe implements the pipeline data shared by the pipe-soil
// interaction models: geometry, unit weights and laying constants
package pipe

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Pipe holds the geometry, unit weights and laying constants of a subsea
// pipeline segment. The steel annulus, the flooded contents and the
// displaced seawater define the flooded line weight Wpf, whereas the
// installation (empty) condition uses the submerged steel weight only.
type Pipe struct {

	// input
	Dop float64 // outer diameter [m]
	Tp  float64 // wall thickness [m]

	// constants
	RhoSteel float64 // mass density of steel [kg/m³]
	RhoCon   float64 // mass density of flooded contents (water) [kg/m³]
	RhoSw    float64 // mass density of seawater [kg/m³]
	Grav     float64 // gravity acceleration [m/s²]
	Klay     float64 // lay effect amplification factor on installation weight

	// derived
	Dip      float64 // inner diameter [m]
	Ap       float64 // full cross-section area [m²]
	Wp       float64 // steel mass per unit length [kg/m]
	Wcon     float64 // flooded contents mass per unit length [kg/m]
	Wb       float64 // displaced seawater mass per unit length [kg/m]
	Wpf      float64 // flooded submerged weight [kN/m]
	Wpins    float64 // submerged steel mass per unit length [kg/m]
	WpinsSub float64 // submerged steel weight [kN/m]
}

// Init initialises the pipe data. prms must provide "dop" and "tp"; the
// constants may be overridden with "rhosteel", "rhocon", "rhosw", "grav"
// and "klay"
func (o *Pipe) Init(prms dbf.Params) (err error) {

	// default constants
	o.RhoSteel = 7850.0
	o.RhoCon = 1000.0
	o.RhoSw = 1025.0
	o.Grav = 9.8
	o.Klay = 2.0

	// read parameters
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "dop":
			o.Dop = p.V
		case "tp":
			o.Tp = p.V
		case "rhosteel":
			o.RhoSteel = p.V
		case "rhocon":
			o.RhoCon = p.V
		case "rhosw":
			o.RhoSw = p.V
		case "grav":
			o.Grav = p.V
		case "klay":
			o.Klay = p.V
		default:
			return chk.Err("pipe: parameter named %q is incorrect\n", p.N)
		}
	}

	// check
	if o.Dop <= 0 {
		return chk.Err("pipe: outer diameter dop = %g is invalid; it must be positive", o.Dop)
	}
	if o.Tp <= 0 || o.Tp >= o.Dop/2.0 {
		return chk.Err("pipe: wall thickness tp = %g is invalid; it must be within (0, dop/2)", o.Tp)
	}

	// derived
	o.Dip = o.Dop - 2.0*o.Tp
	o.Ap = math.Pi * o.Dop * o.Dop / 4.0
	o.Wp = math.Pi * (o.Dop*o.Dop - o.Dip*o.Dip) * o.RhoSteel / 4.0
	o.Wcon = math.Pi * o.Dip * o.Dip * o.RhoCon / 4.0
	o.Wb = math.Pi * o.Dop * o.Dop * o.RhoSw / 4.0
	o.Wpf = (o.Wp + o.Wcon - o.Wb) * o.Grav / 1000.0
	o.Wpins = math.Pi * (o.Dop*o.Dop - o.Dip*o.Dip) * (o.RhoSteel - o.RhoSw) / 4.0
	o.WpinsSub = o.Wpins * o.Grav / 1000.0
	return
}

// GetPrms gets (an example of) parameters
func GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "dop", V: 0.3239},
			&dbf.P{N: "tp", V: 0.0127},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "dop", V: 0},
		&dbf.P{N: "tp", V: 0},
	}
}
