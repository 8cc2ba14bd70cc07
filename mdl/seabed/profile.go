// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seabed

import (
	"math"

	"github.com/cpmech/gopsi/mdl/pipe"
	"github.com/cpmech/gopsi/mdl/soil"
	"github.com/cpmech/gosl/utl"
)

// FD holds one force-displacement pair of a resistance profile
type FD struct {
	F float64 // resistance force [kN/m]
	D float64 // mobilisation displacement [mm]
}

// Profile holds the axial and lateral breakout-residual resistance of one
// (surface, estimate) pair
type Profile struct {
	Sfc    pipe.Surface  // pipe surface kind
	Est    soil.Estimate // soil strength estimate
	AxlBrk FD            // axial breakout
	AxlRes FD            // axial residual
	LatBrk FD            // lateral breakout
	LatRes FD            // lateral residual
}

// Profile computes the resistance profile of one (surface, estimate) pair
func (o *Model) Profile(sfc pipe.Surface, est soil.Estimate) (p Profile) {
	p.Sfc = sfc
	p.Est = est

	// resistance forces
	fric := o.Fric[sfc][est]
	c := o.Alpha * fric.SSR * math.Pow(o.Sol.OCR, fric.Prem)
	p.AxlBrk.F = c * o.Zeta * o.Rate * o.V
	p.AxlRes.F = p.AxlBrk.F / o.Sol.St
	p.LatBrk.F = c*o.Rate*o.V + o.FlRem

	// lateral residual; the low estimate is derated and the high estimate
	// amplified by the same one-sided margin
	zd := o.Z / o.Pip.Dop
	lres := (0.32 + 0.8*math.Pow(zd, 0.8)) * o.V
	switch est {
	case soil.P5:
		lres /= 1.5
	case soil.P95:
		lres *= 1.5
	}
	p.LatRes.F = lres

	// mobilisation displacements; the low and best estimates cap the
	// diameter-driven value whereas the high estimate floors it
	dmm := o.Pip.Dop * 1000.0
	switch est {
	case soil.P5:
		p.AxlBrk.D = utl.Min(1.25, 0.0025*dmm)
		p.AxlRes.D = utl.Min(7.5, 0.015*dmm)
		p.LatBrk.D = (0.004 + 0.02*zd) * dmm
		p.LatRes.D = 0.6 * dmm
	case soil.P50:
		p.AxlBrk.D = utl.Min(5.0, 0.01*dmm)
		p.AxlRes.D = utl.Min(30.0, 0.06*dmm)
		p.LatBrk.D = (0.02 + 0.25*zd) * dmm
		p.LatRes.D = 1.5 * dmm
	case soil.P95:
		p.AxlBrk.D = utl.Max(50.0, 0.01*dmm)
		p.AxlRes.D = utl.Max(250.0, 0.5*dmm)
		p.LatBrk.D = (0.1 + 0.7*zd) * dmm
		p.LatRes.D = 2.8 * dmm
	}
	return
}

// Profiles computes the resistance profiles of all (surface, estimate)
// pairs, in report order
func (o *Model) Profiles() (res []Profile) {
	res = make([]Profile, 0, int(pipe.NumSurfaces)*int(soil.NumEstimates))
	for _, sfc := range pipe.Surfaces {
		for _, est := range soil.Estimates {
			res = append(res, o.Profile(sfc, est))
		}
	}
	return
}
