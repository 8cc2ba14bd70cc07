// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// PipePenetration computes the seabed contact chord (B) and the
// penetrated cross-section area (A) of a circular pipe pressed a depth
// z into a flat seabed. Until half burial the section is the circular
// segment with height z:
//
//    B(z) = 2・sqrt(z・(D - z))
//    A(z) = R²・acos(1 - z/R) - (R - z)・B(z)/2       R = D/2
//
// beyond half burial the chord locks at the diameter and the section
// grows linearly with depth:
//
//    A(z) = π・R²/2 + D・(z - R)
//
type PipePenetration struct {
	D float64 // pipe outer diameter
}

// Calc computes the contact chord and the penetrated area
func (o PipePenetration) Calc(z float64) (B, A float64) {
	R := o.D / 2.0
	if z <= R {
		B = 2.0 * math.Sqrt(z*(o.D-z))
		A = R*R*math.Acos(1.0-z/R) - (R-z)*(B/2.0)
		return
	}
	B = o.D
	A = math.Pi*R*R/2.0 + o.D*(z-R)
	return
}

// CalcNum computes the penetrated area with the composite trapezoidal
// rule over the chord width. Valid for z up to half burial
func (o PipePenetration) CalcNum(z float64, np int) (A float64) {
	T := utl.LinSpace(0, z, np)
	for i := 1; i < np; i++ {
		wa := 2.0 * math.Sqrt(T[i-1]*(o.D-T[i-1]))
		wb := 2.0 * math.Sqrt(T[i]*(o.D-T[i]))
		A += (wa + wb) * (T[i] - T[i-1]) / 2.0
	}
	return
}
