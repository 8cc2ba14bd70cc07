// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seabed

import (
	"github.com/cpmech/gopsi/mdl/pipe"
	"github.com/cpmech/gopsi/mdl/soil"
)

// Friction holds the skin friction coefficients of one (surface, estimate)
// pair
type Friction struct {
	SSR  float64 // skin-to-strength ratio
	Prem float64 // exponent applied to OCR in the friction term
}

// Table holds the skin friction coefficients of all (surface, estimate)
// pairs
type Table [pipe.NumSurfaces][soil.NumEstimates]Friction

// GetFricTable gets (an example of) skin friction coefficients. The example
// table carries the same coefficients for all surface kinds
func GetFricTable(example bool) (tab Table) {
	if example {
		for _, sfc := range pipe.Surfaces {
			tab[sfc][soil.P5] = Friction{0.25, 1.0}
			tab[sfc][soil.P50] = Friction{0.35, 1.0}
			tab[sfc][soil.P95] = Friction{0.45, 1.0}
		}
	}
	return
}
