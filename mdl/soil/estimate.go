// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Estimate identifies one statistical estimate of the soil strength
type Estimate int

// estimate kinds
const (
	P5           Estimate = iota // lower bound estimate (5% fractile)
	P50                          // best estimate (50% fractile)
	P95                          // upper bound estimate (95% fractile)
	NumEstimates                 // number of estimates
)

// Estimates holds all estimates, in report order
var Estimates = []Estimate{P5, P50, P95}

// String returns the short name of the estimate
func (o Estimate) String() string {
	switch o {
	case P5:
		return "P5"
	case P50:
		return "P50"
	case P95:
		return "P95"
	}
	return "unknown"
}

// Label returns the long name of the estimate for reports
func (o Estimate) Label() string {
	switch o {
	case P5:
		return "P5 (Low)"
	case P50:
		return "P50 (Best)"
	case P95:
		return "P95 (High)"
	}
	return "unknown"
}

// EstimateByKey returns the estimate corresponding to key; e.g. "p5",
// "p50" or "p95"
func EstimateByKey(key string) (Estimate, error) {
	switch strings.ToLower(key) {
	case "p5":
		return P5, nil
	case "p50":
		return P50, nil
	case "p95":
		return P95, nil
	}
	return 0, chk.Err("estimate kind %q is not available", key)
}
