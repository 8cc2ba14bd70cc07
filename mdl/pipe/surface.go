// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipe

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Surface identifies the pipe outer coating surface in contact with soil
type Surface int

// surface kinds
const (
	Concrete    Surface = iota // concrete weight coating
	PET                        // polyethylene (PET) anti-corrosion coating
	NumSurfaces                // number of surface kinds
)

// Surfaces holds all surface kinds, in report order
var Surfaces = []Surface{Concrete, PET}

// String returns the name of the surface kind
func (o Surface) String() string {
	switch o {
	case Concrete:
		return "Concrete"
	case PET:
		return "PET"
	}
	return "unknown"
}

// SurfaceByKey returns the surface kind corresponding to key; e.g.
// "concrete" or "pet"
func SurfaceByKey(key string) (Surface, error) {
	switch strings.ToLower(key) {
	case "concrete":
		return Concrete, nil
	case "pet":
		return PET, nil
	}
	return 0, chk.Err("surface kind %q is not available", key)
}
