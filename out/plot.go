// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gopsi/mdl/pipe"
	"github.com/cpmech/gopsi/psi"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// colours of the P5, P50 and P95 curves
var clr = []string{"b", "k", "r"}

// PlotProfiles plots the axial and lateral force-displacement
// mobilisation curves of one pipe surface, one curve per estimate
func PlotProfiles(m *psi.Main, sfc pipe.Surface, dirout, fnkey string) {
	plt.Reset(false, nil)

	// axial mobilisation
	plt.Subplot(2, 1, 1)
	for _, p := range m.Prf {
		if p.Sfc != sfc {
			continue
		}
		X := []float64{0, p.AxlBrk.D, p.AxlRes.D}
		Y := []float64{0, p.AxlBrk.F, p.AxlRes.F}
		plt.Plot(X, Y, &plt.A{C: clr[p.Est], Ls: "-", M: ".", L: p.Est.String()})
	}
	plt.Gll("$x\\;[mm]$", "$F_a\\;[kN/m]$", nil)

	// lateral mobilisation
	plt.Subplot(2, 1, 2)
	for _, p := range m.Prf {
		if p.Sfc != sfc {
			continue
		}
		X := []float64{0, p.LatBrk.D, p.LatRes.D}
		Y := []float64{0, p.LatBrk.F, p.LatRes.F}
		plt.Plot(X, Y, &plt.A{C: clr[p.Est], Ls: "-", M: ".", L: p.Est.String()})
	}
	plt.Gll("$y\\;[mm]$", "$F_l\\;[kN/m]$", nil)

	// save figure
	plt.Save(dirout, fnkey)
}

// PlotAll plots the mobilisation curves of all pipe surfaces, one figure
// per surface, saved to the output directory of the analysis
func PlotAll(m *psi.Main) {
	if m.Sbd == nil {
		return
	}
	for _, sfc := range pipe.Surfaces {
		fnkey := io.Sf("fig_%s_%s", m.Ana.Key, strings.ToLower(sfc.String()))
		PlotProfiles(m, sfc, m.Ana.DirOut, fnkey)
	}
}
