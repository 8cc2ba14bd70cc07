// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func Test_pipepen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pipepen01. circular segment closed form")

	D := 0.3239
	seg := PipePenetration{D: D}

	// analytic values
	B, A := seg.Calc(0.05)
	io.Pforan("B(0.05) = %v\n", B)
	io.Pforan("A(0.05) = %v\n", A)
	chk.Float64(tst, "B(0.05)", 1e-15, B, 0.23405127643317822)
	chk.Float64(tst, "A(0.05)", 1e-15, A, 0.008079536800153985)
	B, A = seg.Calc(D / 4.0)
	chk.Float64(tst, "B(D/4)", 1e-15, B, 0.2805056282857797)
	chk.Float64(tst, "A(D/4)", 1e-15, A, 0.016108718926047504)

	// both branches meet at half burial
	B, A = seg.Calc(D / 2.0)
	chk.Float64(tst, "B(D/2)", 1e-17, B, D)
	chk.Float64(tst, "A(D/2)", 1e-17, A, math.Pi*D*D/8.0)

	// full burial
	B, A = seg.Calc(D)
	chk.Float64(tst, "B(D)", 1e-17, B, D)
	chk.Float64(tst, "A(D)", 1e-15, A, 0.09365414082690202)

	// compare with numerical integration
	np := 1001
	io.PfWhite("%10s%23s%23s%15s\n", "z", "A", "Anum", "err")
	for _, z := range []float64{0.01, 0.05, 0.10, D / 2.0} {
		_, res := seg.Calc(z)
		resNum := seg.CalcNum(z, np)
		io.Pf("%10.4f%23.15e%23.15e%15.6e\n", z, res, resNum, math.Abs(res-resNum))
		chk.AnaNum(tst, "A", 1e-5, res, resNum, false)
	}

	if chk.Verbose {
		npts := 101
		Z := utl.LinSpace(0, D, npts)
		Bv := make([]float64, npts)
		Av := make([]float64, npts)
		for i, z := range Z {
			Bv[i], Av[i] = seg.Calc(z)
		}
		plt.Reset(false, nil)
		plt.Subplot(2, 1, 1)
		plt.Plot(Z, Bv, &plt.A{C: "b", Ls: "-", L: "B"})
		plt.Gll("$z\\;[m]$", "$B\\;[m]$", nil)
		plt.Subplot(2, 1, 2)
		plt.Plot(Z, Av, &plt.A{C: "r", Ls: "-", L: "A"})
		plt.Gll("$z\\;[m]$", "$A\\;[m^2]$", nil)
		plt.Save("/tmp/gopsi", "fig_pipepen01")
	}
}
