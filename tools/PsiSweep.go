// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/cpmech/gopsi/inp"
	"github.com/cpmech/gopsi/mdl/seabed"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	filename, fnkey := io.ArgToFilename(0, "data/surfacelaid01", ".psi", true)
	npts := io.ArgToInt(1, 21)

	// read analysis data
	ana := inp.ReadPsi(filename, false, false)
	if ana.Data.Mode != "surfacelaid" {
		io.PfRed("embedment sweep needs a surface-laid analysis\n")
		return
	}

	// message
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"filename path", "filename", filename,
		"number of points", "npts", npts,
	))

	// sweep embedment from zero to one diameter
	D := ana.Pip.Dop
	Z := utl.LinSpace(0, D, npts)
	Qv := make([]float64, npts)
	Zeta := make([]float64, npts)
	io.PfWhite("%10s%14s%14s%14s%14s\n", "z", "B", "Abm", "Qv", "zeta")
	for i, z := range Z {
		var sbd seabed.Model
		err := sbd.Init(dbf.Params{&dbf.P{N: "z", V: z}}, &ana.Pip, &ana.Sol, ana.Fric)
		if err != nil {
			io.PfRed("cannot initialise seabed model: %v\n", err)
			return
		}
		Qv[i], Zeta[i] = sbd.Qv, sbd.Zeta
		io.Pf("%10.4f%14.6f%14.6f%14.6f%14.6f\n", z, sbd.B, sbd.Abm, sbd.Qv, sbd.Zeta)
	}

	// plot
	plt.Reset(false, nil)
	plt.Subplot(2, 1, 1)
	plt.Plot(Z, Qv, &plt.A{C: "b", Ls: "-", L: "Qv"})
	plt.Gll("$z\\;[m]$", "$Q_v\\;[kN/m]$", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(Z, Zeta, &plt.A{C: "r", Ls: "-", L: "zeta"})
	plt.Gll("$z\\;[m]$", "$\\zeta$", nil)
	plt.Save("/tmp/gopsi", "sweep_"+fnkey)
}
