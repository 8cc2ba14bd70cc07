// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gopsi/out"
	"github.com/cpmech/gopsi/psi"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "data/surfacelaid01", ".psi", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	doplot := io.ArgToBool(3, false)

	// message
	if verbose {
		io.PfWhite("\nGopsi Version 1.0 -- Pipe-Soil Interaction per DNV-RP-F114\n")
		io.Pf("Copyright 2016 The Gopsi Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"plot mobilisation curves", "doplot", doplot,
		))
	}

	// analysis data
	analysis := psi.NewMain(fnamepath, erasePrev, verbose)

	// run analysis
	err := analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// report and save results
	io.Pf("\n%s\n", out.Report(analysis))
	err = out.Save(analysis)
	if err != nil {
		chk.Panic("Save failed:\n%v", err)
	}

	// plot mobilisation curves
	if doplot {
		out.PlotAll(analysis)
	}
}
