// Copyright 2016 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the post-processing of analysis results: text
// reports, saved result records and mobilisation plots
package out

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gopsi/mdl/seabed"
	"github.com/cpmech/gopsi/mdl/trench"
	"github.com/cpmech/gopsi/psi"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Results holds all computed records of one analysis, for serialisation
type Results struct {
	Key      string              `json:"key"`                   // analysis key
	Mode     string              `json:"mode"`                  // analysis mode
	Metrics  *seabed.Metrics     `json:"metrics,omitempty"`     // summary metrics; surface-laid mode
	Profiles []seabed.Profile    `json:"profiles,omitempty"`    // resistance profiles; surface-laid mode
	V        float64             `json:"v,omitempty"`           // effective vertical force; trenched mode
	Resist   []trench.Resistance `json:"resistances,omitempty"` // axial and uplift resistances; trenched mode
}

// Report returns a text report with all results of the analysis
func Report(m *psi.Main) string {

	// header
	buf := new(bytes.Buffer)
	io.Ff(buf, "analysis results\n")
	io.Ff(buf, "  key  = %s\n", m.Ana.Key)
	io.Ff(buf, "  mode = %s\n", m.Ana.Data.Mode)
	if m.Ana.Data.Desc != "" {
		io.Ff(buf, "  desc = %s\n", m.Ana.Data.Desc)
	}

	// surface-laid pipe
	if m.Sbd != nil {

		// calculation summary
		io.Ff(buf, "\ncalculation summary\n")
		io.Ff(buf, "%-29s = %10.2f kg/m\n", "steel mass (Wp)", m.Met.Wp)
		io.Ff(buf, "%-29s = %10.3f kN/m\n", "flooded weight (Wpf)", m.Met.Wpf)
		io.Ff(buf, "%-29s = %10.3f kN/m\n", "effective force (V)", m.Met.V)
		io.Ff(buf, "%-29s = %10.5f m2\n", "penetrated area (Abm)", m.Met.Abm)
		io.Ff(buf, "%-29s = %10.3f kN/m\n", "vertical capacity (Qv)", m.Met.Qv)
		io.Ff(buf, "%-29s = %10.3f\n", "wedging factor (zeta)", m.Met.Zeta)
		io.Ff(buf, "%-29s = %10.3f kN/m\n", "lateral passive resist (Fl)", m.Met.FlRem)
		if m.Met.Stable {
			io.Ff(buf, "\nSTABILITY OK: effective force (V) < vertical capacity (Qv)\n")
		} else {
			io.Ff(buf, "\nFAILURE WARNING: effective force (V) >= vertical capacity (Qv); the pipe is likely to sink\n")
		}

		// detailed resistance values
		io.Ff(buf, "\ndetailed resistance values\n")
		io.Ff(buf, "%-10s%-12s%18s%11s%18s%11s%16s%11s%16s%11s\n", "Surface", "Estimate",
			"Axial Brk (kN/m)", "Xbrk (mm)", "Axial Res (kN/m)", "Xres (mm)",
			"Lat Brk (kN/m)", "Ybrk (mm)", "Lat Res (kN/m)", "Yres (mm)")
		for _, p := range m.Prf {
			io.Ff(buf, "%-10v%-12v%18.2f%11.2f%18.2f%11.2f%16.2f%11.2f%16.2f%11.2f\n", p.Sfc, p.Est,
				p.AxlBrk.F, p.AxlBrk.D, p.AxlRes.F, p.AxlRes.D,
				p.LatBrk.F, p.LatBrk.D, p.LatRes.F, p.LatRes.D)
		}
	}

	// trenched and buried pipe
	if m.Trn != nil {
		io.Ff(buf, "\n%-29s = %10.2f kN/m\n", "effective vertical force (V)", m.Trn.V)
		io.Ff(buf, "\nresistance summary\n")
		io.Ff(buf, "%-12s%25s%26s\n", "Category", "Axial Resistance (kN/m)", "Uplift Resistance (kN/m)")
		for _, r := range m.Res {
			io.Ff(buf, "%-12s%25.2f%26.2f\n", r.Est.Label(), r.Fa, r.Fu)
		}
	}
	return buf.String()
}

// Save writes the text report (.res) and the JSON results record (.json)
// to the output directory of the analysis
func Save(m *psi.Main) (err error) {

	// results record
	res := Results{Key: m.Ana.Key, Mode: m.Ana.Data.Mode}
	if m.Sbd != nil {
		res.Metrics = &m.Met
		res.Profiles = m.Prf
	}
	if m.Trn != nil {
		res.V = m.Trn.V
		res.Resist = m.Res
	}
	b, err := json.MarshalIndent(&res, "", "  ")
	if err != nil {
		return chk.Err("cannot marshal results record: %v", err)
	}

	// save files
	var rep, dat bytes.Buffer
	io.Ff(&rep, "%s", Report(m))
	io.Ff(&dat, "%s\n", b)
	io.WriteFileVD(m.Ana.DirOut, m.Ana.Key+".res", &rep)
	io.WriteFileVD(m.Ana.DirOut, m.Ana.Key+".json", &dat)
	return
}
