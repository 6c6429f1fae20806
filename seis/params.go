// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package seis implements code-based seismic response: design response
// spectra, seismic coefficients, base shear and story drift
package seis

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// SiteClass identifies the soil profile, "A" (hard rock) through "E"
// (soft clay)
type SiteClass string

// Occupancy identifies the risk category, "I" through "IV"
type Occupancy string

// DefaultTl is the default long-period transition [s]
const DefaultTl = 8.0

// Params holds the code seismic parameters of a site and structural
// system. Spectral values Ss and S1 are mapped accelerations in units
// of g.
type Params struct {
	Ss   float64   `yaml:"ss"`   // short-period spectral acceleration
	S1   float64   `yaml:"s1"`   // 1-second spectral acceleration
	Site SiteClass `yaml:"site"` // site class A..E
	R    float64   `yaml:"r"`    // response modification factor
	Occ  Occupancy `yaml:"occ"`  // risk category I..IV
	Tl   float64   `yaml:"tl"`   // long-period transition; 0 => DefaultTl
}

// LoadParams reads seismic parameters from a YAML file
func LoadParams(path string) (o *Params, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read seismic parameters file %q:\n%v", path, err)
	}
	o = new(Params)
	if err = yaml.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse seismic parameters file %q:\n%v", path, err)
	}
	return
}

// ImportanceFactor returns Ie for a risk category; unknown categories get
// the ordinary value 1.0
func ImportanceFactor(occ Occupancy) float64 {
	switch occ {
	case "III":
		return 1.25
	case "IV":
		return 1.5
	}
	return 1.0
}
