/*
 * notes_test.go, part of gocif.
 *
 * Copyright 2025 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goCIF is developed at Universidad de Tarapaca (UTA)
 *
 */

package cif

import (
	"os"
	"strings"
	"testing"
)

func sampleRecord(Te *testing.T) *Record {
	Te.Helper()
	f, err := os.Open("test/sample.m41")
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	R, err := M41Read(f, "test/sample.m41", 1)
	if err != nil {
		Te.Fatal(err)
	}
	g, err := os.Open("test/sample.ref")
	if err != nil {
		Te.Fatal(err)
	}
	defer g.Close()
	R.RFactor, err = RefRead(g, "test/sample.ref", 1)
	if err != nil {
		Te.Fatal(err)
	}
	return R
}

func TestAbsorptionNote(Te *testing.T) {
	R := sampleRecord(Te)
	note, err := R.AbsorptionNote()
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(note, "0.041") || !strings.Contains(note, "cylindrical") {
		Te.Errorf("absorption note misassembled: %q", note)
	}
	//the product is embedded verbatim, never rounded
	if strings.Contains(note, "0.04(") {
		Te.Errorf("absorption note rounded the product: %q", note)
	}
}

func TestProfileNote(Te *testing.T) {
	R := sampleRecord(Te)
	note, err := R.ProfileNote()
	if err != nil {
		Te.Fatal(err)
	}
	want := "pseudo-Voigt profile in TCH approach (Thompson et al., 1987): " +
		"G~U~ = 0.123(6), G~V~ = -0.054(4), G~W~ = 0.068(3), " +
		"L~X~ = 0.046(2), L~Y~ = 0.035(5), L~Ye~ = 0.0012(5)"
	if note != want {
		Te.Errorf("profile note:\ngot  %q\nwant %q", note, want)
	}
	//G~P~ and L~Xe~ are zero in the sample and must not appear at all
	if strings.Contains(note, "G~P~") || strings.Contains(note, "L~Xe~") {
		Te.Errorf("zero terms not suppressed: %q", note)
	}
}

func TestBackgroundNote(Te *testing.T) {
	R := sampleRecord(Te)
	note, err := R.BackgroundNote()
	if err != nil {
		Te.Fatal(err)
	}
	want := "manual background (visual estimation, unrefined) interpolated by " +
		"eight Legendre polynomials (1st: 120.5(6), 2nd: 80.1(3), 3rd: 40.6(2), " +
		"4th: 20.12(12), 5th: 10.57(6), 6th: 5.12(3), 7th: 2.57(2), 8th: 1.123(12))"
	if note != want {
		Te.Errorf("background note:\ngot  %q\nwant %q", note, want)
	}
}

func TestSpecialDetails(Te *testing.T) {
	R := sampleRecord(Te)
	if sd := R.SpecialDetails(); sd != "zero-point correction: 0.01234(12)" {
		Te.Errorf("special details = %q", sd)
	}
	//an unrefined shift, printed as 0.000000, suppresses the clause even
	//though its uncertainty is not zero
	R.RawZero = "0.000000"
	if sd := R.SpecialDetails(); sd != "" {
		Te.Errorf("special details not suppressed: %q", sd)
	}
}

func TestRFactorAndRegions(Te *testing.T) {
	R := sampleRecord(Te)
	if s := R.RFactorString(); s != "0.1235" {
		Te.Errorf("R factor string = %q", s)
	}
	regions := R.ExcludedStrings()
	if len(regions) != 2 || regions[0] != "from 0.05 to 7.50: " || regions[1] != "from 158.00 to 160.11: " {
		Te.Errorf("excluded regions misrendered: %q", regions)
	}
}

func TestNotesAbsentFlags(Te *testing.T) {
	R := sampleRecord(Te)
	R.Sel["absor"] = "0"
	note, err := R.AbsorptionNote()
	if err != nil || note != "" {
		Te.Errorf("absorption note for absor=0: %q, %v", note, err)
	}
	R.Sel["manbckg"] = "0"
	note, err = R.BackgroundNote()
	if err != nil || note != "" {
		Te.Errorf("background note for manbckg=0: %q, %v", note, err)
	}
	R.Phases[0].Sel["prof"] = "1"
	note, err = R.ProfileNote()
	if err != nil || note != "" {
		Te.Errorf("profile note for a non-pseudo-Voigt phase: %q, %v", note, err)
	}
}
