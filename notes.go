/*
 * notes.go, part of gocif.
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
	"fmt"
	"strings"
)

//The narrative CIF notes. All of them return the empty string, and no error,
//when the corresponding selection flags say the feature was not used.

//coefString renders one profile coefficient: the IUCr notation, or the
//literal "0" for an exactly-zero coefficient.
func coefString(v, su float64) string {
	if v == 0 {
		return "0"
	}
	return FormatIUCr(v, su)
}

// AbsorptionNote returns the _exptl_absorpt_process_details text, embedding
// the linear absorption times radius product verbatim, or "" if no
// absorption correction was selected.
func (R *Record) AbsorptionNote() (string, error) {
	absor, err := R.Sel.get("absor", R.File)
	if err != nil {
		return "", errDecorate(err, "AbsorptionNote")
	}
	if absor != "1" {
		return "", nil
	}
	mir, err := R.Sel.get("mir", R.File)
	if err != nil {
		return "", errDecorate(err, "AbsorptionNote")
	}
	return fmt.Sprintf("correction for a cylindrical sample with \\mR = %s as implemented in\nJANA2006 (Pet\\<r\\'i\\<cek et al., 2014)", mir), nil
}

// ProfileNote returns the _pd_proc_ls_profile_function text for the active
// phase, or "" if its profile function is not the TCH pseudo-Voigt. G~P~ and
// the L~Xe~ term are left out entirely when zero; the remaining zero
// coefficients print as a literal 0.
func (R *Record) ProfileNote() (string, error) {
	psel, err := R.activeSel()
	if err != nil {
		return "", errDecorate(err, "ProfileNote")
	}
	prof, err := psel.get("prof", R.File)
	if err != nil {
		return "", errDecorate(err, "ProfileNote")
	}
	if prof != profPseudoVoigt {
		return "", nil
	}
	v, s := R.Vals, R.SUs
	terms := []string{
		"G~U~ = " + coefString(v.GU, s.GU),
		"G~V~ = " + coefString(v.GV, s.GV),
		"G~W~ = " + coefString(v.GW, s.GW),
	}
	if v.GP != 0 {
		terms = append(terms, "G~P~ = "+coefString(v.GP, s.GP))
	}
	terms = append(terms, "L~X~ = "+coefString(v.LX, s.LX))
	if v.LXe != 0 {
		terms = append(terms, "L~Xe~ = "+coefString(v.LXe, s.LXe))
	}
	terms = append(terms, "L~Y~ = "+coefString(v.LY, s.LY))
	terms = append(terms, "L~Ye~ = "+coefString(v.LYe, s.LYe))
	note := "pseudo-Voigt profile in TCH approach (Thompson et al., 1987): " + strings.Join(terms, ", ")
	asymm, err := R.Sel.get("asymm", R.File)
	if err != nil {
		return "", errDecorate(err, "ProfileNote")
	}
	if asymm == "1" {
		note += fmt.Sprintf("; asymmetry correction according to Howard (1982): P = %s", coefString(v.Asym, s.Asym))
	}
	return note, nil
}

// BackgroundNote returns the _pd_proc_ls_background_function text, or "" if
// no manual background was used. With a polynomial-interpolation background
// it lists every Legendre coefficient in IUCr notation, numbered ordinally.
func (R *Record) BackgroundNote() (string, error) {
	manbckg, err := R.Sel.get("manbckg", R.File)
	if err != nil {
		return "", errDecorate(err, "BackgroundNote")
	}
	if manbckg != "1" {
		return "", nil
	}
	bckgtype, err := R.Sel.get("bckgtype", R.File)
	if err != nil {
		return "", errDecorate(err, "BackgroundNote")
	}
	if bckgtype != "0" {
		return "manual background (visual estimation, unrefined)", nil
	}
	n := len(R.Vals.Bckg)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("%s: %s", Ordinal(i+1), FormatIUCr(R.Vals.Bckg[i], R.SUs.Bckg[i]))
	}
	return fmt.Sprintf("manual background (visual estimation, unrefined) interpolated by %s Legendre polynomials (%s)", countWord(n), strings.Join(parts, ", ")), nil
}

// SpecialDetails returns the _pd_proc_ls_special_details text. The zero-point
// clause appears only when the shift printed in the log differs from the
// literal "0.000000"; the comparison is textual on purpose, matching what
// JANA prints for an unrefined shift.
func (R *Record) SpecialDetails() string {
	if R.RawZero == "0.000000" {
		return ""
	}
	return fmt.Sprintf("zero-point correction: %s", FormatIUCr(R.Vals.Zero, R.SUs.Zero))
}

// RFactorString is the R factor of the active phase, four decimals.
func (R *Record) RFactorString() string {
	return fmt.Sprintf("%.4f", R.RFactor)
}

// ExcludedStrings renders the excluded regions, in log order, in the form
// the excluded-regions loop expects. The trailing reason is left for the
// author to fill in.
func (R *Record) ExcludedStrings() []string {
	out := make([]string, len(R.Excluded))
	for i, e := range R.Excluded {
		out[i] = fmt.Sprintf("from %.2f to %.2f: ", e.From, e.To)
	}
	return out
}
