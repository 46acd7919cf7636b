/*
 * m41.go, part of gocif.
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
	"io"
	"strconv"
	"strings"
)

//Section markers of the *.m41 log, in the order JANA2006 writes them.
//The header uses lowercase keywords; the parameter sections use titled
//marker lines, repeated once more for the standard uncertainties.
const (
	markerSkip       = "skip"
	markerPhaseSel   = "phase"
	markerEndHeader  = "end"
	markerShift      = "Shift parameters"
	markerBackground = "Background parameters"
	markerAsymmetry  = "Asymmetry parameters"
	markerPhaseBlock = "Phase"
	markerGaussian   = "Gaussian parameters"
	markerLorentzian = "Lorentzian parameters"
)

//profPseudoVoigt is the profile-function selector code JANA2006 uses for the
//TCH pseudo-Voigt.
const profPseudoVoigt = "2"

// Selections maps a header keyword to its raw string value. A key queried
// before being set is an ErrMissingKey, never a default.
type Selections map[string]string

func (S Selections) get(key, filename string) (string, error) {
	v, ok := S[key]
	if !ok {
		return "", CError{Kind: ErrMissingKey, message: fmt.Sprintf("%s: %q", MissingKey, key), filename: filename, deco: []string{"Selections.get"}}
	}
	return v, nil
}

func (S Selections) getInt(key, filename string) (int, error) {
	v, err := S.get(key, filename)
	if err != nil {
		return 0, errDecorate(err, "Selections.getInt")
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, CError{Kind: ErrFormat, message: fmt.Sprintf("%s: %s=%q: %s", WrongFormat, key, v, err.Error()), filename: filename, deco: []string{"Selections.getInt"}}
	}
	return n, nil
}

//tokenizePairs merges the whitespace tokens of a header line, taken as
//alternating keyword/value pairs, into S.
func (S Selections) tokenizePairs(line, filename string) error {
	f := strings.Fields(line)
	if len(f)%2 != 0 {
		return CError{Kind: ErrFormat, message: fmt.Sprintf("%s: odd token count in header line %q", WrongFormat, line), filename: filename, deco: []string{"tokenizePairs"}}
	}
	for i := 0; i < len(f); i += 2 {
		S[f[i]] = f[i+1]
	}
	return nil
}

// Region is one excluded scan range, in degrees 2theta. Regions keep the
// order they appear in the log; that order is the one emitted downstream.
type Region struct {
	From, To float64
}

// PhaseSelection holds the header selections of one phase, in file order.
type PhaseSelection struct {
	Sel Selections
}

// ParamBlock holds the named scalar parameters of one scan pass. The same
// structure serves both the refined values and, with identical shape, their
// standard uncertainties.
type ParamBlock struct {
	Zero, Cos, Sin   float64 //zero-point, cos and sin shift terms
	Bckg             []float64
	Asym             float64
	HasAsym          bool
	GU, GV, GW, GP   float64 //Gaussian profile coefficients
	LX, LXe, LY, LYe float64 //Lorentzian profile coefficients
}

// Record is everything extracted from one refinement: the header selections,
// the excluded regions, the per-phase selections, the refined values and
// their standard uncertainties for the active phase, and the R factor read
// from the *.ref log. Produced once, read-only afterwards.
type Record struct {
	File     string
	Sel      Selections
	Excluded []Region
	Phases   []PhaseSelection
	Phase    int //1-based index of the active phase
	Vals     ParamBlock
	SUs      ParamBlock
	//RawZero is the zero-point shift exactly as printed in the log. The
	//decision whether a zero-point correction was refined at all is textual,
	//against the literal "0.000000", mirroring what JANA prints for an
	//unrefined shift.
	RawZero string
	RFactor float64
}

//activeSel returns the selections of the active phase.
func (R *Record) activeSel() (Selections, error) {
	if R.Phase < 1 || R.Phase > len(R.Phases) {
		return nil, CError{Kind: ErrMissingSection, message: fmt.Sprintf("%s: phase %d (log has %d)", MissingSection, R.Phase, len(R.Phases)), filename: R.File, deco: []string{"activeSel"}}
	}
	return R.Phases[R.Phase-1].Sel, nil
}

// M41Read scans a *.m41 parameter log and returns the extracted Record for
// the given 1-based phase. The header is read first, then the refined values,
// then the standard uncertainties from the repeated markers further down the
// file. The R factor field is left zero; see RefRead.
func M41Read(r io.Reader, filename string, phase int) (*Record, error) {
	if phase < 1 {
		return nil, CError{Kind: ErrMissingSection, message: fmt.Sprintf("phase index must be 1-based, got %d", phase), filename: filename, deco: []string{"M41Read"}}
	}
	R := &Record{File: filename, Sel: Selections{}, Phase: phase}
	sc := newLineScanner(r, filename)
	if err := readHeader(sc, R); err != nil {
		return nil, errDecorate(err, "M41Read")
	}
	if phase > len(R.Phases) {
		return nil, CError{Kind: ErrMissingSection, message: fmt.Sprintf("%s: phase %d (header lists %d)", MissingSection, phase, len(R.Phases)), filename: filename, deco: []string{"M41Read"}}
	}
	vals, rawZero, err := readParamBlock(sc, R.Sel, phase, filename)
	if err != nil {
		return nil, errDecorate(err, "M41Read values")
	}
	sus, _, err := readParamBlock(sc, R.Sel, phase, filename)
	if err != nil {
		return nil, errDecorate(err, "M41Read uncertainties")
	}
	if len(vals.Bckg) != len(sus.Bckg) || vals.HasAsym != sus.HasAsym {
		return nil, CError{Kind: ErrShapeMismatch, message: ShapeMismatch, filename: filename, deco: []string{"M41Read"}}
	}
	R.Vals = vals
	R.SUs = sus
	R.RawZero = rawZero
	return R, nil
}

//readHeader consumes the header of the m41: keyword/value lines, excluded
//regions, per-phase selection captures, up to the end marker.
func readHeader(sc *lineScanner, R *Record) error {
	for {
		line, ok := sc.advance()
		if !ok {
			return CError{Kind: ErrMissingSection, message: fmt.Sprintf("%s: %q", MissingSection, markerEndHeader), filename: R.File, deco: []string{"readHeader"}}
		}
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		f := strings.Fields(t)
		switch f[0] {
		case markerEndHeader:
			return nil
		case markerSkip:
			if len(f) < 3 {
				return CError{Kind: ErrFormat, message: fmt.Sprintf("%s: excluded region line %q", WrongFormat, t), filename: R.File, deco: []string{"readHeader"}}
			}
			from, err1 := strconv.ParseFloat(f[1], 64)
			to, err2 := strconv.ParseFloat(f[2], 64)
			if err1 != nil || err2 != nil {
				return CError{Kind: ErrFormat, message: fmt.Sprintf("%s: excluded region line %q", WrongFormat, t), filename: R.File, deco: []string{"readHeader"}}
			}
			R.Excluded = append(R.Excluded, Region{From: from, To: to})
		case markerPhaseSel:
			ps := PhaseSelection{Sel: Selections{}}
			for i := 0; i < 2; i++ {
				pl, err := sc.mustAdvance("phase selections")
				if err != nil {
					return errDecorate(err, "readHeader")
				}
				if err := ps.Sel.tokenizePairs(pl, R.File); err != nil {
					return errDecorate(err, "readHeader")
				}
			}
			R.Phases = append(R.Phases, ps)
		default:
			if err := R.Sel.tokenizePairs(t, R.File); err != nil {
				return errDecorate(err, "readHeader")
			}
		}
	}
}

//readParamBlock reads one full parameter pass: shift terms, background
//coefficients, the asymmetry term when selected, and the profile
//coefficients of the requested phase. Called once for the refined values and
//once more, over the same scanner, for the standard uncertainties. Also
//returns the raw text of the zero-point field.
func readParamBlock(sc *lineScanner, sel Selections, phase int, filename string) (ParamBlock, string, error) {
	var B ParamBlock
	if _, err := sc.skipTo(markerShift); err != nil {
		return B, "", errDecorate(err, "readParamBlock")
	}
	line, err := sc.mustAdvance(markerShift)
	if err != nil {
		return B, "", errDecorate(err, "readParamBlock")
	}
	raw, err := readFieldsRaw(line, 3, fieldWidth)
	if err != nil {
		return B, "", errDecorate(err, "readParamBlock shift")
	}
	shift, err := readFields(line, 3, fieldWidth)
	if err != nil {
		return B, "", errDecorate(err, "readParamBlock shift")
	}
	B.Zero, B.Cos, B.Sin = shift[0], shift[1], shift[2]
	rawZero := strings.TrimSpace(raw[0])

	nbckg, err := sel.getInt("bckgnum", filename)
	if err != nil {
		return B, "", errDecorate(err, "readParamBlock")
	}
	if nbckg > 0 {
		if _, err := sc.skipTo(markerBackground); err != nil {
			return B, "", errDecorate(err, "readParamBlock")
		}
		B.Bckg = make([]float64, 0, nbckg)
		for len(B.Bckg) < nbckg {
			m := nbckg - len(B.Bckg)
			if m > 6 {
				m = 6
			}
			line, err := sc.mustAdvance(markerBackground)
			if err != nil {
				return B, "", errDecorate(err, "readParamBlock")
			}
			coeffs, err := readFields(line, m, fieldWidth)
			if err != nil {
				return B, "", errDecorate(err, "readParamBlock background")
			}
			B.Bckg = append(B.Bckg, coeffs...)
		}
	}

	asymm, err := sel.get("asymm", filename)
	if err != nil {
		return B, "", errDecorate(err, "readParamBlock")
	}
	if asymm == "1" {
		if _, err := sc.skipTo(markerAsymmetry); err != nil {
			return B, "", errDecorate(err, "readParamBlock")
		}
		line, err := sc.mustAdvance(markerAsymmetry)
		if err != nil {
			return B, "", errDecorate(err, "readParamBlock")
		}
		a, err := readFields(line, 1, fieldWidth)
		if err != nil {
			return B, "", errDecorate(err, "readParamBlock asymmetry")
		}
		B.Asym = a[0]
		B.HasAsym = true
	}

	//advance past the per-phase markers until we sit on the active phase
	for i := 0; i < phase; i++ {
		if _, err := sc.skipTo(markerPhaseBlock); err != nil {
			return B, "", errDecorate(err, "readParamBlock")
		}
	}
	if _, err := sc.skipTo(markerGaussian); err != nil {
		return B, "", errDecorate(err, "readParamBlock")
	}
	line, err = sc.mustAdvance(markerGaussian)
	if err != nil {
		return B, "", errDecorate(err, "readParamBlock")
	}
	g, err := readFields(line, 4, fieldWidth)
	if err != nil {
		return B, "", errDecorate(err, "readParamBlock Gaussian")
	}
	B.GU, B.GV, B.GW, B.GP = g[0], g[1], g[2], g[3]
	if _, err := sc.skipTo(markerLorentzian); err != nil {
		return B, "", errDecorate(err, "readParamBlock")
	}
	line, err = sc.mustAdvance(markerLorentzian)
	if err != nil {
		return B, "", errDecorate(err, "readParamBlock")
	}
	l, err := readFields(line, 4, fieldWidth)
	if err != nil {
		return B, "", errDecorate(err, "readParamBlock Lorentzian")
	}
	B.LX, B.LXe, B.LY, B.LYe = l[0], l[1], l[2], l[3]
	return B, rawZero, nil
}
