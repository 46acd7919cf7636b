/*
 * gocif.go, part of gocif.
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
	"path/filepath"
	"strings"
	"time"
)

// Version of the library, reported in _audit_creation_method.
const Version = "0.1.0"

// OutputFilename is the default name of the CIF written next to the inputs.
const OutputFilename = "JANA_CIF_Helper.cif"

//Stem strips a possible compression extension and then the log extension
//from an input file name, leaving the base both sibling logs share.
func Stem(input string) string {
	for _, ext := range compressedExts {
		input = strings.TrimSuffix(input, ext)
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}

// Extract reads the sibling *.m41 and *.ref logs that share the stem of
// input (which may name either of them) and returns the full Record for the
// given 1-based phase.
func Extract(input string, phase int) (*Record, error) {
	stem := Stem(input)
	m41 := stem + ".m41"
	mr, err := OpenLog(m41)
	if err != nil {
		return nil, errDecorate(err, "Extract")
	}
	R, err := M41Read(mr, m41, phase)
	mr.Close()
	if err != nil {
		return nil, errDecorate(err, "Extract")
	}
	ref := stem + ".ref"
	rr, err := OpenLog(ref)
	if err != nil {
		return nil, errDecorate(err, "Extract")
	}
	R.RFactor, err = RefRead(rr, ref, phase)
	rr.Close()
	if err != nil {
		return nil, errDecorate(err, "Extract")
	}
	return R, nil
}

// Process runs the whole conversion for one input pair: extract the Record,
// assemble the CIF block and write it to outname (or to OutputFilename next
// to the inputs, if outname is empty). Returns the Record for reporting.
func Process(input string, phase int, outname string) (*Record, error) {
	R, err := Extract(input, phase)
	if err != nil {
		return nil, errDecorate(err, "Process")
	}
	B, err := BuildCIF(R, time.Now().Format("2006-01-02"))
	if err != nil {
		return nil, errDecorate(err, "Process")
	}
	if outname == "" {
		outname = filepath.Join(filepath.Dir(Stem(input)), OutputFilename)
	}
	if err := B.WriteFile(outname, "global"); err != nil {
		return nil, errDecorate(err, "Process")
	}
	return R, nil
}
