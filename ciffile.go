/*
 * ciffile.go, part of gocif.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//A small writer for the key/loop CIF container. Items and loops keep
//insertion order; values that need it are quoted or framed in semicolons.

// Loop is one loop_ construct: parallel item names and their rows.
type Loop struct {
	Names []string
	Rows  [][]string
}

type blockEntry struct {
	name  string
	value string
	loop  *Loop
}

// Block is one CIF data block under construction.
type Block struct {
	entries []blockEntry
}

func NewBlock() *Block {
	return &Block{}
}

// Set appends a single item. Items keep the order they were set in.
func (B *Block) Set(name, value string) {
	B.entries = append(B.entries, blockEntry{name: name, value: value})
}

// AddLoop appends a loop_ construct.
func (B *Block) AddLoop(names []string, rows [][]string) {
	B.entries = append(B.entries, blockEntry{loop: &Loop{Names: names, Rows: rows}})
}

//quoteValue renders one inline CIF value. Empty values become the CIF
//unknown marker. CIF has no escapes inside quoted strings, so a value
//holding one quote style is wrapped in the other.
func quoteValue(v string) string {
	if v == "" {
		return "?"
	}
	if strings.Contains(v, "'") {
		return `"` + v + `"`
	}
	if strings.ContainsAny(v, " \t\"") {
		return "'" + v + "'"
	}
	return v
}

//needsFrame reports whether a value must go in a semicolon frame rather
//than inline. Values mixing both quote styles cannot be quoted at all.
func needsFrame(name, value string) bool {
	return strings.Contains(value, "\n") || len(name)+len(value) > 75 ||
		(strings.Contains(value, "'") && strings.Contains(value, `"`))
}

// Write serializes the block, under the given data block name, to w.
func (B *Block) Write(w io.Writer, blockname string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "data_%s\n", blockname)
	for _, e := range B.entries {
		if e.loop != nil {
			fmt.Fprintln(bw, "loop_")
			for _, n := range e.loop.Names {
				fmt.Fprintf(bw, "%s\n", n)
			}
			for _, row := range e.loop.Rows {
				quoted := make([]string, len(row))
				for i, v := range row {
					quoted[i] = quoteValue(v)
				}
				fmt.Fprintf(bw, " %s\n", strings.Join(quoted, " "))
			}
			continue
		}
		if needsFrame(e.name, e.value) {
			fmt.Fprintf(bw, "%s\n;\n%s\n;\n", e.name, e.value)
		} else {
			fmt.Fprintf(bw, "%-35s %s\n", e.name, quoteValue(e.value))
		}
	}
	return bw.Flush()
}

// WriteFile serializes the block to a file.
func (B *Block) WriteFile(name, blockname string) error {
	f, err := os.Create(name)
	if err != nil {
		return CError{Kind: ErrIO, message: UnableToOpen + ": " + err.Error(), filename: name, deco: []string{"Block.WriteFile"}}
	}
	defer f.Close()
	return B.Write(f, blockname)
}

// BuildCIF assembles the CIF block for an extracted Record: the dictionary
// conformance loop, the provenance items, every narrative note the record
// calls for, the excluded-regions loop and the static refinement items.
// date is the creation date, already formatted as YYYY-MM-DD.
func BuildCIF(R *Record, date string) (*Block, error) {
	B := NewBlock()
	B.AddLoop(
		[]string{"_audit_conform_dict_name", "_audit_conform_dict_version", "_audit_conform_dict_location"},
		[][]string{
			{"cif_core.dic", "2.4.5", "ftp://ftp.iucr.org/pub/cif_core.dic"},
			{"cif_pd.dic", "1.0.1", "ftp://ftp.iucr.org/pub/cif_pd.dic"},
		})
	B.Set("_audit_creation_method", "goCIF JANA helper v."+Version)
	B.Set("_audit_creation_date", date)
	absnote, err := R.AbsorptionNote()
	if err != nil {
		return nil, errDecorate(err, "BuildCIF")
	}
	if absnote != "" {
		B.Set("_exptl_absorpt_correction_type", "cylinder")
		B.Set("_exptl_absorpt_process_details", absnote)
	}
	B.Set("_refine_ls_R_I_factor", R.RFactorString())
	if excluded := R.ExcludedStrings(); len(excluded) > 0 {
		rows := make([][]string, len(excluded))
		for i, s := range excluded {
			rows[i] = []string{s}
		}
		B.AddLoop([]string{"_pd_proc_info_excluded_regions"}, rows)
	}
	if sd := R.SpecialDetails(); sd != "" {
		B.Set("_pd_proc_ls_special_details", sd)
	}
	prof, err := R.ProfileNote()
	if err != nil {
		return nil, errDecorate(err, "BuildCIF")
	}
	if prof != "" {
		B.Set("_pd_proc_ls_profile_function", prof)
	}
	bckg, err := R.BackgroundNote()
	if err != nil {
		return nil, errDecorate(err, "BuildCIF")
	}
	if bckg != "" {
		B.Set("_pd_proc_ls_background_function", bckg)
	}
	B.Set("_reflns_threshold_expression", `I>3\s(I)`)
	B.Set("_refine_ls_structure_factor_coef", "Inet")
	B.Set("_refine_ls_matrix_type", "full")
	B.Set("_refine_ls_weighting_details", `w=1/[\s^2^(F~o~)+(0.01F~o~)^2^]`)
	return B, nil
}
