/*
 * ciffile_test.go, part of gocif.
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
	"strings"
	"testing"
)

func TestBlockWrite(Te *testing.T) {
	B := NewBlock()
	B.Set("_refine_ls_matrix_type", "full")
	B.Set("_reflns_threshold_expression", `I>3\s(I)`)
	B.Set("_pd_proc_ls_special_details", "zero-point correction: 0.0123(4)")
	B.AddLoop([]string{"_pd_proc_info_excluded_regions"},
		[][]string{{"from 0.05 to 7.50: "}, {"from 158.00 to 160.11: "}})
	var sb strings.Builder
	if err := B.Write(&sb, "global"); err != nil {
		Te.Fatal(err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "data_global\n") {
		Te.Errorf("missing data block line:\n%s", out)
	}
	if !strings.Contains(out, "_refine_ls_matrix_type              full\n") {
		Te.Errorf("plain item miswritten:\n%s", out)
	}
	//a value with spaces is quoted
	if !strings.Contains(out, "'zero-point correction: 0.0123(4)'") {
		Te.Errorf("quoted item miswritten:\n%s", out)
	}
	if !strings.Contains(out, "loop_\n_pd_proc_info_excluded_regions\n 'from 0.05 to 7.50: '\n 'from 158.00 to 160.11: '\n") {
		Te.Errorf("loop miswritten:\n%s", out)
	}
}

//TestBlockWriteQuotes checks the quoting fallbacks: CIF has no escapes, so
//a value holding one quote style takes the other, and a value mixing both
//goes into a semicolon frame.
func TestBlockWriteQuotes(Te *testing.T) {
	B := NewBlock()
	B.Set("_pd_block_id", "the sample's scan")
	B.Set("_pd_calib_std_external", `said "standard"`)
	mixed := `a 'mixed' "value"`
	B.Set("_pd_char_special_details", mixed)
	var sb strings.Builder
	if err := B.Write(&sb, "global"); err != nil {
		Te.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, `"the sample's scan"`) {
		Te.Errorf("single quote not double-quoted:\n%s", out)
	}
	if !strings.Contains(out, `'said "standard"'`) {
		Te.Errorf("double quote not single-quoted:\n%s", out)
	}
	if !strings.Contains(out, "_pd_char_special_details\n;\n"+mixed+"\n;\n") {
		Te.Errorf("mixed quotes not framed:\n%s", out)
	}
	if strings.Contains(out, `\'`) {
		Te.Errorf("backslash escape leaked into the CIF:\n%s", out)
	}
}

func TestBlockWriteFrames(Te *testing.T) {
	B := NewBlock()
	long := "correction for a cylindrical sample with \\mR = 0.041 as implemented in\nJANA2006 (Pet\\<r\\'i\\<cek et al., 2014)"
	B.Set("_exptl_absorpt_process_details", long)
	var sb strings.Builder
	if err := B.Write(&sb, "global"); err != nil {
		Te.Fatal(err)
	}
	want := "_exptl_absorpt_process_details\n;\n" + long + "\n;\n"
	if !strings.Contains(sb.String(), want) {
		Te.Errorf("multi-line value not framed:\n%s", sb.String())
	}
}

func TestBuildCIF(Te *testing.T) {
	R := sampleRecord(Te)
	B, err := BuildCIF(R, "2025-06-01")
	if err != nil {
		Te.Fatal(err)
	}
	var sb strings.Builder
	if err := B.Write(&sb, "global"); err != nil {
		Te.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{
		"_audit_creation_date                2025-06-01",
		"_audit_creation_method",
		"cif_core.dic 2.4.5 ftp://ftp.iucr.org/pub/cif_core.dic",
		"_exptl_absorpt_correction_type      cylinder",
		"_refine_ls_R_I_factor               0.1235",
		"_pd_proc_info_excluded_regions",
		"pseudo-Voigt profile in TCH approach",
		"eight Legendre polynomials",
		"zero-point correction: 0.01234(12)",
		"_refine_ls_structure_factor_coef    Inet",
		"_refine_ls_weighting_details",
	} {
		if !strings.Contains(out, want) {
			Te.Errorf("CIF output lacks %q:\n%s", want, out)
		}
	}
}
