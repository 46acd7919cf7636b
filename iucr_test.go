/*
 * iucr_test.go, part of gocif.
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

import "testing"

//TestIUCrNoSU checks that a zero or absent uncertainty leaves the value
//untouched.
func TestIUCrNoSU(Te *testing.T) {
	for _, c := range []struct {
		avg  float64
		want string
	}{
		{1.234, "1.234"},
		{-0.5, "-0.5"},
		{0, "0"},
	} {
		if got := FormatIUCr(c.avg, 0); got != c.want {
			Te.Errorf("FormatIUCr(%v, 0) = %q, want %q", c.avg, got, c.want)
		}
	}
}

func TestIUCr(Te *testing.T) {
	cases := []struct {
		avg, su float64
		want    string
	}{
		{1.234, 0.056, "1.23(6)"},      //one significant digit
		{0.0234, 0.0005, "0.0234(5)"},  //two digits below the 0.195 cut
		{123.4, 4, "123(4)"},           //integral value
		{123.4, 40, "120(40)"},         //su above one decade
		{123.4, 15, "123(15)"},         //two digits, integral
		{-12.3, 0.9, "-12.3(9)"},       //sign stays on the average only
		{0.01, 0.0096, "0.010(10)"},    //carry: 0.0096 rounds across the decade
		{5.4321, 0.0987, "5.43(10)"},   //carry at the 0.950 boundary
		{0.123456, 0.005678, "0.123(6)"},
	}
	for _, c := range cases {
		if got := FormatIUCr(c.avg, c.su); got != c.want {
			Te.Errorf("FormatIUCr(%v, %v) = %q, want %q", c.avg, c.su, got, c.want)
		}
	}
}

//TestIUCrIdempotent checks that an already-rounded pair is a fixed point of
//the engine: formatting the rounded average with the rounded uncertainty
//reproduces the original string.
func TestIUCrIdempotent(Te *testing.T) {
	cases := []struct {
		avg, su           float64 //raw pair
		roundAvg, roundSu float64 //the pair the engine rounded them to
	}{
		{1.234, 0.056, 1.23, 0.06},
		{0.01, 0.0096, 0.010, 0.010},
		{123.4, 40, 120, 40},
		{-12.34, 0.91, -12.3, 0.9},
	}
	for _, c := range cases {
		first := FormatIUCr(c.avg, c.su)
		second := FormatIUCr(c.roundAvg, c.roundSu)
		if first != second {
			Te.Errorf("rounding (%v, %v) not a fixed point: %q then %q", c.avg, c.su, first, second)
		}
	}
}

func TestOrdinal(Te *testing.T) {
	want := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd",
	}
	for n, w := range want {
		if got := Ordinal(n); got != w {
			Te.Errorf("Ordinal(%d) = %q, want %q", n, got, w)
		}
	}
}

func TestCountWord(Te *testing.T) {
	if got := countWord(10); got != "ten" {
		Te.Errorf("countWord(10) = %q", got)
	}
	if got := countWord(35); got != "35" {
		Te.Errorf("countWord(35) = %q", got)
	}
}
