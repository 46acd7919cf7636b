/*
 * iucr.go, part of gocif.
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
	"math"
	"strconv"
)

//roundTo rounds v to dec decimal places. dec may be negative, which rounds
//to tens, hundreds and so on.
func roundTo(v float64, dec int) float64 {
	s := math.Pow(10, float64(dec))
	return math.Round(v*s) / s
}

// FormatIUCr renders a central value and its standard uncertainty in the
// compact value(su) notation of the IUCr rules, e.g. 0.0234(5) or 123(4).
// The uncertainty keeps one significant digit, or two when its leading
// digits fall below 0.195 or when rounding would push it into the next
// decade (0.96 becomes 1.0, reported as two digits). A zero or negative su
// returns the plain decimal representation of average, unrounded.
func FormatIUCr(average, su float64) string {
	if su <= 0 {
		return strconv.FormatFloat(average, 'g', -1, 64)
	}
	p := int(math.Floor(math.Log10(su)))
	//first three significant digits of su, normalized into [0.100, 0.999]
	lead3 := math.Trunc(su*math.Pow(10, float64(2-p))) * math.Pow(10, float64(p-2))
	lead3 *= math.Pow(10, float64(-(p + 1)))
	var sig int
	switch {
	case lead3 < 0.195:
		sig = 2
	case lead3 < 0.950:
		sig = 1
	default:
		//rounding su up crosses into the next decade
		p++
		sig = 2
	}
	dec := sig - 1 - p
	if p > 0 {
		return fmt.Sprintf("%.0f(%.0f)", roundTo(average, dec), roundTo(su, dec))
	}
	digits := int(math.Round(roundTo(su, dec) * math.Pow(10, float64(dec))))
	return fmt.Sprintf("%.*f(%d)", dec, roundTo(average, dec), digits)
}

// Ordinal renders a 1-based count as an English ordinal: 1st, 2nd, 3rd,
// 4th, with the teens as exceptions (11th, 12th, 13th).
func Ordinal(n int) string {
	if t := n % 100; t >= 11 && t <= 13 {
		return strconv.Itoa(n) + "th"
	}
	switch n % 10 {
	case 1:
		return strconv.Itoa(n) + "st"
	case 2:
		return strconv.Itoa(n) + "nd"
	case 3:
		return strconv.Itoa(n) + "rd"
	}
	return strconv.Itoa(n) + "th"
}

var countWords = []string{"zero", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten", "eleven", "twelve"}

//countWord spells out small counts ("ten Legendre polynomials"); larger
//ones fall back to digits.
func countWord(n int) string {
	if n >= 0 && n < len(countWords) {
		return countWords[n]
	}
	return strconv.Itoa(n)
}
