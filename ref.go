/*
 * ref.go, part of gocif.
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

//rTokenIndex is the position of the R factor among the whitespace tokens of
//a cycle summary line (the last numeric token JANA prints there).
const rTokenIndex = 9

// RefRead extracts the R factor for the given 1-based phase from a *.ref
// cycle summary log. The value is taken from the last non-blank line of that
// phase's cycle block and converted from percent to a fraction.
func RefRead(r io.Reader, filename string, phase int) (float64, error) {
	sc := newLineScanner(r, filename)
	for i := 0; i < phase; i++ {
		if _, err := sc.skipTo(markerPhaseBlock); err != nil {
			return 0, errDecorate(err, "RefRead")
		}
	}
	last := ""
	for {
		line, ok := sc.peek()
		if !ok {
			break
		}
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, markerPhaseBlock) {
			break //next phase's block
		}
		sc.advance()
		if t != "" {
			last = t
		}
	}
	if last == "" {
		return 0, CError{Kind: ErrMissingSection, message: fmt.Sprintf("%s: no cycle lines for phase %d", MissingSection, phase), filename: filename, deco: []string{"RefRead"}}
	}
	f := strings.Fields(last)
	if len(f) <= rTokenIndex {
		return 0, CError{Kind: ErrFormat, message: fmt.Sprintf("%s: %q", MissingRefTokens, last), filename: filename, deco: []string{"RefRead"}}
	}
	v, err := strconv.ParseFloat(f[rTokenIndex], 64)
	if err != nil {
		return 0, CError{Kind: ErrFormat, message: fmt.Sprintf("%s: R factor token %q: %s", WrongFormat, f[rTokenIndex], err.Error()), filename: filename, deco: []string{"RefRead"}}
	}
	return v / 100, nil
}
