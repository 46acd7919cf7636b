/*
 * fields.go, part of gocif.
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
	"strconv"
	"strings"
)

//fieldWidth is the width, in characters, of one numeric field in the
//parameter lines of a *.m41 log.
const fieldWidth = 9

//readFieldsRaw slices the first count*width characters of line into count
//adjacent width-character fields and returns them untrimmed, in order.
func readFieldsRaw(line string, count, width int) ([]string, error) {
	if len(line) < count*width {
		return nil, CError{Kind: ErrFormat, message: fmt.Sprintf("%s: want %d fields of width %d, line has %d characters", ShortLine, count, width, len(line))}
	}
	raw := make([]string, count)
	for i := 0; i < count; i++ {
		raw[i] = line[i*width : (i+1)*width]
	}
	return raw, nil
}

//readFields parses the first count*width characters of line as count
//adjacent fixed-width decimal numbers, left to right. Fields may carry a
//leading sign and surrounding blanks.
func readFields(line string, count, width int) ([]float64, error) {
	raw, err := readFieldsRaw(line, count, width)
	if err != nil {
		return nil, errDecorate(err, "readFields")
	}
	vals := make([]float64, count)
	for i, r := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(r), 64)
		if err != nil {
			return nil, CError{Kind: ErrFormat, message: fmt.Sprintf("%s: field %d %q: %s", WrongFormat, i+1, r, err.Error()), deco: []string{"readFields"}}
		}
		vals[i] = v
	}
	return vals, nil
}
