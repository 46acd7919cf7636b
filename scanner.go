/*
 * scanner.go, part of gocif.
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
	"strings"
)

//lineScanner owns the read cursor over one log. Every section reader pulls
//lines through peek/advance, so the position is tracked in exactly one place.
type lineScanner struct {
	sc       *bufio.Scanner
	filename string
	pending  string
	peeked   bool
	eof      bool
}

func newLineScanner(r io.Reader, filename string) *lineScanner {
	return &lineScanner{sc: bufio.NewScanner(r), filename: filename}
}

//peek returns the next line without consuming it. The second return is false
//at end-of-file.
func (L *lineScanner) peek() (string, bool) {
	if L.peeked {
		return L.pending, true
	}
	if L.eof {
		return "", false
	}
	if !L.sc.Scan() {
		L.eof = true
		return "", false
	}
	L.pending = L.sc.Text()
	L.peeked = true
	return L.pending, true
}

//advance consumes and returns the next line.
func (L *lineScanner) advance() (string, bool) {
	line, ok := L.peek()
	L.peeked = false
	return line, ok
}

//skipTo consumes lines until one whose (blank-trimmed) prefix matches marker,
//and returns that line. Unmatched lines in between are skipped, which
//tolerates intervening formatting and comment lines. Reaching end-of-file
//first is an ErrMissingSection.
func (L *lineScanner) skipTo(marker string) (string, error) {
	for {
		line, ok := L.advance()
		if !ok {
			return "", CError{Kind: ErrMissingSection, message: fmt.Sprintf("%s: %q", MissingSection, marker), filename: L.filename, deco: []string{"skipTo"}}
		}
		if strings.HasPrefix(strings.TrimSpace(line), marker) {
			return line, nil
		}
	}
}

//mustAdvance consumes the next line, failing with ErrMissingSection at
//end-of-file. Used for the data lines that must follow a section marker.
func (L *lineScanner) mustAdvance(what string) (string, error) {
	line, ok := L.advance()
	if !ok {
		return "", CError{Kind: ErrMissingSection, message: fmt.Sprintf("%s: data line for %s", MissingSection, what), filename: L.filename, deco: []string{"mustAdvance"}}
	}
	return line, nil
}
