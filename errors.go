/*
 * errors.go, part of gocif.
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

import "fmt"

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else. If passed an empty string, Decorate should just return the
// current decoration slice, not add the empty string to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// Kind tells apart the failure modes of the extraction. All of them are
// fatal; no partial record survives any of them.
type Kind int

const (
	//ErrFormat means a fixed-width slice or a header token is not a valid number.
	ErrFormat Kind = iota
	//ErrMissingSection means a required marker never appeared before end-of-file.
	ErrMissingSection
	//ErrMissingKey means a selection flag was referenced before being set.
	ErrMissingKey
	//ErrShapeMismatch means the uncertainty pass produced a block with a different
	//shape than the value pass.
	ErrShapeMismatch
	//ErrIO means a log or output file could not be opened or written.
	ErrIO
)

// CError is the general structure for errors in this library. It fullfills cif.Error.
type CError struct {
	Kind     Kind
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
}

func (err CError) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("gocif: %s", err.message)
	}
	return fmt.Sprintf("gocif: file %s: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (err CError) Decorate(deco string) []string {
	//The append lands on the receiver's copy, so callers that want the
	//decoration to stick must keep the returned slice; inside the library
	//errDecorate does that by returning the decorated copy.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Messages for the different error kinds.
const (
	WrongFormat      = "Malformed numeric field"
	MissingSection   = "Required section not found"
	MissingKey       = "Selection key not set"
	ShapeMismatch    = "Value and uncertainty blocks differ in shape"
	ShortLine        = "Line too short for the requested fields"
	UnableToOpen     = "Unable to open file"
	MissingRefTokens = "Cycle summary line has too few tokens"
)

//errDecorate is a helper that decorates a CError with the caller's name
//before returning it. Other errors are returned untouched. The append
//happens on the copy that is returned, so the trail accumulates across
//calls even though CError travels by value.
func errDecorate(err error, caller string) error {
	cerr, ok := err.(CError)
	if !ok {
		return err
	}
	cerr.deco = append(cerr.deco, caller)
	return cerr
}
