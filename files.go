/*
 * files.go, part of gocif.
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
	"compress/flate"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Archived refinements are often kept compressed; OpenLog hides that from
//the readers.

//compressedExts, in the order they are probed when the plain name is absent.
var compressedExts = []string{".zst", ".gz", ".flate"}

//logReader couples the decompressor stream with everything that has to be
//closed under it.
type logReader struct {
	io.Reader
	closers []io.Closer
}

func (l *logReader) Close() error {
	var err error
	for _, c := range l.closers {
		if e := c.Close(); e != nil {
			err = e
		}
	}
	return err
}

//zstdCloser adapts zstd.Decoder, whose Close returns nothing.
type zstdCloser struct {
	d *zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.d.Close()
	return nil
}

// OpenLog opens a log file for reading, decompressing transparently by
// extension: .zst (zstd), .gz (gzip) or .flate. If name itself does not
// exist, the compressed variants name.zst, name.gz and name.flate are tried
// in that order.
func OpenLog(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		for _, ext := range compressedExts {
			if f, err = os.Open(name + ext); err == nil {
				name = name + ext
				break
			}
		}
		if err != nil {
			return nil, CError{Kind: ErrIO, message: UnableToOpen + ": " + err.Error(), filename: name, deco: []string{"OpenLog"}}
		}
	}
	switch {
	case strings.HasSuffix(name, ".zst"):
		d, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, CError{Kind: ErrIO, message: UnableToOpen + ": " + err.Error(), filename: name, deco: []string{"OpenLog"}}
		}
		return &logReader{Reader: d, closers: []io.Closer{zstdCloser{d}, f}}, nil
	case strings.HasSuffix(name, ".gz"):
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, CError{Kind: ErrIO, message: UnableToOpen + ": " + err.Error(), filename: name, deco: []string{"OpenLog"}}
		}
		return &logReader{Reader: g, closers: []io.Closer{g, f}}, nil
	case strings.HasSuffix(name, ".flate"):
		d := flate.NewReader(f)
		return &logReader{Reader: d, closers: []io.Closer{d, f}}, nil
	}
	return f, nil
}
