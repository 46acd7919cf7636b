/*
 * main.go, part of gocif.
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

//janacif converts parameters from JANA2006 output into standardized CIF
//items. Point it at either sibling log (*.m41 or *.ref) and it writes a
//short CIF with the extracted items next to them.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	cif "github.com/rmera/gocif"
	"github.com/spf13/pflag"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: janacif [options] input\n\n")
		fmt.Fprintf(os.Stderr, "janacif converts parameters from JANA2006 output into standardized CIF items.\n")
		fmt.Fprintf(os.Stderr, "input is the *.m41 or *.ref file of the refinement (either will do).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}
	phaseFlag := pflag.IntP("phase", "p", 1, "1-based index of the phase to extract")
	outputFlag := pflag.StringP("output", "o", "", "name of the output CIF (default "+cif.OutputFilename+" next to the input)")
	versionFlag := pflag.BoolP("version", "V", false, "print version information")
	pflag.Parse()

	if *versionFlag {
		fmt.Println("janacif v." + cif.Version)
		return
	}
	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	input := pflag.Arg(0)

	fmt.Printf("goCIF JANA helper v.%s\n\n", cif.Version)

	fmt.Print("Reading refinement logs ...")
	rec, err := cif.Extract(input, *phaseFlag)
	if err != nil {
		fail(err)
	}
	fmt.Println(" Done.")

	fmt.Print("Assembling CIF items ...")
	block, err := cif.BuildCIF(rec, time.Now().Format("2006-01-02"))
	if err != nil {
		fail(err)
	}
	fmt.Println(" Done.")

	outname := *outputFlag
	if outname == "" {
		outname = filepath.Join(filepath.Dir(cif.Stem(input)), cif.OutputFilename)
	}
	fmt.Printf("Writing to %s ...", outname)
	if err := block.WriteFile(outname, "global"); err != nil {
		fail(err)
	}
	fmt.Println(" Done.")
}

func fail(err error) {
	fmt.Println()
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
