/*
 * doc.go, part of gocif.
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

/*Package cif extracts refinement parameters from JANA2006 powder-refinement
logs and renders them as CIF items for pasting into a final CIF.



	**goCIF capabilities**


    Reads the *.m41 parameter log: refinement selections, excluded regions,
	per-phase profile selections, shift/background/asymmetry/profile
	coefficients and their standard uncertainties.

    Reads the R factor for the selected phase from the *.ref cycle summary.

    Rounds every (value, standard uncertainty) pair into the compact
	IUCr value(su) notation, including the decade-carry cases.

    Assembles the absorption, profile-function, background-function and
	special-details notes and writes a short CIF with the extracted and
	static items.

    Reads logs compressed with zstd, gzip or flate transparently, which is
	handy for archived refinements.

The cifplot subpackage draws a quick preview of the Legendre background
series, and cmd/janacif is the command-line frontend.

All functions in the library return typed errors implementing the cif.Error
interface; nothing here panics on malformed input.
*/
package cif
