/*
 * background.go, part of gocif.
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

/*Package cifplot draws quick previews of the manual background extracted
from a refinement, to eyeball that the Legendre coefficients were read in
the right order. Not part of the conversion pipeline.*/
package cifplot

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Legendre evaluates the Legendre series with the given coefficients at x,
// which must lie in [-1, 1]. Coefficient k multiplies the polynomial of
// degree k.
func Legendre(coeffs []float64, x float64) float64 {
	var sum float64
	pprev, p := 1.0, x //P0, P1
	for k, c := range coeffs {
		switch k {
		case 0:
			sum += c * pprev
		case 1:
			sum += c * p
		default:
			n := float64(k - 1)
			pnext := ((2*n+1)*x*p - n*pprev) / (n + 1)
			pprev, p = p, pnext
			sum += c * p
		}
	}
	return sum
}

//backgroundPoints samples the series over [lo, hi] 2theta, mapping the
//range onto the polynomials' [-1, 1] domain.
func backgroundPoints(coeffs []float64, lo, hi float64, n int) plotter.XYs {
	grid := floats.Span(make([]float64, n), lo, hi)
	pts := make(plotter.XYs, n)
	for i, t := range grid {
		x := 2*(t-lo)/(hi-lo) - 1
		pts[i].X = t
		pts[i].Y = Legendre(coeffs, x)
	}
	return pts
}

// Background renders the Legendre background series over [lo, hi] degrees
// 2theta and saves it as plotname.png. n is the number of sample points;
// values below 2 get a sensible default.
func Background(coeffs []float64, lo, hi float64, n int, title, plotname string) error {
	if len(coeffs) == 0 {
		return fmt.Errorf("cifplot: no background coefficients to plot")
	}
	if n < 2 {
		n = 200
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "2θ (deg)"
	p.Y.Label.Text = "Background (counts)"
	p.Add(plotter.NewGrid())
	line, err := plotter.NewLine(backgroundPoints(coeffs, lo, hi, n))
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(5*vg.Inch, 4*vg.Inch, fmt.Sprintf("%s.png", plotname))
}
