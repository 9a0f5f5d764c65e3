/*
 * hbplot.go, part of find-pair.
 *
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
 *
 */

// Package hbplot draws the distances and alignments of hydrogen bonds.
package hbplot

import (
	"fmt"
	"io"

	hbond "github.com/jyesselm/find-pair-sub004"
	"github.com/jyesselm/find-pair-sub004/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Size of the saved plots.
const (
	Width  = 5 * vg.Inch
	Height = 4 * vg.Inch
)

// ContextHistograms returns one distance histogram per context (rows) and
// classification (columns: invalid, standard, non-standard).
func ContextHistograms(bonds []*hbond.HydrogenBond, dividers []float64) *histo.Matrix {
	M := histo.NewMatrix(int(hbond.NumContexts), 3, dividers)
	for _, b := range bonds {
		M.AddData(int(b.Context), int(b.Classification), b.Distance)
	}
	return M
}

// DistanceHistogram returns a bar chart of the bond distances binned by
// dividers, and the histogram it was drawn from.
func DistanceHistogram(bonds []*hbond.HydrogenBond, dividers []float64, title string) (*plot.Plot, *histo.Data, error) {
	if len(bonds) == 0 {
		return nil, nil, fmt.Errorf("DistanceHistogram: no bonds to plot")
	}
	d := make([]float64, 0, len(bonds))
	for _, b := range bonds {
		d = append(d, b.Distance)
	}
	H := histo.NewData(dividers, d)
	bars, err := plotter.NewBarChart(plotter.Values(H.View()), vg.Points(12))
	if err != nil {
		return nil, nil, fmt.Errorf("DistanceHistogram: %w", err)
	}
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = vg.Length(0)
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Donor-acceptor distance (A)"
	p.Y.Label.Text = "Bonds"
	p.Add(plotter.NewGrid(), bars)
	labels := make([]string, len(H.View()))
	div := H.Dividers()
	for i := range labels {
		labels[i] = fmt.Sprintf("%.2f", (div[i]+div[i+1])/2)
	}
	p.NominalX(labels...)
	return p, H, nil
}

// AlignmentScatter plots the alignment of each bond against its distance,
// with one series per interaction context.
func AlignmentScatter(bonds []*hbond.HydrogenBond, title string) (*plot.Plot, error) {
	if len(bonds) == 0 {
		return nil, fmt.Errorf("AlignmentScatter: no bonds to plot")
	}
	var pts [hbond.NumContexts]plotter.XYs
	for _, b := range bonds {
		pts[b.Context] = append(pts[b.Context], plotter.XY{X: b.Distance, Y: b.Alignment})
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Donor-acceptor distance (A)"
	p.Y.Label.Text = "Alignment"
	//Constant axis
	p.Y.Min = 0
	p.Y.Max = 2
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	serie := 0
	for c, xy := range pts {
		if len(xy) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xy)
		if err != nil {
			return nil, fmt.Errorf("AlignmentScatter: %w", err)
		}
		s.GlyphStyle.Color = plotutil.Color(serie)
		s.GlyphStyle.Shape = plotutil.Shape(serie)
		p.Add(s)
		p.Legend.Add(hbond.Context(c).String(), s)
		serie++
	}
	return p, nil
}

// Save writes p to the file name. The format is taken from the extension.
func Save(p *plot.Plot, name string) error {
	return p.Save(Width, Height, name)
}

// Write writes p to w in the given format (png, svg, pdf, eps...).
func Write(p *plot.Plot, w io.Writer, format string) error {
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
