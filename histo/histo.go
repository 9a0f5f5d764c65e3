/*
 * histo.go, part of find-pair.
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

// Package histo builds fixed-bin histograms of bond properties, and
// matrices of them (one histogram per interaction context and property).
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Dividers returns n+1 evenly spaced bin edges from min to max.
func Dividers(min, max float64, n int) []float64 {
	if n < 1 || max <= min {
		panic("find-pair/histo.Dividers: need at least one bin and max > min")
	}
	return floats.Span(make([]float64, n+1), min, max)
}

// Data is a histogram. Values outside the dividers are counted in the
// total but in no bin.
type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

type dataJSON struct {
	ID         int       `json:"id"`
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(dataJSON{ID: D.id, Normalized: D.normalized, Total: D.total, Dividers: D.dividers, Histo: D.histo})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a dataJSON
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) < 2 || len(a.Histo) != len(a.Dividers)-1 {
		return fmt.Errorf("find-pair/histo: %d bins for %d dividers", len(a.Histo), len(a.Dividers))
	}
	D.id, D.normalized, D.total, D.dividers, D.histo = a.ID, a.Normalized, a.Total, a.Dividers, a.Histo
	return nil
}

// NewData returns a histogram with the given dividers, filled with
// rawdata, which can be nil. The optional ID defaults to -1.
// rawdata is not modified.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	if len(dividers) < 2 {
		panic("find-pair/histo.NewData: at least 2 dividers needed")
	}
	d := &Data{id: -1, dividers: append([]float64(nil), dividers...)}
	d.histo = make([]float64, len(dividers)-1)
	if len(ID) > 0 {
		d.id = ID[0]
	}
	if rawdata != nil {
		d.AddData(rawdata...)
	}
	return d
}

// ID returns the ID of the histogram.
func (D *Data) ID() int {
	return D.id
}

// Total returns the number of points added, including those outside the bins.
func (D *Data) Total() int {
	return D.total
}

// AddData adds the given points to the histogram.
func (D *Data) AddData(point ...float64) {
	if len(point) == 0 {
		return
	}
	norma := D.normalized
	D.UnNormalize()
	in := append([]float64(nil), point...)
	sort.Float64s(in)
	//stat.Histogram panics on values outside the dividers.
	lo := sort.SearchFloat64s(in, D.dividers[0])
	hi := sort.SearchFloat64s(in, D.dividers[len(D.dividers)-1])
	if hi > lo {
		floats.Add(D.histo, stat.Histogram(nil, D.dividers, in[lo:hi], nil))
	}
	D.total += len(point)
	if norma {
		D.Normalize()
	}
}

// Normalized returns true if the histogram is normalized.
func (D *Data) Normalized() bool {
	return D.normalized
}

// Normalize divides every bin by the total number of points.
func (D *Data) Normalize() {
	if D.normalized || D.total <= 0 {
		return
	}
	floats.Scale(1/float64(D.total), D.histo)
	D.normalized = true
}

// UnNormalize reverts Normalize.
func (D *Data) UnNormalize() {
	if !D.normalized {
		return
	}
	floats.Scale(float64(D.total), D.histo)
	D.normalized = false
}

// Dividers returns a copy of the bin edges.
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

// View returns the bins. Changes to the slice change the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

// Sum returns the sum of all the bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

// Add sets the receiver to the sum of a and b, which must be
// unnormalized and have the same dividers.
func (D *Data) Add(a, b *Data) error {
	if !floats.Equal(a.dividers, b.dividers) {
		return fmt.Errorf("find-pair/histo.Data.Add: dividers don't match")
	}
	if a.normalized || b.normalized {
		return fmt.Errorf("find-pair/histo.Data.Add: normalized histograms can't be added")
	}
	h := make([]float64, len(a.histo))
	floats.AddTo(h, a.histo, b.histo)
	D.dividers = a.Dividers()
	D.histo = h
	D.total = a.total + b.total
	D.normalized = false
	return nil
}

// String returns a 3-line representation of the histogram.
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

// Matrix is a row-major matrix of histograms sharing the same dividers.
type Matrix struct {
	rows, cols int
	d          []*Data
	dividers   []float64
}

// NewMatrix returns a matrix of r*c empty histograms with the given dividers.
func NewMatrix(r, c int, dividers []float64) *Matrix {
	M := &Matrix{rows: r, cols: c, d: make([]*Data, r*c), dividers: append([]float64(nil), dividers...)}
	for i := range M.d {
		M.d[i] = NewData(dividers, nil, i)
	}
	return M
}

func (M *Matrix) Dims() (int, int) {
	return M.rows, M.cols
}

func (M *Matrix) rc2i(r, c int) int {
	if r < 0 || r >= M.rows || c < 0 || c >= M.cols {
		panic(fmt.Sprintf("find-pair/histo.Matrix: index %d,%d out of range", r, c))
	}
	return M.cols*r + c
}

// View returns the histogram in the r,c position.
func (M *Matrix) View(r, c int) *Data {
	return M.d[M.rc2i(r, c)]
}

// AddData adds points to the histogram in the r,c position.
func (M *Matrix) AddData(r, c int, point ...float64) {
	M.d[M.rc2i(r, c)].AddData(point...)
}

// NormalizeAll normalizes every histogram in the matrix.
func (M *Matrix) NormalizeAll() {
	for _, v := range M.d {
		v.Normalize()
	}
}

// FromAll applies f to each histogram and returns the results by row and column.
func (M *Matrix) FromAll(f func(D *Data) (float64, error)) ([][]float64, error) {
	r := make([][]float64, M.rows)
	for i := 0; i < M.rows; i++ {
		r[i] = make([]float64, M.cols)
		for j := 0; j < M.cols; j++ {
			var err error
			r[i][j], err = f(M.d[M.rc2i(i, j)])
			if err != nil {
				return nil, fmt.Errorf("find-pair/histo.Matrix.FromAll: error at %d, %d: %v", i, j, err)
			}
		}
	}
	return r, nil
}

type matrixJSON struct {
	Rows     int       `json:"rows"`
	Cols     int       `json:"cols"`
	D        []*Data   `json:"data"`
	Dividers []float64 `json:"dividers"`
}

func (M *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(matrixJSON{Rows: M.rows, Cols: M.cols, D: M.d, Dividers: M.dividers})
}

func (M *Matrix) UnmarshalJSON(b []byte) error {
	var a matrixJSON
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.D) != a.Rows*a.Cols {
		return fmt.Errorf("find-pair/histo: %d histograms for a %dx%d matrix", len(a.D), a.Rows, a.Cols)
	}
	M.rows, M.cols, M.d, M.dividers = a.Rows, a.Cols, a.D, a.Dividers
	return nil
}
