/*
 * gocoords.go, part of find-pair.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// String returns a neat string representation of a Matrix.
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r+2)
	v = append(v, "[")
	for i := 0; i < r; i++ {
		p := F.Vec(i)
		v = append(v, fmt.Sprintf(" %6.2f %6.2f %6.2f", p.X, p.Y, p.Z))
	}
	v = append(v, " ]")
	return strings.Join(v, "\n")
}

// Centroid returns the geometric center of the vectors in F.
func (F *Matrix) Centroid() r3.Vec {
	var c r3.Vec
	n := F.NVecs()
	for i := 0; i < n; i++ {
		c = r3.Add(c, F.Vec(i))
	}
	return r3.Scale(1/float64(n), c)
}

// SubVec subtracts vec from each vector of A, putting the result in the receiver.
// A and the receiver can be the same Matrix.
func (F *Matrix) SubVec(A *Matrix, vec r3.Vec) {
	n := A.NVecs()
	if F.NVecs() != n {
		panic(ErrNotEnoughElements)
	}
	for i := 0; i < n; i++ {
		F.SetVec(i, r3.Sub(A.Vec(i), vec))
	}
}

// Scatter returns the 3x3 scatter matrix (sum of outer products) of the
// vectors in F around their centroid.
func (F *Matrix) Scatter() *mat.SymDense {
	n := F.NVecs()
	centered := Zeros(n)
	centered.SubVec(F, F.Centroid())
	S := mat.NewSymDense(3, nil)
	S.SymOuterK(1, centered.T())
	return S
}
