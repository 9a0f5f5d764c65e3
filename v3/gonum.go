/*
 * gonum.go, part of find-pair.
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

//gonum.go contains what is needed to handle the gonum types. Everything that
//touches mat.Dense directly should be here.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 0.000000000001 //Everything equal or less than this is considered zero.

// Matrix is a set of vectors in 3D space. Within the package a "vector" is
// a row, i.e. the cartesian coordinates of one point.
type Matrix struct {
	*mat.Dense
}

// Dense2Matrix wraps a Dense with 3 columns. It panics if A has a different number of columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	if _, c := A.Dims(); c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l == 0 || l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	return &Matrix{mat.NewDense(vecs, cols, make([]float64, cols*vecs))}
}

// FromVecs returns a Matrix with one row per vector in vs.
func FromVecs(vs []r3.Vec) (*Matrix, error) {
	if len(vs) == 0 {
		return nil, &Error{string(ErrNotEnoughElements), []string{"FromVecs"}, true}
	}
	F := Zeros(len(vs))
	for i, v := range vs {
		F.SetVec(i, v)
	}
	return F, nil
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// VecView returns a view of the ith vector of F. Changes in the view are
// reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// Vec returns a copy of the ith vector of F as an r3.Vec.
func (F *Matrix) Vec(i int) r3.Vec {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return r3.Vec{X: F.At(i, 0), Y: F.At(i, 1), Z: F.At(i, 2)}
}

// SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	F.Set(i, 0, v.X)
	F.Set(i, 1, v.Y)
	F.Set(i, 2, v.Z)
}

// symEigen returns the eigenvalues, in ascending order, and the corresponding
// eigenvectors (as columns) of the symmetric matrix S.
func symEigen(S *mat.SymDense) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if ok := es.Factorize(S, true); !ok {
		return nil, nil, &Error{string(ErrEigen), []string{"symEigen"}, true}
	}
	evals := es.Values(nil)
	evecs := new(mat.Dense)
	es.VectorsTo(evecs)
	return evals, evecs, nil
}

//Errors

// Error is the error type of the package. It mirrors the one in the main package
// to avoid a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Deco returns the functions the error went through, innermost first.
func (err *Error) Deco() []string { return err.deco }

// Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("v3: A Matrix should have 3 columns")
	ErrNotEnoughElements = PanicMsg("v3: not enough elements in Matrix")
	ErrEigen             = PanicMsg("v3: Can't obtain eigenvectors/eigenvalues of given matrix")
	ErrCollinear         = PanicMsg("v3: Points are collinear, no plane defined")
	ErrIndexOutOfRange   = PanicMsg("v3: index out of range")
)
