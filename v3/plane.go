/*
 * plane.go, part of find-pair.
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
	"gonum.org/v1/gonum/spatial/r3"
)

// BestPlane returns the unit normal of the least-squares plane through the
// vectors in coords. The normal is the eigenvector of the scatter matrix with the
// smallest eigenvalue. Its sign is arbitrary but the same for the same
// input; callers that need a particular orientation must flip it themselves.
// At least 3 non-collinear points are needed.
func BestPlane(coords *Matrix) (r3.Vec, error) {
	if coords == nil || coords.NVecs() < 3 {
		return r3.Vec{}, &Error{string(ErrNotEnoughElements), []string{"BestPlane"}, true}
	}
	evals, evecs, err := symEigen(coords.Scatter())
	if err != nil {
		return r3.Vec{}, errDecorate(err, "BestPlane")
	}
	//two vanishing eigenvalues mean the points lie on a line.
	if evals[1] <= appzero*(1+evals[2]) {
		return r3.Vec{}, &Error{string(ErrCollinear), []string{"BestPlane"}, true}
	}
	normal := r3.Vec{X: evecs.At(0, 0), Y: evecs.At(1, 0), Z: evecs.At(2, 0)}
	normal = r3.Unit(normal)
	//Fix the sign so the largest component is positive. Only to make the
	//output independent of the eigensolver.
	if largest(normal) < 0 {
		normal = r3.Scale(-1, normal)
	}
	return normal, nil
}

func largest(v r3.Vec) float64 {
	l := v.X
	if abs(v.Y) > abs(l) {
		l = v.Y
	}
	if abs(v.Z) > abs(l) {
		l = v.Z
	}
	return l
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func errDecorate(err error, caller string) error {
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
	}
	return err
}
