/*
 * v3_test.go, part of find-pair.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(Te, err)
	assert.Equal(Te, 3, A.NVecs())
	assert.Equal(Te, r3.Vec{X: 4, Y: 5, Z: 6}, A.Vec(1))

	View := A.VecView(1)
	View.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0), "changes in a view must be seen in the matrix")

	_, err = NewMatrix([]float64{1, 2, 3, 4})
	assert.Error(Te, err)
}

func TestCentroid(Te *testing.T) {
	A, err := FromVecs([]r3.Vec{{X: 1}, {X: -1}, {Y: 2}, {Y: -2}})
	require.NoError(Te, err)
	c := A.Centroid()
	assert.InDelta(Te, 0, r3.Norm(c), 1e-12)
	A.SubVec(A, r3.Vec{X: 1, Y: 1, Z: 1})
	assert.Equal(Te, r3.Vec{X: 0, Y: -1, Z: -1}, A.Vec(0))
}

func TestBestPlane(Te *testing.T) {
	//A hexagon in a tilted plane.
	n := r3.Unit(r3.Vec{X: 1, Y: 1, Z: 1})
	u := r3.Unit(r3.Cross(n, r3.Vec{Z: 1}))
	w := r3.Cross(n, u)
	pts := make([]r3.Vec, 0, 6)
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		p := r3.Add(r3.Scale(1.4*math.Cos(a), u), r3.Scale(1.4*math.Sin(a), w))
		pts = append(pts, r3.Add(p, r3.Vec{X: 3, Y: -2, Z: 5}))
	}
	M, err := FromVecs(pts)
	require.NoError(Te, err)
	normal, err := BestPlane(M)
	require.NoError(Te, err)
	assert.InDelta(Te, 1, math.Abs(r3.Dot(normal, n)), 1e-9)
	assert.InDelta(Te, 1, r3.Norm(normal), 1e-9)

	again, err := BestPlane(M)
	require.NoError(Te, err)
	assert.Equal(Te, normal, again, "same input must give the same normal")
}

func TestBestPlaneDegenerate(Te *testing.T) {
	line, err := FromVecs([]r3.Vec{{X: 0}, {X: 1}, {X: 2}, {X: 3}})
	require.NoError(Te, err)
	_, err = BestPlane(line)
	assert.Error(Te, err)

	two, err := FromVecs([]r3.Vec{{X: 0}, {X: 1}})
	require.NoError(Te, err)
	_, err = BestPlane(two)
	assert.Error(Te, err)
}

func TestErrorDecorate(Te *testing.T) {
	two, err := FromVecs([]r3.Vec{{X: 0}, {X: 1}})
	require.NoError(Te, err)
	_, err = BestPlane(two)
	require.Error(Te, err)
	err = errDecorate(err, "caller")
	e, ok := err.(*Error)
	require.True(Te, ok)
	assert.Equal(Te, []string{"BestPlane", "caller"}, e.Deco())
	assert.True(Te, e.Critical())
	e.Decorate("outer")
	assert.Equal(Te, []string{"BestPlane", "caller", "outer"}, e.Deco())
}
