/*
 * histo_test.go, part of find-pair.
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

package histo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData(Te *testing.T) {
	div := Dividers(2.5, 3.5, 4)
	assert.InDeltaSlice(Te, []float64{2.5, 2.75, 3, 3.25, 3.5}, div, 1e-12)
	raw := []float64{3.1, 2.9, 2.6, 3.3, 3.0, 4.0, 2.0, 3.4}
	D := NewData(div, raw, 7)
	assert.Equal(Te, 7, D.ID())
	assert.Equal(Te, 8, D.Total())
	assert.Equal(Te, []float64{1, 1, 2, 2}, D.View())
	assert.Equal(Te, 3.1, raw[0], "input not sorted in place")

	D.Normalize()
	assert.InDelta(Te, 6.0/8, D.Sum(), 1e-12)
	D.AddData(2.8, 2.8)
	assert.True(Te, D.Normalized())
	assert.InDelta(Te, 3.0/10, D.View()[1], 1e-12)
	D.UnNormalize()
	assert.InDeltaSlice(Te, []float64{1, 3, 2, 2}, D.View(), 1e-12)
	assert.Contains(Te, D.String(), "2.50-2.75")

	S := NewData(div, nil)
	require.NoError(Te, S.Add(D, NewData(div, []float64{3.45})))
	assert.InDeltaSlice(Te, []float64{1, 3, 2, 3}, S.View(), 1e-12)
	assert.Equal(Te, 11, S.Total())
	assert.Error(Te, S.Add(D, NewData(Dividers(0, 1, 4), nil)))
}

func TestMatrixJSON(Te *testing.T) {
	M := NewMatrix(2, 3, Dividers(0, 4, 4))
	M.AddData(1, 2, 0.5, 1.5, 1.7, 3.9, 6)
	r, c := M.Dims()
	assert.Equal(Te, 2, r)
	assert.Equal(Te, 3, c)
	assert.Equal(Te, 5, M.View(1, 2).ID())
	j, err := json.Marshal(M)
	require.NoError(Te, err)
	M2 := new(Matrix)
	require.NoError(Te, json.Unmarshal(j, M2))
	assert.Equal(Te, []float64{1, 2, 0, 1}, M2.View(1, 2).View())
	sums, err := M2.FromAll(func(D *Data) (float64, error) { return D.Sum(), nil })
	require.NoError(Te, err)
	assert.Equal(Te, [][]float64{{0, 0, 0}, {0, 0, 4}}, sums)
	assert.Panics(Te, func() { M.View(2, 0) })
	assert.Error(Te, json.Unmarshal([]byte(`{"rows":2,"cols":2,"data":[]}`), M2))
}
