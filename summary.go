/*
 * summary.go, part of find-pair.
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

package hbond

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Summary collects a few statistics over a set of bonds.
type Summary struct {
	N             int
	Standard      int
	NonStandard   int
	Invalid       int
	Conflicts     int //bonds tagged as winners of a conflict
	MinDistance   float64
	MaxDistance   float64
	MeanDistance  float64
	StdDistance   float64
	MeanAlignment float64
	ByContext     map[Context]int
}

//Summarize returns the statistics of bonds. The zero Summary (with an empty
//ByContext) is returned for an empty slice.
func Summarize(bonds []*HydrogenBond) Summary {
	S := Summary{ByContext: make(map[Context]int)}
	if len(bonds) == 0 {
		return S
	}
	dist := make([]float64, len(bonds))
	align := make([]float64, len(bonds))
	for i, b := range bonds {
		dist[i] = b.Distance
		align[i] = b.Alignment
		S.ByContext[b.Context]++
		switch b.Classification {
		case Standard:
			S.Standard++
		case NonStandard:
			S.NonStandard++
		default:
			S.Invalid++
		}
		if b.Conflict == IsConflictWinner {
			S.Conflicts++
		}
	}
	S.N = len(bonds)
	S.MinDistance = floats.Min(dist)
	S.MaxDistance = floats.Max(dist)
	S.MeanDistance, S.StdDistance = stat.MeanStdDev(dist, nil)
	if S.N == 1 {
		S.StdDistance = 0
	}
	S.MeanAlignment = stat.Mean(align, nil)
	return S
}
