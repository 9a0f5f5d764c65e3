/*
 * slots_test.go, part of find-pair.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestComputeBaseNormal(Te *testing.T) {
	g, c := wcPair()
	ng, ok := ComputeBaseNormal(g)
	require.True(Te, ok)
	//The guanine ring goes N1->C2->N3 clockwise seen from +z.
	assert.InDelta(Te, -1, ng.Z, 1e-3)
	nc, ok := ComputeBaseNormal(c)
	require.True(Te, ok)
	assert.InDelta(Te, -1, nc.Z, 1e-3)

	again, _ := ComputeBaseNormal(g)
	assert.Equal(Te, ng, again)

	few := NewResidue("X.1", "A", RNA, 0, []*Atom{{Name: "N1"}, {Name: "C2", Pos: r3.Vec{X: 1}}})
	_, ok = ComputeBaseNormal(few)
	assert.False(Te, ok)
	_, ok = ComputeBaseNormal(water("W.1", r3.Vec{}))
	assert.False(Te, ok)
}

func TestPredictSlots(Te *testing.T) {
	g, c := wcPair()
	ng, _ := ComputeBaseNormal(g)
	nc, _ := ComputeBaseNormal(c)

	h := PredictHSlots('G', "N1", g, ng)
	require.Len(Te, h, 1)
	//the N1 hydrogen of G points at N3 of C.
	toN3 := r3.Unit(r3.Sub(c.Atom("N3").Pos, g.Atom("N1").Pos))
	assert.Greater(Te, r3.Dot(h[0].Dir, toN3), 0.99)

	amino := PredictHSlots('G', "N2", g, ng)
	require.Len(Te, amino, 2)
	axis := r3.Unit(r3.Sub(g.Atom("N2").Pos, g.Atom("C2").Pos))
	for _, s := range amino {
		assert.True(Te, s.Directional)
		assert.InDelta(Te, 1, r3.Norm(s.Dir), 1e-9)
		assert.InDelta(Te, 60, angleDeg(s.Dir, axis), 1e-6)
		assert.InDelta(Te, 0, r3.Dot(s.Dir, ng), 1e-2, "in the base plane")
	}
	assert.InDelta(Te, 120, angleDeg(amino[0].Dir, amino[1].Dir), 1e-6)

	lp := PredictLPSlots('C', "O2", c, nc)
	require.Len(Te, lp, 2)
	toN2 := r3.Unit(r3.Sub(g.Atom("N2").Pos, c.Atom("O2").Pos))
	best := math.Max(r3.Dot(lp[0].Dir, toN2), r3.Dot(lp[1].Dir, toN2))
	assert.Greater(Te, best, 0.9)

	assert.Empty(Te, PredictLPSlots('G', "N1", g, ng), "N1 of G has a hydrogen, not a lone pair")
	assert.Empty(Te, PredictHSlots('C', "O2", c, nc))
	assert.Empty(Te, PredictHSlots('G', "N2", g, r3.Vec{}), "no normal, no trigonal slots")

	broken := NewResidue("X.1", "G", RNA, 0, []*Atom{{Name: "N1"}, {Name: "C6", Pos: r3.Vec{X: 1}}})
	assert.Empty(Te, PredictHSlots('G', "N1", broken, r3.Vec{Z: 1}), "missing C2")
}

func TestSlotCache(Te *testing.T) {
	g, _ := wcPair()
	C := NewSlotCache(g, 2)
	n, ok := C.Normal()
	require.True(Te, ok)
	assert.InDelta(Te, 1, r3.Norm(n), 1e-9)

	h := C.HSlots(g.Atom("N2"))
	require.Len(Te, h, 2)
	assert.Equal(Te, 2, h[0].Capacity)
	assert.Same(Te, h[0], C.HSlots(g.Atom("N2"))[0], "slots are cached")
	assert.Empty(Te, C.LPSlots(g.Atom("N1")))
	assert.Len(Te, C.LPSlots(g.Atom("N7")), 1)
	assert.Empty(Te, C.HSlots(g.Atom("N9")), "N9 takes no bonds")

	h[0].occupy(r3.Vec{X: 1})
	C.ResetSlots()
	assert.Equal(Te, 0, h[0].Occupancy())
	assert.Same(Te, h[0], C.HSlots(g.Atom("N2"))[0], "reset keeps the geometry")

	C.Clear()
	assert.NotSame(Te, h[0], C.HSlots(g.Atom("N2"))[0])
}

func TestSlotCacheFallback(Te *testing.T) {
	w := water("W.1", r3.Vec{})
	C := NewSlotCache(w, 1)
	assert.Len(Te, C.HSlots(w.Atoms[0]), 2)
	lp := C.LPSlots(w.Atoms[0])
	require.Len(Te, lp, 2)
	assert.False(Te, lp[0].Directional)

	lys := NewResidue("P.1", "LYS", Protein, 0, []*Atom{{Name: "NZ"}})
	L := NewSlotCache(lys, 1)
	assert.Len(Te, L.HSlots(lys.Atoms[0]), 2)
	assert.Empty(Te, L.LPSlots(lys.Atoms[0]))

	pro := NewResidue("P.3", "PRO", Protein, 0, []*Atom{{Name: "N"}})
	P := NewSlotCache(pro, 1)
	assert.Empty(Te, P.HSlots(pro.Atoms[0]), "the main chain N of proline carries no hydrogen")
	assert.Len(Te, P.LPSlots(pro.Atoms[0]), 1)

	his := NewResidue("P.2", "HIS", Protein, 0, []*Atom{{Name: "ND1"}})
	assert.Len(Te, NewSlotCache(his, 1).LPSlots(his.Atoms[0]), 1, "nitrogen acceptors have one lone pair")

	//a guanine without C2: N1 keeps its single hydrogen, without direction.
	var atoms []atomSpec
	for _, a := range guanineAtoms {
		if a.name != "C2" {
			atoms = append(atoms, a)
		}
	}
	g := buildResidue("A.9", "G", RNA, atoms, false)
	h := NewSlotCache(g, 1).HSlots(g.Atom("N1"))
	require.Len(Te, h, 1)
	assert.False(Te, h[0].Directional)
}

func TestSlotBifurcation(Te *testing.T) {
	P := DefaultOptimizerParams()
	S := &Slot{Directional: true, Dir: r3.Vec{X: 1}, Capacity: 2}
	a := r3.Vec{X: 1}
	assert.True(Te, S.canAccept(a, 1.0, &P))
	S.occupy(a)
	assert.False(Te, S.canAccept(rotateZ(a, 30), 1.0, &P))
	assert.False(Te, S.canAccept(rotateZ(a, 50), 0.4, &P), "second occupant must be well aligned")
	assert.True(Te, S.canAccept(rotateZ(a, 50), 0.9, &P))
	S.occupy(rotateZ(a, 50))
	assert.False(Te, S.canAccept(rotateZ(a, -90), 2, &P), "full")
}
