/*
 * slots.go, part of find-pair.
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

	v3 "github.com/jyesselm/find-pair-sub004/v3"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

//SlotKind tells whether a slot offers a hydrogen or a lone pair.
type SlotKind int

const (
	HSlot SlotKind = iota
	LPSlot
)

func (K SlotKind) String() string {
	if K == LPSlot {
		return "LP"
	}
	return "H"
}

//Slot is a place on an atom where one bond (two, under bifurcation) can attach.
//Directional slots carry the predicted direction of the hydrogen or lone pair.
//Slots built without geometry have a zero Dir and only count valence.
type Slot struct {
	Kind        SlotKind
	Index       int
	Dir         r3.Vec
	Directional bool
	Capacity    int
	occupants   []r3.Vec //bond directions, as seen from the slot's atom
}

//Occupancy returns the number of bonds currently held by the slot.
func (S *Slot) Occupancy() int {
	return len(S.occupants)
}

//alignment returns how well the bond direction dir (from the slot's atom)
//matches the slot, between 0 and 1.
func (S *Slot) alignment(dir r3.Vec) float64 {
	if !S.Directional {
		return 0
	}
	return math.Max(0, r3.Dot(S.Dir, dir))
}

//canAccept returns true if a bond along dir, with the given alignment score,
//can be added to the slot. An empty slot accepts anything, a second occupant
//must be far enough from the first and well aligned.
func (S *Slot) canAccept(dir r3.Vec, alignment float64, P *SlotOptimizerParams) bool {
	n := len(S.occupants)
	if n == 0 {
		return S.Capacity > 0
	}
	if n >= S.Capacity {
		return false
	}
	if alignment < P.MinBifurcationAlignment {
		return false
	}
	for _, o := range S.occupants {
		if angleDeg(o, dir) < P.MinBifurcationAngle {
			return false
		}
	}
	return true
}

func (S *Slot) occupy(dir r3.Vec) {
	S.occupants = append(S.occupants, dir)
}

func (S *Slot) reset() {
	S.occupants = S.occupants[:0]
}

//angleDeg returns the angle between two unit vectors, in degrees.
func angleDeg(a, b r3.Vec) float64 {
	c := r3.Dot(a, b)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c) * 180 / math.Pi
}

//ComputeBaseNormal returns the unit normal of the least-squares plane through
//the ring atoms of the residue's base. The normal points along (C2-N1)x(N3-C2),
//so the same geometry always gives the same vector. It returns false if the
//residue is not a nucleotide or fewer than 3 ring atoms are present.
func ComputeBaseNormal(res *Residue) (r3.Vec, bool) {
	ring := RingAtoms(res.BaseType())
	if ring == nil {
		return r3.Vec{}, false
	}
	pts := make([]r3.Vec, 0, len(ring))
	for _, name := range ring {
		if a := res.Atom(name); a != nil {
			pts = append(pts, a.Pos)
		}
	}
	if len(pts) < 3 {
		return r3.Vec{}, false
	}
	coords, err := v3.FromVecs(pts)
	if err != nil {
		return r3.Vec{}, false
	}
	normal, err := v3.BestPlane(coords)
	if err != nil {
		logger.Debug("no base plane", zap.String("residue", res.ID), zap.Error(err))
		return r3.Vec{}, false
	}
	n1, c2, n3 := res.Atom("N1"), res.Atom("C2"), res.Atom("N3")
	if n1 != nil && c2 != nil && n3 != nil {
		ref := r3.Cross(r3.Sub(c2.Pos, n1.Pos), r3.Sub(n3.Pos, c2.Pos))
		if r3.Dot(normal, ref) < 0 {
			normal = r3.Scale(-1, normal)
		}
	}
	return normal, true
}

//The slot tables give, for each base atom with predicted slots, the atoms the
//geometry is built from. Two references are the ring neighbours of a ring
//atom (one slot along the outward bisector); one reference is the parent
//of an exocyclic atom (two trigonal slots in the base plane).
var (
	pyrHSlots = map[string][]string{"N3": {"C2", "C4"}}

	hSlotTable = map[byte]map[string][]string{
		'A': {"N6": {"C6"}},
		'G': {"N1": {"C2", "C6"}, "N2": {"C2"}},
		'C': {"N4": {"C4"}},
		'U': pyrHSlots,
		'T': pyrHSlots,
	}

	pyrLPSlots = map[string][]string{"O2": {"C2"}, "O4": {"C4"}}

	lpSlotTable = map[byte]map[string][]string{
		'A': {"N1": {"C2", "C6"}, "N3": {"C2", "C4"}, "N7": {"C5", "C8"}},
		'G': {"O6": {"C6"}, "N3": {"C2", "C4"}, "N7": {"C5", "C8"}},
		'C': {"N3": {"C2", "C4"}, "O2": {"C2"}},
		'U': pyrLPSlots,
		'T': pyrLPSlots,
	}
)

//tableSlots returns the number of slots the table predicts for atom, or 0.
func tableSlots(table map[byte]map[string][]string, base byte, atom string) int {
	refs, ok := table[base][NormalizeAtomName(atom)]
	if !ok {
		return 0
	}
	if len(refs) == 1 {
		return 2
	}
	return 1
}

//PredictHSlots returns the hydrogen slots of the atom named atom in res,
//whose parent base is base and whose base normal is normal. The directions
//follow from the hybridization of the atom, whether or not hydrogens are
//present in the structure. Atoms without a table entry, or with missing
//reference atoms, yield no slots.
func PredictHSlots(base byte, atom string, res *Residue, normal r3.Vec) []*Slot {
	return predictSlots(HSlot, hSlotTable, base, atom, res, normal)
}

//PredictLPSlots is PredictHSlots for lone pairs.
func PredictLPSlots(base byte, atom string, res *Residue, normal r3.Vec) []*Slot {
	return predictSlots(LPSlot, lpSlotTable, base, atom, res, normal)
}

func predictSlots(kind SlotKind, table map[byte]map[string][]string, base byte, atom string, res *Residue, normal r3.Vec) []*Slot {
	refs, ok := table[base][NormalizeAtomName(atom)]
	if !ok || res == nil {
		return nil
	}
	center := res.Atom(atom)
	if center == nil {
		return nil
	}
	refPos := make([]r3.Vec, 0, len(refs))
	for _, name := range refs {
		a := res.Atom(name)
		if a == nil {
			return nil
		}
		refPos = append(refPos, a.Pos)
	}
	var dirs []r3.Vec
	switch len(refs) {
	case 2:
		d := r3.Add(unit(r3.Sub(center.Pos, refPos[0])), unit(r3.Sub(center.Pos, refPos[1])))
		if d = unit(d); d != (r3.Vec{}) {
			dirs = []r3.Vec{d}
		}
	case 1:
		dirs = trigonal(center.Pos, refPos[0], normal)
	}
	if len(dirs) == 0 {
		return nil
	}
	ret := make([]*Slot, len(dirs))
	for i, d := range dirs {
		ret[i] = &Slot{Kind: kind, Index: i, Dir: d, Directional: true, Capacity: 1}
	}
	return ret
}

//trigonal returns the two in-plane directions at 60 degrees from the
//parent->atom axis, or nil if the normal or the axis is degenerate.
func trigonal(atom, parent, normal r3.Vec) []r3.Vec {
	u := unit(r3.Sub(atom, parent))
	p := unit(r3.Cross(normal, u))
	if u == (r3.Vec{}) || p == (r3.Vec{}) {
		return nil
	}
	s := math.Sqrt(3) / 2
	return []r3.Vec{
		unit(r3.Add(r3.Scale(0.5, u), r3.Scale(s, p))),
		unit(r3.Sub(r3.Scale(0.5, u), r3.Scale(s, p))),
	}
}

//fallbackCount is the number of directionless slots of the given kind for an
//atom with no usable geometry. Atoms of unknown role outside nucleotides
//are treated as able to both donate and accept.
func fallbackCount(kind SlotKind, role HBondAtomRole, element string, nucleic bool) int {
	if role == Unknown && !nucleic {
		role = Either
	}
	switch kind {
	case HSlot:
		if role == Donor || role == Either {
			return 2
		}
	case LPSlot:
		if role != Acceptor && role != Either {
			return 0
		}
		if element == "N" {
			return 1
		}
		return 2
	}
	return 0
}

func directionless(kind SlotKind, n int) []*Slot {
	if n == 0 {
		return nil
	}
	ret := make([]*Slot, n)
	for i := range ret {
		ret[i] = &Slot{Kind: kind, Index: i, Capacity: 1}
	}
	return ret
}
