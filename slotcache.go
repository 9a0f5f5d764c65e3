/*
 * slotcache.go, part of find-pair.
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

import "gonum.org/v1/gonum/spatial/r3"

//SlotCache keeps the predicted slots of the atoms of one residue, and their
//occupancy during an assignment pass. The geometry is computed lazily, the
//first time an atom is asked for, and kept until Clear is called.
//A SlotCache is not safe for concurrent use.
type SlotCache struct {
	res      *Residue
	roles    *Registry
	capacity int

	normal     r3.Vec
	hasNormal  bool
	normalDone bool

	hslots  map[string][]*Slot
	lpslots map[string][]*Slot
}

//NewSlotCache returns an empty cache for res. Every slot it creates can hold
//up to capacity bonds.
func NewSlotCache(res *Residue, capacity int) *SlotCache {
	if capacity < 1 {
		capacity = 1
	}
	return &SlotCache{
		res:      res,
		roles:    defaultRegistry,
		capacity: capacity,
		hslots:   make(map[string][]*Slot),
		lpslots:  make(map[string][]*Slot),
	}
}

//Residue returns the residue the cache belongs to.
func (C *SlotCache) Residue() *Residue {
	return C.res
}

//Normal returns the base normal of the residue, computing it on the first call.
//The second value is false if the residue has no usable base plane.
func (C *SlotCache) Normal() (r3.Vec, bool) {
	if !C.normalDone {
		C.normal, C.hasNormal = ComputeBaseNormal(C.res)
		C.normalDone = true
	}
	return C.normal, C.hasNormal
}

//HSlots returns the hydrogen slots of atom, which must belong to the residue.
func (C *SlotCache) HSlots(atom *Atom) []*Slot {
	return C.slots(HSlot, atom)
}

//LPSlots returns the lone-pair slots of atom, which must belong to the residue.
func (C *SlotCache) LPSlots(atom *Atom) []*Slot {
	return C.slots(LPSlot, atom)
}

func (C *SlotCache) slots(kind SlotKind, atom *Atom) []*Slot {
	name := NormalizeAtomName(atom.Name)
	store, table := C.hslots, hSlotTable
	if kind == LPSlot {
		store, table = C.lpslots, lpSlotTable
	}
	if s, ok := store[name]; ok {
		return s
	}
	base := C.res.BaseType()
	var s []*Slot
	if C.res.Type.IsNucleic() && IsBaseAtom(name) {
		if n, ok := C.Normal(); ok {
			s = predictSlots(kind, table, base, name, C.res, n)
		}
		if s == nil {
			//geometry missing, keep the valence the table knows about.
			s = directionless(kind, tableSlots(table, base, name))
		}
	}
	if s == nil && tableSlots(table, base, name) == 0 {
		role := C.roles.ResidueRole(C.res, name)
		s = directionless(kind, fallbackCount(kind, role, atom.Symbol(), C.res.Type.IsNucleic()))
	}
	for _, v := range s {
		v.Capacity = C.capacity
	}
	store[name] = s
	return s
}

//ResetSlots empties every slot, keeping the geometry, so the cache can be
//used for a new pass.
func (C *SlotCache) ResetSlots() {
	for _, s := range C.hslots {
		for _, v := range s {
			v.reset()
		}
	}
	for _, s := range C.lpslots {
		for _, v := range s {
			v.reset()
		}
	}
}

//Clear drops all cached geometry. It must be called if the residue's
//coordinates change.
func (C *SlotCache) Clear() {
	C.hslots = make(map[string][]*Slot)
	C.lpslots = make(map[string][]*Slot)
	C.normal, C.hasNormal, C.normalDone = r3.Vec{}, false, false
}
