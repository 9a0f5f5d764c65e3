/*
 * optimizer.go, part of find-pair.
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
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

//SlotOptimizer assigns candidates to hydrogen and lone-pair slots so that no
//atom takes more bonds than its slots allow. It must see every candidate
//touching an atom in a single call to Optimize, so candidates from all the
//residue pairs of a structure have to be pooled first.
//A SlotOptimizer keeps slot state between calls and is not safe for
//concurrent use.
type SlotOptimizer struct {
	params SlotOptimizerParams
	caches map[*Residue]*SlotCache
}

//NewSlotOptimizer returns an optimizer using the parameters in P.
func NewSlotOptimizer(P SlotOptimizerParams) *SlotOptimizer {
	return &SlotOptimizer{params: P, caches: make(map[*Residue]*SlotCache)}
}

//Params returns a copy of the optimizer parameters.
func (O *SlotOptimizer) Params() SlotOptimizerParams {
	return O.params
}

//Cache returns the slot cache of res, creating it if needed.
func (O *SlotOptimizer) Cache(res *Residue) *SlotCache {
	c, ok := O.caches[res]
	if !ok {
		c = NewSlotCache(res, O.params.slotCapacity())
		O.caches[res] = c
	}
	return c
}

//slotPair is one way of attaching a candidate.
type slotPair struct {
	h, lp     *Slot
	alignment float64
}

//pairs returns the possible slot pairs for c, best aligned first, and
//whether any of the slots involved has a direction.
func (O *SlotOptimizer) pairs(c *Candidate) ([]slotPair, bool) {
	hs := O.Cache(c.Donor).HSlots(c.DonorAtom)
	lps := O.Cache(c.Acceptor).LPSlots(c.AcceptorAtom)
	u := c.Direction()
	back := r3.Scale(-1, u)
	directional := false
	ret := make([]slotPair, 0, len(hs)*len(lps))
	for _, h := range hs {
		directional = directional || h.Directional
		for _, lp := range lps {
			ret = append(ret, slotPair{h: h, lp: lp, alignment: h.alignment(u) + lp.alignment(back)})
		}
	}
	for _, lp := range lps {
		directional = directional || lp.Directional
	}
	sort.SliceStable(ret, func(i, j int) bool { return ret[i].alignment > ret[j].alignment })
	return ret, directional
}

//Optimize resolves cands and returns the accepted and rejected bonds. All
//slots are emptied before the pass starts. In Baseline mode geometry is
//ignored and each atom keeps its shortest bond. In Optimized mode the
//candidates are visited by decreasing quality score (ties by enumeration
//order) and each takes the best aligned slot pair that still has room.
//The Alignment, HSlot and LPSlot fields of the candidates are set as a
//side effect. The bonds are not classified.
func (O *SlotOptimizer) Optimize(cands []*Candidate) *Result {
	for _, c := range O.caches {
		c.ResetSlots()
	}
	for _, c := range cands {
		c.HSlot, c.LPSlot, c.Alignment = -1, -1, 0
	}
	if O.params.Mode == Baseline {
		return resolveShortest(cands, &O.params)
	}
	P := &O.params
	options := make([][]slotPair, len(cands))
	directional := make([]bool, len(cands))
	for i, c := range cands {
		options[i], directional[i] = O.pairs(c)
		if len(options[i]) > 0 {
			c.Alignment = options[i][0].alignment
		}
	}
	order := make([]int, len(cands))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := cands[order[i]], cands[order[j]]
		return QualityScore(a.Distance, a.Alignment, P.AlignmentWeight) > QualityScore(b.Distance, b.Alignment, P.AlignmentWeight)
	})
	won := make([]bool, len(cands))
	for _, i := range order {
		c := cands[i]
		switch {
		case c.Distance > P.MaxDistance:
			O.reject(c, "too long")
			continue
		case directional[i] && c.Distance > P.ShortDistanceThreshold && c.Alignment < P.MinAlignment:
			O.reject(c, "poorly aligned")
			continue
		}
		u := c.Direction()
		back := r3.Scale(-1, u)
		for _, sp := range options[i] {
			if !sp.h.canAccept(u, c.Alignment, P) || !sp.lp.canAccept(back, c.Alignment, P) {
				continue
			}
			sp.h.occupy(u)
			sp.lp.occupy(back)
			c.HSlot, c.LPSlot = sp.h.Index, sp.lp.Index
			won[i] = true
			break
		}
		if !won[i] {
			O.reject(c, "no free slot")
		}
	}
	return finalize(cands, won)
}

func (O *SlotOptimizer) reject(c *Candidate, why string) {
	if ce := logger.Check(zap.DebugLevel, "candidate rejected"); ce != nil {
		ce.Write(zap.Stringer("candidate", c), zap.String("reason", why),
			zap.Float64("alignment", c.Alignment))
	}
}
