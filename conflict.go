/*
 * conflict.go, part of find-pair.
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

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//Result is the outcome of one resolution pass. Both slices are in
//enumeration order, and every bond in them carries its ConflictState.
type Result struct {
	Accepted []*HydrogenBond
	Rejected []*HydrogenBond
}

//resolveShortest keeps, for each atom, the shortest bond it takes part in.
//Candidates are visited by increasing distance (ties by enumeration order)
//and a candidate wins if neither of its atoms belongs to an earlier winner.
//If P is not nil, candidates outside its baseline distance band are
//dropped before the competition and do not appear in the result.
func resolveShortest(cands []*Candidate, P *SlotOptimizerParams) *Result {
	kept := make([]*Candidate, 0, len(cands))
	for _, c := range cands {
		if P != nil && (c.Distance < P.BaselineMinDistance || c.Distance > P.BaselineMaxDistance) {
			continue
		}
		kept = append(kept, c)
	}
	order := make([]int, len(kept))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return kept[order[i]].Distance < kept[order[j]].Distance
	})
	claimed := make(map[*Atom]bool)
	won := make([]bool, len(kept))
	for _, i := range order {
		c := kept[i]
		if claimed[c.DonorAtom] || claimed[c.AcceptorAtom] {
			continue
		}
		claimed[c.DonorAtom] = true
		claimed[c.AcceptorAtom] = true
		won[i] = true
	}
	return finalize(kept, won)
}

//finalize turns the candidates into bonds and tags the conflicts. A rejected
//bond that shares its donor and/or acceptor atom with an accepted bond is
//tagged with what it shares, and those accepted bonds become winners.
func finalize(cands []*Candidate, won []bool) *Result {
	bonds := make([]*HydrogenBond, len(cands))
	owners := make(map[*Atom][]*HydrogenBond)
	for i, c := range cands {
		bonds[i] = bondFromCandidate(c)
		if won[i] {
			owners[c.DonorAtom] = append(owners[c.DonorAtom], bonds[i])
			owners[c.AcceptorAtom] = append(owners[c.AcceptorAtom], bonds[i])
		}
	}
	res := new(Result)
	for i, b := range bonds {
		if won[i] {
			continue
		}
		d, a := owners[b.DonorAtom], owners[b.AcceptorAtom]
		switch {
		case len(d) > 0 && len(a) > 0:
			b.Conflict = SharesBothWithWinner
		case len(d) > 0:
			b.Conflict = SharesDonorWithWinner
		case len(a) > 0:
			b.Conflict = SharesAcceptorWithWinner
		}
		for _, w := range d {
			w.Conflict = IsConflictWinner
		}
		for _, w := range a {
			w.Conflict = IsConflictWinner
		}
	}
	for i, b := range bonds {
		if won[i] {
			res.Accepted = append(res.Accepted, b)
		} else {
			res.Rejected = append(res.Rejected, b)
		}
	}
	return res
}

//Networks returns the groups of accepted bonds connected through shared
//atoms, such as the bonds of a base triple. Each group is sorted by bond
//index, and groups are sorted by their first bond.
func (R *Result) Networks() [][]*HydrogenBond {
	if len(R.Accepted) == 0 {
		return nil
	}
	ids := make(map[*Atom]int64)
	id := func(a *Atom) int64 {
		if v, ok := ids[a]; ok {
			return v
		}
		v := int64(len(ids))
		ids[a] = v
		return v
	}
	g := simple.NewUndirectedGraph()
	for _, b := range R.Accepted {
		d, a := id(b.DonorAtom), id(b.AcceptorAtom)
		if d == a {
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(d), simple.Node(a)))
	}
	comp := make(map[int64]int)
	for i, c := range topo.ConnectedComponents(g) {
		for _, n := range c {
			comp[n.ID()] = i
		}
	}
	groups := make(map[int][]*HydrogenBond)
	var keys []int
	for _, b := range R.Accepted {
		k, ok := comp[id(b.DonorAtom)]
		if !ok {
			continue
		}
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], b)
	}
	ret := make([][]*HydrogenBond, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		sort.SliceStable(g, func(i, j int) bool { return g[i].Index < g[j].Index })
		ret = append(ret, g)
	}
	sort.SliceStable(ret, func(i, j int) bool { return ret[i][0].Index < ret[j][0].Index })
	return ret
}
