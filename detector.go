/*
 * detector.go, part of find-pair.
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

//Detector generates raw H-bond candidates between two residues.
//A Detector holds no mutable state, so the same one can be used
//from several goroutines at once.
type Detector struct {
	params HBondDetectionParams
	roles  *Registry
}

//NewDetector returns a Detector using the thresholds in P.
func NewDetector(P HBondDetectionParams) *Detector {
	return &Detector{params: P, roles: defaultRegistry}
}

//Params returns a copy of the detection parameters.
func (D *Detector) Params() HBondDetectionParams {
	return D.params
}

//BaseCandidates returns the candidates between base atoms of r1 and r2, using
//the base-base ceiling. Residues that are not nucleotides yield nothing.
func (D *Detector) BaseCandidates(r1, r2 *Residue) []*Candidate {
	return D.candidates(r1, r2, r1.Type, r2.Type, true)
}

//AllCandidates returns the candidates between any atoms of r1 and r2, which are
//taken to be of types m1 and m2. Each pair gets the ceiling of its context.
func (D *Detector) AllCandidates(r1, r2 *Residue, m1, m2 MoleculeType) []*Candidate {
	return D.candidates(r1, r2, m1, m2, false)
}

//candidates enumerates atom pairs in residue order, so the output is
//the same for the same input. The Index of each candidate is its position
//in the returned slice.
func (D *Detector) candidates(r1, r2 *Residue, m1, m2 MoleculeType, baseOnly bool) []*Candidate {
	if baseOnly && (!m1.IsNucleic() || !m2.IsNucleic()) {
		return nil
	}
	var ret []*Candidate
	for _, a1 := range r1.Atoms {
		if !D.params.AllowsElement(a1.Symbol()) {
			continue
		}
		n1 := NormalizeAtomName(a1.Name)
		c1 := classify(m1, n1)
		if baseOnly && c1 != classBase {
			continue
		}
		for _, a2 := range r2.Atoms {
			if !D.params.AllowsElement(a2.Symbol()) {
				continue
			}
			n2 := NormalizeAtomName(a2.Name)
			c2 := classify(m2, n2)
			if baseOnly && c2 != classBase {
				continue
			}
			ctx := BaseBase
			if !baseOnly {
				ctx = contextOf(m1, c1, m2, c2)
			}
			d := r3.Norm(r3.Sub(a2.Pos, a1.Pos))
			if d < D.params.MinDistance || d > D.params.Ceiling(ctx) {
				continue
			}
			c := D.orient(r1, a1, m1, r2, a2, m2, ctx)
			c.Index = len(ret)
			ret = append(ret, c)
		}
	}
	return ret
}

//orient builds the candidate with the donor first. When the roles do not decide,
//the atom from the first residue is taken as the donor.
func (D *Detector) orient(r1 *Residue, a1 *Atom, m1 MoleculeType, r2 *Residue, a2 *Atom, m2 MoleculeType, ctx Context) *Candidate {
	role1 := D.roles.Role(r1.Name, m1, r1.BaseType(), a1.Name)
	role2 := D.roles.Role(r2.Name, m2, r2.BaseType(), a2.Name)
	first := true
	switch {
	case role1 == Donor:
	case role2 == Donor, role1 == Acceptor && role2 != Acceptor:
		first = false
	}
	if first {
		return newCandidate(r1, r2, a1, a2, ctx)
	}
	return newCandidate(r2, r1, a2, a1, ctx)
}

//DetectBaseHBonds returns the H-bonds between the bases of r1 and r2 the
//way the classical tool finds them: candidates are resolved by distance
//alone, keeping the shortest bond for each atom, and then classified.
//The result is in enumeration order. An empty result is not an error.
func (D *Detector) DetectBaseHBonds(r1, r2 *Residue) []*HydrogenBond {
	return D.ResolvePair(D.BaseCandidates(r1, r2)).Accepted
}

//DetectAllHBondsBetween is DetectBaseHBonds over all atom pairs of r1 and r2,
//with the residues taken to be of types m1 and m2.
func (D *Detector) DetectAllHBondsBetween(r1, r2 *Residue, m1, m2 MoleculeType) []*HydrogenBond {
	return D.ResolvePair(D.AllCandidates(r1, r2, m1, m2)).Accepted
}

//ResolvePair resolves cands by distance only (see DetectBaseHBonds) and
//classifies both the accepted and the rejected bonds.
func (D *Detector) ResolvePair(cands []*Candidate) *Result {
	res := resolveShortest(cands, nil)
	for _, b := range res.Accepted {
		b.classify(D.roles, &D.params)
	}
	for _, b := range res.Rejected {
		b.classify(D.roles, &D.params)
	}
	return res
}
