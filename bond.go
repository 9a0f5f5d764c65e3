/*
 * bond.go, part of find-pair.
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
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

//Candidate is a donor-acceptor pair that passed the distance and element
//filters. Candidates are created by a Detector and consumed by a SlotOptimizer.
type Candidate struct {
	Index        int //enumeration order, used to break ties
	Donor        *Residue
	Acceptor     *Residue
	DonorAtom    *Atom
	AcceptorAtom *Atom
	Distance     float64
	Alignment    float64 //in [0,2]
	HSlot        int     //-1 if unassigned
	LPSlot       int     //-1 if unassigned
	Context      Context
}

func newCandidate(don, acc *Residue, dat, aat *Atom, ctx Context) *Candidate {
	return &Candidate{
		Donor:        don,
		Acceptor:     acc,
		DonorAtom:    dat,
		AcceptorAtom: aat,
		Distance:     r3.Norm(r3.Sub(aat.Pos, dat.Pos)),
		HSlot:        -1,
		LPSlot:       -1,
		Context:      ctx,
	}
}

//Direction returns the unit vector from the donor to the acceptor atom.
func (C *Candidate) Direction() r3.Vec {
	return unit(r3.Sub(C.AcceptorAtom.Pos, C.DonorAtom.Pos))
}

//QualityScore returns the quality of a candidate. It is strictly decreasing in the
//distance and non-decreasing in the alignment (for weight>=0).
func QualityScore(distance, alignment, weight float64) float64 {
	return -distance + weight*alignment
}

func (C *Candidate) String() string {
	return fmt.Sprintf("%s:%s -> %s:%s %.3f", C.Donor.ID, NormalizeAtomName(C.DonorAtom.Name),
		C.Acceptor.ID, NormalizeAtomName(C.AcceptorAtom.Name), C.Distance)
}

//ConflictState tells how a bond relates to the bonds that won the competition
//for its atoms. Exactly one state applies to each bond.
type ConflictState int

const (
	NoConflict ConflictState = iota
	SharesDonorWithWinner
	SharesAcceptorWithWinner
	SharesBothWithWinner
	IsConflictWinner
)

func (S ConflictState) String() string {
	switch S {
	case SharesDonorWithWinner:
		return "SHARES_DONOR_WITH_WINNER"
	case SharesAcceptorWithWinner:
		return "SHARES_ACCEPTOR_WITH_WINNER"
	case SharesBothWithWinner:
		return "SHARES_BOTH_WITH_WINNER"
	case IsConflictWinner:
		return "IS_CONFLICT_WINNER"
	}
	return "NO_CONFLICT"
}

//LegacyLinkageType maps the state to the linkage code of the classical
//tool: each shared atom counts 1, a winner counts 9 per atom.
func (S ConflictState) LegacyLinkageType() int {
	switch S {
	case SharesDonorWithWinner, SharesAcceptorWithWinner:
		return 1
	case SharesBothWithWinner:
		return 2
	case IsConflictWinner:
		return 18
	}
	return 0
}

//HydrogenBond is a finalized bond. It is not modified after the pass that
//produced it returns.
type HydrogenBond struct {
	Index          int
	Donor          *Residue
	Acceptor       *Residue
	DonorAtom      *Atom
	AcceptorAtom   *Atom
	Distance       float64
	Alignment      float64
	HSlot          int
	LPSlot         int
	Context        Context
	Classification HBondClassification
	Type           byte
	Conflict       ConflictState
}

func bondFromCandidate(c *Candidate) *HydrogenBond {
	return &HydrogenBond{
		Index:        c.Index,
		Donor:        c.Donor,
		Acceptor:     c.Acceptor,
		DonorAtom:    c.DonorAtom,
		AcceptorAtom: c.AcceptorAtom,
		Distance:     c.Distance,
		Alignment:    c.Alignment,
		HSlot:        c.HSlot,
		LPSlot:       c.LPSlot,
		Context:      c.Context,
		Type:         Invalid.Char(),
	}
}

//LinkageType returns the legacy linkage code of the bond.
func (B *HydrogenBond) LinkageType() int {
	return B.Conflict.LegacyLinkageType()
}

func (B *HydrogenBond) String() string {
	return fmt.Sprintf("%s:%s %c %s:%s %.3f", B.Donor.ID, NormalizeAtomName(B.DonorAtom.Name), B.Type,
		B.Acceptor.ID, NormalizeAtomName(B.AcceptorAtom.Name), B.Distance)
}

//classify sets the classification and type character of the bond.
func (B *HydrogenBond) classify(R *Registry, P *HBondDetectionParams) {
	B.Classification = R.ValidateWithDistance(B.Donor, B.Acceptor, B.DonorAtom.Name, B.AcceptorAtom.Name, B.Distance, P)
	B.Type = B.Classification.Char()
}

//Classify sets the classification of each bond using the process-wide
//registry and the element and distance criteria in P.
func Classify(bonds []*HydrogenBond, P HBondDetectionParams) {
	for _, b := range bonds {
		b.classify(defaultRegistry, &P)
	}
}

//unit returns the unit vector along v, or the zero vector if v is too
//short to have a direction.
func unit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n < 1e-8 {
		return r3.Vec{}
	}
	return r3.Scale(1/n, v)
}
