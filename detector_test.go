/*
 * detector_test.go, part of find-pair.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// TestWatsonCrickLegacy checks the classical result for a G:C pair: three
// standard bonds, every other candidate losing to them.
func TestWatsonCrickLegacy(Te *testing.T) {
	g, c := wcPair()
	D := NewDetector(LegacyDetectionParams())
	bonds := D.DetectBaseHBonds(g, c)
	require.Len(Te, bonds, 3)
	assert.Equal(Te, []string{"N4-O6", "N1-N3", "N2-O2"}, bondNames(bonds))
	want := []float64{2.999, 3.001, 2.866}
	for i, b := range bonds {
		assert.Equal(Te, Standard, b.Classification, b.String())
		assert.Equal(Te, byte('-'), b.Type)
		assert.InDelta(Te, want[i], b.Distance, 0.001)
		assert.Equal(Te, IsConflictWinner, b.Conflict)
		assert.Equal(Te, 18, b.LinkageType())
	}

	res := D.ResolvePair(D.BaseCandidates(g, c))
	assert.Len(Te, res.Rejected, 4)
	for _, b := range res.Rejected {
		assert.Equal(Te, SharesBothWithWinner, b.Conflict, b.String())
		assert.Equal(Te, 2, b.LinkageType())
	}
}

func TestWatsonCrickModern(Te *testing.T) {
	g, c := wcPair()
	D := NewDetector(ModernDetectionParams())
	cands := D.BaseCandidates(g, c)
	assert.Len(Te, cands, 3, "3.5 A ceiling leaves only the paired atoms")
	bonds := D.DetectBaseHBonds(c, g)
	require.Len(Te, bonds, 3)
	for _, b := range bonds {
		assert.Equal(Te, NoConflict, b.Conflict)
		assert.Equal(Te, Standard, b.Classification)
	}
}

func TestCandidateInvariants(Te *testing.T) {
	g, c := wcPair()
	D := NewDetector(LegacyDetectionParams())
	cands := D.AllCandidates(g, c, RNA, RNA)
	require.NotEmpty(Te, cands)
	for i, cd := range cands {
		assert.Equal(Te, i, cd.Index)
		d := r3.Norm(r3.Sub(cd.AcceptorAtom.Pos, cd.DonorAtom.Pos))
		assert.InDelta(Te, d, cd.Distance, 1e-12)
		assert.GreaterOrEqual(Te, cd.Distance, 1.8)
		assert.LessOrEqual(Te, cd.Distance, 4.0)
		assert.Equal(Te, -1, cd.HSlot)
		assert.Equal(Te, -1, cd.LPSlot)
	}
	again := D.AllCandidates(g, c, RNA, RNA)
	require.Len(Te, again, len(cands))
	for i := range cands {
		assert.Equal(Te, cands[i].String(), again[i].String())
	}
}

func TestDetectorContexts(Te *testing.T) {
	g, _ := wcPair()
	//a sugar hydroxyl 3.0 A from N3, and a phosphate oxygen 3.7 A from it.
	n3 := g.Atom("N3").Pos
	other := NewResidue("B.2", "A", RNA, 0, []*Atom{
		{Name: "O2'", Pos: r3.Add(n3, r3.Vec{X: -3.0})},
		{Name: "OP1", Pos: r3.Add(n3, r3.Vec{Y: 3.7})},
	})
	P := DSSRLikeDetectionParams()
	D := NewDetector(P)
	cands := D.AllCandidates(g, other, RNA, RNA)
	var ctx []Context
	for _, c := range cands {
		if c.DonorAtom.Name == "N3" || c.AcceptorAtom.Name == "N3" {
			ctx = append(ctx, c.Context)
		}
	}
	assert.Equal(Te, []Context{BaseSugar}, ctx, "the phosphate is beyond the 3.5 A base-backbone ceiling")
	assert.Empty(Te, D.BaseCandidates(g, other), "no base atoms on the other side")

	//OG along the lone pair of N3, away from every other polar atom of g.
	og := r3.Add(n3, r3.Scale(2.9, r3.Unit(r3.Vec{X: -0.946, Y: 0.325})))
	p := NewResidue("P.1", "SER", Protein, 0, []*Atom{{Name: "OG", Pos: og}})
	pc := D.AllCandidates(g, p, RNA, Protein)
	require.Len(Te, pc, 1)
	assert.Equal(Te, NucleicProtein, pc[0].Context)
	assert.Equal(Te, "OG", pc[0].DonorAtom.Name, "either against an acceptor donates")
	assert.Empty(Te, D.BaseCandidates(g, p))
}

func TestDetectorEmpty(Te *testing.T) {
	g, _ := wcPair()
	far := water("W.1", r3.Vec{X: 100})
	D := NewDetector(DefaultDetectionParams())
	assert.Empty(Te, D.DetectAllHBondsBetween(g, far, RNA, Ligand))
	assert.Empty(Te, D.DetectBaseHBonds(g, far))
}
