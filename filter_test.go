/*
 * filter_test.go, part of find-pair.
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
)

func TestInteractionFilter(Te *testing.T) {
	res, err := NewFinder().FindAll(structure())
	require.NoError(Te, err)
	require.Len(Te, res.Accepted, 4)

	bb := NewInteractionFilter(BaseBase).Filter(res.Accepted)
	assert.Len(Te, bb, 3)
	lig := NewInteractionFilter(NucleicLigand).Filter(res.Accepted)
	require.Len(Te, lig, 1)
	assert.Same(Te, res.Accepted[3], lig[0], "filtering does not copy bonds")
	assert.Len(Te, NewInteractionFilter().Filter(res.Accepted), 4)
	assert.Empty(Te, NewInteractionFilter(ProteinProtein).Filter(res.Accepted))

	F, err := ParseInteractionFilter("base-base, nucleic-ligand")
	require.NoError(Te, err)
	assert.Len(Te, F.Filter(res.Accepted), 4)
	assert.False(Te, F.Allows(SugarSugar))
	_, err = ParseInteractionFilter("base-base,nope")
	assert.Error(Te, err)
	F, err = ParseInteractionFilter("")
	require.NoError(Te, err)
	assert.True(Te, F.Allows(LigandLigand))
}

func TestSummarize(Te *testing.T) {
	res, err := NewFinder().FindAll(structure())
	require.NoError(Te, err)
	S := Summarize(res.Accepted)
	assert.Equal(Te, 4, S.N)
	assert.Equal(Te, 3, S.Standard)
	assert.Equal(Te, 1, S.NonStandard)
	assert.Equal(Te, 0, S.Invalid)
	assert.Equal(Te, 3, S.ByContext[BaseBase])
	assert.InDelta(Te, 2.866, S.MinDistance, 1e-3)
	assert.InDelta(Te, 3.001, S.MaxDistance, 1e-3)
	assert.InDelta(Te, (2.866+2.999+3.001+2.9)/4, S.MeanDistance, 1e-3)
	assert.Greater(Te, S.StdDistance, 0.0)

	one := Summarize(res.Accepted[:1])
	assert.Equal(Te, 0.0, one.StdDistance)
	assert.Equal(Te, 0, Summarize(nil).N)
}

func TestNetworks(Te *testing.T) {
	g, c := wcPair()
	D := NewDetector(ModernDetectionParams())
	res := D.ResolvePair(D.BaseCandidates(g, c))
	nets := res.Networks()
	assert.Len(Te, nets, 3, "the three bonds share no atom")

	res, err := NewFinder().FindAll(structure())
	require.NoError(Te, err)
	nets = res.Networks()
	require.Len(Te, nets, 3)
	//N2 of the guanine bonds both the cytosine and the water.
	assert.Equal(Te, []string{"N2-O2", "N2-O"}, bondNames(nets[2]))
	assert.Empty(Te, new(Result).Networks())
}
