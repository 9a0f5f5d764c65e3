/*
 * params.go, part of find-pair.
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

import "strings"

//Context is the structural category of a pair of bonding atoms. Each
//context has its own distance ceiling.
type Context int

const (
	BaseBase Context = iota
	BaseBackbone
	BackboneBackbone
	BaseSugar
	SugarSugar
	SugarBackbone
	NucleicProtein
	ProteinProtein
	NucleicLigand
	ProteinLigand
	LigandLigand
	NumContexts
)

var contextNames = [NumContexts]string{
	"base-base",
	"base-backbone",
	"backbone-backbone",
	"base-sugar",
	"sugar-sugar",
	"sugar-backbone",
	"nucleic-protein",
	"protein-protein",
	"nucleic-ligand",
	"protein-ligand",
	"ligand-ligand",
}

func (C Context) String() string {
	if C < 0 || C >= NumContexts {
		return "unknown"
	}
	return contextNames[C]
}

//ParseContext returns the context with the given name (as returned by String).
func ParseContext(name string) (Context, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, v := range contextNames {
		if v == name {
			return Context(i), true
		}
	}
	return NumContexts, false
}

//contextOf determines the context of an atom of class c1 in a residue
//of type m1 bonding an atom of class c2 in a residue of type m2.
func contextOf(m1 MoleculeType, c1 atomClass, m2 MoleculeType, c2 atomClass) Context {
	n1, n2 := m1.IsNucleic(), m2.IsNucleic()
	switch {
	case n1 && n2:
		return nucleicContext(c1, c2)
	case m1 == Ligand && m2 == Ligand:
		return LigandLigand
	case m1 == Ligand || m2 == Ligand:
		if n1 || n2 {
			return NucleicLigand
		}
		return ProteinLigand
	case n1 || n2:
		return NucleicProtein
	}
	return ProteinProtein
}

func nucleicContext(c1, c2 atomClass) Context {
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	switch c1 {
	case classBase:
		switch c2 {
		case classBase:
			return BaseBase
		case classSugar:
			return BaseSugar
		}
		return BaseBackbone
	case classSugar:
		if c2 == classSugar {
			return SugarSugar
		}
		return SugarBackbone
	}
	return BackboneBackbone
}

//HBondDetectionParams holds the thresholds used to generate candidates.
//The values are not validated here; see the hbconf package.
type HBondDetectionParams struct {
	//Global minimum donor-acceptor distance, in A.
	MinDistance float64
	//Distance ceiling per context, in A.
	Thresholds [NumContexts]float64
	//Element symbols allowed to take part in a bond.
	Elements []string
	//NON_STANDARD bonds longer than this are classified INVALID.
	NonStandardMaxDistance float64
}

func uniformThresholds(d float64) [NumContexts]float64 {
	var t [NumContexts]float64
	for i := range t {
		t[i] = d
	}
	return t
}

//LegacyDetectionParams reproduces the classical base-pair H-bond criteria:
//only O and N, between 1.8 and 4.0 A.
func LegacyDetectionParams() HBondDetectionParams {
	return HBondDetectionParams{
		MinDistance:            1.8,
		Thresholds:             uniformThresholds(4.0),
		Elements:               []string{"O", "N"},
		NonStandardMaxDistance: 3.6,
	}
}

//ModernDetectionParams is the default set: tighter ceilings for all contexts.
func ModernDetectionParams() HBondDetectionParams {
	return HBondDetectionParams{
		MinDistance:            2.0,
		Thresholds:             uniformThresholds(3.5),
		Elements:               []string{"O", "N"},
		NonStandardMaxDistance: 3.4,
	}
}

//GeneralDetectionParams also admits sulfur, for protein and ligand work.
func GeneralDetectionParams() HBondDetectionParams {
	p := HBondDetectionParams{
		MinDistance:            2.0,
		Thresholds:             uniformThresholds(3.6),
		Elements:               []string{"O", "N", "S"},
		NonStandardMaxDistance: 3.6,
	}
	p.Thresholds[LigandLigand] = 3.3
	return p
}

//DSSRLikeDetectionParams keeps the long base-base ceiling but is tight
//everywhere else.
func DSSRLikeDetectionParams() HBondDetectionParams {
	p := HBondDetectionParams{
		MinDistance:            2.0,
		Thresholds:             uniformThresholds(3.5),
		Elements:               []string{"O", "N"},
		NonStandardMaxDistance: 3.5,
	}
	p.Thresholds[BaseBase] = 4.0
	return p
}

//DefaultDetectionParams returns the modern preset.
func DefaultDetectionParams() HBondDetectionParams {
	return ModernDetectionParams()
}

//DetectionPreset returns the preset with the given name: legacy, modern,
//general or dssr.
func DetectionPreset(name string) (HBondDetectionParams, bool) {
	switch strings.ToLower(name) {
	case "legacy", "legacy-compatible":
		return LegacyDetectionParams(), true
	case "modern", "":
		return ModernDetectionParams(), true
	case "general":
		return GeneralDetectionParams(), true
	case "dssr", "dssr-like":
		return DSSRLikeDetectionParams(), true
	}
	return HBondDetectionParams{}, false
}

//Ceiling returns the maximum distance allowed for context c.
func (P *HBondDetectionParams) Ceiling(c Context) float64 {
	return P.Thresholds[c]
}

//MaxCeiling returns the largest ceiling over all contexts.
func (P *HBondDetectionParams) MaxCeiling() float64 {
	var max float64
	for _, v := range P.Thresholds {
		if v > max {
			max = v
		}
	}
	return max
}

//AllowsElement returns true if the element symbol e can take part in a bond.
func (P *HBondDetectionParams) AllowsElement(e string) bool {
	for _, v := range P.Elements {
		if strings.EqualFold(v, e) {
			return true
		}
	}
	return false
}

//OptimizerMode selects how the SlotOptimizer resolves competing candidates.
type OptimizerMode int

const (
	//Optimized assigns slots greedily by quality score.
	Optimized OptimizerMode = iota
	//Baseline ignores geometry and keeps the shortest bond per atom.
	Baseline
)

func (M OptimizerMode) String() string {
	if M == Baseline {
		return "baseline"
	}
	return "optimized"
}

//SlotOptimizerParams configures the SlotOptimizer. Distances are in A,
//angles in degrees, alignments in the [0,2] range of the alignment score.
type SlotOptimizerParams struct {
	Mode OptimizerMode

	MaxDistance            float64
	ShortDistanceThreshold float64 //below this, alignment is not required
	MinAlignment           float64

	AllowBifurcation        bool
	MinBifurcationAngle     float64
	MinBifurcationAlignment float64

	AlignmentWeight float64

	BaselineMinDistance float64
	BaselineMaxDistance float64
}

//DefaultOptimizerParams returns the optimized preset. A 0.4 alignment weight
//lets a well aligned bond beat a badly aligned one about 0.25 A shorter.
func DefaultOptimizerParams() SlotOptimizerParams {
	return SlotOptimizerParams{
		Mode:                    Optimized,
		MaxDistance:             4.0,
		ShortDistanceThreshold:  3.4,
		MinAlignment:            0.3,
		AllowBifurcation:        true,
		MinBifurcationAngle:     43,
		MinBifurcationAlignment: 0.5,
		AlignmentWeight:         0.4,
		BaselineMinDistance:     1.8,
		BaselineMaxDistance:     4.0,
	}
}

//BaselineOptimizerParams returns the legacy-compatible preset.
func BaselineOptimizerParams() SlotOptimizerParams {
	p := DefaultOptimizerParams()
	p.Mode = Baseline
	return p
}

//StrictOptimizerParams returns a preset with shorter bonds, better alignment,
//and no bifurcation.
func StrictOptimizerParams() SlotOptimizerParams {
	return SlotOptimizerParams{
		Mode:                    Optimized,
		MaxDistance:             3.5,
		ShortDistanceThreshold:  3.0,
		MinAlignment:            0.6,
		AllowBifurcation:        false,
		MinBifurcationAngle:     60,
		MinBifurcationAlignment: 1.0,
		AlignmentWeight:         0.4,
		BaselineMinDistance:     2.0,
		BaselineMaxDistance:     3.5,
	}
}

//OptimizerPreset returns the preset with the given name: optimized, baseline
//or strict.
func OptimizerPreset(name string) (SlotOptimizerParams, bool) {
	switch strings.ToLower(name) {
	case "optimized", "default", "":
		return DefaultOptimizerParams(), true
	case "baseline", "legacy":
		return BaselineOptimizerParams(), true
	case "strict":
		return StrictOptimizerParams(), true
	}
	return SlotOptimizerParams{}, false
}

//slotCapacity is the number of bonds a single slot can hold.
func (P *SlotOptimizerParams) slotCapacity() int {
	if P.AllowBifurcation {
		return 2
	}
	return 1
}
