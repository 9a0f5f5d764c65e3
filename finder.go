/*
 * finder.go, part of find-pair.
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
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

//Strategy selects how candidates from different residue pairs interact.
type Strategy int

const (
	//StrategySlotGlobal pools the candidates of all pairs and runs the
	//SlotOptimizer once over them.
	StrategySlotGlobal Strategy = iota
	//StrategyLegacyPairwise resolves each residue pair on its own, by
	//distance only, as the classical tool does.
	StrategyLegacyPairwise
)

func (S Strategy) String() string {
	if S == StrategyLegacyPairwise {
		return "legacy-pairwise"
	}
	return "slot-global"
}

//ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "slot-global", "global", "slot", "":
		return StrategySlotGlobal, true
	case "legacy-pairwise", "legacy", "pairwise":
		return StrategyLegacyPairwise, true
	}
	return StrategySlotGlobal, false
}

//Finder runs the whole detection on a structure. Candidates are generated
//for each residue pair in parallel, then resolved in a single pass once
//all of them are available.
type Finder struct {
	Detection HBondDetectionParams
	Optimizer SlotOptimizerParams
	Strategy  Strategy
	Workers   int  //max goroutines for candidate generation, 0 means one per CPU
	BaseOnly  bool //only base atoms, with the base-base ceiling
}

//NewFinder returns a Finder with the default parameters.
func NewFinder() *Finder {
	return &Finder{
		Detection: DefaultDetectionParams(),
		Optimizer: DefaultOptimizerParams(),
		Strategy:  StrategySlotGlobal,
	}
}

func (F *Finder) workers() int {
	if F.Workers > 0 {
		return F.Workers
	}
	return runtime.NumCPU()
}

//FindPairs finds the H-bonds between the residue pairs given as index pairs
//into residues. The result is in pair order, and within each pair in
//enumeration order. Bond indexes are global. Each unordered pair may be
//given only once.
func (F *Finder) FindPairs(residues []*Residue, pairs [][2]int) (*Result, error) {
	seen := make(map[[2]int]int, len(pairs)) //unordered pairs seen so far
	for i, p := range pairs {
		for _, k := range p {
			if k < 0 || k >= len(residues) {
				return nil, newError(fmt.Sprintf("%s: pair %d, index %d", ErrPairIndex, i, k), "FindPairs", true)
			}
			if residues[k] == nil {
				return nil, newError(fmt.Sprintf("%s: index %d", ErrNilResidue, k), "FindPairs", true)
			}
		}
		if p[0] == p[1] {
			return nil, newError(fmt.Sprintf("%s: index %d", ErrSelfPair, p[0]), "FindPairs", true)
		}
		key := [2]int{min(p[0], p[1]), max(p[0], p[1])}
		if j, ok := seen[key]; ok {
			return nil, newError(fmt.Sprintf("%s: pairs %d and %d", ErrDuplicatePair, j, i), "FindPairs", true)
		}
		seen[key] = i
	}
	det := NewDetector(F.Detection)
	perPair := make([][]*Candidate, len(pairs))
	var g errgroup.Group
	g.SetLimit(F.workers())
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			r1, r2 := residues[p[0]], residues[p[1]]
			if F.BaseOnly {
				perPair[i] = det.BaseCandidates(r1, r2)
			} else {
				perPair[i] = det.AllCandidates(r1, r2, r1.Type, r2.Type)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errDecorate(err, "FindPairs")
	}
	n := 0
	for _, cands := range perPair {
		for _, c := range cands {
			c.Index = n
			n++
		}
	}
	var res *Result
	if F.Strategy == StrategyLegacyPairwise {
		res = new(Result)
		for _, cands := range perPair {
			r := det.ResolvePair(cands)
			res.Accepted = append(res.Accepted, r.Accepted...)
			res.Rejected = append(res.Rejected, r.Rejected...)
		}
	} else {
		pool := make([]*Candidate, 0, n)
		for _, cands := range perPair {
			pool = append(pool, cands...)
		}
		res = NewSlotOptimizer(F.Optimizer).Optimize(pool)
		Classify(res.Accepted, F.Detection)
		Classify(res.Rejected, F.Detection)
	}
	logger.Info("hydrogen bonds resolved",
		zap.Stringer("strategy", F.Strategy),
		zap.Int("pairs", len(pairs)),
		zap.Int("candidates", n),
		zap.Int("accepted", len(res.Accepted)),
		zap.Int("rejected", len(res.Rejected)))
	return res, nil
}

//FindAll finds the H-bonds between every pair of residues close enough to
//possibly share one.
func (F *Finder) FindAll(residues []*Residue) (*Result, error) {
	pairs, err := F.CandidatePairs(residues)
	if err != nil {
		return nil, errDecorate(err, "FindAll")
	}
	res, err := F.FindPairs(residues, pairs)
	if err != nil {
		return nil, errDecorate(err, "FindAll")
	}
	return res, nil
}

//CandidatePairs returns the index pairs i<j of residues whose atoms could be
//within the largest distance ceiling, judging by centroids and radii.
func (F *Finder) CandidatePairs(residues []*Residue) ([][2]int, error) {
	centers := make([]sphere, len(residues))
	for i, r := range residues {
		if r == nil {
			return nil, newError(fmt.Sprintf("%s: index %d", ErrNilResidue, i), "CandidatePairs", true)
		}
		c := r.Centroid()
		centers[i] = sphere{c, r.radius(c)}
	}
	cut := F.Detection.MaxCeiling()
	if F.BaseOnly {
		cut = F.Detection.Ceiling(BaseBase)
	}
	var pairs [][2]int
	for i := range residues {
		for j := i + 1; j < len(residues); j++ {
			if centers[i].gap(centers[j]) <= cut {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs, nil
}

type sphere struct {
	center r3.Vec
	radius float64
}

//gap is the distance between the surfaces of the two spheres, negative if
//they overlap.
func (S sphere) gap(o sphere) float64 {
	return r3.Norm(r3.Sub(S.center, o.center)) - S.radius - o.radius
}
