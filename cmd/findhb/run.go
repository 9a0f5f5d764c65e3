/*
 * run.go, part of find-pair.
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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	hbond "github.com/jyesselm/find-pair-sub004"
	"github.com/jyesselm/find-pair-sub004/bondlog"
	"github.com/jyesselm/find-pair-sub004/chemjson"
	"github.com/jyesselm/find-pair-sub004/hbconf"
	"github.com/jyesselm/find-pair-sub004/hbplot"
	"github.com/jyesselm/find-pair-sub004/histo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runOptions struct {
	detection string
	optimizer string
	strategy  string
	contexts  []string
	workers   int
	baseOnly  bool
	rejected  bool
	out       string
	json      bool
	plot      string
	bins      int
	options   bool
	pairs     []string
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <structure.jsonl|->",
		Short: "Find the hydrogen bonds of a structure",
		Long: "Reads a structure as a stream of JSON residues and writes the accepted bonds,\n" +
			"one per line, as a bond log (tab-separated) or, with --json, as JSON objects.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, root, opts, args[0])
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.detection, "detection", "", "detection preset (legacy, modern, general, dssr)")
	f.StringVar(&opts.optimizer, "optimizer", "", "optimizer preset (optimized, baseline, strict)")
	f.StringVar(&opts.strategy, "strategy", "", "resolution strategy (slot-global, legacy-pairwise)")
	f.StringSliceVar(&opts.contexts, "contexts", nil, "only report these interaction contexts")
	f.IntVarP(&opts.workers, "workers", "j", 0, "parallel candidate generation (0: one per CPU)")
	f.BoolVar(&opts.baseOnly, "base-only", false, "only base-base bonds between nucleotides")
	f.BoolVar(&opts.rejected, "rejected", false, "also report rejected candidates")
	f.StringVarP(&opts.out, "log", "o", "", "write the bond log to this file (.zst and .gz are compressed)")
	f.BoolVar(&opts.json, "json", false, "write JSON bonds and a summary instead of a bond log")
	f.StringVar(&opts.plot, "plot", "", "write PREFIX_distance.png and PREFIX_alignment.png")
	f.IntVar(&opts.bins, "bins", 12, "bins of the distance histogram")
	f.BoolVar(&opts.options, "options", false, "the first input line is a JSON options object")
	f.StringSliceVar(&opts.pairs, "pairs", nil, "only these residue index pairs, as i:j (all close pairs if not given)")
	return cmd
}

// apply puts the flags given on the command line over the configuration.
func (o *runOptions) apply(cmd *cobra.Command, C *hbconf.Config) error {
	fl := cmd.Flags()
	if fl.Changed("detection") {
		C.Detection.Preset = o.detection
	}
	if fl.Changed("optimizer") {
		C.Optimizer.Preset = o.optimizer
	}
	if fl.Changed("strategy") {
		C.Strategy = o.strategy
	}
	if fl.Changed("contexts") {
		C.Contexts = o.contexts
	}
	if fl.Changed("workers") {
		C.Workers = o.workers
	}
	if fl.Changed("base-only") {
		C.BaseOnly = o.baseOnly
	}
	return C.Validate()
}

// job is what the input gives: the residues and, with --options, the
// options line that came before them.
type job struct {
	residues []*hbond.Residue
	options  *chemjson.Options
}

func readStructure(cmd *cobra.Command, name string, withOptions bool) (*job, error) {
	var in io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	br := bufio.NewReader(in)
	J := new(job)
	if withOptions {
		O, jerr := chemjson.DecodeOptions(br)
		if jerr != nil {
			return nil, fmt.Errorf("%s: options line: %w", name, jerr)
		}
		J.options = O
	}
	res, jerr := chemjson.DecodeResidues(br)
	if jerr != nil {
		return nil, fmt.Errorf("%s: residue %d: %w", name, jerr.Residue, jerr)
	}
	J.residues = res
	return J, nil
}

// applyOptions puts the non-empty fields of an options line over the
// configuration. Command line flags are applied afterwards and win.
func applyOptions(O *chemjson.Options, C *hbconf.Config) {
	if O == nil {
		return
	}
	if O.Detection != "" {
		C.Detection.Preset = O.Detection
	}
	if O.Optimizer != "" {
		C.Optimizer.Preset = O.Optimizer
	}
	if O.Strategy != "" {
		C.Strategy = O.Strategy
	}
	if len(O.Contexts) > 0 {
		C.Contexts = O.Contexts
	}
	if O.BaseOnly {
		C.BaseOnly = true
	}
}

// parsePairs reads residue index pairs written as i:j.
func parsePairs(list []string) ([][2]int, error) {
	var ret [][2]int
	for _, p := range list {
		f := strings.Split(strings.TrimSpace(p), ":")
		if len(f) != 2 {
			return nil, fmt.Errorf("pair %q is not i:j", p)
		}
		var pair [2]int
		for k, v := range f {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("pair %q: %w", p, err)
			}
			pair[k] = n
		}
		ret = append(ret, pair)
	}
	return ret, nil
}

func runFind(cmd *cobra.Command, root *rootOptions, opts *runOptions, name string) error {
	if opts.bins < 1 {
		return fmt.Errorf("--bins must be at least 1, got %d", opts.bins)
	}
	C, err := root.loadConfig()
	if err != nil {
		return err
	}
	J, err := readStructure(cmd, name, opts.options)
	if err != nil {
		return err
	}
	applyOptions(J.options, C)
	if err := opts.apply(cmd, C); err != nil {
		return err
	}
	F, err := C.Finder()
	if err != nil {
		return err
	}
	filter, err := C.Filter()
	if err != nil {
		return err
	}
	var pairs [][2]int
	if J.options != nil {
		pairs = J.options.Pairs
	}
	if cmd.Flags().Changed("pairs") {
		if pairs, err = parsePairs(opts.pairs); err != nil {
			return err
		}
	}
	residues := J.residues
	var res *hbond.Result
	if len(pairs) > 0 {
		res, err = F.FindPairs(residues, pairs)
	} else {
		res, err = F.FindAll(residues)
	}
	if err != nil {
		return err
	}
	res = &hbond.Result{Accepted: filter.Filter(res.Accepted), Rejected: filter.Filter(res.Rejected)}
	root.logger.Info("structure processed", zap.String("file", name), zap.Int("residues", len(residues)),
		zap.Int("accepted", len(res.Accepted)), zap.Int("rejected", len(res.Rejected)))

	if opts.json {
		if jerr := chemjson.SendResult(res, len(residues), opts.rejected, cmd.OutOrStdout()); jerr != nil {
			return jerr
		}
	} else if err := writeLog(cmd, opts, name, F, res); err != nil {
		return err
	}
	if opts.plot != "" {
		return writePlots(opts, res.Accepted, F.Detection.MinDistance, F.Detection.MaxCeiling())
	}
	return nil
}

func writeLog(cmd *cobra.Command, opts *runOptions, name string, F *hbond.Finder, res *hbond.Result) error {
	header := map[string]string{
		"structure": name,
		"strategy":  F.Strategy.String(),
		"optimizer": F.Optimizer.Mode.String(),
	}
	var W *bondlog.Writer
	var err error
	if opts.out == "" {
		W, err = bondlog.NewWriter(cmd.OutOrStdout(), header, bondlog.Plain)
	} else {
		W, err = bondlog.Create(opts.out, header)
	}
	if err != nil {
		return err
	}
	if err := W.Write(res.Accepted...); err != nil {
		W.Close()
		return err
	}
	if opts.rejected {
		if err := W.Write(res.Rejected...); err != nil {
			W.Close()
			return err
		}
	}
	return W.Close()
}

func writePlots(opts *runOptions, bonds []*hbond.HydrogenBond, lo, hi float64) error {
	if len(bonds) == 0 {
		return nil
	}
	if hi <= lo {
		hi = lo + 1
	}
	p, _, err := hbplot.DistanceHistogram(bonds, histo.Dividers(lo, hi, opts.bins), "Hydrogen bond distances")
	if err != nil {
		return err
	}
	if err := hbplot.Save(p, opts.plot+"_distance.png"); err != nil {
		return err
	}
	s, err := hbplot.AlignmentScatter(bonds, fmt.Sprintf("Alignment of %d bonds", len(bonds)))
	if err != nil {
		return err
	}
	return hbplot.Save(s, opts.plot+"_alignment.png")
}
