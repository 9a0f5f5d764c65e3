/*
 * log.go, part of find-pair.
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
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/jyesselm/find-pair-sub004/bondlog"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log <bonds.tsv[.zst|.gz]>",
		Short: "Summarize a bond log written by run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return summarizeLog(cmd, args[0])
		},
	}
}

func summarizeLog(cmd *cobra.Command, name string) error {
	R, header, err := bondlog.Open(name)
	if err != nil {
		return err
	}
	defer R.Close()
	recs, err := R.ReadAll()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	keys := make([]string, 0, len(header))
	for k := range header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%s: %s\n", k, header[k])
	}
	byContext := make(map[string][]float64)
	for _, r := range recs {
		byContext[r.Context] = append(byContext[r.Context], r.Distance)
	}
	contexts := make([]string, 0, len(byContext))
	for c := range byContext {
		contexts = append(contexts, c)
	}
	sort.Strings(contexts)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "context\tbonds\tmean\tstd")
	for _, c := range contexts {
		d := byContext[c]
		mean, std := stat.MeanStdDev(d, nil)
		if len(d) < 2 {
			std = 0
		}
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\n", c, len(d), mean, std)
	}
	fmt.Fprintf(tw, "total\t%d\t\t\n", len(recs))
	return tw.Flush()
}
