/*
 * filter.go, part of find-pair.
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
	"strings"
)

//InteractionFilter selects bonds by context. It never modifies the bonds.
type InteractionFilter struct {
	allowed [NumContexts]bool
}

//NewInteractionFilter returns a filter letting through the given contexts.
//With no contexts, everything passes.
func NewInteractionFilter(cats ...Context) *InteractionFilter {
	F := new(InteractionFilter)
	if len(cats) == 0 {
		for i := range F.allowed {
			F.allowed[i] = true
		}
		return F
	}
	for _, c := range cats {
		if c >= 0 && c < NumContexts {
			F.allowed[c] = true
		}
	}
	return F
}

//ParseInteractionFilter builds a filter from a comma-separated list of
//context names, such as "base-base,base-backbone". An empty list lets
//everything through.
func ParseInteractionFilter(list string) (*InteractionFilter, error) {
	var cats []Context
	for _, f := range strings.Split(list, ",") {
		if strings.TrimSpace(f) == "" {
			continue
		}
		c, ok := ParseContext(f)
		if !ok {
			return nil, newError(fmt.Sprintf("unknown interaction category %q", f), "ParseInteractionFilter", true)
		}
		cats = append(cats, c)
	}
	return NewInteractionFilter(cats...), nil
}

//Allows returns true if bonds of context c pass the filter.
func (F *InteractionFilter) Allows(c Context) bool {
	if c < 0 || c >= NumContexts {
		return false
	}
	return F.allowed[c]
}

//Filter returns, in the same order, the bonds whose context passes the filter.
func (F *InteractionFilter) Filter(bonds []*HydrogenBond) []*HydrogenBond {
	ret := make([]*HydrogenBond, 0, len(bonds))
	for _, b := range bonds {
		if F.Allows(b.Context) {
			ret = append(ret, b)
		}
	}
	return ret
}
