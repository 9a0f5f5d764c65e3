/*
 * roles.go, part of find-pair.
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

//HBondAtomRole is the part an atom can play in a hydrogen bond.
type HBondAtomRole int

const (
	Unknown HBondAtomRole = iota
	Donor
	Acceptor
	Either
)

func (R HBondAtomRole) String() string {
	switch R {
	case Donor:
		return "DONOR"
	case Acceptor:
		return "ACCEPTOR"
	case Either:
		return "EITHER"
	}
	return "UNKNOWN"
}

//letter is the one-character code used in the legacy pair table.
func (R HBondAtomRole) letter() byte {
	switch R {
	case Donor:
		return 'D'
	case Acceptor:
		return 'A'
	case Either:
		return 'X'
	}
	return '?'
}

//HBondClassification is the verdict on a donor-acceptor pair.
type HBondClassification int

const (
	Invalid HBondClassification = iota
	Standard
	NonStandard
)

func (C HBondClassification) String() string {
	switch C {
	case Standard:
		return "STANDARD"
	case NonStandard:
		return "NON_STANDARD"
	}
	return "INVALID"
}

//Char returns the marker printed next to a bond: '-' for standard bonds,
//blank otherwise.
func (C HBondClassification) Char() byte {
	if C == Standard {
		return '-'
	}
	return ' '
}

//Registry holds the immutable role tables. The tables are filled once,
//when the package is loaded, and only read afterwards, so a Registry
//can be shared by any number of goroutines.
type Registry struct {
	base     map[byte]map[string]HBondAtomRole // legacy, per parent base
	backbone map[string]HBondAtomRole          // legacy, any nucleotide
	protein  map[string]map[string]HBondAtomRole
	mainc    map[string]HBondAtomRole
	water    map[string]bool
}

var defaultRegistry = newRegistry()

//Roles returns the process-wide role registry.
func Roles() *Registry {
	return defaultRegistry
}

func newRegistry() *Registry {
	D, A, X := Donor, Acceptor, Either
	R := new(Registry)
	pyr := map[string]HBondAtomRole{"N3": D, "O2": A, "O4": A}
	R.base = map[byte]map[string]HBondAtomRole{
		'A': {"N6": D, "N1": A, "N3": A, "N7": A},
		'C': {"N4": D, "N3": A, "O2": A},
		'G': {"N1": D, "N2": D, "O6": A, "N3": A, "N7": A},
		'U': pyr,
		'T': pyr,
	}
	R.backbone = map[string]HBondAtomRole{
		"OP1": A, "OP2": A, "O1P": A, "O2P": A, "OP3": A,
		"O5'": A, "O3'": A, "O4'": A, "O2'": X,
	}
	R.mainc = map[string]HBondAtomRole{"N": D, "O": A, "OXT": A}
	R.protein = map[string]map[string]HBondAtomRole{
		"SER": {"OG": X},
		"THR": {"OG1": X},
		"TYR": {"OH": X},
		"CYS": {"SG": X},
		"ASN": {"ND2": D, "OD1": A},
		"GLN": {"NE2": D, "OE1": A},
		"LYS": {"NZ": D},
		"ARG": {"NE": D, "NH1": D, "NH2": D},
		"TRP": {"NE1": D},
		"ASP": {"OD1": A, "OD2": A},
		"GLU": {"OE1": A, "OE2": A},
		"MET": {"SD": A},
		"HIS": {"ND1": X, "NE2": X},
		"PRO": {"N": A}, //ring-closed main chain N, no hydrogen
	}
	R.water = map[string]bool{"HOH": true, "WAT": true, "DOD": true, "H2O": true}
	return R
}

//legacyRole looks the atom up only in the legacy nucleotide table.
func (R *Registry) legacyRole(base byte, atom string) (HBondAtomRole, bool) {
	if t, ok := R.base[base]; ok {
		if r, ok := t[atom]; ok {
			return r, true
		}
	}
	r, ok := R.backbone[atom]
	return r, ok
}

//Role returns the role of the atom named atom in a residue named resName
//of type mtype. For nucleotides, base is the one-letter parent base.
//Atoms not found in any table are Unknown, which is a valid answer.
func (R *Registry) Role(resName string, mtype MoleculeType, base byte, atom string) HBondAtomRole {
	atom = NormalizeAtomName(atom)
	switch mtype {
	case RNA, DNA:
		if base == 0 {
			base = baseFromName(resName)
		}
		if r, ok := R.legacyRole(base, atom); ok {
			return r
		}
	case Protein:
		if r, ok := R.protein[strings.ToUpper(strings.TrimSpace(resName))][atom]; ok {
			return r
		}
		return R.mainc[atom]
	case Ligand:
		if R.water[strings.ToUpper(strings.TrimSpace(resName))] && strings.HasPrefix(atom, "O") {
			return Either
		}
	}
	return Unknown
}

//ResidueRole is a shortcut for Role on an atom of res.
func (R *Registry) ResidueRole(res *Residue, atom string) HBondAtomRole {
	return R.Role(res.Name, res.Type, res.BaseType(), atom)
}

//ClassifyRole returns the role of an atom using the process-wide registry.
func ClassifyRole(resName string, mtype MoleculeType, atomName string) HBondAtomRole {
	return defaultRegistry.Role(resName, mtype, 0, atomName)
}

//The pairs, by role letters, the legacy table considers proper H-bonds.
var legacyPairs = map[string]bool{
	"AD": true, "AX": true, "XD": true, "XX": true, "DA": true, "DX": true, "XA": true,
}

var defaultPolar = []string{"O", "N"}

func polar(sym string, elements []string) bool {
	for _, v := range elements {
		if strings.EqualFold(v, sym) {
			return true
		}
	}
	return false
}

//Validate classifies the bond between atom1 of res1 and atom2 of res2, with
//the default O/N element set.
func Validate(res1, res2 *Residue, atom1, atom2 string) HBondClassification {
	return defaultRegistry.validate(res1, res2, atom1, atom2, defaultPolar)
}

func (R *Registry) validate(res1, res2 *Residue, atom1, atom2 string, elements []string) HBondClassification {
	a1, a2 := res1.Atom(atom1), res2.Atom(atom2)
	if a1 == nil || a2 == nil {
		return Invalid
	}
	if !polar(a1.Symbol(), elements) || !polar(a2.Symbol(), elements) {
		return Invalid
	}
	n1, n2 := NormalizeAtomName(atom1), NormalizeAtomName(atom2)
	var r1, r2 HBondAtomRole
	var l1, l2 bool
	if res1.Type.IsNucleic() {
		r1, l1 = R.legacyRole(res1.BaseType(), n1)
	}
	if res2.Type.IsNucleic() {
		r2, l2 = R.legacyRole(res2.BaseType(), n2)
	}
	if l1 && l2 && legacyPairs[string([]byte{r1.letter(), r2.letter()})] {
		return Standard
	}
	if !l1 {
		r1 = R.ResidueRole(res1, n1)
	}
	if !l2 {
		r2 = R.ResidueRole(res2, n2)
	}
	if (r1 == Donor && r2 == Donor) || (r1 == Acceptor && r2 == Acceptor) {
		return Invalid
	}
	return NonStandard
}

//ValidateWithDistance is Validate followed by the distance band check: a
//NON_STANDARD bond longer than P.NonStandardMaxDistance becomes INVALID.
func (R *Registry) ValidateWithDistance(res1, res2 *Residue, atom1, atom2 string, dist float64, P *HBondDetectionParams) HBondClassification {
	c := R.validate(res1, res2, atom1, atom2, P.Elements)
	if c == NonStandard && dist > P.NonStandardMaxDistance {
		return Invalid
	}
	return c
}
