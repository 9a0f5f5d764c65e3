/*
 * residue.go, part of find-pair.
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
	"strings"
	"unicode"

	"gonum.org/v1/gonum/spatial/r3"
)

//MoleculeType tags the kind of polymer (or lack of it) a residue belongs to.
type MoleculeType int

const (
	RNA MoleculeType = iota
	DNA
	Protein
	Ligand
)

func (M MoleculeType) String() string {
	switch M {
	case RNA:
		return "RNA"
	case DNA:
		return "DNA"
	case Protein:
		return "PROTEIN"
	case Ligand:
		return "LIGAND"
	}
	return "UNKNOWN"
}

//IsNucleic returns true for RNA and DNA.
func (M MoleculeType) IsNucleic() bool {
	return M == RNA || M == DNA
}

//ParseMoleculeType returns the MoleculeType named by s (case-insensitive), and false
//if s names none.
func ParseMoleculeType(s string) (MoleculeType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RNA":
		return RNA, true
	case "DNA":
		return DNA, true
	case "PROTEIN":
		return Protein, true
	case "LIGAND", "HET", "WATER":
		return Ligand, true
	}
	return Ligand, false
}

//Atom is a single atom as read from a structure. Atoms are not modified
//by this package, and they are compared by identity (pointer).
type Atom struct {
	Name    string
	Element string
	Pos     r3.Vec
}

//Symbol returns the element of the atom. If the Element field is empty, the
//element is guessed from the first letter of the atom name.
func (A *Atom) Symbol() string {
	if A.Element != "" {
		return strings.ToUpper(strings.TrimSpace(A.Element))
	}
	for _, r := range strings.TrimSpace(A.Name) {
		if unicode.IsLetter(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return ""
}

//Residue is a group of atoms with a type tag. Nucleotides also carry
//the one-letter code of their parent base (A, C, G, T or U), so modified
//nucleotides can be treated as their parents.
type Residue struct {
	ID    string
	Name  string
	Type  MoleculeType
	Base  byte
	Atoms []*Atom
	index map[string]*Atom
}

//NewResidue builds a Residue and indexes its atoms by normalized name. Only residues
//built this way get the name index, others are searched linearly.
//If base is 0 and the residue is a nucleotide, the base is guessed from the name.
func NewResidue(id, name string, mtype MoleculeType, base byte, atoms []*Atom) *Residue {
	R := &Residue{ID: id, Name: strings.TrimSpace(name), Type: mtype, Base: base, Atoms: atoms}
	if R.Base == 0 && mtype.IsNucleic() {
		R.Base = baseFromName(R.Name)
	}
	R.index = make(map[string]*Atom, len(atoms))
	for _, a := range atoms {
		n := NormalizeAtomName(a.Name)
		if _, ok := R.index[n]; !ok {
			R.index[n] = a
		}
	}
	return R
}

//Atom returns the atom with the given name, or nil if it is not present.
func (R *Residue) Atom(name string) *Atom {
	name = NormalizeAtomName(name)
	if R.index != nil {
		return R.index[name]
	}
	for _, a := range R.Atoms {
		if NormalizeAtomName(a.Name) == name {
			return a
		}
	}
	return nil
}

//BaseType returns the one-letter code of the parent base, or 0 for
//residues that are not nucleotides.
func (R *Residue) BaseType() byte {
	if !R.Type.IsNucleic() {
		return 0
	}
	if R.Base != 0 {
		return R.Base
	}
	return baseFromName(R.Name)
}

//IsPurine returns true if the residue is an A or G nucleotide.
func (R *Residue) IsPurine() bool {
	b := R.BaseType()
	return b == 'A' || b == 'G'
}

//Centroid returns the geometric center of the residue's atoms.
func (R *Residue) Centroid() r3.Vec {
	var c r3.Vec
	if len(R.Atoms) == 0 {
		return c
	}
	for _, a := range R.Atoms {
		c = r3.Add(c, a.Pos)
	}
	return r3.Scale(1/float64(len(R.Atoms)), c)
}

//radius returns the largest distance from the centroid to any atom.
func (R *Residue) radius(center r3.Vec) float64 {
	var max float64
	for _, a := range R.Atoms {
		if d := r3.Norm(r3.Sub(a.Pos, center)); d > max {
			max = d
		}
	}
	return max
}

func baseFromName(name string) byte {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return 0
	}
	b := name[len(name)-1]
	switch b {
	case 'A', 'C', 'G', 'T', 'U':
		return b
	}
	return 0
}

//NormalizeAtomName trims the fixed-width padding of an atom name and
//uses the modern prime notation (O2* becomes O2').
func NormalizeAtomName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "*", "'")
}

//Canonical ordered ring atoms. The order matters for the sign of the base normal.
var (
	purineRing     = []string{"N1", "C2", "N3", "C4", "C5", "C6", "N7", "C8", "N9"}
	pyrimidineRing = []string{"N1", "C2", "N3", "C4", "C5", "C6"}
)

//RingAtoms returns the canonical ring atom names for the base type b, or nil if b
//is not a base.
func RingAtoms(b byte) []string {
	switch b {
	case 'A', 'G':
		return purineRing
	case 'C', 'T', 'U':
		return pyrimidineRing
	}
	return nil
}

type atomClass int

const (
	classBase atomClass = iota
	classSugar
	classBackbone
	classProteinMain
	classProteinSide
	classLigand
)

var (
	backboneAtoms = map[string]bool{"P": true, "OP1": true, "OP2": true, "OP3": true,
		"O1P": true, "O2P": true, "O3P": true, "O5'": true, "O3'": true}
	sugarAtoms = map[string]bool{"C1'": true, "C2'": true, "C3'": true, "C4'": true,
		"C5'": true, "O4'": true, "O2'": true}
	mainChainAtoms = map[string]bool{"N": true, "CA": true, "C": true, "O": true, "OXT": true}
)

//classify returns the structural class of the atom name in a residue of type mtype.
func classify(mtype MoleculeType, name string) atomClass {
	switch mtype {
	case Protein:
		if mainChainAtoms[name] {
			return classProteinMain
		}
		return classProteinSide
	case Ligand:
		return classLigand
	}
	if backboneAtoms[name] {
		return classBackbone
	}
	if sugarAtoms[name] || strings.ContainsRune(name, '\'') {
		return classSugar
	}
	return classBase
}

//IsBaseAtom returns true if the atom name belongs to the base of a nucleotide.
func IsBaseAtom(name string) bool {
	return classify(RNA, NormalizeAtomName(name)) == classBase
}
