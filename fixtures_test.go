/*
 * fixtures_test.go, part of find-pair.
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
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

type atomSpec struct {
	name    string
	x, y, z float64
}

func buildResidue(id, name string, mtype MoleculeType, atoms []atomSpec, flip bool) *Residue {
	list := make([]*Atom, 0, len(atoms))
	for _, a := range atoms {
		p := r3.Vec{X: a.x, Y: a.y, Z: a.z}
		if flip {
			p = r3.Vec{X: a.x, Y: -a.y, Z: -a.z}
		}
		list = append(list, &Atom{Name: a.name, Pos: p})
	}
	return NewResidue(id, name, mtype, 0, list)
}

// Standard-frame base coordinates. The cytosine is turned 180 degrees about
// the x axis, which puts it in Watson-Crick position against the guanine.
var (
	guanineAtoms = []atomSpec{
		{"C1'", -2.477, 5.399, 0}, {"N9", -1.289, 4.551, 0}, {"C8", 0.023, 4.962, 0},
		{"N7", 0.870, 3.969, 0}, {"C5", 0.071, 2.833, 0}, {"C6", 0.424, 1.460, 0},
		{"O6", 1.554, 0.955, 0}, {"N1", -0.700, 0.641, 0}, {"C2", -1.999, 1.087, 0},
		{"N2", -2.949, 0.139, -0.001}, {"N3", -2.342, 2.364, 0.001}, {"C4", -1.265, 3.177, 0},
	}
	cytosineAtoms = []atomSpec{
		{"C1'", -2.477, 5.402, 0}, {"N1", -1.285, 4.542, 0}, {"C2", -1.472, 3.158, 0},
		{"O2", -2.628, 2.709, 0.001}, {"N3", -0.391, 2.344, 0}, {"C4", 0.837, 2.868, 0},
		{"N4", 1.875, 2.027, 0.001}, {"C5", 1.056, 4.275, 0}, {"C6", -0.023, 5.068, 0},
	}
)

// wcPair returns a guanine and a cytosine in Watson-Crick geometry:
// N2-O2 2.87, O6-N4 3.00 and N1-N3 3.00 A.
func wcPair() (g, c *Residue) {
	g = buildResidue("A.1", "G", RNA, guanineAtoms, false)
	c = buildResidue("B.1", "C", RNA, cytosineAtoms, true)
	return g, c
}

// bareGuanine is a guanine with only N1 as a polar atom, so the only
// candidates it can give are through N1.
func bareGuanine() *Residue {
	var atoms []atomSpec
	for _, a := range guanineAtoms {
		switch a.name {
		case "N1", "C2", "C4", "C5", "C6":
			atoms = append(atoms, a)
		}
	}
	return buildResidue("A.1", "G", RNA, atoms, false)
}

func water(id string, pos r3.Vec) *Residue {
	return NewResidue(id, "HOH", Ligand, 0, []*Atom{{Name: "O", Element: "O", Pos: pos}})
}

// rotateZ rotates v by deg degrees about the z axis.
func rotateZ(v r3.Vec, deg float64) r3.Vec {
	a := deg * math.Pi / 180
	s, c := math.Sincos(a)
	return r3.Vec{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
}

// watersAround places two waters in front of N1 of g, along its hydrogen
// direction turned by +half and -half degrees, at 2.9 and 3.0 A.
func watersAround(g *Residue, half float64) (w1, w2 *Residue) {
	n1 := g.Atom("N1")
	slots := PredictHSlots('G', "N1", g, r3.Vec{Z: 1})
	dir := slots[0].Dir
	w1 = water("W.1", r3.Add(n1.Pos, r3.Scale(2.9, rotateZ(dir, half))))
	w2 = water("W.2", r3.Add(n1.Pos, r3.Scale(3.0, rotateZ(dir, -half))))
	return w1, w2
}

func bondNames(bonds []*HydrogenBond) []string {
	ret := make([]string, len(bonds))
	for i, b := range bonds {
		ret[i] = NormalizeAtomName(b.DonorAtom.Name) + "-" + NormalizeAtomName(b.AcceptorAtom.Name)
	}
	return ret
}
