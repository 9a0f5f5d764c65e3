/*
 * doc.go, part of find-pair.
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

/*
Package hbond finds hydrogen bonds between residues of nucleic acids,
proteins and ligands, and assigns each bond to a hydrogen slot of its donor
and a lone-pair slot of its acceptor, so no atom takes more bonds than it can.

	**Capabilities**

	Classifies atoms as donors, acceptors or either, with the classical
	nucleotide table plus protein and water extensions.

	Generates candidate bonds between two residues, with a distance ceiling
	for each structural context (base-base, base-backbone, nucleic-protein...).

	Predicts hydrogen and lone-pair directions from the base ring geometry,
	whether or not hydrogens are present in the structure.

	Resolves competing candidates either the classical way (each atom keeps
	its shortest bond) or by greedy slot assignment ordered by a quality score
	that mixes distance and alignment, with optional bifurcated bonds.

	Runs the whole thing on a structure in two phases: candidates are
	generated in parallel for each residue pair, then resolved in a single
	sequential pass, so an atom cannot be double-booked by two pairs.

The parameter sets come with presets (legacy, modern, general, dssr for
detection; optimized, baseline, strict for the optimizer). The hbconf
package reads them from YAML files.

The package is silent unless a zap logger is given with SetLogger.
*/
package hbond
