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
Package v3 implements a Matrix type representing a row-major Nx3 matrix,
i.e. a set of points in 3D space, one per row. It is based on gonum's
mat.Dense, with the restrictions that come from the fixed number of
columns, and a few functions needed to fit planes through ring atoms.

Vectors are exchanged with the rest of the library as gonum r3.Vec values.
*/
package v3
