/*
 * errors.go, part of find-pair.
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

package bondlog

import "fmt"

// Error is the error type of the package.
type Error struct {
	message  string
	filename string //the file that has problems, or "stream"
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	return fmt.Sprintf("bond log %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// FileName returns the file the error is associated to.
func (err *Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
func (err *Error) Critical() bool { return err.critical }

const NotWriteable = "Writer closed or uninitialized"

func errDecorate(err error, caller string) error {
	if e, ok := err.(interface{ Decorate(string) []string }); ok {
		e.Decorate(caller)
	}
	return err
}
