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

package hbond

import (
	"fmt"
	"strings"
)

//Error is the error type returned by this package. Besides the message, it keeps
//a "decoration" slice with the names of the functions the error went through on its
//way up, so the caller can see where it originated without a stack trace.
type Error struct {
	msg      string
	deco     []string
	critical bool
	cause    error
}

func newError(msg, caller string, critical bool) *Error {
	return &Error{msg: msg, deco: []string{caller}, critical: critical}
}

func wrapError(cause error, caller string) *Error {
	return &Error{msg: cause.Error(), deco: []string{caller}, critical: true, cause: cause}
}

//Error implements the error interface.
func (E *Error) Error() string {
	if len(E.deco) == 0 {
		return E.msg
	}
	return fmt.Sprintf("%s (%s)", E.msg, strings.Join(E.deco, " <- "))
}

//Decorate adds dec to the decoration slice of the error and returns the resulting slice.
//If dec is empty, the current slice is returned unchanged.
func (E *Error) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

//Critical returns true if the error should stop the whole evaluation.
func (E *Error) Critical() bool { return E.critical }

//Unwrap returns the underlying error, if any.
func (E *Error) Unwrap() error { return E.cause }

type decorator interface {
	Decorate(string) []string
}

//errDecorate adds the caller's name to err if err supports decorations.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if d, ok := err.(decorator); ok {
		d.Decorate(caller)
	}
	return err
}

const (
	ErrNilResidue    = "nil residue given"
	ErrPairIndex     = "residue pair index out of range"
	ErrSelfPair      = "a residue cannot be paired with itself"
	ErrDuplicatePair = "residue pair given more than once"
)
