/*
 * errors.go, part of gognn.
 *
 * Copyright 2024 Raul Mera  <rmeraa{at}academicos(dot)uta(dot)cl>
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
 */

package nn

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies the errors returned by gognn. Use errors.Is against
// the Err* constants to tell them apart.
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	ErrConfig     = Kind("gognn: configuration error")
	ErrShape      = Kind("gognn: shape mismatch")
	ErrOutOfRange = Kind("gognn: index out of range")
)

// Error is the error type of all gognn packages. The Decorate method adds
// the name of each function the error passes through, so the call chain
// can be recovered without wrapping.
type Error struct {
	message  string
	kind     Kind
	deco     []string
	critical bool
}

// NewError returns an *Error of the given kind, raised in caller.
func NewError(kind Kind, caller, format string, args ...any) *Error {
	return &Error{message: fmt.Sprintf(format, args...), kind: kind, deco: []string{caller}, critical: true}
}

// Error returns the message, prefixed by the innermost function.
func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return fmt.Sprintf("%s: %s", err.kind, err.message)
	}
	return fmt.Sprintf("%s: %s: %s", err.kind, err.deco[0], err.message)
}

// Unwrap returns the error Kind.
func (err *Error) Unwrap() error { return err.kind }

// Decorate adds dec to the decoration slice and returns it. An empty
// string only returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical is always true for now, numeric code has no transient failures.
func (err *Error) Critical() bool { return err.critical }

// Trace returns the decoration chain, innermost function first.
func (err *Error) Trace() string { return strings.Join(err.deco, " <- ") }

// Decorate adds caller to err if it is an *Error, otherwise it wraps
// err with the caller name. A nil err stays nil.
func Decorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	return fmt.Errorf("%s: %w", caller, err)
}
