/*
 * exponent.go, part of gognn.
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

/*Package exponent gives read-only access to a table of Slater-type orbital
exponents for the elements H to Rn, used to build atom features.

A zero exponent means the orbital is not populated for that element. An
atomic number or orbital outside the table is an error, never a zero, so
the two cases cannot be confused.*/
package exponent

import (
	"errors"
	"fmt"
	"strings"
)

// MaxZ is the largest atomic number in the table (Rn).
const MaxZ = 86

// NOrbitals is the number of orbitals (columns) in the table.
const NOrbitals = 15

// Orbital indexes a column of the table, in aufbau order.
type Orbital int

const (
	Orb1s Orbital = iota
	Orb2s
	Orb2p
	Orb3s
	Orb3p
	Orb4s
	Orb3d
	Orb4p
	Orb5s
	Orb4d
	Orb5p
	Orb6s
	Orb4f
	Orb5d
	Orb6p
)

var orbitalNames = [NOrbitals]string{"1s", "2s", "2p", "3s", "3p", "4s", "3d", "4p", "5s", "4d", "5p", "6s", "4f", "5d", "6p"}

func (o Orbital) String() string {
	if o < 0 || int(o) >= NOrbitals {
		return fmt.Sprintf("Orbital(%d)", int(o))
	}
	return orbitalNames[o]
}

// ParseOrbital accepts an orbital name such as "3d".
func ParseOrbital(name string) (Orbital, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, v := range orbitalNames {
		if v == n {
			return Orbital(i), nil
		}
	}
	return 0, Error{fmt.Sprintf("unknown orbital %q", name), "ParseOrbital"}
}

// ErrOutOfRange is matched, through errors.Is, by every lookup error of
// this package.
var ErrOutOfRange = errors.New("gognn/exponent: out of range")

// Error is returned by the lookups in this package.
type Error struct {
	message string
	caller  string
}

func (err Error) Error() string {
	return fmt.Sprintf("gognn/exponent.%s: %s", err.caller, err.message)
}

func (err Error) Unwrap() error { return ErrOutOfRange }

func checkZ(z int, caller string) error {
	if z < 1 || z > MaxZ {
		return Error{fmt.Sprintf("atomic number %d outside [1,%d]", z, MaxZ), caller}
	}
	return nil
}

// Exponent returns the exponent of orbital orb for the element with atomic
// number z. It returns 0 for orbitals not populated in that element.
func Exponent(z int, orb Orbital) (float64, error) {
	if err := checkZ(z, "Exponent"); err != nil {
		return 0, err
	}
	if orb < 0 || int(orb) >= NOrbitals {
		return 0, Error{fmt.Sprintf("orbital index %d outside [0,%d)", int(orb), NOrbitals), "Exponent"}
	}
	return table[z][orb], nil
}

// Row returns a copy of the exponents of all orbitals of element z.
func Row(z int) ([NOrbitals]float64, error) {
	if err := checkZ(z, "Row"); err != nil {
		return [NOrbitals]float64{}, err
	}
	return table[z], nil
}

// Populated returns the orbitals with a non-zero exponent for element z.
func Populated(z int) ([]Orbital, error) {
	if err := checkZ(z, "Populated"); err != nil {
		return nil, err
	}
	var ret []Orbital
	for i, v := range table[z] {
		if v != 0 {
			ret = append(ret, Orbital(i))
		}
	}
	return ret, nil
}

// Z returns the atomic number of an element symbol. The match ignores case.
func Z(symbol string) (int, error) {
	s := strings.TrimSpace(symbol)
	for i := 1; i <= MaxZ; i++ {
		if strings.EqualFold(symbols[i], s) {
			return i, nil
		}
	}
	return 0, Error{fmt.Sprintf("unknown element %q", symbol), "Z"}
}

// Symbol returns the element symbol for atomic number z.
func Symbol(z int) (string, error) {
	if err := checkZ(z, "Symbol"); err != nil {
		return "", err
	}
	return symbols[z], nil
}
