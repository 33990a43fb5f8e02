package exponent

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestReference(Te *testing.T) {
	cases := []struct {
		z    int
		orb  Orbital
		want float64
	}{
		{1, Orb1s, 1.6875}, //H uses the He value
		{2, Orb2s, 0.0},    //He has no 2s
		{8, Orb2p, 2.2266},
		{36, Orb4p, 2.4423},
		{86, Orb6s, 3.054},
		{86, Orb6p, 2.6793},
	}
	for _, c := range cases {
		v, err := Exponent(c.z, c.orb)
		if err != nil {
			Te.Fatal(err)
		}
		if v != c.want {
			Te.Errorf("Exponent(%d,%v): got %v, want %v", c.z, c.orb, v, c.want)
		}
	}
	v, err := Exponent(86, 11)
	if err != nil || v != 3.054 {
		Te.Errorf("Exponent(86,11): got %v (%v), want the Rn 6s value 3.054", v, err)
	}
}

func TestOutOfRange(Te *testing.T) {
	for _, z := range []int{0, -1, MaxZ + 1} {
		_, err := Exponent(z, Orb1s)
		if err == nil {
			Te.Errorf("Exponent(%d): expected an error", z)
			continue
		}
		if !errors.Is(err, ErrOutOfRange) {
			Te.Errorf("Exponent(%d): error %v does not match ErrOutOfRange", z, err)
		}
		fmt.Println(err)
	}
	if _, err := Exponent(6, NOrbitals); !errors.Is(err, ErrOutOfRange) {
		Te.Errorf("orbital %d should be out of range, got %v", NOrbitals, err)
	}
	if _, err := Row(87); err == nil {
		Te.Error("Row(87) should fail")
	}
}

// The table must be finite, non-negative and, since every element has
// at least as many electrons as the previous one, the 1s exponent must
// grow with Z.
func TestTableSanity(Te *testing.T) {
	prev := 0.0
	for z := 1; z <= MaxZ; z++ {
		row, err := Row(z)
		if err != nil {
			Te.Fatal(err)
		}
		for o, v := range row {
			if v < 0 || v > 100 {
				Te.Errorf("Z=%d %v: implausible exponent %v", z, Orbital(o), v)
			}
		}
		if row[Orb1s] < prev {
			Te.Errorf("Z=%d: 1s exponent %v smaller than Z-1 (%v)", z, row[Orb1s], prev)
		}
		prev = row[Orb1s]
	}
}

func TestSymbols(Te *testing.T) {
	for _, c := range []struct {
		s string
		z int
	}{{"H", 1}, {"o", 8}, {"Fe", 26}, {"rn", 86}} {
		z, err := Z(c.s)
		if err != nil || z != c.z {
			Te.Errorf("Z(%q): got %d (%v), want %d", c.s, z, err, c.z)
		}
		s, _ := Symbol(c.z)
		if !strings.EqualFold(s, c.s) {
			Te.Errorf("Symbol(%d): got %s", c.z, s)
		}
	}
	if _, err := Z("Og"); err == nil {
		Te.Error("Og is not in the table")
	}
	orbs, err := Populated(8)
	if err != nil {
		Te.Fatal(err)
	}
	if len(orbs) != 3 || orbs[2] != Orb2p {
		Te.Errorf("oxygen populates 1s 2s 2p, got %v", orbs)
	}
	o, err := ParseOrbital("6s")
	if err != nil || o != Orb6s || o.String() != "6s" {
		Te.Errorf("ParseOrbital(6s): got %v %v", o, err)
	}
}
