package main

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var elemRe = regexp.MustCompile(`^[A-Za-z]+$`)

// ParseCoordLine parses one canonical coordinate line into an Atom.
// The first token identifies the element, either as a symbol or as
// an atomic number, and the next three tokens are the x, y, and z
// coordinates. Anything that does not fit that shape, including
// non-finite coordinates, is a malformed line.
func ParseCoordLine(line string) (Atom, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Atom{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	var a Atom
	if elemRe.MatchString(fields[0]) {
		a.Sym = Capitalize(fields[0])
	} else {
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return Atom{}, fmt.Errorf("%w: bad element %q in %q",
				ErrMalformedLine, fields[0], line)
		}
		sym, ok := elements[n]
		if !ok {
			return Atom{}, fmt.Errorf("%w: no element %d in %q",
				ErrMalformedLine, n, line)
		}
		a.Sym = sym
	}
	for i, p := range []*float64{&a.X, &a.Y, &a.Z} {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Atom{}, fmt.Errorf("%w: bad coordinate %q in %q",
				ErrMalformedLine, fields[i+1], line)
		}
		*p = v
	}
	return a, nil
}

// Capitalize normalizes an element symbol to its conventional
// uppercase-initial form
func Capitalize(sym string) string {
	sym = strings.ToLower(sym)
	return strings.ToUpper(sym[:1]) + sym[1:]
}

// MakeName builds a molecular formula from atoms. Distinct elements
// are sorted alphabetically by symbol, and counts of one are
// omitted, so one carbon and four hydrogens give "CH4".
func MakeName(atoms []Atom) (name string) {
	counts := make(map[string]int)
	for _, a := range atoms {
		counts[Capitalize(a.Sym)]++
	}
	toSort := make([]string, 0, len(counts))
	for k := range counts {
		toSort = append(toSort, k)
	}
	sort.Strings(toSort)
	for _, k := range toSort {
		name += k
		if v := counts[k]; v > 1 {
			name += strconv.Itoa(v)
		}
	}
	return
}

// Centroid returns the geometric center of atoms, or nil for an
// empty slice.
func Centroid(atoms []Atom) []float64 {
	if len(atoms) == 0 {
		return nil
	}
	c := make([]float64, 3)
	for _, a := range atoms {
		floats.Add(c, []float64{a.X, a.Y, a.Z})
	}
	floats.Scale(1/float64(len(atoms)), c)
	return c
}
