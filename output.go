package main

import (
	"fmt"
	"io"
)

// Render writes res to w in the configured output format
func Render(w io.Writer, res *Result) {
	switch Conf.Format {
	case "csv":
		WriteCSV(w, res, !Conf.Compact)
	case "xyz":
		WriteXYZ(w, res)
	default:
		WriteTable(w, res, !Conf.Compact)
	}
}

// WriteTable prints res as a human-readable table: a summary line
// with the atom count and formula, then one row per atom unless
// details is false.
func WriteTable(w io.Writer, res *Result, details bool) {
	fmt.Fprintf(w, "Coordinates from %s | Atoms: %d | Formula: %s\n",
		res.Path, len(res.Atoms), res.Formula)
	if !details {
		return
	}
	fmt.Fprintln(w)
	p := Conf.Precision
	for _, a := range res.Atoms {
		fmt.Fprintf(w, "%-8s %-15.*f %-15.*f %-15.*f\n",
			a.Sym, p, a.X, p, a.Y, p, a.Z)
	}
	fmt.Fprintln(w)
}

// WriteCSV prints res as comma-separated values behind a commented
// summary line.
func WriteCSV(w io.Writer, res *Result, details bool) {
	fmt.Fprintf(w, "# File: %s, Atoms: %d, Formula: %s\n",
		res.Path, len(res.Atoms), res.Formula)
	if !details {
		return
	}
	fmt.Fprintln(w, "Element,X,Y,Z")
	p := Conf.Precision
	for _, a := range res.Atoms {
		fmt.Fprintf(w, "%s,%.*f,%.*f,%.*f\n", a.Sym, p, a.X, p, a.Y, p, a.Z)
	}
}

// WriteXYZ prints res as a standard XYZ frame: the atom count, a
// comment line carrying the formula and source path, and one
// "Sym x y z" row per atom.
func WriteXYZ(w io.Writer, res *Result) {
	fmt.Fprintf(w, "%d\n%s %s\n", len(res.Atoms), res.Formula, res.Path)
	p := Conf.Precision
	for _, a := range res.Atoms {
		fmt.Fprintf(w, "%s %.*f %.*f %.*f\n", a.Sym, p, a.X, p, a.Y, p, a.Z)
	}
}
