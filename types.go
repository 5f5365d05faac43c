package main

import (
	"path/filepath"
	"strings"
)

// Format tags the quantum chemistry package and file role detected
// from a path's extension.
type Format int

const (
	Unsupported Format = iota
	GaussianInput
	GaussianLog
	MolproInput
	MolproOutput
)

func (f Format) String() string {
	return []string{
		"unsupported",
		"gaussian-input",
		"gaussian-log",
		"molpro-input",
		"molpro-output",
	}[f]
}

// Locator returns the coordinate block locator for f, or nil for
// Unsupported.
func (f Format) Locator() Locator {
	switch f {
	case GaussianInput:
		return gaussInput{}
	case GaussianLog:
		return gaussLog{}
	case MolproInput:
		return molproInput{}
	case MolproOutput:
		return molproOutput{}
	}
	return nil
}

// DetectFormat classifies a file path by its lowercased extension
// alone, with no content sniffing. The four built-in extensions
// always win; additional extensions may be registered in the
// configuration file.
func DetectFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".com":
		return GaussianInput
	case ".log":
		return GaussianLog
	case ".in":
		return MolproInput
	case ".out":
		return MolproOutput
	}
	if f, ok := Conf.Exts[ext]; ok {
		return f
	}
	return Unsupported
}

// Method records which strategy produced the coordinates from a
// Gaussian log file. It is None for every other format.
type Method int

const (
	None Method = iota
	Punch
	StandardOrientation
)

func (m Method) String() string {
	return []string{
		"",
		"punch",
		"standard-orientation",
	}[m]
}

// Atom is a single atomic center: an element symbol and Cartesian
// coordinates in whatever unit the source file used.
type Atom struct {
	Sym     string
	X, Y, Z float64
}

// Result holds everything extracted from one file. It is built once
// by Extract and never modified afterward.
type Result struct {
	Path    string
	Format  Format
	Method  Method
	Atoms   []Atom
	Formula string
}

// A Locator scans the lines of a file for its single authoritative
// coordinate block and returns the block as canonical "elem x y z"
// lines, where elem is an element symbol or an atomic number.
type Locator interface {
	Locate(lines []string) (block []string, method Method, err error)
}
