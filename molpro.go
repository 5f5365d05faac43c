package main

import (
	"fmt"
	"regexp"
	"strings"
)

// geomOpen matches the opening marker of a MOLPRO geometry block,
// e.g. "geometry={" or "geom = {", case-insensitively.
var geomOpen = regexp.MustCompile(`(?i)\b(geometry|geom)\s*=\s*\{`)

// atomicCoords heads the coordinate table MOLPRO prints once per
// optimization step; the last one reflects the converged geometry.
const atomicCoords = "ATOMIC COORDINATES"

// molproInput locates the last geometry={...} block in a MOLPRO
// input (.in) file.
type molproInput struct{}

func (molproInput) Locate(lines []string) ([]string, Method, error) {
	block, found := lastGeomBlock(lines)
	if !found {
		return nil, None, fmt.Errorf("%w: no geometry block", ErrBlockNotFound)
	}
	return block, None, nil
}

// lastGeomBlock scans forward through lines keeping the contents of
// the most recent geom={...} block, with the markers, blank lines,
// comments, and keyword lines excluded. Content sharing a line with
// the opening or closing brace is honored.
func lastGeomBlock(lines []string) (block []string, found bool) {
	var (
		cur []string
		in  bool
	)
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if !in {
			loc := geomOpen.FindStringIndex(line)
			if loc == nil {
				continue
			}
			in, cur = true, nil
			line = strings.TrimSpace(line[loc[1]:])
			if line == "" {
				continue
			}
		}
		if i := strings.Index(line, "}"); i >= 0 {
			if head := strings.TrimSpace(line[:i]); keepGeomLine(head) {
				cur = append(cur, head)
			}
			block, found, in = cur, true, false
			continue
		}
		if keepGeomLine(line) {
			cur = append(cur, line)
		}
	}
	if in {
		// unterminated block still counts as located
		block, found = cur, true
	}
	return
}

// keepGeomLine reports whether a line inside a geometry block is a
// coordinate candidate rather than a blank, a comment, or a
// unit/keyword declaration.
func keepGeomLine(line string) bool {
	if line == "" || strings.HasPrefix(line, "!") ||
		strings.HasPrefix(line, "#") || strings.HasPrefix(line, "*") {
		return false
	}
	if strings.Contains(line, "=") {
		return false
	}
	fields := strings.Fields(line)
	if len(fields) >= 4 {
		// enough tokens to be a coordinate; let the parser decide
		return true
	}
	switch strings.ToLower(strings.Split(fields[0], ",")[0]) {
	case "angstrom", "bohr", "au", "symmetry", "nosym", "orient", "noorient":
		return false
	}
	return true
}

// molproOutput locates the last coordinate section in a MOLPRO
// output (.out) file. Outputs carry the echoed input geometry block
// as well as an ATOMIC COORDINATES table per optimization step; a
// single forward scan keeps whichever section occurred last.
type molproOutput struct{}

func (molproOutput) Locate(lines []string) ([]string, Method, error) {
	var (
		block  []string
		found  bool
		cur    []string
		ingeom bool
		intab  bool
	)
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case intab:
			if strings.Contains(line, atomicCoords) {
				cur = nil
				continue
			}
			fields := strings.Fields(line)
			if len(fields) >= 6 && isInt(fields[0]) {
				cur = append(cur, fields[1]+" "+strings.Join(fields[3:6], " "))
				continue
			}
			if line == "" || strings.Contains(line, "ATOM") {
				// padding or the column header
				continue
			}
			intab = false
			block, found = cur, true
		case ingeom:
			if i := strings.Index(line, "}"); i >= 0 {
				if head := strings.TrimSpace(line[:i]); keepGeomLine(head) {
					cur = append(cur, head)
				}
				block, found, ingeom = cur, true, false
				continue
			}
			if keepGeomLine(line) {
				cur = append(cur, line)
			}
		case strings.Contains(line, atomicCoords):
			intab, cur = true, nil
		default:
			if loc := geomOpen.FindStringIndex(line); loc != nil {
				ingeom, cur = true, nil
				if rest := strings.TrimSpace(line[loc[1]:]); rest != "" {
					if i := strings.Index(rest, "}"); i >= 0 {
						if head := strings.TrimSpace(rest[:i]); keepGeomLine(head) {
							cur = append(cur, head)
						}
						block, found, ingeom = cur, true, false
					} else if keepGeomLine(rest) {
						cur = append(cur, rest)
					}
				}
			}
		}
	}
	if intab || ingeom {
		block, found = cur, true
	}
	if !found {
		return nil, None, fmt.Errorf("%w: no geometry block or %s table",
			ErrBlockNotFound, atomicCoords)
	}
	return block, None, nil
}
