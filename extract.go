package main

import (
	"fmt"
)

// Extract runs the full pipeline on one file: detect the format from
// the path, read the file, locate its coordinate block, parse each
// line of the block, and assemble the Result. Every failure is a
// typed, file-scoped error; nothing here touches shared state, so
// sibling files in a batch are unaffected.
func Extract(path string) (*Result, error) {
	format := DetectFormat(path)
	if format == Unsupported {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	lines, err := ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrIO, err)
	}
	block, method, err := format.Locator().Locate(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	atoms := make([]Atom, 0, len(block))
	for _, line := range block {
		a, err := ParseCoordLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		atoms = append(atoms, a)
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyBlock)
	}
	return &Result{
		Path:    path,
		Format:  format,
		Method:  method,
		Atoms:   atoms,
		Formula: MakeName(atoms),
	}, nil
}
