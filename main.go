/*
readgeom
--------
Extract atomic coordinates from Gaussian (.com, .log) and MOLPRO
(.in, .out) files, derive the molecular formula, and report both as
a table, CSV, or XYZ.
*/

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Errors used throughout. All of them are file-scoped: one file
// failing never stops the rest of a batch.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrBlockNotFound     = errors.New("coordinate block not found")
	ErrMalformedLine     = errors.New("malformed coordinate line")
	ErrEmptyBlock        = errors.New("coordinate block contains no atoms")
	ErrIO                = errors.New("file unreadable")
)

// gatherFiles expands args as literal paths or glob patterns and
// returns the deduplicated, sorted list of files to process
func gatherFiles(args []string) []string {
	seen := make(map[string]bool)
	add := func(path string) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			seen[path] = true
		}
	}
	for _, arg := range args {
		if _, err := os.Stat(arg); err == nil {
			add(arg)
			continue
		}
		matches, err := filepath.Glob(arg)
		if err != nil || len(matches) == 0 {
			Warn("no files match %q", arg)
			continue
		}
		for _, m := range matches {
			add(m)
		}
	}
	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// run processes every file named by args, printing results on out
// and per-file diagnostics on errw. The return value follows the
// process exit contract: 0 if at least one file was extracted, 1 if
// none were.
func run(args []string, out, errw io.Writer) int {
	files := gatherFiles(args)
	if len(files) == 0 {
		fmt.Fprintf(errw, "readgeom: no valid input files\n")
		return 1
	}
	var ok int
	for _, file := range files {
		res, err := Extract(file)
		if err != nil {
			fmt.Fprintf(errw, "readgeom: %v\n", err)
			continue
		}
		if *debug {
			debugf("%s: detected %s", file, res.Format)
			if res.Method != None {
				debugf("%s: coordinates from %s section", file, res.Method)
			}
			c := Centroid(res.Atoms)
			debugf("%s: geometric center (%.6f, %.6f, %.6f)",
				file, c[0], c[1], c[2])
		}
		if ok > 0 && Conf.Format == "table" {
			fmt.Fprintln(out, "---")
		}
		Render(out, res)
		ok++
	}
	if ok == 0 {
		return 1
	}
	return 0
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "readgeom: unexpected error: %v\n", r)
			os.Exit(2)
		}
	}()
	args := ParseFlags()
	if len(args) < 1 {
		errExit(errors.New("no input files"), "- usage: readgeom [flags] file...")
	}
	os.Exit(run(args, os.Stdout, os.Stderr))
}
