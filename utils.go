package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CleanSplit splits a string using strings.Split and then removes
// empty entries
func CleanSplit(str, sep string) []string {
	lines := strings.Split(str, sep)
	clean := make([]string, 0, len(lines))
	for s := range lines {
		if lines[s] != "" {
			clean = append(clean, lines[s])
		}
	}
	return clean
}

// ReadLines reads a file and returns a slice of strings of its
// lines. Blank lines are kept because the Gaussian input and punch
// formats use them as block delimiters.
func ReadLines(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// isInt reports whether s parses as a base-10 integer
func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// debugf prints a diagnostic message to stderr when the -d flag is
// set
func debugf(format string, a ...interface{}) {
	if *debug {
		fmt.Fprintf(os.Stderr, format+"\n", a...)
	}
}

// Warn prints a warning message to stderr
func Warn(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", a...)
}

func errExit(err error, msg string) {
	fmt.Fprintf(os.Stderr, "readgeom: %v %s\n", err, msg)
	os.Exit(1)
}
