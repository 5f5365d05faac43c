package main

import (
	"fmt"
	"regexp"
	"strings"
)

// Markers Gaussian writes into log files.
const (
	normalTermination   = "Normal termination"
	punchMarker         = "The archive entry for this job was punched."
	standardOrientation = "Standard orientation"
)

// chargeSpin matches a Gaussian charge and multiplicity line
var chargeSpin = regexp.MustCompile(`^\s*[+-]?\d+\s+[+-]?\d+\s*$`)

// gaussInput locates the geometry block of a Gaussian input (.com)
// file: the contiguous run of non-blank lines following the
// charge/multiplicity line.
type gaussInput struct{}

func (gaussInput) Locate(lines []string) ([]string, Method, error) {
	start := -1
	for i, line := range lines {
		if chargeSpin.MatchString(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, None, fmt.Errorf("%w: no charge/multiplicity line",
			ErrBlockNotFound)
	}
	var block []string
	for _, line := range lines[start:] {
		if strings.TrimSpace(line) == "" {
			break
		}
		block = append(block, line)
	}
	return block, None, nil
}

// gaussLog locates the converged geometry in a Gaussian log (.log)
// file, preferring the archive (punch) entry of a normally
// terminated job over the last standard orientation table.
type gaussLog struct{}

// logMethod decides the extraction strategy for a Gaussian log file.
// Only a normally terminated job with a usable punch section is read
// from the punch string; everything else falls back to the last
// standard orientation table.
func logMethod(terminated, punchPresent bool) Method {
	if terminated && punchPresent {
		return Punch
	}
	return StandardOrientation
}

func (gaussLog) Locate(lines []string) ([]string, Method, error) {
	var terminated bool
	for _, line := range lines {
		if strings.Contains(line, normalTermination) {
			terminated = true
			break
		}
	}
	var punch []string
	if terminated {
		punch = lastPunch(lines)
	}
	if logMethod(terminated, punch != nil) == Punch {
		return punch, Punch, nil
	}
	block, err := lastOrientation(lines)
	if err != nil {
		return nil, None, err
	}
	return block, StandardOrientation, nil
}

// lastPunch returns the coordinate entries of the last archive
// (punch) section in lines as canonical coordinate lines, or nil if
// no usable punch section exists. The archive is the run of
// backslash-carrying lines Gaussian prints just before the punch
// marker; a single forward scan keeps the most recent one.
func lastPunch(lines []string) []string {
	var run, last, punch []string
	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if strings.Contains(trim, `\`) {
			run = append(run, trim)
			continue
		}
		if run != nil {
			last, run = run, nil
		}
		if strings.Contains(trim, punchMarker) && last != nil {
			punch = last
		}
	}
	return punchCoords(punch)
}

// punchCoords joins the lines of an archive entry, splits it into
// its \\-delimited sections, and reshapes the coordinate section
// into "elem x y z" lines. The leading charge,multiplicity entry is
// dropped, as is the flag Gaussian inserts after the symbol in
// optimization archives.
func punchCoords(punch []string) []string {
	if punch == nil {
		return nil
	}
	// archive lines are wrapped mid-token, so strip all whitespace
	// before rejoining
	joined := strings.Join(strings.Fields(strings.Join(punch, "")), "")
	sections := strings.Split(joined, `\\`)
	if len(sections) < 4 || sections[3] == "" {
		return nil
	}
	entries := CleanSplit(sections[3], `\`)
	if len(entries) < 2 {
		return nil
	}
	var block []string
	for _, e := range entries[1:] {
		parts := strings.Split(e, ",")
		if len(parts) == 5 {
			parts = append(parts[:1], parts[2:]...)
		}
		block = append(block, strings.Join(parts, " "))
	}
	return block
}

// lastOrientation returns the rows of the last standard orientation
// table reshaped to "atomicnumber x y z" lines. Each table starts
// four lines after its banner and ends at the closing dash line.
func lastOrientation(lines []string) ([]string, error) {
	var (
		rows  []string
		in    bool
		skip  int
		found bool
	)
	for _, line := range lines {
		switch {
		case skip > 0:
			skip--
		case strings.Contains(line, standardOrientation):
			skip = 4
			in = true
			found = true
			rows = nil
		case in && (strings.Contains(line, "-----") ||
			strings.TrimSpace(line) == ""):
			in = false
		case in:
			rows = append(rows, line)
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: no punch or standard orientation section",
			ErrBlockNotFound)
	}
	block := make([]string, 0, len(rows))
	for _, row := range rows {
		fields := strings.Fields(row)
		if len(fields) < 6 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, row)
		}
		block = append(block, fields[1]+" "+strings.Join(fields[3:6], " "))
	}
	return block, nil
}
