package main

import (
	"flag"
	"fmt"
	"os"
)

const help = `Extract atomic coordinates from quantum chemistry files.

Supported file types:
  Gaussian: .com (input), .log (output)
  MOLPRO:   .in (input), .out (output)

For Gaussian log files the archive (punch) entry is used when the
job terminated normally; otherwise the last standard orientation
table is taken. For MOLPRO files the last geometry section wins.

Usage: readgeom [flags] file...
Flags:
`

var VERSION = "dev"

var (
	compact  = flag.Bool("c", false, "print only the summary line for each file")
	confFile = flag.String("conf", "", "read defaults from a TOML configuration `file`")
	debug    = flag.Bool("d", false, "enable debug output on stderr")
	format   = flag.String("format", "", "output format: table, csv, or xyz")
	prec     = flag.Int("prec", -1, "decimal places for printed coordinates")
	version  = flag.Bool("version", false, "print the version and exit")
)

// ParseFlags parses the command line, folds the flag values over the
// configuration file defaults, and returns the remaining arguments
func ParseFlags() []string {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Printf("readgeom version: %s\n", VERSION)
		os.Exit(0)
	}
	if *confFile != "" {
		c, err := LoadConfig(*confFile)
		if err != nil {
			errExit(err, "loading configuration")
		}
		Conf = c
	}
	foldFlags()
	return flag.Args()
}

// foldFlags applies every flag set on the command line over Conf. A
// precision of zero is a real setting, so the unset -prec sentinel is
// negative.
func foldFlags() {
	if *format != "" {
		switch *format {
		case "table", "csv", "xyz":
			Conf.Format = *format
		default:
			errExit(fmt.Errorf("unknown output format %q", *format),
				"parsing flags")
		}
	}
	if *compact {
		Conf.Compact = true
	}
	if *prec >= 0 {
		Conf.Precision = *prec
	}
}
