package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// RawConf is the TOML shape of an optional readgeom configuration
// file:
//
//	format = "csv"
//	compact = false
//	precision = 6
//
//	[exts]
//	gjf = "gaussian-input"
type RawConf struct {
	Format    string
	Compact   bool
	Precision int
	Exts      map[string]string
}

// Config is the resolved configuration used throughout. Flags
// override whatever the file set.
type Config struct {
	Format    string
	Compact   bool
	Precision int
	Exts      map[string]Format
}

// Conf holds the active configuration; LoadConfig replaces it when a
// configuration file is given.
var Conf = Config{
	Format:    "table",
	Precision: 10,
}

// ParseFormatName resolves a format tag name from a configuration
// file to its Format.
func ParseFormatName(name string) (Format, bool) {
	switch strings.ToLower(name) {
	case "gaussian-input":
		return GaussianInput, true
	case "gaussian-log":
		return GaussianLog, true
	case "molpro-input":
		return MolproInput, true
	case "molpro-output":
		return MolproOutput, true
	}
	return Unsupported, false
}

// ToConfig validates rc and converts it to a Config
func (rc RawConf) ToConfig() (conf Config, err error) {
	switch rc.Format {
	case "table", "csv", "xyz":
	default:
		return conf, fmt.Errorf("unknown output format %q", rc.Format)
	}
	if rc.Precision < 0 {
		return conf, fmt.Errorf("negative precision %d", rc.Precision)
	}
	conf.Format = rc.Format
	conf.Compact = rc.Compact
	conf.Precision = rc.Precision
	conf.Exts = make(map[string]Format)
	for ext, name := range rc.Exts {
		f, ok := ParseFormatName(name)
		if !ok {
			return conf, fmt.Errorf("unknown format %q for extension %q",
				name, ext)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		conf.Exts[strings.ToLower(ext)] = f
	}
	return conf, nil
}

// LoadConfig reads a TOML configuration file, applying the default
// values for any keys it leaves unset.
func LoadConfig(filename string) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cont, err := io.ReadAll(f)
	if err != nil {
		return Config{}, err
	}
	// Defaults
	rc := RawConf{
		Format:    "table",
		Precision: 10,
	}
	if err := toml.Unmarshal(cont, &rc); err != nil {
		return Config{}, err
	}
	return rc.ToConfig()
}
