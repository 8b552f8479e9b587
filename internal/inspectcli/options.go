// internal/inspectcli/options.go
package inspectcli

import (
	"errors"
	"flag"
	"fmt"

	"neoscan/internal/version"
)

// Options holds all CLI flags for the inspect command.
type Options struct {
	NEOFile string
	CADFile string

	Pdes string
	Name string

	Approaches bool
	JSON       bool

	Verbose bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: inspect a single NEO and its close approaches

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.NEOFile, "neofile", "", "NEO catalog CSV (default $NEOSCAN_NEO_PATH or data/neos.csv)")
	fs.StringVar(&opt.CADFile, "cadfile", "", "close-approach JSON (default $NEOSCAN_CAD_PATH or data/cad.json)")

	fs.StringVar(&opt.Pdes, "pdes", "", "primary designation to look up [*]")
	fs.StringVar(&opt.Name, "name", "", "IAU name to look up [*]")

	fs.BoolVar(&opt.Approaches, "approaches", false, "also list the NEO's close approaches [false]")
	fs.BoolVar(&opt.JSON, "json", false, "emit the serialized form instead of prose [false]")

	fs.BoolVar(&opt.Verbose, "verbose", false, "log load counts to stderr [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch {
	case opt.Pdes != "" && opt.Name != "":
		return opt, errors.New("--pdes conflicts with --name")
	case opt.Pdes == "" && opt.Name == "":
		return opt, errors.New("provide --pdes or --name")
	}
	return opt, nil
}
