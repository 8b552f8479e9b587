// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"neoscan/internal/output"
	"neoscan/internal/version"

	"neoscan-core/filters"
)

// Options holds all CLI flags and arguments for the query command.
type Options struct {
	// Data files ("" = resolve from env/.env)
	NEOFile string
	CADFile string

	// Query
	QueryFile string
	Criteria  filters.Criteria

	// Output
	Output  string // csv | json
	OutFile string // "" = stdout
	Header  bool   // true unless --no-header

	Verbose bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: query NASA close-approach data and write CSV or JSON

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

	// Data files
	fs.StringVar(&opt.NEOFile, "neofile", "", "NEO catalog CSV (default $NEOSCAN_NEO_PATH or data/neos.csv)")
	fs.StringVar(&opt.CADFile, "cadfile", "", "close-approach JSON (default $NEOSCAN_CAD_PATH or data/cad.json)")

	// Query bounds (inline)
	var dateStr, startStr, endStr string
	fs.StringVar(&dateStr, "date", "", "only approaches on this date (YYYY-MM-DD)")
	fs.StringVar(&startStr, "start-date", "", "only approaches on or after this date (YYYY-MM-DD)")
	fs.StringVar(&endStr, "end-date", "", "only approaches on or before this date (YYYY-MM-DD)")

	minDist := fs.Float64("min-distance", math.NaN(), "minimum approach distance (au)")
	maxDist := fs.Float64("max-distance", math.NaN(), "maximum approach distance (au)")
	minVel := fs.Float64("min-velocity", math.NaN(), "minimum relative velocity (km/s)")
	maxVel := fs.Float64("max-velocity", math.NaN(), "maximum relative velocity (km/s)")
	minDiam := fs.Float64("min-diameter", math.NaN(), "minimum NEO diameter (km)")
	maxDiam := fs.Float64("max-diameter", math.NaN(), "maximum NEO diameter (km)")

	var hazardous, notHazardous bool
	fs.BoolVar(&hazardous, "hazardous", false, "only potentially hazardous NEOs")
	fs.BoolVar(&notHazardous, "not-hazardous", false, "only NEOs not marked potentially hazardous")

	fs.IntVar(&opt.Criteria.Limit, "limit", 0, "emit at most N approaches (0 = all) [0]")

	// Saved query
	fs.StringVar(&opt.QueryFile, "query", "", "YAML saved-query file (conflicts with inline bounds)")

	// Output
	fs.StringVar(&opt.Output, "output", "", "output format: csv | json (default by --outfile extension, else csv)")
	fs.StringVar(&opt.OutFile, "outfile", "", "write to this path atomically instead of stdout")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress the CSV header row [false]")

	fs.BoolVar(&opt.Verbose, "verbose", false, "log load and match counts to stderr [false]")
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
	opt.Header = !noHeader

	// Validation
	if hazardous && notHazardous {
		return opt, errors.New("--hazardous conflicts with --not-hazardous")
	}
	var err error
	if opt.Criteria.Date, err = parseDateFlag("--date", dateStr); err != nil {
		return opt, err
	}
	if opt.Criteria.StartDate, err = parseDateFlag("--start-date", startStr); err != nil {
		return opt, err
	}
	if opt.Criteria.EndDate, err = parseDateFlag("--end-date", endStr); err != nil {
		return opt, err
	}
	opt.Criteria.MinDistance = optFloat(*minDist)
	opt.Criteria.MaxDistance = optFloat(*maxDist)
	opt.Criteria.MinVelocity = optFloat(*minVel)
	opt.Criteria.MaxVelocity = optFloat(*maxVel)
	opt.Criteria.MinDiameter = optFloat(*minDiam)
	opt.Criteria.MaxDiameter = optFloat(*maxDiam)
	if hazardous || notHazardous {
		opt.Criteria.Hazardous = &hazardous
	}
	if opt.Criteria.Limit < 0 {
		return opt, errors.New("--limit must be >= 0")
	}
	if opt.QueryFile != "" && hasInlineBounds(opt.Criteria) {
		return opt, errors.New("--query conflicts with inline filter flags")
	}

	if opt.Output, err = resolveFormat(opt.Output, opt.OutFile); err != nil {
		return opt, err
	}
	return opt, nil
}

func parseDateFlag(name, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%s: want YYYY-MM-DD, got %q", name, v)
	}
	return &t, nil
}

// optFloat turns a flag's NaN sentinel default into "no bound".
func optFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func hasInlineBounds(c filters.Criteria) bool {
	return c.Date != nil || c.StartDate != nil || c.EndDate != nil ||
		c.MinDistance != nil || c.MaxDistance != nil ||
		c.MinVelocity != nil || c.MaxVelocity != nil ||
		c.MinDiameter != nil || c.MaxDiameter != nil ||
		c.Hazardous != nil || c.Limit != 0
}

// resolveFormat picks the output format: explicit flag first, then the
// outfile extension, then csv.
func resolveFormat(format, outfile string) (string, error) {
	switch format {
	case output.FormatCSV, output.FormatJSON:
		return format, nil
	case "":
	default:
		return "", fmt.Errorf("invalid --output %q", format)
	}
	switch strings.ToLower(filepath.Ext(outfile)) {
	case ".csv":
		return output.FormatCSV, nil
	case ".json":
		return output.FormatJSON, nil
	case "":
		return output.FormatCSV, nil
	default:
		return "", fmt.Errorf("cannot infer output format from %q; pass --output", outfile)
	}
}
