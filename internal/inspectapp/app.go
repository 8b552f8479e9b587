// internal/inspectapp/app.go
package inspectapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"neoscan/internal/envcfg"
	"neoscan/internal/inspectcli"
	"neoscan/internal/jsonutil"
	"neoscan/internal/logx"
	"neoscan/internal/output"
	"neoscan/internal/version"
	"neoscan/pkg/api"

	"neoscan-core/extract"
	"neoscan-core/neo"
	"neoscan-core/neodb"
)

// inspectV1 is the --json --approaches shape: the NEO plus its approach
// records (which omit the redundant embedded NEO).
type inspectV1 struct {
	Neo        api.NeoV1           `json:"neo"`
	Approaches []inspectApproachV1 `json:"approaches"`
}

type inspectApproachV1 struct {
	DatetimeUTC string  `json:"datetime_utc"`
	DistanceAU  float64 `json:"distance_au"`
	VelocityKmS float64 `json:"velocity_km_s"`
}

// RunContext executes the inspect command. Exit codes: 0 found, 1 no
// matching NEO, 2 usage or data error, 3 write error.
func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := inspectcli.NewFlagSet("neoscan-inspect")
	fs.SetOutput(io.Discard)

	opts, err := inspectcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "neoscan-inspect version %s\n", version.Version)
		return 0
	}

	log := logx.New(stderr, opts.Verbose)

	paths := envcfg.Load()
	if opts.NEOFile == "" {
		opts.NEOFile = paths.NEOFile
	}
	if opts.CADFile == "" {
		opts.CADFile = paths.CADFile
	}

	neos, err := extract.LoadNEOs(opts.NEOFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	approaches, err := extract.LoadApproaches(opts.CADFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	log.Debug("catalogs loaded", "neos", len(neos), "approaches", len(approaches))

	db, err := neodb.New(neos, approaches)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	var n *neo.NearEarthObject
	var ok bool
	if opts.Pdes != "" {
		n, ok = db.ByDesignation(opts.Pdes)
	} else {
		n, ok = db.ByName(opts.Name)
	}
	if !ok {
		_, _ = fmt.Fprintln(stderr, "no matching NEO found")
		return 1
	}

	if err := render(outw, n, opts); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if err := outw.Flush(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func render(w io.Writer, n *neo.NearEarthObject, opts inspectcli.Options) error {
	if !opts.JSON {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
		if opts.Approaches {
			for _, ca := range n.Approaches {
				if _, err := fmt.Fprintf(w, "- %s\n", ca); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if !opts.Approaches {
		return jsonutil.EncodePretty(w, output.ToAPINeo(n))
	}
	doc := inspectV1{
		Neo:        output.ToAPINeo(n),
		Approaches: make([]inspectApproachV1, 0, len(n.Approaches)),
	}
	for _, ca := range n.Approaches {
		doc.Approaches = append(doc.Approaches, inspectApproachV1{
			DatetimeUTC: ca.TimeStr(),
			DistanceAU:  ca.Distance,
			VelocityKmS: ca.Velocity,
		})
	}
	return jsonutil.EncodePretty(w, doc)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
