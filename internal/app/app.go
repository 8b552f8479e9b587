// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"neoscan/internal/cli"
	"neoscan/internal/envcfg"
	"neoscan/internal/logx"
	"neoscan/internal/output"
	"neoscan/internal/queryfile"
	"neoscan/internal/version"
	"neoscan/internal/writefile"
	"neoscan/internal/writers"

	"neoscan-core/extract"
	"neoscan-core/filters"
	"neoscan-core/neo"
	"neoscan-core/neodb"
)

// RunContext executes the query command: load both catalogs, link, filter,
// and serialize the matching approaches. Exit codes: 0 ok, 2 usage or data
// error, 3 write error, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("neoscan")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"}) // register flags for PrintDefaults
		fs.SetOutput(outw)
		fs.Usage()
		return flushOr(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushOr(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushOr(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "neoscan version %s\n", version.Version)
		return flushOr(outw, stderr, 0)
	}

	log := logx.New(stderr, opts.Verbose)

	paths := envcfg.Load()
	if opts.NEOFile == "" {
		opts.NEOFile = paths.NEOFile
	}
	if opts.CADFile == "" {
		opts.CADFile = paths.CADFile
	}

	criteria := opts.Criteria
	if opts.QueryFile != "" {
		q, err := queryfile.Load(opts.QueryFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		if criteria, err = q.Criteria(); err != nil {
			_, _ = fmt.Fprintf(stderr, "%s: %v\n", opts.QueryFile, err)
			return 2
		}
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

	results := filters.Limit(db.Query(criteria.Build()...), criteria.Limit)
	log.Debug("query evaluated", "matched", len(results))
	if len(results) == 0 {
		log.Warn("no close approaches matched the query")
	}

	if opts.OutFile != "" {
		err := writefile.Atomic(opts.OutFile, func(w io.Writer) error {
			switch opts.Output {
			case output.FormatJSON:
				return output.WriteJSON(w, results)
			default:
				return output.WriteCSV(w, results, opts.Header)
			}
		})
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	return streamTo(parent, outw, stderr, opts, results)
}

// streamTo feeds the result set through a writer goroutine to stdout,
// honouring cancellation between records.
func streamTo(parent context.Context, outw *bufio.Writer, stderr io.Writer, opts cli.Options, results []*neo.CloseApproach) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	inCh, writeErr := writers.StartApproachWriter(outw, opts.Output, opts.Header, 0)

	var sendErr error
	for _, ca := range results {
		if sendErr = ctx.Err(); sendErr != nil {
			break
		}
		select {
		case inCh <- ca:
		case <-ctx.Done():
			sendErr = ctx.Err()
		}
		if sendErr != nil {
			break
		}
	}
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	if errors.Is(sendErr, context.Canceled) {
		return 130
	}
	return 0
}

// flushOr flushes the buffered writer, downgrading broken pipes to success
// and reporting other flush failures as exit 3.
func flushOr(outw *bufio.Writer, stderr io.Writer, ok int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ok
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return ok
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
