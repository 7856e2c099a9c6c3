// internal/statsapp/app.go
package statsapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"orfscan-core/fasta"
	"orfscan-core/profile"
	"orfscan/internal/cmdutil"
	"orfscan/internal/output"
	"orfscan/internal/statscli"
	"orfscan/internal/statsoutput"
	"orfscan/internal/version"
	"orfscan/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := flag.NewFlagSet("orfstats", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	statscli.Usage(fs, "orfstats")

	if len(argv) == 0 {
		_, _ = statscli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 0)
	}

	opts, err := statscli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "orfstats version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	logger := cmdutil.NewLogger(stderr, "orfstats", opts.Quiet)

	refFile := opts.SeqFiles[0]
	refStats, code := analyzeFile(parent, refFile, opts.MinLength, stderr)
	if code != 0 {
		return code
	}
	logger.Info("profiled genome", "file", refFile, "records", len(refStats.GCContents), "orfs", refStats.OrfCount)

	if opts.Compare == "" {
		if opts.Output == output.FormatJSON {
			err = statsoutput.WriteStatsJSON(outw, refFile, refStats, opts.GCDetail)
		} else {
			err = statsoutput.WriteStatsText(outw, refFile, refStats)
		}
		if err != nil && !writers.IsBrokenPipe(err) {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return flushExit(outw, stderr, 0)
	}

	cmpStats, code := analyzeFile(parent, opts.Compare, opts.MinLength, stderr)
	if code != 0 {
		return code
	}
	logger.Info("profiled genome", "file", opts.Compare, "records", len(cmpStats.GCContents), "orfs", cmpStats.OrfCount)

	rep := profile.Compare(refStats, cmpStats)
	if opts.Output == output.FormatJSON {
		err = statsoutput.WriteComparisonJSON(outw, refFile, opts.Compare, rep)
	} else {
		err = statsoutput.WriteComparisonText(outw, refFile, opts.Compare, rep)
	}
	if err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushExit(outw, stderr, 0)
}

func analyzeFile(ctx context.Context, path string, minLen int, stderr io.Writer) (profile.Stats, int) {
	recs, err := fasta.ReadAll(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return profile.Stats{}, 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return profile.Stats{}, 3
	}
	s, err := profile.Analyze(recs, minLen)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, fmt.Errorf("%s: %w", path, err))
		return profile.Stats{}, 3
	}
	return s, 0
}

func flushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
