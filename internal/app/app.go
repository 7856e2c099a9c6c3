// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"orfscan-core/orf"
	"orfscan/internal/appcore"
	"orfscan/internal/cli"
	"orfscan/internal/output"
	"orfscan/internal/version"
	"orfscan/internal/visitors"
	"orfscan/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("orfscan")
	fs.SetOutput(io.Discard)
	cli.Usage(fs, "orfscan")

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "orfscan version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	visit := visitors.PassThrough{}.Visit
	if opts.Translate {
		tr, terr := orf.NewTranslator(orf.BacterialTable)
		if terr != nil {
			_, _ = fmt.Fprintln(stderr, terr)
			return 2
		}
		visit = visitors.Translate{Tr: tr}.Visit
	}
	// Text rows stay terminal-friendly unless sequences were asked for.
	if opts.Output == output.FormatText && !opts.Seqs {
		inner := visit
		visit = func(h orf.Hit) (bool, orf.Hit, error) {
			keep, out, err := inner(h)
			out.Seq = ""
			return keep, out, err
		}
	}

	coreOpts := appcore.Options{
		SeqFiles:  opts.SeqFiles,
		MinLength: opts.MinLength,
		Threads:   opts.Threads,
		Quiet:     opts.Quiet, NoMatchExitCode: opts.NoMatchExitCode,
	}
	writer := appcore.NewHitWriterFactory(opts.Output, opts.Sort, opts.Header)
	return appcore.Run[orf.Hit](parent, stdout, stderr, coreOpts, visit, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
