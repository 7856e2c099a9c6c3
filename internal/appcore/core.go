// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"orfscan-core/orf"
	"orfscan/internal/cmdutil"
	"orfscan/internal/pipeline"
	"orfscan/internal/writers"
)

type Options struct {
	SeqFiles []string

	MinLength int

	Threads int

	Quiet           bool
	NoMatchExitCode int
}

type VisitorFunc[T any] func(orf.Hit) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run drives the scan pipeline end to end and maps failures onto process
// exit codes: 0 ok, 2 usage, 3 I/O or write failure, 130 canceled, and
// NoMatchExitCode when no ORF survived the visitor.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	if o.MinLength < 0 {
		fmt.Fprintf(stderr, "error: --min-length (%d) must be ≥ 0\n", o.MinLength)
		return 2
	}

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{
			Threads:   thr,
			MinLength: o.MinLength,
		},
		o.SeqFiles,
		orf.Scanner{},
		visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return 0
}
