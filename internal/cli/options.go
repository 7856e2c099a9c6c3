// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"orfscan/internal/clibase"
	"orfscan/internal/cliutil"
)

// Options holds all orfscan CLI flags and arguments.
type Options struct {
	clibase.Common

	// Output extras
	Seqs      bool // emit ORF sequences in text output
	Translate bool // attach protein translations

	NoMatchExitCode int
}

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	noHeader := clibase.Register(fs, &opt.Common)

	fs.BoolVar(&opt.Seqs, "seqs", false, "emit ORF sequences in text output [false]")
	fs.BoolVar(&opt.Translate, "translate", false, "attach protein translations (NCBI table 11) [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no ORFs found [1]")

	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	if err := clibase.AfterParse(fs, &opt.Common, noHeader, posArgs); err != nil {
		return opt, err
	}
	if opt.NoMatchExitCode < 0 || opt.NoMatchExitCode > 255 {
		return opt, errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return opt, nil
}

// Usage installs the orfscan usage text on fs.
func Usage(fs *flag.FlagSet, name string) {
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --sequences genome.fa\n", name)
		fmt.Fprintf(out, "  %s --min-length 300 --output json genome.fa.gz\n", name)
		fmt.Fprintf(out, "  cat genome.fa | %s -s - --translate --output fasta\n", name)

		fmt.Fprintln(out, "\nScan output:")
		fmt.Fprintf(out, "      --seqs                  Emit ORF sequences in text output [%s]\n", def("seqs"))
		fmt.Fprintf(out, "      --translate             Attach protein translations (NCBI table 11) [%s]\n", def("translate"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no ORFs found [%s]\n", def("no-match-exit-code"))
	})
}
