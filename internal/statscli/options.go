// internal/statscli/options.go
package statscli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"orfscan/internal/clibase"
	"orfscan/internal/cliutil"
)

// Options holds all orfstats CLI flags and arguments.
type Options struct {
	clibase.Common

	// Compare is a second genome to test against the first.
	Compare string

	// GCDetail includes the per-record GC vector in JSON output.
	GCDetail bool
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	noHeader := clibase.Register(fs, &opt.Common)

	fs.StringVar(&opt.Compare, "compare", "", "second genome FASTA to compare against")
	fs.StringVar(&opt.Compare, "c", "", "alias of --compare")
	fs.BoolVar(&opt.GCDetail, "gc-detail", false, "include per-record GC contents in JSON output [false]")

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
	switch opt.Output {
	case "text", "json":
	default:
		return opt, fmt.Errorf("orfstats supports --output text | json, not %q", opt.Output)
	}
	if len(opt.SeqFiles) != 1 {
		return opt, errors.New("orfstats profiles exactly one --sequences file (use --compare for a second genome)")
	}
	return opt, nil
}

// Usage installs the orfstats usage text on fs.
func Usage(fs *flag.FlagSet, name string) {
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --sequences reference.fa\n", name)
		fmt.Fprintf(out, "  %s -s reference.fa --compare target.fa --output json\n", name)

		fmt.Fprintln(out, "\nComparison:")
		fmt.Fprintf(out, "  -c, --compare file          Second genome FASTA to compare against [%s]\n", def("compare"))
		fmt.Fprintf(out, "      --gc-detail             Include per-record GC contents in JSON [%s]\n", def("gc-detail"))
	})
}
