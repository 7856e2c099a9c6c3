// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"orfscan/internal/cliutil"
)

// Common holds CLI fields shared by orfscan, orfstats, and orfvalidate.
type Common struct {
	// Input
	SeqFiles []string

	// Scanning
	MinLength int

	// Performance
	Threads int

	// Output
	Output string // text|json|jsonl|fasta
	Sort   bool
	Header bool

	// Misc
	Quiet   bool
	Version bool
}

// sliceValue appends each value to a *[]string (for --sequences/-s).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires the shared flags onto fs and returns a pointer to the
// "no-header" bool the caller uses to set Common.Header after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Inputs
	seqVal := &sliceValue{dst: &c.SeqFiles}
	fs.Var(seqVal, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")

	// Scanning
	fs.IntVar(&c.MinLength, "min-length", 100, "minimum ORF length in nucleotides [100]")

	// Performance
	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output: text | json | jsonl | fasta [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	fs.BoolVar(&c.Sort, "sort", false, "sort outputs deterministically [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes the header toggle, expands positional globs into
// SeqFiles, and runs the shared validation.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.SeqFiles = append(c.SeqFiles, exp...)
	}
	return Validate(c)
}

// Validate applies the CLI invariants shared by all tools.
func Validate(c *Common) error {
	if len(c.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required")
	}
	if c.MinLength < 0 {
		return errors.New("--min-length must be ≥ 0")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch c.Output {
	case "text", "json", "jsonl", "fasta":
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	return nil
}
