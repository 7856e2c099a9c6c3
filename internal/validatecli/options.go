// internal/validatecli/options.go
package validatecli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"orfscan-core/validate"
	"orfscan/internal/clibase"
	"orfscan/internal/cliutil"
)

// Options holds all orfvalidate CLI flags and arguments.
type Options struct {
	clibase.Common

	// Target is the genome whose ORFs are validated against the
	// reference model (the --sequences genome is the reference).
	Target string

	// CleanedOut, when set, writes the N-stripped target FASTA here.
	CleanedOut string

	// Model knobs
	Threshold    float64
	Epochs       int
	Seed         int64
	ValSplit     float64
	LearningRate float64
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	noHeader := clibase.Register(fs, &opt.Common)

	fs.StringVar(&opt.Target, "target", "", "genome FASTA to validate (required)")
	fs.StringVar(&opt.CleanedOut, "cleaned-out", "", "write the N-stripped target FASTA to this path")

	fs.Float64Var(&opt.Threshold, "threshold", validate.DefaultThreshold, "keep ORFs with probability strictly above this [0.5]")
	fs.IntVar(&opt.Epochs, "epochs", validate.DefaultEpochs, "training passes over the reference ORFs [10]")
	fs.Int64Var(&opt.Seed, "seed", validate.DefaultSeed, "RNG seed for the train/validation split [42]")
	fs.Float64Var(&opt.ValSplit, "val-split", validate.DefaultValSplit, "fraction of reference ORFs held out for validation [0.2]")
	fs.Float64Var(&opt.LearningRate, "learning-rate", 0.05, "SGD learning rate [0.05]")

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
	if len(opt.SeqFiles) != 1 {
		return opt, errors.New("orfvalidate trains on exactly one --sequences reference genome")
	}
	if opt.Target == "" {
		return opt, errors.New("--target is required")
	}
	switch opt.Output {
	case "text", "json", "fasta":
	default:
		return opt, fmt.Errorf("orfvalidate supports --output text | json | fasta, not %q", opt.Output)
	}
	if opt.Threshold < 0 || opt.Threshold > 1 {
		return opt, errors.New("--threshold must be in [0, 1]")
	}
	if opt.Epochs < 1 {
		return opt, errors.New("--epochs must be ≥ 1")
	}
	if opt.ValSplit < 0 || opt.ValSplit >= 1 {
		return opt, errors.New("--val-split must be in [0, 1)")
	}
	if opt.LearningRate <= 0 {
		return opt, errors.New("--learning-rate must be > 0")
	}
	return opt, nil
}

// Usage installs the orfvalidate usage text on fs.
func Usage(fs *flag.FlagSet, name string) {
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --sequences reference.fa --target draft.fa\n", name)
		fmt.Fprintf(out, "  %s -s reference.fa --target draft.fa --threshold 0.8 --output json\n", name)

		fmt.Fprintln(out, "\nValidation:")
		fmt.Fprintf(out, "      --target file           Genome FASTA to validate (required)\n")
		fmt.Fprintf(out, "      --cleaned-out file      Write the N-stripped target FASTA here [%s]\n", def("cleaned-out"))
		fmt.Fprintf(out, "      --threshold float       Keep ORFs with probability > threshold [%s]\n", def("threshold"))

		fmt.Fprintln(out, "\nTraining:")
		fmt.Fprintf(out, "      --epochs int            Training passes over the reference ORFs [%s]\n", def("epochs"))
		fmt.Fprintf(out, "      --seed int              RNG seed for the train/validation split [%s]\n", def("seed"))
		fmt.Fprintf(out, "      --val-split float       Held-out validation fraction [%s]\n", def("val-split"))
		fmt.Fprintf(out, "      --learning-rate float   SGD learning rate [%s]\n", def("learning-rate"))
	})
}
