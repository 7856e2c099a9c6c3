// internal/validateapp/app.go
package validateapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"

	"orfscan-core/clean"
	"orfscan-core/encode"
	"orfscan-core/fasta"
	"orfscan-core/orf"
	"orfscan-core/seqclass"
	"orfscan-core/validate"
	"orfscan/internal/cmdutil"
	"orfscan/internal/output"
	"orfscan/internal/validatecli"
	"orfscan/internal/validateoutput"
	"orfscan/internal/version"
	"orfscan/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := flag.NewFlagSet("orfvalidate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	validatecli.Usage(fs, "orfvalidate")

	if len(argv) == 0 {
		_, _ = validatecli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 0)
	}

	opts, err := validatecli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "orfvalidate version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	logger := cmdutil.NewLogger(stderr, "orfvalidate", opts.Quiet)

	// Reference ORFs become the training set.
	refFile := opts.SeqFiles[0]
	refHits, code := scanFile(parent, refFile, opts.MinLength, stderr)
	if code != 0 {
		return code
	}
	logger.Info("scanned reference", "file", refFile, "orfs", len(refHits))

	refEnc, code := encodeHits(refHits, stderr)
	if code != 0 {
		return code
	}

	var bar *pb.ProgressBar
	trainOpts := validate.TrainOptions{
		Epochs:   opts.Epochs,
		ValSplit: opts.ValSplit,
		Seed:     opts.Seed,
	}
	if !opts.Quiet {
		bar = pb.Full.Start64(int64(opts.Epochs))
		bar.SetWriter(stderr)
		trainOpts.OnEpoch = func(epoch int, trainLoss, valLoss float64) {
			bar.Increment()
		}
	}
	model, err := validate.Train(seqclass.NewLogistic(opts.LearningRate, opts.Seed), refEnc, trainOpts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	last := model.History[len(model.History)-1]
	logger.Info("trained model",
		"run_id", model.RunID, "maxlen", model.MaxLen,
		"train_n", model.TrainN, "val_n", model.ValN,
		"train_loss", last.TrainLoss, "val_loss", last.ValLoss)

	// The target genome is N-stripped before scanning so its ORFs encode
	// cleanly against the model's alphabet.
	targetRecs, err := fasta.ReadAll(parent, opts.Target)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	cleaned := clean.Records(targetRecs)
	if opts.CleanedOut != "" {
		if err := fasta.WriteFile(opts.CleanedOut, cleaned); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		logger.Info("wrote cleaned target", "file", opts.CleanedOut, "records", len(cleaned))
	}

	var targetHits []orf.Hit
	for _, r := range cleaned {
		hs := orf.FindHits(r.ID, r.Seq, opts.MinLength)
		for i := range hs {
			hs[i].SourceFile = opts.Target
		}
		targetHits = append(targetHits, hs...)
	}
	logger.Info("scanned target", "file", opts.Target, "orfs", len(targetHits))

	var kept []validateoutput.Validated
	if len(targetHits) > 0 {
		targetEnc, code := encodeHits(targetHits, stderr)
		if code != 0 {
			return code
		}
		scores, err := model.Scores(targetEnc)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		for i, s := range scores {
			if s > opts.Threshold {
				kept = append(kept, validateoutput.Validated{Hit: targetHits[i], Prob: s})
			}
		}
	}
	logger.Info("validated target", "kept", len(kept), "scanned", len(targetHits), "threshold", opts.Threshold)

	switch opts.Output {
	case output.FormatJSON:
		run := validateoutput.ToAPITrainRun(model, refFile, opts.Threshold)
		err = validateoutput.WriteJSON(outw, run, kept)
	case output.FormatFASTA:
		err = validateoutput.WriteFASTA(outw, kept)
	default:
		err = validateoutput.WriteText(outw, kept, opts.Header)
	}
	if err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if len(kept) == 0 {
		return flushExit(outw, stderr, 1)
	}
	return flushExit(outw, stderr, 0)
}

// scanFile reads one genome and pools the ORFs of all its records.
func scanFile(ctx context.Context, path string, minLen int, stderr io.Writer) ([]orf.Hit, int) {
	recs, err := fasta.ReadAll(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return nil, 3
	}
	var hits []orf.Hit
	for _, r := range recs {
		hs := orf.FindHits(r.ID, r.Seq, minLen)
		for i := range hs {
			hs[i].SourceFile = path
		}
		hits = append(hits, hs...)
	}
	return hits, 0
}

func encodeHits(hits []orf.Hit, stderr io.Writer) ([][]int, int) {
	enc := make([][]int, len(hits))
	for i, h := range hits {
		e, err := encode.String(h.Seq)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "%s:%d-%d: %v\n", h.SequenceID, h.Start, h.End, err)
			return nil, 3
		}
		enc[i] = e
	}
	return enc, 0
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
