// Package validateoutput renders classifier-validated ORFs and their
// training run summary. JSON goes through pkg/api (v1).
package validateoutput

import (
	"fmt"
	"io"

	"orfscan-core/orf"
	"orfscan-core/validate"
	"orfscan/internal/jsonutil"
	"orfscan/pkg/api"
)

// TSVHeader is the canonical header row for validated text output.
const TSVHeader = "source_file\tsequence_id\tstart\tend\tlength\tprob\tseq\tprotein"

// Validated is one kept ORF with its classifier probability.
type Validated struct {
	Hit  orf.Hit
	Prob float64
}

// ToAPITrainRun converts a trained model to the stable wire schema (v1).
func ToAPITrainRun(m *validate.Model, reference string, threshold float64) api.TrainRunV1 {
	run := api.TrainRunV1{
		RunID:     m.RunID.String(),
		Reference: reference,
		MaxLen:    m.MaxLen,
		Epochs:    len(m.History),
		TrainN:    m.TrainN,
		ValN:      m.ValN,
		Threshold: threshold,
	}
	for i, e := range m.History {
		run.History = append(run.History, api.EpochV1{
			Epoch: i + 1, TrainLoss: e.TrainLoss, ValLoss: e.ValLoss,
		})
	}
	return run
}

func toAPIValidated(v Validated) api.ValidatedOrfV1 {
	return api.ValidatedOrfV1{
		SequenceID: v.Hit.SequenceID,
		SourceFile: v.Hit.SourceFile,
		Start:      v.Hit.Start,
		End:        v.Hit.End,
		Length:     v.Hit.Length,
		Prob:       v.Prob,
		Seq:        v.Hit.Seq,
		Protein:    v.Hit.Protein,
	}
}

// WriteJSON writes the run summary plus all kept ORFs as pretty JSON.
func WriteJSON(w io.Writer, run api.TrainRunV1, kept []Validated) error {
	v := api.ValidationV1{Run: run}
	for _, k := range kept {
		v.Orfs = append(v.Orfs, toAPIValidated(k))
	}
	return jsonutil.EncodePretty(w, v)
}

// WriteText writes kept ORFs as a tab-delimited table.
func WriteText(w io.Writer, kept []Validated, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, k := range kept {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.6f\t%s\t%s\n",
			k.Hit.SourceFile, k.Hit.SequenceID,
			k.Hit.Start, k.Hit.End, k.Hit.Length,
			k.Prob, k.Hit.Seq, k.Hit.Protein,
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteFASTA writes kept ORFs as FASTA, probability in the header line.
func WriteFASTA(w io.Writer, kept []Validated) error {
	for i, k := range kept {
		if k.Hit.Seq == "" {
			continue
		}
		if _, err := fmt.Fprintf(
			w,
			">%s_orf%d start=%d end=%d len=%d prob=%.4f\n%s\n",
			k.Hit.SequenceID, i+1, k.Hit.Start, k.Hit.End, k.Hit.Length, k.Prob, k.Hit.Seq,
		); err != nil {
			return err
		}
	}
	return nil
}
