// Package validate is the ORF-validation pipeline: it pads encoded ORFs to
// a uniform width, trains a seqclass.Classifier on reference-genome ORFs,
// and scores candidate ORFs from a target genome against the trained model.
package validate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PadSentinel fills the tail of rows shorter than the batch width. The
// encoder never produces it for a real symbol.
const PadSentinel = 0

// ErrEmptyTrainingSet is returned by Train when no ORFs survive extraction.
var ErrEmptyTrainingSet = errors.New("validate: no ORFs to train on")

// DimensionMismatchError reports a prediction input longer than the width
// the classifier was trained with. There is no truncation policy; the
// caller must decide what to do with over-length ORFs.
type DimensionMismatchError struct {
	Row    int
	Length int
	MaxLen int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("validate: ORF %d has length %d, exceeding the trained input width %d", e.Row, e.Length, e.MaxLen)
}

// MaxLen returns the longest ORF length in the batch, 0 for an empty batch.
func MaxLen(orfs [][]int) int {
	max := 0
	for _, o := range orfs {
		if len(o) > max {
			max = len(o)
		}
	}
	return max
}

// Pad right-pads every encoded ORF to maxLen and stacks them into a dense
// row-per-ORF matrix. An ORF longer than maxLen is a hard error.
func Pad(orfs [][]int, maxLen int) (*mat.Dense, error) {
	if len(orfs) == 0 || maxLen <= 0 {
		return nil, errors.New("validate: nothing to pad")
	}
	X := mat.NewDense(len(orfs), maxLen, nil)
	for i, o := range orfs {
		if len(o) > maxLen {
			return nil, &DimensionMismatchError{Row: i, Length: len(o), MaxLen: maxLen}
		}
		row := X.RawRowView(i)
		for j, v := range o {
			row[j] = float64(v)
		}
		for j := len(o); j < maxLen; j++ {
			row[j] = PadSentinel
		}
	}
	return X, nil
}

// PositiveLabels is the default label builder: every training example is
// treated as positive. The classifier cannot learn a contrastive boundary
// from this alone; the hook exists so pre-labeled or synthesized negative
// sets can be injected without an API change.
func PositiveLabels(n int) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = 1
	}
	return y
}
