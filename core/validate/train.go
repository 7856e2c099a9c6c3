package validate

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"orfscan-core/seqclass"
)

// Training defaults. All of them are explicit TrainOptions fields so runs
// are reproducible without process-global state.
const (
	DefaultEpochs   = 10
	DefaultValSplit = 0.2
	DefaultSeed     = 42
)

// TrainOptions configures one training run.
type TrainOptions struct {
	Epochs   int     // training passes; <=0 picks DefaultEpochs
	ValSplit float64 // held-out fraction; <0 picks DefaultValSplit, 0 disables validation
	Seed     int64   // drives the train/validation shuffle

	// Labels builds the label vector for n training ORFs. Nil picks
	// PositiveLabels (the degenerate all-ones scheme).
	Labels func(n int) []float64

	// OnEpoch, when set, observes each completed pass.
	OnEpoch func(epoch int, trainLoss, valLoss float64)
}

// Epoch is one entry of a training history.
type Epoch struct {
	TrainLoss float64
	ValLoss   float64
}

// Model bundles a trained classifier with the input width it was trained
// at. MaxLen is frozen at training time and must be reused unchanged for
// every prediction.
type Model struct {
	Classifier seqclass.Classifier
	MaxLen     int
	RunID      uuid.UUID
	TrainN     int
	ValN       int
	History    []Epoch
}

func (o *TrainOptions) normalize() {
	if o.Epochs <= 0 {
		o.Epochs = DefaultEpochs
	}
	if o.ValSplit < 0 {
		o.ValSplit = DefaultValSplit
	}
	if o.Labels == nil {
		o.Labels = PositiveLabels
	}
}

// Train pads the ORF batch, splits it into train/validation partitions with
// a seeded shuffle, and runs the classifier for the configured number of
// passes, validating after each one.
func Train(clf seqclass.Classifier, orfs [][]int, opts TrainOptions) (*Model, error) {
	if len(orfs) == 0 {
		return nil, ErrEmptyTrainingSet
	}
	opts.normalize()

	maxLen := MaxLen(orfs)
	X, err := Pad(orfs, maxLen)
	if err != nil {
		return nil, err
	}
	y := opts.Labels(len(orfs))

	rng := rand.New(rand.NewSource(opts.Seed))
	order := rng.Perm(len(orfs))
	nVal := int(float64(len(orfs)) * opts.ValSplit)
	if nVal >= len(orfs) {
		nVal = len(orfs) - 1
	}
	valIdx, trainIdx := order[:nVal], order[nVal:]

	Xtr, ytr := subset(X, y, trainIdx, maxLen)
	var Xval *mat.Dense
	var yval []float64
	if nVal > 0 {
		Xval, yval = subset(X, y, valIdx, maxLen)
	}

	m := &Model{
		Classifier: clf,
		MaxLen:     maxLen,
		RunID:      uuid.New(),
		TrainN:     len(trainIdx),
		ValN:       nVal,
		History:    make([]Epoch, 0, opts.Epochs),
	}
	for e := 0; e < opts.Epochs; e++ {
		if err := clf.Fit(Xtr, ytr); err != nil {
			return nil, err
		}
		trainLoss, err := loss(clf, Xtr, ytr)
		if err != nil {
			return nil, err
		}
		valLoss := trainLoss
		if Xval != nil {
			if valLoss, err = loss(clf, Xval, yval); err != nil {
				return nil, err
			}
		}
		m.History = append(m.History, Epoch{TrainLoss: trainLoss, ValLoss: valLoss})
		if opts.OnEpoch != nil {
			opts.OnEpoch(e+1, trainLoss, valLoss)
		}
	}
	return m, nil
}

func subset(X *mat.Dense, y []float64, idx []int, width int) (*mat.Dense, []float64) {
	sub := mat.NewDense(len(idx), width, nil)
	labels := make([]float64, len(idx))
	for i, src := range idx {
		copy(sub.RawRowView(i), X.RawRowView(src))
		labels[i] = y[src]
	}
	return sub, labels
}

// loss is the mean binary cross-entropy of the classifier on a batch.
func loss(clf seqclass.Classifier, X *mat.Dense, y []float64) (float64, error) {
	probs, err := clf.Predict(X)
	if err != nil {
		return 0, err
	}
	const eps = 1e-12
	sum := 0.0
	for i, p := range probs {
		p = math.Min(math.Max(p, eps), 1-eps)
		if y[i] > 0.5 {
			sum -= math.Log(p)
		} else {
			sum -= math.Log(1 - p)
		}
	}
	return sum / float64(len(probs)), nil
}
