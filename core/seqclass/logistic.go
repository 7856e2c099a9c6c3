package seqclass

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// featureScale maps the 0..4 encoded alphabet into 0..1 before the dot
// product, which keeps early gradients from saturating the sigmoid on long
// inputs.
const featureScale = 0.25

// Logistic is a seeded SGD logistic regression. It is not a deep model;
// the point is a deterministic, dependency-light Classifier whose learned
// state is inspectable in tests. The input width is frozen on the first
// Fit call.
type Logistic struct {
	w   []float64
	b   float64
	lr  float64
	rng *rand.Rand
}

// NewLogistic returns a Logistic with the given learning rate (<=0 picks
// the default 0.05). The seed makes initialization and per-pass shuffling
// reproducible.
func NewLogistic(lr float64, seed int64) *Logistic {
	if lr <= 0 {
		lr = 0.05
	}
	return &Logistic{lr: lr, rng: rand.New(rand.NewSource(seed))}
}

// Fit runs one stochastic pass over the batch in a shuffled order.
func (l *Logistic) Fit(X *mat.Dense, y []float64) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.New("seqclass: empty training matrix")
	}
	if len(y) != r {
		return fmt.Errorf("seqclass: %d rows but %d labels", r, len(y))
	}
	if l.w == nil {
		l.w = make([]float64, c)
		for i := range l.w {
			l.w[i] = l.rng.NormFloat64() * 0.01
		}
	} else if len(l.w) != c {
		return fmt.Errorf("seqclass: input width %d does not match trained width %d", c, len(l.w))
	}

	for _, i := range l.rng.Perm(r) {
		row := X.RawRowView(i)
		g := l.prob(row) - y[i]
		for j := range l.w {
			l.w[j] -= l.lr * g * row[j] * featureScale
		}
		l.b -= l.lr * g
	}
	return nil
}

// Predict returns the per-row probability of the positive class.
func (l *Logistic) Predict(X *mat.Dense) ([]float64, error) {
	if l.w == nil {
		return nil, errors.New("seqclass: classifier is not fitted")
	}
	r, c := X.Dims()
	if c != len(l.w) {
		return nil, fmt.Errorf("seqclass: input width %d does not match trained width %d", c, len(l.w))
	}
	out := make([]float64, r)
	for i := range out {
		out[i] = l.prob(X.RawRowView(i))
	}
	return out, nil
}

func (l *Logistic) prob(row []float64) float64 {
	z := l.b
	for j, w := range l.w {
		z += w * row[j] * featureScale
	}
	return 1 / (1 + math.Exp(-z))
}
