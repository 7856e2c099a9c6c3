// Package seqclass defines the learned-model capability the validation
// pipeline trains and queries. The interface is deliberately narrow so the
// model topology can change without touching the scanner, encoder, or
// profiler contracts.
package seqclass

import "gonum.org/v1/gonum/mat"

// Classifier is a trainable binary sequence classifier over padded,
// integer-encoded ORF batches.
//
// Fit performs one training pass over the batch. The pipeline owns the
// epoch loop and validation schedule. Predict returns one probability per
// row. Both fail fast on shape violations.
type Classifier interface {
	Fit(X *mat.Dense, y []float64) error
	Predict(X *mat.Dense) ([]float64, error)
}
