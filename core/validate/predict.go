package validate

// DefaultThreshold is the probability cut for keeping a candidate ORF.
const DefaultThreshold = 0.5

// Scores pads the ORFs to the model's frozen width and returns one
// probability per ORF. An ORF longer than the trained width is a
// DimensionMismatchError, never a silent truncation.
func (m *Model) Scores(orfs [][]int) ([]float64, error) {
	if len(orfs) == 0 {
		return nil, nil
	}
	X, err := Pad(orfs, m.MaxLen)
	if err != nil {
		return nil, err
	}
	return m.Classifier.Predict(X)
}

// Predict returns the subset of the original, unpadded ORFs whose score
// strictly exceeds threshold.
func Predict(m *Model, orfs [][]int, threshold float64) ([][]int, error) {
	scores, err := m.Scores(orfs)
	if err != nil {
		return nil, err
	}
	var kept [][]int
	for i, s := range scores {
		if s > threshold {
			kept = append(kept, orfs[i])
		}
	}
	return kept, nil
}
