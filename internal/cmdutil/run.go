package cmdutil

import (
	"context"

	"orfscan-core/orf"
	"orfscan/internal/pipeline"
)

// RunStream runs the shared pipeline, applies a visitor, and streams results via send.
// It returns the number of kept outputs and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	sc pipeline.Scanner,
	visit func(orf.Hit) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachOrf(ctx, cfg, seqFiles, sc, func(h orf.Hit) error {
		keep, out, vErr := visit(h)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
