// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"orfscan-core/fasta"
	"orfscan-core/orf"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads   int // number of worker goroutines (>=1)
	MinLength int // minimum ORF length in nucleotides
}

// ForEachOrf streams orf.Hits to the caller via visit. It reads records
// from seqFiles, runs the scanner over each record in parallel, fills
// Hit.SourceFile, and calls visit from a single collector goroutine.
// It returns the first error encountered (including context cancellation).
//
// Records are never split: the scanner's reading frame is anchored at
// offset 0 of each record, so work is distributed per record, not per
// window.
func ForEachOrf(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	sc Scanner,
	visit func(orf.Hit) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		rec        fasta.Record
		sourceFile string
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan []orf.Hit, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					hits := sc.Scan(j.rec.ID, j.rec.Seq, cfg.MinLength)
					for i := range hits {
						hits[i].SourceFile = j.sourceFile
					}
					select {
					case results <- hits:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for hs := range results {
			if cerr != nil {
				continue
			}
			for _, h := range hs {
				if err := visit(h); err != nil && cerr == nil {
					cerr = err
				}
			}
		}
	}()

	// Feed work
feed:
	for _, fa := range seqFiles {
		rch, err := fasta.Stream(ctx, fa)
		if err != nil {
			// Keep scanning other files; first error will be returned.
			if cerr == nil {
				cerr = err
			}
			continue
		}
		for rec := range rch {
			select {
			case <-ctx.Done():
				break feed
			case jobs <- job{rec: rec, sourceFile: fa}:
			}
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
