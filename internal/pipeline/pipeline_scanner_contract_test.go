// internal/pipeline/pipeline_scanner_contract_test.go
package pipeline

import (
	"context"
	"os"
	"testing"

	"orfscan-core/orf"
)

// Compile-time check: the concrete scanner satisfies the minimal contract.
var _ Scanner = orf.Scanner{}

// fake scanner implementing the Scanner interface
type fakeScanner struct{}

func (fakeScanner) Scan(seqID string, seq []byte, minLen int) []orf.Hit {
	return []orf.Hit{{
		SequenceID: seqID, Start: 0, End: 9, Length: 9, Seq: "ATGAAATAA",
	}}
}

func TestForEachOrf_UsesScannerAndFillsSourceFile(t *testing.T) {
	fn := "pipe_fake.fa"
	if err := os.WriteFile(fn, []byte(">s\nACGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(fn) }()

	var n int
	err := ForEachOrf(
		context.Background(),
		Config{Threads: 1, MinLength: 100},
		[]string{fn},
		fakeScanner{},
		func(h orf.Hit) error {
			n++
			if h.SourceFile != fn {
				t.Fatalf("expected SourceFile to be filled by pipeline, got %q", h.SourceFile)
			}
			return nil
		},
	)
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	if n != 1 {
		t.Fatalf("want 1 hit, got %d", n)
	}
}
