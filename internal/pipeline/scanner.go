// internal/pipeline/scanner.go
package pipeline

import "orfscan-core/orf"

// Scanner is the minimal capability the pipeline needs.
// Any scanner (including fakes in tests) can satisfy this.
type Scanner interface {
	Scan(seqID string, seq []byte, minLen int) []orf.Hit
}
