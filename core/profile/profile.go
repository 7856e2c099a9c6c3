// Package profile computes per-genome descriptive statistics: GC content,
// record lengths, and ORF counts, plus the two-genome comparison report.
package profile

import (
	"errors"

	"orfscan-core/fasta"
	"orfscan-core/orf"
)

// ErrEmptyInput is returned when there are no records to profile.
var ErrEmptyInput = errors.New("profile: no records to analyze")

// Stats summarizes one genome file.
type Stats struct {
	AvgGC        float64   // mean GC content across records, percent
	AvgLength    float64   // mean record length
	AvgOrfLength float64   // mean length across all ORFs pooled from every record; 0 when none found
	GCContents   []float64 // per-record GC content, in record order
	OrfCount     int
}

// GCContent returns the percentage of G and C symbols in seq.
func GCContent(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for _, b := range seq {
		if b == 'G' || b == 'C' {
			gc++
		}
	}
	return 100 * float64(gc) / float64(len(seq))
}

// Analyze profiles a record collection, running the ORF scanner with the
// given inclusion threshold on every record.
func Analyze(recs []fasta.Record, minLen int) (Stats, error) {
	if len(recs) == 0 {
		return Stats{}, ErrEmptyInput
	}

	var (
		s        Stats
		lenSum   float64
		orfNtSum int
	)
	s.GCContents = make([]float64, 0, len(recs))
	for _, r := range recs {
		gc := GCContent(r.Seq)
		s.GCContents = append(s.GCContents, gc)
		s.AvgGC += gc
		lenSum += float64(len(r.Seq))

		for _, c := range orf.Find(r.Seq, minLen) {
			orfNtSum += len(c.Seq)
			s.OrfCount++
		}
	}

	n := float64(len(recs))
	s.AvgGC /= n
	s.AvgLength = lenSum / n
	if s.OrfCount > 0 {
		s.AvgOrfLength = float64(orfNtSum) / float64(s.OrfCount)
	}
	return s, nil
}
