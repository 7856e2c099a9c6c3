package orf

// Hit is a Candidate bound to the record and file it came from, the unit
// the scanning pipeline and writers pass around.
type Hit struct {
	SequenceID string
	SourceFile string
	Start      int
	End        int
	Length     int
	Seq        string
	Protein    string
}

// Scanner is the concrete per-record scanner the pipeline drives.
// It carries no state; a value is safe for concurrent use.
type Scanner struct{}

func (Scanner) Scan(seqID string, seq []byte, minLen int) []Hit {
	return FindHits(seqID, seq, minLen)
}

// FindHits runs Find over one record's sequence and wraps the candidates.
// SourceFile is left for the caller to fill.
func FindHits(seqID string, seq []byte, minLen int) []Hit {
	cands := Find(seq, minLen)
	if len(cands) == 0 {
		return nil
	}
	hits := make([]Hit, len(cands))
	for i, c := range cands {
		hits[i] = Hit{
			SequenceID: seqID,
			Start:      c.Start,
			End:        c.End,
			Length:     len(c.Seq),
			Seq:        c.Seq,
		}
	}
	return hits
}
