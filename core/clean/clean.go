// Package clean strips ambiguous bases from sequence records before they
// reach the encoder. Only the literal symbol 'N' is removed; the encoder
// rejects anything else outside A/C/G/T, which keeps silent corruption out
// of the classifier path.
//
// Removing internal bases shifts downstream codon boundaries. No frame
// correction is attempted afterwards; that is a documented property of the
// cleaning step, not an accident.
package clean

import (
	"bytes"

	"orfscan-core/fasta"
)

// Record returns a copy of r with every 'N' removed from the sequence.
// The identifier is preserved. Applying Record twice is a no-op.
func Record(r fasta.Record) fasta.Record {
	return fasta.Record{
		ID:  r.ID,
		Seq: bytes.ReplaceAll(r.Seq, []byte{'N'}, nil),
	}
}

// Records cleans a whole record collection, returning fresh records.
func Records(recs []fasta.Record) []fasta.Record {
	out := make([]fasta.Record, len(recs))
	for i, r := range recs {
		out[i] = Record(r)
	}
	return out
}
