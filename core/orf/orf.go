// Package orf locates candidate open reading frames in a single fixed
// reading frame (offset 0, stride 3). The scanner is a two-state machine
// keyed on start/stop codons; it never fails on malformed input, it just
// finds nothing.
package orf

// Codon literals for the single supported frame discipline.
const (
	StartCodon = "ATG"

	// DefaultMinLength is the inclusion threshold in nucleotides.
	DefaultMinLength = 100
)

func isStop(c []byte) bool {
	if len(c) != 3 || c[0] != 'T' {
		return false
	}
	// TAA, TAG, TGA
	return (c[1] == 'A' && (c[2] == 'A' || c[2] == 'G')) || (c[1] == 'G' && c[2] == 'A')
}

func isStart(c []byte) bool {
	return len(c) == 3 && c[0] == 'A' && c[1] == 'T' && c[2] == 'G'
}

// Candidate is one emitted ORF. Start and End are offsets into the scanned
// sequence; End is the position of the terminating stop codon and Start is
// derived as End minus the accumulated length. len(Seq) is always a
// multiple of 3.
type Candidate struct {
	Seq   string
	Start int
	End   int
}

// Find scans seq left to right at stride 3 and returns candidates whose
// accumulated length is at least minLen nucleotides.
//
// A start codon met while an ORF is already open does not restart the
// accumulation: it is folded into the current buffer. An ORF still open at
// end of input is discarded, and a trailing partial codon is ignored.
func Find(seq []byte, minLen int) []Candidate {
	var (
		out  []Candidate
		buf  []byte
		open bool
	)
	for i := 0; i+3 <= len(seq); i += 3 {
		codon := seq[i : i+3]
		switch {
		case isStart(codon):
			open = true
			buf = append(buf, codon...)
		case open && isStop(codon):
			if len(buf) >= minLen {
				out = append(out, Candidate{Seq: string(buf), Start: i - len(buf), End: i})
			}
			open = false
			buf = buf[:0]
		case open:
			buf = append(buf, codon...)
		}
	}
	return out
}
