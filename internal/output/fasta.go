package output

import (
	"fmt"
	"io"

	"orfscan-core/orf"
)

// StreamFASTA streams ORF records from a channel to the writer.
func StreamFASTA(w io.Writer, in <-chan orf.Hit) error {
	idx := 1
	for h := range in {
		if h.Seq == "" {
			continue
		}
		if _, err := fmt.Fprintf(
			w,
			">%s_orf%d start=%d end=%d len=%d source_file=%s\n%s\n",
			h.SequenceID, idx, h.Start, h.End, h.Length, h.SourceFile, h.Seq,
		); err != nil {
			return err
		}
		idx++
	}
	return nil
}

// WriteFASTA writes a slice of ORFs as FASTA records to the writer.
func WriteFASTA(w io.Writer, list []orf.Hit) error {
	for i, h := range list {
		if h.Seq == "" {
			continue
		}
		if _, err := fmt.Fprintf(
			w,
			">%s_orf%d start=%d end=%d len=%d source_file=%s\n%s\n",
			h.SequenceID, i+1, h.Start, h.End, h.Length, h.SourceFile, h.Seq,
		); err != nil {
			return err
		}
	}
	return nil
}
