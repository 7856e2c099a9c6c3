package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// DefaultLineWidth is the sequence wrap width used by Write when width <= 0.
const DefaultLineWidth = 70

// Write renders records as FASTA, wrapping sequence lines at width columns.
func Write(w io.Writer, recs []Record, width int) error {
	if width <= 0 {
		width = DefaultLineWidth
	}
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		if _, err := fmt.Fprintf(bw, ">%s\n", r.ID); err != nil {
			return err
		}
		for off := 0; off < len(r.Seq); off += width {
			end := off + width
			if end > len(r.Seq) {
				end = len(r.Seq)
			}
			if _, err := bw.Write(r.Seq[off:end]); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteFile writes records to path, creating or truncating it.
func WriteFile(path string, recs []Record) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(fh, recs, 0); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
