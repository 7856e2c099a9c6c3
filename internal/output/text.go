// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"orfscan-core/orf"
)

// StreamText streams hits as TSV rows as they arrive.
func StreamText(w io.Writer, in <-chan orf.Hit, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for h := range in {
		if _, err := fmt.Fprintln(w, FormatHitRowTSV(h)); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes hits as a tab-delimited table.
func WriteText(w io.Writer, list []orf.Hit, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, h := range list {
		if _, err := fmt.Fprintln(w, FormatHitRowTSV(h)); err != nil {
			return err
		}
	}
	return nil
}
