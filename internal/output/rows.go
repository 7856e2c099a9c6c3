// internal/output/rows.go
package output

import (
	"fmt"

	"orfscan-core/orf"
)

// FormatHitRowTSV returns the base columns for one hit (no trailing newline).
func FormatHitRowTSV(h orf.Hit) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%s\t%s",
		h.SourceFile, h.SequenceID,
		h.Start, h.End, h.Length,
		h.Seq, h.Protein,
	)
}
