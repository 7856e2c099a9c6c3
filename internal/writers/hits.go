package writers

import (
	"fmt"
	"io"

	"orfscan-core/orf"
	"orfscan/internal/common"
	"orfscan/internal/output"
)

// StartHitWriter spins up a writer goroutine for orf.Hit items.
// Sorting buffers all hits; streaming formats write as items arrive.
func StartHitWriter(out io.Writer, format string, sort bool, header bool, bufSize int) (chan<- orf.Hit, <-chan error) {
	if format == output.FormatJSONL {
		return StartHitJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan orf.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []orf.Hit
			for h := range in {
				buf = append(buf, h)
			}
			if sort {
				common.SortHits(buf)
			}
			err = output.WriteJSON(out, buf)

		case output.FormatFASTA:
			if sort {
				var buf []orf.Hit
				for h := range in {
					buf = append(buf, h)
				}
				common.SortHits(buf)
				err = output.WriteFASTA(out, buf)
			} else {
				err = output.StreamFASTA(out, in)
			}

		case output.FormatText:
			if sort {
				var buf []orf.Hit
				for h := range in {
					buf = append(buf, h)
				}
				common.SortHits(buf)
				err = output.WriteText(out, buf, header)
			} else {
				err = output.StreamText(out, in, header)
			}

		default:
			// Drain so producers don't block before reporting.
			for range in {
			}
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}
