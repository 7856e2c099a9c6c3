// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"orfscan-core/orf"
	"orfscan/internal/jsonlutil"
	"orfscan/internal/output"
)

// StartHitJSONLWriter streams each orf.Hit as one JSON line (v1).
func StartHitJSONLWriter(out io.Writer, bufSize int) (chan<- orf.Hit, <-chan error) {
	return jsonlutil.Start[orf.Hit](out, bufSize,
		func(enc *json.Encoder, h orf.Hit) error {
			return enc.Encode(output.ToAPIOrf(h))
		},
		IsBrokenPipe,
	)
}
