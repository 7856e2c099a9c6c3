// internal/output/json.go
package output

import (
	"io"

	"orfscan-core/orf"
	"orfscan/internal/jsonutil"
	"orfscan/pkg/api"
)

// ToAPIOrf converts a domain Hit to the stable wire schema (v1).
func ToAPIOrf(h orf.Hit) api.OrfV1 {
	return api.OrfV1{
		SequenceID: h.SequenceID,
		SourceFile: h.SourceFile,
		Start:      h.Start,
		End:        h.End,
		Length:     h.Length,
		Seq:        h.Seq,
		Protein:    h.Protein,
	}
}

func toAPIOrfs(list []orf.Hit) []api.OrfV1 {
	out := make([]api.OrfV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPIOrf(h))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 ORFs (pretty-indented).
func WriteJSON(w io.Writer, list []orf.Hit) error {
	return jsonutil.EncodePretty(w, toAPIOrfs(list))
}
