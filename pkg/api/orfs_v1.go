// pkg/api/orfs_v1.go
package api

// OrfV1 is the stable JSON/JSONL schema for ORF candidates.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type OrfV1 struct {
	SequenceID string `json:"sequence_id"`
	SourceFile string `json:"source_file,omitempty"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Length     int    `json:"length"`
	Seq        string `json:"seq,omitempty"`
	Protein    string `json:"protein,omitempty"`
}

// ValidatedOrfV1 is the stable schema for classifier-validated ORFs.
type ValidatedOrfV1 struct {
	SequenceID string  `json:"sequence_id"`
	SourceFile string  `json:"source_file,omitempty"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Length     int     `json:"length"`
	Prob       float64 `json:"prob"`
	Seq        string  `json:"seq,omitempty"`
	Protein    string  `json:"protein,omitempty"`
}
