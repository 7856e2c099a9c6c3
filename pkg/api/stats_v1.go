// pkg/api/stats_v1.go
package api

// GenomeStatsV1 is the stable schema for one profiled genome.
type GenomeStatsV1 struct {
	SourceFile   string    `json:"source_file,omitempty"`
	Records      int       `json:"records"`
	AvgGC        float64   `json:"avg_gc"`
	AvgLength    float64   `json:"avg_length"`
	AvgOrfLength float64   `json:"avg_orf_length"`
	OrfCount     int       `json:"orf_count"`
	GCContents   []float64 `json:"gc_contents,omitempty"`
}

// DescriptiveV1 mirrors profile.Descriptive on the wire.
type DescriptiveV1 struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// ComparisonSideV1 is one genome's half of a comparison.
type ComparisonSideV1 struct {
	SourceFile string        `json:"source_file,omitempty"`
	GC         DescriptiveV1 `json:"gc"`
	OrfCount   int           `json:"orf_count"`
}

// ComparisonV1 is the stable schema for a two-genome comparison report.
// TStat/PValue may be null when either side has too few records for the
// t-test (encoded via pointer).
type ComparisonV1 struct {
	A      ComparisonSideV1 `json:"a"`
	B      ComparisonSideV1 `json:"b"`
	TStat  *float64         `json:"t_stat,omitempty"`
	PValue *float64         `json:"p_value,omitempty"`
}
