// Package statsoutput renders genome profiles and comparison reports.
// JSON goes through pkg/api (v1) like every other wire format.
package statsoutput

import (
	"fmt"
	"io"
	"math"

	"orfscan-core/profile"
	"orfscan/internal/jsonutil"
	"orfscan/pkg/api"
)

// ToAPIStats converts one genome profile to the stable wire schema (v1).
func ToAPIStats(file string, s profile.Stats, includeGC bool) api.GenomeStatsV1 {
	v := api.GenomeStatsV1{
		SourceFile:   file,
		Records:      len(s.GCContents),
		AvgGC:        s.AvgGC,
		AvgLength:    s.AvgLength,
		AvgOrfLength: s.AvgOrfLength,
		OrfCount:     s.OrfCount,
	}
	if includeGC {
		v.GCContents = append([]float64(nil), s.GCContents...)
	}
	return v
}

// ToAPIComparison converts a comparison report to the wire schema. NaN
// statistics (degenerate samples) become null instead of breaking JSON.
func ToAPIComparison(fileA, fileB string, rep profile.Report) api.ComparisonV1 {
	v := api.ComparisonV1{
		A: toAPISide(fileA, rep.A),
		B: toAPISide(fileB, rep.B),
	}
	if !math.IsNaN(rep.TStat) && !math.IsInf(rep.TStat, 0) {
		t := rep.TStat
		v.TStat = &t
	}
	if !math.IsNaN(rep.PValue) {
		p := rep.PValue
		v.PValue = &p
	}
	return v
}

func toAPISide(file string, s profile.Side) api.ComparisonSideV1 {
	return api.ComparisonSideV1{
		SourceFile: file,
		GC: api.DescriptiveV1{
			Count:  s.Count,
			Mean:   s.Mean,
			Std:    s.Std,
			Min:    s.Min,
			Q25:    s.Q25,
			Median: s.Median,
			Q75:    s.Q75,
			Max:    s.Max,
		},
		OrfCount: s.OrfCount,
	}
}

// WriteStatsJSON writes one genome profile as pretty JSON.
func WriteStatsJSON(w io.Writer, file string, s profile.Stats, includeGC bool) error {
	return jsonutil.EncodePretty(w, ToAPIStats(file, s, includeGC))
}

// WriteComparisonJSON writes a two-genome comparison as pretty JSON.
func WriteComparisonJSON(w io.Writer, fileA, fileB string, rep profile.Report) error {
	return jsonutil.EncodePretty(w, ToAPIComparison(fileA, fileB, rep))
}

// WriteStatsText writes one genome profile as aligned key/value lines.
func WriteStatsText(w io.Writer, file string, s profile.Stats) error {
	_, err := fmt.Fprintf(w,
		"genome\t%s\nrecords\t%d\navg_gc\t%.4f\navg_length\t%.2f\navg_orf_length\t%.2f\norf_count\t%d\n",
		file, len(s.GCContents), s.AvgGC, s.AvgLength, s.AvgOrfLength, s.OrfCount,
	)
	return err
}

// WriteComparisonText writes a comparison report as a small table plus the
// t-test line.
func WriteComparisonText(w io.Writer, fileA, fileB string, rep profile.Report) error {
	if _, err := fmt.Fprintf(w, "metric\t%s\t%s\n", fileA, fileB); err != nil {
		return err
	}
	rows := []struct {
		name string
		a, b float64
	}{
		{"gc_count", float64(rep.A.Count), float64(rep.B.Count)},
		{"gc_mean", rep.A.Mean, rep.B.Mean},
		{"gc_std", rep.A.Std, rep.B.Std},
		{"gc_min", rep.A.Min, rep.B.Min},
		{"gc_q25", rep.A.Q25, rep.B.Q25},
		{"gc_median", rep.A.Median, rep.B.Median},
		{"gc_q75", rep.A.Q75, rep.B.Q75},
		{"gc_max", rep.A.Max, rep.B.Max},
		{"orf_count", float64(rep.A.OrfCount), float64(rep.B.OrfCount)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%.4f\t%.4f\n", r.name, r.a, r.b); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "t_stat\t%.6f\np_value\t%.6f\n", rep.TStat, rep.PValue)
	return err
}
