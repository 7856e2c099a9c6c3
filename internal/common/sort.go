// internal/common/sort.go
package common

import (
	"sort"

	"orfscan-core/orf"
)

// LessHit defines a stable order for ORF hits (for --sort).
func LessHit(a, b orf.Hit) bool {
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	if a.SequenceID != b.SequenceID {
		return a.SequenceID < b.SequenceID
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.End < b.End
}

func SortHits(hs []orf.Hit) {
	sort.Slice(hs, func(i, j int) bool { return LessHit(hs[i], hs[j]) })
}
