package orf

import (
	"fmt"

	"github.com/bebop/poly/synthesis/codon"
)

// BacterialTable is NCBI translation table 11, the standard code for
// bacterial and archaeal genomes (the usual gut-microbiome case).
const BacterialTable = 11

// Translator turns ORF nucleotide sequences into amino-acid strings using a
// fixed NCBI codon table.
type Translator struct {
	table *codon.TranslationTable
}

// NewTranslator builds a Translator for the given NCBI table index.
func NewTranslator(tableIndex int) (*Translator, error) {
	t := codon.NewTranslationTable(tableIndex)
	if t == nil {
		return nil, fmt.Errorf("unknown NCBI translation table %d", tableIndex)
	}
	return &Translator{table: t}, nil
}

// Translate translates one ORF sequence. The input length is a multiple of
// 3 by construction, so partial-codon handling is the table's concern.
func (t *Translator) Translate(seq string) (string, error) {
	return t.table.Translate(seq)
}
