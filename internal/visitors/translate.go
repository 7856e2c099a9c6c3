package visitors

import "orfscan-core/orf"

// Translate fills Hit.Protein from the hit's nucleotide sequence.
type Translate struct {
	Tr *orf.Translator
}

func (v Translate) Visit(h orf.Hit) (bool, orf.Hit, error) {
	prot, err := v.Tr.Translate(h.Seq)
	if err != nil {
		return false, orf.Hit{}, err
	}
	h.Protein = prot
	return true, h, nil
}
