package visitors

import (
	"testing"

	"orfscan-core/orf"
)

func TestTranslateFillsProtein(t *testing.T) {
	tr, err := orf.NewTranslator(orf.BacterialTable)
	if err != nil {
		t.Fatalf("translator: %v", err)
	}
	keep, out, err := Translate{Tr: tr}.Visit(orf.Hit{Seq: "ATGAAA"})
	if err != nil || !keep {
		t.Fatalf("visit: keep=%v err=%v", keep, err)
	}
	if out.Protein != "MK" {
		t.Errorf("Protein = %q, want MK", out.Protein)
	}
}

func TestPassThroughKeepsHit(t *testing.T) {
	h := orf.Hit{SequenceID: "s", Start: 3, End: 126}
	keep, out, err := PassThrough{}.Visit(h)
	if err != nil || !keep || out != h {
		t.Fatalf("pass-through changed hit: keep=%v err=%v out=%+v", keep, err, out)
	}
}
