package output

import (
	"bytes"
	"strings"
	"testing"

	"orfscan-core/orf"
)

func TestWriteTextHeaderAndRow(t *testing.T) {
	buf := &bytes.Buffer{}
	list := []orf.Hit{{
		SourceFile: "g.fa", SequenceID: "chr1",
		Start: 9, End: 132, Length: 123, Seq: "ATG", Protein: "M",
	}}
	if err := WriteText(buf, list, true); err != nil {
		t.Fatalf("text: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header+1 row, got %d lines", len(lines))
	}
	if lines[0] != TSVHeader {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "g.fa\tchr1\t9\t132\t123\tATG\tM" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWriteTextNoHeader(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteText(buf, nil, false); err != nil {
		t.Fatalf("text: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected empty output, got %q", buf.String())
	}
}
