package writers

import (
	"bytes"
	"strings"
	"testing"

	"orfscan-core/orf"
	"orfscan/internal/output"
)

func feed(in chan<- orf.Hit, hs ...orf.Hit) {
	for _, h := range hs {
		in <- h
	}
	close(in)
}

func TestHitWriterTextSorted(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartHitWriter(&buf, output.FormatText, true, true, 4)
	feed(in,
		orf.Hit{SourceFile: "g.fa", SequenceID: "s2", Start: 9, End: 132, Length: 123},
		orf.Hit{SourceFile: "g.fa", SequenceID: "s1", Start: 0, End: 123, Length: 123},
	)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header+2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "g.fa\ts1\t") || !strings.HasPrefix(lines[2], "g.fa\ts2\t") {
		t.Fatalf("rows not sorted:\n%s", buf.String())
	}
}

func TestHitWriterFASTA(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartHitWriter(&buf, output.FormatFASTA, false, false, 4)
	feed(in, orf.Hit{SequenceID: "s", Seq: "ATGAAATAA", Start: 0, End: 9, Length: 9})
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	if !strings.Contains(buf.String(), ">s_orf1") {
		t.Fatalf("unexpected FASTA: %s", buf.String())
	}
}

func TestHitWriterUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartHitWriter(&buf, "xml", false, false, 1)
	feed(in, orf.Hit{SequenceID: "s"})
	if err := <-done; err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
