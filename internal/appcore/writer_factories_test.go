package appcore

import (
	"bytes"
	"strings"
	"testing"

	"orfscan-core/orf"
)

func TestHitWriterFactory_StartsWorkingWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewHitWriterFactory("text", false, true)
	in, done := w.Start(&buf, 2)
	in <- orf.Hit{SourceFile: "g.fa", SequenceID: "s", Start: 0, End: 123, Length: 123}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	if !strings.Contains(buf.String(), "g.fa\ts\t0\t123\t123") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
