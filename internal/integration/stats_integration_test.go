package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"orfscan/internal/statsapp"
	"orfscan/pkg/api"
)

func TestStatsSingleGenomeJSON(t *testing.T) {
	fa := write(t, "stats.fa", ">r1\n"+orfSeq()+"\n>r2\nGGGGCCCC\n")
	defer os.Remove(fa)

	var out, errBuf bytes.Buffer
	code := statsapp.Run([]string{"-s", fa, "--output", "json", "--quiet"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}
	var got api.GenomeStatsV1
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v\n%s", err, out.String())
	}
	if got.Records != 2 || got.OrfCount != 1 {
		t.Fatalf("got %+v", got)
	}
	if got.GCContents != nil {
		t.Fatalf("gc_contents should be omitted without --gc-detail: %+v", got)
	}
}

func TestStatsCompareText(t *testing.T) {
	a := write(t, "stats_a.fa", ">r1\nGTATATAT\n>r2\nATATATAT\n>r3\nGCATATAT\n")
	defer os.Remove(a)
	b := write(t, "stats_b.fa", ">r1\nGCGCGCGC\n>r2\nGCGCGCAT\n>r3\nGCGCGCGA\n")
	defer os.Remove(b)

	var out, errBuf bytes.Buffer
	code := statsapp.Run([]string{"-s", a, "--compare", b, "--quiet"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}
	txt := out.String()
	if !strings.Contains(txt, "gc_mean\t12.5000\t87.5000") {
		t.Fatalf("expected separated GC means, got:\n%s", txt)
	}
	if !strings.Contains(txt, "t_stat\t") || !strings.Contains(txt, "p_value\t") {
		t.Fatalf("expected t-test lines, got:\n%s", txt)
	}
}
