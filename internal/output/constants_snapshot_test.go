package output

import "testing"

func TestTSVHeader_Stable(t *testing.T) {
	const want = "source_file\tsequence_id\tstart\tend\tlength\tseq\tprotein"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}
