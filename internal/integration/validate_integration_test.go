package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"orfscan/internal/validateapp"
	"orfscan/pkg/api"
)

// refGenome holds a few short ORFs; the tests drop --min-length so they
// all count.
func refGenome() string {
	orfA := "ATG" + strings.Repeat("AAA", 5) + "TAA"
	orfB := "ATG" + strings.Repeat("GGG", 6) + "TGA"
	return ">r1\n" + orfA + "\n>r2\n" + orfB + "\n"
}

func TestValidateEndToEnd(t *testing.T) {
	ref := write(t, "vref.fa", refGenome())
	defer os.Remove(ref)
	// Target carries Ns that split an ORF until they are stripped.
	target := write(t, "vtarget.fa", ">t1\nATGN"+strings.Repeat("AAA", 5)+"NTAA\n")
	defer os.Remove(target)
	cleaned := "vcleaned.fa"
	defer os.Remove(cleaned)

	var out, errBuf bytes.Buffer
	code := validateapp.Run([]string{
		"-s", ref,
		"--target", target,
		"--min-length", "9",
		"--learning-rate", "0.5",
		"--cleaned-out", cleaned,
		"--output", "json",
		"--quiet",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}

	var v api.ValidationV1
	if err := json.Unmarshal(out.Bytes(), &v); err != nil {
		t.Fatalf("bad json: %v\n%s", err, out.String())
	}
	if v.Run.Epochs != 10 || v.Run.TrainN+v.Run.ValN != 2 {
		t.Fatalf("run = %+v", v.Run)
	}
	// All-positive training pushes every target ORF above the default cut.
	if len(v.Orfs) != 1 {
		t.Fatalf("want 1 validated ORF, got %+v", v.Orfs)
	}
	if v.Orfs[0].Prob <= 0.5 {
		t.Fatalf("prob %v not above threshold", v.Orfs[0].Prob)
	}

	// The cleaned artifact must hold the N-stripped record.
	data, err := os.ReadFile(cleaned)
	if err != nil {
		t.Fatalf("cleaned artifact: %v", err)
	}
	if strings.ContainsRune(string(data), 'N') {
		t.Fatalf("cleaned FASTA still contains N:\n%s", data)
	}
}

func TestValidateNoSurvivorsExitCode(t *testing.T) {
	ref := write(t, "vref2.fa", refGenome())
	defer os.Remove(ref)
	// Target has no ORFs at all.
	target := write(t, "vtarget2.fa", ">t1\nCCCCCCCCCCCC\n")
	defer os.Remove(target)

	var out, errBuf bytes.Buffer
	code := validateapp.Run([]string{
		"-s", ref, "--target", target,
		"--min-length", "9", "--quiet",
	}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("expected exit 1 with no validated ORFs, got %d (err=%s)", code, errBuf.String())
	}
}

func TestValidateOverlongTargetOrfFails(t *testing.T) {
	ref := write(t, "vref3.fa", ">r1\nATG"+strings.Repeat("AAA", 5)+"TAA\n")
	defer os.Remove(ref)
	// Longer ORF than anything in the reference: width mismatch, not truncation.
	target := write(t, "vtarget3.fa", ">t1\nATG"+strings.Repeat("AAA", 20)+"TAA\n")
	defer os.Remove(target)

	var out, errBuf bytes.Buffer
	code := validateapp.Run([]string{
		"-s", ref, "--target", target,
		"--min-length", "9", "--quiet",
	}, &out, &errBuf)
	if code != 3 {
		t.Fatalf("expected exit 3 for over-length target ORF, got %d", code)
	}
	if !strings.Contains(errBuf.String(), "exceeding the trained input width") {
		t.Fatalf("unexpected error output: %s", errBuf.String())
	}
}
