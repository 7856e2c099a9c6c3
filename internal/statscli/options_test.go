// internal/statscli/options_test.go
package statscli

import (
	"errors"
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "-s", "ref.fa")
	if o.Compare != "" || o.GCDetail {
		t.Errorf("comparison defaults wrong: %+v", o)
	}
	if o.MinLength != 100 || o.Output != "text" {
		t.Errorf("shared defaults wrong: %+v", o)
	}
}

func TestCompareFlag(t *testing.T) {
	o := mustParse(t, "-s", "a.fa", "--compare", "b.fa")
	if o.Compare != "b.fa" {
		t.Errorf("Compare = %q", o.Compare)
	}
}

func TestSingleGenomeOnly(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-s", "a.fa", "-s", "b.fa"}); err == nil {
		t.Fatal("expected error for two --sequences files")
	}
}

func TestOutputRestricted(t *testing.T) {
	for _, out := range []string{"jsonl", "fasta"} {
		if _, err := ParseArgs(newFS(), []string{"-s", "a.fa", "--output", out}); err == nil {
			t.Fatalf("expected error for --output %s", out)
		}
	}
}

func TestHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--help"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}
