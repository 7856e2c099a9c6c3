package validateoutput

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"orfscan-core/orf"
	"orfscan-core/seqclass"
	"orfscan-core/validate"
	"orfscan/pkg/api"
)

func trainedModel(t *testing.T) *validate.Model {
	t.Helper()
	orfs := [][]int{{1, 2, 3}, {4, 1, 2, 3}, {1, 1, 1}}
	m, err := validate.Train(seqclass.NewLogistic(0.1, 1), orfs, validate.TrainOptions{Seed: 1})
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	return m
}

func TestToAPITrainRun(t *testing.T) {
	m := trainedModel(t)
	run := ToAPITrainRun(m, "ref.fa", 0.5)
	if run.RunID == "" || run.MaxLen != 4 || run.Epochs != validate.DefaultEpochs {
		t.Fatalf("run = %+v", run)
	}
	if run.TrainN+run.ValN != 3 {
		t.Fatalf("split sizes wrong: %+v", run)
	}
	if len(run.History) != run.Epochs || run.History[0].Epoch != 1 {
		t.Fatalf("history wrong: %+v", run.History)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	m := trainedModel(t)
	kept := []Validated{{
		Hit:  orf.Hit{SequenceID: "s", SourceFile: "t.fa", Start: 0, End: 123, Length: 123, Seq: "ATG"},
		Prob: 0.91,
	}}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, ToAPITrainRun(m, "ref.fa", 0.5), kept); err != nil {
		t.Fatalf("json: %v", err)
	}
	var got api.ValidationV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Orfs) != 1 || got.Orfs[0].Prob != 0.91 || got.Run.Reference != "ref.fa" {
		t.Fatalf("got %+v", got)
	}
}

func TestWriteTextRow(t *testing.T) {
	kept := []Validated{{
		Hit:  orf.Hit{SequenceID: "s", SourceFile: "t.fa", Start: 3, End: 126, Length: 123},
		Prob: 0.75,
	}}
	var buf bytes.Buffer
	if err := WriteText(&buf, kept, true); err != nil {
		t.Fatalf("text: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != TSVHeader {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "t.fa\ts\t3\t126\t123\t0.750000") {
		t.Errorf("row = %q", lines[1])
	}
}
