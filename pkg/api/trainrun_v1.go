// pkg/api/trainrun_v1.go
package api

// EpochV1 is one entry of a training history.
type EpochV1 struct {
	Epoch     int     `json:"epoch"`
	TrainLoss float64 `json:"train_loss"`
	ValLoss   float64 `json:"val_loss"`
}

// TrainRunV1 is the stable schema for one classifier training run.
type TrainRunV1 struct {
	RunID     string    `json:"run_id"`
	Reference string    `json:"reference,omitempty"`
	MaxLen    int       `json:"maxlen"`
	Epochs    int       `json:"epochs"`
	TrainN    int       `json:"train_n"`
	ValN      int       `json:"val_n"`
	Threshold float64   `json:"threshold"`
	History   []EpochV1 `json:"history,omitempty"`
}

// ValidationV1 is the stable top-level schema emitted by the validator in
// JSON mode: the training run plus the validated ORFs.
type ValidationV1 struct {
	Run  TrainRunV1       `json:"run"`
	Orfs []ValidatedOrfV1 `json:"orfs"`
}
