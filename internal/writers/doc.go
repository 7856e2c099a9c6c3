// Package writers turns domain ORF hits into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text/JSON/JSONL/FASTA).
//   - The scanner stays domain-only; the pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
