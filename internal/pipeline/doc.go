// Package pipeline streams FASTA records through a Scanner worker pool
// and calls a visit callback with each ORF hit.
//
// The only contract to implement is Scanner (Scan).
// This keeps the pipeline swappable and testable.
package pipeline
