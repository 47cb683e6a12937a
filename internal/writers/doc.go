// Package writers turns averaged window samples into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV rows, JSON/JSONL).
//   • Engine stays domain-only; Pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
