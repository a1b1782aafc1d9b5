// Package writers turns generated records and summaries into serialized outputs.
//
// Design:
//   - Writers own all presentation plumbing (streaming CSV, sinks, summary formats).
//   - dataset stays domain-only; appcore stays orchestration-only.
//   - Summary JSON goes through pkg/api (v1) for a stable wire format.
package writers
