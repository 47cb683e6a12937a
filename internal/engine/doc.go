// Package engine contains the windowed-average core: the sequence boundary
// tracker, the window accumulator and the aggregation state they share.
// It never imports app, writers, cli, pipeline or render; keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
