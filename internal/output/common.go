package output

// TSVHeader is the optional header row for text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "sequence\tposition\taverage_depth"

// PartialMark is appended as a fourth column to partial windows in text output.
const PartialMark = "partial"
