// Package analyze orchestrates the full analysis pipeline for one image:
// classification, region labeling, geometry measurement, and per-category
// aggregation into a report.
//
// Every invocation is independent and side-effect-free on its immutable
// inputs, so multiple images may be analyzed concurrently with no shared
// state. Identical buffer and config always produce a bit-identical report.
// A run either fully succeeds or fails atomically; there is no partial
// report.
package analyze
