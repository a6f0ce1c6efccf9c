// Package dataprocessing implements the load-level side of the reporting
// engine: normalizing free-text amounts from human-edited spreadsheet
// exports, deriving canonical load identifiers for the OTR registry join,
// ingesting per-load profitability rows into typed records, and reducing
// those records into the dimensional metrics the dashboard renders.
//
// The package is pure: it receives rows as [][]string (or already-typed
// records) and returns immutable data. File I/O lives in internal/files.
package dataprocessing
