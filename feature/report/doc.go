// Package report drives reconciliation runs against the devices of the
// inventory and turns their results into files or HTTP responses.
//
// # Service
//
//   - Run: log in, reconcile one device, tag its rows with the device labels.
//   - Write: render a result as xlsx and/or csv under the output directory.
//   - Generate: Run and Write every device; failures are collected, not fatal.
//   - Summarize / WriteSummary: statistics-only tallies per class.
//
// Written files are handed to an optional Archiver; successful runs to an
// optional Recorder.
//
// # HTTP Endpoints
//
//   - GET /report : lists the inventory.
//   - GET /report/:device : report rows, per-class counters and diagnostics.
//   - GET /report/:device/summary : statistics tallies.
//
// An unknown device answers 404. A collection that cannot be fetched answers
// 502 naming the class and collection.
package report
