// Package history records the outcome of every reconciliation run in the
// database: row count, skipped and unresolved entities, and the status
// counters of each class.
//
// # HTTP Endpoints
//
//   - GET /history : latest runs (supports ?limit=N and ?device=NAME).
package history
