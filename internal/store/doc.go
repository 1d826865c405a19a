// Package store provides an optional SQLite journal of mandelplane
// computations.
//
// Each CLI invocation gets a run ID (UUIDv7, so runs sort by start time) and
// every computation it performs is appended with the next per-run sequence
// number. Records are content-addressed: the ID is a domain-separated
// SHA-256 of the canonical JSON of run ID, seq, kind, input and output.
//
// # Ordering
//
// Listing always uses ORDER BY run_id, seq ASC, id ASC COLLATE BINARY so the
// journal reads back identically regardless of insertion timing.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
