// Package writers owns the output side of a run: the two-variant sink
// (file path vs stdout) with atomic-replace discipline for files, and
// broken-pipe detection for early-exiting downstream consumers.
package writers
