// Package metrics computes diagnostics over a finished Conformation for
// downstream consumers: contact connectivity, chain compactness, and
// spatial extent. It never sits on the remc/metropolis hot path and does
// not affect P1-P6's core semantics — it exists for the "read-only view
// ... suitable for downstream visualizers" contract spec §6 names but does
// not itself specify a format for.
package metrics
