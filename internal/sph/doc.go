// Package sph defines the pairwise-interaction contract for SPH equations.
//
// Every equation follows a three-stage lifecycle driven by the engine:
//
//   - Initialize: reset the destination accumulators the equation owns
//   - Loop: accumulate one neighbor's contribution into the destination
//   - PostLoop: finishing transform after all neighbors are processed
//
// Initialize and PostLoop are optional capability interfaces; the engine
// skips them when absent. Loop is required.
//
// # Field binding
//
// Equations never look fields up by name in the hot path. Bind resolves the
// destination and source fields an equation touches into plain slices once
// at setup; Loop is pure slice arithmetic over indices. A field the array
// does not carry surfaces as a configuration error from Bind, before any
// stepping begins.
//
// # Symmetric accumulation
//
// An equation constructed symmetric applies the reaction contribution to
// the source particle inside the same Loop call, so the engine visits each
// unordered pair exactly once. Symmetric equations must express a true
// conservation-law reaction; the symmetric flag is a documented contract,
// not a checked one.
//
// # Thread safety
//
// Equations hold no per-call state. Concurrent Loop calls are safe only if
// the engine partitions writes so no two calls accumulate into the same
// destination or source slot.
package sph
