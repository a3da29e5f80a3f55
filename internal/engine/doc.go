// Package engine drives composed SPH equations over particle arrays.
//
// The [Evaluator] owns the pass structure: for each equation, in
// registration order, it sweeps initialize over every destination particle,
// then loop over every (destination, neighbor) pair, then post_loop.
// Initialize finishes for all particles before any loop call because
// symmetric loops write into other particles' accumulators.
//
// The [Simulator] wraps an evaluator with time stepping, metric
// observation, and state validation. Numerical blow-ups surface as
// [SimulationError] wrapping [ErrInvalidState]; the equations themselves
// never trap them.
//
// Evaluators and simulators are NOT thread-safe.
package engine
