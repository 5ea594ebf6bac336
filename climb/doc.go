// Package climb computes minimum step counts across a heightmap.Grid under the
// climb constraint: a step may rise at most one elevation level and may fall
// any number of levels. Moves are orthogonal and every step costs 1.
//
// What
//
//   - ShortestPath: single-source breadth-first search from start to goal.
//   - ShortestPathFromAny: best result over every minimum-elevation start cell.
//   - Both return a Result; an unreachable goal is Result.Reachable == false
//     with a nil error, never an error and never a panic.
//
// Determinism
//
//	The frontier is a strict FIFO queue and heightmap.Grid enumerates neighbors
//	in a fixed order, so the first distance recorded for a cell is minimal and
//	repeated runs produce identical results, paths included.
//
// Isolation
//
//	Every search allocates its own visit cache and frontier. The grid is only
//	read, so concurrent searches (WithWorkers) share it without locking.
//
// Strategies for ShortestPathFromAny
//
//   - StrategyPerStart (default): one independent search per candidate start,
//     O(S × R × C) for S candidates.
//   - StrategyReverse: one search from the goal with the constraint inverted;
//     the first minimum-elevation cell recorded is the answer. O(R × C).
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per expansion.
//   - WithStepBudget(n):       fail with ErrBudgetExhausted after n expansions (n>0).
//   - WithMaxDepth(d):         do not record distances beyond d (d>0).
//   - WithReturnPath():        fill Result.Path.
//   - WithOnEnqueue/WithOnDequeue/WithOnVisit: traversal hooks.
//   - WithStrategy(s), WithWorkers(n): orchestrator controls.
//   - WithLogger(l):           debug logging of orchestrator progress.
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - heightmap.ErrOutOfBounds for a start or goal outside the grid.
//   - ErrOptionViolation    for invalid options.
//   - ErrBudgetExhausted    when the step budget is spent before the search ends.
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package climb
