// Package schedule plans truck itineraries against a static problem.
//
// A Generator holds the planning period, the fleet, per-cargo direct
// delivery windows and the driving-time table. It enumerates the deliveries
// that fit a truck's idle window (AppendPossibleTransitions) and perturbs a
// schedule by one leg (Neighbour), which is the move a local search builds
// on. Feasible transitions are memoised per lookup for the lifetime of the
// generator and shared between forks.
package schedule
