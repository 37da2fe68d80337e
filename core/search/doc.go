// Package search drives local search over schedules using the neighbour
// move of package schedule. Acceptance rules and stopping criteria live
// here, not in the generator.
package search
