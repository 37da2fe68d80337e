// Package interval implements the time algebra used to describe when trucks
// and terminals are available.
//
// An Interval is a half-open range [start, end) of seconds with end > start.
// A Chain is an ordered run of such intervals where each one starts strictly
// after the previous one ends. Chains support intersection (IntersectChains),
// complement inside a bound (RemoveFrom) and the two mutations needed by the
// schedule generator: appending in order (TryPushBack) and removing by
// position (Erase).
package interval
