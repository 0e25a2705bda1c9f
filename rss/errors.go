package rss

import "errors"

// Sentinel errors for the three failure kinds the kernel can surface.
// Callers MUST use errors.Is to branch on these, never string comparison;
// every returned error wraps exactly one of them with %w.
var (
	// ErrInconsistentInput indicates structurally inconsistent input: both
	// vehicles claim priority, distanceToLeave < distanceToEnter for either
	// vehicle, or a typed quantity holds NaN.
	ErrInconsistentInput = errors.New("rss: structurally inconsistent input")

	// ErrUndecidable indicates a kinematic formula could not produce a
	// result, typically because a required deceleration was non-positive.
	ErrUndecidable = errors.New("rss: arithmetically undecidable")

	// ErrInvariantViolation indicates an internal invariant was violated,
	// e.g. an IntersectionState value outside the three known variants.
	// Not reachable from valid input; kept defensively, mirroring the
	// LCOV_EXCL-guarded default branch in the reference implementation.
	ErrInvariantViolation = errors.New("rss: internal invariant violation")
)
