package rss

import (
	"fmt"

	"github.com/cxd309/rss-intersection-kernel/internal/quantity"
)

// IntersectionChecker evaluates intersection Situations one tick at a time,
// remembering per-situation how it was last found safe. While a situation
// stays unsafe, the remembered rationale is carried forward tick after tick
// (not just for one tick): an ego that had priority when the situation was
// last safe keeps a softened response for as long as it still has priority,
// even across several consecutive unsafe ticks. A checker is created once
// and owns its own memory; it holds no resources beyond its two maps, which
// are released when the checker itself is garbage collected, since the
// kernel performs no I/O and starts no goroutines.
//
// Evaluations are not reentrant on the same checker instance; independent
// situations must be evaluated on independent checker instances (or
// serialized by the caller) if concurrency is needed, since each checker's
// maps are unsynchronized private state.
type IntersectionChecker struct {
	currentTimeIndex    quantity.TimeIndex
	lastSafeStateMap    map[quantity.ObjectId]IntersectionState
	currentSafeStateMap map[quantity.ObjectId]IntersectionState
}

// NewIntersectionChecker constructs a checker with empty memory.
func NewIntersectionChecker() *IntersectionChecker {
	return &IntersectionChecker{
		lastSafeStateMap:    make(map[quantity.ObjectId]IntersectionState),
		currentSafeStateMap: make(map[quantity.ObjectId]IntersectionState),
	}
}

// CalculateRssStateIntersection evaluates situation at timeIndex and returns
// the resulting RssState. A non-nil error means the kernel could not decide
// the situation (ErrInconsistentInput, ErrUndecidable, or
// ErrInvariantViolation); the returned RssState is then the zero value and
// must not be used. A failed call never writes a safe state into the
// checker's memory: apart from the time-index rotation, which runs before
// IntersectionSafe, the maps are only mutated after IntersectionSafe succeeds.
func (c *IntersectionChecker) CalculateRssStateIntersection(timeIndex quantity.TimeIndex, situation Situation) (RssState, error) {
	if situation.EgoVehicleState.HasPriority && situation.OtherVehicleState.HasPriority {
		return RssState{}, fmt.Errorf("both vehicles claim priority over the other: %w", ErrInconsistentInput)
	}

	if timeIndex != c.currentTimeIndex {
		// Next time step: the current safe-state map becomes the last one.
		// This rotation loses at most one tick of history; callers may skip
		// ticks freely but must never move timeIndex backwards (doing so
		// simply discards history, it is not an error).
		c.lastSafeStateMap = c.currentSafeStateMap
		c.currentSafeStateMap = make(map[quantity.ObjectId]IntersectionState)
		c.currentTimeIndex = timeIndex
	}

	rssState := RssState{
		LongitudinalState: LongitudinalRssState{
			IsSafe:   false,
			Response: LongitudinalResponseBrakeMin,
		},
		LateralStateLeft: LateralRssState{
			IsSafe:   false,
			Response: LateralResponseNone,
			RssStateInformation: RssStateInformation{
				Evaluator: EvaluatorLateralDistance,
			},
		},
		LateralStateRight: LateralRssState{
			IsSafe:   false,
			Response: LateralResponseNone,
			RssStateInformation: RssStateInformation{
				Evaluator: EvaluatorLateralDistance,
			},
		},
	}

	isSafe, intersectionState, info, err := IntersectionSafe(situation)
	if err != nil {
		return RssState{}, err
	}

	rssState.LongitudinalState.RssStateInformation = info
	rssState.LongitudinalState.IsSafe = isSafe

	previous, hasPrevious := c.lastSafeStateMap[situation.SituationID]

	if !isSafe {
		if hasPrevious {
			switch previous {
			case IntersectionStateNonPrioAbleToBreak:
				if situation.EgoVehicleState.HasPriority {
					rssState.LongitudinalState.Response = LongitudinalResponseNone
				}
			case IntersectionStateSafeLongitudinalDistance:
				if situation.RelativePosition.LongitudinalPosition == LongitudinalInFront {
					rssState.LongitudinalState.Response = LongitudinalResponseNone
				}
			case IntersectionStateNoTimeOverlap:
				rssState.LongitudinalState.Response = LongitudinalResponseBrakeMin
			default:
				return RssState{}, fmt.Errorf("previous safe state %v: %w", previous, ErrInvariantViolation)
			}
			// Carry the rationale forward so a momentarily unsafe tick does
			// not erase it before the next evaluation.
			c.currentSafeStateMap[situation.SituationID] = previous
		} else {
			rssState.LongitudinalState.Response = LongitudinalResponseBrakeMin
		}
	} else {
		rssState.LongitudinalState.Response = LongitudinalResponseNone
		c.currentSafeStateMap[situation.SituationID] = intersectionState
	}

	return rssState, nil
}
