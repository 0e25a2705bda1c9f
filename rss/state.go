package rss

import "github.com/cxd309/rss-intersection-kernel/internal/quantity"

// RssStateEvaluator identifies which RSS rule decided a tier. It is a
// string-backed enum so it round-trips through JSON and %s with no separate
// to-string conversion layer, since Go string constants are already their
// own diagnostic string form.
type RssStateEvaluator string

const (
	EvaluatorNone                                                RssStateEvaluator = "None"
	EvaluatorLongitudinalDistance                                RssStateEvaluator = "LongitudinalDistance"
	EvaluatorLongitudinalDistanceOppositeDirection               RssStateEvaluator = "LongitudinalDistanceOppositeDirection"
	EvaluatorLongitudinalDistanceOppositeDirectionEgoCorrectLane RssStateEvaluator = "LongitudinalDistanceOppositeDirectionEgoCorrectLane"
	EvaluatorLateralDistance                                     RssStateEvaluator = "LateralDistance"
	EvaluatorIntersectionEgoInFront                              RssStateEvaluator = "IntersectionEgoInFront"
	EvaluatorIntersectionOtherInFront                            RssStateEvaluator = "IntersectionOtherInFront"
	EvaluatorIntersectionOverlap                                 RssStateEvaluator = "IntersectionOverlap"
	EvaluatorIntersectionEgoPriorityOtherAbleToStop              RssStateEvaluator = "IntersectionEgoPriorityOtherAbleToStop"
	EvaluatorIntersectionOtherPriorityEgoAbleToStop              RssStateEvaluator = "IntersectionOtherPriorityEgoAbleToStop"
)

// RssStateInformation carries the quantities compared by whichever evaluator
// decided a tier, for diagnostics. For EvaluatorIntersectionOverlap both
// distances are zero by convention.
type RssStateInformation struct {
	SafeDistance    quantity.Distance `json:"safe_distance"`
	CurrentDistance quantity.Distance `json:"current_distance"`
	Evaluator       RssStateEvaluator `json:"evaluator"`
}

// LongitudinalResponse is the required longitudinal braking response.
type LongitudinalResponse string

const (
	LongitudinalResponseNone            LongitudinalResponse = "None"
	LongitudinalResponseBrakeMin        LongitudinalResponse = "BrakeMin"
	LongitudinalResponseBrakeMinCorrect LongitudinalResponse = "BrakeMinCorrect"
)

// LateralResponse is the required lateral braking response. The
// intersection logic never produces a non-None lateral response; lateral
// overlap is always assumed once both vehicles occupy the intersection
// window rather than computed from a lateral distance check.
type LateralResponse string

const (
	LateralResponseNone     LateralResponse = "None"
	LateralResponseBrakeMin LateralResponse = "BrakeMin"
)

// LongitudinalRssState is the longitudinal half of an RssState.
type LongitudinalRssState struct {
	IsSafe              bool                 `json:"is_safe"`
	Response            LongitudinalResponse `json:"response"`
	RssStateInformation RssStateInformation  `json:"rss_state_information"`
}

// LateralRssState is one lateral (left or right) half of an RssState.
type LateralRssState struct {
	IsSafe              bool                `json:"is_safe"`
	Response            LateralResponse     `json:"response"`
	RssStateInformation RssStateInformation `json:"rss_state_information"`
}

// RssState is the full result of one evaluation: longitudinal safety plus
// left/right lateral safety flags, required response, and diagnostics.
type RssState struct {
	LongitudinalState LongitudinalRssState `json:"longitudinal_state"`
	LateralStateLeft  LateralRssState      `json:"lateral_state_left"`
	LateralStateRight LateralRssState      `json:"lateral_state_right"`
}

// IntersectionState is the internal discriminator the checker remembers
// across ticks: how the situation was last found safe.
type IntersectionState int

const (
	// IntersectionStateNonPrioAbleToBreak: a non-priority vehicle has a safe
	// stopping distance to the intersection.
	IntersectionStateNonPrioAbleToBreak IntersectionState = iota
	// IntersectionStateSafeLongitudinalDistance: neither vehicle can stop,
	// but they have a safe longitudinal distance as same-direction traffic.
	IntersectionStateSafeLongitudinalDistance
	// IntersectionStateNoTimeOverlap: the vehicles never occupy the
	// intersection at the same time.
	IntersectionStateNoTimeOverlap
)

// String renders the IntersectionState for diagnostics.
func (s IntersectionState) String() string {
	switch s {
	case IntersectionStateNonPrioAbleToBreak:
		return "NonPrioAbleToBreak"
	case IntersectionStateSafeLongitudinalDistance:
		return "SafeLongitudinalDistance"
	case IntersectionStateNoTimeOverlap:
		return "NoTimeOverlap"
	default:
		return "Unknown"
	}
}
