// Package quantity provides strongly typed scalar wrappers over a finite real,
// one per physical unit the RSS kernel reasons about. Each type carries its own
// valid input range and a validator used on ingress from the outside world;
// arithmetic inside the kernel preserves the unit tag by construction (the
// compiler rejects mixing, say, a Speed and a Distance without an explicit
// conversion).
package quantity

import "math"

// Duration is a span of time in seconds.
type Duration float64

// DurationMax is returned by formulas.TimeToCoverDistance when no finite
// stopping time exists, mirroring std::numeric_limits<Duration>::max() in the
// reference implementation.
const DurationMax Duration = math.MaxFloat64

// Speed is a velocity in metres per second. Negative values represent motion
// in the reverse of the reference direction.
type Speed float64

// Acceleration is in metres per second squared. Sign is supplied by the
// formula, not by the type: the same magnitude is used for "accelerate" and
// "brake" depending on which argument position a caller passes it in.
type Acceleration float64

// Distance is a length in metres. Always non-negative in valid input.
type Distance float64

// TimeIndex is an externally chosen monotonic tick counter. Zero means
// "unset" and is never a valid input value.
type TimeIndex uint64

// ObjectId identifies a situation (a pairwise ego/other evaluation context).
type ObjectId uint64

// SpeedRange bounds a longitudinal or lateral speed between a minimum and a
// maximum, e.g. for the case a lane permits forward and reverse motion.
type SpeedRange struct {
	Minimum Speed `json:"minimum"`
	Maximum Speed `json:"maximum"`
}

// Valid reports whether the range respects Minimum <= Maximum and both
// bounds are themselves within the valid Speed input range.
func (r SpeedRange) Valid() bool {
	return ValidSpeed(r.Minimum) && ValidSpeed(r.Maximum) && r.Minimum <= r.Maximum
}

// Valid input ranges, per the kernel's ingress contract. The kernel itself
// never re-validates these on the hot path; callers validate once on ingress
// using the functions below.
const (
	DurationMin      = 0.0
	DurationMaxInput = 100.0

	SpeedMin = -100.0
	SpeedMax = 100.0

	AccelerationMin = -1000.0
	AccelerationMax = 1000.0

	DistanceMin = 0.0
	DistanceMax = 1e6

	TimeIndexMin TimeIndex = 1
	TimeIndexMax TimeIndex = math.MaxInt64
)

// ValidDuration reports whether d lies in [0, 100] seconds and is not NaN.
func ValidDuration(d Duration) bool {
	return !math.IsNaN(float64(d)) && float64(d) >= DurationMin && float64(d) <= DurationMaxInput
}

// ValidSpeed reports whether s lies in [-100, 100] m/s and is not NaN.
func ValidSpeed(s Speed) bool {
	return !math.IsNaN(float64(s)) && float64(s) >= SpeedMin && float64(s) <= SpeedMax
}

// ValidAcceleration reports whether a lies in [-1000, 1000] m/s² and is not NaN.
func ValidAcceleration(a Acceleration) bool {
	return !math.IsNaN(float64(a)) && float64(a) >= AccelerationMin && float64(a) <= AccelerationMax
}

// ValidDistance reports whether d lies in [0, 1e6] m and is not NaN.
func ValidDistance(d Distance) bool {
	return !math.IsNaN(float64(d)) && float64(d) >= DistanceMin && float64(d) <= DistanceMax
}

// ValidTimeIndex reports whether t lies in [1, 2^63-1]; zero is reserved for "unset".
func ValidTimeIndex(t TimeIndex) bool {
	return t >= TimeIndexMin && t <= TimeIndexMax
}

// ValidObjectId reports whether id is a permitted ObjectId. ObjectId is
// unsigned, so non-negativity is automatically satisfied by the type; the
// function exists so every quantity has a uniform Valid* entry point for
// validator-layer callers.
func ValidObjectId(ObjectId) bool {
	return true
}
