package galaxy

import "time"

// Observer receives generation telemetry. Implementations must be cheap;
// builders call these methods inline.
type Observer interface {
	// PlacementRelaxed fires each time a placement round halves its
	// minimum separation. scope names the placement site ("system",
	// "station", "orbit").
	PlacementRelaxed(scope string, minSeparation float64)
	// PlacementFellBack fires when sampling gave up and a deterministic
	// fallback location was used instead.
	PlacementFellBack(scope string)
	// StepSkipped fires when a generation step degrades gracefully
	// instead of failing the whole build.
	StepSkipped(scope, reason string)
	// BodyGenerated fires once per generated object. kind is the body
	// kind, or "station" / "asteroid_field" for attachments.
	BodyGenerated(kind string)
	// SystemGenerated fires after a full system build.
	SystemGenerated(name string, elapsed time.Duration)
}

// NopObserver discards all telemetry.
type NopObserver struct{}

func (NopObserver) PlacementRelaxed(string, float64)         {}
func (NopObserver) PlacementFellBack(string)                 {}
func (NopObserver) StepSkipped(string, string)               {}
func (NopObserver) BodyGenerated(string)                     {}
func (NopObserver) SystemGenerated(string, time.Duration)    {}
