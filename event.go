package scaler

// Axis identifies a relative-motion axis.
type Axis uint8

const (
	// AxisX is horizontal pointer motion.
	AxisX Axis = iota

	// AxisY is vertical pointer motion.
	AxisY

	// AxisWheel is vertical scroll. Passed through unchanged.
	AxisWheel

	// AxisHWheel is horizontal scroll. Passed through unchanged.
	AxisHWheel
)

// String returns a short axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisWheel:
		return "wheel"
	case AxisHWheel:
		return "hwheel"
	default:
		return "other"
	}
}

// EventKind tags an Event.
type EventKind uint8

const (
	// EventMotion carries a raw delta for one axis.
	EventMotion EventKind = iota

	// EventBoundary marks the end of a reporting frame.
	EventBoundary
)

// Event is one input to the scaler: either a motion sample or a frame
// boundary. Build events with Motion and Boundary.
type Event struct {
	Kind  EventKind
	Axis  Axis
	Delta int32
}

// Motion returns a motion event for axis.
func Motion(axis Axis, delta int32) Event {
	return Event{Kind: EventMotion, Axis: axis, Delta: delta}
}

// Boundary returns a frame boundary event.
func Boundary() Event {
	return Event{Kind: EventBoundary}
}

// Sample is a motion sample whose EndOfFrame flag marks it as the last one
// of a reporting frame.
type Sample struct {
	Axis       Axis
	Delta      int32
	EndOfFrame bool
}

// Events splits s into its motion event and, if flagged, a boundary.
func (s Sample) Events() []Event {
	if s.EndOfFrame {
		return []Event{Motion(s.Axis, s.Delta), Boundary()}
	}
	return []Event{Motion(s.Axis, s.Delta)}
}
