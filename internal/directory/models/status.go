package models

// StatusKind represents the operational state of a PC.
type StatusKind string

const (
	StatusOn              StatusKind = "on"
	StatusOff             StatusKind = "off"
	StatusBeingMaintained StatusKind = "being_maintained"
)

// Status is the operational status of a PC. Reason is set only while the
// machine is being maintained.
type Status struct {
	Kind   StatusKind
	Reason string
}

// IsOn reports whether the machine is powered on and not under maintenance.
// Only machines in this state are eligible for mail delivery.
func (s Status) IsOn() bool {
	return s.Kind == StatusOn
}

// CanTransitionTo checks if a transition from the current status to the target is valid.
// Valid transitions:
// - on -> being_maintained (maintenance lock acquired)
// - on -> off (power down)
// - being_maintained -> on (maintenance lock released)
// - off -> on (power up)
func (s Status) CanTransitionTo(target StatusKind) bool {
	switch s.Kind {
	case StatusOn:
		return target == StatusBeingMaintained || target == StatusOff
	case StatusBeingMaintained:
		return target == StatusOn
	case StatusOff:
		return target == StatusOn
	default:
		return false
	}
}

func (s Status) String() string {
	if s.Kind == StatusBeingMaintained && s.Reason != "" {
		return string(s.Kind) + ": " + s.Reason
	}
	return string(s.Kind)
}
