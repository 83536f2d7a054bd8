package models

// Status is the lifecycle state of a session.
type Status string

const (
	// StatusPending is a legacy entry state kept for rows written by older
	// builds; it behaves exactly like StatusUpcoming.
	StatusPending   Status = "pending"
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions is the closed set of allowed status changes. A session must
// pass through active to complete; completed and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusActive, StatusCancelled},
	StatusUpcoming: {StatusActive, StatusCancelled},
	StatusActive:   {StatusCompleted, StatusCancelled},
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusUpcoming, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsEditable reports whether a session in this status may still be edited or
// deleted by the user-facing surfaces.
func (s Status) IsEditable() bool {
	return s == StatusUpcoming || s == StatusPending
}

// CanTransition reports whether a session may move from one status to another.
// A no-op transition (same status) is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
