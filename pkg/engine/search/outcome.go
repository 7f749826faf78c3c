package search

import (
	"errors"

	"gridpath/pkg/engine/world"
)

// Status is the lifecycle state of a search
type Status int

// Search states
const (
	Idle Status = iota
	Running
	Succeeded
	Failed
	Rejected
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Rejection is the reason a search was refused before the main loop started
type Rejection int

// Rejection reasons, in the order they are checked
const (
	NotRejected Rejection = iota
	InvalidEndpoint
	BlockedEndpoint
	AlreadyAtDestination
)

// String returns the string representation of a rejection reason
func (r Rejection) String() string {
	switch r {
	case NotRejected:
		return "NotRejected"
	case InvalidEndpoint:
		return "InvalidEndpoint"
	case BlockedEndpoint:
		return "BlockedEndpoint"
	case AlreadyAtDestination:
		return "AlreadyAtDestination"
	default:
		return "Unknown"
	}
}

// Message returns the user-facing description of the rejection
func (r Rejection) Message() string {
	switch r {
	case InvalidEndpoint:
		return "Source or Destination is invalid."
	case BlockedEndpoint:
		return "Source or Destination is blocked."
	case AlreadyAtDestination:
		return "We are already at the destination."
	default:
		return ""
	}
}

// RejectionError wraps a Rejection as an error
type RejectionError struct {
	Reason Rejection
}

func (e *RejectionError) Error() string {
	return e.Reason.Message()
}

// ErrSearchExhausted means the frontier emptied before the destination was discovered
var ErrSearchExhausted = errors.New("failed to find the destination cell")

// Outcome is the result of a single Search call
type Outcome struct {
	Status    Status
	Rejection Rejection

	// Path runs from source to destination, both included. Nil unless Succeeded.
	Path []world.Coord
	// Cost is the g-cost of the destination along Path
	Cost float64

	// Expanded counts cells popped and marked closed; Relaxed counts cost improvements
	Expanded int
	Relaxed  int
}

// Found returns true if a path was produced
func (o Outcome) Found() bool {
	return o.Status == Succeeded
}

// Steps returns the number of moves along the path
func (o Outcome) Steps() int {
	if len(o.Path) == 0 {
		return 0
	}
	return len(o.Path) - 1
}

// Err maps the outcome to the error taxonomy: nil on success,
// *RejectionError on rejection, ErrSearchExhausted on failure.
func (o Outcome) Err() error {
	switch o.Status {
	case Succeeded:
		return nil
	case Rejected:
		return &RejectionError{Reason: o.Rejection}
	case Failed:
		return ErrSearchExhausted
	default:
		return errors.New("search did not finish: " + o.Status.String())
	}
}
