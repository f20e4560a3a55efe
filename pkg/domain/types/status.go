package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Status represents the lifecycle state of a disposal point
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// Statuses lists the accepted statuses in lifecycle order
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusResolved}
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the status is one of the accepted values
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	default:
		return false
	}
}

// ParseStatus normalizes user input and checks it against the accepted statuses
func ParseStatus(input string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(input)))
	if !s.IsValid() {
		return "", goerr.Wrap(ErrInvalidStatus, "failed to parse status", goerr.V("status", input))
	}
	return s, nil
}
