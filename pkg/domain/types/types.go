package types

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// PointID represents a disposal point identifier
type PointID int

// String returns the string representation
func (id PointID) String() string {
	return fmt.Sprintf("%d", id)
}

// Int returns the int representation
func (id PointID) Int() int {
	return int(id)
}

// Validate checks if the point ID is positive
func (id PointID) Validate() error {
	if id <= 0 {
		return goerr.New("point ID must be positive", goerr.V("id", int(id)))
	}
	return nil
}

// SessionID identifies one interactive shell session in logs
type SessionID string

// String returns the string representation
func (id SessionID) String() string {
	return string(id)
}

// NewSessionID creates a new SessionID using UUID v7
func NewSessionID() (SessionID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate session ID")
	}
	return SessionID(id.String()), nil
}
