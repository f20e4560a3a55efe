package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urbanwaste/dumpwatch/pkg/domain/types"
)

// DisposalPoint is one tracked waste-disposal location
type DisposalPoint struct {
	ID           types.PointID `json:"id" yaml:"id"`
	Neighborhood string        `json:"neighborhood" yaml:"neighborhood"` // stored with original casing
	Severity     int           `json:"severity" yaml:"severity"`         // 1 (minor) to 10 (critical)
	Status       types.Status  `json:"status" yaml:"status"`
}

// NewDisposalPoint creates a pending disposal point for the registration flow
func NewDisposalPoint(id types.PointID, neighborhood string, severity int) (*DisposalPoint, error) {
	point := &DisposalPoint{
		ID:           id,
		Neighborhood: strings.TrimSpace(neighborhood),
		Severity:     severity,
		Status:       types.StatusPending,
	}

	if err := point.Validate(); err != nil {
		return nil, err
	}

	return point, nil
}

// Validate checks every field against the rules enforced at the shell boundary
func (p DisposalPoint) Validate() error {
	if err := p.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid disposal point ID")
	}

	if strings.TrimSpace(p.Neighborhood) == "" {
		return goerr.Wrap(ErrEmptyNeighborhood, "invalid disposal point",
			goerr.V("id", p.ID.Int()))
	}

	if err := types.ValidateSeverity(p.Severity); err != nil {
		return goerr.Wrap(ErrInvalidSeverity, "invalid disposal point",
			goerr.V("id", p.ID.Int()),
			goerr.V("severity", p.Severity))
	}

	if !p.Status.IsValid() {
		return goerr.Wrap(ErrInvalidStatus, "invalid disposal point",
			goerr.V("id", p.ID.Int()),
			goerr.V("status", p.Status))
	}

	return nil
}

// WithStatus returns a copy of the point with another status
func (p DisposalPoint) WithStatus(status types.Status) DisposalPoint {
	p.Status = status
	return p
}

// NextPointID returns max(existing IDs) + 1, or 1 for an empty collection
func NextPointID(points []DisposalPoint) types.PointID {
	var max types.PointID
	for _, p := range points {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
