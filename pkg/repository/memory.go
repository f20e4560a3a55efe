package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urbanwaste/dumpwatch/pkg/domain/interfaces"
	"github.com/urbanwaste/dumpwatch/pkg/domain/model"
	"github.com/urbanwaste/dumpwatch/pkg/domain/types"
)

// Memory implements PointRepository with an in-memory slice. Data is gone when the process exits.
type Memory struct {
	mu     sync.RWMutex
	points []model.DisposalPoint
}

// NewMemory creates a new memory repository holding a copy of the initial points
func NewMemory(initial ...model.DisposalPoint) interfaces.PointRepository {
	return &Memory{
		points: slices.Clone(initial),
	}
}

// ListPoints returns a copy of the collection
func (m *Memory) ListPoints(ctx context.Context) ([]model.DisposalPoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Copy so callers holding a snapshot never observe later replacements
	points := make([]model.DisposalPoint, len(m.points))
	copy(points, m.points)
	return points, nil
}

// GetPoint retrieves a point by ID
func (m *Memory) GetPoint(ctx context.Context, id types.PointID) (*model.DisposalPoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.points {
		if p.ID == id {
			pointCopy := p
			return &pointCopy, nil
		}
	}

	return nil, goerr.Wrap(model.ErrPointNotFound, "failed to get point", goerr.V("id", id.Int()))
}

// AppendPoint adds a point to the end of the collection
func (m *Memory) AppendPoint(ctx context.Context, point model.DisposalPoint) error {
	if err := point.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid point ID")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.points {
		if p.ID == point.ID {
			return goerr.Wrap(model.ErrDuplicatePointID, "failed to append point",
				goerr.V("id", point.ID.Int()))
		}
	}

	m.points = append(m.points, point)
	return nil
}

// ReplacePoints replaces the whole collection with a copy of points
func (m *Memory) ReplacePoints(ctx context.Context, points []model.DisposalPoint) error {
	seen := make(map[types.PointID]bool, len(points))
	for _, p := range points {
		if seen[p.ID] {
			return goerr.Wrap(model.ErrDuplicatePointID, "failed to replace points",
				goerr.V("id", p.ID.Int()))
		}
		seen[p.ID] = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.points = slices.Clone(points)
	return nil
}

// Close does nothing for memory repository
func (m *Memory) Close() error {
	return nil
}
