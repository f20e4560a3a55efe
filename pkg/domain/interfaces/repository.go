package interfaces

import (
	"context"

	"github.com/urbanwaste/dumpwatch/pkg/domain/model"
	"github.com/urbanwaste/dumpwatch/pkg/domain/types"
)

// PointRepository holds the authoritative disposal point collection for a run
type PointRepository interface {
	// ListPoints returns a snapshot of the collection in insertion order
	ListPoints(ctx context.Context) ([]model.DisposalPoint, error)
	// GetPoint returns one point by ID
	GetPoint(ctx context.Context, id types.PointID) (*model.DisposalPoint, error)
	// AppendPoint adds a new point at the end of the collection
	AppendPoint(ctx context.Context, point model.DisposalPoint) error
	// ReplacePoints swaps the whole collection, e.g. with the result of a bulk update
	ReplacePoints(ctx context.Context, points []model.DisposalPoint) error

	// Close releases the repository
	Close() error
}
