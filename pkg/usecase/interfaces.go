package usecase

import (
	"context"

	"github.com/urbanwaste/dumpwatch/pkg/domain/model"
	"github.com/urbanwaste/dumpwatch/pkg/domain/types"
)

// PointUseCase defines the operations the shell and the one-shot commands run
type PointUseCase interface {
	// ListPoints returns every point in insertion order
	ListPoints(ctx context.Context) ([]model.DisposalPoint, error)

	// GetPoint returns one point by ID
	GetPoint(ctx context.Context, id types.PointID) (*model.DisposalPoint, error)

	// Neighborhoods returns each neighborhood once, in order of first appearance
	Neighborhoods(ctx context.Context) ([]string, error)

	// FindByNeighborhood returns the points of a neighborhood, ignoring case
	FindByNeighborhood(ctx context.Context, neighborhood string) ([]model.DisposalPoint, error)

	// FindByBand returns the points whose severity falls in the band
	FindByBand(ctx context.Context, band types.Band) ([]model.DisposalPoint, error)

	// FindByStatus returns the points with the given status
	FindByStatus(ctx context.Context, status types.Status) ([]model.DisposalPoint, error)

	// Report counts points per neighborhood
	Report(ctx context.Context) (map[string]int, error)

	// Register creates a pending point with the next free ID
	Register(ctx context.Context, neighborhood string, severity int) (*model.DisposalPoint, error)

	// UpdateStatus sets the status of one point
	UpdateStatus(ctx context.Context, id types.PointID, status types.Status) (*model.DisposalPoint, error)
}
