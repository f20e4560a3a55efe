package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urbanwaste/dumpwatch/pkg/domain/interfaces"
	"github.com/urbanwaste/dumpwatch/pkg/domain/model"
	"github.com/urbanwaste/dumpwatch/pkg/domain/query"
	"github.com/urbanwaste/dumpwatch/pkg/domain/types"
)

// Points implements PointUseCase on top of a PointRepository
type Points struct {
	repo interfaces.PointRepository
}

// NewPoints creates a new Points use case
func NewPoints(repo interfaces.PointRepository) *Points {
	return &Points{repo: repo}
}

var _ PointUseCase = (*Points)(nil)

// ListPoints returns every point in insertion order
func (uc *Points) ListPoints(ctx context.Context) ([]model.DisposalPoint, error) {
	points, err := uc.repo.ListPoints(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list points")
	}
	return points, nil
}

// GetPoint returns one point by ID
func (uc *Points) GetPoint(ctx context.Context, id types.PointID) (*model.DisposalPoint, error) {
	point, err := uc.repo.GetPoint(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get point", goerr.V("id", id.Int()))
	}
	return point, nil
}

// Neighborhoods returns each stored neighborhood name once
func (uc *Points) Neighborhoods(ctx context.Context) ([]string, error) {
	points, err := uc.ListPoints(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0)
	seen := make(map[string]bool)
	for _, p := range points {
		if !seen[p.Neighborhood] {
			seen[p.Neighborhood] = true
			names = append(names, p.Neighborhood)
		}
	}
	return names, nil
}

// FindByNeighborhood returns the points of a neighborhood, ignoring case
func (uc *Points) FindByNeighborhood(ctx context.Context, neighborhood string) ([]model.DisposalPoint, error) {
	neighborhood = strings.TrimSpace(neighborhood)
	if neighborhood == "" {
		return nil, goerr.Wrap(model.ErrEmptyNeighborhood, "failed to filter by neighborhood")
	}

	points, err := uc.ListPoints(ctx)
	if err != nil {
		return nil, err
	}

	return query.ByNeighborhood(points, neighborhood), nil
}

// FindByBand returns the points whose severity falls within the band bounds
func (uc *Points) FindByBand(ctx context.Context, band types.Band) ([]model.DisposalPoint, error) {
	if !band.IsValid() {
		return nil, goerr.Wrap(model.ErrInvalidBand, "failed to filter by severity",
			goerr.V("band", band))
	}

	points, err := uc.ListPoints(ctx)
	if err != nil {
		return nil, err
	}

	min, max := band.Bounds()
	return query.BySeverity(points, min, max), nil
}

// FindByStatus builds a status filter and applies it to the current collection
func (uc *Points) FindByStatus(ctx context.Context, status types.Status) ([]model.DisposalPoint, error) {
	if !status.IsValid() {
		return nil, goerr.Wrap(model.ErrInvalidStatus, "failed to filter by status",
			goerr.V("status", status))
	}

	points, err := uc.ListPoints(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := query.StatusFilter(status)
	return byStatus(points), nil
}

// Report counts points per neighborhood
func (uc *Points) Report(ctx context.Context) (map[string]int, error) {
	points, err := uc.ListPoints(ctx)
	if err != nil {
		return nil, err
	}

	return query.CountByNeighborhood(points), nil
}

// Register creates a pending point with ID max+1 and appends it to the collection
func (uc *Points) Register(ctx context.Context, neighborhood string, severity int) (*model.DisposalPoint, error) {
	points, err := uc.ListPoints(ctx)
	if err != nil {
		return nil, err
	}

	point, err := model.NewDisposalPoint(model.NextPointID(points), neighborhood, severity)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create point")
	}

	if err := uc.repo.AppendPoint(ctx, *point); err != nil {
		return nil, goerr.Wrap(err, "failed to save point",
			goerr.V("id", point.ID.Int()))
	}

	ctxlog.From(ctx).Info("Disposal point registered",
		slog.Int("id", point.ID.Int()),
		slog.String("neighborhood", point.Neighborhood),
		slog.Int("severity", point.Severity),
	)

	return point, nil
}

// UpdateStatus rebuilds the collection with a rule that only touches the target point
func (uc *Points) UpdateStatus(ctx context.Context, id types.PointID, status types.Status) (*model.DisposalPoint, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid point ID")
	}

	if !status.IsValid() {
		return nil, goerr.Wrap(model.ErrInvalidStatus, "failed to update status",
			goerr.V("status", status))
	}

	current, err := uc.GetPoint(ctx, id)
	if err != nil {
		return nil, err
	}

	points, err := uc.ListPoints(ctx)
	if err != nil {
		return nil, err
	}

	updated := query.Update(points, func(p model.DisposalPoint) model.DisposalPoint {
		if p.ID == id {
			return p.WithStatus(status)
		}
		return p
	})

	if err := uc.repo.ReplacePoints(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to save points")
	}

	ctxlog.From(ctx).Info("Disposal point status updated",
		slog.Int("id", id.Int()),
		slog.String("from", current.Status.String()),
		slog.String("to", status.String()),
	)

	result := current.WithStatus(status)
	return &result, nil
}
