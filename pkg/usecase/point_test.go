package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urbanwaste/dumpwatch/pkg/domain/model"
	"github.com/urbanwaste/dumpwatch/pkg/domain/types"
	"github.com/urbanwaste/dumpwatch/pkg/repository"
	"github.com/urbanwaste/dumpwatch/pkg/usecase"
)

func newSampleUseCase() (*usecase.Points, context.Context) {
	repo := repository.NewMemory(model.SamplePoints()...)
	return usecase.NewPoints(repo), context.Background()
}

func pointIDs(points []model.DisposalPoint) []types.PointID {
	result := make([]types.PointID, 0, len(points))
	for _, p := range points {
		result = append(result, p.ID)
	}
	return result
}

func TestPoints_GetPoint(t *testing.T) {
	uc, ctx := newSampleUseCase()

	point, err := uc.GetPoint(ctx, 5)
	gt.NoError(t, err)
	gt.Equal(t, point.Neighborhood, "Centro")

	_, err = uc.GetPoint(ctx, 50)
	gt.True(t, errors.Is(err, model.ErrPointNotFound))
}

func TestPoints_Neighborhoods(t *testing.T) {
	uc, ctx := newSampleUseCase()

	names, err := uc.Neighborhoods(ctx)
	gt.NoError(t, err)
	gt.Equal(t, names, []string{"Pirambu", "Barra do Ceará", "Vicente Pinzón", "Centro"})
}

func TestPoints_FindByNeighborhood(t *testing.T) {
	t.Run("matches ignoring case and surrounding spaces", func(t *testing.T) {
		uc, ctx := newSampleUseCase()
		points, err := uc.FindByNeighborhood(ctx, "  vicente pinzón ")
		gt.NoError(t, err)
		gt.Equal(t, pointIDs(points), []types.PointID{3, 6})
	})

	t.Run("unknown neighborhood is empty, not an error", func(t *testing.T) {
		uc, ctx := newSampleUseCase()
		points, err := uc.FindByNeighborhood(ctx, "Aldeota")
		gt.NoError(t, err)
		gt.Equal(t, len(points), 0)
	})

	t.Run("blank neighborhood is rejected", func(t *testing.T) {
		uc, ctx := newSampleUseCase()
		_, err := uc.FindByNeighborhood(ctx, " ")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrEmptyNeighborhood))
	})
}

func TestPoints_FindByBand(t *testing.T) {
	tests := []struct {
		band     types.Band
		expected []types.PointID
	}{
		{types.BandLow, []types.PointID{6}},
		{types.BandMedium, []types.PointID{3, 4, 5}},
		{types.BandHigh, []types.PointID{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.band.String(), func(t *testing.T) {
			uc, ctx := newSampleUseCase()
			points, err := uc.FindByBand(ctx, tt.band)
			gt.NoError(t, err)
			gt.Equal(t, pointIDs(points), tt.expected)
		})
	}

	t.Run("unknown band", func(t *testing.T) {
		uc, ctx := newSampleUseCase()
		_, err := uc.FindByBand(ctx, "extreme")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidBand))
	})
}

func TestPoints_FindByStatus(t *testing.T) {
	uc, ctx := newSampleUseCase()

	pending, err := uc.FindByStatus(ctx, types.StatusPending)
	gt.NoError(t, err)
	gt.Equal(t, pointIDs(pending), []types.PointID{1, 2, 3})

	inProgress, err := uc.FindByStatus(ctx, types.StatusInProgress)
	gt.NoError(t, err)
	gt.Equal(t, pointIDs(inProgress), []types.PointID{4})

	_, err = uc.FindByStatus(ctx, "verified")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrInvalidStatus))
}

func TestPoints_Report(t *testing.T) {
	uc, ctx := newSampleUseCase()

	report, err := uc.Report(ctx)
	gt.NoError(t, err)
	gt.Equal(t, report, map[string]int{
		"Pirambu":        2,
		"Barra do Ceará": 1,
		"Vicente Pinzón": 2,
		"Centro":         1,
	})
}

func TestPoints_Register(t *testing.T) {
	t.Run("assigns next ID and pending status", func(t *testing.T) {
		uc, ctx := newSampleUseCase()

		point, err := uc.Register(ctx, "Meireles", 4)
		gt.NoError(t, err)
		gt.Equal(t, point.ID, types.PointID(7))
		gt.Equal(t, point.Status, types.StatusPending)

		points, err := uc.ListPoints(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(points), 7)
		gt.Equal(t, points[6], *point)
	})

	t.Run("first point on empty collection gets ID 1", func(t *testing.T) {
		uc := usecase.NewPoints(repository.NewMemory())
		point, err := uc.Register(context.Background(), "Centro", 10)
		gt.NoError(t, err)
		gt.Equal(t, point.ID, types.PointID(1))
	})

	t.Run("invalid input leaves collection unchanged", func(t *testing.T) {
		uc, ctx := newSampleUseCase()

		_, err := uc.Register(ctx, "", 4)
		gt.True(t, errors.Is(err, model.ErrEmptyNeighborhood))

		_, err = uc.Register(ctx, "Centro", 11)
		gt.True(t, errors.Is(err, model.ErrInvalidSeverity))

		points, err := uc.ListPoints(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(points), 6)
	})
}

func TestPoints_UpdateStatus(t *testing.T) {
	t.Run("changes only the target point", func(t *testing.T) {
		uc, ctx := newSampleUseCase()

		before, err := uc.ListPoints(ctx)
		gt.NoError(t, err)

		updated, err := uc.UpdateStatus(ctx, 2, types.StatusInProgress)
		gt.NoError(t, err)
		gt.Equal(t, updated.Status, types.StatusInProgress)
		gt.Equal(t, updated.Neighborhood, "Barra do Ceará")

		after, err := uc.ListPoints(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(after), len(before))
		for i := range after {
			if after[i].ID == 2 {
				gt.Equal(t, after[i].Status, types.StatusInProgress)
				continue
			}
			gt.Equal(t, after[i], before[i])
		}

		// The earlier snapshot is not affected by the replacement
		gt.Equal(t, before[1].Status, types.StatusPending)
	})

	t.Run("unknown ID", func(t *testing.T) {
		uc, ctx := newSampleUseCase()
		_, err := uc.UpdateStatus(ctx, 42, types.StatusResolved)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrPointNotFound))
	})

	t.Run("invalid status", func(t *testing.T) {
		uc, ctx := newSampleUseCase()
		_, err := uc.UpdateStatus(ctx, 1, "Resolved")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidStatus))

		points, err := uc.FindByStatus(ctx, types.StatusPending)
		gt.NoError(t, err)
		gt.Equal(t, pointIDs(points), []types.PointID{1, 2, 3})
	})

	t.Run("invalid ID", func(t *testing.T) {
		uc, ctx := newSampleUseCase()
		_, err := uc.UpdateStatus(ctx, 0, types.StatusResolved)
		gt.Error(t, err)
	})
}
