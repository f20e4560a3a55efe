package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urbanwaste/dumpwatch/pkg/domain/interfaces"
	"github.com/urbanwaste/dumpwatch/pkg/domain/model"
	"github.com/urbanwaste/dumpwatch/pkg/domain/types"
	"github.com/urbanwaste/dumpwatch/pkg/repository"
)

func testRepository(t *testing.T, newRepo func(t *testing.T, initial ...model.DisposalPoint) interfaces.PointRepository) {
	t.Run("ListPoints keeps insertion order", func(t *testing.T) {
		repo := newRepo(t, model.SamplePoints()...)
		defer repo.Close()

		points, err := repo.ListPoints(context.Background())
		gt.NoError(t, err)
		gt.Equal(t, points, model.SamplePoints())
	})

	t.Run("ListPoints on empty repository", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		points, err := repo.ListPoints(context.Background())
		gt.NoError(t, err)
		gt.Equal(t, len(points), 0)
	})

	t.Run("ListPoints returns a snapshot", func(t *testing.T) {
		repo := newRepo(t, model.SamplePoints()...)
		defer repo.Close()
		ctx := context.Background()

		snapshot, err := repo.ListPoints(ctx)
		gt.NoError(t, err)
		snapshot[0].Status = types.StatusResolved

		current, err := repo.ListPoints(ctx)
		gt.NoError(t, err)
		gt.Equal(t, current[0].Status, types.StatusPending)
	})

	t.Run("GetPoint", func(t *testing.T) {
		repo := newRepo(t, model.SamplePoints()...)
		defer repo.Close()

		point, err := repo.GetPoint(context.Background(), 3)
		gt.NoError(t, err)
		gt.Equal(t, point.Neighborhood, "Vicente Pinzón")
		gt.Equal(t, point.Severity, 5)
	})

	t.Run("GetPoint_NotFound", func(t *testing.T) {
		repo := newRepo(t, model.SamplePoints()...)
		defer repo.Close()

		_, err := repo.GetPoint(context.Background(), 99)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrPointNotFound))
	})

	t.Run("GetPoint_InvalidID", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		_, err := repo.GetPoint(context.Background(), 0)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrPointNotFound))
	})

	t.Run("AppendPoint", func(t *testing.T) {
		repo := newRepo(t, model.SamplePoints()...)
		defer repo.Close()
		ctx := context.Background()

		newPoint := model.DisposalPoint{ID: 7, Neighborhood: "Meireles", Severity: 3, Status: types.StatusPending}
		gt.NoError(t, repo.AppendPoint(ctx, newPoint))

		points, err := repo.ListPoints(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(points), 7)
		gt.Equal(t, points[6], newPoint)
	})

	t.Run("AppendPoint_DuplicateID", func(t *testing.T) {
		repo := newRepo(t, model.SamplePoints()...)
		defer repo.Close()

		err := repo.AppendPoint(context.Background(), model.DisposalPoint{ID: 2, Neighborhood: "Centro", Severity: 1, Status: types.StatusPending})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDuplicatePointID))
	})

	t.Run("ReplacePoints", func(t *testing.T) {
		repo := newRepo(t, model.SamplePoints()...)
		defer repo.Close()
		ctx := context.Background()

		replacement := []model.DisposalPoint{
			{ID: 10, Neighborhood: "Centro", Severity: 4, Status: types.StatusResolved},
		}
		gt.NoError(t, repo.ReplacePoints(ctx, replacement))

		// Later changes to the caller's slice must not leak into the repository
		replacement[0].Severity = 9

		points, err := repo.ListPoints(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(points), 1)
		gt.Equal(t, points[0].Severity, 4)
	})

	t.Run("ReplacePoints_DuplicateID", func(t *testing.T) {
		repo := newRepo(t, model.SamplePoints()...)
		defer repo.Close()
		ctx := context.Background()

		err := repo.ReplacePoints(ctx, []model.DisposalPoint{{ID: 1}, {ID: 1}})
		gt.Error(t, err)

		points, err := repo.ListPoints(ctx)
		gt.NoError(t, err)
		gt.Equal(t, points, model.SamplePoints())
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T, initial ...model.DisposalPoint) interfaces.PointRepository {
		return repository.NewMemory(initial...)
	})
}

func TestMemoryRepository_InitialIsCopied(t *testing.T) {
	initial := model.SamplePoints()
	repo := repository.NewMemory(initial...)
	initial[0].Neighborhood = "Changed"

	points, err := repo.ListPoints(context.Background())
	gt.NoError(t, err)
	gt.Equal(t, points[0].Neighborhood, "Pirambu")
}
