package service

import (
	"context"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeService_Toggle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("not yet liked adds", func(t *testing.T) {
		t.Parallel()
		repo := noopLikeRepo()
		svc := NewLikeService(repo)

		transition, err := svc.Toggle(ctx, models.TargetPost, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, models.LikeAdded, transition)
	})

	t.Run("already liked removes", func(t *testing.T) {
		t.Parallel()
		repo := noopLikeRepo()
		repo.isLikedFn = func(_ context.Context, _ models.TargetKind, _, _ uint) (bool, error) { return true, nil }
		svc := NewLikeService(repo)

		transition, err := svc.Toggle(ctx, models.TargetPost, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, models.LikeRemoved, transition)
	})

	t.Run("missing target is not found", func(t *testing.T) {
		t.Parallel()
		repo := noopLikeRepo()
		repo.targetExistsFn = func(_ context.Context, _ models.TargetKind, _ uint) (bool, error) { return false, nil }
		repo.addFn = func(_ context.Context, _ models.TargetKind, _, _ uint) (bool, error) {
			t.Fatal("Add must not run for a missing target")
			return false, nil
		}
		svc := NewLikeService(repo)

		_, err := svc.Toggle(ctx, models.TargetPost, 1, 99)
		assertAppError(t, err, models.CodeNotFound)
	})

	t.Run("lost insert race still reads as added", func(t *testing.T) {
		t.Parallel()
		repo := noopLikeRepo()
		// Another request inserted the row first; the repository swallows
		// the conflict and reports success.
		repo.addFn = func(_ context.Context, _ models.TargetKind, _, _ uint) (bool, error) { return true, nil }
		svc := NewLikeService(repo)

		transition, err := svc.Toggle(ctx, models.TargetComment, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, models.LikeAdded, transition)
	})

	t.Run("alternating toggles", func(t *testing.T) {
		t.Parallel()
		liked := false
		repo := noopLikeRepo()
		repo.isLikedFn = func(_ context.Context, _ models.TargetKind, _, _ uint) (bool, error) { return liked, nil }
		repo.addFn = func(_ context.Context, _ models.TargetKind, _, _ uint) (bool, error) {
			liked = true
			return true, nil
		}
		repo.removeFn = func(_ context.Context, _ models.TargetKind, _, _ uint) (bool, error) {
			liked = false
			return true, nil
		}
		svc := NewLikeService(repo)

		want := []models.LikeTransition{models.LikeAdded, models.LikeRemoved, models.LikeAdded, models.LikeRemoved}
		for i, expected := range want {
			transition, err := svc.Toggle(ctx, models.TargetPost, 1, 5)
			require.NoError(t, err, "toggle %d", i)
			assert.Equal(t, expected, transition, "toggle %d", i)
		}
	})
}

func TestLikeService_Count(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("positive count needs no existence check", func(t *testing.T) {
		t.Parallel()
		repo := noopLikeRepo()
		repo.countFn = func(_ context.Context, _ models.TargetKind, _ uint) (int64, error) { return 3, nil }
		repo.targetExistsFn = func(_ context.Context, _ models.TargetKind, _ uint) (bool, error) {
			t.Fatal("existence check must be skipped when the count is positive")
			return false, nil
		}
		svc := NewLikeService(repo)

		count, err := svc.Count(ctx, models.TargetPost, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("zero likes on an existing target", func(t *testing.T) {
		t.Parallel()
		svc := NewLikeService(noopLikeRepo())
		count, err := svc.Count(ctx, models.TargetPost, 5)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("zero likes on a missing target", func(t *testing.T) {
		t.Parallel()
		repo := noopLikeRepo()
		repo.targetExistsFn = func(_ context.Context, _ models.TargetKind, _ uint) (bool, error) { return false, nil }
		svc := NewLikeService(repo)

		_, err := svc.Count(ctx, models.TargetComment, 99)
		assertAppError(t, err, models.CodeNotFound)
	})
}
