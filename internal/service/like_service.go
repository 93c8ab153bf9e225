package service

import (
	"context"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/repository"
)

type LikeService struct {
	likeRepo repository.LikeRepository
}

func NewLikeService(likeRepo repository.LikeRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo}
}

// Toggle flips the user's like on the target and reports which way it went.
// The target is checked for existence first, so liking a missing entity is
// NOT_FOUND rather than a dangling like row.
func (s *LikeService) Toggle(ctx context.Context, kind models.TargetKind, userID, targetID uint) (models.LikeTransition, error) {
	exists, err := s.likeRepo.TargetExists(ctx, kind, targetID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", models.NewNotFoundError(kind.String(), targetID)
	}

	liked, err := s.likeRepo.IsLiked(ctx, kind, userID, targetID)
	if err != nil {
		return "", err
	}

	if liked {
		if _, err := s.likeRepo.Remove(ctx, kind, userID, targetID); err != nil {
			return "", err
		}
		s.invalidate(ctx, kind, targetID)
		return models.LikeRemoved, nil
	}

	// A concurrent toggle may have inserted the row between the check and
	// the insert; the repository reports that as success, so the end state
	// is "liked" either way.
	if _, err := s.likeRepo.Add(ctx, kind, userID, targetID); err != nil {
		return "", err
	}
	s.invalidate(ctx, kind, targetID)
	return models.LikeAdded, nil
}

// Count returns the number of likes on the target. A zero count forces an
// existence check so callers can tell "no likes yet" from "no such target".
func (s *LikeService) Count(ctx context.Context, kind models.TargetKind, targetID uint) (int64, error) {
	count, err := s.likeRepo.Count(ctx, kind, targetID)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		exists, err := s.likeRepo.TargetExists(ctx, kind, targetID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, models.NewNotFoundError(kind.String(), targetID)
		}
	}
	return count, nil
}

func (s *LikeService) invalidate(ctx context.Context, kind models.TargetKind, targetID uint) {
	if kind == models.TargetPost {
		cache.InvalidatePost(ctx, targetID)
	}
}
