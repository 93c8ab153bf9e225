package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quill/internal/models"

	"gorm.io/gorm"
)

// LikeRepository manages like rows for every likeable target kind.
type LikeRepository interface {
	TargetExists(ctx context.Context, kind models.TargetKind, targetID uint) (bool, error)
	IsLiked(ctx context.Context, kind models.TargetKind, userID, targetID uint) (bool, error)
	Add(ctx context.Context, kind models.TargetKind, userID, targetID uint) (bool, error)
	Remove(ctx context.Context, kind models.TargetKind, userID, targetID uint) (bool, error)
	Count(ctx context.Context, kind models.TargetKind, targetID uint) (int64, error)
}

// likeTarget describes how a target kind maps onto storage. Adding a new
// likeable entity means adding a row here, nothing else.
type likeTarget struct {
	table       string
	column      string
	targetModel func() any
	likeModel   func() any
}

var likeTargets = map[models.TargetKind]likeTarget{
	models.TargetPost: {
		table:       "likes",
		column:      "post_id",
		targetModel: func() any { return &models.Post{} },
		likeModel:   func() any { return &models.Like{} },
	},
	models.TargetComment: {
		table:       "comment_likes",
		column:      "comment_id",
		targetModel: func() any { return &models.Comment{} },
		likeModel:   func() any { return &models.CommentLike{} },
	},
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) target(kind models.TargetKind) (likeTarget, error) {
	t, ok := likeTargets[kind]
	if !ok {
		return likeTarget{}, fmt.Errorf("unsupported like target kind: %v", kind)
	}
	return t, nil
}

func (r *likeRepository) TargetExists(ctx context.Context, kind models.TargetKind, targetID uint) (bool, error) {
	t, err := r.target(kind)
	if err != nil {
		return false, err
	}
	var count int64
	err = r.db.WithContext(ctx).Model(t.targetModel()).Where("id = ?", targetID).Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) IsLiked(ctx context.Context, kind models.TargetKind, userID, targetID uint) (bool, error) {
	t, err := r.target(kind)
	if err != nil {
		return false, err
	}
	var count int64
	err = r.db.WithContext(ctx).
		Model(t.likeModel()).
		Where("user_id = ? AND "+t.column+" = ?", userID, targetID).
		Count(&count).Error
	return count > 0, err
}

// Add inserts a like row. The unique (user_id, target) index plus
// ON CONFLICT DO NOTHING makes concurrent toggles converge: a conflicting
// insert means the like already exists, which is the desired end state, so
// it is reported as success rather than an error.
func (r *likeRepository) Add(ctx context.Context, kind models.TargetKind, userID, targetID uint) (bool, error) {
	t, err := r.target(kind)
	if err != nil {
		return false, err
	}
	stmt := fmt.Sprintf(
		"INSERT INTO %s (user_id, %s, created_at) VALUES (?, ?, ?) ON CONFLICT (user_id, %s) DO NOTHING",
		t.table, t.column, t.column,
	)
	res := r.db.WithContext(ctx).Exec(stmt, userID, targetID, time.Now())
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, res.Error
	}
	return true, nil
}

// Remove deletes the like row if present, reporting whether a row was removed.
func (r *likeRepository) Remove(ctx context.Context, kind models.TargetKind, userID, targetID uint) (bool, error) {
	t, err := r.target(kind)
	if err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND "+t.column+" = ?", userID, targetID).
		Delete(t.likeModel())
	return res.RowsAffected > 0, res.Error
}

func (r *likeRepository) Count(ctx context.Context, kind models.TargetKind, targetID uint) (int64, error) {
	t, err := r.target(kind)
	if err != nil {
		return 0, err
	}
	var count int64
	err = r.db.WithContext(ctx).
		Model(t.likeModel()).
		Where(t.column+" = ?", targetID).
		Count(&count).Error
	return count, err
}
