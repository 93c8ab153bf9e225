// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"quill/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
//
// UpdateOwned and DeleteOwned are scoped writes: the filter predicate carries
// both the post ID and the required owner ID, so the existence+ownership
// check and the write happen in a single statement. Callers disambiguate a
// zero-row result with GetByID.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, error)
	ListByTag(ctx context.Context, tag string) ([]*models.Post, error)
	UpdateOwned(ctx context.Context, postID, userID uint, updates map[string]any) (int64, error)
	DeleteOwned(ctx context.Context, postID, userID uint) (int64, error)
	IncrementViews(ctx context.Context, postID uint) (int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// applyPostCounts adds subqueries to fetch comment and like counts in a single query.
func (r *postRepository) applyPostCounts(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count")
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostCounts(r.db.WithContext(ctx)).
		Preload("User").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", id)
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostCounts(r.db.WithContext(ctx)).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByTag(ctx context.Context, tag string) ([]*models.Post, error) {
	var posts []*models.Post
	// Tags are stored as a JSON array; matching the quoted element covers
	// exact tag names without a per-database array type.
	err := r.applyPostCounts(r.db.WithContext(ctx)).
		Preload("User").
		Where(`tags LIKE ?`, `%"`+tag+`"%`).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// UpdateOwned applies the given field set to the post only if it exists AND
// belongs to userID, in one statement. Returns the number of rows written.
func (r *postRepository) UpdateOwned(ctx context.Context, postID, userID uint, updates map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND user_id = ?", postID, userID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// DeleteOwned removes the post only if it belongs to userID, cascading to
// its comments and likes inside one transaction. Returns the number of posts
// deleted (0 or 1).
func (r *postRepository) DeleteOwned(ctx context.Context, postID, userID uint) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", postID, userID).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		if deleted == 0 {
			return nil
		}

		if err := tx.Where(
			"comment_id IN (?)",
			tx.Model(&models.Comment{}).Select("id").Where("post_id = ?", postID),
		).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error
	})
	return deleted, err
}

// IncrementViews bumps the view counter without touching updated_at.
// Returns the number of rows affected (0 when the post does not exist).
func (r *postRepository) IncrementViews(ctx context.Context, postID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
	return res.RowsAffected, res.Error
}
