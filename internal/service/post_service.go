// Package service contains transport-agnostic business logic. Services
// return *models.AppError values for expected failures; handlers map those
// onto HTTP statuses.
package service

import (
	"context"
	"strings"

	"quill/internal/cache"
	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID   uint
	Title    string
	Content  string
	Tags     []string
	ImageURL string
}

// UpdatePostInput carries a partial update. Nil pointer fields were absent
// from the request and leave the stored value untouched.
type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Title    *string
	Content  *string
	Tags     *[]string
	ImageURL *string
}

type ListPostsInput struct {
	Limit  int
	Offset int
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}

	post := &models.Post{
		UserID:   in.UserID,
		Title:    in.Title,
		Content:  in.Content,
		Tags:     in.Tags,
		ImageURL: in.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.PostsListKey(ctx))
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	var posts []*models.Post

	// Only the default first page is cached; everything else is rare enough
	// to read straight from the database.
	if in.Offset == 0 && in.Limit <= 20 {
		err := cache.Aside(ctx, cache.PostsListKey(ctx), &posts, cache.ListTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.List(ctx, in.Limit, in.Offset)
			return fetchErr
		})
		return posts, err
	}

	return s.postRepo.List(ctx, in.Limit, in.Offset)
}

// ListPostsByTag returns every post carrying the tag. An unknown tag is a
// not-found condition rather than an empty page.
func (s *PostService) ListPostsByTag(ctx context.Context, tag string) ([]*models.Post, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, models.NewValidationError("Tag is required")
	}

	posts, err := s.postRepo.ListByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, &models.AppError{
			Code:    models.CodeNotFound,
			Message: "No posts found with tag " + tag,
		}
	}
	return posts, nil
}

// GetPost fetches a single post, counting the fetch as a view. The counter
// bump doubles as the existence check: zero rows touched means no post.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	rows, err := s.postRepo.IncrementViews(ctx, id)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, models.NewNotFoundError("post", id)
	}
	middleware.ViewIncrements.Inc()

	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	updates := map[string]any{}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		updates["title"] = *in.Title
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		updates["content"] = *in.Content
	}
	if in.Tags != nil {
		updates["tags"] = *in.Tags
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if len(updates) == 0 {
		return nil, models.NewValidationError("No fields to update")
	}

	rows, err := s.postRepo.UpdateOwned(ctx, in.PostID, in.UserID, updates)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, s.resolveWriteRefusal(ctx, in.PostID)
	}

	cache.InvalidatePost(ctx, in.PostID)
	return s.postRepo.GetByID(ctx, in.PostID)
}

func (s *PostService) DeletePost(ctx context.Context, postID, userID uint) error {
	rows, err := s.postRepo.DeleteOwned(ctx, postID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return s.resolveWriteRefusal(ctx, postID)
	}

	cache.InvalidatePost(ctx, postID)
	return nil
}

// resolveWriteRefusal disambiguates a zero-row scoped write: a missing post
// is NOT_FOUND, a post owned by someone else is FORBIDDEN. Existence always
// wins over ownership, so a caller can never probe other users' post IDs.
func (s *PostService) resolveWriteRefusal(ctx context.Context, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}
	return models.NewForbiddenError("You can only modify your own posts")
}
