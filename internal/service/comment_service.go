package service

import (
	"context"
	"strings"

	"quill/internal/models"
	"quill/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}

	comment := &models.Comment{
		Content: in.Content,
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the post's comments, newest first. An empty result
// triggers an existence check so a missing post reads as NOT_FOUND rather
// than an empty page.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
			return nil, err
		}
	}
	return comments, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}

	rows, err := s.commentRepo.UpdateOwned(ctx, in.CommentID, in.UserID, in.Content)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, s.resolveWriteRefusal(ctx, in.CommentID)
	}

	return s.commentRepo.GetByID(ctx, in.CommentID)
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID, userID uint) error {
	rows, err := s.commentRepo.DeleteOwned(ctx, commentID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return s.resolveWriteRefusal(ctx, commentID)
	}
	return nil
}

func (s *CommentService) resolveWriteRefusal(ctx context.Context, commentID uint) error {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return err
	}
	return models.NewForbiddenError("You can only modify your own comments")
}
