package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertAppError fails the test unless err is an *models.AppError with the
// given code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint) (*models.Post, error)
	listFn           func(context.Context, int, int) ([]*models.Post, error)
	listByTagFn      func(context.Context, string) ([]*models.Post, error)
	updateOwnedFn    func(context.Context, uint, uint, map[string]any) (int64, error)
	deleteOwnedFn    func(context.Context, uint, uint) (int64, error)
	incrementViewsFn func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) ListByTag(ctx context.Context, tag string) ([]*models.Post, error) {
	return s.listByTagFn(ctx, tag)
}
func (s *postRepoStub) UpdateOwned(ctx context.Context, postID, userID uint, updates map[string]any) (int64, error) {
	return s.updateOwnedFn(ctx, postID, userID, updates)
}
func (s *postRepoStub) DeleteOwned(ctx context.Context, postID, userID uint) (int64, error) {
	return s.deleteOwnedFn(ctx, postID, userID)
}
func (s *postRepoStub) IncrementViews(ctx context.Context, postID uint) (int64, error) {
	return s.incrementViewsFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, p *models.Post) error {
			p.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1, Title: "stub", Content: "stub content"}, nil
		},
		listFn:        func(_ context.Context, _, _ int) ([]*models.Post, error) { return nil, nil },
		listByTagFn:   func(_ context.Context, _ string) ([]*models.Post, error) { return nil, nil },
		updateOwnedFn: func(_ context.Context, _, _ uint, _ map[string]any) (int64, error) { return 1, nil },
		deleteOwnedFn: func(_ context.Context, _, _ uint) (int64, error) { return 1, nil },
		incrementViewsFn: func(_ context.Context, _ uint) (int64, error) {
			return 1, nil
		},
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	listByPostFn  func(context.Context, uint) ([]*models.Comment, error)
	updateOwnedFn func(context.Context, uint, uint, string) (int64, error)
	deleteOwnedFn func(context.Context, uint, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) UpdateOwned(ctx context.Context, commentID, userID uint, content string) (int64, error) {
	return s.updateOwnedFn(ctx, commentID, userID, content)
}
func (s *commentRepoStub) DeleteOwned(ctx context.Context, commentID, userID uint) (int64, error) {
	return s.deleteOwnedFn(ctx, commentID, userID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1, Content: "stub"}, nil
		},
		listByPostFn:  func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		updateOwnedFn: func(_ context.Context, _, _ uint, _ string) (int64, error) { return 1, nil },
		deleteOwnedFn: func(_ context.Context, _, _ uint) (int64, error) { return 1, nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	targetExistsFn func(context.Context, models.TargetKind, uint) (bool, error)
	isLikedFn      func(context.Context, models.TargetKind, uint, uint) (bool, error)
	addFn          func(context.Context, models.TargetKind, uint, uint) (bool, error)
	removeFn       func(context.Context, models.TargetKind, uint, uint) (bool, error)
	countFn        func(context.Context, models.TargetKind, uint) (int64, error)
}

func (s *likeRepoStub) TargetExists(ctx context.Context, kind models.TargetKind, targetID uint) (bool, error) {
	return s.targetExistsFn(ctx, kind, targetID)
}
func (s *likeRepoStub) IsLiked(ctx context.Context, kind models.TargetKind, userID, targetID uint) (bool, error) {
	return s.isLikedFn(ctx, kind, userID, targetID)
}
func (s *likeRepoStub) Add(ctx context.Context, kind models.TargetKind, userID, targetID uint) (bool, error) {
	return s.addFn(ctx, kind, userID, targetID)
}
func (s *likeRepoStub) Remove(ctx context.Context, kind models.TargetKind, userID, targetID uint) (bool, error) {
	return s.removeFn(ctx, kind, userID, targetID)
}
func (s *likeRepoStub) Count(ctx context.Context, kind models.TargetKind, targetID uint) (int64, error) {
	return s.countFn(ctx, kind, targetID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		targetExistsFn: func(_ context.Context, _ models.TargetKind, _ uint) (bool, error) { return true, nil },
		isLikedFn:      func(_ context.Context, _ models.TargetKind, _, _ uint) (bool, error) { return false, nil },
		addFn:          func(_ context.Context, _ models.TargetKind, _, _ uint) (bool, error) { return true, nil },
		removeFn:       func(_ context.Context, _ models.TargetKind, _, _ uint) (bool, error) { return true, nil },
		countFn:        func(_ context.Context, _ models.TargetKind, _ uint) (int64, error) { return 0, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, u *models.User) error {
			u.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "stub"}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
	}
}

// sessionRepoStub is a stub for repository.SessionRepository.
type sessionRepoStub struct {
	createFn        func(context.Context, uint, time.Duration, string, string) (*models.Session, error)
	resolveFn       func(context.Context, string) (*models.Session, error)
	deleteFn        func(context.Context, string) error
	deleteExpiredFn func(context.Context) (int64, error)
}

func (s *sessionRepoStub) Create(ctx context.Context, userID uint, ttl time.Duration, ip, ua string) (*models.Session, error) {
	return s.createFn(ctx, userID, ttl, ip, ua)
}
func (s *sessionRepoStub) Resolve(ctx context.Context, token string) (*models.Session, error) {
	return s.resolveFn(ctx, token)
}
func (s *sessionRepoStub) Delete(ctx context.Context, token string) error {
	return s.deleteFn(ctx, token)
}
func (s *sessionRepoStub) DeleteExpired(ctx context.Context) (int64, error) {
	return s.deleteExpiredFn(ctx)
}

func noopSessionRepo() *sessionRepoStub {
	return &sessionRepoStub{
		createFn: func(_ context.Context, userID uint, ttl time.Duration, _, _ string) (*models.Session, error) {
			return &models.Session{ID: 1, Token: "stub-token", UserID: userID, ExpiresAt: time.Now().Add(ttl)}, nil
		},
		resolveFn:       func(_ context.Context, _ string) (*models.Session, error) { return nil, nil },
		deleteFn:        func(_ context.Context, _ string) error { return nil },
		deleteExpiredFn: func(_ context.Context) (int64, error) { return 0, nil },
	}
}

// todoRepoStub is a stub for repository.TodoRepository.
type todoRepoStub struct {
	createFn     func(context.Context, *models.Todo) error
	listByUserFn func(context.Context, uint) ([]*models.Todo, error)
}

func (s *todoRepoStub) Create(ctx context.Context, todo *models.Todo) error {
	return s.createFn(ctx, todo)
}
func (s *todoRepoStub) ListByUser(ctx context.Context, userID uint) ([]*models.Todo, error) {
	return s.listByUserFn(ctx, userID)
}

func noopTodoRepo() *todoRepoStub {
	return &todoRepoStub{
		createFn: func(_ context.Context, td *models.Todo) error {
			td.ID = 1
			return nil
		},
		listByUserFn: func(_ context.Context, _ uint) ([]*models.Todo, error) { return nil, nil },
	}
}
