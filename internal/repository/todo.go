package repository

import (
	"context"

	"quill/internal/models"

	"gorm.io/gorm"
)

// TodoRepository defines interface for todo operations
type TodoRepository interface {
	Create(ctx context.Context, todo *models.Todo) error
	ListByUser(ctx context.Context, userID uint) ([]*models.Todo, error)
}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *todoRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Todo, error) {
	var todos []*models.Todo
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error
	return todos, err
}
