package service

import (
	"context"
	"strings"

	"quill/internal/models"
	"quill/internal/repository"
)

type TodoService struct {
	todoRepo repository.TodoRepository
}

type CreateTodoInput struct {
	UserID uint
	Title  string
	Done   bool
}

func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

func (s *TodoService) ListTodos(ctx context.Context, userID uint) ([]*models.Todo, error) {
	return s.todoRepo.ListByUser(ctx, userID)
}

func (s *TodoService) CreateTodo(ctx context.Context, in CreateTodoInput) (*models.Todo, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}

	todo := &models.Todo{
		UserID: in.UserID,
		Title:  in.Title,
		Done:   in.Done,
	}
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}
