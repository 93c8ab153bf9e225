package server

import (
	"quill/internal/models"
	"quill/internal/service"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type createTodoRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Done  bool   `json:"done"`
}

// GetTodos handles GET /api/todos
func (s *Server) GetTodos(c *fiber.Ctx) error {
	todos, err := s.todoService.ListTodos(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	if todos == nil {
		todos = []*models.Todo{}
	}
	return c.JSON(todos)
}

// CreateTodo handles POST /api/todos
func (s *Server) CreateTodo(c *fiber.Ctx) error {
	var req createTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}

	todo, err := s.todoService.CreateTodo(c.UserContext(), service.CreateTodoInput{
		UserID: currentUserID(c),
		Title:  req.Title,
		Done:   req.Done,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(todo)
}
