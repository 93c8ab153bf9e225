package server

import (
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// toggleLike runs the like toggle for one target kind. A like that was added
// responds 201, one that was removed responds 204; both carry the transition
// so clients need not infer it from the status code.
func (s *Server) toggleLike(c *fiber.Ctx, kind models.TargetKind) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	transition, err := s.likeService.Toggle(c.UserContext(), kind, currentUserID(c), targetID)
	if err != nil {
		return respondError(c, err)
	}

	if transition == models.LikeRemoved {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": string(transition)})
}

// likeCount responds with the target's like count.
func (s *Server) likeCount(c *fiber.Ctx, kind models.TargetKind) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	count, err := s.likeService.Count(c.UserContext(), kind, targetID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// TogglePostLike handles POST /api/posts/:id/like
func (s *Server) TogglePostLike(c *fiber.Ctx) error {
	return s.toggleLike(c, models.TargetPost)
}

// ToggleCommentLike handles POST /api/comments/:id/like
func (s *Server) ToggleCommentLike(c *fiber.Ctx) error {
	return s.toggleLike(c, models.TargetComment)
}

// GetPostLikeCount handles GET /api/posts/:id/like/count
func (s *Server) GetPostLikeCount(c *fiber.Ctx) error {
	return s.likeCount(c, models.TargetPost)
}

// GetCommentLikeCount handles GET /api/comments/:id/like/count
func (s *Server) GetCommentLikeCount(c *fiber.Ctx) error {
	return s.likeCount(c, models.TargetComment)
}
