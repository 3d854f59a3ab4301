package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

type followRequest struct {
	UserID uint `json:"user_id"`
}

// GetFollows handles GET /api/v1/follows?type=followers|followings.
func (s *Server) GetFollows(c *fiber.Ctx) error {
	users, err := s.socialService.ListFollows(c.Context(), s.identity(c).UserID, c.Query("type"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if users == nil {
		users = []models.User{}
	}

	return models.Respond(c, fiber.StatusOK, "Follows fetched", fiber.Map{
		"data": users,
	})
}

// FollowUser handles POST /api/v1/follows {user_id}. Following an
// already-followed user succeeds with a distinct message.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	var req followRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 {
		return models.RespondWithError(c,
			models.NewValidationError("user_id is required"))
	}

	created, err := s.socialService.Follow(c.Context(), s.identity(c).UserID, req.UserID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if !created {
		return models.Respond(c, fiber.StatusOK, "Already following", nil)
	}
	return models.Respond(c, fiber.StatusOK, "User followed", nil)
}

// UnfollowUser handles DELETE /api/v1/follows {user_id}. Idempotent.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	var req followRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 {
		return models.RespondWithError(c,
			models.NewValidationError("user_id is required"))
	}

	deleted, err := s.socialService.Unfollow(c.Context(), s.identity(c).UserID, req.UserID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if !deleted {
		return models.Respond(c, fiber.StatusOK, "Not following", nil)
	}
	return models.Respond(c, fiber.StatusOK, "User unfollowed", nil)
}

// SearchUsers handles GET /api/v1/search?keyword=.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	users, err := s.socialService.SearchUsers(c.Context(), s.identity(c).UserID, c.Query("keyword"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if users == nil {
		users = []models.User{}
	}

	return models.Respond(c, fiber.StatusOK, "Users fetched", fiber.Map{
		"data": users,
	})
}
