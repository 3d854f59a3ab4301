package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

type threadLikeRequest struct {
	ThreadID uint `json:"tweet_id"`
}

type replyLikeRequest struct {
	ReplyID uint `json:"reply_id"`
}

// LikeThread handles POST /api/v1/like {tweet_id}.
func (s *Server) LikeThread(c *fiber.Ctx) error {
	var req threadLikeRequest
	if err := c.BodyParser(&req); err != nil || req.ThreadID == 0 {
		return models.RespondWithError(c,
			models.NewValidationError("tweet_id is required"))
	}

	if err := s.feedService.LikeThread(c.Context(), s.identity(c).UserID, req.ThreadID); err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "Thread liked", nil)
}

// UnlikeThread handles DELETE /api/v1/like {tweet_id}.
func (s *Server) UnlikeThread(c *fiber.Ctx) error {
	var req threadLikeRequest
	if err := c.BodyParser(&req); err != nil || req.ThreadID == 0 {
		return models.RespondWithError(c,
			models.NewValidationError("tweet_id is required"))
	}

	if err := s.feedService.UnlikeThread(c.Context(), s.identity(c).UserID, req.ThreadID); err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "Thread unliked", nil)
}

// LikeReply handles POST /api/v1/reply/like {reply_id}.
func (s *Server) LikeReply(c *fiber.Ctx) error {
	var req replyLikeRequest
	if err := c.BodyParser(&req); err != nil || req.ReplyID == 0 {
		return models.RespondWithError(c,
			models.NewValidationError("reply_id is required"))
	}

	if err := s.replyService.LikeReply(c.Context(), s.identity(c).UserID, req.ReplyID); err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "Reply liked", nil)
}

// UnlikeReply handles DELETE /api/v1/reply/like {reply_id}.
func (s *Server) UnlikeReply(c *fiber.Ctx) error {
	var req replyLikeRequest
	if err := c.BodyParser(&req); err != nil || req.ReplyID == 0 {
		return models.RespondWithError(c,
			models.NewValidationError("reply_id is required"))
	}

	if err := s.replyService.UnlikeReply(c.Context(), s.identity(c).UserID, req.ReplyID); err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "Reply unliked", nil)
}
