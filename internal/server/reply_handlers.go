package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetReplies handles GET /api/v1/reply/:threadId.
func (s *Server) GetReplies(c *fiber.Ctx) error {
	threadID, err := s.parseID(c, "threadId")
	if err != nil {
		return nil
	}

	replies, err := s.replyService.ListReplies(c.Context(), threadID, s.identity(c).UserID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if replies == nil {
		replies = []*models.Reply{}
	}

	return models.Respond(c, fiber.StatusOK, "Replies fetched", fiber.Map{
		"data": replies,
	})
}

// CreateReply handles POST /api/v1/reply/:threadId (multipart: content, image?).
func (s *Server) CreateReply(c *fiber.Ctx) error {
	threadID, err := s.parseID(c, "threadId")
	if err != nil {
		return nil
	}
	identity := s.identity(c)

	image, err := s.saveUpload(formFile(c, "image"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	reply, err := s.replyService.CreateReply(c.Context(), service.CreateReplyInput{
		UserID:   identity.UserID,
		ThreadID: threadID,
		Content:  c.FormValue("content"),
		Image:    image,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusCreated, "Reply created", fiber.Map{
		"data": reply,
	})
}
