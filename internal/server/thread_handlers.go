package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetThreads handles GET /api/v1/thread?limit=N&byUser=bool.
func (s *Server) GetThreads(c *fiber.Ctx) error {
	identity := s.identity(c)

	in := service.ListThreadsInput{
		Limit:         c.QueryInt("limit", 0),
		CurrentUserID: identity.UserID,
	}
	if c.QueryBool("byUser", false) {
		in.ByUserID = identity.UserID
	}

	threads, err := s.feedService.ListThreads(c.Context(), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if threads == nil {
		threads = []*models.Thread{}
	}

	return models.Respond(c, fiber.StatusOK, "Threads fetched", fiber.Map{
		"threads": threads,
	})
}

// CreateThread handles POST /api/v1/thread (multipart: content, image?).
func (s *Server) CreateThread(c *fiber.Ctx) error {
	identity := s.identity(c)

	image, err := s.saveUpload(formFile(c, "image"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	thread, err := s.feedService.CreateThread(c.Context(), service.CreateThreadInput{
		UserID:  identity.UserID,
		Content: c.FormValue("content"),
		Image:   image,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusCreated, "Thread created", fiber.Map{
		"data": thread,
	})
}

// GetThread handles GET /api/v1/thread/:id.
func (s *Server) GetThread(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	thread, err := s.feedService.GetThread(c.Context(), id, s.identity(c).UserID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "Thread fetched", fiber.Map{
		"data": thread,
	})
}

// GetThreadPictures handles GET /api/v1/thread/pictures.
func (s *Server) GetThreadPictures(c *fiber.Ctx) error {
	pictures, err := s.feedService.ListPictures(c.Context(), s.identity(c).UserID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if pictures == nil {
		pictures = []models.ThreadPicture{}
	}

	return models.Respond(c, fiber.StatusOK, "Pictures fetched", fiber.Map{
		"data": pictures,
	})
}
