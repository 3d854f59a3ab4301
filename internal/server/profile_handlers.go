package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/v1/profile: own profile with derived
// follower/following counts.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	user, err := s.userRepo.GetProfile(c.Context(), s.identity(c).UserID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "Profile fetched", fiber.Map{
		"data": user,
	})
}

// UpdateProfile handles PUT /api/v1/profile (multipart). Only the
// provided fields change; the photo is an optional upload.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	identity := s.identity(c)

	user, err := s.userRepo.GetProfile(c.Context(), identity.UserID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if v := c.FormValue("username"); v != "" {
		if len(v) < 3 {
			return models.RespondWithError(c,
				models.NewValidationError("Username must be at least 3 characters"))
		}
		user.Username = v
	}
	if v := c.FormValue("name"); v != "" {
		user.FullName = v
	}
	if v := c.FormValue("bio"); v != "" {
		user.Bio = v
	}

	if header := formFile(c, "photo_profile"); header != nil {
		photo, err := s.saveUpload(header)
		if err != nil {
			return models.RespondWithError(c, err)
		}
		user.PhotoProfile = photo
	}

	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "Profile updated", fiber.Map{
		"data": user,
	})
}

// GetSuggestedUsers handles GET /api/v1/profiles: every user except the
// caller, for the who-to-follow panel.
func (s *Server) GetSuggestedUsers(c *fiber.Ctx) error {
	users, err := s.socialService.SuggestedUsers(c.Context(), s.identity(c).UserID)
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
