package server

import (
	"errors"
	"io"
	"mime/multipart"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was
// already committed by a helper. Handlers must return nil (not this
// error) to avoid Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// identity returns the authenticated caller set by AuthRequired.
func (s *Server) identity(c *fiber.Ctx) models.Identity {
	if id, ok := c.Locals("identity").(models.Identity); ok {
		return id
	}
	return models.Identity{}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// saveUpload stores an optional multipart image and returns the stored
// filename. A nil header means no upload, which is not an error.
func (s *Server) saveUpload(header *multipart.FileHeader) (string, error) {
	if header == nil || s.store == nil {
		return "", nil
	}
	f, err := header.Open()
	if err != nil {
		return "", models.NewValidationError("Unreadable upload")
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", models.NewValidationError("Unreadable upload")
	}
	return s.store.Save(header.Filename, content)
}

// formFile returns the named multipart file header, or nil when the
// field is absent.
func formFile(c *fiber.Ctx, field string) *multipart.FileHeader {
	header, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return header
}
