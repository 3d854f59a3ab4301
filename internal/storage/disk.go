// Package storage persists uploaded attachment images.
package storage

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"ripple/internal/models"

	"github.com/google/uuid"
)

const (
	DefaultUploadDir     = "uploads"
	maxUploadSizeBytes   = 10 * 1024 * 1024
	uploadDirPermissions = 0o755
)

// Store saves uploaded images and returns the filename they are served under.
type Store interface {
	Save(filename string, content []byte) (string, error)
	Dir() string
}

// DiskStore writes uploads to a local directory. Filenames are random so
// uploads never collide or overwrite each other.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if dir == "" {
		dir = DefaultUploadDir
	}
	if err := os.MkdirAll(dir, uploadDirPermissions); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}

// Save validates and writes the image, returning the stored filename.
func (s *DiskStore) Save(filename string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if len(content) > maxUploadSizeBytes {
		return "", models.NewValidationError("File too large (max 10MB)")
	}

	detectedType := http.DetectContentType(content)
	if !strings.HasPrefix(detectedType, "image/") {
		return "", models.NewValidationError("Invalid image type")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", models.NewValidationError("Unsupported image extension")
	}

	stored := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, stored), content, 0o644); err != nil {
		return "", models.NewInternalError(err)
	}
	return stored, nil
}
