package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/repository"
)

const (
	// feedSnapshotLimit is the size of the cached feed snapshot and the
	// largest limit a single read may request. Smaller reads slice the
	// snapshot.
	feedSnapshotLimit = 100

	defaultFeedLimit = 25
)

// FeedService provides thread listing, creation and like business logic.
type FeedService struct {
	threadRepo repository.ThreadRepository
	userRepo   repository.UserRepository
}

type CreateThreadInput struct {
	UserID  uint
	Content string
	Image   string
}

type ListThreadsInput struct {
	Limit         int
	ByUserID      uint
	CurrentUserID uint
}

// NewFeedService returns a new FeedService.
func NewFeedService(threadRepo repository.ThreadRepository, userRepo repository.UserRepository) *FeedService {
	return &FeedService{
		threadRepo: threadRepo,
		userRepo:   userRepo,
	}
}

// ListThreads returns the newest threads. The unfiltered feed is served
// from a viewer-independent cached snapshot; the viewer's liked flags
// are re-applied on every read so a cached feed never leaks another
// user's likes.
func (s *FeedService) ListThreads(ctx context.Context, in ListThreadsInput) ([]*models.Thread, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > feedSnapshotLimit {
		limit = feedSnapshotLimit
	}

	if in.ByUserID != 0 {
		return s.threadRepo.ListByUser(ctx, in.ByUserID, limit, in.CurrentUserID)
	}

	var threads []*models.Thread
	err := cache.Aside(ctx, cache.FeedKey, &threads, cache.FeedTTL, func() error {
		var fetchErr error
		threads, fetchErr = s.threadRepo.List(ctx, feedSnapshotLimit, 0)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}

	if len(threads) > limit {
		threads = threads[:limit]
	}

	if in.CurrentUserID != 0 && len(threads) > 0 {
		threadIDs := make([]uint, len(threads))
		for i, t := range threads {
			threadIDs[i] = t.ID
		}
		likedIDs, err := s.threadRepo.GetLikedThreadIDs(ctx, in.CurrentUserID, threadIDs)
		if err == nil {
			likedMap := make(map[uint]bool, len(likedIDs))
			for _, id := range likedIDs {
				likedMap[id] = true
			}
			for _, t := range threads {
				t.IsLiked = likedMap[t.ID]
			}
		}
	}

	return threads, nil
}

func (s *FeedService) CreateThread(ctx context.Context, in CreateThreadInput) (*models.Thread, error) {
	content := strings.TrimSpace(in.Content)
	if err := validateContent(content); err != nil {
		return nil, err
	}

	thread := &models.Thread{
		Content:   content,
		Image:     in.Image,
		CreatedBy: in.UserID,
		UpdatedBy: in.UserID,
	}
	if err := s.threadRepo.Create(ctx, thread); err != nil {
		return nil, err
	}

	return s.threadRepo.GetByID(ctx, thread.ID, in.UserID)
}

func (s *FeedService) GetThread(ctx context.Context, id uint, currentUserID uint) (*models.Thread, error) {
	return s.threadRepo.GetByID(ctx, id, currentUserID)
}

// ListPictures returns the images a user has attached to threads.
func (s *FeedService) ListPictures(ctx context.Context, userID uint) ([]models.ThreadPicture, error) {
	return s.threadRepo.ListPictures(ctx, userID)
}

// LikeThread likes a thread on behalf of the user. Liking an already
// liked thread is a no-op; liking a missing thread is a NotFound error.
func (s *FeedService) LikeThread(ctx context.Context, userID, threadID uint) error {
	if _, err := s.threadRepo.GetByID(ctx, threadID, 0); err != nil {
		return err
	}
	return s.threadRepo.Like(ctx, userID, threadID)
}

// UnlikeThread removes the user's like. Idempotent.
func (s *FeedService) UnlikeThread(ctx context.Context, userID, threadID uint) error {
	return s.threadRepo.Unlike(ctx, userID, threadID)
}

// validateContent enforces the post body bounds. Length is counted in
// runes, not bytes, so multibyte text gets the full budget.
func validateContent(content string) error {
	if content == "" {
		return models.NewValidationError("Content is required")
	}
	if utf8.RuneCountInString(content) > models.ContentMaxLen {
		return models.NewValidationError("Content too long (max 200 characters)")
	}
	return nil
}
