package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// Follow list kinds accepted by ListFollows.
const (
	FollowKindFollowers  = "followers"
	FollowKindFollowings = "followings"
)

// SocialService provides follow-graph business logic.
type SocialService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewSocialService returns a new SocialService.
func NewSocialService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *SocialService {
	return &SocialService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow makes userID follow targetID. Returns created=false when the
// edge already existed; callers surface that as a distinct message
// rather than an error.
func (s *SocialService) Follow(ctx context.Context, userID, targetID uint) (created bool, err error) {
	if userID == targetID {
		return false, models.NewValidationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return false, err
	}
	return s.followRepo.Follow(ctx, userID, targetID)
}

// Unfollow removes the follow edge. Idempotent; returns deleted=false
// when there was no edge.
func (s *SocialService) Unfollow(ctx context.Context, userID, targetID uint) (deleted bool, err error) {
	if userID == targetID {
		return false, models.NewValidationError("You cannot unfollow yourself")
	}
	return s.followRepo.Unfollow(ctx, userID, targetID)
}

// ListFollows returns the user's followers or followings, depending on
// kind. Followers carry the viewer's follow-back flag; followings do not.
func (s *SocialService) ListFollows(ctx context.Context, userID uint, kind string) ([]models.User, error) {
	switch kind {
	case FollowKindFollowers:
		return s.followRepo.ListFollowers(ctx, userID, userID)
	case FollowKindFollowings:
		return s.followRepo.ListFollowings(ctx, userID)
	default:
		return nil, models.NewValidationError("type must be followers or followings")
	}
}

// SearchUsers finds users by username or full name, excluding the viewer.
func (s *SocialService) SearchUsers(ctx context.Context, viewerID uint, keyword string) ([]models.User, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, models.NewValidationError("Search keyword is required")
	}
	return s.userRepo.Search(ctx, keyword, viewerID)
}

// SuggestedUsers returns users the viewer might follow.
func (s *SocialService) SuggestedUsers(ctx context.Context, viewerID uint) ([]models.User, error) {
	return s.userRepo.ListOthers(ctx, viewerID)
}
