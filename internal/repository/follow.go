package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow-edge operations.
// Direction convention: a row means follower_id follows following_id.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID uint) (created bool, err error)
	Unfollow(ctx context.Context, followerID, followingID uint) (deleted bool, err error)
	ListFollowers(ctx context.Context, userID uint, viewerID uint) ([]models.User, error)
	ListFollowings(ctx context.Context, userID uint) ([]models.User, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow inserts the edge if absent. The conditional insert is atomic,
// so concurrent duplicate follow requests produce exactly one row.
// Returns created=false when the edge already existed.
func (r *followRepository) Follow(ctx context.Context, followerID, followingID uint) (bool, error) {
	follow := models.Follow{FollowerID: followerID, FollowingID: followingID}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Unfollow deletes the edge if present. Idempotent; returns
// deleted=false when there was nothing to remove.
func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListFollowers returns the users following userID. Each entry is
// annotated with whether the viewer follows that follower back; the
// followings variant deliberately has no such annotation.
func (r *followRepository) ListFollowers(ctx context.Context, userID uint, viewerID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.*, "+
			"EXISTS(SELECT 1 FROM follows f2 WHERE f2.follower_id = ? AND f2.following_id = users.id) AS is_followed", viewerID).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Order("follows.id DESC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// ListFollowings returns the users that userID follows.
func (r *followRepository) ListFollowings(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.id DESC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
