package service

import (
	"context"
	"testing"

	"ripple/internal/models"
	"ripple/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSocialService(t *testing.T) (*SocialService, *gorm.DB) {
	db, _ := newTestEnv(t)
	followRepo := repository.NewFollowRepository(db)
	userRepo := repository.NewUserRepository(db)
	return NewSocialService(followRepo, userRepo), db
}

func TestFollow_SelfIsRejected(t *testing.T) {
	svc, db := newSocialService(t)
	alice := createUser(t, db, "alice")

	_, err := svc.Follow(context.Background(), alice.ID, alice.ID)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)

	_, err = svc.Unfollow(context.Background(), alice.ID, alice.ID)
	require.Error(t, err)
}

func TestFollow_TargetMustExist(t *testing.T) {
	svc, db := newSocialService(t)
	alice := createUser(t, db, "alice")

	_, err := svc.Follow(context.Background(), alice.ID, 999)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}

func TestFollowUnfollow_Cycle(t *testing.T) {
	svc, db := newSocialService(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	ctx := context.Background()

	created, err := svc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, created, "repeat follow reports the existing edge")

	followers, err := svc.ListFollows(ctx, bob.ID, FollowKindFollowers)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, alice.ID, followers[0].ID)

	followings, err := svc.ListFollows(ctx, alice.ID, FollowKindFollowings)
	require.NoError(t, err)
	require.Len(t, followings, 1)
	assert.Equal(t, bob.ID, followings[0].ID)

	deleted, err := svc.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListFollows_RejectsUnknownKind(t *testing.T) {
	svc, db := newSocialService(t)
	alice := createUser(t, db, "alice")

	_, err := svc.ListFollows(context.Background(), alice.ID, "friends")
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
}

func TestSearchUsers_RequiresKeyword(t *testing.T) {
	svc, db := newSocialService(t)
	alice := createUser(t, db, "alice")

	_, err := svc.SearchUsers(context.Background(), alice.ID, "   ")
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
}

func TestSuggestedUsers_ExcludesViewer(t *testing.T) {
	svc, db := newSocialService(t)
	alice := createUser(t, db, "alice")
	createUser(t, db, "bob")
	createUser(t, db, "carol")

	users, err := svc.SuggestedUsers(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.NotEqual(t, alice.ID, u.ID)
	}
}
