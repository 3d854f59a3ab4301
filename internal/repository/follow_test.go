package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_FollowIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	created, err := repo.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, created, "duplicate follow must not create a second edge")

	followers, err := repo.ListFollowers(ctx, bob.ID, bob.ID)
	require.NoError(t, err)
	assert.Len(t, followers, 1)
}

func TestFollowRepository_UnfollowIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	_, err := repo.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	deleted, err := repo.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFollowRepository_DirectionIsAsymmetric(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	_, err := repo.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	// alice follows bob: bob gains a follower, alice a following —
	// never the reverse.
	bobFollowers, err := repo.ListFollowers(ctx, bob.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobFollowers, 1)
	assert.Equal(t, alice.ID, bobFollowers[0].ID)

	aliceFollowings, err := repo.ListFollowings(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFollowings, 1)
	assert.Equal(t, bob.ID, aliceFollowings[0].ID)

	aliceFollowers, err := repo.ListFollowers(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceFollowers)

	bobFollowings, err := repo.ListFollowings(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobFollowings)
}

func TestFollowRepository_FollowersCarryFollowBackFlag(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	// alice and carol follow bob; bob follows carol back.
	_, err := repo.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Follow(ctx, carol.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Follow(ctx, bob.ID, carol.ID)
	require.NoError(t, err)

	followers, err := repo.ListFollowers(ctx, bob.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	flags := make(map[uint]bool, len(followers))
	for _, f := range followers {
		flags[f.ID] = f.IsFollowed
	}
	assert.False(t, flags[alice.ID])
	assert.True(t, flags[carol.ID])
}
