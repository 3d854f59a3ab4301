package repository

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyRepository_ListByThreadNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewReplyRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	thread := createTestThread(t, db, alice, "parent")
	other := createTestThread(t, db, alice, "other parent")

	first := &models.Reply{ThreadID: thread.ID, Content: "first", CreatedBy: alice.ID, UpdatedBy: alice.ID}
	second := &models.Reply{ThreadID: thread.ID, Content: "second", CreatedBy: alice.ID, UpdatedBy: alice.ID}
	elsewhere := &models.Reply{ThreadID: other.ID, Content: "elsewhere", CreatedBy: alice.ID, UpdatedBy: alice.ID}
	for _, r := range []*models.Reply{first, second, elsewhere} {
		require.NoError(t, repo.Create(ctx, r))
	}

	replies, err := repo.ListByThread(ctx, thread.ID, 0)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, second.ID, replies[0].ID)
	assert.Equal(t, first.ID, replies[1].ID)
}

func TestReplyRepository_LikeCountAndViewerFlag(t *testing.T) {
	db := newTestDB(t)
	repo := NewReplyRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	thread := createTestThread(t, db, alice, "parent")
	reply := &models.Reply{ThreadID: thread.ID, Content: "reply", CreatedBy: alice.ID, UpdatedBy: alice.ID}
	require.NoError(t, repo.Create(ctx, reply))

	require.NoError(t, repo.Like(ctx, bob.ID, reply.ID))
	require.NoError(t, repo.Like(ctx, bob.ID, reply.ID))

	replies, err := repo.ListByThread(ctx, thread.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, 1, replies[0].LikeCount)
	assert.True(t, replies[0].IsLiked)

	asAlice, err := repo.ListByThread(ctx, thread.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, asAlice[0].IsLiked)
}

func TestReplyRepository_UnlikeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewReplyRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	thread := createTestThread(t, db, alice, "parent")
	reply := &models.Reply{ThreadID: thread.ID, Content: "reply", CreatedBy: alice.ID, UpdatedBy: alice.ID}
	require.NoError(t, repo.Create(ctx, reply))

	require.NoError(t, repo.Unlike(ctx, alice.ID, reply.ID))
	require.NoError(t, repo.Like(ctx, alice.ID, reply.ID))
	require.NoError(t, repo.Unlike(ctx, alice.ID, reply.ID))
	require.NoError(t, repo.Unlike(ctx, alice.ID, reply.ID))

	got, err := repo.GetByID(ctx, reply.ID)
	require.NoError(t, err)
	assert.Equal(t, reply.ID, got.ID)
}

func TestReplyRepository_ThreadAndReplyLikesAreIndependent(t *testing.T) {
	db := newTestDB(t)
	threadRepo := NewThreadRepository(db)
	replyRepo := NewReplyRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	thread := createTestThread(t, db, alice, "parent")
	reply := &models.Reply{ThreadID: thread.ID, Content: "reply", CreatedBy: alice.ID, UpdatedBy: alice.ID}
	require.NoError(t, replyRepo.Create(ctx, reply))

	// Same user liking a thread and a reply must never collide on the
	// uniqueness constraint.
	require.NoError(t, threadRepo.Like(ctx, alice.ID, thread.ID))
	require.NoError(t, replyRepo.Like(ctx, alice.ID, reply.ID))

	gotThread, err := threadRepo.GetByID(ctx, thread.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, gotThread.IsLiked)

	replies, err := replyRepo.ListByThread(ctx, thread.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, replies[0].IsLiked)
}

func TestReplyRepository_GetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewReplyRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}
