package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowUnfollow_Cycle(t *testing.T) {
	_, app := newTestServer(t)
	aliceToken, _ := registerUser(t, app, "alice")
	_, bobID := registerUser(t, app, "bob")

	status, envelope := doJSON(t, app, http.MethodPost, "/api/v1/follows", aliceToken, map[string]any{"user_id": bobID})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User followed", envelope["message"])

	status, envelope = doJSON(t, app, http.MethodPost, "/api/v1/follows", aliceToken, map[string]any{"user_id": bobID})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Already following", envelope["message"])

	status, envelope = doJSON(t, app, http.MethodGet, "/api/v1/follows?type=followings", aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	followings := envelope["data"].([]any)
	require.Len(t, followings, 1)
	assert.Equal(t, "bob", followings[0].(map[string]any)["username"])

	status, envelope = doJSON(t, app, http.MethodDelete, "/api/v1/follows", aliceToken, map[string]any{"user_id": bobID})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User unfollowed", envelope["message"])

	status, envelope = doJSON(t, app, http.MethodDelete, "/api/v1/follows", aliceToken, map[string]any{"user_id": bobID})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Not following", envelope["message"])
}

func TestFollow_SelfAndMissingTarget(t *testing.T) {
	_, app := newTestServer(t)
	token, userID := registerUser(t, app, "alice")

	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/follows", token, map[string]any{"user_id": userID})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/follows", token, map[string]any{"user_id": 99999})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/follows", token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetFollows_FollowersCarryFollowBackFlag(t *testing.T) {
	_, app := newTestServer(t)
	aliceToken, aliceID := registerUser(t, app, "alice")
	bobToken, bobID := registerUser(t, app, "bob")
	carolToken, _ := registerUser(t, app, "carol")

	// bob and carol follow alice; alice follows bob back.
	_, _ = doJSON(t, app, http.MethodPost, "/api/v1/follows", bobToken, map[string]any{"user_id": aliceID})
	_, _ = doJSON(t, app, http.MethodPost, "/api/v1/follows", carolToken, map[string]any{"user_id": aliceID})
	_, _ = doJSON(t, app, http.MethodPost, "/api/v1/follows", aliceToken, map[string]any{"user_id": bobID})

	status, envelope := doJSON(t, app, http.MethodGet, "/api/v1/follows?type=followers", aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	followers := envelope["data"].([]any)
	require.Len(t, followers, 2)

	flags := map[string]bool{}
	for _, f := range followers {
		u := f.(map[string]any)
		flags[u["username"].(string)] = u["isFollowed"].(bool)
	}
	assert.True(t, flags["bob"])
	assert.False(t, flags["carol"])
}

func TestGetFollows_RejectsUnknownType(t *testing.T) {
	_, app := newTestServer(t)
	token, _ := registerUser(t, app, "alice")

	status, _ := doJSON(t, app, http.MethodGet, "/api/v1/follows?type=friends", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/follows", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSearchUsers_OverHTTP(t *testing.T) {
	_, app := newTestServer(t)
	aliceToken, _ := registerUser(t, app, "alice")
	registerUser(t, app, "alina")
	registerUser(t, app, "bob")

	status, envelope := doJSON(t, app, http.MethodGet, "/api/v1/search?keyword=ali", aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	users := envelope["data"].([]any)
	require.Len(t, users, 1, "the caller is excluded from their own results")
	assert.Equal(t, "alina", users[0].(map[string]any)["username"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/search", aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
