package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostLikeToggle(t *testing.T) {
	app, _ := newTestApp(t)

	owner := signupUser(t, app, "owner")
	liker := signupUser(t, app, "liker")

	post := createPost(t, app, owner, "Likeable post")
	postID := uint(post["id"].(float64))
	likeURL := fmt.Sprintf("/api/posts/%d/like", postID)
	countURL := fmt.Sprintf("/api/posts/%d/like/count", postID)

	t.Run("toggle alternates between added and removed", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, likeURL, nil, liker)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "added", decodeBody(t, resp)["status"])

		resp = doJSON(t, app, http.MethodPost, likeURL, nil, liker)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, app, http.MethodPost, likeURL, nil, liker)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "added", decodeBody(t, resp)["status"])
	})

	t.Run("count reflects the toggles", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, countURL, nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(1), decodeBody(t, resp)["count"])
	})

	t.Run("likes from two users accumulate", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, likeURL, nil, owner)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, countURL, nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(2), decodeBody(t, resp)["count"])
	})

	t.Run("liking a missing post is not found", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/posts/99999/like", nil, liker)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("counting a missing post is not found", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/posts/99999/like/count", nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("toggling needs a session", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, likeURL, nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestCommentLikeToggle(t *testing.T) {
	app, _ := newTestApp(t)

	owner := signupUser(t, app, "owner")
	liker := signupUser(t, app, "liker")

	post := createPost(t, app, owner, "Post with comments")
	postID := uint(post["id"].(float64))

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", postID), map[string]string{
		"content": "Like me",
	}, owner)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	comment := decodeBody(t, resp)

	likeURL := fmt.Sprintf("/api/comments/%v/like", comment["id"])
	countURL := fmt.Sprintf("/api/comments/%v/like/count", comment["id"])

	resp = doJSON(t, app, http.MethodPost, likeURL, nil, liker)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, countURL, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), decodeBody(t, resp)["count"])

	// Comment likes never leak into the post's like count.
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d/like/count", postID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), decodeBody(t, resp)["count"])

	t.Run("post delete erases the comment like count", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/posts/%d", postID), nil, owner)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, countURL, nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
