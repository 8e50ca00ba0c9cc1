package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkActionDispatch(t *testing.T) {
	router := setupTestRouter(t)
	owner := createTestUser(t, router, "alice", "alice@x.com")
	reader := createTestUser(t, router, "bob", "bob@x.com")
	projectID := createTestProject(t, router, "test project", owner)

	payload := map[string]any{
		"user_id":    reader,
		"project_id": projectID,
		"action":     "bookmark",
	}

	rr := doJSON(t, router, http.MethodPost, "/bookmark", payload)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "project bookmarked successfully")

	// the same pair again trips the pre-check
	rr = doJSON(t, router, http.MethodPost, "/bookmark", payload)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "already bookmarked")

	// the filtered read resolves the project title
	rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/bookmark?user_id=%d", reader), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var rows []struct {
		UserID       uint    `json:"user_id"`
		ProjectID    uint    `json:"project_id"`
		ProjectTitle *string `json:"project_title"`
		CreatedAt    string  `json:"created_at"`
	}
	decodeJSON(t, rr, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, reader, rows[0].UserID)
	assert.Equal(t, projectID, rows[0].ProjectID)
	require.NotNil(t, rows[0].ProjectTitle)
	assert.Equal(t, "test project", *rows[0].ProjectTitle)
	assert.NotEmpty(t, rows[0].CreatedAt)

	payload["action"] = "unbookmark"
	rr = doJSON(t, router, http.MethodPost, "/bookmark", payload)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "bookmark removed successfully")

	// removing a pair that is gone is not-found
	rr = doJSON(t, router, http.MethodPost, "/bookmark", payload)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "bookmark not found")

	rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/bookmark?user_id=%d", reader), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "no bookmarks found for this user")
}

func TestBookmarkInvalidAction(t *testing.T) {
	router := setupTestRouter(t)
	owner := createTestUser(t, router, "alice", "alice@x.com")
	projectID := createTestProject(t, router, "test project", owner)

	rr := doJSON(t, router, http.MethodPost, "/bookmark", map[string]any{
		"user_id":    owner,
		"project_id": projectID,
		"action":     "toggle",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid action")
}

func TestBookmarkMissingFields(t *testing.T) {
	router := setupTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/bookmark", map[string]any{
		"action": "bookmark",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "user_id and project_id are required")
}

func TestBookmarkDirectDelete(t *testing.T) {
	router := setupTestRouter(t)
	owner := createTestUser(t, router, "alice", "alice@x.com")
	projectID := createTestProject(t, router, "test project", owner)

	rr := doJSON(t, router, http.MethodPost, "/bookmark", map[string]any{
		"user_id":    owner,
		"project_id": projectID,
		"action":     "bookmark",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/bookmark", map[string]any{
		"user_id":    owner,
		"project_id": projectID,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "bookmark removed successfully")

	rr = doJSON(t, router, http.MethodDelete, "/bookmark", map[string]any{
		"user_id":    owner,
		"project_id": projectID,
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBookmarkListUnfilteredEmpty(t *testing.T) {
	router := setupTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/bookmark", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "no bookmarks found")
}
