package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProject(t *testing.T, router http.Handler, title string, userID uint) uint {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/projects", map[string]any{
		"title":       title,
		"description": "a test project description",
		"image":       "test.jpg",
		"user_id":     userID,
	})
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())
	return createdID(t, rr)
}

func TestProjectValidationBoundary(t *testing.T) {
	router := setupTestRouter(t)
	userID := createTestUser(t, router, "alice", "alice@x.com")

	// a 4-character title is rejected, citing the length rule
	rr := doJSON(t, router, http.MethodPost, "/projects", map[string]any{
		"title":       "abcd",
		"description": "1234567890",
		"image":       "x",
		"user_id":     userID,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Project title must be at least 5 characters long")

	// one character more passes
	rr = doJSON(t, router, http.MethodPost, "/projects", map[string]any{
		"title":       "abcde",
		"description": "1234567890",
		"image":       "x",
		"user_id":     userID,
	})
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestProjectGetAndList(t *testing.T) {
	router := setupTestRouter(t)
	userID := createTestUser(t, router, "alice", "alice@x.com")
	projectID := createTestProject(t, router, "test project", userID)

	rr := doJSON(t, router, http.MethodGet, fmt.Sprintf("/projects/%d", projectID), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var project struct {
		ID     uint   `json:"id"`
		Title  string `json:"title"`
		Image  string `json:"image"`
		UserID uint   `json:"user_id"`
	}
	decodeJSON(t, rr, &project)
	assert.Equal(t, projectID, project.ID)
	assert.Equal(t, "test project", project.Title)
	assert.Equal(t, "test.jpg", project.Image)
	assert.Equal(t, userID, project.UserID)

	// list shape is {id, title, description}; singular alias answers too
	for _, path := range []string{"/projects", "/project"} {
		rr = doJSON(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var list []struct {
			ID          uint   `json:"id"`
			Title       string `json:"title"`
			Description string `json:"description"`
		}
		decodeJSON(t, rr, &list)
		require.Len(t, list, 1)
		assert.Equal(t, "test project", list[0].Title)
	}
}

func TestProjectUpdateDefaultsToCurrent(t *testing.T) {
	router := setupTestRouter(t)
	userID := createTestUser(t, router, "alice", "alice@x.com")
	projectID := createTestProject(t, router, "test project", userID)

	rr := doJSON(t, router, http.MethodPut, fmt.Sprintf("/projects/%d", projectID), map[string]any{
		"description": "an updated description",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var project struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Image       string `json:"image"`
		UserID      uint   `json:"user_id"`
	}
	decodeJSON(t, rr, &project)
	assert.Equal(t, "test project", project.Title)
	assert.Equal(t, "an updated description", project.Description)
	assert.Equal(t, "test.jpg", project.Image)
	assert.Equal(t, userID, project.UserID)

	// an empty payload leaves everything in place
	rr = doJSON(t, router, http.MethodPut, fmt.Sprintf("/projects/%d", projectID), map[string]any{})
	require.Equal(t, http.StatusOK, rr.Code)
	decodeJSON(t, rr, &project)
	assert.Equal(t, "test project", project.Title)
	assert.Equal(t, "an updated description", project.Description)
}

func TestProjectDeleteCascades(t *testing.T) {
	router := setupTestRouter(t)
	owner := createTestUser(t, router, "alice", "alice@x.com")
	reader := createTestUser(t, router, "bob", "bob@x.com")
	projectID := createTestProject(t, router, "test project", owner)

	rr := doJSON(t, router, http.MethodPost, "/comment", map[string]any{
		"content":    "nice work",
		"user_id":    reader,
		"project_id": projectID,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/bookmark", map[string]any{
		"user_id":    reader,
		"project_id": projectID,
		"action":     "bookmark",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/projects/%d", projectID), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/projects/%d", projectID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/comment?project_id=%d", projectID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/bookmark?user_id=%d", reader), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
