package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestComment(t *testing.T, router http.Handler, content string, userID, projectID uint) {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/comment", map[string]any{
		"content":    content,
		"user_id":    userID,
		"project_id": projectID,
	})
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())
}

func TestCommentCreateNamesProjectAndAuthor(t *testing.T) {
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
	assert.Contains(t, rr.Body.String(), "comment added to project test project by bob")
}

func TestCommentCreateMissingFields(t *testing.T) {
	router := setupTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/comment", map[string]any{
		"content": "orphan",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "content, user_id and project_id are required")
}

func TestCommentCreateDanglingReferences(t *testing.T) {
	router := setupTestRouter(t)

	// nonexistent user and project fail at the store's foreign keys
	rr := doJSON(t, router, http.MethodPost, "/comment", map[string]any{
		"content":    "ghost",
		"user_id":    999,
		"project_id": 999,
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "error creating comment")
}

func TestCommentFilteredReads(t *testing.T) {
	router := setupTestRouter(t)
	owner := createTestUser(t, router, "alice", "alice@x.com")
	reader := createTestUser(t, router, "bob", "bob@x.com")
	first := createTestProject(t, router, "first project", owner)
	second := createTestProject(t, router, "second project", owner)

	createTestComment(t, router, "on first", reader, first)
	createTestComment(t, router, "on second", reader, second)
	createTestComment(t, router, "by owner", owner, first)

	rr := doJSON(t, router, http.MethodGet, fmt.Sprintf("/comment?project_id=%d", first), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var comments []struct {
		Content   string `json:"content"`
		UserID    uint   `json:"user_id"`
		ProjectID uint   `json:"project_id"`
	}
	decodeJSON(t, rr, &comments)
	assert.Len(t, comments, 2)

	rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/comment?user_id=%d", reader), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	comments = nil
	decodeJSON(t, rr, &comments)
	require.Len(t, comments, 2)
	for _, comment := range comments {
		assert.Equal(t, reader, comment.UserID)
	}

	// project_id wins when both filters are present
	rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/comment?project_id=%d&user_id=%d", second, owner), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	comments = nil
	decodeJSON(t, rr, &comments)
	require.Len(t, comments, 1)
	assert.Equal(t, "on second", comments[0].Content)

	rr = doJSON(t, router, http.MethodGet, "/comment", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	comments = nil
	decodeJSON(t, rr, &comments)
	assert.Len(t, comments, 3)
}

func TestCommentEmptyReadsNotFound(t *testing.T) {
	router := setupTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/comment", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "no comments found")

	rr = doJSON(t, router, http.MethodGet, "/comment?project_id=42", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "no comments found for this project")

	rr = doJSON(t, router, http.MethodGet, "/comment?user_id=42", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "no comments found for this user")
}

func TestCommentDeleteRequiresMatch(t *testing.T) {
	router := setupTestRouter(t)
	owner := createTestUser(t, router, "alice", "alice@x.com")
	reader := createTestUser(t, router, "bob", "bob@x.com")
	projectID := createTestProject(t, router, "test project", owner)

	createTestComment(t, router, "to remove", reader, projectID)

	rr := doJSON(t, router, http.MethodGet, fmt.Sprintf("/comment?user_id=%d", reader), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var comments []struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, rr, &comments)
	require.Len(t, comments, 1)
	commentID := comments[0].ID

	// a mismatched author does not delete
	rr = doJSON(t, router, http.MethodDelete, "/comment", map[string]any{
		"comment_id": commentID,
		"user_id":    owner,
		"project_id": projectID,
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "comment not found")

	rr = doJSON(t, router, http.MethodDelete, "/comment", map[string]any{
		"comment_id": commentID,
		"user_id":    reader,
		"project_id": projectID,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "comment deleted successfully")

	rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/comment?user_id=%d", reader), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
