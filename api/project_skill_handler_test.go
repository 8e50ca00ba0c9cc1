package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectSkillLinkFlow(t *testing.T) {
	router := setupTestRouter(t)
	owner := createTestUser(t, router, "alice", "alice@x.com")
	projectID := createTestProject(t, router, "test project", owner)
	skillID := createTestSkill(t, router, "Go", "systems programming")

	payload := map[string]any{
		"project_id": projectID,
		"skill_id":   skillID,
	}

	rr := doJSON(t, router, http.MethodPost, "/projectskill", payload)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "skill added to project successfully")
	linkID := createdID(t, rr)

	// the same pair again is rejected before the insert
	rr = doJSON(t, router, http.MethodPost, "/projectskill", payload)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "project already has this skill")

	// filtering by project denormalizes the skill name
	rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/projectskill?project_id=%d", projectID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var rows []struct {
		ID        uint    `json:"id"`
		ProjectID uint    `json:"project_id"`
		SkillID   uint    `json:"skill_id"`
		SkillName *string `json:"skill_name"`
	}
	decodeJSON(t, rr, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, linkID, rows[0].ID)
	require.NotNil(t, rows[0].SkillName)
	assert.Equal(t, "Go", *rows[0].SkillName)

	// filtering by skill denormalizes the project title
	rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/projectskill?skill_id=%d", skillID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var bySkill []struct {
		ProjectTitle *string `json:"project_title"`
	}
	decodeJSON(t, rr, &bySkill)
	require.Len(t, bySkill, 1)
	require.NotNil(t, bySkill[0].ProjectTitle)
	assert.Equal(t, "test project", *bySkill[0].ProjectTitle)

	rr = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/projectskill/%d", linkID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "project skill deleted successfully")

	rr = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/projectskill/%d", linkID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "project skill not found")
}

func TestProjectSkillUnfilteredListEmpty(t *testing.T) {
	router := setupTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/projectskill", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var rows []struct{}
	decodeJSON(t, rr, &rows)
	assert.Empty(t, rows)
}

func TestProjectSkillMissingFields(t *testing.T) {
	router := setupTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/projectskill", map[string]any{
		"project_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "project_id and skill_id are required")
}
