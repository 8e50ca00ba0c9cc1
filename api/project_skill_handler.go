package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/backend/database"
	"github.com/devfolio/backend/errs"
	"github.com/devfolio/backend/models"
)

type projectSkillHandler struct {
	responder        Responder
	logger           zerolog.Logger
	projectSkillRepo *database.ProjectSkillRepo
}

func newProjectSkillHandler(projectSkillRepo *database.ProjectSkillRepo) projectSkillHandler {
	logger := log.With().Str("handlerName", "projectSkillHandler").Logger()

	return projectSkillHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		projectSkillRepo: projectSkillRepo,
	}
}

// projectSkillPayload carries the two foreign keys of a link row
type projectSkillPayload struct {
	ProjectID *uint `json:"project_id"`
	SkillID   *uint `json:"skill_id"`
}

// projectSkillRow is the read shape of a link row, denormalized with the
// names of whichever side the filter did not fix.
type projectSkillRow struct {
	ID           uint    `json:"id"`
	ProjectID    uint    `json:"project_id"`
	SkillID      uint    `json:"skill_id"`
	ProjectTitle *string `json:"project_title,omitempty"`
	SkillName    *string `json:"skill_name,omitempty"`
}

func toProjectSkillRow(link *models.ProjectSkill) projectSkillRow {
	row := projectSkillRow{
		ID:        link.ID,
		ProjectID: link.ProjectID,
		SkillID:   link.SkillID,
	}
	if link.Project != nil {
		row.ProjectTitle = &link.Project.Title
	}
	if link.Skill != nil {
		row.SkillName = &link.Skill.Name
	}
	return row
}

// getProjectSkills retrieves link rows filtered by project_id or skill_id,
// or all rows when unfiltered
func (h projectSkillHandler) getProjectSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, byProject, err := parseQueryID(r, "project_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		skillID, bySkill, err := parseQueryID(r, "skill_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var links []*models.ProjectSkill
		switch {
		case byProject:
			links, err = h.projectSkillRepo.FindByProjectID(projectID)
		case bySkill:
			links, err = h.projectSkillRepo.FindBySkillID(skillID)
		default:
			links, err = h.projectSkillRepo.FindAll()
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "project skills", err))
			return
		}

		rows := make([]projectSkillRow, 0, len(links))
		for _, link := range links {
			rows = append(rows, toProjectSkillRow(link))
		}

		h.responder.WriteJSON(w, rows)
	}
}

// createProjectSkill links a skill to a project. A duplicate pair is rejected
// before the insert is attempted.
func (h projectSkillHandler) createProjectSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload projectSkillPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.ProjectID == nil || payload.SkillID == nil {
			h.responder.WriteError(w, errs.NewBadRequestError("project_id and skill_id are required"))
			return
		}

		existing, err := h.projectSkillRepo.FindByPair(*payload.ProjectID, *payload.SkillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "project skill", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("project already has this skill"))
			return
		}

		link := models.ProjectSkill{ProjectID: *payload.ProjectID, SkillID: *payload.SkillID}
		if err := h.projectSkillRepo.Add(&link); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("creating", "project skill", err))
			return
		}

		h.responder.WriteCreated(w, map[string]any{
			"status":  "success",
			"message": "skill added to project successfully",
			"id":      link.ID,
		})
	}
}

// deleteProjectSkill removes a link row by its own id
func (h projectSkillHandler) deleteProjectSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		linkID, err := parseIDParam(r, "projectSkillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		link, err := h.projectSkillRepo.FindByID(linkID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "project skill", err))
			return
		}
		if link == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project skill not found"))
			return
		}

		if err := h.projectSkillRepo.Delete(linkID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("deleting", "project skill", err))
			return
		}

		h.responder.WriteJSON(w, successMessage("project skill deleted successfully"))
	}
}
