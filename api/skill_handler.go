package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/backend/database"
	"github.com/devfolio/backend/errs"
	"github.com/devfolio/backend/models"
	"github.com/devfolio/backend/validation"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

// skillPayload carries the writable skill fields
type skillPayload struct {
	Name    *string `json:"name"`
	Details *string `json:"details"`
}

// getAllSkills retrieves all skills
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "skills", err))
			return
		}

		h.responder.WriteJSON(w, skills)
	}
}

// getSkill retrieves a specific skill by ID
func (h skillHandler) getSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

// createSkill validates and inserts a new skill. Name uniqueness is enforced
// by the store.
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload skillPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if ok, msg := validation.Skill(payload.Name, payload.Details); !ok {
			h.responder.WriteError(w, errs.NewBadRequestError(msg))
			return
		}

		skill := models.Skill{
			Name:    *payload.Name,
			Details: *payload.Details,
		}

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("creating", "skill", err))
			return
		}

		h.responder.WriteCreated(w, map[string]any{
			"status":  "success",
			"message": fmt.Sprintf("skill %s created successfully", skill.Name),
			"id":      skill.ID,
		})
	}
}

// updateSkill applies only the fields present in the payload
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		var payload skillPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Name != nil {
			skill.Name = *payload.Name
		}
		if payload.Details != nil {
			skill.Details = *payload.Details
		}

		if err := h.skillRepo.Update(skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("updating", "skill", err))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

// deleteSkill deletes a skill by ID
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		if err := h.skillRepo.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("deleting", "skill", err))
			return
		}

		h.responder.WriteJSON(w, successMessage("skill deleted successfully"))
	}
}
