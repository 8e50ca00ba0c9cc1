package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/backend/database"
	"github.com/devfolio/backend/errs"
	"github.com/devfolio/backend/models"
	"github.com/devfolio/backend/validation"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
}

func newUserHandler(userRepo *database.UserRepo) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
	}
}

// userPayload carries the writable user fields. Pointer fields distinguish
// "absent" from "empty" so updates only touch keys present in the payload.
type userPayload struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

// userSummary is the list-view shape of a user
type userSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ownedProject is the nested {id, title} shape inside a user detail
type ownedProject struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// userDetail is the single-user shape, with the user's projects nested
type userDetail struct {
	ID        uint           `json:"id"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	Role      string         `json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Projects  []ownedProject `json:"projects"`
}

// getAllUsers retrieves all users
func (h userHandler) getAllUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.userRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "users", err))
			return
		}

		summaries := make([]userSummary, 0, len(users))
		for _, user := range users {
			summaries = append(summaries, userSummary{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
				Role:     user.Role,
			})
		}

		h.responder.WriteJSON(w, summaries)
	}
}

// getUser retrieves a specific user by ID with its owned projects
func (h userHandler) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		detail := userDetail{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
			Projects:  make([]ownedProject, 0, len(user.Projects)),
		}
		for _, project := range user.Projects {
			detail.Projects = append(detail.Projects, ownedProject{ID: project.ID, Title: project.Title})
		}

		h.responder.WriteJSON(w, detail)
	}
}

// createUser validates and inserts a new user
func (h userHandler) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var payload userPayload
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode user request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		// Advisory pre-check; the unique constraint is the real guarantee
		emailTaken := func(email string) bool {
			existing, err := h.userRepo.FindByEmail(email)
			return err == nil && existing != nil
		}

		if ok, msg := validation.User(payload.Username, payload.Email, emailTaken); !ok {
			h.responder.WriteError(w, errs.NewBadRequestError(msg))
			return
		}

		user := models.User{
			Username: *payload.Username,
			Email:    *payload.Email,
		}
		if payload.Role != nil {
			user.Role = *payload.Role
		}

		if err := h.userRepo.Add(&user); err != nil {
			dbErr := wrapDatabaseError("creating", "user", err)
			if errs.IsAlreadyExists(dbErr) {
				h.responder.WriteError(w, errs.NewConflictError("username or email exists"))
				return
			}
			h.responder.WriteError(w, dbErr)
			return
		}

		h.responder.WriteCreated(w, map[string]any{
			"status":  "success",
			"message": fmt.Sprintf("user %s created successfully", user.Username),
			"id":      user.ID,
		})
	}
}

// updateUser applies only the fields present in the payload
func (h userHandler) updateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		var payload userPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Username != nil {
			user.Username = *payload.Username
		}
		if payload.Email != nil {
			user.Email = *payload.Email
		}
		if payload.Role != nil {
			user.Role = *payload.Role
		}

		if err := h.userRepo.Update(user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("updating", "user", err))
			return
		}

		h.responder.WriteJSON(w, userSummary{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		})
	}
}

// deleteUser deletes a user by ID
func (h userHandler) deleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		if err := h.userRepo.Delete(userID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("deleting", "user", err))
			return
		}

		h.responder.WriteJSON(w, successMessage("user deleted successfully"))
	}
}
