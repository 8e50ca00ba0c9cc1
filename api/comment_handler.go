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
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
	projectRepo *database.ProjectRepo
	userRepo    *database.UserRepo
}

func newCommentHandler(commentRepo *database.CommentRepo, projectRepo *database.ProjectRepo, userRepo *database.UserRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// commentPayload carries comment mutations. comment_id is only used on delete.
type commentPayload struct {
	Content   *string `json:"content"`
	UserID    *uint   `json:"user_id"`
	ProjectID *uint   `json:"project_id"`
	CommentID *uint   `json:"comment_id"`
}

// getComments retrieves comments filtered by project_id or user_id;
// project_id wins when both are present. An empty result set is reported as
// not-found.
func (h commentHandler) getComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, byProject, err := parseQueryID(r, "project_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		userID, byUser, err := parseQueryID(r, "user_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var comments []*models.Comment
		switch {
		case byProject:
			comments, err = h.commentRepo.FindByProjectID(projectID)
		case byUser:
			comments, err = h.commentRepo.FindByUserID(userID)
		default:
			comments, err = h.commentRepo.FindAll()
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "comments", err))
			return
		}

		if len(comments) == 0 {
			switch {
			case byProject:
				h.responder.WriteError(w, errs.NewNotFoundError("no comments found for this project"))
			case byUser:
				h.responder.WriteError(w, errs.NewNotFoundError("no comments found for this user"))
			default:
				h.responder.WriteError(w, errs.NewNotFoundError("no comments found"))
			}
			return
		}

		h.responder.WriteJSON(w, comments)
	}
}

// createComment inserts a new comment on a project. Existence of the
// referenced user and project is left to the store's foreign keys.
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload commentPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.UserID == nil || payload.ProjectID == nil || payload.Content == nil || *payload.Content == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("content, user_id and project_id are required"))
			return
		}

		comment := models.Comment{
			Content:   *payload.Content,
			UserID:    *payload.UserID,
			ProjectID: *payload.ProjectID,
		}

		if err := h.commentRepo.Add(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("creating", "comment", err))
			return
		}

		h.responder.WriteCreated(w, successMessage(h.describeComment(&comment)))
	}
}

// describeComment names the commented project and the author in the success
// message, falling back to the raw ids if either lookup fails.
func (h commentHandler) describeComment(comment *models.Comment) string {
	projectName := fmt.Sprintf("project %d", comment.ProjectID)
	if project, err := h.projectRepo.FindByID(comment.ProjectID); err == nil && project != nil {
		projectName = fmt.Sprintf("project %s", project.Title)
	}

	userName := fmt.Sprintf("user %d", comment.UserID)
	if user, err := h.userRepo.FindByID(comment.UserID); err == nil && user != nil {
		userName = user.Username
	}

	return fmt.Sprintf("comment added to %s by %s", projectName, userName)
}

// deleteComment removes a comment. The id, author and project in the payload
// must all match an existing row.
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload commentPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.UserID == nil || payload.ProjectID == nil || payload.CommentID == nil {
			h.responder.WriteError(w, errs.NewBadRequestError("comment_id, user_id and project_id are required"))
			return
		}

		comment, err := h.commentRepo.FindMatch(*payload.CommentID, *payload.UserID, *payload.ProjectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "comment", err))
			return
		}
		if comment == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("comment not found"))
			return
		}

		if err := h.commentRepo.Delete(comment.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("deleting", "comment", err))
			return
		}

		h.responder.WriteJSON(w, successMessage("comment deleted successfully"))
	}
}
