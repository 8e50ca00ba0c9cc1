package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/backend/database"
	"github.com/devfolio/backend/errs"
	"github.com/devfolio/backend/models"
)

type bookmarkHandler struct {
	responder    Responder
	logger       zerolog.Logger
	bookmarkRepo *database.BookmarkRepo
}

func newBookmarkHandler(bookmarkRepo *database.BookmarkRepo) bookmarkHandler {
	logger := log.With().Str("handlerName", "bookmarkHandler").Logger()

	return bookmarkHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		bookmarkRepo: bookmarkRepo,
	}
}

// bookmarkPayload carries a bookmark mutation. action selects between
// "bookmark" and "unbookmark" on the create endpoint.
type bookmarkPayload struct {
	UserID    *uint  `json:"user_id"`
	ProjectID *uint  `json:"project_id"`
	Action    string `json:"action"`
}

// bookmarkRow is the read shape of a bookmark. ProjectTitle is resolved
// through the relation at read time and is null when the project is gone.
type bookmarkRow struct {
	ID           uint    `json:"id"`
	UserID       uint    `json:"user_id"`
	ProjectID    uint    `json:"project_id"`
	ProjectTitle *string `json:"project_title"`
	CreatedAt    string  `json:"created_at"`
}

func toBookmarkRow(bookmark *models.Bookmark) bookmarkRow {
	row := bookmarkRow{
		ID:        bookmark.ID,
		UserID:    bookmark.UserID,
		ProjectID: bookmark.ProjectID,
		CreatedAt: bookmark.CreatedAt.Format(time.RFC3339),
	}
	if bookmark.Project != nil {
		row.ProjectTitle = &bookmark.Project.Title
	}
	return row
}

// getBookmarks retrieves bookmarks, optionally filtered by user_id. An empty
// result set is reported as not-found, not as an empty list.
func (h bookmarkHandler) getBookmarks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, filtered, err := parseQueryID(r, "user_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var bookmarks []*models.Bookmark
		if filtered {
			bookmarks, err = h.bookmarkRepo.FindByUserID(userID)
		} else {
			bookmarks, err = h.bookmarkRepo.FindAll()
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "bookmarks", err))
			return
		}

		if len(bookmarks) == 0 {
			if filtered {
				h.responder.WriteError(w, errs.NewNotFoundError("no bookmarks found for this user"))
			} else {
				h.responder.WriteError(w, errs.NewNotFoundError("no bookmarks found"))
			}
			return
		}

		rows := make([]bookmarkRow, 0, len(bookmarks))
		for _, bookmark := range bookmarks {
			rows = append(rows, toBookmarkRow(bookmark))
		}

		h.responder.WriteJSON(w, rows)
	}
}

// createBookmark dispatches on the action field: "bookmark" creates the pair
// if absent, "unbookmark" removes it if present.
func (h bookmarkHandler) createBookmark() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload bookmarkPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.UserID == nil || payload.ProjectID == nil {
			h.responder.WriteError(w, errs.NewBadRequestError("user_id and project_id are required"))
			return
		}

		switch payload.Action {
		case "bookmark":
			existing, err := h.bookmarkRepo.FindByPair(*payload.UserID, *payload.ProjectID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("fetching", "bookmark", err))
				return
			}
			if existing != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("already bookmarked"))
				return
			}

			bookmark := models.Bookmark{UserID: *payload.UserID, ProjectID: *payload.ProjectID}
			if err := h.bookmarkRepo.Add(&bookmark); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("creating", "bookmark", err))
				return
			}

			h.responder.WriteCreated(w, successMessage("project bookmarked successfully"))

		case "unbookmark":
			existing, err := h.bookmarkRepo.FindByPair(*payload.UserID, *payload.ProjectID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("fetching", "bookmark", err))
				return
			}
			if existing == nil {
				h.responder.WriteError(w, errs.NewNotFoundError("bookmark not found"))
				return
			}

			if err := h.bookmarkRepo.Delete(existing.ID); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("deleting", "bookmark", err))
				return
			}

			h.responder.WriteJSON(w, successMessage("bookmark removed successfully"))

		default:
			h.responder.WriteError(w, errs.NewBadRequestError("invalid action"))
		}
	}
}

// deleteBookmark removes a (user, project) bookmark pair directly
func (h bookmarkHandler) deleteBookmark() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload bookmarkPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.UserID == nil || payload.ProjectID == nil {
			h.responder.WriteError(w, errs.NewBadRequestError("user_id and project_id are required"))
			return
		}

		existing, err := h.bookmarkRepo.FindByPair(*payload.UserID, *payload.ProjectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetching", "bookmark", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("bookmark not found"))
			return
		}

		if err := h.bookmarkRepo.Delete(existing.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("deleting", "bookmark", err))
			return
		}

		h.responder.WriteJSON(w, successMessage("bookmark removed successfully"))
	}
}
