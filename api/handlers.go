package api

import (
	"time"

	"github.com/devfolio/backend/database"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler       healthHandler
	userHandler         userHandler
	projectHandler      projectHandler
	skillHandler        skillHandler
	projectSkillHandler projectSkillHandler
	bookmarkHandler     bookmarkHandler
	commentHandler      commentHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		healthHandler:       newHealthHandler(startupTime),
		userHandler:         newUserHandler(database.UserRepo()),
		projectHandler:      newProjectHandler(database.ProjectRepo()),
		skillHandler:        newSkillHandler(database.SkillRepo()),
		projectSkillHandler: newProjectSkillHandler(database.ProjectSkillRepo()),
		bookmarkHandler:     newBookmarkHandler(database.BookmarkRepo()),
		commentHandler:      newCommentHandler(database.CommentRepo(), database.ProjectRepo(), database.UserRepo()),
	}
}
