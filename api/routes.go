package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every resource handler into the router
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)

		r.Get("/", handlers.healthHandler.welcome())

		// User endpoints
		r.Get("/user", handlers.userHandler.getAllUsers())
		r.Get("/user/{userID}", handlers.userHandler.getUser())
		r.Post("/user", handlers.userHandler.createUser())
		r.Put("/user/{userID}", handlers.userHandler.updateUser())
		r.Delete("/user/{userID}", handlers.userHandler.deleteUser())

		// Project endpoints, exposed under both the plural and singular path
		for _, prefix := range []string{"/projects", "/project"} {
			r.Get(prefix, handlers.projectHandler.getAllProjects())
			r.Get(prefix+"/{projectID}", handlers.projectHandler.getProject())
			r.Post(prefix, handlers.projectHandler.createProject())
			r.Put(prefix+"/{projectID}", handlers.projectHandler.updateProject())
			r.Delete(prefix+"/{projectID}", handlers.projectHandler.deleteProject())
		}

		// Bookmark endpoints
		r.Get("/bookmark", handlers.bookmarkHandler.getBookmarks())
		r.Post("/bookmark", handlers.bookmarkHandler.createBookmark())
		r.Delete("/bookmark", handlers.bookmarkHandler.deleteBookmark())

		// Comment endpoints
		r.Get("/comment", handlers.commentHandler.getComments())
		r.Post("/comment", handlers.commentHandler.createComment())
		r.Delete("/comment", handlers.commentHandler.deleteComment())

		// Skill endpoints
		r.Get("/skill", handlers.skillHandler.getAllSkills())
		r.Get("/skill/{skillID}", handlers.skillHandler.getSkill())
		r.Post("/skill", handlers.skillHandler.createSkill())
		r.Put("/skill/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/skill/{skillID}", handlers.skillHandler.deleteSkill())

		// ProjectSkill endpoints
		r.Get("/projectskill", handlers.projectSkillHandler.getProjectSkills())
		r.Post("/projectskill", handlers.projectSkillHandler.createProjectSkill())
		r.Delete("/projectskill/{projectSkillID}", handlers.projectSkillHandler.deleteProjectSkill())
	})
}
