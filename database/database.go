package database

import (
	"gorm.io/gorm"

	"github.com/devfolio/backend/models"
)

type Database struct {
	userRepo         *UserRepo
	projectRepo      *ProjectRepo
	skillRepo        *SkillRepo
	projectSkillRepo *ProjectSkillRepo
	bookmarkRepo     *BookmarkRepo
	commentRepo      *CommentRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:         NewUserRepo(db),
		projectRepo:      NewProjectRepo(db),
		skillRepo:        NewSkillRepo(db),
		projectSkillRepo: NewProjectSkillRepo(db),
		bookmarkRepo:     NewBookmarkRepo(db),
		commentRepo:      NewCommentRepo(db),
	}
}

// Migrate creates or updates the schema for every entity, including the
// foreign keys and the two composite unique indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Project{},
		&models.ProjectSkill{},
		&models.Bookmark{},
		&models.Comment{},
	)
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ProjectSkillRepo() *ProjectSkillRepo {
	return d.projectSkillRepo
}

func (d Database) BookmarkRepo() *BookmarkRepo {
	return d.bookmarkRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}
