package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devfolio/backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects from the database
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil if absent
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update writes an existing project back to the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project by id. Dependent comments, bookmarks and skill
// links are removed in the same transaction; the store cascade covers
// whatever the association delete misses.
func (r *ProjectRepo) Delete(id uint) error {
	return r.db.Select("Comments", "Bookmarks", "Skills").Delete(&models.Project{ID: id}).Error
}
