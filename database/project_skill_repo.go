package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devfolio/backend/models"
)

type ProjectSkillRepo struct {
	db *gorm.DB
}

func NewProjectSkillRepo(db *gorm.DB) *ProjectSkillRepo {
	return &ProjectSkillRepo{db}
}

// FindAll returns all project-skill links with both sides of the relation loaded
func (r *ProjectSkillRepo) FindAll() ([]*models.ProjectSkill, error) {
	var links []*models.ProjectSkill
	err := r.db.Preload("Project").Preload("Skill").Find(&links).Error
	return links, err
}

// FindByProjectID returns the skill links of one project, skills loaded
func (r *ProjectSkillRepo) FindByProjectID(projectID uint) ([]*models.ProjectSkill, error) {
	var links []*models.ProjectSkill
	err := r.db.Preload("Skill").Where("project_id = ?", projectID).Find(&links).Error
	return links, err
}

// FindBySkillID returns the project links of one skill, projects loaded
func (r *ProjectSkillRepo) FindBySkillID(skillID uint) ([]*models.ProjectSkill, error) {
	var links []*models.ProjectSkill
	err := r.db.Preload("Project").Where("skill_id = ?", skillID).Find(&links).Error
	return links, err
}

// FindByID returns a link row by its own id, or nil if absent
func (r *ProjectSkillRepo) FindByID(id uint) (*models.ProjectSkill, error) {
	var link models.ProjectSkill
	err := r.db.First(&link, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// FindByPair returns the link for a (project, skill) pair, or nil if absent
func (r *ProjectSkillRepo) FindByPair(projectID, skillID uint) (*models.ProjectSkill, error) {
	var link models.ProjectSkill
	err := r.db.Where("project_id = ? AND skill_id = ?", projectID, skillID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Add inserts a new project-skill link into the database
func (r *ProjectSkillRepo) Add(link *models.ProjectSkill) error {
	return r.db.Create(link).Error
}

// Delete removes a project-skill link from the database by id
func (r *ProjectSkillRepo) Delete(id uint) error {
	return r.db.Delete(&models.ProjectSkill{}, id).Error
}
