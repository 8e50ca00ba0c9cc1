package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devfolio/backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindAll returns all comments from the database
func (r *CommentRepo) FindAll() ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Find(&comments).Error
	return comments, err
}

// FindByProjectID returns the comments left on one project
func (r *CommentRepo) FindByProjectID(projectID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Where("project_id = ?", projectID).Find(&comments).Error
	return comments, err
}

// FindByUserID returns the comments written by one user
func (r *CommentRepo) FindByUserID(userID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Where("user_id = ?", userID).Find(&comments).Error
	return comments, err
}

// FindMatch returns the comment matching id, author and project all at once,
// or nil when no row satisfies all three.
func (r *CommentRepo) FindMatch(id, userID, projectID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ? AND user_id = ? AND project_id = ?", id, userID, projectID).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// Delete removes a comment from the database by id
func (r *CommentRepo) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
