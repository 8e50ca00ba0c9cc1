package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devfolio/backend/models"
)

type BookmarkRepo struct {
	db *gorm.DB
}

func NewBookmarkRepo(db *gorm.DB) *BookmarkRepo {
	return &BookmarkRepo{db}
}

// FindAll returns all bookmarks with their projects loaded. A bookmark whose
// project row is gone keeps a nil Project.
func (r *BookmarkRepo) FindAll() ([]*models.Bookmark, error) {
	var bookmarks []*models.Bookmark
	err := r.db.Preload("Project").Find(&bookmarks).Error
	return bookmarks, err
}

// FindByUserID returns the bookmarks of one user, projects loaded
func (r *BookmarkRepo) FindByUserID(userID uint) ([]*models.Bookmark, error) {
	var bookmarks []*models.Bookmark
	err := r.db.Preload("Project").Where("user_id = ?", userID).Find(&bookmarks).Error
	return bookmarks, err
}

// FindByPair returns the bookmark for a (user, project) pair, or nil if absent
func (r *BookmarkRepo) FindByPair(userID, projectID uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := r.db.Where("user_id = ? AND project_id = ?", userID, projectID).First(&bookmark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// Add inserts a new bookmark into the database
func (r *BookmarkRepo) Add(bookmark *models.Bookmark) error {
	return r.db.Create(bookmark).Error
}

// Delete removes a bookmark from the database by id
func (r *BookmarkRepo) Delete(id uint) error {
	return r.db.Delete(&models.Bookmark{}, id).Error
}
