package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devfolio/backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindAll returns all users from the database
func (r *UserRepo) FindAll() ([]*models.User, error) {
	var users []*models.User
	err := r.db.Find(&users).Error
	return users, err
}

// FindByID returns a user by its ID with its owned projects, or nil if absent
func (r *UserRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Projects").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user owning the given email, or nil if no user has it
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}

// Update writes an existing user back to the database
func (r *UserRepo) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user from the database by id. Fails if the store rejects
// the delete because projects, bookmarks or comments still reference the user.
func (r *UserRepo) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}
