package models

import "time"

// Bookmark marks a project as saved by a user. A user can bookmark a given
// project at most once, enforced by the composite unique index.
type Bookmark struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"user_id" db:"user_id" gorm:"not null;uniqueIndex:idx_bookmark_unique"`
	ProjectID uint      `json:"project_id" db:"project_id" gorm:"not null;uniqueIndex:idx_bookmark_unique"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Project *Project `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
}
