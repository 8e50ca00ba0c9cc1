package models

import "time"

// Project represents a published portfolio project owned by a user.
// Deleting a project takes its comments, bookmarks and skill links with it.
type Project struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" db:"title" gorm:"size:80;not null;unique"`
	Description string    `json:"description" db:"description" gorm:"size:120;not null"`
	Image       string    `json:"image" db:"image" gorm:"size:120;not null;default:default.jpg"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
	UserID      uint      `json:"user_id" db:"user_id" gorm:"not null;index"`

	Skills    []ProjectSkill `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Bookmarks []Bookmark     `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Comments  []Comment      `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}
