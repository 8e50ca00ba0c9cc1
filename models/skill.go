package models

import "time"

// Skill represents a technology or competence that projects can be tagged with
type Skill struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" db:"name" gorm:"size:80;not null;unique"`
	Details   string    `json:"details" db:"details" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
