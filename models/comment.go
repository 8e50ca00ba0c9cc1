package models

import "time"

// Comment is a remark left by a user on a project. No uniqueness: a user may
// comment on the same project any number of times.
type Comment struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Content   string    `json:"content" db:"content" gorm:"size:120;not null"`
	UserID    uint      `json:"user_id" db:"user_id" gorm:"not null;index"`
	ProjectID uint      `json:"project_id" db:"project_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	User    *User    `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Project *Project `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
}
