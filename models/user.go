package models

import "time"

// User represents a registered member of the portfolio platform
type User struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" db:"username" gorm:"size:80;not null;unique"`
	Email     string    `json:"email" db:"email" gorm:"size:120;not null;unique"`
	Role      string    `json:"role" db:"role" gorm:"size:80;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Projects  []Project  `json:"projects,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT"`
	Bookmarks []Bookmark `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT"`
	Comments  []Comment  `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT"`
}
