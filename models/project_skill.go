package models

// ProjectSkill links a project to a skill. A project cannot list the same
// skill twice, enforced by the composite unique index.
type ProjectSkill struct {
	ID        uint `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID uint `json:"project_id" db:"project_id" gorm:"not null;uniqueIndex:idx_project_skill_unique"`
	SkillID   uint `json:"skill_id" db:"skill_id" gorm:"not null;uniqueIndex:idx_project_skill_unique"`

	Project *Project `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
	Skill   *Skill   `json:"-" gorm:"foreignKey:SkillID;references:ID"`
}
