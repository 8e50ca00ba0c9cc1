package database

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"

	"github.com/devfolio/backend/models"
)

// Seed fills an empty database with fake users, skills, projects, comments
// and bookmarks for local development. Duplicate pairs produced by the random
// picks are skipped rather than treated as failures.
func Seed(db *gorm.DB) error {
	faker := gofakeit.New(0)

	var users []models.User
	for i := 0; i < 10; i++ {
		// suffix keeps random picks from tripping the unique constraints
		username := fmt.Sprintf("%s%02d", faker.Username(), i)
		users = append(users, models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@%s", username, faker.DomainName()),
			Role:     faker.RandomString([]string{"admin", "user"}),
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	var skills []models.Skill
	for i := 0; i < 10; i++ {
		skills = append(skills, models.Skill{
			Name:    fmt.Sprintf("%s-%d", faker.ProgrammingLanguage(), i),
			Details: faker.Sentence(8),
		})
	}
	if err := db.Create(&skills).Error; err != nil {
		return fmt.Errorf("seeding skills: %w", err)
	}

	var projects []models.Project
	for i := 0; i < 10; i++ {
		projects = append(projects, models.Project{
			Title:       fmt.Sprintf("%s %d", faker.AppName(), i),
			Description: faker.Sentence(10),
			Image:       faker.ImageURL(640, 480),
			UserID:      users[faker.Number(0, len(users)-1)].ID,
		})
	}
	if err := db.Create(&projects).Error; err != nil {
		return fmt.Errorf("seeding projects: %w", err)
	}

	for i := 0; i < 10; i++ {
		comment := models.Comment{
			Content:   faker.Sentence(12),
			UserID:    users[faker.Number(0, len(users)-1)].ID,
			ProjectID: projects[faker.Number(0, len(projects)-1)].ID,
		}
		if err := db.Create(&comment).Error; err != nil {
			return fmt.Errorf("seeding comments: %w", err)
		}
	}

	for i := 0; i < 10; i++ {
		bookmark := models.Bookmark{
			UserID:    users[faker.Number(0, len(users)-1)].ID,
			ProjectID: projects[faker.Number(0, len(projects)-1)].ID,
		}
		// random picks can collide with the unique pair, skip those
		if err := db.Create(&bookmark).Error; err != nil {
			continue
		}
	}

	for i := 0; i < 10; i++ {
		link := models.ProjectSkill{
			ProjectID: projects[faker.Number(0, len(projects)-1)].ID,
			SkillID:   skills[faker.Number(0, len(skills)-1)].ID,
		}
		if err := db.Create(&link).Error; err != nil {
			continue
		}
	}

	return nil
}
