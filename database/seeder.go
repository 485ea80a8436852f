package database

import (
	"fmt"

	"github.com/evandrarf/promptquest-be/internal/entity"
	"github.com/evandrarf/promptquest-be/internal/pkg/mapper"
	"github.com/evandrarf/promptquest-be/internal/pkg/progression"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedUserProgress inserts the level 1 progress row for the local user.
// An existing row is left untouched.
func SeedUserProgress(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&entity.UserProgressRecord{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count user progress: %w", err)
	}
	if count > 0 {
		log.Debug("User progress already seeded, skipping...")
		return nil
	}

	record, err := mapper.ConvertToUserProgressRecord(progression.NewProgress())
	if err != nil {
		return fmt.Errorf("failed to build user progress: %w", err)
	}

	if err := db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to seed user progress: %w", err)
	}

	log.Info("Seeded initial user progress")
	return nil
}
