package database

import (
	"github.com/evandrarf/promptquest-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.PromptAttempt{},
		&entity.UserProgressRecord{},
	)
	return err
}
