package repository

import (
	"strings"

	"github.com/evandrarf/promptquest-be/internal/entity"
	"gorm.io/gorm"
)

type (
	// PromptAttemptRepository is the append-only prompt library.
	PromptAttemptRepository interface {
		Append(db *gorm.DB, attempt *entity.PromptAttempt) error
		AppendBatch(db *gorm.DB, attempts []entity.PromptAttempt) error
		FindAll(db *gorm.DB) ([]entity.PromptAttempt, error)
		FindRecent(db *gorm.DB, limit int) ([]entity.PromptAttempt, error)
		Search(db *gorm.DB, term string) ([]entity.PromptAttempt, error)
		Count(db *gorm.DB) (int64, error)
	}

	promptAttemptRepository struct {
		db *gorm.DB
	}
)

func NewPromptAttemptRepository(db *gorm.DB) PromptAttemptRepository {
	return &promptAttemptRepository{db: db}
}

func (r *promptAttemptRepository) Append(db *gorm.DB, attempt *entity.PromptAttempt) error {
	if db == nil {
		db = r.db
	}
	return db.Create(attempt).Error
}

// AppendBatch writes every attempt or none of them.
func (r *promptAttemptRepository) AppendBatch(db *gorm.DB, attempts []entity.PromptAttempt) error {
	if db == nil {
		db = r.db
	}
	if len(attempts) == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range attempts {
			if err := r.Append(tx, &attempts[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// FindAll returns the library in insertion order.
func (r *promptAttemptRepository) FindAll(db *gorm.DB) ([]entity.PromptAttempt, error) {
	if db == nil {
		db = r.db
	}
	var attempts []entity.PromptAttempt
	err := db.Order("id ASC").Find(&attempts).Error
	return attempts, err
}

func (r *promptAttemptRepository) FindRecent(db *gorm.DB, limit int) ([]entity.PromptAttempt, error) {
	if db == nil {
		db = r.db
	}
	var attempts []entity.PromptAttempt
	query := db.Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&attempts).Error
	return attempts, err
}

// Search matches term case-insensitively against quest title and prompt.
func (r *promptAttemptRepository) Search(db *gorm.DB, term string) ([]entity.PromptAttempt, error) {
	if db == nil {
		db = r.db
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return r.FindAll(db)
	}

	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	var attempts []entity.PromptAttempt
	err := db.Where("LOWER(quest_title) LIKE ? ESCAPE '\\' OR LOWER(prompt) LIKE ? ESCAPE '\\'", pattern, pattern).
		Order("id ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *promptAttemptRepository) Count(db *gorm.DB) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.PromptAttempt{}).Count(&count).Error
	return count, err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
