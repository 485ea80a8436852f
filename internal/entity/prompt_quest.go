package entity

import (
	"time"
)

// PromptAttempt - Satu prompt yang sudah dinilai (prompt library)
type PromptAttempt struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	RecordID   string    `gorm:"uniqueIndex;size:36;not null" json:"record_id"` // uuid
	SessionID  string    `gorm:"size:36;index" json:"session_id"`
	QuestID    string    `gorm:"size:100;not null;index" json:"quest_id"`
	QuestTitle string    `gorm:"size:255;not null" json:"quest_title"`
	Prompt     string    `gorm:"type:text;not null" json:"prompt"`
	Score      int       `gorm:"not null" json:"score"`
	Feedback   string    `gorm:"type:text;not null" json:"feedback"` // JSON ScoreResult
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (PromptAttempt) TableName() string {
	return "prompt_attempts"
}

// UserProgressRecord - Progress user lokal (satu baris, ID = 1)
type UserProgressRecord struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	Level            int       `gorm:"not null;default:1" json:"level"`
	Experience       int       `gorm:"not null;default:0" json:"experience"`
	ExperienceToNext int       `gorm:"not null;default:200" json:"experience_to_next"`
	Title            string    `gorm:"size:100" json:"title"`
	CompletedQuests  int       `gorm:"not null;default:0" json:"completed_quests"`
	TotalScore       int       `gorm:"not null;default:0" json:"total_score"`
	AverageScore     int       `gorm:"not null;default:0" json:"average_score"`
	Streak           int       `gorm:"not null;default:0" json:"streak"`
	MaxStreak        int       `gorm:"not null;default:0" json:"max_streak"`
	Achievements     string    `gorm:"type:text;not null" json:"achievements"` // JSON array, urutan unlock
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (UserProgressRecord) TableName() string {
	return "user_progress"
}

const UserProgressRecordID = 1
