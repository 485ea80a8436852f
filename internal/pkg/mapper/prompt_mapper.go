package mapper

import (
	"encoding/json"
	"time"

	httpEntity "github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
	dbEntity "github.com/evandrarf/promptquest-be/internal/entity"
)

// ConvertToPromptRecord - Convert DB entity to domain entity
func ConvertToPromptRecord(attempt *dbEntity.PromptAttempt) (httpEntity.PromptRecord, error) {
	var feedback httpEntity.ScoreResult
	if attempt.Feedback != "" {
		if err := json.Unmarshal([]byte(attempt.Feedback), &feedback); err != nil {
			return httpEntity.PromptRecord{}, err
		}
	}

	return httpEntity.PromptRecord{
		ID:         attempt.RecordID,
		QuestID:    attempt.QuestID,
		QuestTitle: attempt.QuestTitle,
		Prompt:     attempt.Prompt,
		Score:      attempt.Score,
		Date:       attempt.CreatedAt.UTC().Format(time.RFC3339),
		Feedback:   feedback,
	}, nil
}

func ConvertToPromptRecords(attempts []dbEntity.PromptAttempt) ([]httpEntity.PromptRecord, error) {
	records := make([]httpEntity.PromptRecord, 0, len(attempts))
	for i := range attempts {
		r, err := ConvertToPromptRecord(&attempts[i])
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// ConvertToPromptAttempt - Convert domain entity to DB entity
func ConvertToPromptAttempt(record httpEntity.PromptRecord, sessionID string) (dbEntity.PromptAttempt, error) {
	feedback, err := json.Marshal(record.Feedback)
	if err != nil {
		return dbEntity.PromptAttempt{}, err
	}

	attempt := dbEntity.PromptAttempt{
		RecordID:   record.ID,
		SessionID:  sessionID,
		QuestID:    record.QuestID,
		QuestTitle: record.QuestTitle,
		Prompt:     record.Prompt,
		Score:      record.Score,
		Feedback:   string(feedback),
	}
	if record.Date != "" {
		if t, err := time.Parse(time.RFC3339, record.Date); err == nil {
			attempt.CreatedAt = t
		}
	}
	return attempt, nil
}

func ConvertToUserProgress(record *dbEntity.UserProgressRecord) (httpEntity.UserProgress, error) {
	achievements := []string{}
	if record.Achievements != "" {
		if err := json.Unmarshal([]byte(record.Achievements), &achievements); err != nil {
			return httpEntity.UserProgress{}, err
		}
	}

	return httpEntity.UserProgress{
		Level:            record.Level,
		Experience:       record.Experience,
		ExperienceToNext: record.ExperienceToNext,
		Title:            record.Title,
		CompletedQuests:  record.CompletedQuests,
		TotalScore:       record.TotalScore,
		AverageScore:     record.AverageScore,
		Streak:           record.Streak,
		MaxStreak:        record.MaxStreak,
		Achievements:     achievements,
	}, nil
}

func ConvertToUserProgressRecord(progress httpEntity.UserProgress) (dbEntity.UserProgressRecord, error) {
	achievements := progress.Achievements
	if achievements == nil {
		achievements = []string{}
	}
	encoded, err := json.Marshal(achievements)
	if err != nil {
		return dbEntity.UserProgressRecord{}, err
	}

	return dbEntity.UserProgressRecord{
		ID:               dbEntity.UserProgressRecordID,
		Level:            progress.Level,
		Experience:       progress.Experience,
		ExperienceToNext: progress.ExperienceToNext,
		Title:            progress.Title,
		CompletedQuests:  progress.CompletedQuests,
		TotalScore:       progress.TotalScore,
		AverageScore:     progress.AverageScore,
		Streak:           progress.Streak,
		MaxStreak:        progress.MaxStreak,
		Achievements:     string(encoded),
	}, nil
}
