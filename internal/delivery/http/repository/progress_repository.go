package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	httpEntity "github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
	"github.com/evandrarf/promptquest-be/internal/entity"
	"github.com/evandrarf/promptquest-be/internal/pkg/mapper"
	"github.com/evandrarf/promptquest-be/internal/pkg/progression"
)

const DefaultProgressKey = "promptquest:progress"

type (
	// ProgressRepository stores the single local user's progress. Load returns
	// (nil, nil) when nothing has been saved yet.
	ProgressRepository interface {
		Load(ctx context.Context) (*httpEntity.UserProgress, error)
		Save(ctx context.Context, progress httpEntity.UserProgress) error
	}

	progressRepository struct {
		db *gorm.DB
	}

	redisProgressRepository struct {
		client *redis.Client
		key    string
	}
)

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Load(ctx context.Context) (*httpEntity.UserProgress, error) {
	var record entity.UserProgressRecord
	err := r.db.WithContext(ctx).Where("id = ?", entity.UserProgressRecordID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	progress, err := mapper.ConvertToUserProgress(&record)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", progression.ErrCorruptProgress, err)
	}
	return &progress, nil
}

func (r *progressRepository) Save(ctx context.Context, progress httpEntity.UserProgress) error {
	record, err := mapper.ConvertToUserProgressRecord(progress)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"level", "experience", "experience_to_next", "title",
			"completed_quests", "total_score", "average_score",
			"streak", "max_streak", "achievements", "updated_at",
		}),
	}).Create(&record).Error
}

func NewRedisProgressRepository(client *redis.Client, key string) ProgressRepository {
	if key == "" {
		key = DefaultProgressKey
	}
	return &redisProgressRepository{client: client, key: key}
}

func (r *redisProgressRepository) Load(ctx context.Context) (*httpEntity.UserProgress, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read progress from redis: %w", err)
	}

	var progress httpEntity.UserProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, fmt.Errorf("%w: %v", progression.ErrCorruptProgress, err)
	}
	if progress.Achievements == nil {
		progress.Achievements = []string{}
	}
	return &progress, nil
}

func (r *redisProgressRepository) Save(ctx context.Context, progress httpEntity.UserProgress) error {
	if progress.Achievements == nil {
		progress.Achievements = []string{}
	}
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write progress to redis: %w", err)
	}
	return nil
}
