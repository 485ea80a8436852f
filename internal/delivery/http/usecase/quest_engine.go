package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
	"github.com/evandrarf/promptquest-be/internal/delivery/http/repository"
	dbEntity "github.com/evandrarf/promptquest-be/internal/entity"
	"github.com/evandrarf/promptquest-be/internal/pkg/catalog"
	"github.com/evandrarf/promptquest-be/internal/pkg/mapper"
	"github.com/evandrarf/promptquest-be/internal/pkg/progression"
)

const (
	DefaultSessionSize   = 3
	DefaultAdvisoryLimit = 500
	DefaultRecentLimit   = 5
)

type QuestUsecase interface {
	ListQuests(ctx context.Context, level int) ([]entity.Quest, error)
	GetQuest(ctx context.Context, questID string) (*entity.Quest, error)
	StartSession(ctx context.Context, size int) (*entity.SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*entity.SessionView, error)
	Submit(ctx context.Context, sessionID string, prompt string) (*entity.SubmitPromptResponse, error)
	RevealHint(ctx context.Context, sessionID string) (*entity.SessionView, error)
	Restart(ctx context.Context, sessionID string) (*entity.SessionView, error)
	Abort(ctx context.Context, sessionID string) (*entity.SessionView, error)
	Acknowledge(ctx context.Context, sessionID string) (*entity.SessionResult, error)
	GetProgress(ctx context.Context) entity.UserProgress
	Library(ctx context.Context, term string) ([]entity.PromptRecord, error)
	LibrarySize(ctx context.Context) (int64, error)
	RecentActivity(ctx context.Context, limit int) ([]entity.PromptRecord, error)
}

type QuestConfig struct {
	DB            *gorm.DB
	Catalog       *catalog.Catalog
	Tracker       *progression.Tracker
	Repository    repository.PromptAttemptRepository
	Log           *logrus.Logger
	Rand          *rand.Rand
	Clock         func() time.Time
	SessionSize   int
	AdvisoryLimit int
	RecentLimit   int
}

var _ AttemptRecorder = (*questUsecase)(nil)

type questUsecase struct {
	cfg QuestConfig

	rndMu sync.Mutex

	mu       sync.RWMutex
	sessions map[string]*QuestSession
}

func NewQuestUsecase(cfg QuestConfig) QuestUsecase {
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	if cfg.Tracker == nil {
		cfg.Tracker = progression.NewTracker(nil, cfg.Log)
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.SessionSize <= 0 {
		cfg.SessionSize = DefaultSessionSize
	}
	if cfg.AdvisoryLimit <= 0 {
		cfg.AdvisoryLimit = DefaultAdvisoryLimit
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = DefaultRecentLimit
	}

	return &questUsecase{
		cfg:      cfg,
		sessions: make(map[string]*QuestSession),
	}
}

func (u *questUsecase) ListQuests(ctx context.Context, level int) ([]entity.Quest, error) {
	if level <= 0 {
		level = u.cfg.Tracker.Current().Level
	}
	return u.cfg.Catalog.ListEligible(level), nil
}

func (u *questUsecase) GetQuest(ctx context.Context, questID string) (*entity.Quest, error) {
	quest, ok := u.cfg.Catalog.Get(questID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuestNotFound, questID)
	}
	return &quest, nil
}

func (u *questUsecase) StartSession(ctx context.Context, size int) (*entity.SessionView, error) {
	if size <= 0 {
		size = u.cfg.SessionSize
	}

	session := NewQuestSession(uuid.NewString(), size, u, u.cfg.Clock)
	if err := u.draw(session); err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.sessions[session.ID()] = session
	u.mu.Unlock()

	u.cfg.Log.WithFields(logrus.Fields{
		"session_id": session.ID(),
		"size":       size,
	}).Info("quest session started")

	view := session.Snapshot()
	return &view, nil
}

func (u *questUsecase) GetSession(ctx context.Context, sessionID string) (*entity.SessionView, error) {
	session, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	view := session.Snapshot()
	return &view, nil
}

func (u *questUsecase) Submit(ctx context.Context, sessionID string, prompt string) (*entity.SubmitPromptResponse, error) {
	session, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	outcome, err := session.Submit(ctx, prompt)
	if err != nil {
		return nil, err
	}

	res := &entity.SubmitPromptResponse{
		Result:               outcome.Item.Result,
		ExceedsAdvisoryLimit: utf8.RuneCountInString(strings.TrimSpace(prompt)) > u.cfg.AdvisoryLimit,
	}

	if outcome.Completed {
		res.Completion = u.complete(ctx, session, outcome)
	}

	res.Session = session.Snapshot()
	return res, nil
}

func (u *questUsecase) RevealHint(ctx context.Context, sessionID string) (*entity.SessionView, error) {
	session, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	hints, err := session.RevealHint()
	if err != nil {
		return nil, err
	}
	u.cfg.Log.WithFields(logrus.Fields{
		"session_id": sessionID,
		"revealed":   len(hints),
	}).Debug("quest hint revealed")

	view := session.Snapshot()
	return &view, nil
}

// complete applies a finished session to the user's progress. Storage
// failures are reported as a warning; the computed result is still returned.
func (u *questUsecase) complete(ctx context.Context, session *QuestSession, outcome SubmitOutcome) *entity.CompletionInfo {
	result := outcome.Result
	award := progression.ExperienceAward(result.AverageScore, len(result.Items))

	var warnings []string
	if outcome.PersistErr != nil {
		u.cfg.Log.WithError(outcome.PersistErr).WithField("session_id", session.ID()).Warn("failed to save prompt attempts")
		warnings = append(warnings, "프롬프트 기록을 저장하지 못했습니다")
	}

	completion, err := u.cfg.Tracker.Complete(ctx, result.AverageScore, award)
	if err != nil {
		u.cfg.Log.WithError(fmt.Errorf("%w: %v", ErrPersistenceFailure, err)).Warn("failed to save progress")
		warnings = append(warnings, "진행 상황을 저장하지 못했습니다")
	}

	u.cfg.Log.WithFields(logrus.Fields{
		"session_id":    session.ID(),
		"total_score":   result.TotalScore,
		"average_score": result.AverageScore,
		"experience":    award,
	}).Info("quest session completed")

	events := completion.Events
	if events == nil {
		events = []entity.Event{}
	}

	return &entity.CompletionInfo{
		SessionResult:      *result,
		ExperienceAwarded:  award,
		Progress:           completion.Progress,
		Events:             events,
		PersistenceWarning: strings.Join(warnings, "; "),
	}
}

// Restart discards the current batch and draws a new one ("start over").
func (u *questUsecase) Restart(ctx context.Context, sessionID string) (*entity.SessionView, error) {
	session, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	session.Abort()
	if err := u.draw(session); err != nil {
		return nil, err
	}

	view := session.Snapshot()
	return &view, nil
}

func (u *questUsecase) Abort(ctx context.Context, sessionID string) (*entity.SessionView, error) {
	session, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	session.Abort()
	u.cfg.Log.WithField("session_id", sessionID).Info("quest session aborted")

	view := session.Snapshot()
	return &view, nil
}

func (u *questUsecase) Acknowledge(ctx context.Context, sessionID string) (*entity.SessionResult, error) {
	session, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	result, err := session.Acknowledge()
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	delete(u.sessions, sessionID)
	u.mu.Unlock()

	return result, nil
}

func (u *questUsecase) GetProgress(ctx context.Context) entity.UserProgress {
	return u.cfg.Tracker.Current()
}

func (u *questUsecase) Library(ctx context.Context, term string) ([]entity.PromptRecord, error) {
	if u.cfg.Repository == nil {
		return []entity.PromptRecord{}, nil
	}
	attempts, err := u.cfg.Repository.Search(u.db(ctx), term)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return mapper.ConvertToPromptRecords(attempts)
}

// LibrarySize counts every stored attempt regardless of any search term.
func (u *questUsecase) LibrarySize(ctx context.Context) (int64, error) {
	if u.cfg.Repository == nil {
		return 0, nil
	}
	n, err := u.cfg.Repository.Count(u.db(ctx))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return n, nil
}

func (u *questUsecase) RecentActivity(ctx context.Context, limit int) ([]entity.PromptRecord, error) {
	if u.cfg.Repository == nil {
		return []entity.PromptRecord{}, nil
	}
	if limit <= 0 {
		limit = u.cfg.RecentLimit
	}
	attempts, err := u.cfg.Repository.FindRecent(u.db(ctx), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return mapper.ConvertToPromptRecords(attempts)
}

// AppendAttempts stores a completed session's attempts in one transaction.
func (u *questUsecase) AppendAttempts(ctx context.Context, sessionID string, records []entity.PromptRecord) error {
	if u.cfg.Repository == nil {
		return nil
	}

	attempts := make([]dbEntity.PromptAttempt, 0, len(records))
	for _, r := range records {
		a, err := mapper.ConvertToPromptAttempt(r, sessionID)
		if err != nil {
			return err
		}
		attempts = append(attempts, a)
	}
	return u.cfg.Repository.AppendBatch(u.db(ctx), attempts)
}

func (u *questUsecase) draw(session *QuestSession) error {
	level := u.cfg.Tracker.Current().Level

	u.rndMu.Lock()
	quests, err := u.cfg.Catalog.Draw(level, session.Size(), u.cfg.Rand)
	u.rndMu.Unlock()

	if err != nil {
		var exhausted *catalog.ExhaustedError
		if errors.As(err, &exhausted) {
			u.cfg.Log.WithFields(logrus.Fields{
				"level":     exhausted.Level,
				"requested": exhausted.Requested,
				"available": exhausted.Available,
			}).Warn("not enough eligible quests")
		}
		return err
	}
	return session.Select(quests)
}

func (u *questUsecase) session(id string) (*QuestSession, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	session, ok := u.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

func (u *questUsecase) db(ctx context.Context) *gorm.DB {
	if u.cfg.DB == nil {
		return nil
	}
	return u.cfg.DB.WithContext(ctx)
}
