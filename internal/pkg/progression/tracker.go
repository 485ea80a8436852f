package progression

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
)

var (
	ErrSaveProgress = errors.New("failed to save progress")
	// ErrCorruptProgress marks a stored record that exists but cannot be
	// decoded. Stores wrap their decode failures with it.
	ErrCorruptProgress = errors.New("stored progress is corrupt")
	// ErrProgressNotLoaded is returned by Complete while the stored record
	// could not be read; saving then would overwrite it.
	ErrProgressNotLoaded = errors.New("stored progress has not been loaded")
)

// ProgressStore persists the single user progress document. Load returns
// (nil, nil) when nothing has been stored yet.
type ProgressStore interface {
	Load(ctx context.Context) (*entity.UserProgress, error)
	Save(ctx context.Context, progress entity.UserProgress) error
}

// Completion is the outcome of applying one finished session.
type Completion struct {
	Previous entity.UserProgress
	Progress entity.UserProgress
	Events   []entity.Event
}

// Tracker owns the process-wide progress. Every update goes through Complete,
// which applies the reducer under a single lock.
type Tracker struct {
	mu       sync.Mutex
	store    ProgressStore
	log      *logrus.Logger
	progress entity.UserProgress
	// loaded is false until the store has been read once. Saves are
	// withheld until then.
	loaded bool
}

func NewTracker(store ProgressStore, log *logrus.Logger) *Tracker {
	if log == nil {
		log = logrus.New()
	}
	return &Tracker{
		store:    store,
		log:      log,
		progress: NewProgress(),
		loaded:   store == nil,
	}
}

// Load replaces the in-memory progress with the stored one, if any. A
// corrupt record is reported but still counts as loaded, so the next save
// replaces it. Any other failure leaves the tracker unloaded.
func (t *Tracker) Load(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load(ctx)
}

func (t *Tracker) load(ctx context.Context) error {
	if t.store == nil {
		t.loaded = true
		return nil
	}

	stored, err := t.store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrCorruptProgress) {
			t.loaded = true
		}
		return fmt.Errorf("failed to load progress: %w", err)
	}

	t.loaded = true
	if stored != nil {
		t.progress = normalize(*stored)
	}
	return nil
}

// Loaded reports whether the stored progress has been read.
func (t *Tracker) Loaded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loaded
}

func (t *Tracker) Current() entity.UserProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return cloneProgress(t.progress)
}

// Complete applies a finished session. The in-memory progress is always
// advanced; a failed save is reported through an error wrapping ErrSaveProgress.
func (t *Tracker) Complete(ctx context.Context, sessionScore, award int) (Completion, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var loadErr error
	if !t.loaded {
		if loadErr = t.load(ctx); loadErr != nil {
			t.log.WithError(loadErr).Warn("progress still not loaded, completion will not be saved")
		}
	}

	prev := cloneProgress(t.progress)
	next, events := Apply(t.progress, sessionScore, award)
	t.progress = next

	out := Completion{
		Previous: prev,
		Progress: cloneProgress(next),
		Events:   events,
	}

	t.log.WithFields(logrus.Fields{
		"level":      next.Level,
		"experience": next.Experience,
		"completed":  next.CompletedQuests,
		"streak":     next.Streak,
	}).Info("progress updated")

	for _, e := range events {
		switch e.Type {
		case entity.EventLevelUp:
			t.log.WithField("level", e.Level).Info("level up")
		case entity.EventAchievementsUnlocked:
			t.log.WithField("achievements", e.Achievements).Info("achievements unlocked")
		}
	}

	if t.store == nil {
		return out, nil
	}
	if !t.loaded {
		return out, fmt.Errorf("%w: %w: %v", ErrSaveProgress, ErrProgressNotLoaded, loadErr)
	}
	if err := t.store.Save(ctx, next); err != nil {
		t.log.WithError(err).Warn("failed to save progress")
		return out, fmt.Errorf("%w: %v", ErrSaveProgress, err)
	}
	return out, nil
}

func normalize(p entity.UserProgress) entity.UserProgress {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.ExperienceToNext <= 0 {
		p.ExperienceToNext = StartingExperienceToNext
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	p.Title = TitleFor(p.Level)
	return p
}

func cloneProgress(p entity.UserProgress) entity.UserProgress {
	p.Achievements = append([]string{}, p.Achievements...)
	return p
}
