package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
	"github.com/evandrarf/promptquest-be/internal/pkg/feedback"
	"github.com/evandrarf/promptquest-be/internal/pkg/progression"
	"github.com/evandrarf/promptquest-be/internal/pkg/scorer"
)

type SessionState string

const (
	StateSelecting  SessionState = "selecting"
	StateInProgress SessionState = "in_progress"
	StateCompleted  SessionState = "completed"
	StateEnded      SessionState = "ended"
)

var (
	ErrInvalidSubmission  = errors.New("prompt must not be empty")
	ErrSubmissionInFlight = errors.New("previous submission is still being evaluated")
	ErrInvalidTransition  = errors.New("invalid session transition")
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrSessionNotFound    = errors.New("session not found")
	ErrQuestNotFound      = errors.New("quest not found")
	ErrNoMoreHints        = errors.New("every hint of this quest is already revealed")
)

// AttemptRecorder is the write side of the prompt library.
type AttemptRecorder interface {
	AppendAttempts(ctx context.Context, sessionID string, records []entity.PromptRecord) error
}

// SubmitOutcome describes one accepted submission. Result is set once the
// session is completed; PersistErr reports attempts that could not be saved.
type SubmitOutcome struct {
	Index      int
	Item       entity.SessionItem
	Completed  bool
	Result     *entity.SessionResult
	PersistErr error
}

// QuestSession walks a fixed batch of quests: selecting, in_progress(i),
// completed, ended. Abort returns it to selecting from any state.
type QuestSession struct {
	id       string
	size     int
	recorder AttemptRecorder
	clock    func() time.Time

	// submitting rejects re-entrant Submit calls instead of queueing them.
	submitting sync.Mutex

	mu      sync.Mutex
	state   SessionState
	quests  []entity.Quest
	items   []entity.SessionItem
	records []entity.PromptRecord
	total   int
	result  *entity.SessionResult

	// revealed counts the hints disclosed for the current quest.
	revealed int
}

func NewQuestSession(id string, size int, recorder AttemptRecorder, clock func() time.Time) *QuestSession {
	if size < 1 {
		size = 1
	}
	if clock == nil {
		clock = time.Now
	}
	return &QuestSession{
		id:       id,
		size:     size,
		recorder: recorder,
		clock:    clock,
		state:    StateSelecting,
	}
}

func (s *QuestSession) ID() string {
	return s.id
}

func (s *QuestSession) Size() int {
	return s.size
}

func (s *QuestSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Select binds the session to exactly Size quests and starts at the first one.
func (s *QuestSession) Select(quests []entity.Quest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSelecting {
		return fmt.Errorf("%w: select in state %s", ErrInvalidTransition, s.state)
	}
	if len(quests) != s.size {
		return fmt.Errorf("%w: session needs %d quests, got %d", ErrInvalidTransition, s.size, len(quests))
	}

	s.quests = append([]entity.Quest(nil), quests...)
	s.items = make([]entity.SessionItem, 0, s.size)
	s.records = make([]entity.PromptRecord, 0, s.size)
	s.total = 0
	s.result = nil
	s.revealed = 0
	s.state = StateInProgress
	return nil
}

// Submit scores text against the current quest. Empty text is rejected
// without changing state. The last submission completes the session and
// records every attempt of the session in order.
func (s *QuestSession) Submit(ctx context.Context, text string) (SubmitOutcome, error) {
	if !s.submitting.TryLock() {
		return SubmitOutcome{}, ErrSubmissionInFlight
	}
	defer s.submitting.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return SubmitOutcome{}, fmt.Errorf("%w: submit in state %s", ErrInvalidTransition, s.state)
	}

	prompt := strings.TrimSpace(text)
	if prompt == "" {
		return SubmitOutcome{}, ErrInvalidSubmission
	}

	index := len(s.items)
	quest := s.quests[index]
	problem := quest.ScoringProblem()

	score := scorer.Score(prompt, problem, quest.ScoringMaterial()...)
	item := entity.SessionItem{
		Quest:  quest,
		Prompt: prompt,
		Result: feedback.Compose(prompt, score, problem),
	}

	s.items = append(s.items, item)
	s.records = append(s.records, entity.PromptRecord{
		ID:         uuid.NewString(),
		QuestID:    quest.ID,
		QuestTitle: quest.Title,
		Prompt:     prompt,
		Score:      score,
		Date:       s.clock().UTC().Format(time.RFC3339),
		Feedback:   item.Result,
	})
	s.total += score
	s.revealed = 0

	out := SubmitOutcome{Index: index, Item: item}
	if len(s.items) < s.size {
		return out, nil
	}

	result := &entity.SessionResult{
		Items:        append([]entity.SessionItem(nil), s.items...),
		TotalScore:   s.total,
		AverageScore: progression.RoundAverage(s.total, len(s.items)),
	}
	s.result = result
	s.state = StateCompleted

	out.Completed = true
	out.Result = result

	if s.recorder != nil {
		records := append([]entity.PromptRecord(nil), s.records...)
		if err := s.recorder.AppendAttempts(ctx, s.id, records); err != nil {
			out.PersistErr = fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
		}
	}
	return out, nil
}

// Acknowledge ends a completed session and hands back its result.
func (s *QuestSession) Acknowledge() (*entity.SessionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCompleted {
		return nil, fmt.Errorf("%w: acknowledge in state %s", ErrInvalidTransition, s.state)
	}
	s.state = StateEnded
	return s.result, nil
}

// Abort discards the current batch and returns to selecting.
func (s *QuestSession) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateSelecting
	s.quests = nil
	s.items = nil
	s.records = nil
	s.total = 0
	s.result = nil
	s.revealed = 0
}

// RevealHint discloses one more hint of the current quest and returns every
// hint revealed so far. Hints reset when the quest is answered.
func (s *QuestSession) RevealHint() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return nil, fmt.Errorf("%w: reveal hint in state %s", ErrInvalidTransition, s.state)
	}

	hints := s.quests[len(s.items)].ScoringProblem().Hints
	if s.revealed >= len(hints) {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoMoreHints, s.revealed, len(hints))
	}
	s.revealed++
	return append([]string(nil), hints[:s.revealed]...), nil
}

func (s *QuestSession) Snapshot() entity.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := entity.SessionView{
		ID:           s.id,
		State:        string(s.state),
		Size:         s.size,
		CurrentIndex: len(s.items),
		Quests:       withoutHints(s.quests),
		Hints:        []string{},
		Result:       s.result,
	}
	if s.state == StateInProgress && len(s.items) < len(s.quests) {
		current := view.Quests[len(s.items)]
		view.CurrentQuest = &current
		hints := s.quests[len(s.items)].ScoringProblem().Hints
		view.Hints = append(view.Hints, hints[:s.revealed]...)
	}
	return view
}

// withoutHints copies quests with their problem hints removed so a snapshot
// only carries the hints revealed through RevealHint.
func withoutHints(quests []entity.Quest) []entity.Quest {
	out := make([]entity.Quest, len(quests))
	for i, q := range quests {
		if len(q.Problems) > 0 {
			problems := make([]entity.Problem, len(q.Problems))
			for j, p := range q.Problems {
				p.Hints = nil
				problems[j] = p
			}
			q.Problems = problems
		}
		out[i] = q
	}
	return out
}
