package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
)

const DefaultMaxScore = 100

var ErrCatalogExhausted = errors.New("catalog exhausted")

// ExhaustedError reports that fewer quests than requested are eligible.
type ExhaustedError struct {
	Level     int
	Requested int
	Available int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("catalog exhausted: %d quest(s) eligible at level %d, %d required", e.Available, e.Level, e.Requested)
}

func (e *ExhaustedError) Unwrap() error {
	return ErrCatalogExhausted
}

// Catalog is an immutable, ordered collection of quests.
type Catalog struct {
	quests []entity.Quest
	byID   map[string]int
}

func New(quests []entity.Quest) (*Catalog, error) {
	c := &Catalog{
		quests: make([]entity.Quest, 0, len(quests)),
		byID:   make(map[string]int, len(quests)),
	}

	for _, q := range quests {
		q.ID = strings.TrimSpace(q.ID)
		if q.ID == "" {
			return nil, fmt.Errorf("quest id is required")
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate quest id: %s", q.ID)
		}
		if strings.TrimSpace(q.Title) == "" {
			return nil, fmt.Errorf("quest %s: title is required", q.ID)
		}
		if !q.Difficulty.Valid() {
			return nil, fmt.Errorf("quest %s: invalid difficulty", q.ID)
		}
		if q.RequiredLevel <= 0 {
			q.RequiredLevel = RequiredLevelFor(q.Difficulty)
		}

		problems := make([]entity.Problem, len(q.Problems))
		for i, p := range q.Problems {
			if p.MaxScore <= 0 {
				p.MaxScore = DefaultMaxScore
			}
			p.Hints = append([]string(nil), p.Hints...)
			problems[i] = p
		}
		q.Problems = problems

		c.byID[q.ID] = len(c.quests)
		c.quests = append(c.quests, q)
	}

	return c, nil
}

// Default returns the built-in classroom scenarios.
func Default() *Catalog {
	c, err := New(defaultQuests)
	if err != nil {
		panic(fmt.Errorf("built-in catalog is invalid: %w", err))
	}
	return c
}

// Len returns the number of quests in the catalog.
func (c *Catalog) Len() int {
	return len(c.quests)
}

// All returns every quest in catalog order.
func (c *Catalog) All() []entity.Quest {
	return clone(c.quests)
}

func (c *Catalog) Get(id string) (entity.Quest, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entity.Quest{}, false
	}
	return c.quests[i], true
}

// ListEligible returns every quest whose required level is at most level,
// in catalog order.
func (c *Catalog) ListEligible(level int) []entity.Quest {
	eligible := make([]entity.Quest, 0, len(c.quests))
	for _, q := range c.quests {
		if q.RequiredLevel <= level {
			eligible = append(eligible, q)
		}
	}
	return eligible
}

// Draw samples n distinct eligible quests for a session at the given level.
func (c *Catalog) Draw(level, n int, rnd *rand.Rand) ([]entity.Quest, error) {
	eligible := c.ListEligible(level)
	if len(eligible) < n {
		return nil, &ExhaustedError{Level: level, Requested: n, Available: len(eligible)}
	}
	return SampleRandom(eligible, n, rnd), nil
}

// SampleRandom picks n quests uniformly at random without replacement. When
// fewer than n are available every quest is returned in random order.
func SampleRandom(eligible []entity.Quest, n int, rnd *rand.Rand) []entity.Quest {
	if n <= 0 || len(eligible) == 0 {
		return []entity.Quest{}
	}
	if n > len(eligible) {
		n = len(eligible)
	}

	pool := clone(eligible)
	for i := 0; i < n; i++ {
		j := i + rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// EligibleTiers maps a user level onto the difficulty tiers it may attempt.
func EligibleTiers(level int) []entity.Difficulty {
	switch {
	case level <= 3:
		return []entity.Difficulty{entity.DifficultyTier1}
	case level <= 7:
		return []entity.Difficulty{entity.DifficultyTier1, entity.DifficultyTier2}
	default:
		return []entity.Difficulty{entity.DifficultyTier1, entity.DifficultyTier2, entity.DifficultyTier3}
	}
}

// RequiredLevelFor is the lowest level whose tier band includes d.
func RequiredLevelFor(d entity.Difficulty) int {
	switch d {
	case entity.DifficultyTier2:
		return 4
	case entity.DifficultyTier3:
		return 8
	default:
		return 1
	}
}

func clone(quests []entity.Quest) []entity.Quest {
	out := make([]entity.Quest, len(quests))
	copy(out, quests)
	return out
}
