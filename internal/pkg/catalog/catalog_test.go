package catalog

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
)

func testQuests() []entity.Quest {
	return []entity.Quest{
		{ID: "a", Title: "A", Difficulty: entity.DifficultyTier1},
		{ID: "b", Title: "B", Difficulty: entity.DifficultyTier1},
		{ID: "c", Title: "C", Difficulty: entity.DifficultyTier2},
		{ID: "d", Title: "D", Difficulty: entity.DifficultyTier3},
		{ID: "e", Title: "E", Difficulty: entity.DifficultyTier2, RequiredLevel: 2},
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		quests []entity.Quest
	}{
		{"missing id", []entity.Quest{{Title: "x", Difficulty: entity.DifficultyTier1}}},
		{"missing title", []entity.Quest{{ID: "x", Difficulty: entity.DifficultyTier1}}},
		{"invalid difficulty", []entity.Quest{{ID: "x", Title: "x"}}},
		{"duplicate id", []entity.Quest{
			{ID: "x", Title: "x", Difficulty: entity.DifficultyTier1},
			{ID: "x", Title: "y", Difficulty: entity.DifficultyTier1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.quests); err == nil {
				t.Error("New() error = nil; want error")
			}
		})
	}
}

func TestNew_Normalizes(t *testing.T) {
	c, err := New([]entity.Quest{{
		ID:         "x",
		Title:      "x",
		Difficulty: entity.DifficultyTier3,
		Problems:   []entity.Problem{{Question: "q"}},
	}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	q, ok := c.Get("x")
	if !ok {
		t.Fatal("Get(x) not found")
	}
	if q.RequiredLevel != 8 {
		t.Errorf("RequiredLevel = %d; want 8", q.RequiredLevel)
	}
	if q.Problems[0].MaxScore != DefaultMaxScore {
		t.Errorf("MaxScore = %d; want %d", q.Problems[0].MaxScore, DefaultMaxScore)
	}
}

func TestListEligible(t *testing.T) {
	c, err := New(testQuests())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		level int
		want  []string
	}{
		{1, []string{"a", "b"}},
		{2, []string{"a", "b", "e"}},
		{4, []string{"a", "b", "c", "e"}},
		{8, []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		got := c.ListEligible(tt.level)
		if len(got) != len(tt.want) {
			t.Fatalf("ListEligible(%d) returned %d quests; want %d", tt.level, len(got), len(tt.want))
		}
		for i, q := range got {
			if q.ID != tt.want[i] {
				t.Errorf("ListEligible(%d)[%d] = %s; want %s", tt.level, i, q.ID, tt.want[i])
			}
		}
	}
}

func TestListEligible_AgreesWithTierBands(t *testing.T) {
	c := Default()
	for level := 1; level <= 10; level++ {
		allowed := make(map[entity.Difficulty]bool)
		for _, d := range EligibleTiers(level) {
			allowed[d] = true
		}
		for _, q := range c.ListEligible(level) {
			if !allowed[q.Difficulty] {
				t.Errorf("level %d: quest %s (%s) outside tier band", level, q.ID, q.Difficulty)
			}
		}
	}
}

func TestSampleRandom(t *testing.T) {
	quests := testQuests()
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		got := SampleRandom(quests, 3, rnd)
		if len(got) != 3 {
			t.Fatalf("SampleRandom() returned %d quests; want 3", len(got))
		}
		seen := make(map[string]bool)
		for _, q := range got {
			if seen[q.ID] {
				t.Fatalf("SampleRandom() returned duplicate quest %s", q.ID)
			}
			seen[q.ID] = true
		}
	}

	if got := SampleRandom(quests[:2], 3, rnd); len(got) != 2 {
		t.Errorf("SampleRandom() over 2 quests returned %d; want 2", len(got))
	}
	if got := SampleRandom(nil, 3, rnd); len(got) != 0 {
		t.Errorf("SampleRandom(nil) returned %d; want 0", len(got))
	}
}

func TestSampleRandom_DeterministicWithSeed(t *testing.T) {
	quests := testQuests()
	a := SampleRandom(quests, 3, rand.New(rand.NewSource(7)))
	b := SampleRandom(quests, 3, rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed produced different samples: %s vs %s", a[i].ID, b[i].ID)
		}
	}
}

func TestSampleRandom_DoesNotMutateInput(t *testing.T) {
	quests := testQuests()
	SampleRandom(quests, 3, rand.New(rand.NewSource(1)))
	want := []string{"a", "b", "c", "d", "e"}
	for i, q := range quests {
		if q.ID != want[i] {
			t.Fatalf("input reordered at %d: %s", i, q.ID)
		}
	}
}

func TestDraw_Exhausted(t *testing.T) {
	c, err := New(testQuests())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = c.Draw(1, 3, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrCatalogExhausted) {
		t.Fatalf("Draw() error = %v; want ErrCatalogExhausted", err)
	}

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Draw() error is not *ExhaustedError")
	}
	if exhausted.Available != 2 || exhausted.Requested != 3 {
		t.Errorf("ExhaustedError = %+v; want Available=2 Requested=3", exhausted)
	}
}

func TestDefault_HasFullSessionAtLevelOne(t *testing.T) {
	c := Default()
	quests, err := c.Draw(1, 3, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if len(quests) != 3 {
		t.Errorf("Draw() returned %d quests; want 3", len(quests))
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := map[string]entity.Difficulty{
		"easy":         entity.DifficultyTier1,
		"Beginner":     entity.DifficultyTier1,
		"medium":       entity.DifficultyTier2,
		"intermediate": entity.DifficultyTier2,
		"hard":         entity.DifficultyTier3,
		"advanced":     entity.DifficultyTier3,
		"고급":           entity.DifficultyTier3,
		"legendary":    entity.DifficultyUnknown,
	}
	for in, want := range tests {
		if got := entity.ParseDifficulty(in); got != want {
			t.Errorf("ParseDifficulty(%q) = %v; want %v", in, got, want)
		}
	}
}
