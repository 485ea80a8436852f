package entity

import (
	"strings"
)

// Difficulty is the three-tier ordinal shared by every quest in the catalog.
type Difficulty int

const (
	DifficultyUnknown Difficulty = iota
	DifficultyTier1
	DifficultyTier2
	DifficultyTier3
)

var difficultyNames = map[Difficulty]string{
	DifficultyTier1: "easy",
	DifficultyTier2: "medium",
	DifficultyTier3: "hard",
}

// ParseDifficulty accepts easy/medium/hard, beginner/intermediate/advanced
// and the Korean labels used by the UI.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "beginner", "초급", "1", "tier1":
		return DifficultyTier1
	case "medium", "intermediate", "중급", "2", "tier2":
		return DifficultyTier2
	case "hard", "advanced", "고급", "3", "tier3":
		return DifficultyTier3
	default:
		return DifficultyUnknown
	}
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return "unknown"
}

func (d Difficulty) Valid() bool {
	return d >= DifficultyTier1 && d <= DifficultyTier3
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	*d = ParseDifficulty(string(text))
	return nil
}

// EvaluationCriteria weights the four scoring dimensions of a problem.
type EvaluationCriteria struct {
	Clarity     int `json:"clarity" yaml:"clarity"`
	Specificity int `json:"specificity" yaml:"specificity"`
	Context     int `json:"context" yaml:"context"`
	Creativity  int `json:"creativity" yaml:"creativity"`
}

// Problem is a sub-challenge of a quest with its own rubric and reference answer.
type Problem struct {
	Question           string             `json:"question" yaml:"question"`
	Context            string             `json:"context" yaml:"context"`
	Hints              []string           `json:"hints,omitempty" yaml:"hints"`
	EvaluationCriteria EvaluationCriteria `json:"evaluationCriteria" yaml:"evaluation_criteria"`
	SampleAnswer       string             `json:"sampleAnswer,omitempty" yaml:"sample_answer"`
	MaxScore           int                `json:"maxScore" yaml:"max_score"`
}

// Quest is an immutable catalog scenario.
type Quest struct {
	ID            string     `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	Description   string     `json:"description" yaml:"description"`
	Scenario      string     `json:"scenario" yaml:"scenario"`
	Difficulty    Difficulty `json:"difficulty" yaml:"difficulty"`
	Category      string     `json:"category" yaml:"category"`
	RequiredLevel int        `json:"requiredLevel" yaml:"required_level"`
	Problems      []Problem  `json:"problems,omitempty" yaml:"problems"`
}

// ScoringMaterial is the quest text shown next to the problem. A prompt that
// copies it is scored as a copy.
func (q Quest) ScoringMaterial() []string {
	material := make([]string, 0, 2)
	for _, text := range []string{q.Scenario, q.Description} {
		if strings.TrimSpace(text) != "" {
			material = append(material, text)
		}
	}
	return material
}

// ScoringProblem returns the problem a session submission for this quest is
// scored against. Quests without explicit problems score against their own
// description and scenario.
func (q Quest) ScoringProblem() Problem {
	if len(q.Problems) > 0 {
		return q.Problems[0]
	}
	return Problem{
		Question: q.Description,
		Context:  q.Scenario,
		MaxScore: 100,
	}
}

// ScoreResult is the structured feedback for a single submission.
type ScoreResult struct {
	Score             int      `json:"score"`
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
	RecommendedPrompt string   `json:"recommendedPrompt"`
	Explanation       string   `json:"explanation"`
	Headline          string   `json:"headline"`
	Band              string   `json:"band"`
}

// SessionItem is one (quest, submission, result) triple of a session.
type SessionItem struct {
	Quest  Quest       `json:"quest"`
	Prompt string      `json:"prompt"`
	Result ScoreResult `json:"result"`
}

// SessionResult aggregates the scored items of a completed session.
type SessionResult struct {
	Items        []SessionItem `json:"items"`
	TotalScore   int           `json:"totalScore"`
	AverageScore int           `json:"averageScore"`
}

// UserProgress is the persistent progression state of the single local user.
type UserProgress struct {
	Level            int      `json:"level"`
	Experience       int      `json:"experience"`
	ExperienceToNext int      `json:"experienceToNext"`
	Title            string   `json:"title"`
	CompletedQuests  int      `json:"completedQuests"`
	TotalScore       int      `json:"totalScore"`
	AverageScore     int      `json:"averageScore"`
	Streak           int      `json:"streak"`
	MaxStreak        int      `json:"maxStreak"`
	Achievements     []string `json:"achievements"`
}

// HasAchievement reports whether title is already unlocked.
func (p UserProgress) HasAchievement(title string) bool {
	for _, a := range p.Achievements {
		if a == title {
			return true
		}
	}
	return false
}

// PromptRecord is one entry of the append-only prompt library.
type PromptRecord struct {
	ID         string      `json:"id"`
	QuestID    string      `json:"questId"`
	QuestTitle string      `json:"questTitle"`
	Prompt     string      `json:"prompt"`
	Score      int         `json:"score"`
	Date       string      `json:"date"`
	Feedback   ScoreResult `json:"feedback"`
}
