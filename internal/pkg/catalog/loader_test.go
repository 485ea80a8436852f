package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
)

const sampleCatalog = `
quests:
  - id: yaml-1
    title: 발표 불안 학생
    description: 발표를 두려워하는 학생을 돕고 싶습니다
    scenario: 발표 시간만 되면 얼어붙는 학생이 있습니다
    difficulty: beginner
    category: 학생 지원
    problems:
      - question: 발표를 두려워하는 학생을 어떻게 도울까요?
        context: 초등학교 4학년 국어 발표 수업
        hints:
          - 학생의 상황을 구체적으로 적어보세요
          - 단계별 방법을 요청해보세요
        evaluation_criteria:
          clarity: 30
          specificity: 30
          context: 20
          creativity: 20
        sample_answer: 초등학교 4학년 학생의 발표 불안을 줄이는 3단계 방법을 제안해주세요.
  - id: yaml-2
    title: 독서 동기
    difficulty: intermediate
    required_level: 2
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", c.Len())
	}

	q, ok := c.Get("yaml-1")
	if !ok {
		t.Fatal("yaml-1 not found")
	}
	if q.Difficulty != entity.DifficultyTier1 {
		t.Errorf("Difficulty = %v; want easy", q.Difficulty)
	}
	if q.RequiredLevel != 1 {
		t.Errorf("RequiredLevel = %d; want 1", q.RequiredLevel)
	}
	if len(q.Problems) != 1 {
		t.Fatalf("Problems = %d; want 1", len(q.Problems))
	}
	p := q.Problems[0]
	if len(p.Hints) != 2 {
		t.Errorf("Hints = %d; want 2", len(p.Hints))
	}
	if p.EvaluationCriteria.Clarity != 30 {
		t.Errorf("Clarity = %d; want 30", p.EvaluationCriteria.Clarity)
	}
	if p.MaxScore != DefaultMaxScore {
		t.Errorf("MaxScore = %d; want %d", p.MaxScore, DefaultMaxScore)
	}

	q2, _ := c.Get("yaml-2")
	if q2.RequiredLevel != 2 {
		t.Errorf("yaml-2 RequiredLevel = %d; want 2", q2.RequiredLevel)
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse([]byte("quests: []")); err == nil {
		t.Error("Parse() error = nil; want error for empty catalog")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(c.ListEligible(1)) != 1 {
		t.Errorf("ListEligible(1) = %d quests; want 1", len(c.ListEligible(1)))
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile() error = nil; want error")
	}
}
