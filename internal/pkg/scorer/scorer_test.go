package scorer

import (
	"math"
	"strings"
	"testing"

	"github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
)

const wellFormed = "중학교 2학년 수학 수업에서 학습 동기가 낮은 학생들을 위한 3가지 학습 활동을 제안해주세요"

func testProblem() entity.Problem {
	return entity.Problem{
		Question: "수업 참여가 저조한 반을 어떻게 도울 수 있을까요?",
		Context:  "오후 시간마다 집중하지 못하는 반",
		MaxScore: 100,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"well formed", wellFormed, 100},
		{"trivial help request", "도와주세요", 0},
		{"empty", "", 0},
		{"whitespace", "   \n\t ", 0},
		{"domain only", "학생들에게 도움이 필요합니다", 40},
		{"long with every marker", wellFormed + " " + strings.Repeat("가", 60), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.text, testProblem()); got != tt.want {
				t.Errorf("Score(%q) = %d; want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestScore_LengthBonus(t *testing.T) {
	p := testProblem()
	p.MaxScore = 200

	tests := []struct {
		name    string
		padding int
		want    int
	}{
		{"no bonus", 0, 100},
		{"over 100 chars", 60, 110},
		{"over 200 chars", 160, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := wellFormed
			if tt.padding > 0 {
				text += " " + strings.Repeat("가", tt.padding)
			}
			if got := Score(text, p); got != tt.want {
				t.Errorf("Score() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestScore_CopyGuard(t *testing.T) {
	p := testProblem()

	if got := Score(p.Question, p); got != 0 {
		t.Errorf("Score(question) = %d; want 0", got)
	}
	if got := Score(p.Context, p); got != 0 {
		t.Errorf("Score(context) = %d; want 0", got)
	}

	res := Evaluate("  "+strings.ToUpper(p.Question)+"  ", p)
	if !res.Copied {
		t.Error("Evaluate(question with padding).Copied = false; want true")
	}
}

func TestScore_CopyGuardShortWords(t *testing.T) {
	p := entity.Problem{Question: "수업 반 돕기", Context: "a b c", MaxScore: 100}
	if got := Score(p.Question, p); got != 0 {
		t.Errorf("Score(question) = %d; want 0", got)
	}
	if got := Score(p.Context, p); got != 0 {
		t.Errorf("Score(context) = %d; want 0", got)
	}
}

func TestScore_CopyGuardMaterial(t *testing.T) {
	scenario := "주말 숙제를 안내해야 하는데 지난번 안내문이 너무 길어서 학생들이 제대로 읽지 않았습니다. 짧고 명확한 안내문을 만들고 싶습니다."
	problem := entity.Problem{Question: "숙제 안내문을 어떻게 쓰면 좋을까요?", Context: "초등학교 5학년 교실", MaxScore: 100}

	tests := []struct {
		name string
		text string
		want int
	}{
		{"verbatim scenario", scenario, 0},
		{"scenario with a request appended", scenario + " 3가지 방법을 제안해주세요", 0},
		{"own prompt", "초등학교 5학년 학생들을 위한 주말 숙제 안내문을 3줄로 작성해주세요", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(tt.text, problem, scenario)
			if res.Score != tt.want {
				t.Errorf("Evaluate() score = %d (material similarity %.2f); want %d", res.Score, res.MaterialSimilarity, tt.want)
			}
			if res.Copied != (tt.want == 0) {
				t.Errorf("Evaluate().Copied = %v", res.Copied)
			}
		})
	}

	if got := Score(scenario, problem); got == 0 {
		t.Errorf("Score() without material = 0; want the scenario scored on its own")
	}
}

func TestScore_Deterministic(t *testing.T) {
	p := testProblem()
	first := Score(wellFormed, p)
	for i := 0; i < 100; i++ {
		if got := Score(wellFormed, p); got != first {
			t.Fatalf("Score() call %d = %d; want %d", i, got, first)
		}
	}
}

func TestScore_Bounds(t *testing.T) {
	texts := []string{
		"",
		"hi",
		"please help",
		wellFormed,
		strings.Repeat(wellFormed+" ", 10),
		"Please create 5 creative game activities for a 3rd grade science lesson to boost student motivation and participation",
	}

	for _, maxScore := range []int{0, 30, 50, 100, 150} {
		p := testProblem()
		p.MaxScore = maxScore
		ceiling := maxScore
		if ceiling <= 0 {
			ceiling = defaultMaxScore
		}
		for _, text := range texts {
			got := Score(text, p)
			if got < 0 || got > ceiling {
				t.Errorf("Score(%q) with maxScore %d = %d; out of bounds", text, maxScore, got)
			}
		}
	}
}

func TestDetect(t *testing.T) {
	s := Detect(wellFormed)
	if !s.NonTrivial || !s.Request || !s.Domain || !s.GradeLevel || !s.Context || !s.Structure || !s.Quantifier {
		t.Errorf("Detect(wellFormed) = %+v; want every marker", s)
	}
	if s.Long || s.VeryLong {
		t.Errorf("Detect(wellFormed) = %+v; want no length bonus", s)
	}

	s = Detect("Suggest 3 ways to improve classroom learning")
	if !s.Request || !s.Domain || !s.Context || !s.Quantifier {
		t.Errorf("Detect(english) = %+v; want request, domain, context and quantifier", s)
	}
	if s.GradeLevel {
		t.Error("Detect(english).GradeLevel = true; want false")
	}

	s = Detect("  도와주세요  ")
	if s.Length != 5 {
		t.Errorf("Detect().Length = %d; want 5", s.Length)
	}
	if s.NonTrivial {
		t.Error("Detect().NonTrivial = true; want false")
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"apple banana cherry", "apple banana grape", 2.0 / 3.0},
		{"apple banana", "apple banana cherry durian", 0.5},
		{"same words here", "Same, words here!", 1},
		{"", "", 0},
		{"ab cd", "ab cd", 0},
		{"apple", "", 0},
	}

	for _, tt := range tests {
		got := Similarity(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
