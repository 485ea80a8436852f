package feedback

import (
	"testing"

	"github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
	"github.com/evandrarf/promptquest-be/internal/pkg/scorer"
)

const wellFormed = "중학교 2학년 수학 수업에서 학습 동기가 낮은 학생들을 위한 3가지 학습 활동을 제안해주세요"

func TestCompose(t *testing.T) {
	p := entity.Problem{
		Question:     "수업 참여가 저조한 반을 어떻게 도울 수 있을까요?",
		SampleAnswer: "초등학교 5학년 학생들의 수업 참여를 높이는 3가지 활동을 제안해주세요.",
		MaxScore:     100,
	}

	got := Compose(wellFormed, 100, p)

	if got.Score != 100 {
		t.Errorf("Score = %d; want 100", got.Score)
	}
	if got.RecommendedPrompt != p.SampleAnswer {
		t.Errorf("RecommendedPrompt = %q; want sample answer", got.RecommendedPrompt)
	}
	if got.Explanation != Explanation {
		t.Errorf("Explanation = %q; want %q", got.Explanation, Explanation)
	}
	if n := len(got.Strengths); n < 2 || n > 3 {
		t.Errorf("len(Strengths) = %d; want 2-3", n)
	}
	if len(got.Improvements) != 0 {
		t.Errorf("Improvements = %v; want none", got.Improvements)
	}
	if got.Headline != "훌륭합니다!" || got.Band != BandExcellent {
		t.Errorf("Headline, Band = %q, %q; want 훌륭합니다!, excellent", got.Headline, got.Band)
	}
}

func TestStrengths_ByBand(t *testing.T) {
	tests := []struct {
		name    string
		signals scorer.Signals
		score   int
		min     int
		max     int
	}{
		{"high with markers", scorer.Detect(wellFormed), 100, 2, 3},
		{"high without markers", scorer.Signals{}, 85, 2, 3},
		{"adequate", scorer.Signals{}, 70, 1, 1},
		{"minimal", scorer.Signals{}, 45, 1, 1},
		{"participation", scorer.Signals{}, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strengths(tt.signals, tt.score)
			if len(got) < tt.min || len(got) > tt.max {
				t.Errorf("Strengths() = %v; want %d-%d entries", got, tt.min, tt.max)
			}
		})
	}
}

func TestStrengths_ReferenceDetectedSignals(t *testing.T) {
	got := Strengths(scorer.Signals{GradeLevel: true, Domain: true, Quantifier: true, Structure: true}, 90)
	want := []string{"대상 학년을 구체적으로 명시했습니다", "필요한 아이디어의 개수를 구체적으로 지정했습니다"}
	if len(got) != len(want) {
		t.Fatalf("Strengths() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Strengths()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestImprovements(t *testing.T) {
	tests := []struct {
		name    string
		signals scorer.Signals
		score   int
		want    []string
	}{
		{
			name:    "everything missing keeps first three",
			signals: scorer.Signals{Length: 5},
			score:   0,
			want: []string{
				"대상 학년이나 과목 등 구체적인 수업 상황을 명시해보세요",
				"원하는 방법이나 단계의 개수를 구체적으로 요청해보세요 (예: 3가지 방법)",
				"학습 동기나 참여 등 교육적 맥락을 추가해보세요",
			},
		},
		{
			name:    "short but complete",
			signals: scorer.Signals{Length: 30, Domain: true, Structure: true, Context: true},
			score:   100,
			want:    []string{"상황을 조금 더 자세하게 설명해보세요"},
		},
		{
			name:    "low score adds clarity reminder",
			signals: scorer.Signals{Length: 80, Domain: true, Structure: true},
			score:   50,
			want: []string{
				"학습 동기나 참여 등 교육적 맥락을 추가해보세요",
				"AI에게 무엇을 해주기를 원하는지 명확하게 요청해보세요",
			},
		},
		{
			name:    "nothing to improve",
			signals: scorer.Signals{Length: 80, Domain: true, Structure: true, Context: true},
			score:   90,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Improvements(tt.signals, tt.score)
			if len(got) != len(tt.want) {
				t.Fatalf("Improvements() = %v; want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Improvements()[%d] = %q; want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHeadlineAndBand(t *testing.T) {
	tests := []struct {
		score    int
		headline string
		band     string
	}{
		{100, "훌륭합니다!", BandExcellent},
		{90, "훌륭합니다!", BandExcellent},
		{89, "잘했습니다!", BandGood},
		{80, "잘했습니다!", BandGood},
		{75, "개선할 점이 있어요", BandFair},
		{69, "개선할 점이 있어요", BandNeedsWork},
		{0, "개선할 점이 있어요", BandNeedsWork},
	}

	for _, tt := range tests {
		if got := Headline(tt.score); got != tt.headline {
			t.Errorf("Headline(%d) = %q; want %q", tt.score, got, tt.headline)
		}
		if got := Band(tt.score); got != tt.band {
			t.Errorf("Band(%d) = %q; want %q", tt.score, got, tt.band)
		}
	}
}
