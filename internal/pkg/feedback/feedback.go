package feedback

import (
	"github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
	"github.com/evandrarf/promptquest-be/internal/pkg/scorer"
)

const Explanation = "좋은 프롬프트는 상황, 목표, 제약조건을 명확히 제시하고 구체적인 결과물을 요청합니다."

const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandFair      = "fair"
	BandNeedsWork = "needs_work"
)

const (
	maxImprovements = 3
	maxStrengths    = 3
	shortPrompt     = 50
	clarityCutoff   = 60
)

// Compose builds the feedback shown after a submission has been scored.
func Compose(text string, score int, problem entity.Problem) entity.ScoreResult {
	signals := scorer.Detect(text)

	return entity.ScoreResult{
		Score:             score,
		Strengths:         Strengths(signals, score),
		Improvements:      Improvements(signals, score),
		RecommendedPrompt: problem.SampleAnswer,
		Explanation:       Explanation,
		Headline:          Headline(score),
		Band:              Band(score),
	}
}

// Strengths lists what the prompt did well. Higher bands get more detail.
func Strengths(s scorer.Signals, score int) []string {
	switch {
	case score >= 80:
		var out []string
		if s.Request {
			out = append(out, "AI에게 원하는 결과를 명확하게 요청했습니다")
		}
		if s.GradeLevel {
			out = append(out, "대상 학년을 구체적으로 명시했습니다")
		} else if s.Domain {
			out = append(out, "수업 상황과 대상을 구체적으로 제시했습니다")
		}
		if s.Quantifier {
			out = append(out, "필요한 아이디어의 개수를 구체적으로 지정했습니다")
		} else if s.Structure {
			out = append(out, "활동이나 단계 등 결과물의 형태를 제시했습니다")
		}
		if s.Context {
			out = append(out, "학습 동기와 참여 등 교육적 맥락을 잘 설명했습니다")
		}
		if len(out) > maxStrengths {
			out = out[:maxStrengths]
		}
		for _, generic := range []string{"명확하고 구체적인 프롬프트입니다", "의도가 잘 드러나는 요청입니다"} {
			if len(out) >= 2 {
				break
			}
			out = append(out, generic)
		}
		return out
	case score >= 60:
		return []string{"기본적인 구조를 잘 갖추었습니다"}
	case score >= 40:
		return []string{"요청하려는 내용이 전달되었습니다"}
	default:
		return []string{"퀘스트에 도전해주셔서 감사합니다"}
	}
}

// Improvements lists at most three suggestions, each tied to a missing signal.
func Improvements(s scorer.Signals, score int) []string {
	var out []string
	if !s.Domain {
		out = append(out, "대상 학년이나 과목 등 구체적인 수업 상황을 명시해보세요")
	}
	if !s.Structure {
		out = append(out, "원하는 방법이나 단계의 개수를 구체적으로 요청해보세요 (예: 3가지 방법)")
	}
	if !s.Context {
		out = append(out, "학습 동기나 참여 등 교육적 맥락을 추가해보세요")
	}
	if s.Length < shortPrompt {
		out = append(out, "상황을 조금 더 자세하게 설명해보세요")
	}
	if score < clarityCutoff {
		out = append(out, "AI에게 무엇을 해주기를 원하는지 명확하게 요청해보세요")
	}

	if len(out) > maxImprovements {
		out = out[:maxImprovements]
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func Headline(score int) string {
	switch {
	case score >= 90:
		return "훌륭합니다!"
	case score >= 80:
		return "잘했습니다!"
	default:
		return "개선할 점이 있어요"
	}
}

func Band(score int) string {
	switch {
	case score >= 90:
		return BandExcellent
	case score >= 80:
		return BandGood
	case score >= 70:
		return BandFair
	default:
		return BandNeedsWork
	}
}
