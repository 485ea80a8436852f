package scorer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
)

const (
	defaultMaxScore = 100

	minLength      = 10
	longLength     = 100
	veryLongLength = 200

	signalWeight = 20
	lengthBonus  = 10

	questionCopyThreshold = 0.7
	contextCopyThreshold  = 0.5

	minWordLength = 2
)

var (
	requestMarkers = []string{
		"주세요", "해줘", "알려", "제안", "만들", "작성", "설명", "도와", "추천",
		"please", "create", "suggest", "explain", "help", "method", "방법",
	}
	domainMarkers = []string{
		"학년", "초등", "중학", "고등", "학생", "교실", "수업",
		"수학", "과학", "국어", "영어", "사회",
		"grade", "student", "classroom", "lesson", "math", "science",
	}
	gradeMarkers = []string{
		"학년", "grade",
	}
	contextMarkers = []string{
		"동기", "흥미", "참여", "학습", "교육", "지도",
		"motivation", "interest", "participation", "learning", "education", "guidance",
	}
	structureMarkers = []string{
		"단계", "방법", "예시", "활동", "게임", "창의",
		"step", "method", "example", "activity", "game", "creative",
	}

	quantifierPattern = regexp.MustCompile(`\d+\s*(가지|단계|개|ways?|steps?|ideas?)`)
)

// Signals are the heuristic markers detected in a prompt.
type Signals struct {
	Length     int  `json:"length"`
	NonTrivial bool `json:"nonTrivial"`
	Request    bool `json:"request"`
	Domain     bool `json:"domain"`
	GradeLevel bool `json:"gradeLevel"`
	Context    bool `json:"context"`
	Structure  bool `json:"structure"`
	Quantifier bool `json:"quantifier"`
	Long       bool `json:"long"`
	VeryLong   bool `json:"veryLong"`
}

type Result struct {
	Score              int
	Signals            Signals
	Copied             bool
	QuestionSimilarity float64
	ContextSimilarity  float64
	MaterialSimilarity float64
}

// Detect inspects the trimmed text. Length is counted in runes.
func Detect(text string) Signals {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	length := utf8.RuneCountInString(trimmed)

	quantifier := quantifierPattern.MatchString(lower)

	return Signals{
		Length:     length,
		NonTrivial: length > minLength,
		Request:    containsAny(lower, requestMarkers),
		Domain:     containsAny(lower, domainMarkers),
		GradeLevel: containsAny(lower, gradeMarkers),
		Context:    containsAny(lower, contextMarkers),
		Structure:  quantifier || containsAny(lower, structureMarkers),
		Quantifier: quantifier,
		Long:       length > longLength,
		VeryLong:   length > veryLongLength,
	}
}

// Score returns the heuristic score of text against problem, in [0, MaxScore].
// material is any other text shown alongside the problem, such as the quest
// scenario; copying it is treated like copying the context.
func Score(text string, problem entity.Problem, material ...string) int {
	return Evaluate(text, problem, material...).Score
}

func Evaluate(text string, problem entity.Problem, material ...string) Result {
	maxScore := problem.MaxScore
	if maxScore <= 0 {
		maxScore = defaultMaxScore
	}

	res := Result{
		Signals:            Detect(text),
		QuestionSimilarity: Similarity(text, problem.Question),
		ContextSimilarity:  Similarity(text, problem.Context),
	}

	for _, m := range material {
		res.MaterialSimilarity = max(res.MaterialSimilarity, Similarity(text, m))
	}

	if isCopy(text, res, problem.Question, problem.Context) || copiesMaterial(text, res, material) {
		res.Copied = true
		return res
	}

	s := res.Signals
	// Markers in a trivial prompt are not rewarded.
	if !s.NonTrivial {
		return res
	}

	points := signalWeight
	for _, hit := range []bool{s.Request, s.Domain, s.Context, s.Structure} {
		if hit {
			points += signalWeight
		}
	}
	if s.Long {
		points += lengthBonus
	}
	if s.VeryLong {
		points += lengthBonus
	}

	res.Score = min(points, maxScore)
	return res
}

// Similarity is the number of shared words longer than two characters
// divided by the size of the larger word set.
func Similarity(a, b string) float64 {
	wa, wb := wordSet(a), wordSet(b)
	larger := max(len(wa), len(wb))
	if larger == 0 {
		return 0
	}

	shared := 0
	for w := range wa {
		if _, ok := wb[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(larger)
}

func isCopy(text string, res Result, question, context string) bool {
	if res.QuestionSimilarity > questionCopyThreshold || res.ContextSimilarity > contextCopyThreshold {
		return true
	}
	return sameText(text, question) || sameText(text, context)
}

func copiesMaterial(text string, res Result, material []string) bool {
	if res.MaterialSimilarity > contextCopyThreshold {
		return true
	}
	for _, m := range material {
		if sameText(text, m) {
			return true
		}
	}
	return false
}

// sameText compares word sequences, ignoring case and punctuation.
func sameText(a, b string) bool {
	na := normalize(a)
	return na != "" && na == normalize(b)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range words(s) {
		if utf8.RuneCountInString(w) > minWordLength {
			set[w] = struct{}{}
		}
	}
	return set
}

func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func normalize(s string) string {
	return strings.Join(words(s), " ")
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
