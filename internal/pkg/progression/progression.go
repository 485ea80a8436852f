package progression

import (
	"math"

	"github.com/evandrarf/promptquest-be/internal/delivery/http/entity"
)

const (
	StartingExperienceToNext = 200
	SuccessScore             = 80
	StreakMilestoneEvery     = 3
)

// Titles maps level N to Titles[N-1]. Levels past the end keep the last title.
var Titles = []string{
	"GPT 초보자",
	"AI 탐험가",
	"프롬프트 견습생",
	"교실 마법사",
	"AI 장인",
	"프롬프트 마스터",
	"AI 교육 전문가",
	"수업 혁신가",
	"프롬프트 현자",
	"전설의 교사",
}

// Rule unlocks Title the first time Holds reports true.
type Rule struct {
	Title string
	Holds func(p entity.UserProgress) bool
}

// Rules are evaluated in order; newly unlocked titles are appended in this order.
var Rules = []Rule{
	{Title: "완벽주의자", Holds: func(p entity.UserProgress) bool { return p.AverageScore >= 95 }},
	{Title: "프롬프트 달인", Holds: func(p entity.UserProgress) bool { return p.AverageScore >= 90 }},
	{Title: "우수 프롬프터", Holds: func(p entity.UserProgress) bool { return p.AverageScore >= 80 }},
	{Title: "불꽃 연속 달성", Holds: func(p entity.UserProgress) bool { return p.MaxStreak >= 10 }},
	{Title: "꾸준한 도전자", Holds: func(p entity.UserProgress) bool { return p.MaxStreak >= 5 }},
	{Title: "퀘스트 정복자", Holds: func(p entity.UserProgress) bool { return p.CompletedQuests >= 50 }},
	{Title: "열정적인 교사", Holds: func(p entity.UserProgress) bool { return p.CompletedQuests >= 20 }},
	{Title: "교실 도우미", Holds: func(p entity.UserProgress) bool { return p.CompletedQuests >= 5 }},
	{Title: "레벨 10 달성", Holds: func(p entity.UserProgress) bool { return p.Level >= 10 }},
	{Title: "레벨 5 달성", Holds: func(p entity.UserProgress) bool { return p.Level >= 5 }},
}

func NewProgress() entity.UserProgress {
	return entity.UserProgress{
		Level:            1,
		ExperienceToNext: StartingExperienceToNext,
		Title:            TitleFor(1),
		Achievements:     []string{},
	}
}

func TitleFor(level int) string {
	i := min(level-1, len(Titles)-1)
	if i < 0 {
		i = 0
	}
	return Titles[i]
}

// ExperienceToNextFor is the threshold a player at level must fill after levelling up.
func ExperienceToNextFor(level int) int {
	return 250 + level*50
}

// ExperienceAward is the experience granted for a session of problemCount
// problems finishing with averageScore.
func ExperienceAward(averageScore, problemCount int) int {
	per := 40
	switch {
	case averageScore >= 90:
		per = 60
	case averageScore >= 80:
		per = 50
	}
	return per * max(problemCount, 1)
}

// Apply advances p by one completed session. At most one level is gained per
// call; any remaining experience carries over.
func Apply(p entity.UserProgress, sessionScore, award int) (entity.UserProgress, []entity.Event) {
	next := p
	next.Achievements = append([]string{}, p.Achievements...)
	if next.ExperienceToNext <= 0 {
		next.ExperienceToNext = StartingExperienceToNext
	}
	if next.Level < 1 {
		next.Level = 1
	}

	var events []entity.Event

	exp := next.Experience + max(award, 0)
	if exp >= next.ExperienceToNext {
		exp -= next.ExperienceToNext
		next.Level++
		next.ExperienceToNext = ExperienceToNextFor(next.Level)
		events = append(events, entity.LevelUp(next.Level))
	}
	next.Experience = exp

	next.CompletedQuests++
	next.TotalScore += sessionScore
	next.AverageScore = RoundAverage(next.TotalScore, next.CompletedQuests)

	if sessionScore >= SuccessScore {
		next.Streak++
	} else {
		next.Streak = 0
	}
	next.MaxStreak = max(next.MaxStreak, next.Streak)

	next.Title = TitleFor(next.Level)

	var unlocked []string
	for _, r := range Rules {
		if r.Holds(next) && !next.HasAchievement(r.Title) {
			next.Achievements = append(next.Achievements, r.Title)
			unlocked = append(unlocked, r.Title)
		}
	}
	if len(unlocked) > 0 {
		events = append(events, entity.AchievementsUnlocked(unlocked))
	}

	if next.Streak > 0 && next.Streak%StreakMilestoneEvery == 0 {
		events = append(events, entity.StreakMilestone(next.Streak))
	}

	return next, events
}

// RoundAverage returns round(total/count), or 0 when count is 0.
func RoundAverage(total, count int) int {
	if count <= 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}
