package entity

type EventType string

const (
	EventLevelUp              EventType = "level_up"
	EventAchievementsUnlocked EventType = "achievements_unlocked"
	EventStreakMilestone      EventType = "streak_milestone"
)

// Event is a progression notification. Delivery is left to the UI.
type Event struct {
	Type         EventType `json:"type"`
	Level        int       `json:"level,omitempty"`
	Achievements []string  `json:"achievements,omitempty"`
	Streak       int       `json:"streak,omitempty"`
}

func LevelUp(level int) Event {
	return Event{Type: EventLevelUp, Level: level}
}

func AchievementsUnlocked(titles []string) Event {
	return Event{Type: EventAchievementsUnlocked, Achievements: titles}
}

func StreakMilestone(streak int) Event {
	return Event{Type: EventStreakMilestone, Streak: streak}
}
