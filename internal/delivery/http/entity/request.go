package entity

// Request untuk memulai sesi quest
type StartSessionRequest struct {
	Size int `json:"size" validate:"omitempty,min=1,max=10"`
}

// Request untuk submit prompt
type SubmitPromptRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// Snapshot of a quest session returned to the UI
type SessionView struct {
	ID           string         `json:"id"`
	State        string         `json:"state"`
	Size         int            `json:"size"`
	CurrentIndex int            `json:"currentIndex"`
	CurrentQuest *Quest         `json:"currentQuest,omitempty"`
	Quests       []Quest        `json:"quests"`
	Hints        []string       `json:"hints"`
	Result       *SessionResult `json:"result,omitempty"`
}

// Response untuk submit prompt
type SubmitPromptResponse struct {
	Session              SessionView     `json:"session"`
	Result               ScoreResult     `json:"result"`
	ExceedsAdvisoryLimit bool            `json:"exceedsAdvisoryLimit"`
	Completion           *CompletionInfo `json:"completion,omitempty"`
}

// Completion details attached to the final submit of a session
type CompletionInfo struct {
	SessionResult      SessionResult `json:"sessionResult"`
	ExperienceAwarded  int           `json:"experienceAwarded"`
	Progress           UserProgress  `json:"progress"`
	Events             []Event       `json:"events"`
	PersistenceWarning string        `json:"persistenceWarning,omitempty"`
}

// Query untuk daftar quest
type ListQuestsQuery struct {
	Level int `json:"level" query:"level" validate:"omitempty,min=1"`
}

// Query untuk prompt library
type LibraryQuery struct {
	Q string `json:"q" query:"q" validate:"omitempty,max=200"`
}

// Query untuk aktivitas terbaru
type RecentActivityQuery struct {
	Limit int `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
}
