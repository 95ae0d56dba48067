package store

import (
	"context"
	"time"
)

// SessionRecordData is the merged progress row for one exercise. There is
// at most one row per (subject, topic, level, exercise) key; session
// results accumulate into it rather than appending.
type SessionRecordData struct {
	Subject        string
	Topic          string
	Level          string
	ExerciseID     string
	Score          int
	TotalQuestions int
	TimeSpentSecs  int
	Attempts       int
	Completed      bool
	UpdatedAt      time.Time
}

// AchievementData is one unlocked achievement. Achievements are
// append-only; a name is stored at most once.
type AchievementData struct {
	Name      string
	Reason    string
	Subject   string // empty for cross-subject achievements
	Sequence  int64
	Timestamp time.Time
}

// PreferenceData is the singleton player settings row. Missing storage
// yields the zero value with defaults applied, never an error.
type PreferenceData struct {
	PlayerName    string
	SpeechEnabled bool
	HighContrast  bool
	LargeText     bool
	ReducedMotion bool
}

// ProgressRepo manages merged session records.
type ProgressRepo interface {
	// Get returns the record for the key, or nil if none exists.
	Get(ctx context.Context, subject, topic, level, exerciseID string) (*SessionRecordData, error)

	// Put inserts or replaces the record for its key.
	Put(ctx context.Context, rec *SessionRecordData) error

	// All returns every record, newest update first.
	All(ctx context.Context) ([]*SessionRecordData, error)

	// CompletedCount returns the number of completed records.
	CompletedCount(ctx context.Context) (int, error)

	// CompletedBySubject returns completed record counts keyed by subject.
	CompletedBySubject(ctx context.Context) (map[string]int, error)
}

// AchievementRepo manages the append-only achievement log.
type AchievementRepo interface {
	// Append records a newly unlocked achievement.
	Append(ctx context.Context, data AchievementData) error

	// All returns every achievement in unlock order.
	All(ctx context.Context) ([]*AchievementData, error)
}

// PrefsRepo manages the singleton preference row.
type PrefsRepo interface {
	// Load returns the stored preferences, or defaults if none exist.
	Load(ctx context.Context) (*PreferenceData, error)

	// Save inserts or updates the singleton row.
	Save(ctx context.Context, prefs *PreferenceData) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}
