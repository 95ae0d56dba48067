// Package progress folds finished game sessions into persistent per-exercise
// records and evaluates achievement unlocks against the stored history.
package progress

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gbianchi/impara/internal/store"
)

// Thresholds are the tunable cutoffs for completion and achievement rules.
type Thresholds struct {
	// CompletionRatio is the score fraction that marks a session completed.
	CompletionRatio float64

	// SpeedBonusSeconds is the time under which a good session earns the
	// speed achievement.
	SpeedBonusSeconds int

	// SpeedBonusRatio is the minimum score fraction for the speed
	// achievement.
	SpeedBonusRatio float64

	// SubjectMasteryCount is the completed sessions in one subject that
	// unlock its mastery achievement.
	SubjectMasteryCount int

	// PersistenceCount is the completed sessions overall that unlock the
	// persistence achievement.
	PersistenceCount int
}

// DefaultThresholds returns the standard rule cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CompletionRatio:     0.8,
		SpeedBonusSeconds:   120,
		SpeedBonusRatio:     0.8,
		SubjectMasteryCount: 5,
		PersistenceCount:    10,
	}
}

// SessionResult is the outcome of one finished game session, before
// merging into history.
type SessionResult struct {
	Subject          string
	Topic            string
	Level            string
	ExerciseID       string
	Score            int
	TotalQuestions   int
	TimeSpentSeconds int
	Timestamp        time.Time
}

// Completed reports whether the session score reached the completion
// ratio. Empty sessions never complete.
func (r SessionResult) Completed(ratio float64) bool {
	if r.TotalQuestions <= 0 {
		return false
	}
	return float64(r.Score) >= ratio*float64(r.TotalQuestions)
}

// Outcome is what Record returns for the summary screen: the merged
// record and any achievements this session unlocked.
type Outcome struct {
	Record   *store.SessionRecordData
	Unlocked []store.AchievementData
}

// Tracker merges session results into the store and appends achievement
// unlocks.
type Tracker struct {
	progress     store.ProgressRepo
	achievements store.AchievementRepo
	thresholds   Thresholds
}

// NewTracker builds a Tracker over the given repos.
func NewTracker(progress store.ProgressRepo, achievements store.AchievementRepo, thresholds Thresholds) *Tracker {
	return &Tracker{
		progress:     progress,
		achievements: achievements,
		thresholds:   thresholds,
	}
}

// Record merges the result into the stored record for its exercise key
// and evaluates achievement rules against the updated history.
// Merging is monotone: score keeps its maximum, attempts and time
// accumulate, and completed never reverts to false.
func (t *Tracker) Record(ctx context.Context, result SessionResult) (*Outcome, error) {
	result.Subject = normalizeKey(result.Subject)
	result.Topic = normalizeKey(result.Topic)
	result.Level = normalizeKey(result.Level)
	result.ExerciseID = normalizeKey(result.ExerciseID)

	existing, err := t.progress.Get(ctx, result.Subject, result.Topic, result.Level, result.ExerciseID)
	if err != nil {
		return nil, fmt.Errorf("load record: %w", err)
	}

	merged := t.merge(existing, result)
	if err := t.progress.Put(ctx, merged); err != nil {
		return nil, fmt.Errorf("store record: %w", err)
	}

	unlocked, err := t.evaluate(ctx, result)
	if err != nil {
		return nil, err
	}

	return &Outcome{Record: merged, Unlocked: unlocked}, nil
}

func (t *Tracker) merge(existing *store.SessionRecordData, result SessionResult) *store.SessionRecordData {
	merged := &store.SessionRecordData{
		Subject:        result.Subject,
		Topic:          result.Topic,
		Level:          result.Level,
		ExerciseID:     result.ExerciseID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		TimeSpentSecs:  result.TimeSpentSeconds,
		Attempts:       1,
		Completed:      result.Completed(t.thresholds.CompletionRatio),
		UpdatedAt:      result.Timestamp,
	}
	if existing == nil {
		return merged
	}

	merged.Score = max(existing.Score, result.Score)
	merged.Attempts = existing.Attempts + 1
	merged.TimeSpentSecs = existing.TimeSpentSecs + result.TimeSpentSeconds
	merged.Completed = existing.Completed || merged.Completed
	return merged
}

// evaluate appends any achievement the updated history newly satisfies.
// Unlocks are append-only; an already held name is never re-appended.
func (t *Tracker) evaluate(ctx context.Context, result SessionResult) ([]store.AchievementData, error) {
	held, err := t.achievements.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}
	heldNames := make(map[string]bool, len(held))
	for _, a := range held {
		heldNames[a.Name] = true
	}

	var candidates []store.AchievementData

	if result.TotalQuestions > 0 && result.Score >= result.TotalQuestions {
		candidates = append(candidates, store.AchievementData{
			Name:   "punteggio-perfetto",
			Reason: "Hai risposto bene a tutte le domande!",
		})
	}

	if result.TimeSpentSeconds < t.thresholds.SpeedBonusSeconds &&
		result.Completed(t.thresholds.SpeedBonusRatio) {
		candidates = append(candidates, store.AchievementData{
			Name:   "fulmine",
			Reason: "Una sessione brillante in meno di due minuti!",
		})
	}

	bySubject, err := t.progress.CompletedBySubject(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by subject: %w", err)
	}
	if bySubject[result.Subject] >= t.thresholds.SubjectMasteryCount {
		candidates = append(candidates, store.AchievementData{
			Name:    "maestro-" + result.Subject,
			Reason:  fmt.Sprintf("Hai completato %d sessioni di %s!", t.thresholds.SubjectMasteryCount, result.Subject),
			Subject: result.Subject,
		})
	}

	completed, err := t.progress.CompletedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count completed: %w", err)
	}
	if completed >= t.thresholds.PersistenceCount {
		candidates = append(candidates, store.AchievementData{
			Name:   "costanza",
			Reason: fmt.Sprintf("Hai completato %d sessioni in totale!", t.thresholds.PersistenceCount),
		})
	}

	var unlocked []store.AchievementData
	for _, c := range candidates {
		if heldNames[c.Name] {
			continue
		}
		if err := t.achievements.Append(ctx, c); err != nil {
			return nil, fmt.Errorf("append achievement %s: %w", c.Name, err)
		}
		unlocked = append(unlocked, c)
	}
	return unlocked, nil
}

// Report is the read-only view for the progress screens and CLI.
type Report struct {
	Records        []*store.SessionRecordData
	CompletedCount int
	BySubject      map[string]int
	Achievements   []*store.AchievementData
}

// Report assembles the full stored history.
func (t *Tracker) Report(ctx context.Context) (*Report, error) {
	records, err := t.progress.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	completed, err := t.progress.CompletedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count completed: %w", err)
	}
	bySubject, err := t.progress.CompletedBySubject(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by subject: %w", err)
	}
	achievements, err := t.achievements.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}
	return &Report{
		Records:        records,
		CompletedCount: completed,
		BySubject:      bySubject,
		Achievements:   achievements,
	}, nil
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
