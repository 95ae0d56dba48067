package store

import (
	"context"
	"fmt"

	"github.com/gbianchi/impara/ent"
	"github.com/gbianchi/impara/ent/sessionrecord"
)

// progressRepo implements ProgressRepo backed by ent.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, subject, topic, level, exerciseID string) (*SessionRecordData, error) {
	rec, err := r.client.SessionRecord.Query().
		Where(
			sessionrecord.Subject(subject),
			sessionrecord.Topic(topic),
			sessionrecord.Level(level),
			sessionrecord.ExerciseID(exerciseID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query session record: %w", err)
	}
	return recordData(rec), nil
}

func (r *progressRepo) Put(ctx context.Context, data *SessionRecordData) error {
	existing, err := r.client.SessionRecord.Query().
		Where(
			sessionrecord.Subject(data.Subject),
			sessionrecord.Topic(data.Topic),
			sessionrecord.Level(data.Level),
			sessionrecord.ExerciseID(data.ExerciseID),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.SessionRecord.Create().
			SetSubject(data.Subject).
			SetTopic(data.Topic).
			SetLevel(data.Level).
			SetExerciseID(data.ExerciseID).
			SetScore(data.Score).
			SetTotalQuestions(data.TotalQuestions).
			SetTimeSpentSecs(data.TimeSpentSecs).
			SetAttempts(data.Attempts).
			SetCompleted(data.Completed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create session record: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query session record: %w", err)
	}

	_, err = existing.Update().
		SetScore(data.Score).
		SetTotalQuestions(data.TotalQuestions).
		SetTimeSpentSecs(data.TimeSpentSecs).
		SetAttempts(data.Attempts).
		SetCompleted(data.Completed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session record: %w", err)
	}
	return nil
}

func (r *progressRepo) All(ctx context.Context) ([]*SessionRecordData, error) {
	recs, err := r.client.SessionRecord.Query().
		Order(ent.Desc(sessionrecord.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session records: %w", err)
	}

	out := make([]*SessionRecordData, len(recs))
	for i, rec := range recs {
		out[i] = recordData(rec)
	}
	return out, nil
}

func (r *progressRepo) CompletedCount(ctx context.Context) (int, error) {
	n, err := r.client.SessionRecord.Query().
		Where(sessionrecord.Completed(true)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count completed records: %w", err)
	}
	return n, nil
}

func (r *progressRepo) CompletedBySubject(ctx context.Context) (map[string]int, error) {
	recs, err := r.client.SessionRecord.Query().
		Where(sessionrecord.Completed(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed records: %w", err)
	}

	counts := make(map[string]int)
	for _, rec := range recs {
		counts[rec.Subject]++
	}
	return counts, nil
}

func recordData(rec *ent.SessionRecord) *SessionRecordData {
	return &SessionRecordData{
		Subject:        rec.Subject,
		Topic:          rec.Topic,
		Level:          rec.Level,
		ExerciseID:     rec.ExerciseID,
		Score:          rec.Score,
		TotalQuestions: rec.TotalQuestions,
		TimeSpentSecs:  rec.TimeSpentSecs,
		Attempts:       rec.Attempts,
		Completed:      rec.Completed,
		UpdatedAt:      rec.UpdatedAt,
	}
}
