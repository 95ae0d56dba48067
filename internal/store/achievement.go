package store

import (
	"context"
	"fmt"

	"github.com/gbianchi/impara/ent"
	"github.com/gbianchi/impara/ent/achievementevent"
)

// achievementRepo implements AchievementRepo backed by ent and the global
// sequence counter.
type achievementRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *achievementRepo) Append(ctx context.Context, data AchievementData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AchievementEvent.Create().
		SetSequence(seqNum).
		SetName(data.Name).
		SetReason(data.Reason)

	if data.Subject != "" {
		builder = builder.SetSubject(data.Subject)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

func (r *achievementRepo) All(ctx context.Context) ([]*AchievementData, error) {
	events, err := r.client.AchievementEvent.Query().
		Order(ent.Asc(achievementevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievement events: %w", err)
	}

	out := make([]*AchievementData, len(events))
	for i, e := range events {
		out[i] = &AchievementData{
			Name:      e.Name,
			Reason:    e.Reason,
			Subject:   e.Subject,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return out, nil
}
