package store

import (
	"context"
	"fmt"

	"github.com/gbianchi/impara/ent"
	"github.com/gbianchi/impara/ent/preference"
)

// prefsRepo implements PrefsRepo backed by ent. The table holds at most
// one row, pinned by singleton_id = 1.
type prefsRepo struct {
	client *ent.Client
}

func (r *prefsRepo) Load(ctx context.Context) (*PreferenceData, error) {
	row, err := r.client.Preference.Query().
		Where(preference.SingletonID(1)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return &PreferenceData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}

	return &PreferenceData{
		PlayerName:    row.PlayerName,
		SpeechEnabled: row.SpeechEnabled,
		HighContrast:  row.HighContrast,
		LargeText:     row.LargeText,
		ReducedMotion: row.ReducedMotion,
	}, nil
}

func (r *prefsRepo) Save(ctx context.Context, prefs *PreferenceData) error {
	existing, err := r.client.Preference.Query().
		Where(preference.SingletonID(1)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.Preference.Create().
			SetSingletonID(1).
			SetPlayerName(prefs.PlayerName).
			SetSpeechEnabled(prefs.SpeechEnabled).
			SetHighContrast(prefs.HighContrast).
			SetLargeText(prefs.LargeText).
			SetReducedMotion(prefs.ReducedMotion).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create preferences: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query preferences: %w", err)
	}

	_, err = existing.Update().
		SetPlayerName(prefs.PlayerName).
		SetSpeechEnabled(prefs.SpeechEnabled).
		SetHighContrast(prefs.HighContrast).
		SetLargeText(prefs.LargeText).
		SetReducedMotion(prefs.ReducedMotion).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}
	return nil
}
