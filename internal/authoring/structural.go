package authoring

import (
	"fmt"

	"github.com/gbianchi/impara/internal/content"
)

const (
	minMatchingPairs  = 4
	minMemoryPairs    = 4
	minTimedQuestions = 5
)

// checkBundle enforces the structural rules the JSON schema cannot
// express: cross-field index bounds, uniqueness, and minimum counts per
// game.
func checkBundle(b *content.Bundle) error {
	if len(b.Matching) < minMatchingPairs {
		return fmt.Errorf("bundle has %d matching pairs, need at least %d", len(b.Matching), minMatchingPairs)
	}
	if len(b.Memory) < minMemoryPairs {
		return fmt.Errorf("bundle has %d memory pairs, need at least %d", len(b.Memory), minMemoryPairs)
	}
	if len(b.Timed) < minTimedQuestions {
		return fmt.Errorf("bundle has %d timed questions, need at least %d", len(b.Timed), minTimedQuestions)
	}

	seenLeft := make(map[string]bool)
	for i, p := range b.Matching {
		if p.Left.Text == "" || p.Right.Text == "" {
			return fmt.Errorf("matching pair %d has an empty side", i)
		}
		if seenLeft[p.Left.Text] {
			return fmt.Errorf("duplicate matching item %q", p.Left.Text)
		}
		seenLeft[p.Left.Text] = true
	}

	seenFaces := make(map[string]bool)
	for i, p := range b.Memory {
		if p.Content == "" {
			return fmt.Errorf("memory pair %d has empty content", i)
		}
		if seenFaces[p.Content] {
			return fmt.Errorf("duplicate memory card face %q", p.Content)
		}
		seenFaces[p.Content] = true
	}

	seenPrompts := make(map[string]bool)
	for i, q := range b.Timed {
		if q.Prompt == "" {
			return fmt.Errorf("timed question %d has an empty prompt", i)
		}
		if seenPrompts[q.Prompt] {
			return fmt.Errorf("duplicate timed prompt %q", q.Prompt)
		}
		seenPrompts[q.Prompt] = true

		if len(q.Options) < 2 || len(q.Options) > 4 {
			return fmt.Errorf("timed question %d has %d options, need 2 to 4", i, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return fmt.Errorf("timed question %d: correct_index %d out of range for %d options", i, q.CorrectIndex, len(q.Options))
		}
		if q.Points <= 0 {
			return fmt.Errorf("timed question %d has non-positive points", i)
		}
		if q.TimeLimitSecs <= 0 {
			return fmt.Errorf("timed question %d has non-positive time limit", i)
		}
	}

	return nil
}
