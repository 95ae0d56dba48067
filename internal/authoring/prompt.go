package authoring

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a content author creating mini-game exercises in Italian for children aged 5-10.

Rules:
- Generate one bundle of exercises for the given subject, topic and level.
- All learner-facing text must be in simple Italian, age-appropriate and encouraging.
- Keep texts short: matching items and memory card faces fit on a small card.
- Use a single emoji as the icon where one fits the content; leave it empty otherwise.
- Matching pairs associate a concept with its counterpart (word and picture, question and answer, number and result).
- Memory card faces must be distinct from each other; the game deals each face twice.
- Timed questions are multiple choice with 2 to 4 options and exactly one correct answer. Distractors should reflect plausible mistakes, not random values.
- Easier levels get more time and fewer options; harder levels may use the full 4 options.
- Do not repeat a prompt, a pair, or a card face within the bundle.`

// buildUserMessage constructs the user message from the authoring request.
func buildUserMessage(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Level: %s (1 is easiest)\n", req.Level)

	if req.Guidance != "" {
		b.WriteString("\nExtra guidance from the author:\n")
		b.WriteString(req.Guidance)
		b.WriteString("\n")
	}

	return b.String()
}
