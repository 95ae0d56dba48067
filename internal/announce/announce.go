// Package announce is the speech output port. Screens call it
// fire-and-forget for feedback lines; game engines never touch it.
package announce

import (
	"os/exec"
	"runtime"
)

// Announcer speaks a short feedback line to the player.
type Announcer interface {
	Announce(text string)
}

// Null is the no-op Announcer used when speech is disabled.
type Null struct{}

func (Null) Announce(string) {}

// Speaker shells out to the platform TTS command. Failures are silent:
// a missing TTS binary must never disturb play.
type Speaker struct {
	// Command overrides the platform default, mainly for tests.
	Command string
}

// Announce speaks the text asynchronously.
func (s Speaker) Announce(text string) {
	if text == "" {
		return
	}
	cmd := s.Command
	if cmd == "" {
		cmd = defaultCommand()
	}
	if cmd == "" {
		return
	}
	go func() {
		_ = exec.Command(cmd, text).Run()
	}()
}

func defaultCommand() string {
	candidates := []string{"espeak"}
	if runtime.GOOS == "darwin" {
		candidates = []string{"say"}
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c); err == nil {
			return c
		}
	}
	return ""
}

// ForPrefs returns a Speaker when speech is enabled, Null otherwise.
func ForPrefs(speechEnabled bool) Announcer {
	if speechEnabled {
		return Speaker{}
	}
	return Null{}
}
