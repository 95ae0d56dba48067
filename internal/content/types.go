package content

// Item is one half of a matching pair: a short text with a display icon.
type Item struct {
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
}

// MatchingPair is one left/right association for the matching game.
type MatchingPair struct {
	Left  Item `json:"left"`
	Right Item `json:"right"`
}

// MemoryPair is one card face for the memory game. The engine deals two
// cards per pair.
type MemoryPair struct {
	Content string `json:"content"`
	Icon    string `json:"icon,omitempty"`
}

// TimedQuestion is one multiple-choice question for the timed challenge.
type TimedQuestion struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correct_index"`
	Points        int      `json:"points"`
	TimeLimitSecs int      `json:"time_limit_secs"`
}

// Bundle is the exercise payload for one subject+topic+level. Any of the
// three lists may be empty; a game treats an empty list of its type as
// absent content and refuses to start.
type Bundle struct {
	Subject  string          `json:"-"`
	Topic    string          `json:"-"`
	Level    string          `json:"-"`
	Matching []MatchingPair  `json:"matching,omitempty"`
	Memory   []MemoryPair    `json:"memory,omitempty"`
	Timed    []TimedQuestion `json:"timed,omitempty"`
}

// HasMatching reports whether the bundle can drive the matching game.
func (b *Bundle) HasMatching() bool { return b != nil && len(b.Matching) > 0 }

// HasMemory reports whether the bundle can drive the memory game.
func (b *Bundle) HasMemory() bool { return b != nil && len(b.Memory) > 0 }

// HasTimed reports whether the bundle can drive the timed challenge.
func (b *Bundle) HasTimed() bool { return b != nil && len(b.Timed) > 0 }

// Pack is the on-disk document: all topics and levels for one subject.
type Pack struct {
	Subject string               `json:"subject"`
	Title   string               `json:"title,omitempty"`
	Topics  map[string]PackTopic `json:"topics"`
}

// PackTopic holds the level map for one topic.
type PackTopic struct {
	Title  string             `json:"title,omitempty"`
	Levels map[string]*Bundle `json:"levels"`
}
