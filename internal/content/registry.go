package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed packs/*.json
var embeddedPacks embed.FS

// Registry is the immutable subject → topic → level → bundle lookup.
// Built once at startup; all keys are stored lowercase so lookups are
// case-insensitive.
type Registry struct {
	subjects map[string]*subjectEntry
}

type subjectEntry struct {
	name   string // display casing from the pack
	topics map[string]*topicEntry
}

type topicEntry struct {
	name   string
	levels map[string]*Bundle
}

// Load builds the registry from the embedded packs plus any *.json packs
// found in extraDir (typically the authoring output directory; empty =
// skip). An invalid embedded pack is a hard error; an invalid extra pack
// is skipped and reported through warn.
func Load(extraDir string, warn func(path string, err error)) (*Registry, error) {
	r := &Registry{subjects: make(map[string]*subjectEntry)}

	entries, err := fs.ReadDir(embeddedPacks, "packs")
	if err != nil {
		return nil, fmt.Errorf("read embedded packs: %w", err)
	}
	for _, e := range entries {
		raw, err := embeddedPacks.ReadFile("packs/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read pack %s: %w", e.Name(), err)
		}
		if err := r.addPack(raw); err != nil {
			return nil, fmt.Errorf("pack %s: %w", e.Name(), err)
		}
	}

	if extraDir != "" {
		paths, _ := filepath.Glob(filepath.Join(extraDir, "*.json"))
		sort.Strings(paths)
		for _, p := range paths {
			raw, err := os.ReadFile(p)
			if err == nil {
				err = r.addPack(raw)
			}
			if err != nil && warn != nil {
				warn(p, err)
			}
		}
	}

	return r, nil
}

// addPack validates and merges one pack document into the registry.
// Later packs extend earlier ones; a duplicated level wins over the
// embedded one, letting authored packs override built-in content.
func (r *Registry) addPack(raw []byte) error {
	if err := ValidatePack(raw); err != nil {
		return err
	}

	var pack Pack
	if err := json.Unmarshal(raw, &pack); err != nil {
		return fmt.Errorf("decode pack: %w", err)
	}

	subjectKey := strings.ToLower(strings.TrimSpace(pack.Subject))
	subj := r.subjects[subjectKey]
	if subj == nil {
		subj = &subjectEntry{name: pack.Subject, topics: make(map[string]*topicEntry)}
		r.subjects[subjectKey] = subj
	}

	for topicName, pt := range pack.Topics {
		topicKey := strings.ToLower(strings.TrimSpace(topicName))
		topic := subj.topics[topicKey]
		if topic == nil {
			topic = &topicEntry{name: topicName, levels: make(map[string]*Bundle)}
			subj.topics[topicKey] = topic
		}
		for level, bundle := range pt.Levels {
			b := *bundle
			b.Subject = subjectKey
			b.Topic = topicKey
			b.Level = level
			topic.levels[level] = &b
		}
	}
	return nil
}

// Resolve returns the bundle for (subject, topic, level), or nil when the
// subject or topic is unknown. Subject and topic match case-insensitively.
// A missing level falls back to level "1"; nil is returned only when the
// fallback is missing too.
func (r *Registry) Resolve(subject, topic, level string) *Bundle {
	subj := r.subjects[strings.ToLower(strings.TrimSpace(subject))]
	if subj == nil {
		return nil
	}
	t := subj.topics[strings.ToLower(strings.TrimSpace(topic))]
	if t == nil {
		return nil
	}
	if b, ok := t.levels[level]; ok {
		return b
	}
	return t.levels["1"]
}

// Subjects returns the known subject keys, sorted.
func (r *Registry) Subjects() []string {
	out := make([]string, 0, len(r.subjects))
	for k := range r.subjects {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Topics returns the topic keys for a subject, sorted. Unknown subject
// yields nil.
func (r *Registry) Topics(subject string) []string {
	subj := r.subjects[strings.ToLower(strings.TrimSpace(subject))]
	if subj == nil {
		return nil
	}
	out := make([]string, 0, len(subj.topics))
	for k := range subj.topics {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Levels returns the level keys for a subject+topic, sorted. Unknown
// topic yields nil.
func (r *Registry) Levels(subject, topic string) []string {
	subj := r.subjects[strings.ToLower(strings.TrimSpace(subject))]
	if subj == nil {
		return nil
	}
	t := subj.topics[strings.ToLower(strings.TrimSpace(topic))]
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.levels))
	for k := range t.levels {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
