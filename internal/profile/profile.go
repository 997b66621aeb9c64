// Package profile stores the active mining Profile as an immutable
// snapshot, per spec.md §9's redesign flag ("immutable profile snapshots
// via atomic.Pointer"): callers never mutate a
// Profile in place; configuration changes build a new value and swap the
// pointer, so concurrent readers (query generators, note builder) never
// observe a partially-updated profile.
//
// Persistence uses gopkg.in/yaml.v3, the one config-serialization library
// already in this module's dependency set.
package profile

import (
	"fmt"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/japaniel/minecore/internal/model"
)

// Store holds the current Profile behind an atomic.Pointer.
type Store struct {
	current atomic.Pointer[model.Profile]
}

// NewStore constructs a Store seeded with initial.
func NewStore(initial *model.Profile) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Current returns the active snapshot. The returned pointer is never
// mutated by the store; callers must not mutate it either.
func (s *Store) Current() *model.Profile {
	return s.current.Load()
}

// Replace atomically swaps in a new snapshot.
func (s *Store) Replace(p *model.Profile) {
	s.current.Store(p)
}

// yamlProfile mirrors model.Profile's externally-persisted shape. Fields
// that are runtime-only (none currently) would be excluded here.
type yamlProfile struct {
	Name     string   `yaml:"name"`
	Deck     string   `yaml:"deck"`
	NoteType string   `yaml:"note_type"`
	Tags     []string `yaml:"tags"`

	DuplicatePolicy     string `yaml:"duplicate_policy"`
	ReadingAsExpression bool   `yaml:"reading_as_expression"`
	NewlineReplacement  string `yaml:"newline_replacement"`

	TermFieldTemplates  map[string]string `yaml:"term_field_templates"`
	KanjiFieldTemplates map[string]string `yaml:"kanji_field_templates"`

	AudioSources       []yamlAudioSource `yaml:"audio_sources"`
	AudioPadStart      float64           `yaml:"audio_pad_start"`
	AudioPadEnd        float64           `yaml:"audio_pad_end"`
	AudioNormalize     bool              `yaml:"audio_normalize"`
	AudioNormalizeLUFS float64           `yaml:"audio_normalize_lufs"`

	ScreenshotMaxWidth  int `yaml:"screenshot_max_width"`
	ScreenshotMaxHeight int `yaml:"screenshot_max_height"`
}

type yamlAudioSource struct {
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	URLTemplate string `yaml:"url_template"`
	MD5SkipHash bool   `yaml:"md5_skip_hash"`
}

// Load reads and parses a profile YAML file.
func Load(path string) (*model.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var y yamlProfile
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("profile: parse %s: %w", path, err)
	}
	return fromYAML(y), nil
}

// Save serializes p to path.
func Save(path string, p *model.Profile) error {
	data, err := yaml.Marshal(toYAML(p))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func fromYAML(y yamlProfile) *model.Profile {
	p := &model.Profile{
		Name:                y.Name,
		Deck:                y.Deck,
		NoteType:            y.NoteType,
		Tags:                y.Tags,
		DuplicatePolicy:     parseDuplicatePolicy(y.DuplicatePolicy),
		ReadingAsExpression: y.ReadingAsExpression,
		NewlineReplacement:  y.NewlineReplacement,
		TermFieldTemplates:  y.TermFieldTemplates,
		KanjiFieldTemplates: y.KanjiFieldTemplates,
		AudioPadStart:       y.AudioPadStart,
		AudioPadEnd:         y.AudioPadEnd,
		AudioNormalize:      y.AudioNormalize,
		AudioNormalizeLUFS:  y.AudioNormalizeLUFS,
		ScreenshotMaxWidth:  y.ScreenshotMaxWidth,
		ScreenshotMaxHeight: y.ScreenshotMaxHeight,
	}
	for _, a := range y.AudioSources {
		p.AudioSources = append(p.AudioSources, model.AudioSource{
			Type:        parseAudioSourceType(a.Type),
			Name:        a.Name,
			URLTemplate: a.URLTemplate,
			MD5SkipHash: a.MD5SkipHash,
		})
	}
	return p
}

func toYAML(p *model.Profile) yamlProfile {
	y := yamlProfile{
		Name: p.Name, Deck: p.Deck, NoteType: p.NoteType, Tags: p.Tags,
		DuplicatePolicy:     duplicatePolicyString(p.DuplicatePolicy),
		ReadingAsExpression: p.ReadingAsExpression,
		NewlineReplacement:  p.NewlineReplacement,
		TermFieldTemplates:  p.TermFieldTemplates,
		KanjiFieldTemplates: p.KanjiFieldTemplates,
		AudioPadStart:       p.AudioPadStart,
		AudioPadEnd:         p.AudioPadEnd,
		AudioNormalize:      p.AudioNormalize,
		AudioNormalizeLUFS:  p.AudioNormalizeLUFS,
		ScreenshotMaxWidth:  p.ScreenshotMaxWidth,
		ScreenshotMaxHeight: p.ScreenshotMaxHeight,
	}
	for _, a := range p.AudioSources {
		y.AudioSources = append(y.AudioSources, yamlAudioSource{
			Type:        audioSourceTypeString(a.Type),
			Name:        a.Name,
			URLTemplate: a.URLTemplate,
			MD5SkipHash: a.MD5SkipHash,
		})
	}
	return y
}

func parseDuplicatePolicy(s string) model.DuplicatePolicy {
	switch s {
	case "different-deck":
		return model.DuplicatePolicyDifferentDeck
	case "same-deck":
		return model.DuplicatePolicySameDeck
	default:
		return model.DuplicatePolicyNone
	}
}

func duplicatePolicyString(p model.DuplicatePolicy) string {
	switch p {
	case model.DuplicatePolicyDifferentDeck:
		return "different-deck"
	case model.DuplicatePolicySameDeck:
		return "same-deck"
	default:
		return "none"
	}
}

func parseAudioSourceType(s string) model.AudioSourceType {
	if s == "json" {
		return model.AudioSourceJSON
	}
	return model.AudioSourceFile
}

func audioSourceTypeString(t model.AudioSourceType) string {
	if t == model.AudioSourceJSON {
		return "json"
	}
	return "file"
}
