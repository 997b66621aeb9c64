package profile

import (
	"path/filepath"
	"testing"

	"github.com/japaniel/minecore/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	p := &model.Profile{
		Name: "default", Deck: "Japanese", NoteType: "Minecore",
		Tags:                []string{"minecore"},
		DuplicatePolicy:     model.DuplicatePolicySameDeck,
		ReadingAsExpression: true,
		TermFieldTemplates:  map[string]string{"Expression": "{expression}"},
		AudioSources: []model.AudioSource{
			{Type: model.AudioSourceJSON, Name: "custom", URLTemplate: "https://x/{expression}"},
		},
		AudioPadStart: 0.1,
	}

	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := Save(path, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != p.Name || got.Deck != p.Deck {
		t.Fatalf("got %+v", got)
	}
	if got.DuplicatePolicy != model.DuplicatePolicySameDeck {
		t.Fatalf("DuplicatePolicy = %v, want SameDeck", got.DuplicatePolicy)
	}
	if len(got.AudioSources) != 1 || got.AudioSources[0].Type != model.AudioSourceJSON {
		t.Fatalf("AudioSources = %+v", got.AudioSources)
	}
}

func TestStoreReplaceIsVisibleToCurrent(t *testing.T) {
	s := NewStore(&model.Profile{Name: "a"})
	if s.Current().Name != "a" {
		t.Fatalf("initial Current() = %q", s.Current().Name)
	}
	s.Replace(&model.Profile{Name: "b"})
	if s.Current().Name != "b" {
		t.Fatalf("after Replace, Current() = %q", s.Current().Name)
	}
}
