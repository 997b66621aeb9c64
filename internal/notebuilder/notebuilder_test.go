package notebuilder

import (
	"context"
	"strings"
	"testing"

	"github.com/japaniel/minecore/internal/model"
	"github.com/japaniel/minecore/internal/player"
)

func testProfile() *model.Profile {
	return &model.Profile{
		Name:     "default",
		Deck:     "Japanese",
		NoteType: "Minecore",
		Tags:     []string{"minecore"},
		TermFieldTemplates: map[string]string{
			"Expression": "{expression}",
			"Reading":    "{reading}",
			"Furigana":   "{furigana}",
			"Sentence":   "{sentence}",
			"Glossary":   "{glossary}",
			"Fallback":   "{unknown-marker}",
		},
		KanjiFieldTemplates: map[string]string{
			"Character": "{character}",
			"Onyomi":    "{onyomi}",
		},
	}
}

func tempWriter(t *testing.T) TempWriter {
	t.Helper()
	return func(ext string, data []byte) (string, error) {
		return "/tmp/fake" + ext, nil
	}
}

func TestBuildForTermCommonAndEntityMarkers(t *testing.T) {
	term := &model.Term{
		Expression: "すき焼き",
		Reading:    "すきやき",
		Sentence:   "昨日すき焼きを食べました",
		Definitions: []model.TermDefinition{
			{Glossary: []model.GlossaryNode{{Kind: model.GlossaryString, Text: "sukiyaki"}}},
		},
	}
	b := New(nil, nil, tempWriter(t), nil)

	note, err := b.BuildForTerm(context.Background(), testProfile(), term)
	if err != nil {
		t.Fatalf("BuildForTerm: %v", err)
	}
	if note.Fields["Expression"] != "すき焼き" {
		t.Fatalf("Expression = %q", note.Fields["Expression"])
	}
	if note.Fields["Reading"] != "すきやき" {
		t.Fatalf("Reading = %q", note.Fields["Reading"])
	}
	if !strings.Contains(note.Fields["Furigana"], "<ruby>") {
		t.Fatalf("Furigana = %q, want <ruby> markup", note.Fields["Furigana"])
	}
	if note.Fields["Sentence"] != "昨日すき焼きを食べました" {
		t.Fatalf("Sentence = %q", note.Fields["Sentence"])
	}
	if !strings.Contains(note.Fields["Glossary"], "sukiyaki") {
		t.Fatalf("Glossary = %q, want to contain sukiyaki", note.Fields["Glossary"])
	}
	if note.Fields["Fallback"] != "{unknown-marker}" {
		t.Fatalf("Fallback = %q, want raw span preserved for unhandled marker", note.Fields["Fallback"])
	}
	if note.Deck != "Japanese" || note.NoteType != "Minecore" {
		t.Fatalf("note header not copied from profile: %+v", note)
	}
}

func TestBuildForTermReadingAsExpression(t *testing.T) {
	term := &model.Term{Expression: "猫", Reading: "ねこ"}
	profile := testProfile()
	profile.ReadingAsExpression = true
	b := New(nil, nil, tempWriter(t), nil)

	note, _ := b.BuildForTerm(context.Background(), profile, term)
	if note.Fields["Expression"] != "ねこ" {
		t.Fatalf("Expression = %q, want reading substituted", note.Fields["Expression"])
	}
}

func TestBuildForKanji(t *testing.T) {
	kanji := &model.Kanji{
		Character: "猫",
		Definitions: []model.KanjiDefinition{
			{Onyomi: []string{"ビョウ"}, Kunyomi: []string{"ねこ"}},
		},
	}
	b := New(nil, nil, tempWriter(t), nil)
	note, err := b.BuildForKanji(context.Background(), testProfile(), kanji)
	if err != nil {
		t.Fatalf("BuildForKanji: %v", err)
	}
	if note.Fields["Character"] != "猫" {
		t.Fatalf("Character = %q", note.Fields["Character"])
	}
	if note.Fields["Onyomi"] != "ビョウ" {
		t.Fatalf("Onyomi = %q", note.Fields["Onyomi"])
	}
}

func TestScreenshotMarkerSynthesizesOncePerParamTuple(t *testing.T) {
	fake := &player.FakePlayer{ScreenshotBytes: []byte("jpeg-bytes")}
	profile := testProfile()
	profile.TermFieldTemplates = map[string]string{
		"Shot1": "{screenshot}",
		"Shot2": "{screenshot}",
	}
	b := New(fake, nil, tempWriter(t), nil)

	term := &model.Term{Expression: "x"}
	note, err := b.BuildForTerm(context.Background(), profile, term)
	if err != nil {
		t.Fatalf("BuildForTerm: %v", err)
	}
	if len(fake.ScreenshotCalls) != 1 {
		t.Fatalf("got %d screenshot calls, want 1 (deduped by param tuple)", len(fake.ScreenshotCalls))
	}
	if len(note.FileMap) != 1 {
		t.Fatalf("got %d file map entries, want 1", len(note.FileMap))
	}
}

func TestGlossaryDictFilterRejectsNonNumeric(t *testing.T) {
	term := &model.Term{
		Expression:  "x",
		Definitions: []model.TermDefinition{{Glossary: []model.GlossaryNode{{Kind: model.GlossaryString, Text: "a"}}}},
	}
	b := New(nil, nil, tempWriter(t), nil)
	got, handled := b.renderTermGlossary(term, map[string]string{"dict": "abc"}, glossaryFull)
	if !handled {
		t.Fatalf("expected handled=true")
	}
	if got != "ERROR: Invalid dic-id value" {
		t.Fatalf("got %q, want error message", got)
	}
}

func TestPitchCategoriesHeiban(t *testing.T) {
	term := &model.Term{
		Pitches: []model.Pitch{{Mora: []string{"す", "き"}, Position: []uint8{0}}},
	}
	got := renderPitchCategories(term)
	if got != "heiban" {
		t.Fatalf("got %q, want heiban", got)
	}
}
