// Package notebuilder evaluates a profile's per-field templates against a
// Term or Kanji and produces a NoteContext ready to hand to an SRS client.
//
// Grounded on spec.md §4.8's template-evaluation algorithm and on
// original_source/src/anki/marker.h's marker catalog. Per the redesign
// flag in spec.md §9, marker dispatch uses the MarkerKind enum and a
// switch (markerkind.go) instead of a duck-typed handler table.
package notebuilder

import (
	"context"
	"log/slog"

	"github.com/japaniel/minecore/internal/glossary"
	"github.com/japaniel/minecore/internal/marker"
	"github.com/japaniel/minecore/internal/model"
	"github.com/japaniel/minecore/internal/player"
)

// AudioResolver resolves a term's configured audio catalog down to a
// single playable candidate, per spec.md §4.9. Implemented by
// internal/audiosource.
type AudioResolver interface {
	ResolveTermAudio(ctx context.Context, sources []model.AudioSource, expression, reading string) (model.ResolvedAudio, bool)
}

// TempWriter persists synthesized media bytes to a file the caller (the
// SRS client) can later read, returning its path.
type TempWriter func(ext string, data []byte) (path string, err error)

// Builder evaluates field templates into a NoteContext.
type Builder struct {
	Player    player.Adapter
	Audio     AudioResolver
	WriteTemp TempWriter

	GlossaryBasePath string
	GlossaryLoad     glossary.FileLoader

	Logger *slog.Logger
}

// New constructs a Builder. A nil logger falls back to slog.Default, as
// the rest of this module does for its ambient logger.
func New(p player.Adapter, audio AudioResolver, writeTemp TempWriter, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{Player: p, Audio: audio, WriteTemp: writeTemp, Logger: logger}
}

// mediaCache dedupes media synthesis within one BuildForTerm/BuildForKanji
// call: "the builder now synthesizes the corresponding artifact exactly
// once per distinct parameter tuple" (spec.md §4.8 step 3).
type mediaCache struct {
	screenshots map[string]model.MediaRef
	audioClips  map[string]model.MediaRef
}

func newMediaCache() *mediaCache {
	return &mediaCache{
		screenshots: map[string]model.MediaRef{},
		audioClips:  map[string]model.MediaRef{},
	}
}

// commonFields is the subset of Term/Kanji shared by the common-marker
// handlers, so resolveCommonMarker doesn't need to know which entity it
// came from.
type commonFields struct {
	Title, Clipboard               string
	Sentence, Sentence2            string
	Context, Context2              string
	ClozePrefix, ClozeBody, Suffix string
	Tags                           []model.Tag
	Frequencies                    []model.Frequency
	Selection                      []string
	StartTime, EndTime             float64
	StartTimeContext, EndTimeCtx   float64
}

func (b *Builder) termCommonFields(t *model.Term) commonFields {
	return commonFields{
		Title: t.Title, Clipboard: t.Clipboard,
		Sentence: t.Sentence, Sentence2: t.Sentence2,
		Context: t.Context, Context2: t.Context2,
		ClozePrefix: t.ClozePrefix, ClozeBody: t.ClozeBody, Suffix: t.ClozeSuffix,
		Tags: t.Tags, Frequencies: t.Frequencies, Selection: t.Selection,
		StartTime: t.StartTime, EndTime: t.EndTime,
		StartTimeContext: t.StartTimeContext, EndTimeCtx: t.EndTimeContext,
	}
}

func (b *Builder) kanjiCommonFields(k *model.Kanji) commonFields {
	return commonFields{
		Title: k.Title, Clipboard: k.Clipboard,
		Sentence: k.Sentence, Sentence2: k.Sentence2,
		Context: k.Context, Context2: k.Context2,
		ClozePrefix: k.ClozePrefix, ClozeBody: k.ClozeBody, Suffix: k.ClozeSuffix,
		Frequencies: k.Frequencies, Selection: k.Selection,
		StartTime: k.StartTime, EndTime: k.EndTime,
		StartTimeContext: k.StartTimeContext, EndTimeCtx: k.EndTimeContext,
	}
}

// BuildForTerm evaluates profile.TermFieldTemplates against term.
func (b *Builder) BuildForTerm(ctx context.Context, profile *model.Profile, term *model.Term) (*model.NoteContext, error) {
	cf := b.termCommonFields(term)
	cache := newMediaCache()

	resolve := func(ctx context.Context, m model.Marker) (string, bool) {
		if text, handled := b.resolveCommonMarker(ctx, profile, cf, m, cache); handled {
			return text, true
		}
		return b.resolveTermMarker(ctx, profile, term, m, cache)
	}

	return b.build(ctx, profile, profile.TermFieldTemplates, cache, resolve)
}

// BuildForKanji evaluates profile.KanjiFieldTemplates against kanji.
func (b *Builder) BuildForKanji(ctx context.Context, profile *model.Profile, kanji *model.Kanji) (*model.NoteContext, error) {
	cf := b.kanjiCommonFields(kanji)
	cache := newMediaCache()

	resolve := func(ctx context.Context, m model.Marker) (string, bool) {
		if text, handled := b.resolveCommonMarker(ctx, profile, cf, m, cache); handled {
			return text, true
		}
		return b.resolveKanjiMarker(ctx, kanji, m)
	}

	return b.build(ctx, profile, profile.KanjiFieldTemplates, cache, resolve)
}

func (b *Builder) build(
	ctx context.Context,
	profile *model.Profile,
	templates map[string]string,
	cache *mediaCache,
	resolve func(context.Context, model.Marker) (string, bool),
) (*model.NoteContext, error) {
	note := &model.NoteContext{
		Deck:            profile.Deck,
		NoteType:        profile.NoteType,
		Tags:            append([]string(nil), profile.Tags...),
		DuplicatePolicy: profile.DuplicatePolicy,
		Fields:          map[string]string{},
	}

	for field, template := range templates {
		note.Fields[field] = b.evaluateTemplate(ctx, template, resolve)
	}

	for _, ref := range cache.screenshots {
		note.FileMap = append(note.FileMap, ref)
	}
	for _, ref := range cache.audioClips {
		note.FileMap = append(note.FileMap, ref)
	}

	return note, nil
}

// evaluateTemplate implements spec.md §4.8 step 2: tokenize, then for each
// token walk alternatives until one yields non-empty text, falling back to
// an empty-but-handled alternative, and finally to the raw span untouched.
func (b *Builder) evaluateTemplate(ctx context.Context, template string, resolve func(context.Context, model.Marker) (string, bool)) string {
	tokens := marker.Tokenize(template)
	result := template

	for _, tok := range tokens {
		replacement := tok.Raw
		handledEmpty := ""
		haveHandledEmpty := false

		for _, alt := range tok.Alternatives {
			text, handled := resolve(ctx, alt)
			if !handled {
				continue
			}
			if text != "" {
				replacement = text
				haveHandledEmpty = false
				break
			}
			if !haveHandledEmpty {
				handledEmpty = text
				haveHandledEmpty = true
			}
		}

		if replacement == tok.Raw && haveHandledEmpty {
			replacement = handledEmpty
		}

		result = replaceFirst(result, tok.Raw, replacement)
	}

	return result
}

func replaceFirst(s, old, new string) string {
	idx := indexOf(s, old)
	if idx < 0 {
		return s
	}
	return s[:idx] + new + s[idx+len(old):]
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
