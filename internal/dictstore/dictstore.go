// Package dictstore implements the dictionary store facade of spec.md §4.5:
// resolving SearchQuery lists into merged Term/Kanji results over a bounded
// number of concurrent lookups, backed by SQLite.
//
// The fan-out and result-reordering buffer are grounded on
// _examples/japaniel-readerer/pkg/ingest/ingest.go's producer/consumer
// loop (workers submit to a result channel; a single consumer buffers
// out-of-order completions in a map keyed by index and releases them once
// contiguous). Unlike the teacher's Ingester, which hands that fan-out to a
// standalone workerPool type, here the search-generation token
// (searchGen) that lets a later SearchTerms call invalidate an in-flight
// earlier one (spec.md §5) has to be visible at submission, completion, and
// publish time, so the bounded concurrency (a sem chan) is inlined at this
// one call site instead of hidden behind a separate pool abstraction that
// would have no generation-awareness of its own.
package dictstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/japaniel/minecore/internal/model"
	"github.com/japaniel/minecore/internal/xerrors"
)

// AddabilityChecker is the subset of the SRS adapter the addability probe
// (spec.md §4.5 "Addability probe") needs: can this exact field value be
// added without creating a duplicate note.
type AddabilityChecker interface {
	CanAdd(ctx context.Context, expression string) (bool, error)
}

// Store is the dictionary store facade. The zero value is not usable;
// construct with Open.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
	srs    AddabilityChecker

	workers int

	searchGen atomic.Int64
}

// Open initializes schema on db and returns a ready Store. workers bounds
// the per-search worker pool size (spec.md §5 concurrency model).
func Open(db *sql.DB, workers int, logger *slog.Logger, srs AddabilityChecker) (*Store, error) {
	if err := InitDB(db); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, workers: workers, logger: logger, srs: srs}, nil
}

// EnabledDictionaries returns the names of enabled dictionaries, in user
// priority order.
func (s *Store) EnabledDictionaries() ([]string, error) {
	rows, err := listDictionaries(s.db)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, r := range rows {
		if r.Enabled {
			out = append(out, r.Name)
		}
	}
	return out, nil
}

// Reorder rewrites dictionary priorities to match names' order.
func (s *Store) Reorder(names []string) error {
	return reorderDictionaries(s.db, names)
}

// DeleteDictionary removes a dictionary and (via ON DELETE CASCADE) all of
// its terms/kanji/frequencies/pitches/tags.
func (s *Store) DeleteDictionary(name string) error {
	return deleteDictionaryRow(s.db, name)
}

// SeedDictionary is the bulk-import shape AddDictionary consumes. The real
// archive format a production mining core imports is explicitly opaque to
// the core per spec.md §6 ("The archive format itself is opaque to the
// core"); this JSON shape is this store's own stand-in seed format, grounded
// in structure (not byte format) on the teacher's pkg/dictionary JMdict
// decoding idiom.
type SeedDictionary struct {
	Name        string                  `json:"name"`
	Revision    string                  `json:"revision"`
	Sequence    int                     `json:"sequence"`
	Author      string                  `json:"author"`
	Priority    int                     `json:"priority"`
	Terms       []SeedTerm              `json:"terms"`
	Kanji       []SeedKanji             `json:"kanji"`
	Frequencies []SeedFrequency         `json:"frequencies"`
	Pitches     []SeedPitch             `json:"pitches"`
	Tags        []model.Tag             `json:"tags"`
}

type SeedTerm struct {
	Expression  string                  `json:"expression"`
	Reading     string                  `json:"reading"`
	Definitions []model.TermDefinition  `json:"definitions"`
	Tags        []model.Tag             `json:"tags"`
	Rules       []model.Tag             `json:"rules"`
	Score       int                     `json:"score"`
}

type SeedKanji struct {
	Character string            `json:"character"`
	Onyomi    []string          `json:"onyomi"`
	Kunyomi   []string          `json:"kunyomi"`
	Glossary  []string          `json:"glossary"`
	Tags      []model.Tag       `json:"tags"`
	Stats     map[string]string `json:"stats"`
}

type SeedFrequency struct {
	Headword string `json:"headword"`
	Reading  string `json:"reading"`
	Display  string `json:"display"`
}

type SeedPitch struct {
	Headword string   `json:"headword"`
	Reading  string   `json:"reading"`
	Mora     []string `json:"mora"`
	Position []uint8  `json:"position"`
}

// AddDictionary decodes a SeedDictionary from raw JSON and writes it in
// batched transactions via batchWriter, adapted from the teacher's
// BatchWriter so a multi-thousand-entry import doesn't hold one giant
// transaction open for the whole load.
func (s *Store) AddDictionary(ctx context.Context, raw []byte) error {
	var seed SeedDictionary
	if err := json.Unmarshal(raw, &seed); err != nil {
		return xerrors.Configuration(err)
	}

	dictID, err := insertDictionary(s.db, seed.Name, seed.Revision, seed.Sequence, seed.Author, seed.Priority)
	if err != nil {
		return xerrors.Transient(err)
	}

	bw := newBatchWriter(s.db, 200)
	for _, t := range seed.Terms {
		term := t
		if err := bw.submit(ctx, func(ctx context.Context, tx *sql.Tx) error {
			return insertTerm(tx, dictID, term.Expression, term.Reading, term.Definitions, term.Tags, term.Rules, term.Score)
		}); err != nil {
			return xerrors.Transient(err)
		}
	}
	for _, k := range seed.Kanji {
		kanji := k
		if err := bw.submit(ctx, func(ctx context.Context, tx *sql.Tx) error {
			return insertKanji(tx, dictID, kanji.Character, kanji.Onyomi, kanji.Kunyomi, kanji.Glossary, kanji.Tags, kanji.Stats)
		}); err != nil {
			return xerrors.Transient(err)
		}
	}
	for _, f := range seed.Frequencies {
		freq := f
		if err := bw.submit(ctx, func(ctx context.Context, tx *sql.Tx) error {
			return insertFrequency(tx, dictID, freq.Headword, freq.Reading, freq.Display)
		}); err != nil {
			return xerrors.Transient(err)
		}
	}
	for _, p := range seed.Pitches {
		pitch := p
		if err := bw.submit(ctx, func(ctx context.Context, tx *sql.Tx) error {
			return insertPitch(tx, dictID, pitch.Headword, pitch.Reading, pitch.Mora, pitch.Position)
		}); err != nil {
			return xerrors.Transient(err)
		}
	}
	for _, tag := range seed.Tags {
		t := tag
		if err := bw.submit(ctx, func(ctx context.Context, tx *sql.Tx) error {
			return insertTag(tx, dictID, t)
		}); err != nil {
			return xerrors.Transient(err)
		}
	}

	return bw.close(ctx)
}

// searchHit pairs a raw term/kanji match with the query that produced it,
// carrying what the merge step needs to rank and cloze-annotate it.
type searchHit struct {
	term   model.Term
	source model.QuerySource
	surfaceRuneLen int
}

// SearchTerms fans queries out over a bounded set of goroutines, looks
// each one up against enabled dictionaries, and returns merged Term
// results annotated with cloze splits, honoring the ordering and
// cancellation rules of spec.md §4.5/§5. If a later SearchTerms call
// supersedes this one, or ctx is cancelled, before results are ready, it
// returns xerrors.Cancelled: that is a "no result this round" outcome,
// not a failure to surface to the user.
func (s *Store) SearchTerms(ctx context.Context, queries []model.SearchQuery, sentence string, cursorIndex int) ([]model.Term, error) {
	if len(queries) == 0 {
		return nil, nil
	}

	gen := s.searchGen.Add(1)

	type indexedResult struct {
		index int
		hits  []searchHit
	}

	resultCh := make(chan indexedResult, len(queries))
	sem := make(chan struct{}, s.workers)

	var wg sync.WaitGroup
	for i, q := range queries {
		i, q := i, q
		if ctx.Err() != nil || s.searchGen.Load() != gen {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			if s.searchGen.Load() != gen {
				return
			}
			rows, err := findTermsByExpressionOrReading(s.db, q.Deconj)
			if err != nil {
				s.logger.Debug("dictstore: term lookup failed", "query", q.Deconj, "error", err)
				resultCh <- indexedResult{index: i}
				return
			}
			if s.searchGen.Load() != gen {
				return
			}
			hits := groupTermRows(rows, q)
			resultCh <- indexedResult{index: i, hits: hits}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	buffer := make(map[int][]searchHit, len(queries))
	for res := range resultCh {
		buffer[res.index] = res.hits
	}

	if ctx.Err() != nil || s.searchGen.Load() != gen {
		return nil, xerrors.Cancelled
	}

	var ordered []searchHit
	for i := 0; i < len(queries); i++ {
		ordered = append(ordered, buffer[i]...)
	}

	return mergeTermHits(ordered, sentence, cursorIndex), nil
}

// groupTermRows merges per-dictionary rows that share (expression, reading)
// into a single Term (definitions ordered by dictionary priority, since the
// rows already arrive in that order), and wraps each group with the source
// metadata the cross-group merge needs.
func groupTermRows(rows []termRow, q model.SearchQuery) []searchHit {
	type key struct{ expression, reading string }
	order := make([]key, 0, len(rows))
	terms := make(map[key]*model.Term, len(rows))

	for _, r := range rows {
		k := key{r.Expression, r.Reading}
		t, ok := terms[k]
		if !ok {
			t = &model.Term{Expression: r.Expression, Reading: r.Reading}
			terms[k] = t
			order = append(order, k)
		}

		var defs []model.TermDefinition
		_ = json.Unmarshal([]byte(r.DefinitionsJSON), &defs)
		for i := range defs {
			defs[i].Dictionary = r.DictionaryName
			defs[i].DictionaryID = r.DictionaryID
		}
		t.Definitions = append(t.Definitions, defs...)

		var tags []model.Tag
		_ = json.Unmarshal([]byte(r.TagsJSON), &tags)
		t.Tags = append(t.Tags, tags...)

		t.Score += r.Score
	}

	hits := make([]searchHit, 0, len(order))
	for _, k := range order {
		hits = append(hits, searchHit{
			term:           *terms[k],
			source:         q.Source,
			surfaceRuneLen: len([]rune(q.Surface)),
		})
	}
	return hits
}

// sourceRank orders sources within an equal surface length: Deconj sorts
// before MeCab, which sorts before Exact (spec.md §4.5 merge rule).
func sourceRank(s model.QuerySource) int {
	switch s {
	case model.SourceDeconj:
		return 0
	case model.SourceMeCab:
		return 1
	default:
		return 2
	}
}

// mergeTermHits applies the cross-group ordering rule (longer surface
// wins; ties broken by source rank), dedupes by (expression, reading)
// while unioning in definitions (by dictionary) and tags (by name)
// contributed by a later hit on the same headword, and stamps the cloze
// triple derived from the winning
// hit's surface length.
func mergeTermHits(hits []searchHit, sentence string, cursorIndex int) []model.Term {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].surfaceRuneLen != hits[j].surfaceRuneLen {
			return hits[i].surfaceRuneLen > hits[j].surfaceRuneLen
		}
		return sourceRank(hits[i].source) < sourceRank(hits[j].source)
	})

	type key struct{ expression, reading string }
	order := make([]key, 0, len(hits))
	merged := make(map[key]*model.Term, len(hits))
	surfaceLenOf := make(map[key]int, len(hits))

	for _, h := range hits {
		k := key{h.term.Expression, h.term.Reading}
		if existing, ok := merged[k]; ok {
			haveDict := map[int64]bool{}
			for _, d := range existing.Definitions {
				haveDict[d.DictionaryID] = true
			}
			for _, d := range h.term.Definitions {
				if !haveDict[d.DictionaryID] {
					existing.Definitions = append(existing.Definitions, d)
				}
			}
			haveTag := map[string]bool{}
			for _, tg := range existing.Tags {
				haveTag[tg.Name] = true
			}
			for _, tg := range h.term.Tags {
				if !haveTag[tg.Name] {
					existing.Tags = append(existing.Tags, tg)
				}
			}
			continue
		}
		t := h.term
		applyCloze(&t, sentence, cursorIndex, h.surfaceRuneLen)
		merged[k] = &t
		surfaceLenOf[k] = h.surfaceRuneLen
		order = append(order, k)
	}

	out := make([]model.Term, 0, len(order))
	for _, k := range order {
		out = append(out, *merged[k])
	}
	return out
}

// applyCloze fills cloze_prefix/body/suffix so prefix+body+suffix==sentence
// and body spans exactly surfaceRuneLen runes starting at cursorIndex
// (spec.md §3 invariant 4, §8 property 2).
func applyCloze(t *model.Term, sentence string, cursorIndex, surfaceRuneLen int) {
	runes := []rune(sentence)
	if cursorIndex < 0 {
		cursorIndex = 0
	}
	if cursorIndex > len(runes) {
		cursorIndex = len(runes)
	}
	end := cursorIndex + surfaceRuneLen
	if end > len(runes) {
		end = len(runes)
	}

	t.Sentence = sentence
	t.ClozePrefix = string(runes[:cursorIndex])
	t.ClozeBody = string(runes[cursorIndex:end])
	t.ClozeSuffix = string(runes[end:])
}

// SearchKanji resolves a single character against enabled dictionaries.
// Per-dictionary failures are swallowed (spec.md §4.5 failure semantics);
// an empty result is a valid, non-error outcome.
func (s *Store) SearchKanji(character, sentence string, cursorIndex int) *model.Kanji {
	rows, err := findKanjiByCharacter(s.db, character)
	if err != nil {
		s.logger.Debug("dictstore: kanji lookup failed", "character", character, "error", err)
		return nil
	}
	if len(rows) == 0 {
		return nil
	}

	k := &model.Kanji{Character: character}
	for _, r := range rows {
		var onyomi, kunyomi, glossary []string
		_ = json.Unmarshal([]byte(r.OnyomiJSON), &onyomi)
		_ = json.Unmarshal([]byte(r.KunyomiJSON), &kunyomi)
		_ = json.Unmarshal([]byte(r.GlossaryJSON), &glossary)
		var tags []model.Tag
		_ = json.Unmarshal([]byte(r.TagsJSON), &tags)
		var stats map[string]string
		_ = json.Unmarshal([]byte(r.StatsJSON), &stats)

		k.Definitions = append(k.Definitions, model.KanjiDefinition{
			Dictionary: r.DictionaryName,
			Onyomi:     onyomi,
			Kunyomi:    kunyomi,
			Glossary:   glossary,
			Tags:       tags,
			Stats:      stats,
		})
	}

	applyKanjiCloze(k, sentence, cursorIndex)
	return k
}

func applyKanjiCloze(k *model.Kanji, sentence string, cursorIndex int) {
	runes := []rune(sentence)
	if cursorIndex < 0 {
		cursorIndex = 0
	}
	if cursorIndex > len(runes) {
		cursorIndex = len(runes)
	}
	end := cursorIndex + 1
	if end > len(runes) {
		end = len(runes)
	}
	k.Sentence = sentence
	k.ClozePrefix = string(runes[:cursorIndex])
	k.ClozeBody = string(runes[cursorIndex:end])
	k.ClozeSuffix = string(runes[end:])
}

// IsWordAddableForSentence probes the SRS backend for both the expression
// and (when it differs) the reading-as-expression variant, per spec.md
// §4.5's addability probe.
func (s *Store) IsWordAddableForSentence(ctx context.Context, t model.Term) (expressionAddable, readingAddable bool) {
	if s.srs == nil {
		return false, false
	}
	expressionAddable, _ = s.srs.CanAdd(ctx, t.Expression)
	if t.Reading != "" && t.Reading != t.Expression {
		readingAddable, _ = s.srs.CanAdd(ctx, t.Reading)
	}
	return expressionAddable, readingAddable
}

// Frequencies returns every enabled dictionary's frequency entry for
// headword, converted to the model's display type.
func (s *Store) Frequencies(headword string) ([]model.Frequency, error) {
	rows, err := findFrequencies(s.db, headword)
	if err != nil {
		return nil, err
	}
	out := make([]model.Frequency, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Frequency{Dictionary: r.DictionaryName, Freq: r.FreqDisplay})
	}
	return out, nil
}

// Pitches returns every enabled dictionary's pitch-accent entry for
// headword.
func (s *Store) Pitches(headword string) ([]model.Pitch, error) {
	rows, err := findPitches(s.db, headword)
	if err != nil {
		return nil, err
	}
	out := make([]model.Pitch, 0, len(rows))
	for _, r := range rows {
		var mora []string
		_ = json.Unmarshal([]byte(r.MoraJSON), &mora)
		var position []uint8
		_ = json.Unmarshal([]byte(r.PositionJSON), &position)
		out = append(out, model.Pitch{Dictionary: r.DictionaryName, Mora: mora, Position: position})
	}
	return out, nil
}
