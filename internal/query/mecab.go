package query

import (
	"github.com/japaniel/minecore/internal/mecab"
	"github.com/japaniel/minecore/internal/model"
)

// mecabAdapter is the subset of *mecab.Adapter this package depends on,
// narrowed for testability (a fake can stand in without building a real
// ipadic-backed tokenizer).
type mecabAdapter interface {
	Generate(input string) []mecab.Triple
}

// MeCabGenerator turns the segmenter adapter's (deconj, surface,
// cleanSurface) triples (spec.md §4.2) into SearchQuery values tagged
// SourceMeCab.
type MeCabGenerator struct {
	Adapter mecabAdapter
}

func NewMeCabGenerator(a *mecab.Adapter) MeCabGenerator {
	return MeCabGenerator{Adapter: a}
}

func (g MeCabGenerator) Generate(input string) []model.SearchQuery {
	if g.Adapter == nil {
		return nil
	}
	triples := g.Adapter.Generate(input)
	if len(triples) == 0 {
		return nil
	}

	queries := make([]model.SearchQuery, 0, len(triples))
	for _, t := range triples {
		queries = append(queries, model.SearchQuery{
			Source:  model.SourceMeCab,
			Deconj:  t.Deconj,
			Surface: t.CleanSurface,
		})
	}
	return queries
}
