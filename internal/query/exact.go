package query

import "github.com/japaniel/minecore/internal/model"

// ExactGenerator is the fallback generator: it emits every code-point-safe
// prefix of the input, longest first, as its own SearchQuery.
//
// Grounded on original_source/src/dict/exactquerygenerator.cpp, whose
// generateQueries chops one trailing character at a time off a copy of the
// input until empty.
type ExactGenerator struct{}

func (ExactGenerator) Generate(input string) []model.SearchQuery {
	runes := []rune(input)
	if len(runes) == 0 {
		return nil
	}

	queries := make([]model.SearchQuery, 0, len(runes))
	for n := len(runes); n > 0; n-- {
		slice := string(runes[:n])
		queries = append(queries, model.SearchQuery{
			Source:  model.SourceExact,
			Deconj:  slice,
			Surface: slice,
		})
	}
	return queries
}
