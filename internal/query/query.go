// Package query implements the three SearchQuery generators (exact-prefix,
// MeCab and deconjugation; spec.md §4.3/§4.4) behind a common interface, the way
// the teacher's pkg/dictionary exposes a single lookup surface over
// multiple backing mechanisms.
package query

import "github.com/japaniel/minecore/internal/model"

// Generator produces candidate SearchQuery values for a cursor position
// within input. Implementations never error; an input with no candidates
// yields nil.
type Generator interface {
	Generate(input string) []model.SearchQuery
}
