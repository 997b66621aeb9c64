package query

import (
	"github.com/japaniel/minecore/internal/deconj"
	"github.com/japaniel/minecore/internal/model"
)

// DeconjGenerator wraps the deconjugator (spec.md §4.4): it maps each
// ConjugationInfo's outermost derivation to a rule-filter tag and merges
// results sharing a (base, explanation) pair by unioning their rule
// filters.
type DeconjGenerator struct {
	SentenceMode bool
}

func ruleFilterTag(f model.WordForm) (string, bool) {
	switch f {
	case model.FormGodanVerb:
		return "v5", true
	case model.FormIchidanVerb:
		return "v1", true
	case model.FormKuruVerb:
		return "vk", true
	case model.FormSuruVerb:
		return "vs", true
	case model.FormAdjective:
		return "adj-i", true
	default:
		return "", false
	}
}

type dedupKey struct {
	base        string
	explanation string
}

func (g DeconjGenerator) Generate(input string) []model.SearchQuery {
	infos := deconj.Deconjugate(input, g.SentenceMode)
	if len(infos) == 0 {
		return nil
	}

	order := make([]dedupKey, 0, len(infos))
	merged := make(map[dedupKey]*model.SearchQuery, len(infos))

	for _, info := range infos {
		if len(info.Derivations) == 0 {
			continue
		}
		tag, ok := ruleFilterTag(info.Derivations[0])
		if !ok {
			continue
		}

		key := dedupKey{base: info.Base, explanation: info.DerivationDisplay}
		if existing, found := merged[key]; found {
			existing.RuleFilter[tag] = struct{}{}
			continue
		}

		q := &model.SearchQuery{
			Source:      model.SourceDeconj,
			Deconj:      info.Base,
			Surface:     info.Conjugated,
			RuleFilter:  map[string]struct{}{tag: {}},
			Explanation: info.DerivationDisplay,
		}
		merged[key] = q
		order = append(order, key)
	}

	queries := make([]model.SearchQuery, 0, len(order))
	for _, key := range order {
		queries = append(queries, *merged[key])
	}
	return queries
}
