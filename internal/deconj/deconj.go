// Package deconj implements backward conjugation search: given a surface
// form, it walks a fixed rule table to recover every dictionary-form base
// the surface could have been conjugated from, together with the chain of
// grammatical forms the recovery passed through.
//
// Grounded on original_source/src/dict/deconjugator.cpp: the rule/silentRule
// tables, the depth-first recursive search, and the derivation-display
// formatting (including the masu-stem "trailing conjunctive" rule) are
// ported here by semantics, restructured around model.WordForm and
// model.ConjugationInfo instead of the original's Qt value types.
package deconj

import "github.com/japaniel/minecore/internal/model"

// Deconjugate returns every base form reachable from query by one or more
// steps of backward conjugation. When sentenceMode is true, the search also
// repeats against every strict prefix of query (dropping trailing runes one
// at a time), the way the original's sentence-level search widens a cursor
// leftward one character per failed attempt. Never returns an error; an
// empty or fully-exhausted query yields nil.
func Deconjugate(query string, sentenceMode bool) []model.ConjugationInfo {
	runes := []rune(query)
	var results []model.ConjugationInfo

	if !sentenceMode {
		results = deconjugateOne(query)
		for i := range results {
			results[i].DerivationDisplay = formatDerivation(results[i].Derivations)
		}
		return results
	}

	for end := len(runes); end > 0; end-- {
		sub := string(runes[:end])
		results = append(results, deconjugateOne(sub)...)
	}
	for i := range results {
		results[i].DerivationDisplay = formatDerivation(results[i].Derivations)
	}
	return results
}

func deconjugateOne(word string) []model.ConjugationInfo {
	if word == "" {
		return nil
	}
	var results []model.ConjugationInfo
	start := model.ConjugationInfo{
		Base:       word,
		Conjugated: word,
	}
	deconjugateRecursive(start, &results)
	return results
}

// deconjugateRecursive mirrors the original's depth-first search: it tries
// every rule whose conjugated ending matches the tail of info.Base, and
// whose conjugatedType matches the current derivation chain's head (or any
// rule, if the chain is still empty). When a rule lands on a terminal word
// form it is recorded as a result, and additionally re-explored through any
// silent rule matching that terminal class, to reach further bases hidden
// behind a reclassification (e.g. -tai treated as an adjective).
func deconjugateRecursive(info model.ConjugationInfo, results *[]model.ConjugationInfo) {
	var head model.WordForm = model.FormAny
	if len(info.Derivations) > 0 {
		head = info.Derivations[0]
	}

	for _, r := range rules {
		if head != model.FormAny && r.conjugatedType != head {
			continue
		}
		if !hasSuffix(info.Base, r.conjugated) {
			continue
		}

		child := createDerivation(info, r)

		if r.baseType.IsTerminal() {
			*results = append(*results, child)
			for _, sr := range silentRules {
				if sr.conjugatedType != r.baseType {
					continue
				}
				if !hasSuffix(child.Base, sr.conjugated) {
					continue
				}
				reclassified := model.ConjugationInfo{
					Base:        child.Base,
					Conjugated:  child.Conjugated,
					Derivations: prepend(child.Derivations, sr.baseType),
				}
				deconjugateRecursive(reclassified, results)
			}
			continue
		}

		deconjugateRecursive(child, results)
	}
}

// createDerivation splices rule.base into parent.Base in place of the
// matched rule.conjugated suffix, then prepends the rule's two form classes
// to the derivation chain (conjugatedType first, then baseType), matching
// the original's createDerivation.
func createDerivation(parent model.ConjugationInfo, r rule) model.ConjugationInfo {
	baseRunes := []rune(parent.Base)
	conjRunes := []rune(r.conjugated)
	replacementStart := len(baseRunes) - len(conjRunes)

	newBase := string(baseRunes[:replacementStart]) + r.base

	derivations := append([]model.WordForm{}, parent.Derivations...)
	derivations = prepend(derivations, r.conjugatedType)
	derivations = prepend(derivations, r.baseType)

	return model.ConjugationInfo{
		Base:        newBase,
		Conjugated:  parent.Conjugated,
		Derivations: derivations,
	}
}

func prepend(chain []model.WordForm, f model.WordForm) []model.WordForm {
	out := make([]model.WordForm, 0, len(chain)+1)
	out = append(out, f)
	out = append(out, chain...)
	return out
}

func hasSuffix(s, suffix string) bool {
	sr, xr := []rune(s), []rune(suffix)
	if len(xr) > len(sr) {
		return false
	}
	off := len(sr) - len(xr)
	for i, r := range xr {
		if sr[off+i] != r {
			return false
		}
	}
	return true
}

// formatDerivation renders a derivation chain into a "a « b « c" display
// string read right to left: the form of the surface text comes first and
// the form nearest the base comes last (e.g. "past « negative"). Terminal
// forms are dropped, and so are conjunctive forms, except a conjunctive
// directly after the base form (index 1), the innermost derivation — the
// masu-stem display rule: a conjunctive somewhere in the middle of a chain
// is just scaffolding for a further rule, but one attached to the base
// itself is shown as a trailing "masu stem".
func formatDerivation(derivations []model.WordForm) string {
	if len(derivations) == 0 {
		return ""
	}

	var parts []string
	for i := len(derivations) - 1; i >= 0; i-- {
		f := derivations[i]
		if f.IsTerminal() || (f == model.FormConjunctive && i != 1) {
			continue
		}
		parts = append(parts, wordFormToString(f))
	}

	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " « "
		}
		out += p
	}
	return out
}
