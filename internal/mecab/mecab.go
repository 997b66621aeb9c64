// Package mecab adapts the MeCab-lattice segmenter contract of spec.md §4.2
// onto github.com/ikawaha/kagome/v2, the pure-Go morphological analyzer the
// teacher (japaniel-readerer) already depends on for the same ipadic
// feature-vector layout (index 6 = base form, index 7 = reading) the
// original C++ adapter reads from libmecab nodes.
//
// Grounded on _examples/japaniel-readerer/pkg/readerer/readerer.go's
// Analyzer type: constructor-error-as-sentinel pattern, feature-index
// reading, and DUMMY-class skipping are carried over unchanged; the
// prefix-accumulation recursion that turns a token sequence into
// per-prefix search triples is new, built to match spec.md §4.2's
// "recursively prepends ... to every triple produced by the remaining
// node chain" contract.
package mecab

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Triple is one (deconj, surface, cleanSurface) segmentation candidate:
// Surface is the raw node text (including any leading whitespace it
// carries), CleanSurface is whitespace-trimmed, and Deconj is the node's
// dictionary/base form.
type Triple struct {
	Deconj       string
	Surface      string
	CleanSurface string
}

// Adapter is a long-lived kagome tokenizer. The zero value is not valid;
// construct with New. Kagome has no notion of a bundled-dictionary-path
// failure (the ipadic dictionary is compiled in), so the 8.3-short-path
// concern from the original adapter's contract does not apply here.
type Adapter struct {
	t   *tokenizer.Tokenizer
	err error
}

// New builds an Adapter. Construction failure is recorded rather than
// returned, matching the is_valid()-after-construction contract in
// spec.md §4.2: all Generate calls on an invalid Adapter return nil.
func New() *Adapter {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return &Adapter{err: err}
	}
	return &Adapter{t: t}
}

// IsValid reports whether the underlying tokenizer initialized correctly.
func (a *Adapter) IsValid() bool { return a.err == nil }

// Generate tokenizes input and returns one Triple per token-prefix of the
// segmentation: the first token alone, the first two tokens joined, the
// first three, and so on — mirroring the original adapter's recursive
// prepend over the MeCab node chain.
//
// Kagome's public API exposes only the single best-path token sequence, not
// true lattice sibling alternatives (the original's node->bnext chain); this
// adapter approximates the contract by building the same prefix-accumulation
// candidate list over that best path. See DESIGN.md for the rationale.
func (a *Adapter) Generate(input string) []Triple {
	if a == nil || !a.IsValid() || input == "" {
		return nil
	}

	tokens := a.t.Tokenize(input)
	var nodes []Triple
	for _, tok := range tokens {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		features := tok.Features()
		if len(features) > 6 && features[6] == "*" {
			continue
		}

		clean := strings.TrimSpace(tok.Surface)
		if clean == "" {
			continue
		}

		deconj := tok.Surface
		if len(features) > 6 && features[6] != "*" {
			deconj = features[6]
		}

		nodes = append(nodes, Triple{
			Deconj:       deconj,
			Surface:      tok.Surface,
			CleanSurface: clean,
		})
	}

	return accumulatePrefixes(nodes)
}

// accumulatePrefixes turns a flat node sequence into one triple per prefix
// length. Surface and CleanSurface concatenate left to right; Deconj joins
// the clean surfaces of every leading node with the dictionary form of only
// the last node in the prefix — e.g. for tokens [n1, n2, n3], prefix 2's
// deconj is cleanSurface(n1) + deconj(n2). This matches the original
// adapter's generateQueriesHelper, where p.deconj.prepend(surfaceClean) is
// applied to a child chain's already-computed deconj (which itself ends in
// a single node's dictionary form), so the glued prefix's lookup key treats
// every token but the last as literal text and only the last as the
// conjugation target.
func accumulatePrefixes(nodes []Triple) []Triple {
	if len(nodes) == 0 {
		return nil
	}

	var out []Triple
	var surface, clean strings.Builder
	for i, n := range nodes {
		surface.WriteString(n.Surface)
		clean.WriteString(n.CleanSurface)
		out = append(out, Triple{
			Deconj:       clean.String()[:len(clean.String())-len(n.CleanSurface)] + n.Deconj,
			Surface:      surface.String(),
			CleanSurface: clean.String(),
		})
		_ = i
	}
	return out
}
