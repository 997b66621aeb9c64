// Package marker implements the `{marker1[:k=v,...]|marker2[:...]}` field
// template grammar of spec.md §4.6.
//
// Grounded on original_source/src/anki/markertokenizer.cpp: the non-greedy
// `{.*?}` token regex, the `|`-separated alternative list, and the
// "malformed argument list drops this alternative and every alternative
// after it, but keeps ones already parsed" early-exit behavior are ported
// here by semantics.
package marker

import (
	"regexp"
	"strings"

	"github.com/japaniel/minecore/internal/model"
)

var tokenMatcher = regexp.MustCompile(`\{.*?\}`)

// Tokenize parses every `{...}` span in text into a MarkerToken. Spans
// whose alternatives are all malformed are dropped entirely; tokenizer
// round-trip (spec.md §8 property 3) holds: token Raw spans are disjoint,
// taken verbatim from text, and cover every match of the token regex
// except the dropped ones.
func Tokenize(text string) []model.MarkerToken {
	matches := tokenMatcher.FindAllString(text, -1)

	var tokens []model.MarkerToken
	for _, raw := range matches {
		inner := raw[1 : len(raw)-1]
		alternatives := parseAlternatives(inner)
		if len(alternatives) == 0 {
			continue
		}
		tokens = append(tokens, model.MarkerToken{Raw: raw, Alternatives: alternatives})
	}
	return tokens
}

// parseAlternatives splits inner on '|' and parses each piece into a
// Marker. A piece with more than one ':' is malformed: parsing stops there,
// discarding that piece and every later one, but keeping the ones already
// parsed.
func parseAlternatives(inner string) []model.Marker {
	var markers []model.Marker
	for _, piece := range strings.Split(inner, "|") {
		parts := strings.SplitN(piece, ":", 2)
		if len(parts) == 0 {
			break
		}

		name := strings.TrimSpace(parts[0])
		if len(parts) == 1 {
			markers = append(markers, model.Marker{Name: name})
			continue
		}

		if strings.Contains(parts[1], ":") {
			break
		}

		args := map[string]string{}
		for _, arg := range strings.Split(parts[1], ",") {
			kv := strings.SplitN(arg, "=", 2)
			if len(kv) != 2 || strings.Contains(kv[1], "=") {
				continue
			}
			args[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
		markers = append(markers, model.Marker{Name: name, Args: args})
	}
	return markers
}
