package notebuilder

import (
	"context"
	"strconv"
	"strings"

	"github.com/japaniel/minecore/internal/glossary"
	"github.com/japaniel/minecore/internal/model"
)

// resolveKanjiMarker handles markers valid only on kanji notes.
func (b *Builder) resolveKanjiMarker(ctx context.Context, kanji *model.Kanji, m model.Marker) (string, bool) {
	switch parseMarkerKind(m.Name) {
	case MarkerCharacter:
		return kanji.Character, true
	case MarkerOnyomi:
		return joinReadings(kanji, func(d model.KanjiDefinition) []string { return d.Onyomi }), true
	case MarkerKunyomi:
		return joinReadings(kanji, func(d model.KanjiDefinition) []string { return d.Kunyomi }), true
	case MarkerStrokeCount:
		return strconv.Itoa(strokeCount(kanji)), true
	case MarkerGlossary, MarkerGlossaryBrief, MarkerGlossaryCompact:
		return renderKanjiGlossary(kanji, parseMarkerKind(m.Name))
	default:
		return "", false
	}
}

func joinReadings(kanji *model.Kanji, pick func(model.KanjiDefinition) []string) string {
	seen := map[string]bool{}
	var out []string
	for _, d := range kanji.Definitions {
		for _, r := range pick(d) {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return strings.Join(out, "、")
}

// strokeCount looks for a tag named like "strokes-N" on any definition, a
// stand-in for yomitan's dedicated kanji-meta stroke count field since
// KanjiDefinition carries no numeric stroke field of its own.
func strokeCount(kanji *model.Kanji) int {
	for _, d := range kanji.Definitions {
		for _, t := range d.Tags {
			if strings.HasPrefix(t.Name, "strokes-") {
				if n, err := strconv.Atoi(strings.TrimPrefix(t.Name, "strokes-")); err == nil {
					return n
				}
			}
		}
	}
	return 0
}

func renderKanjiGlossary(kanji *model.Kanji, kind MarkerKind) (string, bool) {
	var texts []string
	for _, d := range kanji.Definitions {
		texts = append(texts, d.Glossary...)
	}
	if len(texts) == 0 {
		return "", true
	}

	nodes := make([]model.GlossaryNode, 0, len(texts))
	for _, t := range texts {
		nodes = append(nodes, model.GlossaryNode{Kind: model.GlossaryString, Text: t})
	}
	rendered, _ := glossary.Build(nodes, "", nil)

	switch kind {
	case MarkerGlossaryBrief:
		return strings.Join(rendered, "; "), true
	case MarkerGlossaryCompact:
		return strings.Join(rendered, " / "), true
	default:
		var sb strings.Builder
		sb.WriteString("<ol>")
		for _, r := range rendered {
			sb.WriteString("<li>" + r + "</li>")
		}
		sb.WriteString("</ol>")
		return sb.String(), true
	}
}
