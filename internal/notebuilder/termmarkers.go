package notebuilder

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/japaniel/minecore/internal/glossary"
	"github.com/japaniel/minecore/internal/model"
)

// resolveTermMarker handles markers valid only on term notes.
func (b *Builder) resolveTermMarker(ctx context.Context, profile *model.Profile, term *model.Term, m model.Marker, cache *mediaCache) (string, bool) {
	switch parseMarkerKind(m.Name) {
	case MarkerExpression:
		if profile.ReadingAsExpression {
			return term.Reading, true
		}
		return term.Expression, true
	case MarkerReading:
		if term.Reading == "" || profile.ReadingAsExpression {
			return term.Expression, true
		}
		return term.Reading, true
	case MarkerFurigana:
		if term.Reading == "" {
			return term.Expression, true
		}
		return fmt.Sprintf("<ruby>%s<rt>%s</rt></ruby>", term.Expression, term.Reading), true
	case MarkerFuriganaPlain:
		if term.Reading == "" {
			return term.Expression, true
		}
		return fmt.Sprintf("%s[%s]", term.Expression, term.Reading), true
	case MarkerGlossary:
		return b.renderTermGlossary(term, m.Args, glossaryFull)
	case MarkerGlossaryBrief:
		return b.renderTermGlossary(term, m.Args, glossaryBrief)
	case MarkerGlossaryCompact:
		return b.renderTermGlossary(term, m.Args, glossaryCompact)
	case MarkerPitch:
		return renderPitchText(term.Pitches), true
	case MarkerPitchGraph:
		return renderPitchGraph(term.Pitches), true
	case MarkerPitchPosition:
		return renderPitchPosition(term.Pitches), true
	case MarkerPitchCategories:
		return renderPitchCategories(term), true
	case MarkerAudio:
		return b.resolveTermAudioMarker(ctx, profile, term, cache)
	default:
		return "", false
	}
}

type glossaryStyle int

const (
	glossaryFull glossaryStyle = iota
	glossaryBrief
	glossaryCompact
)

var tagStripper = regexp.MustCompile(`<[^>]*>`)

// renderTermGlossary implements glossary[:dict=<id>] filtering and the
// full/brief/compact renderings of spec.md §4.8.
func (b *Builder) renderTermGlossary(term *model.Term, args map[string]string, style glossaryStyle) (string, bool) {
	defs := term.Definitions
	if raw, ok := args["dict"]; ok {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "ERROR: Invalid dic-id value", true
		}
		filtered := make([]model.TermDefinition, 0, len(defs))
		for _, d := range defs {
			if d.DictionaryID == id {
				filtered = append(filtered, d)
			}
		}
		defs = filtered
	}

	var nodes []model.GlossaryNode
	for _, d := range defs {
		nodes = append(nodes, d.Glossary...)
	}
	if len(nodes) == 0 {
		return "", true
	}

	rendered, _ := glossary.Build(nodes, b.GlossaryBasePath, b.GlossaryLoad)

	switch style {
	case glossaryBrief:
		plain := make([]string, 0, len(rendered))
		for _, r := range rendered {
			plain = append(plain, strings.TrimSpace(tagStripper.ReplaceAllString(r, " ")))
		}
		return strings.Join(plain, "; "), true
	case glossaryCompact:
		plain := make([]string, 0, len(rendered))
		for _, r := range rendered {
			plain = append(plain, strings.TrimSpace(tagStripper.ReplaceAllString(r, " ")))
		}
		return strings.Join(plain, " / "), true
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

// renderPitchText draws HL/LH boundary markup for each pitch dictionary
// entry. With downstep position pos, the first mora is high only when pos
// is 1; every later mora is high up to and including the pos-th mora and
// low after it, and with pos 0 (heiban) every mora after the first is high.
func renderPitchText(pitches []model.Pitch) string {
	if len(pitches) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pitches))
	for _, p := range pitches {
		pos := 0
		if len(p.Position) > 0 {
			pos = int(p.Position[0])
		}
		var sb strings.Builder
		for i, mora := range p.Mora {
			high := (i == 0 && pos == 1) || (i >= 1 && (pos == 0 || i < pos))
			if high {
				sb.WriteString("<span class=\"pitch-high\">" + mora + "</span>")
			} else {
				sb.WriteString("<span class=\"pitch-low\">" + mora + "</span>")
			}
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, "<br>")
}

// renderPitchGraph draws a minimal inline SVG polyline through each mora's
// pitch height, one per dictionary entry.
func renderPitchGraph(pitches []model.Pitch) string {
	if len(pitches) == 0 {
		return ""
	}
	var out strings.Builder
	for _, p := range pitches {
		pos := 0
		if len(p.Position) > 0 {
			pos = int(p.Position[0])
		}
		n := len(p.Mora)
		if n == 0 {
			continue
		}
		width := n * 30
		var points strings.Builder
		for i := 0; i < n; i++ {
			x := i*30 + 15
			y := 30
			high := (i == 0 && pos == 1) || (i >= 1 && (pos == 0 || i < pos))
			if high {
				y = 10
			}
			fmt.Fprintf(&points, "%d,%d ", x, y)
		}
		fmt.Fprintf(&out, `<svg width="%d" height="40"><polyline points="%s" fill="none" stroke="black"/></svg>`, width, strings.TrimSpace(points.String()))
	}
	return out.String()
}

func renderPitchPosition(pitches []model.Pitch) string {
	if len(pitches) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pitches))
	for _, p := range pitches {
		pos := 0
		if len(p.Position) > 0 {
			pos = int(p.Position[0])
		}
		parts = append(parts, fmt.Sprintf("[%d]", pos))
	}
	return strings.Join(parts, " ")
}

// renderPitchCategories classifies each pitch entry per spec.md §4.8:
// heiban (position 0), atamadaka/kifuku (position 1), odaka (position ==
// mora length), nakadaka/kifuku otherwise, where kifuku is chosen when the
// term's rules carry a verb/i-adj tag without a suru tag. The result is
// comma-separated and deduplicated.
func renderPitchCategories(term *model.Term) string {
	hasVerbOrAdj, hasSuru := false, false
	for _, d := range term.Definitions {
		for _, r := range d.Rules {
			switch r.Name {
			case "v1", "v5", "vk", "adj-i":
				hasVerbOrAdj = true
			case "vs":
				hasSuru = true
			}
		}
	}

	seen := map[string]bool{}
	var out []string
	add := func(cat string) {
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}

	for _, p := range term.Pitches {
		pos := 0
		if len(p.Position) > 0 {
			pos = int(p.Position[0])
		}
		moraLen := len(p.Mora)
		switch {
		case pos == 0:
			add("heiban")
		case pos == 1:
			if hasVerbOrAdj && !hasSuru {
				add("kifuku")
			} else {
				add("atamadaka")
			}
		case pos == moraLen:
			add("odaka")
		default:
			if hasVerbOrAdj && !hasSuru {
				add("kifuku")
			} else {
				add("nakadaka")
			}
		}
	}
	return strings.Join(out, ", ")
}

func (b *Builder) resolveTermAudioMarker(ctx context.Context, profile *model.Profile, term *model.Term, cache *mediaCache) (string, bool) {
	if b.Audio == nil {
		return "", true
	}
	resolved, ok := b.Audio.ResolveTermAudio(ctx, profile.AudioSources, term.Expression, term.Reading)
	if !ok {
		return "", true
	}
	cache.audioClips["term-audio"] = model.MediaRef{SourcePath: resolved.URL, TargetName: resolved.Name}
	return "", true
}
