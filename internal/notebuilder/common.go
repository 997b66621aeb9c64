package notebuilder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/japaniel/minecore/internal/model"
	"github.com/japaniel/minecore/internal/player"
)

// resolveCommonMarker handles markers valid for both term and kanji notes.
// The bool return is "handled" (per spec.md §4.8.2.b), independent of
// whether the resulting text is empty.
func (b *Builder) resolveCommonMarker(ctx context.Context, profile *model.Profile, cf commonFields, m model.Marker, cache *mediaCache) (string, bool) {
	switch parseMarkerKind(m.Name) {
	case MarkerTitle:
		return replaceNewlines(profile, cf.Title), true
	case MarkerClipboard:
		return replaceNewlines(profile, cf.Clipboard), true
	case MarkerSentence:
		return replaceNewlines(profile, cf.Sentence), true
	case MarkerSentenceSec:
		return replaceNewlines(profile, cf.Sentence2), true
	case MarkerContext:
		return replaceNewlines(profile, cf.Context), true
	case MarkerContextSec:
		return replaceNewlines(profile, cf.Context2), true
	case MarkerClozePrefix:
		return replaceNewlines(profile, cf.ClozePrefix), true
	case MarkerClozeBody:
		return replaceNewlines(profile, cf.ClozeBody), true
	case MarkerClozeSuffix:
		return replaceNewlines(profile, cf.Suffix), true
	case MarkerTags:
		return renderTags(cf.Tags, false), true
	case MarkerTagsBrief:
		return renderTags(cf.Tags, true), true
	case MarkerSelection:
		return replaceNewlines(profile, strings.Join(cf.Selection, "; ")), true
	case MarkerFrequencies:
		return renderFrequencies(cf.Frequencies, m.Args), true
	case MarkerFreqHarmonicRank:
		return strconv.Itoa(harmonicRank(cf.Frequencies)), true
	case MarkerFreqHarmonicOccu:
		return strconv.Itoa(harmonicOccurrence(cf.Frequencies)), true
	case MarkerFreqAverageRank:
		return strconv.Itoa(averageRank(cf.Frequencies)), true
	case MarkerFreqAverageOccu:
		return strconv.Itoa(averageOccurrence(cf.Frequencies)), true
	case MarkerScreenshot, MarkerScreenshotVideo:
		return b.resolveScreenshotMarker(ctx, m, cf, cache, parseMarkerKind(m.Name) != MarkerScreenshotVideo)
	case MarkerVideo:
		// spec.md §4.8's contract table doesn't specify a rendering for
		// this marker; left unhandled so it falls through to the raw span.
		return "", false
	case MarkerAudioMedia:
		return b.resolveAudioClipMarker(ctx, m, cf.StartTime, cf.EndTime, profile, cache)
	case MarkerAudioContext:
		return b.resolveAudioClipMarker(ctx, m, cf.StartTimeContext, cf.EndTimeCtx, profile, cache)
	case MarkerGlossary, MarkerGlossaryBrief, MarkerGlossaryCompact:
		// Glossary rendering needs the term's definitions, which
		// commonFields doesn't carry (kanji glossaries render from a
		// different shape). Handled in the entity-specific resolvers.
		return "", false
	default:
		return "", false
	}
}

func replaceNewlines(profile *model.Profile, s string) string {
	if profile.NewlineReplacement == "" {
		return s
	}
	return strings.ReplaceAll(s, "\n", profile.NewlineReplacement)
}

func renderTags(tags []model.Tag, brief bool) string {
	if len(tags) == 0 {
		return ""
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		if brief {
			names = append(names, t.Name)
			continue
		}
		names = append(names, fmt.Sprintf("%s (%s)", t.Name, t.Category.Color()))
	}
	return strings.Join(names, ", ")
}

// renderFrequencies implements the frequencies[:value-only=bool,min-value=bool]
// contract: a <ul> by default, a <br>-joined value list with value-only,
// or (with min-value) only the lowest-valued entry.
func renderFrequencies(freqs []model.Frequency, args map[string]string) string {
	if len(freqs) == 0 {
		return ""
	}

	if args["min-value"] == "true" {
		best, ok := minFrequency(freqs)
		if !ok {
			return ""
		}
		return fmt.Sprintf("%s: %s", best.Dictionary, normalizeFreqValue(best.Freq))
	}

	if args["value-only"] == "true" {
		parts := make([]string, 0, len(freqs))
		for _, f := range freqs {
			parts = append(parts, normalizeFreqValue(f.Freq))
		}
		return strings.Join(parts, "<br>")
	}

	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, f := range freqs {
		sb.WriteString("<li>" + f.Dictionary + ": " + normalizeFreqValue(f.Freq) + "</li>")
	}
	sb.WriteString("</ul>")
	return sb.String()
}

// normalizeFreqValue maps a star rating ★..★★★★★ to 20..100, per spec.md
// §4.8's frequencies contract, and passes through everything else as-is.
func normalizeFreqValue(v string) string {
	stars := strings.Count(v, "★")
	if stars >= 1 && stars <= 5 && strings.Trim(v, "★") == "" {
		return strconv.Itoa(stars * 20)
	}
	return v
}

func minFrequency(freqs []model.Frequency) (model.Frequency, bool) {
	var best model.Frequency
	found := false
	bestVal := 0
	for _, f := range freqs {
		n, ok := firstNumeric(f.Freq)
		if !ok {
			continue
		}
		if !found || n < bestVal {
			best, bestVal, found = f, n, true
		}
	}
	return best, found
}

func firstNumeric(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.Atoi(s[start:])
		return n, err == nil
	}
	return 0, false
}

// harmonicRank/harmonicOccurrence/averageRank/averageOccurrence aggregate
// one number per dictionary (the first numeric capture of that
// dictionary's frequency string), defaulting a dictionary with no numeric
// data to rank 9,999,999 or occurrence 0, per spec.md §4.8.
func perDictionaryNumbers(freqs []model.Frequency, defaultVal int) []int {
	seen := map[string]bool{}
	var out []int
	for _, f := range freqs {
		if seen[f.Dictionary] {
			continue
		}
		seen[f.Dictionary] = true
		if n, ok := firstNumeric(f.Freq); ok {
			out = append(out, n)
		} else {
			out = append(out, defaultVal)
		}
	}
	return out
}

func harmonicRank(freqs []model.Frequency) int {
	return harmonicMean(perDictionaryNumbers(freqs, 9999999))
}

func harmonicOccurrence(freqs []model.Frequency) int {
	return harmonicMean(perDictionaryNumbers(freqs, 0))
}

func averageRank(freqs []model.Frequency) int {
	return arithmeticMean(perDictionaryNumbers(freqs, 9999999))
}

func averageOccurrence(freqs []model.Frequency) int {
	return arithmeticMean(perDictionaryNumbers(freqs, 0))
}

func harmonicMean(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	sumInv := 0.0
	for _, n := range nums {
		if n == 0 {
			return 0
		}
		sumInv += 1.0 / float64(n)
	}
	return int(float64(len(nums)) / sumInv)
}

func arithmeticMean(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	sum := 0
	for _, n := range nums {
		sum += n
	}
	return sum / len(nums)
}

// resolveScreenshotMarker synthesizes (or reuses a cached) screenshot for
// max-width/max-height/keep-ratio parameter tuple, returning the marker's
// text substitution (empty — the image attaches as media, not text).
func (b *Builder) resolveScreenshotMarker(ctx context.Context, m model.Marker, cf commonFields, cache *mediaCache, subtitled bool) (string, bool) {
	opts := player.ScreenshotOptions{
		MaxWidth:  atoiDefault(m.Args["max-width"], 0),
		MaxHeight: atoiDefault(m.Args["max-height"], 0),
		KeepRatio: m.Args["keep-ratio"] == "true",
		Subtitled: subtitled,
	}
	key := fmt.Sprintf("%d-%d-%v-%v", opts.MaxWidth, opts.MaxHeight, opts.KeepRatio, opts.Subtitled)
	if _, ok := cache.screenshots[key]; ok {
		return "", true
	}

	if b.Player == nil || b.WriteTemp == nil {
		return "", true
	}
	data, err := b.Player.Screenshot(ctx, opts)
	if err != nil {
		b.Logger.Warn("screenshot synthesis failed", "error", err)
		return "", true
	}
	path, err := b.WriteTemp(".jpg", data)
	if err != nil {
		b.Logger.Warn("screenshot write failed", "error", err)
		return "", true
	}
	cache.screenshots[key] = model.MediaRef{SourcePath: path, TargetName: hashedMediaName(data, ".jpg")}
	return "", true
}

func (b *Builder) resolveAudioClipMarker(ctx context.Context, m model.Marker, start, end float64, profile *model.Profile, cache *mediaCache) (string, bool) {
	padStart := profile.AudioPadStart
	padEnd := profile.AudioPadEnd
	key := fmt.Sprintf("%f-%f", start-padStart, end+padEnd)
	if _, ok := cache.audioClips[key]; ok {
		return "", true
	}

	if b.Player == nil || b.WriteTemp == nil {
		return "", true
	}
	data, err := b.Player.AudioClip(ctx, start-padStart, end+padEnd, profile.AudioNormalize, profile.AudioNormalizeLUFS)
	if err != nil {
		b.Logger.Warn("audio clip synthesis failed", "error", err)
		return "", true
	}
	path, err := b.WriteTemp(".aac", data)
	if err != nil {
		b.Logger.Warn("audio clip write failed", "error", err)
		return "", true
	}
	cache.audioClips[key] = model.MediaRef{SourcePath: path, TargetName: hashedMediaName(data, ".aac")}
	return "", true
}

// hashedMediaName names a synthesized media file by its content hash, the
// same determinism property the glossary file map gives dictionary assets.
func hashedMediaName(data []byte, ext string) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]) + ext
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
