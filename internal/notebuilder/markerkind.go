package notebuilder

// MarkerKind enumerates the closed set of field-template markers this
// builder understands. Per the redesign flag in spec.md §9, dispatch is an
// enum + switch rather than duck-typed handler lookup; the name strings
// themselves are ported verbatim from original_source/src/anki/marker.h.
type MarkerKind int

const (
	MarkerUnknown MarkerKind = iota

	// Common markers (valid for both term and kanji notes).
	MarkerAudioContext
	MarkerAudioMedia
	MarkerClipboard
	MarkerClozeBody
	MarkerClozePrefix
	MarkerClozeSuffix
	MarkerContext
	MarkerContextSec
	MarkerFreqAverageOccu
	MarkerFreqAverageRank
	MarkerFreqHarmonicOccu
	MarkerFreqHarmonicRank
	MarkerFrequencies
	MarkerGlossary
	MarkerScreenshot
	MarkerScreenshotVideo
	MarkerSentence
	MarkerSentenceSec
	MarkerTags
	MarkerTagsBrief
	MarkerTitle
	MarkerVideo

	// Term markers. Selection is resolved as a common marker, and
	// glossary-brief/glossary-compact also render on kanji notes.
	MarkerAudio
	MarkerExpression
	MarkerFurigana
	MarkerFuriganaPlain
	MarkerGlossaryBrief
	MarkerGlossaryCompact
	MarkerPitch
	MarkerPitchCategories
	MarkerPitchGraph
	MarkerPitchPosition
	MarkerReading
	MarkerSelection

	// Kanji-only markers.
	MarkerCharacter
	MarkerKunyomi
	MarkerOnyomi
	MarkerStrokeCount
)

var markerNames = map[string]MarkerKind{
	"audio-context":                  MarkerAudioContext,
	"audio-media":                    MarkerAudioMedia,
	"clipboard":                      MarkerClipboard,
	"cloze-body":                     MarkerClozeBody,
	"cloze-prefix":                   MarkerClozePrefix,
	"cloze-suffix":                   MarkerClozeSuffix,
	"context":                        MarkerContext,
	"context-2":                      MarkerContextSec,
	"frequency-average-occurrence":   MarkerFreqAverageOccu,
	"frequency-average-rank":         MarkerFreqAverageRank,
	"frequency-harmonic-occurrence":  MarkerFreqHarmonicOccu,
	"frequency-harmonic-rank":        MarkerFreqHarmonicRank,
	"frequencies":                    MarkerFrequencies,
	"glossary":                       MarkerGlossary,
	"screenshot":                     MarkerScreenshot,
	"screenshot-video":               MarkerScreenshotVideo,
	"sentence":                       MarkerSentence,
	"sentence-2":                     MarkerSentenceSec,
	"tags":                           MarkerTags,
	"tags-brief":                     MarkerTagsBrief,
	"title":                          MarkerTitle,
	"video":                          MarkerVideo,
	"audio":                          MarkerAudio,
	"expression":                     MarkerExpression,
	"furigana":                       MarkerFurigana,
	"furigana-plain":                 MarkerFuriganaPlain,
	"glossary-brief":                 MarkerGlossaryBrief,
	"glossary-compact":               MarkerGlossaryCompact,
	"pitch":                          MarkerPitch,
	"pitch-categories":               MarkerPitchCategories,
	"pitch-graph":                    MarkerPitchGraph,
	"pitch-position":                 MarkerPitchPosition,
	"reading":                        MarkerReading,
	"selection":                      MarkerSelection,
	"character":                      MarkerCharacter,
	"kunyomi":                        MarkerKunyomi,
	"onyomi":                         MarkerOnyomi,
	"stroke-count":                   MarkerStrokeCount,
}

func parseMarkerKind(name string) MarkerKind {
	if k, ok := markerNames[name]; ok {
		return k
	}
	return MarkerUnknown
}
