// Package subtitle models the subtitle-changed event the player adapter
// emits (spec.md §6) and cleans ruby markup out of cue text before it
// reaches the query generators.
//
// SanitizeRuby is carried over from
// _examples/japaniel-readerer/pkg/readerer/readerer.go, whose doc comment
// explains the same motivation that applies here: subtitle renderers can
// embed <rt>/<rp> furigana spans inline, which would otherwise duplicate
// into the mined sentence text (e.g. "漢字" becoming "漢字かんじ").
package subtitle

import "regexp"

// Event is one subtitle-changed notification from the player adapter:
// cue text plus its timing window and the configured subtitle delay.
type Event struct {
	Text      string
	StartTime float64
	EndTime   float64
	Delay     float64
}

var (
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby strips <rt>...</rt> and <rp>...</rp> spans from cue text.
// Operates on bytes and is safe for UTF-8 content since <, >, r, t, p are
// all ASCII.
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, nil)
	cleaned = reRP.ReplaceAll(cleaned, nil)
	return cleaned
}

// SanitizeRubyString is the string-oriented convenience wrapper most
// callers want, since Event.Text is a string rather than a byte slice.
func SanitizeRubyString(s string) string {
	return string(SanitizeRuby([]byte(s)))
}
