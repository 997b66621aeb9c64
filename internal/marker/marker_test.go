package marker

import "testing"

func TestTokenizeSimpleMarker(t *testing.T) {
	got := Tokenize("{expression}")
	if len(got) != 1 {
		t.Fatalf("got %d tokens, want 1", len(got))
	}
	if got[0].Raw != "{expression}" {
		t.Fatalf("Raw = %q", got[0].Raw)
	}
	if len(got[0].Alternatives) != 1 || got[0].Alternatives[0].Name != "expression" {
		t.Fatalf("Alternatives = %+v", got[0].Alternatives)
	}
}

func TestTokenizeArgsAndAlternatives(t *testing.T) {
	got := Tokenize("{audio-media:start=0,end=1|audio-context}")
	if len(got) != 1 {
		t.Fatalf("got %d tokens, want 1", len(got))
	}
	alts := got[0].Alternatives
	if len(alts) != 2 {
		t.Fatalf("got %d alternatives, want 2: %+v", len(alts), alts)
	}
	if alts[0].Name != "audio-media" || alts[0].Args["start"] != "0" || alts[0].Args["end"] != "1" {
		t.Fatalf("first alternative = %+v", alts[0])
	}
	if alts[1].Name != "audio-context" || len(alts[1].Args) != 0 {
		t.Fatalf("second alternative = %+v", alts[1])
	}
}

func TestTokenizeMalformedArgDropsRemainingAlternatives(t *testing.T) {
	got := Tokenize("{good|bad:a:b:c|also-dropped}")
	if len(got) != 1 {
		t.Fatalf("got %d tokens, want 1", len(got))
	}
	alts := got[0].Alternatives
	if len(alts) != 1 || alts[0].Name != "good" {
		t.Fatalf("alternatives = %+v, want only 'good' to survive", alts)
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	text := "prefix {expression} middle {reading:kind=furigana} suffix"
	tokens := Tokenize(text)
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	for _, tok := range tokens {
		if !containsSubstring(text, tok.Raw) {
			t.Fatalf("token raw %q not found verbatim in source text", tok.Raw)
		}
	}
}

func containsSubstring(haystack, needle string) bool {
	return len(needle) > 0 && (func() bool {
		for i := 0; i+len(needle) <= len(haystack); i++ {
			if haystack[i:i+len(needle)] == needle {
				return true
			}
		}
		return false
	})()
}

func TestTokenizeNoMarkers(t *testing.T) {
	if got := Tokenize("no markers here"); got != nil {
		t.Fatalf("Tokenize(no markers) = %v, want nil", got)
	}
}

func TestTokenizeAllAlternativesMalformedDropsToken(t *testing.T) {
	got := Tokenize("{bad:a:b:c}")
	if got != nil {
		t.Fatalf("Tokenize(all malformed) = %v, want nil", got)
	}
}
