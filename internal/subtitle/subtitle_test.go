package subtitle

import "testing"

func TestSanitizeRubyStripsRtAndRp(t *testing.T) {
	in := "<ruby>漢字<rp>(</rp><rt>かんじ</rt><rp>)</rp></ruby>です"
	got := SanitizeRubyString(in)
	want := "<ruby>漢字</ruby>です"
	if got != want {
		t.Fatalf("SanitizeRubyString(%q) = %q, want %q", in, got, want)
	}
}

func TestSanitizeRubyNoMarkup(t *testing.T) {
	in := "今日は良い天気です"
	if got := SanitizeRubyString(in); got != in {
		t.Fatalf("SanitizeRubyString(%q) = %q, want unchanged", in, got)
	}
}
