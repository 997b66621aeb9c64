package mecab

import "testing"

func TestNewIsValid(t *testing.T) {
	a := New()
	if !a.IsValid() {
		t.Fatalf("expected ipadic-backed tokenizer to initialize successfully")
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	a := New()
	if got := a.Generate(""); got != nil {
		t.Fatalf("Generate(\"\") = %v, want nil", got)
	}
}

func TestGenerateProducesOnePerPrefix(t *testing.T) {
	a := New()
	triples := a.Generate("食べました")
	if len(triples) == 0 {
		t.Fatalf("expected at least one segmentation triple")
	}

	// Prefix lengths (in runes of CleanSurface) must be strictly
	// increasing: each triple covers the same tokens as the previous one
	// plus exactly one more.
	prevLen := 0
	for i, tr := range triples {
		n := len([]rune(tr.CleanSurface))
		if n <= prevLen {
			t.Fatalf("triple %d CleanSurface %q (len %d) not longer than previous (len %d)", i, tr.CleanSurface, n, prevLen)
		}
		prevLen = n
		if tr.Deconj == "" {
			t.Fatalf("triple %d has empty Deconj", i)
		}
	}

	last := triples[len(triples)-1]
	if last.CleanSurface != "食べました" {
		t.Fatalf("final triple CleanSurface = %q, want full input", last.CleanSurface)
	}
}

func TestInvalidAdapterReturnsNil(t *testing.T) {
	var a *Adapter
	if got := a.Generate("食べました"); got != nil {
		t.Fatalf("nil-ish adapter Generate = %v, want nil", got)
	}
}
