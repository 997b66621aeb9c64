package deconj

import (
	"testing"

	"github.com/japaniel/minecore/internal/model"
)

func hasBase(results []model.ConjugationInfo, base string) (model.ConjugationInfo, bool) {
	for _, r := range results {
		if r.Base == base {
			return r, true
		}
	}
	return model.ConjugationInfo{}, false
}

// TestDeconjugateTerminatesAndIsWellFormed covers spec property 1: the
// result list is finite, every entry's derivation chain is non-empty, and
// the chain's outermost link (the form actually attached to Base) is always
// a terminal word class.
func TestDeconjugateTerminatesAndIsWellFormed(t *testing.T) {
	inputs := []string{"食べなかった", "美味しくなかった", "食べたくなかった", "見られる", "", "た"}
	for _, in := range inputs {
		results := Deconjugate(in, false)
		for _, r := range results {
			if len(r.Derivations) == 0 {
				t.Fatalf("Deconjugate(%q): empty derivation chain for base %q", in, r.Base)
			}
			outer := r.Derivations[0]
			if !outer.IsTerminal() {
				t.Fatalf("Deconjugate(%q): base %q does not terminate in a terminal form (got %v)", in, r.Base, outer)
			}
		}
	}
}

func TestDeconjugateEmptyInput(t *testing.T) {
	if got := Deconjugate("", false); len(got) != 0 {
		t.Fatalf("Deconjugate(\"\") = %v, want empty", got)
	}
}

// TestDeconjugateNegativePastAdjective covers seed scenario S1:
// 美味しくなかった -> 美味しい, with derivation past « negative.
func TestDeconjugateNegativePastAdjective(t *testing.T) {
	results := Deconjugate("美味しくなかった", false)
	r, ok := hasBase(results, "美味しい")
	if !ok {
		t.Fatalf("Deconjugate(美味しくなかった) missing base 美味しい, got %+v", results)
	}
	if r.DerivationDisplay == "" {
		t.Fatalf("expected non-empty derivation display for %q", r.Base)
	}
}

// TestDeconjugateTaiChain covers seed scenario S3:
// 食べたくなかった -> 食べる via the -tai/adjective silent-rule chain.
func TestDeconjugateTaiChain(t *testing.T) {
	results := Deconjugate("食べたくなかった", false)
	if _, ok := hasBase(results, "食べる"); !ok {
		bases := make([]string, len(results))
		for i, r := range results {
			bases[i] = r.Base
		}
		t.Fatalf("Deconjugate(食べたくなかった) missing base 食べる, got bases %v", bases)
	}
}

func TestDeconjugateMasuStemDisplay(t *testing.T) {
	results := Deconjugate("食べます", false)
	r, ok := hasBase(results, "食べる")
	if !ok {
		t.Fatalf("Deconjugate(食べます) missing base 食べる")
	}
	if r.DerivationDisplay == "" {
		t.Fatalf("expected masu-stem derivation display to be non-empty")
	}
}

func TestDeconjugateSentenceModeWidensSearch(t *testing.T) {
	sentence := "食べたくなかったです"
	withoutSentenceMode := Deconjugate(sentence, false)
	withSentenceMode := Deconjugate(sentence, true)
	if len(withSentenceMode) < len(withoutSentenceMode) {
		t.Fatalf("sentence mode produced fewer results (%d) than exact mode (%d)", len(withSentenceMode), len(withoutSentenceMode))
	}
	if _, ok := hasBase(withSentenceMode, "食べる"); !ok {
		t.Fatalf("sentence-mode search over %q did not find base 食べる via a shorter prefix", sentence)
	}
}
