package query

import (
	"testing"

	"github.com/japaniel/minecore/internal/mecab"
	"github.com/japaniel/minecore/internal/model"
)

func TestExactGeneratorProducesEveryPrefix(t *testing.T) {
	g := ExactGenerator{}
	got := g.Generate("すき焼き")
	want := []string{"すき焼き", "すき焼", "すき", "す"}
	if len(got) != len(want) {
		t.Fatalf("got %d queries, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Surface != w || got[i].Deconj != w {
			t.Fatalf("query %d = %+v, want surface/deconj %q", i, got[i], w)
		}
		if got[i].Source != model.SourceExact {
			t.Fatalf("query %d source = %v, want SourceExact", i, got[i].Source)
		}
	}
}

func TestExactGeneratorEmptyInput(t *testing.T) {
	if got := (ExactGenerator{}).Generate(""); got != nil {
		t.Fatalf("Generate(\"\") = %v, want nil", got)
	}
}

type fakeMecabAdapter struct {
	triples []mecab.Triple
}

func (f fakeMecabAdapter) Generate(input string) []mecab.Triple { return f.triples }

func TestMeCabGeneratorWrapsTriples(t *testing.T) {
	g := MeCabGenerator{Adapter: fakeMecabAdapter{triples: []mecab.Triple{
		{Deconj: "す", Surface: "す", CleanSurface: "す"},
		{Deconj: "すき", Surface: "すき", CleanSurface: "すき"},
		{Deconj: "すき焼く", Surface: "すき焼き", CleanSurface: "すき焼き"},
	}}}
	got := g.Generate("すき焼きを")
	if len(got) != 3 {
		t.Fatalf("got %d queries, want 3", len(got))
	}
	for _, q := range got {
		if q.Source != model.SourceMeCab {
			t.Fatalf("query %+v has wrong source", q)
		}
	}
	if got[2].Deconj != "すき焼く" || got[2].Surface != "すき焼き" {
		t.Fatalf("query 2 = %+v, unexpected", got[2])
	}
}

func TestMeCabGeneratorNilAdapter(t *testing.T) {
	g := MeCabGenerator{}
	if got := g.Generate("すき焼き"); got != nil {
		t.Fatalf("Generate with nil adapter = %v, want nil", got)
	}
}

func TestDeconjGeneratorMapsRuleFilters(t *testing.T) {
	g := DeconjGenerator{}
	got := g.Generate("食べなかった")
	if len(got) == 0 {
		t.Fatalf("expected at least one query for 食べなかった")
	}
	for _, q := range got {
		if q.Source != model.SourceDeconj {
			t.Fatalf("query %+v has wrong source", q)
		}
		if len(q.RuleFilter) == 0 {
			t.Fatalf("query %+v has empty rule filter", q)
		}
	}
}

func TestDeconjGeneratorDedupsByBaseAndExplanation(t *testing.T) {
	g := DeconjGenerator{}
	got := g.Generate("食べなかった")
	seen := map[dedupKey]bool{}
	for _, q := range got {
		key := dedupKey{base: q.Deconj, explanation: q.Explanation}
		if seen[key] {
			t.Fatalf("duplicate (base, explanation) pair %+v in output", key)
		}
		seen[key] = true
	}
}
