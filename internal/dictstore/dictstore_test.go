package dictstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/japaniel/minecore/internal/model"
	"github.com/japaniel/minecore/internal/xerrors"
)

type fakeSRS struct {
	addable map[string]bool
}

func (f fakeSRS) CanAdd(ctx context.Context, expression string) (bool, error) {
	return f.addable[expression], nil
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := Open(db, 2, nil, fakeSRS{addable: map[string]bool{"すき焼き": true}})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return store
}

func seedJSON(t *testing.T, seed SeedDictionary) []byte {
	t.Helper()
	raw, err := json.Marshal(seed)
	if err != nil {
		t.Fatalf("marshal seed: %v", err)
	}
	return raw
}

func TestAddDictionaryAndSearchTerms(t *testing.T) {
	store := openTestStore(t)

	seed := SeedDictionary{
		Name:     "jmdict",
		Priority: 0,
		Terms: []SeedTerm{
			{
				Expression: "すき焼き",
				Reading:    "すきやき",
				Definitions: []model.TermDefinition{
					{Glossary: []model.GlossaryNode{{Kind: model.GlossaryString, Text: "sukiyaki"}}},
				},
			},
		},
	}
	if err := store.AddDictionary(context.Background(), seedJSON(t, seed)); err != nil {
		t.Fatalf("AddDictionary: %v", err)
	}

	queries := []model.SearchQuery{
		{Source: model.SourceExact, Deconj: "すき焼き", Surface: "すき焼き"},
	}
	terms, err := store.SearchTerms(context.Background(), queries, "昨日すき焼きを食べました", 2)
	if err != nil {
		t.Fatalf("SearchTerms: %v", err)
	}
	if len(terms) != 1 {
		t.Fatalf("got %d terms, want 1: %+v", len(terms), terms)
	}

	got := terms[0]
	if got.Expression != "すき焼き" {
		t.Fatalf("Expression = %q, want すき焼き", got.Expression)
	}
	if got.ClozePrefix+got.ClozeBody+got.ClozeSuffix != got.Sentence {
		t.Fatalf("cloze triple does not reconstruct sentence: %q+%q+%q != %q", got.ClozePrefix, got.ClozeBody, got.ClozeSuffix, got.Sentence)
	}
	if got.ClozeBody != "すき焼き" {
		t.Fatalf("ClozeBody = %q, want すき焼き", got.ClozeBody)
	}
}

func TestSearchTermsLongestSurfaceWins(t *testing.T) {
	store := openTestStore(t)

	seed := SeedDictionary{
		Name: "jmdict",
		Terms: []SeedTerm{
			{Expression: "す", Reading: "す"},
			{Expression: "すき焼き", Reading: "すきやき"},
		},
	}
	if err := store.AddDictionary(context.Background(), seedJSON(t, seed)); err != nil {
		t.Fatalf("AddDictionary: %v", err)
	}

	queries := []model.SearchQuery{
		{Source: model.SourceExact, Deconj: "す", Surface: "す"},
		{Source: model.SourceExact, Deconj: "すき焼き", Surface: "すき焼き"},
	}
	terms, err := store.SearchTerms(context.Background(), queries, "すき焼きを食べました", 0)
	if err != nil {
		t.Fatalf("SearchTerms: %v", err)
	}
	if len(terms) != 2 {
		t.Fatalf("got %d terms, want 2", len(terms))
	}
	if terms[0].Expression != "すき焼き" {
		t.Fatalf("first result = %q, want longer-surface match すき焼き first", terms[0].Expression)
	}
}

func TestEnabledDictionariesAndDelete(t *testing.T) {
	store := openTestStore(t)
	seed := SeedDictionary{Name: "jmdict"}
	if err := store.AddDictionary(context.Background(), seedJSON(t, seed)); err != nil {
		t.Fatalf("AddDictionary: %v", err)
	}

	names, err := store.EnabledDictionaries()
	if err != nil || len(names) != 1 || names[0] != "jmdict" {
		t.Fatalf("EnabledDictionaries() = %v, %v", names, err)
	}

	if err := store.DeleteDictionary("jmdict"); err != nil {
		t.Fatalf("DeleteDictionary: %v", err)
	}
	names, err = store.EnabledDictionaries()
	if err != nil || len(names) != 0 {
		t.Fatalf("after delete, EnabledDictionaries() = %v, %v", names, err)
	}
}

func TestIsWordAddableForSentence(t *testing.T) {
	store := openTestStore(t)
	term := model.Term{Expression: "すき焼き", Reading: "すきやき"}
	exprOK, readingOK := store.IsWordAddableForSentence(context.Background(), term)
	if !exprOK {
		t.Fatalf("expected expression すき焼き to be addable")
	}
	if readingOK {
		t.Fatalf("expected reading すきやき to not be addable (not in fake SRS map)")
	}
}

func TestSearchTermsCancelledContextReturnsCancelled(t *testing.T) {
	store := openTestStore(t)
	seed := SeedDictionary{
		Name:  "jmdict",
		Terms: []SeedTerm{{Expression: "すき焼き", Reading: "すきやき"}},
	}
	if err := store.AddDictionary(context.Background(), seedJSON(t, seed)); err != nil {
		t.Fatalf("AddDictionary: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	queries := []model.SearchQuery{
		{Source: model.SourceExact, Deconj: "すき焼き", Surface: "すき焼き"},
	}
	terms, err := store.SearchTerms(ctx, queries, "すき焼き", 0)
	if !errors.Is(err, xerrors.Cancelled) {
		t.Fatalf("SearchTerms err = %v, want xerrors.Cancelled", err)
	}
	if terms != nil {
		t.Fatalf("terms = %v, want nil", terms)
	}
}

func TestSearchTermsEmptyQueriesReturnsNil(t *testing.T) {
	store := openTestStore(t)
	got, err := store.SearchTerms(context.Background(), nil, "", 0)
	if got != nil || err != nil {
		t.Fatalf("SearchTerms(nil) = %v, %v, want nil, nil", got, err)
	}
}
