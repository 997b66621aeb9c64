// Command minecore is a terminal demo of the subtitle mining pipeline: it
// loads a seed dictionary, runs the query-generator chain against a typed
// word under a sentence, and prints the merged dictionary hits.
//
// Structured the way _examples/japaniel-readerer/cmd/readerer/main.go
// wires its pipeline: flag-parsed CLI, signal.NotifyContext for graceful
// shutdown, sql.Open + InitDB, then a linear pipeline over the parsed
// input.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mattn/go-sqlite3"

	"github.com/japaniel/minecore/internal/dictstore"
	"github.com/japaniel/minecore/internal/mecab"
	"github.com/japaniel/minecore/internal/model"
	"github.com/japaniel/minecore/internal/query"
	"github.com/japaniel/minecore/internal/subtitle"
)

// noopSRS always reports a field as addable; wiring a real SRS client is
// the caller's job (internal/srs.Client satisfies dictstore.AddabilityChecker).
type noopSRS struct{}

func (noopSRS) CanAdd(ctx context.Context, expression string) (bool, error) { return true, nil }

func main() {
	dbFlag := flag.String("db", "minecore.db", "Path to SQLite database")
	seedFlag := flag.String("seed-dict", "", "Path to a seed dictionary JSON file (dictstore.SeedDictionary shape)")
	sentenceFlag := flag.String("sentence", "", "Subtitle sentence to mine")
	cursorFlag := flag.Int("cursor", 0, "Rune index within -sentence to mine from")
	workersFlag := flag.Int("workers", 4, "Dictionary search worker pool size")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	conn, err := sql.Open("sqlite3", *dbFlag)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer conn.Close()

	store, err := dictstore.Open(conn, *workersFlag, logger, noopSRS{})
	if err != nil {
		log.Fatalf("open dictionary store: %v", err)
	}

	if *seedFlag != "" {
		raw, err := os.ReadFile(*seedFlag)
		if err != nil {
			log.Fatalf("read seed dictionary: %v", err)
		}
		if err := store.AddDictionary(ctx, raw); err != nil {
			log.Fatalf("add dictionary: %v", err)
		}
		names, _ := store.EnabledDictionaries()
		fmt.Printf("Loaded dictionaries: %v\n", names)
	}

	if *sentenceFlag == "" {
		fmt.Println("Provide -sentence and -cursor to mine a word.")
		return
	}

	sentence := subtitle.SanitizeRubyString(*sentenceFlag)
	runes := []rune(sentence)
	if *cursorFlag < 0 || *cursorFlag >= len(runes) {
		log.Fatalf("cursor %d out of bounds for sentence of length %d", *cursorFlag, len(runes))
	}
	word := string(runes[*cursorFlag:])

	mecabAdapter := mecab.New()
	if !mecabAdapter.IsValid() {
		logger.Warn("mecab adapter unavailable, lattice generator disabled")
	}

	generators := []query.Generator{
		query.ExactGenerator{},
		query.NewMeCabGenerator(mecabAdapter),
		query.DeconjGenerator{SentenceMode: true},
	}

	var queries []model.SearchQuery
	for _, g := range generators {
		queries = append(queries, g.Generate(word)...)
	}

	fmt.Printf("Generated %d candidate queries from %q\n", len(queries), word)

	terms, err := store.SearchTerms(ctx, queries, sentence, *cursorFlag)
	if err != nil {
		log.Fatalf("search terms: %v", err)
	}
	printTerms(terms)
}

func printTerms(terms []model.Term) {
	if len(terms) == 0 {
		fmt.Println("No matches.")
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, t := range terms {
		summary := struct {
			Expression string `json:"expression"`
			Reading    string `json:"reading"`
			ClozeBody  string `json:"cloze_body"`
			Defs       int    `json:"definitions"`
		}{t.Expression, t.Reading, t.ClozeBody, len(t.Definitions)}
		_ = enc.Encode(summary)
	}
}
