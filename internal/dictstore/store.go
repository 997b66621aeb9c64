package dictstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/japaniel/minecore/internal/model"
	"github.com/japaniel/minecore/internal/xerrors"
)

// dbExecutor lets the CRUD helpers below run over either *sql.DB or
// *sql.Tx, the same seam the teacher's pkg/db.DBExecutor interface cuts.
type dbExecutor interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

func insertDictionary(db dbExecutor, name, revision string, sequence int, author string, priority int) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("dictionary name must be non-empty")
	}
	var id int64
	err := db.QueryRow(
		`INSERT INTO dictionaries (name, revision, sequence, author, enabled, priority)
		 VALUES (?, ?, ?, ?, 1, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   revision = excluded.revision,
		   sequence = excluded.sequence,
		   author = excluded.author
		 RETURNING id`,
		name, revision, sequence, author, priority,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert dictionary: %w", err)
	}
	return id, nil
}

func deleteDictionaryRow(db dbExecutor, name string) error {
	res, err := db.Exec(`DELETE FROM dictionaries WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return xerrors.ErrDictionaryMissing
	}
	return nil
}

func reorderDictionaries(db dbExecutor, names []string) error {
	for i, name := range names {
		if _, err := db.Exec(`UPDATE dictionaries SET priority = ? WHERE name = ?`, i, name); err != nil {
			return fmt.Errorf("reorder dictionary %q: %w", name, err)
		}
	}
	return nil
}

func listDictionaries(db dbExecutor) ([]dictionaryRow, error) {
	rows, err := db.Query(`SELECT id, name, revision, sequence, author, enabled, priority FROM dictionaries ORDER BY priority ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []dictionaryRow
	for rows.Next() {
		var d dictionaryRow
		var revision sql.NullString
		var author sql.NullString
		var enabled int
		if err := rows.Scan(&d.ID, &d.Name, &revision, &d.Sequence, &author, &enabled, &d.Priority); err != nil {
			return nil, err
		}
		d.Revision = revision.String
		d.Author = author.String
		d.Enabled = enabled != 0
		out = append(out, d)
	}
	return out, rows.Err()
}

func insertTerm(db dbExecutor, dictID int64, expression, reading string, definitions []model.TermDefinition, tags, rules []model.Tag, score int) error {
	defJSON, err := json.Marshal(definitions)
	if err != nil {
		return err
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return err
	}
	rulesJSON, err := json.Marshal(rules)
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`INSERT INTO terms (dictionary_id, expression, reading, definitions_json, tags_json, rules_json, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		dictID, expression, reading, string(defJSON), string(tagsJSON), string(rulesJSON), score,
	)
	return err
}

func insertKanji(db dbExecutor, dictID int64, character string, onyomi, kunyomi, glossary []string, tags []model.Tag, stats map[string]string) error {
	onJSON, _ := json.Marshal(onyomi)
	kunJSON, _ := json.Marshal(kunyomi)
	glossJSON, _ := json.Marshal(glossary)
	tagsJSON, _ := json.Marshal(tags)
	statsJSON, _ := json.Marshal(stats)
	_, err := db.Exec(
		`INSERT INTO kanji (dictionary_id, character, onyomi_json, kunyomi_json, glossary_json, tags_json, stats_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		dictID, character, string(onJSON), string(kunJSON), string(glossJSON), string(tagsJSON), string(statsJSON),
	)
	return err
}

func insertFrequency(db dbExecutor, dictID int64, headword, reading, freqDisplay string) error {
	_, err := db.Exec(
		`INSERT INTO frequencies (dictionary_id, headword, reading, freq_display) VALUES (?, ?, ?, ?)`,
		dictID, headword, reading, freqDisplay,
	)
	return err
}

func insertPitch(db dbExecutor, dictID int64, headword, reading string, mora []string, position []uint8) error {
	moraJSON, _ := json.Marshal(mora)
	posJSON, _ := json.Marshal(position)
	_, err := db.Exec(
		`INSERT INTO pitches (dictionary_id, headword, reading, mora_json, position_json) VALUES (?, ?, ?, ?, ?)`,
		dictID, headword, reading, string(moraJSON), string(posJSON),
	)
	return err
}

func insertTag(db dbExecutor, dictID int64, t model.Tag) error {
	_, err := db.Exec(
		`INSERT INTO tags (dictionary_id, name, category, notes, order_num, score) VALUES (?, ?, ?, ?, ?, ?)`,
		dictID, t.Name, categoryToString(t.Category), t.Notes, t.Order, t.Score,
	)
	return err
}

func categoryToString(c model.TagCategory) string {
	switch c {
	case model.CategoryName:
		return "name"
	case model.CategoryExpression:
		return "expression"
	case model.CategoryPopular:
		return "popular"
	case model.CategoryFrequent:
		return "frequent"
	case model.CategoryArchaism:
		return "archaism"
	case model.CategoryDictionary:
		return "dictionary"
	case model.CategoryFrequency:
		return "frequency"
	case model.CategoryPartOfSpeech:
		return "partOfSpeech"
	case model.CategorySearch:
		return "search"
	case model.CategoryPitchAccentDictionary:
		return "pitch-accent-dictionary"
	default:
		return ""
	}
}

const termSelectColumns = `t.id, t.dictionary_id, d.name, d.priority, t.expression, t.reading, t.definitions_json, t.tags_json, t.rules_json, t.score`

func scanTermRow(rows *sql.Rows) (termRow, error) {
	var r termRow
	err := rows.Scan(&r.ID, &r.DictionaryID, &r.DictionaryName, &r.DictionaryPrio, &r.Expression, &r.Reading, &r.DefinitionsJSON, &r.TagsJSON, &r.RulesJSON, &r.Score)
	return r, err
}

// findTermsByExpressionOrReading returns every enabled-dictionary term row
// whose expression or reading exactly equals key.
func findTermsByExpressionOrReading(db dbExecutor, key string) ([]termRow, error) {
	rows, err := db.Query(
		`SELECT `+termSelectColumns+`
		 FROM terms t JOIN dictionaries d ON d.id = t.dictionary_id
		 WHERE d.enabled = 1 AND (t.expression = ? OR t.reading = ?)
		 ORDER BY d.priority ASC`,
		key, key,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []termRow
	for rows.Next() {
		r, err := scanTermRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func findKanjiByCharacter(db dbExecutor, character string) ([]kanjiRow, error) {
	rows, err := db.Query(
		`SELECT k.id, k.dictionary_id, d.name, d.priority, k.character, k.onyomi_json, k.kunyomi_json, k.glossary_json, k.tags_json, k.stats_json
		 FROM kanji k JOIN dictionaries d ON d.id = k.dictionary_id
		 WHERE d.enabled = 1 AND k.character = ?
		 ORDER BY d.priority ASC`,
		character,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []kanjiRow
	for rows.Next() {
		var r kanjiRow
		if err := rows.Scan(&r.ID, &r.DictionaryID, &r.DictionaryName, &r.DictionaryPrio, &r.Character, &r.OnyomiJSON, &r.KunyomiJSON, &r.GlossaryJSON, &r.TagsJSON, &r.StatsJSON); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func findFrequencies(db dbExecutor, headword string) ([]frequencyRow, error) {
	rows, err := db.Query(
		`SELECT d.name, f.headword, f.reading, f.freq_display
		 FROM frequencies f JOIN dictionaries d ON d.id = f.dictionary_id
		 WHERE d.enabled = 1 AND f.headword = ?
		 ORDER BY d.priority ASC`,
		headword,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []frequencyRow
	for rows.Next() {
		var r frequencyRow
		if err := rows.Scan(&r.DictionaryName, &r.Headword, &r.Reading, &r.FreqDisplay); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func findPitches(db dbExecutor, headword string) ([]pitchRow, error) {
	rows, err := db.Query(
		`SELECT d.name, p.headword, p.reading, p.mora_json, p.position_json
		 FROM pitches p JOIN dictionaries d ON d.id = p.dictionary_id
		 WHERE d.enabled = 1 AND p.headword = ?
		 ORDER BY d.priority ASC`,
		headword,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []pitchRow
	for rows.Next() {
		var r pitchRow
		if err := rows.Scan(&r.DictionaryName, &r.Headword, &r.Reading, &r.MoraJSON, &r.PositionJSON); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
