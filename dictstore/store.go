// Package dictstore persists the Pangasinan lexicon in SQLite so that
// imported dictionary sources survive between runs and can be reloaded
// without re-parsing the combined JSON/CSV exports.
package dictstore

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	pangasinan "github.com/Nevram26/Pangasinense-NLP"
)

//go:embed migrations.sql
var migrationsSQL string

// Store wraps a SQLite connection holding dictionary entries.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and runs the
// schema migration.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := InitDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &Store{db: db}, nil
}

// InitDB runs the embedded schema migration on db.
func InitDB(db *sql.DB) error {
	for _, stmt := range strings.Split(migrationsSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying connection.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying connection for tests and maintenance tools.
func (s *Store) DB() *sql.DB { return s.db }

// UpsertEntry inserts e, or merges it into an existing row with the same
// normalized word. The first-seen translation stays authoritative;
// source provenance is unioned. Returns true when a new row was created.
func (s *Store) UpsertEntry(e pangasinan.DictionaryEntry) (bool, error) {
	if e.Normalized == "" {
		e.Normalized = pangasinan.NormalizeKey(e.Word)
	}
	if e.Normalized == "" {
		return false, fmt.Errorf("entry has no usable word")
	}

	var id int64
	var sources string
	err := s.db.QueryRow(`SELECT id, sources FROM entries WHERE normalized = ?`, e.Normalized).Scan(&id, &sources)
	switch {
	case err == sql.ErrNoRows:
		_, err = s.db.Exec(
			`INSERT INTO entries (word, normalized, translation, root, pos, sources) VALUES (?, ?, ?, ?, ?, ?)`,
			e.Word, e.Normalized, e.Translation, e.Root, string(e.POS), joinSources(e.Sources),
		)
		if err != nil {
			return false, fmt.Errorf("insert entry %q: %w", e.Word, err)
		}
		return true, nil
	case err != nil:
		return false, err
	}

	merged := joinSources(mergeSources(splitSources(sources), e.Sources))
	if merged != sources {
		if _, err := s.db.Exec(`UPDATE entries SET sources = ? WHERE id = ?`, merged, id); err != nil {
			return false, fmt.Errorf("merge sources for %q: %w", e.Word, err)
		}
	}
	return false, nil
}

// LoadEntries returns every stored entry in insertion order, ready for
// pangasinan.BuildIndex.
func (s *Store) LoadEntries() ([]pangasinan.DictionaryEntry, error) {
	rows, err := s.db.Query(`SELECT word, normalized, translation, root, pos, sources FROM entries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []pangasinan.DictionaryEntry
	for rows.Next() {
		var e pangasinan.DictionaryEntry
		var pos, sources string
		if err := rows.Scan(&e.Word, &e.Normalized, &e.Translation, &e.Root, &pos, &sources); err != nil {
			return nil, err
		}
		e.POS = pangasinan.PartOfSpeech(pos)
		e.Sources = splitSources(sources)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}

func joinSources(sources []string) string {
	return strings.Join(sources, ", ")
}

func splitSources(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func mergeSources(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, s := range append(append([]string{}, a...), b...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
