package pangasinan

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MalformedDictionaryError reports a dictionary source file that could
// not be parsed into entries. It is fatal at load time: the system must
// never serve from a partially-loaded index.
type MalformedDictionaryError struct {
	Path string
	Err  error
}

func (e *MalformedDictionaryError) Error() string {
	return fmt.Sprintf("malformed dictionary source %s: %v", e.Path, e.Err)
}

func (e *MalformedDictionaryError) Unwrap() error { return e.Err }

// jsonEntry mirrors one element of the combined lexicon JSON produced by
// the ingestion pipeline.
type jsonEntry struct {
	Word        string `json:"word"`
	Meaning     string `json:"meaning"`
	Translation string `json:"translation"`
	Root        string `json:"root"`
	POS         string `json:"POS"`
	Source      string `json:"source"`
}

// LoadEntries reads a dictionary source file, dispatching on extension:
// ".csv" is parsed as the exported CSV lexicon, everything else as the
// combined JSON lexicon.
func LoadEntries(path string) ([]DictionaryEntry, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadCSV(path)
	}
	return LoadJSON(path)
}

// LoadJSON reads a combined-lexicon JSON file: an array of objects with
// word, meaning, translation, root, POS, and source fields. Entries
// without a usable word are skipped. The translation field falls back to
// the meaning field when absent.
func LoadJSON(path string) ([]DictionaryEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	var raw []jsonEntry
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, &MalformedDictionaryError{Path: path, Err: err}
	}

	entries := make([]DictionaryEntry, 0, len(raw))
	for _, je := range raw {
		if e, ok := entryFromFields(je.Word, je.Meaning, je.Translation, je.Root, je.POS, je.Source); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// LoadCSV reads the exported CSV lexicon. The header row names the
// columns; word, meaning, translation, root, POS/type, and source are
// recognized, any others are ignored.
func LoadCSV(path string) ([]DictionaryEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, &MalformedDictionaryError{Path: path, Err: err}
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := col["word"]; !ok {
		return nil, &MalformedDictionaryError{Path: path, Err: fmt.Errorf("missing 'word' column")}
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var entries []DictionaryEntry
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedDictionaryError{Path: path, Err: err}
		}
		pos := field(rec, "pos")
		if pos == "" {
			pos = field(rec, "type")
		}
		e, ok := entryFromFields(
			field(rec, "word"),
			field(rec, "meaning"),
			field(rec, "translation"),
			field(rec, "root"),
			pos,
			field(rec, "source"),
		)
		if ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// entryFromFields builds one DictionaryEntry, applying the translation
// fallback and provenance splitting shared by both formats.
func entryFromFields(word, meaning, translation, root, pos, source string) (DictionaryEntry, bool) {
	word = strings.TrimSpace(word)
	if word == "" {
		return DictionaryEntry{}, false
	}
	tr := strings.TrimSpace(translation)
	if tr == "" {
		tr = strings.TrimSpace(meaning)
	}
	if tr == "" {
		return DictionaryEntry{}, false
	}
	return DictionaryEntry{
		Word:        word,
		Normalized:  NormalizeKey(word),
		Translation: strings.ToLower(tr),
		Root:        strings.TrimSpace(root),
		POS:         PartOfSpeech(strings.ToUpper(strings.TrimSpace(pos))),
		Sources:     splitSources(source),
	}, true
}

// splitSources breaks a comma-separated provenance string into a set.
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
