package dictstore

import (
	"database/sql"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	pangasinan "github.com/Nevram26/Pangasinense-NLP"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitDBCreatesSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := InitDB(db); err != nil {
		t.Fatalf("InitDB: %v", err)
	}

	var name string
	if err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='entries'").Scan(&name); err != nil {
		t.Fatalf("entries table missing: %v", err)
	}
}

func TestUpsertEntryMergesDuplicates(t *testing.T) {
	store := openTestStore(t)

	inserted, err := store.UpsertEntry(pangasinan.DictionaryEntry{
		Word: "abung", Translation: "house", Sources: []string{"Dict A"},
	})
	if err != nil || !inserted {
		t.Fatalf("first upsert: inserted=%v err=%v", inserted, err)
	}

	// Same normalized headword from another source: translation must
	// stay, provenance must union.
	inserted, err = store.UpsertEntry(pangasinan.DictionaryEntry{
		Word: "Abúng", Translation: "hut", Sources: []string{"Dict B"},
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if inserted {
		t.Error("duplicate headword created a second row")
	}

	entries, err := store.LoadEntries()
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Translation != "house" {
		t.Errorf("translation = %q, want first-seen %q", entries[0].Translation, "house")
	}
	want := []string{"Dict A", "Dict B"}
	if !reflect.DeepEqual(entries[0].Sources, want) {
		t.Errorf("sources = %v, want %v", entries[0].Sources, want)
	}
}

func TestLoadEntriesRoundTrip(t *testing.T) {
	store := openTestStore(t)

	in := pangasinan.DictionaryEntry{
		Word:        "binmatik",
		Translation: "ran",
		Root:        "batik",
		POS:         pangasinan.POSVerb,
		Sources:     []string{"Dict A"},
	}
	if _, err := store.UpsertEntry(in); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	entries, err := store.LoadEntries()
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	got := entries[0]
	if got.Word != in.Word || got.Translation != in.Translation || got.Root != in.Root || got.POS != in.POS {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Normalized != "binmatik" {
		t.Errorf("normalized = %q, want binmatik", got.Normalized)
	}

	n, err := store.Count()
	if err != nil || n != 1 {
		t.Errorf("Count = %d/%v, want 1", n, err)
	}
}

func TestUpsertEntryRejectsEmptyWord(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.UpsertEntry(pangasinan.DictionaryEntry{Translation: "x"}); err == nil {
		t.Error("expected error for entry without a word")
	}
}

func TestImporterImportFile(t *testing.T) {
	store := openTestStore(t)

	path := filepath.Join(t.TempDir(), "lexicon.json")
	lexicon := `[
		{"word": "abung", "meaning": "house", "source": "Dict A"},
		{"word": "Abúng", "meaning": "hut", "source": "Dict B"},
		{"word": "laki", "meaning": "man", "source": "Dict A"}
	]`
	if err := os.WriteFile(path, []byte(lexicon), 0o644); err != nil {
		t.Fatalf("write lexicon: %v", err)
	}

	stats, err := NewImporter(store, nil).ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if stats.Read != 3 || stats.Inserted != 2 || stats.Merged != 1 {
		t.Errorf("stats = %+v, want read=3 inserted=2 merged=1", stats)
	}

	entries, err := store.LoadEntries()
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	tr := pangasinan.NewFromEntries(entries)
	if got := tr.AnalyzeWord("abung"); !got.Found || got.Translation != "house" {
		t.Errorf("imported store does not serve lookups: %+v", got)
	}
}

func TestImporterMissingFile(t *testing.T) {
	store := openTestStore(t)
	if _, err := NewImporter(store, nil).ImportFile("missing.json"); err == nil {
		t.Error("expected error for missing source file")
	}
}
