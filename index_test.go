package pangasinan

import (
	"reflect"
	"testing"
)

func TestBuildIndexMergesDuplicateHeadwords(t *testing.T) {
	idx := BuildIndex([]DictionaryEntry{
		{Word: "abung", Translation: "house", Sources: []string{"Dict B"}},
		{Word: "Abúng", Translation: "hut", Sources: []string{"Dict A"}},
	})

	entries := idx.Lookup("abung")
	if len(entries) != 1 {
		t.Fatalf("Lookup(abung) returned %d entries, want 1", len(entries))
	}
	if entries[0].Translation != "house" {
		t.Errorf("first-seen translation lost: got %q, want %q", entries[0].Translation, "house")
	}
	want := []string{"Dict A", "Dict B"}
	if !reflect.DeepEqual(entries[0].Sources, want) {
		t.Errorf("sources = %v, want %v", entries[0].Sources, want)
	}
}

func TestBuildIndexRootKeys(t *testing.T) {
	idx := BuildIndex([]DictionaryEntry{
		{Word: "binmatik", Translation: "ran", Root: "batik"},
	})
	if !idx.Contains("binmatik") {
		t.Error("headword key missing")
	}
	if !idx.Contains("batik") {
		t.Error("root key missing")
	}
	if idx.Words() != 1 {
		t.Errorf("Words() = %d, want 1", idx.Words())
	}
	if idx.Keys() != 2 {
		t.Errorf("Keys() = %d, want 2", idx.Keys())
	}
}

func TestBuildIndexSkipsEmptyWords(t *testing.T) {
	idx := BuildIndex([]DictionaryEntry{
		{Word: "   ", Translation: "nothing"},
		{Word: "abung", Translation: "house"},
	})
	if idx.Words() != 1 {
		t.Errorf("Words() = %d, want 1", idx.Words())
	}
}

func TestLookupMissIsEmpty(t *testing.T) {
	idx := BuildIndex(nil)
	if got := idx.Lookup("zzzz"); len(got) != 0 {
		t.Errorf("Lookup on empty index = %v, want empty", got)
	}
}

func TestGenerationIncreases(t *testing.T) {
	a := BuildIndex(nil)
	b := BuildIndex(nil)
	if b.Generation() <= a.Generation() {
		t.Errorf("generations not increasing: %d then %d", a.Generation(), b.Generation())
	}
}
