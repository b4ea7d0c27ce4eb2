package pangasinan

import (
	"reflect"
	"testing"
)

func TestTranslateText(t *testing.T) {
	tr := testTranslator()

	tests := []struct {
		name        string
		in          string
		translation string
		wordByWord  string
		rules       []string
	}{
		{
			name:        "single word",
			in:          "abung",
			translation: "house",
			wordByWord:  "abung→house",
			rules:       []string{"direct_lookup"},
		},
		{
			name:        "noun with genitive",
			in:          "abung ko",
			translation: "house my",
			wordByWord:  "abung→house | ko→my",
			rules:       []string{"direct_lookup", "enclitic_ko"},
		},
		{
			name:        "sentence with particle",
			in:          "mangan ak ed abung",
			translation: "to eat I at/to/in house",
			wordByWord:  "mangan→to eat | ak→I | ed→at/to/in | abung→house",
			rules:       []string{"prefix_man", "pronoun", "particle", "direct_lookup"},
		},
		{
			name:        "unknown token passes through",
			in:          "zzzz abung",
			translation: "zzzz house",
			wordByWord:  "zzzz→zzzz | abung→house",
			rules:       []string{"direct_lookup"},
		},
		{
			name:        "punctuation passes through untraced",
			in:          "abung ko!",
			translation: "house my !",
			wordByWord:  "abung→house | ko→my",
			rules:       []string{"direct_lookup", "enclitic_ko"},
		},
		{
			name:        "duplicate rules deduplicated in order",
			in:          "abung baley abung",
			translation: "house town house",
			wordByWord:  "abung→house | baley→town | abung→house",
			rules:       []string{"direct_lookup"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.TranslateText(tt.in)
			if got.Original != tt.in {
				t.Errorf("original = %q, want %q", got.Original, tt.in)
			}
			if got.Translation != tt.translation {
				t.Errorf("translation = %q, want %q", got.Translation, tt.translation)
			}
			if got.WordByWord != tt.wordByWord {
				t.Errorf("word-by-word = %q, want %q", got.WordByWord, tt.wordByWord)
			}
			if !reflect.DeepEqual(got.RulesApplied, tt.rules) {
				t.Errorf("rules = %v, want %v", got.RulesApplied, tt.rules)
			}
			if !got.Timestamp.IsZero() {
				t.Error("core must leave the timestamp for the caller")
			}
		})
	}
}

func TestTranslateTextEmpty(t *testing.T) {
	tr := testTranslator()
	for _, in := range []string{"", "   ", "\n\t"} {
		got := tr.TranslateText(in)
		if got.Translation != "" || got.WordByWord != "" || len(got.RulesApplied) != 0 {
			t.Errorf("TranslateText(%q) = %+v, want empty result", in, got)
		}
	}
}

func TestTranslateBatchMirrorsInputOrder(t *testing.T) {
	tr := testTranslator()
	texts := []string{"abung", "", "mangan ak", "zzzz", "abung ko"}

	got := tr.TranslateBatch(texts, 3)
	if len(got) != len(texts) {
		t.Fatalf("got %d results, want %d", len(got), len(texts))
	}
	for i, text := range texts {
		if got[i].Original != text {
			t.Errorf("result %d is for %q, want %q", i, got[i].Original, text)
		}
		want := tr.TranslateText(text)
		if got[i].Translation != want.Translation {
			t.Errorf("result %d translation = %q, want %q", i, got[i].Translation, want.Translation)
		}
	}
}

func TestTranslateBatchEmpty(t *testing.T) {
	if got := testTranslator().TranslateBatch(nil, 2); got != nil {
		t.Errorf("TranslateBatch(nil) = %v, want nil", got)
	}
}

func TestReloadSwapsGeneration(t *testing.T) {
	tr := testTranslator()
	gen := tr.Index().Generation()

	if got := tr.AnalyzeWord("danum"); got.Found {
		t.Fatal("danum should be unknown before the swap")
	}

	tr.SetIndex(BuildIndex([]DictionaryEntry{
		{Word: "danum", Translation: "water"},
	}))

	if tr.Index().Generation() <= gen {
		t.Errorf("generation did not advance: %d then %d", gen, tr.Index().Generation())
	}
	if got := tr.AnalyzeWord("danum"); !got.Found || got.Translation != "water" {
		t.Errorf("after swap AnalyzeWord(danum) = %+v", got)
	}
	if got := tr.AnalyzeWord("abung"); got.Found {
		t.Error("old generation still visible after swap")
	}
}

func TestReloadKeepsIndexOnError(t *testing.T) {
	tr := testTranslator()
	gen := tr.Index().Generation()

	if err := tr.Reload("does-not-exist.json"); err == nil {
		t.Fatal("expected reload error for missing file")
	}
	if tr.Index().Generation() != gen {
		t.Error("failed reload replaced the index")
	}
	if got := tr.AnalyzeWord("abung"); !got.Found {
		t.Error("dictionary lost after failed reload")
	}
}

func TestNewLoadsDictionaryFile(t *testing.T) {
	path := writeFile(t, "lexicon.json", `[
		{"word": "abung", "meaning": "house", "source": "Dict A"},
		{"word": "angan", "meaning": "eat", "source": "Dict A"}
	]`)
	tr, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := tr.TranslateText("mangan ed abung"); got.Translation != "to eat at/to/in house" {
		t.Errorf("translation = %q", got.Translation)
	}
}

func TestComposeEmpty(t *testing.T) {
	got := Compose("", nil, nil)
	if got.Translation != "" || got.WordByWord != "" || got.RulesApplied != nil {
		t.Errorf("Compose of nothing = %+v, want zero result", got)
	}
}
