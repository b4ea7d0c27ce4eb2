// Package pangasinan provides rule-based Pangasinan→English translation:
// a morphological analyzer that strips focus/aspect affixes, genitive
// enclitics, and reduplication to recover dictionary roots, composing
// glosses annotated with exactly which rules fired.
package pangasinan

import (
	"fmt"
	"sync/atomic"
)

// Translator holds the immutable rule table and the current dictionary
// index generation. All methods are safe for concurrent use; Reload
// publishes a new index with a single atomic swap, so in-flight analyses
// always see one fully-consistent generation.
type Translator struct {
	rules *RuleTable
	index atomic.Pointer[DictionaryIndex]
}

// New loads the dictionary source at path (JSON or CSV) and returns a
// ready-to-use Translator with the default Pangasinan rule table.
func New(path string) (*Translator, error) {
	entries, err := LoadEntries(path)
	if err != nil {
		return nil, err
	}
	return NewFromEntries(entries), nil
}

// NewFromEntries builds a Translator over already-loaded entries with
// the default rule table.
func NewFromEntries(entries []DictionaryEntry) *Translator {
	return NewWithRules(DefaultRuleTable(), entries)
}

// NewWithRules builds a Translator with an explicit rule table.
func NewWithRules(rules *RuleTable, entries []DictionaryEntry) *Translator {
	t := &Translator{rules: rules}
	t.index.Store(BuildIndex(entries))
	return t
}

// Rules returns the translator's rule table.
func (t *Translator) Rules() *RuleTable { return t.rules }

// Index returns the current dictionary index generation.
func (t *Translator) Index() *DictionaryIndex { return t.index.Load() }

// SetIndex atomically publishes a new dictionary index.
func (t *Translator) SetIndex(idx *DictionaryIndex) { t.index.Store(idx) }

// Reload rebuilds the dictionary index from path and publishes it
// atomically. On any load error the current index stays in place.
func (t *Translator) Reload(path string) error {
	entries, err := LoadEntries(path)
	if err != nil {
		return fmt.Errorf("reload dictionary: %w", err)
	}
	t.index.Store(BuildIndex(entries))
	return nil
}

// AnalyzeWord analyzes a single word token: normalization, staged affix
// stripping, dictionary resolution, and gloss composition. Unknown
// tokens come back fail-soft with found=false and the surface token as
// translation.
func (t *Translator) AnalyzeWord(word string) AnalysisResult {
	return analyzeToken(word, t.rules, t.Index())
}

// TranslateText tokenizes text and analyzes each word token, composing
// a sentence-level translation with a word-by-word trace and the
// deduplicated list of applied rules. Empty or whitespace-only input
// yields an empty result. The Timestamp field is left for the caller.
func (t *Translator) TranslateText(text string) TranslationResult {
	return translate(text, t.rules, t.Index())
}

// translate runs one text against a pinned index generation.
func translate(text string, rules *RuleTable, idx *DictionaryIndex) TranslationResult {
	tokens := Tokenize(text)
	results := make([]AnalysisResult, len(tokens))
	for i, tok := range tokens {
		if tok.Word {
			results[i] = analyzeToken(tok.Text, rules, idx)
		} else {
			results[i] = AnalysisResult{Word: tok.Text, Translation: tok.Text}
		}
	}
	return Compose(text, tokens, results)
}
