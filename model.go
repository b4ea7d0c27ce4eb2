package pangasinan

import "time"

// PartOfSpeech is the grammatical category tag carried by enriched
// dictionary entries. Tags follow the enrichment pipeline's vocabulary.
type PartOfSpeech string

const (
	POSNoun      PartOfSpeech = "NOUN"
	POSVerb      PartOfSpeech = "VERB"
	POSAdjective PartOfSpeech = "ADJECTIVE"
	POSAdverb    PartOfSpeech = "ADVERB"
	POSPronoun   PartOfSpeech = "PRONOUN"
	POSParticle  PartOfSpeech = "PARTICLE"
	POSNumber    PartOfSpeech = "NUMBER"
	POSUnknown   PartOfSpeech = ""
)

// DictionaryEntry is one lexical item loaded from the dictionary source.
// Entries are immutable once the index is built.
type DictionaryEntry struct {
	// Word is the Pangasinan headword as written in the source.
	Word string
	// Normalized is NormalizeKey(Word), the lookup key.
	Normalized string
	// Translation is the English translation (authoritative gloss).
	Translation string
	// Root is the canonical root form, when the source recorded one.
	Root string
	// POS is the part-of-speech tag from the enriched lexicon, if any.
	POS PartOfSpeech
	// Sources lists the dictionary source names this entry came from.
	// Duplicate headwords across sources union their provenance here.
	Sources []string
}

// AnalysisResult is the outcome of analyzing a single token.
type AnalysisResult struct {
	// Word is the original surface token.
	Word string
	// Normalized is the matching form of the token.
	Normalized string
	// Root is the resolved dictionary root (the normalized token itself
	// for direct and closed-class matches).
	Root string
	// Translation is the composed English gloss. For unknown tokens it
	// echoes the surface token unchanged.
	Translation string
	// POS is the part of speech of the resolved root, when known.
	POS PartOfSpeech
	// Rules lists the identifiers of every rule that fired, in the order
	// the stages stripped material. Empty when nothing matched.
	Rules []string
	// Found reports whether any stage resolved the token.
	Found bool
}

// TranslationResult is the outcome of translating a full input text.
type TranslationResult struct {
	// Original is the input text exactly as received.
	Original string
	// Translation is the combined word-for-word translation.
	Translation string
	// WordByWord pairs each word token with its gloss, "token→gloss"
	// entries joined by " | ".
	WordByWord string
	// RulesApplied is the deduplicated, first-seen-order list of rule
	// identifiers across all tokens.
	RulesApplied []string
	// Timestamp is supplied by the caller; TranslateText leaves it zero.
	Timestamp time.Time
}
