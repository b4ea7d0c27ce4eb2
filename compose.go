package pangasinan

import "strings"

// Compose aggregates per-token analyses into a sentence-level result.
// tokens and results are parallel slices: punctuation tokens carry a
// literal pass-through result and are kept out of the word-by-word
// trace. Pure function; the Timestamp field is left for the caller.
func Compose(original string, tokens []Token, results []AnalysisResult) TranslationResult {
	pieces := make([]string, 0, len(results))
	var trace []string
	var rules []string
	seen := make(map[string]bool)

	for i, res := range results {
		pieces = append(pieces, res.Translation)
		if i < len(tokens) && !tokens[i].Word {
			continue
		}
		trace = append(trace, res.Word+"→"+res.Translation)
		for _, id := range res.Rules {
			if !seen[id] {
				seen[id] = true
				rules = append(rules, id)
			}
		}
	}

	return TranslationResult{
		Original:     original,
		Translation:  strings.Join(pieces, " "),
		WordByWord:   strings.Join(trace, " | "),
		RulesApplied: rules,
	}
}
