package pangasinan

import "strings"

// Rule identifiers for the non-affix stages.
const (
	RuleDirectLookup  = "direct_lookup"
	RulePronoun       = "pronoun"
	RuleParticle      = "particle"
	RuleDemonstrative = "demonstrative"
	RuleReduplication = "reduplication"
)

// analyzeToken resolves a single token against the rule table and the
// dictionary index. Stages run in a fixed priority order; the first
// successful match wins and failure at any stage simply falls through to
// the next. Exhausting every stage yields a fail-soft result echoing the
// surface token.
func analyzeToken(word string, rules *RuleTable, idx *DictionaryIndex) AnalysisResult {
	normalized := NormalizeKey(word)
	if normalized == "" {
		return AnalysisResult{Word: word, Translation: word}
	}

	// 1. Closed-class tables: exact match, never affix-stripped. Checked
	// before the dictionary so function words keep their class provenance
	// even when a lexicon also lists them as entries.
	if gloss, ruleID, ok := rules.LookupClosedClass(normalized); ok {
		return AnalysisResult{
			Word:        word,
			Normalized:  normalized,
			Root:        normalized,
			Translation: gloss,
			Rules:       []string{ruleID},
			Found:       true,
		}
	}

	// 2. Direct dictionary lookup.
	if entries := idx.Lookup(normalized); len(entries) > 0 {
		e := entries[0]
		root := normalized
		if r := NormalizeKey(e.Root); r != "" {
			root = r
		}
		return AnalysisResult{
			Word:        word,
			Normalized:  normalized,
			Root:        root,
			Translation: e.Translation,
			POS:         e.POS,
			Rules:       []string{RuleDirectLookup},
			Found:       true,
		}
	}

	// 3. Single affix strip: prefix, then suffix, then enclitic.
	if res, ok := stripAffix(normalized, rules.PrefixCandidates(normalized), idx); ok {
		return res.surface(word, normalized)
	}
	if res, ok := stripAffix(normalized, rules.SuffixCandidates(normalized), idx); ok {
		return res.surface(word, normalized)
	}
	if res, ok := stripAffix(normalized, rules.EncliticCandidates(normalized), idx); ok {
		return res.surface(word, normalized)
	}

	// 4. Nested retry: one prefix strip whose remainder resolves through
	// one suffix-or-enclitic strip. Rule ids accumulate in strip order
	// and the inner gloss template is applied before the outer one.
	if res, ok := stripPrefixThenTail(normalized, rules, idx); ok {
		return res.surface(word, normalized)
	}

	// 5. Reduplication.
	if root, kind, ok := rules.DetectReduplication(normalized); ok {
		if entries := idx.Lookup(root); len(entries) > 0 {
			e := entries[0]
			gloss := e.Translation + " (intensive)"
			if kind == ReduplicationPlural {
				gloss = pluralizeGloss(e.Translation) + " (plural)"
			}
			return AnalysisResult{
				Word:        word,
				Normalized:  normalized,
				Root:        root,
				Translation: gloss,
				POS:         e.POS,
				Rules:       []string{RuleReduplication},
				Found:       true,
			}
		}
	}

	// 6. Unknown: echo the surface token, no rules.
	return AnalysisResult{
		Word:        word,
		Normalized:  normalized,
		Root:        word,
		Translation: word,
	}
}

// surface fills in the token identity fields on a stage result.
func (r AnalysisResult) surface(word, normalized string) AnalysisResult {
	r.Word = word
	r.Normalized = normalized
	return r
}

// stripAffix tries each candidate rule in longest-match-first order and
// resolves the stripped remainder directly against the dictionary.
func stripAffix(token string, cands []*AffixRule, idx *DictionaryIndex) (AnalysisResult, bool) {
	for _, rule := range cands {
		for _, stem := range rule.Strip(token) {
			for _, e := range idx.Lookup(stem) {
				if !affixAllowed(rule, e.POS) {
					continue
				}
				return AnalysisResult{
					Root:        stem,
					Translation: applyGloss(rule, e.Translation),
					POS:         e.POS,
					Rules:       []string{rule.ID},
					Found:       true,
				}, true
			}
		}
	}
	return AnalysisResult{}, false
}

// stripPrefixThenTail handles prefix+root+suffix and prefix+root+enclitic
// combinations: the prefix is stripped, and when the remainder still
// misses the dictionary, one suffix or enclitic strip is retried on it.
func stripPrefixThenTail(token string, rules *RuleTable, idx *DictionaryIndex) (AnalysisResult, bool) {
	for _, prefix := range rules.PrefixCandidates(token) {
		for _, stem := range prefix.Strip(token) {
			inner, ok := stripAffix(stem, rules.SuffixCandidates(stem), idx)
			if !ok {
				inner, ok = stripAffix(stem, rules.EncliticCandidates(stem), idx)
			}
			if !ok || !affixAllowed(prefix, inner.POS) {
				continue
			}
			inner.Translation = applyGloss(prefix, inner.Translation)
			inner.Rules = append([]string{prefix.ID}, inner.Rules...)
			return inner, true
		}
	}
	return AnalysisResult{}, false
}

// affixAllowed validates an affix against the root's part of speech.
// Roots without a POS tag are permissive.
func affixAllowed(rule *AffixRule, pos PartOfSpeech) bool {
	if pos == POSUnknown {
		return true
	}
	if rule.Kind == Enclitic {
		return pos == POSNoun || pos == POSVerb || pos == POSAdjective
	}
	switch rule.Focus {
	case FocusActor, FocusPatient, FocusLocative, FocusBenefactive, FocusCompleted, FocusAbility:
		return pos == POSVerb || pos == POSAdjective
	case FocusCausative:
		return pos == POSVerb || pos == POSAdjective || pos == POSNoun
	case FocusStative, FocusAbstract:
		return pos == POSAdjective || pos == POSVerb
	case FocusOrdinal:
		return pos == POSNoun || pos == POSNumber
	case FocusReciprocal:
		return pos == POSVerb
	}
	return true
}

// applyGloss renders the rule's gloss template over the root translation.
func applyGloss(rule *AffixRule, root string) string {
	if rule.Kind == Enclitic {
		return root + " " + rule.Meaning
	}
	switch rule.Focus {
	case FocusActor:
		if rule.Aspect == AspectCompleted {
			return root + " (completed)"
		}
		return "to " + root
	case FocusCausative:
		return "cause to " + root
	case FocusAbility:
		return "able to " + root
	case FocusStative:
		return "become " + root
	case FocusLocative:
		return "place of " + root
	case FocusPatient:
		return root + " (object focus)"
	}
	return root
}

// pluralIrregulars covers the common irregular English nouns that show
// up in dictionary glosses.
var pluralIrregulars = map[string]string{
	"man":    "men",
	"woman":  "women",
	"child":  "children",
	"person": "people",
	"foot":   "feet",
	"tooth":  "teeth",
	"mouse":  "mice",
	"fish":   "fish",
}

// pluralizeGloss pluralizes the final English word of a gloss, so a
// plural reduplication of "man" reads "men (plural)".
func pluralizeGloss(gloss string) string {
	words := strings.Fields(gloss)
	if len(words) == 0 {
		return gloss
	}
	last := words[len(words)-1]
	words[len(words)-1] = pluralizeWord(last)
	return strings.Join(words, " ")
}

func pluralizeWord(w string) string {
	if p, ok := pluralIrregulars[w]; ok {
		return p
	}
	switch {
	case strings.HasSuffix(w, "y") && len(w) > 1 && !strings.ContainsRune(vowels, rune(w[len(w)-2])):
		return w[:len(w)-1] + "ies"
	case strings.HasSuffix(w, "s") || strings.HasSuffix(w, "x") || strings.HasSuffix(w, "z") ||
		strings.HasSuffix(w, "ch") || strings.HasSuffix(w, "sh"):
		return w + "es"
	default:
		return w + "s"
	}
}
