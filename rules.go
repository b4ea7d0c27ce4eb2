package pangasinan

import (
	"strings"

	"github.com/derekparker/trie"
)

// AffixKind discriminates the closed set of affix rule variants.
type AffixKind int

const (
	// Prefix is a plain prefix stripped from the front of a token.
	Prefix AffixKind = iota
	// NasalPrefix strips its base and then a nasal allomorph, or attaches
	// directly to a vowel-initial remainder (maN-, aN-, paN-).
	NasalPrefix
	// Suffix is stripped from the end of a token.
	Suffix
	// Enclitic is a bound genitive pronoun stripped from the end of a
	// token independently of suffixes.
	Enclitic
)

// Focus is the grammatical function an affix marks on its root.
type Focus string

const (
	FocusActor       Focus = "actor"
	FocusStative     Focus = "stative"
	FocusReciprocal  Focus = "reciprocal"
	FocusCausative   Focus = "causative"
	FocusBenefactive Focus = "benefactive"
	FocusCompleted   Focus = "completed"
	FocusOrdinal     Focus = "ordinal"
	FocusAbstract    Focus = "abstract"
	FocusAbility     Focus = "ability"
	FocusIntensive   Focus = "intensive"
	FocusLocative    Focus = "locative"
	FocusPatient     Focus = "patient"
	FocusGenitive    Focus = "genitive"
)

// Aspect marks whether an affixed action is completed.
type Aspect string

const (
	AspectNone         Aspect = ""
	AspectNonCompleted Aspect = "non-completed"
	AspectCompleted    Aspect = "completed"
)

// nasalAllomorphs are tried longest-first so "ng" is never misread as "n".
var nasalAllomorphs = []string{"ng", "ny", "m", "n"}

const vowels = "aeiou"

// AffixRule is one prefix, suffix, or enclitic pattern. Rules are
// immutable after table construction.
type AffixRule struct {
	// ID identifies the rule in analysis provenance, e.g. "prefix_man".
	ID string
	// Form is the affix as written in grammar descriptions, e.g. "maN".
	Form string
	// Kind selects the stripping behavior.
	Kind AffixKind
	// Focus is the grammatical function the affix marks.
	Focus Focus
	// Aspect is set for focus affixes that also mark aspect.
	Aspect Aspect
	// Meaning is the fixed English gloss for enclitics ("my", "their").
	Meaning string

	// base is the normalized matching form; for nasal prefixes it is the
	// form without the assimilating N.
	base string
}

// Strip removes the affix from token and returns the candidate roots, in
// the order they should be tried. An empty slice means the rule does not
// apply to this token.
func (r *AffixRule) Strip(token string) []string {
	switch r.Kind {
	case Prefix:
		if !strings.HasPrefix(token, r.base) || len(token) <= len(r.base) {
			return nil
		}
		rem := token[len(r.base):]
		n := len(r.base)
		// A prefix ending in vowel+nasal fuses with a vowel-initial root:
		// man+angan surfaces as "mangan", so the root keeps the prefix's
		// final syllable. The fused candidate is tried first.
		if n >= 3 && strings.ContainsRune("nm", rune(r.base[n-1])) &&
			strings.ContainsRune(vowels, rune(r.base[n-2])) {
			return []string{r.base[n-2:] + rem, rem}
		}
		return []string{rem}
	case NasalPrefix:
		if !strings.HasPrefix(token, r.base) {
			return nil
		}
		rem := token[len(r.base):]
		if rem == "" {
			return nil
		}
		for _, allo := range nasalAllomorphs {
			if strings.HasPrefix(rem, allo) && len(rem) > len(allo) {
				return []string{rem[len(allo):]}
			}
		}
		if strings.ContainsRune(vowels, rune(rem[0])) {
			return []string{rem}
		}
	case Suffix, Enclitic:
		if strings.HasSuffix(token, r.base) && len(token) > len(r.base) {
			return []string{token[:len(token)-len(r.base)]}
		}
	}
	return nil
}

// ReduplicationKind distinguishes the two gloss annotations.
type ReduplicationKind int

const (
	// ReduplicationPlural marks partial (doubled leading chunk)
	// reduplication, read as plurality on nouns.
	ReduplicationPlural ReduplicationKind = iota
	// ReduplicationIntensive marks full-word reduplication, read as an
	// intensifier or frequentative.
	ReduplicationIntensive
)

// ReduplicationPattern detects one doubled-segment shape.
type ReduplicationPattern struct {
	// Name is the pattern label ("CV", "CVC", "CVCV", "full").
	Name string
	// Chunk is the doubled leading chunk length; 0 means full-word.
	Chunk int
	// Kind is the gloss annotation the pattern carries.
	Kind ReduplicationKind
}

// match reports the de-reduplicated root, or "" if the pattern is absent.
func (p ReduplicationPattern) match(token string) string {
	if p.Chunk == 0 {
		if len(token) < 4 || len(token)%2 != 0 {
			return ""
		}
		half := len(token) / 2
		if token[:half] == token[half:] {
			return token[:half]
		}
		return ""
	}
	if len(token) < p.Chunk*2 {
		return ""
	}
	if token[:p.Chunk] == token[p.Chunk:p.Chunk*2] {
		return token[p.Chunk:]
	}
	return ""
}

// RuleTable is the immutable collection of affix rules, closed-class
// tables, and reduplication patterns. Build it once and share it freely;
// every method is safe for concurrent use.
type RuleTable struct {
	affixes []*AffixRule

	// prefixes/suffixes/enclitics index rules by matching form for
	// longest-match-first candidate enumeration. Suffix-side tries are
	// keyed on the reversed form. Node meta holds []*AffixRule in
	// declaration order, which is the tie-break for equal-length affixes.
	prefixes  *trie.Trie
	suffixes  *trie.Trie
	enclitics *trie.Trie

	maxPrefix   int
	maxSuffix   int
	maxEnclitic int

	particles      map[string]string
	pronouns       map[string]string
	demonstratives map[string]string
	standaloneEnc  map[string]*AffixRule

	reduplications []ReduplicationPattern
}

// NewRuleTable builds a table from explicit rule data. The affix slice
// order is the declaration order used to break equal-length ties.
func NewRuleTable(affixes []*AffixRule, particles, pronouns, demonstratives map[string]string, redups []ReduplicationPattern) *RuleTable {
	t := &RuleTable{
		affixes:        affixes,
		prefixes:       trie.New(),
		suffixes:       trie.New(),
		enclitics:      trie.New(),
		particles:      particles,
		pronouns:       pronouns,
		demonstratives: demonstratives,
		standaloneEnc:  make(map[string]*AffixRule),
		reduplications: redups,
	}

	add := func(tr *trie.Trie, key string, r *AffixRule) {
		var rules []*AffixRule
		if node, ok := tr.Find(key); ok {
			rules = node.Meta().([]*AffixRule)
		}
		tr.Add(key, append(rules, r))
	}

	for _, r := range affixes {
		if r.Kind == NasalPrefix {
			r.base = Normalize(strings.TrimSuffix(r.Form, "N"))
		} else {
			r.base = Normalize(r.Form)
		}
		switch r.Kind {
		case Prefix, NasalPrefix:
			add(t.prefixes, r.base, r)
			if len(r.base) > t.maxPrefix {
				t.maxPrefix = len(r.base)
			}
		case Suffix:
			add(t.suffixes, reverse(r.base), r)
			if len(r.base) > t.maxSuffix {
				t.maxSuffix = len(r.base)
			}
		case Enclitic:
			add(t.enclitics, reverse(r.base), r)
			if len(r.base) > t.maxEnclitic {
				t.maxEnclitic = len(r.base)
			}
			t.standaloneEnc[r.base] = r
		}
	}
	return t
}

// PrefixCandidates returns every prefix rule whose form begins token,
// longest form first, declaration order within a length.
func (t *RuleTable) PrefixCandidates(token string) []*AffixRule {
	return candidates(t.prefixes, token, t.maxPrefix, false)
}

// SuffixCandidates returns matching suffix rules, longest-first.
func (t *RuleTable) SuffixCandidates(token string) []*AffixRule {
	return candidates(t.suffixes, token, t.maxSuffix, true)
}

// EncliticCandidates returns matching enclitic rules, longest-first.
func (t *RuleTable) EncliticCandidates(token string) []*AffixRule {
	return candidates(t.enclitics, token, t.maxEnclitic, true)
}

// candidates walks successively shorter leading (or trailing) slices of
// token through the affix trie. The slice length is capped below the
// token length so a stripped root is never empty.
func candidates(tr *trie.Trie, token string, maxLen int, fromEnd bool) []*AffixRule {
	var out []*AffixRule
	n := len(token)
	for l := min(maxLen, n-1); l >= 1; l-- {
		key := token[:l]
		if fromEnd {
			key = reverse(token[n-l:])
		}
		if node, ok := tr.Find(key); ok {
			out = append(out, node.Meta().([]*AffixRule)...)
		}
	}
	return out
}

// LookupClosedClass resolves particles, pronouns, demonstratives, and the
// free-standing forms of the genitive enclitics by exact match. The
// returned rule id names the class that matched.
func (t *RuleTable) LookupClosedClass(token string) (gloss, ruleID string, ok bool) {
	if g, found := t.pronouns[token]; found {
		return g, RulePronoun, true
	}
	if g, found := t.particles[token]; found {
		return g, RuleParticle, true
	}
	if g, found := t.demonstratives[token]; found {
		return g, RuleDemonstrative, true
	}
	if r, found := t.standaloneEnc[token]; found {
		return r.Meaning, r.ID, true
	}
	return "", "", false
}

// DetectReduplication checks the patterns in declaration order and
// returns the de-reduplicated root of the first one that matches.
func (t *RuleTable) DetectReduplication(token string) (root string, kind ReduplicationKind, ok bool) {
	for _, p := range t.reduplications {
		if r := p.match(token); r != "" {
			return r, p.Kind, true
		}
	}
	return "", 0, false
}

// Affixes returns the affix rules in declaration order.
func (t *RuleTable) Affixes() []*AffixRule { return t.affixes }

// Particles returns the particle table.
func (t *RuleTable) Particles() map[string]string { return t.particles }

// Pronouns returns the pronoun table.
func (t *RuleTable) Pronouns() map[string]string { return t.pronouns }

// Demonstratives returns the demonstrative table.
func (t *RuleTable) Demonstratives() map[string]string { return t.demonstratives }

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// DefaultRuleTable builds the standard Pangasinan grammar: the focus and
// aspect affixes, genitive enclitics, closed-class function words, and
// reduplication patterns.
func DefaultRuleTable() *RuleTable {
	affixes := []*AffixRule{
		{ID: "prefix_man", Form: "man", Kind: Prefix, Focus: FocusActor, Aspect: AspectNonCompleted},
		{ID: "prefix_nan", Form: "nan", Kind: Prefix, Focus: FocusActor, Aspect: AspectCompleted},
		{ID: "prefix_ma", Form: "ma", Kind: Prefix, Focus: FocusStative},
		{ID: "prefix_mi", Form: "mi", Kind: Prefix, Focus: FocusReciprocal},
		{ID: "prefix_maN", Form: "maN", Kind: NasalPrefix, Focus: FocusActor, Aspect: AspectNonCompleted},
		{ID: "prefix_aN", Form: "aN", Kind: NasalPrefix, Focus: FocusActor, Aspect: AspectCompleted},
		{ID: "prefix_pa", Form: "pa", Kind: Prefix, Focus: FocusCausative},
		{ID: "prefix_paN", Form: "paN", Kind: NasalPrefix, Focus: FocusCausative},
		{ID: "prefix_i", Form: "i", Kind: Prefix, Focus: FocusBenefactive},
		{ID: "prefix_in", Form: "in", Kind: Prefix, Focus: FocusCompleted},
		{ID: "prefix_ika", Form: "ika", Kind: Prefix, Focus: FocusOrdinal},
		{ID: "prefix_ka", Form: "ka", Kind: Prefix, Focus: FocusAbstract},
		{ID: "prefix_maka", Form: "maka", Kind: Prefix, Focus: FocusAbility},
		{ID: "prefix_paka", Form: "paka", Kind: Prefix, Focus: FocusIntensive},

		{ID: "suffix_an", Form: "an", Kind: Suffix, Focus: FocusLocative},
		{ID: "suffix_en", Form: "en", Kind: Suffix, Focus: FocusPatient},
		{ID: "suffix_in", Form: "in", Kind: Suffix, Focus: FocusCompleted},

		{ID: "enclitic_ko", Form: "ko", Kind: Enclitic, Focus: FocusGenitive, Meaning: "my"},
		{ID: "enclitic_mo", Form: "mo", Kind: Enclitic, Focus: FocusGenitive, Meaning: "your (sg)"},
		{ID: "enclitic_to", Form: "to", Kind: Enclitic, Focus: FocusGenitive, Meaning: "his/her"},
		{ID: "enclitic_mi", Form: "mi", Kind: Enclitic, Focus: FocusGenitive, Meaning: "our (excl)"},
		{ID: "enclitic_tayo", Form: "tayo", Kind: Enclitic, Focus: FocusGenitive, Meaning: "our (incl)"},
		{ID: "enclitic_yo", Form: "yo", Kind: Enclitic, Focus: FocusGenitive, Meaning: "your (pl)"},
		{ID: "enclitic_da", Form: "da", Kind: Enclitic, Focus: FocusGenitive, Meaning: "their"},
	}

	particles := map[string]string{
		"ed":   "at/to/in",
		"na":   "already",
		"so":   "the",
		"ray":  "the (pl)",
		"et":   "and",
		"ya":   "that",
		"ta":   "because",
		"no":   "if",
		"diad": "from",
		"para": "for",
		"ni":   "of",
	}

	pronouns := map[string]string{
		"siak":     "I",
		"sika":     "you (sg)",
		"sikato":   "he/she",
		"sikatayo": "we (incl)",
		"sikami":   "we (excl)",
		"sikayo":   "you (pl)",
		"sikara":   "they",
		"ak":       "I",
		"ka":       "you",
	}

	demonstratives := map[string]string{
		"itan":  "this",
		"iyan":  "that",
		"yaran": "that (far)",
		"yan":   "that",
		"tan":   "this",
	}

	redups := []ReduplicationPattern{
		{Name: "CV", Chunk: 2, Kind: ReduplicationPlural},
		{Name: "CVC", Chunk: 3, Kind: ReduplicationPlural},
		{Name: "CVCV", Chunk: 4, Kind: ReduplicationPlural},
		{Name: "full", Chunk: 0, Kind: ReduplicationIntensive},
	}

	return NewRuleTable(affixes, particles, pronouns, demonstratives, redups)
}
