package pangasinan

import (
	"sort"
	"sync/atomic"
)

// generationCounter numbers successive index builds so reloads are
// observable in stats and logs.
var generationCounter atomic.Uint64

// DictionaryIndex maps normalized words and roots to their dictionary
// entries. It is immutable once built; a reload builds a whole new
// generation and publishes it with a single pointer swap, so concurrent
// readers need no locks.
type DictionaryIndex struct {
	entries    map[string][]DictionaryEntry
	words      int
	generation uint64
}

// BuildIndex constructs an index from loaded entries.
//
// Each entry is keyed by its normalized word and, when distinct, by its
// normalized root, so affix-stripped forms resolve against roots that
// only occur as `root` fields. When several sources supply the same
// normalized word, the first-seen translation stays authoritative and
// the provenance sets are unioned.
func BuildIndex(entries []DictionaryEntry) *DictionaryIndex {
	idx := &DictionaryIndex{
		entries:    make(map[string][]DictionaryEntry, len(entries)),
		generation: generationCounter.Add(1),
	}
	for _, e := range entries {
		if e.Normalized == "" {
			e.Normalized = NormalizeKey(e.Word)
		}
		if e.Normalized == "" {
			continue
		}
		if idx.add(e.Normalized, e) {
			idx.words++
		}
		if root := NormalizeKey(e.Root); root != "" && root != e.Normalized {
			idx.add(root, e)
		}
	}
	return idx
}

// add inserts e under key, merging with an existing entry for the same
// headword instead of shadowing it. It reports whether a new entry was
// appended rather than merged.
func (idx *DictionaryIndex) add(key string, e DictionaryEntry) bool {
	list := idx.entries[key]
	for i := range list {
		if list[i].Normalized == e.Normalized {
			list[i].Sources = unionSources(list[i].Sources, e.Sources)
			return false
		}
	}
	idx.entries[key] = append(list, e)
	return true
}

// Lookup returns every entry for the normalized word or root key.
// The slice is shared and must not be mutated by callers.
func (idx *DictionaryIndex) Lookup(key string) []DictionaryEntry {
	return idx.entries[key]
}

// Contains reports whether the key resolves to at least one entry.
func (idx *DictionaryIndex) Contains(key string) bool {
	return len(idx.entries[key]) > 0
}

// Words returns the number of distinct headwords indexed.
func (idx *DictionaryIndex) Words() int { return idx.words }

// Keys returns the number of lookup keys (headwords plus root forms).
func (idx *DictionaryIndex) Keys() int { return len(idx.entries) }

// Generation returns the build generation of this index.
func (idx *DictionaryIndex) Generation() uint64 { return idx.generation }

// unionSources merges two provenance sets, sorted and deduplicated.
func unionSources(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, s := range append(append([]string{}, a...), b...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
