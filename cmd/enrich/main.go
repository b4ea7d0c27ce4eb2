// Command enrich runs the morphological analyzer over every headword of
// a lexicon and writes an enriched copy annotating each entry with its
// resolved root and the rules that fired, plus rule-usage statistics.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"sort"

	"go.uber.org/zap"

	pangasinan "github.com/Nevram26/Pangasinense-NLP"
)

type enrichedEntry struct {
	Word        string   `json:"word"`
	Translation string   `json:"translation"`
	Root        string   `json:"root"`
	POS         string   `json:"POS,omitempty"`
	Sources     []string `json:"sources,omitempty"`
	Rules       []string `json:"rules"`
	Found       bool     `json:"found"`
}

func main() {
	input := flag.String("input", "pangasinan_dictionary_combined.json", "input lexicon (JSON or CSV)")
	output := flag.String("output", "pangasinan_with_morphology.json", "output enriched JSON file")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	entries, err := pangasinan.LoadEntries(*input)
	if err != nil {
		log.Fatal("load lexicon", zap.Error(err))
	}
	translator := pangasinan.NewFromEntries(entries)

	ruleCounts := make(map[string]int)
	enriched := make([]enrichedEntry, 0, len(entries))
	for _, e := range entries {
		analysis := translator.AnalyzeWord(e.Word)
		for _, id := range analysis.Rules {
			ruleCounts[id]++
		}
		enriched = append(enriched, enrichedEntry{
			Word:        e.Word,
			Translation: e.Translation,
			Root:        analysis.Root,
			POS:         string(e.POS),
			Sources:     e.Sources,
			Rules:       analysis.Rules,
			Found:       analysis.Found,
		})
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatal("create output", zap.Error(err))
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(enriched); err != nil {
		log.Fatal("write output", zap.Error(err))
	}
	if err := f.Close(); err != nil {
		log.Fatal("close output", zap.Error(err))
	}

	ids := make([]string, 0, len(ruleCounts))
	for id := range ruleCounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ruleCounts[ids[i]] != ruleCounts[ids[j]] {
			return ruleCounts[ids[i]] > ruleCounts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	for _, id := range ids {
		log.Info("rule usage", zap.String("rule", id), zap.Int("count", ruleCounts[id]))
	}
	log.Info("enrichment finished",
		zap.String("output", *output),
		zap.Int("entries", len(enriched)))
}
