package dictstore

import (
	"fmt"

	"go.uber.org/zap"

	pangasinan "github.com/Nevram26/Pangasinense-NLP"
)

// ImportStats summarizes one import run.
type ImportStats struct {
	// Read is the number of usable entries parsed from the source file.
	Read int
	// Inserted is the number of new rows created.
	Inserted int
	// Merged is the number of duplicates folded into existing rows.
	Merged int
}

// Importer loads dictionary source files into a Store.
type Importer struct {
	store *Store
	log   *zap.Logger
}

// NewImporter returns an importer writing to store. A nil logger
// disables logging.
func NewImporter(store *Store, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{store: store, log: log}
}

// ImportFile parses the JSON or CSV lexicon at path and upserts every
// entry, merging duplicate headwords instead of overwriting them.
func (im *Importer) ImportFile(path string) (ImportStats, error) {
	entries, err := pangasinan.LoadEntries(path)
	if err != nil {
		return ImportStats{}, fmt.Errorf("parse %s: %w", path, err)
	}

	stats := ImportStats{Read: len(entries)}
	for _, e := range entries {
		inserted, err := im.store.UpsertEntry(e)
		if err != nil {
			return stats, err
		}
		if inserted {
			stats.Inserted++
		} else {
			stats.Merged++
		}
	}

	im.log.Info("dictionary import finished",
		zap.String("path", path),
		zap.Int("read", stats.Read),
		zap.Int("inserted", stats.Inserted),
		zap.Int("merged", stats.Merged),
	)
	return stats, nil
}
