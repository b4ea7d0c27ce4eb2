// Command dictimport loads one or more JSON/CSV lexicon exports into the
// SQLite dictionary store, merging duplicate headwords and unioning
// their source provenance.
package main

import (
	"flag"

	"go.uber.org/zap"

	"github.com/Nevram26/Pangasinense-NLP/dictstore"
)

func main() {
	dbPath := flag.String("db", "pangasinan.db", "path to the SQLite dictionary store")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if flag.NArg() == 0 {
		log.Fatal("usage: dictimport -db <store> <lexicon.json|lexicon.csv> ...")
	}

	store, err := dictstore.Open(*dbPath)
	if err != nil {
		log.Fatal("open store", zap.Error(err))
	}
	defer store.Close()

	importer := dictstore.NewImporter(store, log)
	for _, path := range flag.Args() {
		if _, err := importer.ImportFile(path); err != nil {
			log.Fatal("import failed", zap.String("path", path), zap.Error(err))
		}
	}

	total, err := store.Count()
	if err != nil {
		log.Fatal("count entries", zap.Error(err))
	}
	log.Info("store ready", zap.String("db", *dbPath), zap.Int("entries", total))
}
