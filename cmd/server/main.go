// Command server exposes the Pangasinan rule-based translator as a JSON
// REST API.
//
// Endpoints:
//
//	GET  /                  service info
//	GET  /health            health check
//	POST /translate         body: {"text":"...","show_rules":true}
//	POST /translate/batch   body: {"texts":["...","..."]}
//	GET  /analyze?word=<w>  morphological analysis of one word
//	GET  /rules             rule table summary
//	GET  /stats             dictionary and rule statistics
//	POST /reload            rebuild the dictionary index from the source
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.uber.org/zap"

	pangasinan "github.com/Nevram26/Pangasinense-NLP"
	"github.com/Nevram26/Pangasinense-NLP/dictstore"
)

// ---- JSON request/response types ----------------------------------------

type translateRequest struct {
	Text      string `json:"text"`
	ShowRules bool   `json:"show_rules"`
}

type translateResponse struct {
	Original     string   `json:"original"`
	Translation  string   `json:"translation"`
	WordByWord   string   `json:"word_by_word"`
	RulesApplied []string `json:"rules_applied,omitempty"`
	Timestamp    string   `json:"timestamp"`
	RequestID    string   `json:"request_id,omitempty"`
}

type batchRequest struct {
	Texts     []string `json:"texts"`
	ShowRules bool     `json:"show_rules"`
}

type batchResponse struct {
	Results []translateResponse `json:"results"`
}

type analyzeResponse struct {
	Word        string   `json:"word"`
	Normalized  string   `json:"normalized"`
	Root        string   `json:"root"`
	Translation string   `json:"translation"`
	POS         string   `json:"pos,omitempty"`
	Rules       []string `json:"rules"`
	Found       bool     `json:"found"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toTranslateResponse(r pangasinan.TranslationResult, showRules bool, requestID string) translateResponse {
	resp := translateResponse{
		Original:    r.Original,
		Translation: r.Translation,
		WordByWord:  r.WordByWord,
		Timestamp:   r.Timestamp.Format(time.RFC3339),
		RequestID:   requestID,
	}
	if showRules {
		resp.RulesApplied = r.RulesApplied
		if resp.RulesApplied == nil {
			resp.RulesApplied = []string{}
		}
	}
	return resp
}

func toAnalyzeResponse(a pangasinan.AnalysisResult) analyzeResponse {
	rules := a.Rules
	if rules == nil {
		rules = []string{}
	}
	return analyzeResponse{
		Word:        a.Word,
		Normalized:  a.Normalized,
		Root:        a.Root,
		Translation: a.Translation,
		POS:         string(a.POS),
		Rules:       rules,
		Found:       a.Found,
	}
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any, log *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string, log *zap.Logger) {
	writeJSON(w, status, errorResponse{Error: msg}, log)
}

// requestLogger assigns a request id and logs each request with timing.
func requestLogger(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info("request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}

// ---- handlers -----------------------------------------------------------

type server struct {
	translator *pangasinan.Translator
	reload     func() error
	log        *zap.Logger
}

func (s *server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found", s.log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "Pangasinan Rule-Based Translation API",
		"description": "Translation using morphological analysis and dictionary lookup",
		"endpoints": map[string]string{
			"translate": "/translate",
			"batch":     "/translate/batch",
			"analyze":   "/analyze",
			"rules":     "/rules",
			"stats":     "/stats",
			"health":    "/health",
		},
	}, s.log)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":            "healthy",
		"dictionary_loaded": s.translator.Index().Words() > 0,
		"type":              "rule_based",
		"timestamp":         time.Now().Format(time.RFC3339),
	}, s.log)
}

func (s *server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required", s.log)
		return
	}
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field", s.log)
		return
	}
	result := s.translator.TranslateText(req.Text)
	result.Timestamp = time.Now()
	writeJSON(w, http.StatusOK, toTranslateResponse(result, req.ShowRules, w.Header().Get("X-Request-ID")), s.log)
}

func (s *server) handleBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required", s.log)
		return
	}
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Texts) == 0 {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'texts' array", s.log)
		return
	}
	now := time.Now()
	results := s.translator.TranslateBatch(req.Texts, 0)
	out := batchResponse{Results: make([]translateResponse, 0, len(results))}
	for _, res := range results {
		res.Timestamp = now
		out.Results = append(out.Results, toTranslateResponse(res, req.ShowRules, ""))
	}
	writeJSON(w, http.StatusOK, out, s.log)
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required", s.log)
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter", s.log)
		return
	}
	analysis := s.translator.AnalyzeWord(word)
	status := http.StatusOK
	if !analysis.Found {
		status = http.StatusNotFound
	}
	writeJSON(w, status, toAnalyzeResponse(analysis), s.log)
}

func (s *server) handleRules(w http.ResponseWriter, r *http.Request) {
	rules := s.translator.Rules()
	affixes := make([]map[string]string, 0, len(rules.Affixes()))
	for _, a := range rules.Affixes() {
		affixes = append(affixes, map[string]string{
			"id":     a.ID,
			"form":   a.Form,
			"focus":  string(a.Focus),
			"aspect": string(a.Aspect),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"affixes":        affixes,
		"particles":      rules.Particles(),
		"pronouns":       rules.Pronouns(),
		"demonstratives": rules.Demonstratives(),
	}, s.log)
}

func (s *server) handleStats(w http.ResponseWriter, r *http.Request) {
	idx := s.translator.Index()
	rules := s.translator.Rules()
	writeJSON(w, http.StatusOK, map[string]any{
		"dictionary_words":     idx.Words(),
		"dictionary_keys":      idx.Keys(),
		"index_generation":     idx.Generation(),
		"affixes_count":        len(rules.Affixes()),
		"particles_count":      len(rules.Particles()),
		"pronouns_count":       len(rules.Pronouns()),
		"demonstratives_count": len(rules.Demonstratives()),
		"type":                 "rule_based",
		"approach":             "Morphological analysis + Dictionary lookup + Linguistic rules",
	}, s.log)
}

func (s *server) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required", s.log)
		return
	}
	if err := s.reload(); err != nil {
		s.log.Error("reload failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error(), s.log)
		return
	}
	idx := s.translator.Index()
	s.log.Info("dictionary reloaded",
		zap.Uint64("generation", idx.Generation()),
		zap.Int("words", idx.Words()))
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "reloaded",
		"generation": idx.Generation(),
		"words":      idx.Words(),
	}, s.log)
}

// ---- main ---------------------------------------------------------------

func main() {
	dictPath := flag.String("dict", "", "path to the JSON/CSV dictionary file")
	dbPath := flag.String("db", "", "path to the SQLite dictionary store (overrides -dict)")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var translator *pangasinan.Translator
	var reload func() error

	switch {
	case *dbPath != "":
		store, err := dictstore.Open(*dbPath)
		if err != nil {
			log.Fatal("open dictionary store", zap.Error(err))
		}
		entries, err := store.LoadEntries()
		if err != nil {
			log.Fatal("load dictionary store", zap.Error(err))
		}
		translator = pangasinan.NewFromEntries(entries)
		reload = func() error {
			entries, err := store.LoadEntries()
			if err != nil {
				return err
			}
			translator.SetIndex(pangasinan.BuildIndex(entries))
			return nil
		}
	case *dictPath != "":
		translator, err = pangasinan.New(*dictPath)
		if err != nil {
			log.Fatal("load dictionary", zap.Error(err))
		}
		reload = func() error { return translator.Reload(*dictPath) }
	default:
		log.Fatal("either -dict or -db is required")
	}

	idx := translator.Index()
	log.Info("dictionary loaded",
		zap.Int("words", idx.Words()),
		zap.Int("keys", idx.Keys()),
		zap.Uint64("generation", idx.Generation()))

	s := &server{translator: translator, reload: reload, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/translate", s.handleTranslate)
	mux.HandleFunc("/translate/batch", s.handleBatch)
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/rules", s.handleRules)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/reload", s.handleReload)

	handler := cors.AllowAll().Handler(requestLogger(log, mux))

	log.Info("listening", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
