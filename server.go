package reviewlens

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// A Server exposes the analysis pipeline over HTTP for the demo dashboard.
// It holds only read-only collaborators and serves concurrent requests
// without locking.
type Server struct {
	analyzer *Analyzer
	corpus   *Corpus
	log      *slog.Logger
}

// NewServer wires the HTTP surface. corpus may be nil, in which case the
// random-review endpoint reports that no demo corpus is loaded.
func NewServer(analyzer *Analyzer, corpus *Corpus, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{analyzer: analyzer, corpus: corpus, log: log}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/analyze", s.handleAnalyze)
	r.Get("/reviews/random", s.handleRandomReview)
	return r
}

type analyzeRequest struct {
	Text string `json:"text"`
	TopN int    `json:"top_n"`
}

type analyzeResponse struct {
	Result  *Result `json:"result,omitempty"`
	Message string  `json:"message,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		// User-visible empty state, not an error.
		s.respondJSON(w, http.StatusOK, analyzeResponse{Message: "no analysis available"})
		return
	}

	result := s.analyzer.Analyze(req.Text, req.TopN)
	s.log.Info("analyzed review",
		"chars", len(req.Text),
		"top_n", result.TopN,
		"spans", len(result.Annotated.Spans))
	s.respondJSON(w, http.StatusOK, analyzeResponse{Result: result})
}

type randomReviewResponse struct {
	Text    string `json:"text"`
	Preview string `json:"preview,omitempty"`
}

func (s *Server) handleRandomReview(w http.ResponseWriter, r *http.Request) {
	if s.corpus == nil || s.corpus.Len() == 0 {
		s.respondError(w, http.StatusNotFound, "no demo corpus loaded")
		return
	}
	review := s.corpus.Random()
	s.respondJSON(w, http.StatusOK, randomReviewResponse{
		Text:    review,
		Preview: s.corpus.Preview(review, 2),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("write response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}
