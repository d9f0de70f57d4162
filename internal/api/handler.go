// Package api exposes the scoring engine, session store, and analytics
// over HTTP. Handlers decode JSON, call the pure engine, and serialize the
// result; all engine behavior lives in the internal packages it wraps.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"script_dashboard/internal/analytics"
	"script_dashboard/internal/cache"
	"script_dashboard/internal/models"
	"script_dashboard/internal/quality"
	"script_dashboard/internal/sentiment"
	"script_dashboard/internal/store"
)

// Server wires the engine to its persistence and caching collaborators.
type Server struct {
	store *store.Store
	cache *cache.Cache
}

// New builds a Server. Both collaborators are required.
func New(st *store.Store, c *cache.Cache) *Server {
	return &Server{store: st, cache: c}
}

// Routes registers every endpoint on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/score-quality", s.handleScoreQuality)
	mux.HandleFunc("/analyze-sentiment", s.handleAnalyzeSentiment)
	mux.HandleFunc("/sessions", s.handleSessions)
	mux.HandleFunc("/sessions/", s.handleSessionByID)
	mux.HandleFunc("/analytics/overview", s.handleAnalyticsOverview)
	mux.HandleFunc("/analytics/quality-trends", s.handleQualityTrends)
	mux.HandleFunc("/cache/stats", s.handleCacheStats)
	mux.HandleFunc("/cache/cleanup", s.handleCacheCleanup)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

type scoreQualityRequest struct {
	Script          string                  `json:"script"`
	TimelineContext *models.TimelineContext `json:"timeline_context,omitempty"`
	SessionEvents   []models.SessionEvent   `json:"session_events,omitempty"`
}

func (s *Server) handleScoreQuality(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req scoreQualityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	contextJSON, _ := json.Marshal(struct {
		T *models.TimelineContext `json:"t"`
		E []models.SessionEvent   `json:"e"`
	}{req.TimelineContext, req.SessionEvents})
	key := cache.Key(req.Script, string(contextJSON))

	if cached, ok := s.cache.Get(key, "quality"); ok {
		writeRawJSON(w, cached)
		return
	}

	metrics := quality.Score(req.Script, req.TimelineContext, req.SessionEvents)
	if err := s.cache.Put(key, "quality", metrics); err != nil {
		log.Printf("[WARN] quality cache write failed: %v", err)
	}
	writeJSON(w, http.StatusOK, metrics)
}

type analyzeSentimentRequest struct {
	Script         string                 `json:"script"`
	TimingAnalysis map[string]interface{} `json:"timing_analysis,omitempty"`
}

func (s *Server) handleAnalyzeSentiment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req analyzeSentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	// timing_analysis never changes the result, so it stays out of the key.
	key := cache.Key(req.Script)
	if cached, ok := s.cache.Get(key, "sentiment"); ok {
		writeRawJSON(w, cached)
		return
	}

	result := sentiment.Analyze(req.Script, req.TimingAnalysis)
	if err := s.cache.Put(key, "sentiment", result); err != nil {
		log.Printf("[WARN] sentiment cache write failed: %v", err)
	}
	writeJSON(w, http.StatusOK, result)
}

type createSessionRequest struct {
	SessionID       string                  `json:"session_id,omitempty"`
	Script          string                  `json:"script"`
	DurationSeconds float64                 `json:"duration_seconds,omitempty"`
	TotalEvents     int                     `json:"total_events,omitempty"`
	ActionBreakdown map[string]int          `json:"action_breakdown,omitempty"`
	TimelineContext *models.TimelineContext `json:"timeline_context,omitempty"`
	SessionEvents   []models.SessionEvent   `json:"session_events,omitempty"`
}

type sessionResponse struct {
	Session   store.Session    `json:"session"`
	Quality   quality.Metrics  `json:"quality_metrics"`
	Sentiment sentiment.Result `json:"sentiment_analysis"`
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createSession(w, r)
	case http.MethodGet:
		s.listSessions(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	metrics := quality.Score(req.Script, req.TimelineContext, req.SessionEvents)
	toneResult := sentiment.Analyze(req.Script, nil)

	id := req.SessionID
	if id == "" {
		id = uuid.NewString()
	}
	sess := store.Session{
		ID:              id,
		Script:          req.Script,
		WordCount:       metrics.WordCount,
		QualityScore:    metrics.OverallScore,
		Grade:           metrics.Grade,
		Sentiment:       string(toneResult.OverallSentiment),
		Confidence:      toneResult.Confidence,
		DurationSeconds: req.DurationSeconds,
		TotalEvents:     req.TotalEvents,
		ActionBreakdown: req.ActionBreakdown,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.store.Save(sess); err != nil {
		log.Printf("[ERROR] save session %s: %v", id, err)
		http.Error(w, "failed to save session", http.StatusInternalServerError)
		return
	}

	log.Printf("[INFO] saved session %s (score=%d grade=%s sentiment=%s)",
		id, metrics.OverallScore, metrics.Grade, toneResult.OverallSentiment)
	writeJSON(w, http.StatusCreated, sessionResponse{
		Session:   sess,
		Quality:   metrics,
		Sentiment: toneResult,
	})
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	sessions, err := s.store.List(limit)
	if err != nil {
		log.Printf("[ERROR] list sessions: %v", err)
		http.Error(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}
	// Summary view: scripts stay out of the listing payload.
	for i := range sessions {
		sessions[i].Script = ""
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func (s *Server) handleSessionByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/sessions/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "session id required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		sess, err := s.store.Get(id)
		if err != nil {
			log.Printf("[ERROR] get session %s: %v", id, err)
			http.Error(w, "failed to read session", http.StatusInternalServerError)
			return
		}
		if sess == nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	case http.MethodDelete:
		deleted, err := s.store.Delete(id)
		if err != nil {
			log.Printf("[ERROR] delete session %s: %v", id, err)
			http.Error(w, "failed to delete session", http.StatusInternalServerError)
			return
		}
		if !deleted {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sessions, err := s.store.List(0)
	if err != nil {
		log.Printf("[ERROR] analytics overview: %v", err)
		http.Error(w, "failed to load sessions", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, analytics.BuildOverview(sessions, time.Now().UTC()))
}

func (s *Server) handleQualityTrends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sessions, err := s.store.List(0)
	if err != nil {
		log.Printf("[ERROR] quality trends: %v", err)
		http.Error(w, "failed to load sessions", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, analytics.BuildQualityTrends(sessions))
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.cache.Snapshot())
}

func (s *Server) handleCacheCleanup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	removed, err := s.cache.Cleanup()
	if err != nil {
		log.Printf("[ERROR] cache cleanup: %v", err)
		http.Error(w, "cache cleanup failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"removed_entries": removed})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.Count()
	status := "ok"
	if err != nil {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        status,
		"session_count": count,
		"cache_stats":   s.cache.Snapshot(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[WARN] encode response: %v", err)
	}
}

func writeRawJSON(w http.ResponseWriter, raw json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		log.Printf("[WARN] write cached response: %v", err)
	}
}
