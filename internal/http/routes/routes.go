// Package routes wires the HTTP front end over the advisor core.
package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/briangreenhill/fitadvisor/advisor"
	"github.com/briangreenhill/fitadvisor/internal/history"
)

const apiVersion = "1.0"

type Server struct {
	Router  *chi.Mux
	Advisor *advisor.Advisor
	History history.Store
}

type ServerOptions struct {
	Advisor *advisor.Advisor
	History history.Store
}

func New(opts ServerOptions) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	s := &Server{Router: r, Advisor: opts.Advisor, History: opts.History}
	if s.History == nil {
		s.History = history.NewMemoryStore()
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("writing health check response")
		}
	})

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Post("/recommend", s.handleRecommend)
	r.Get("/recommend/sample", s.handleSample)
	r.Post("/batch", s.handleBatch)
	r.Post("/suggestions", s.handleSuggestions)
	r.Get("/history", s.handleHistoryList)
	r.Post("/history", s.handleHistorySave)

	return s
}

// metricsRequest is the transport shape of health metrics. Required numeric
// fields are pointers so missing keys can be rejected here; the advisor core
// does no validation of its own.
type metricsRequest struct {
	HeartRate       *int     `json:"heart_rate"`
	SleepHours      *float64 `json:"sleep_hours"`
	StressLevel     *int     `json:"stress_level"`
	PreviousWorkout string   `json:"previous_workout,omitempty"`
	UserID          string   `json:"user_id,omitempty"`
}

func (m *metricsRequest) validate() error {
	if m.HeartRate == nil {
		return fmt.Errorf("heart_rate is required")
	}
	if *m.HeartRate <= 0 {
		return fmt.Errorf("heart_rate must be positive, got %d", *m.HeartRate)
	}
	if m.SleepHours == nil {
		return fmt.Errorf("sleep_hours is required")
	}
	if *m.SleepHours < 0 {
		return fmt.Errorf("sleep_hours must be non-negative, got %g", *m.SleepHours)
	}
	if m.StressLevel == nil {
		return fmt.Errorf("stress_level is required")
	}
	return nil
}

func (m *metricsRequest) metrics() advisor.HealthMetrics {
	return advisor.HealthMetrics{
		HeartRate:       *m.HeartRate,
		SleepHours:      *m.SleepHours,
		StressLevel:     *m.StressLevel,
		PreviousWorkout: m.PreviousWorkout,
	}
}

// recommendResponse is a recommendation plus transport metadata. The embedded
// timestamp is generation time; Timestamp here is transport time.
type recommendResponse struct {
	advisor.Recommendation
	APIVersion string    `json:"api_version"`
	RequestID  string    `json:"request_id"`
	Timestamp  time.Time `json:"timestamp"`
	UserID     string    `json:"user_id,omitempty"`
}

// fillSentinels replaces empty text fields with "N/A". Field presence is the
// contract; the model path is free-form and may leave fields blank.
func fillSentinels(rec *advisor.Recommendation) {
	for _, f := range []*string{&rec.AlertLevel, &rec.Workout, &rec.Intensity, &rec.Message, &rec.Modifications, &rec.RecoveryTips} {
		if *f == "" {
			*f = "N/A"
		}
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, map[string]any{
		"message": "Fitness Advisor API",
		"status":  "active",
		"mode":    s.Advisor.Mode(),
		"endpoints": map[string]string{
			"health_check":          "/health",
			"get_recommendation":    "/recommend",
			"batch_recommendations": "/batch",
			"workout_suggestions":   "/suggestions",
			"history":               "/history",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now(),
		"mode":      s.Advisor.Mode(),
		"version":   apiVersion,
	})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req metricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m := req.metrics()
	rec := s.Advisor.Analyze(r.Context(), m)
	fillSentinels(&rec)

	s.History.Append(history.Entry{
		UserID:         req.UserID,
		Metrics:        m,
		Recommendation: rec,
	})

	hlog.FromRequest(r).Info().
		Str("alert_level", rec.AlertLevel).
		Bool("should_train", rec.ShouldTrain).
		Msg("recommendation generated")

	s.respond(w, r, http.StatusOK, recommendResponse{
		Recommendation: rec,
		APIVersion:     apiVersion,
		RequestID:      uuid.NewString(),
		Timestamp:      time.Now(),
		UserID:         req.UserID,
	})
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	m := advisor.HealthMetrics{
		HeartRate:       72,
		SleepHours:      7.5,
		StressLevel:     4,
		PreviousWorkout: "running",
	}
	rec := s.Advisor.Analyze(r.Context(), m)
	fillSentinels(&rec)

	s.respond(w, r, http.StatusOK, map[string]any{
		"test":           "successful",
		"sample_data":    m,
		"recommendation": rec,
	})
}

// batchItemError is the per-item failure shape: the item's error plus its
// echoed input, in place of a recommendation.
type batchItemError struct {
	Error           string   `json:"error"`
	UserID          string   `json:"user_id,omitempty"`
	HeartRate       *int     `json:"heart_rate,omitempty"`
	SleepHours      *float64 `json:"sleep_hours,omitempty"`
	StressLevel     *int     `json:"stress_level,omitempty"`
	PreviousWorkout string   `json:"previous_workout,omitempty"`
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []metricsRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, "invalid JSON body: expected an array of metrics", http.StatusBadRequest)
		return
	}

	results := make([]any, 0, len(reqs))
	successful := 0
	for i := range reqs {
		req := &reqs[i]
		if err := req.validate(); err != nil {
			results = append(results, batchItemError{
				Error:           err.Error(),
				UserID:          req.UserID,
				HeartRate:       req.HeartRate,
				SleepHours:      req.SleepHours,
				StressLevel:     req.StressLevel,
				PreviousWorkout: req.PreviousWorkout,
			})
			continue
		}

		rec := s.Advisor.Analyze(r.Context(), req.metrics())
		fillSentinels(&rec)
		results = append(results, recommendResponse{
			Recommendation: rec,
			APIVersion:     apiVersion,
			RequestID:      uuid.NewString(),
			Timestamp:      time.Now(),
			UserID:         req.UserID,
		})
		successful++
	}

	s.respond(w, r, http.StatusOK, map[string]any{
		"batch_id":       uuid.NewString(),
		"total_requests": len(reqs),
		"successful":     successful,
		"failed":         len(reqs) - successful,
		"results":        results,
	})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HealthCondition string `json:"health_condition"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.HealthCondition == "" {
		http.Error(w, "health_condition is required", http.StatusBadRequest)
		return
	}

	s.respond(w, r, http.StatusOK, map[string]any{
		"health_condition": req.HealthCondition,
		"suggestions":      s.Advisor.Suggestions(r.Context(), req.HealthCondition),
	})
}

func (s *Server) handleHistorySave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Metrics        metricsRequest         `json:"metrics"`
		Recommendation advisor.Recommendation `json:"recommendation"`
		UserID         string                 `json:"user_id,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := req.Metrics.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = req.Metrics.UserID
	}
	entry := s.History.Append(history.Entry{
		UserID:         userID,
		Metrics:        req.Metrics.metrics(),
		Recommendation: req.Recommendation,
	})

	s.respond(w, r, http.StatusOK, map[string]any{
		"status":   "saved",
		"entry_id": entry.ID,
	})
}

func (s *Server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		entries := s.History.Query(userID)
		if entries == nil {
			entries = []history.Entry{}
		}
		s.respond(w, r, http.StatusOK, map[string]any{
			"user_id": userID,
			"entries": entries,
		})
		return
	}

	s.respond(w, r, http.StatusOK, map[string]any{
		"total_entries": s.History.Len(),
		"entries":       s.History.All(),
	})
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("encoding response")
	}
}
