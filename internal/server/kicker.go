package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"kicker-tracker/internal/domain"
	"kicker-tracker/internal/metrics"
	"kicker-tracker/internal/service"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

//go:embed static/index.html
var indexHTML []byte

type KickerOrderService interface {
	GetKickerOrder(ctx context.Context, rawDraftID string) ([]domain.KickerPick, error)
	RecentLookups(ctx context.Context, limit int) ([]domain.Lookup, error)
}

type KickerServer struct {
	svc     KickerOrderService
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewKickerServer(svc KickerOrderService, m *metrics.Metrics, logger zerolog.Logger) *KickerServer {
	return &KickerServer{svc: svc, metrics: m, logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

type recentLookupResponse struct {
	DraftID     string `json:"draft_id"`
	KickerCount int    `json:"kicker_count"`
	LeagueSize  int    `json:"league_size"`
	LookedUpAt  string `json:"looked_up_at"`
}

func (s *KickerServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.Index)
	mux.HandleFunc("GET /kicker_order", s.KickerOrder)
	mux.HandleFunc("GET /recent_lookups", s.RecentLookups)
	mux.HandleFunc("GET /healthz", s.Health)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
}

func (s *KickerServer) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexHTML)
}

func (s *KickerServer) KickerOrder(w http.ResponseWriter, r *http.Request) {
	logger := s.requestLogger(r)
	draftID := r.URL.Query().Get("draft_id")

	kickers, err := s.svc.GetKickerOrder(r.Context(), draftID)
	if err != nil {
		var fetchErr *domain.FetchError
		var deriveErr *domain.DeriveError
		switch {
		case errors.As(err, &fetchErr):
			if service.IsInvalidDraftID(err) {
				s.observe(metrics.OutcomeInvalidID)
			} else {
				s.observe(metrics.OutcomeFetchError)
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fetchErr.Message})
		case errors.As(err, &deriveErr):
			s.observe(metrics.OutcomeNotFound)
			writeJSON(w, http.StatusNotFound, errorResponse{Error: deriveErr.Message})
		default:
			s.observe(metrics.OutcomeError)
			logger.Error().Err(err).Str("draft_id", draftID).Msg("kicker order failed")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		}
		return
	}

	s.observe(metrics.OutcomeOK)
	logger.Debug().Str("draft_id", draftID).Int("kicker_count", len(kickers)).Msg("kicker order served")
	writeJSON(w, http.StatusOK, kickers)
}

func (s *KickerServer) RecentLookups(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	lookups, err := s.svc.RecentLookups(r.Context(), limit)
	if err != nil {
		s.requestLogger(r).Error().Err(err).Msg("recent lookups failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	resp := make([]recentLookupResponse, 0, len(lookups))
	for _, l := range lookups {
		resp = append(resp, recentLookupResponse{
			DraftID:     l.DraftID,
			KickerCount: l.KickerCount,
			LeagueSize:  l.LeagueSize,
			LookedUpAt:  l.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *KickerServer) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *KickerServer) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveLookup(outcome)
	}
}

// requestLogger prefers the logger the RequestID middleware put on the context.
func (s *KickerServer) requestLogger(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
