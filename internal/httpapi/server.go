// Package httpapi exposes the operational control plane: manual sync
// triggers, full resync, resume, and status/quota inspection.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"content_syncer/internal/domain"
)

//go:generate mockgen -source=server.go -destination=mocks/mocks.go -package=mocks

// SyncService is the orchestrator surface the API drives.
type SyncService interface {
	StartManualSync(ctx context.Context, sourceID int64) (*domain.SyncRunStats, error)
	TriggerFullResync(ctx context.Context, sourceID int64) (*domain.SyncRunStats, error)
	ResumeInitialSync(ctx context.Context, sourceID int64) (*domain.SyncRunStats, error)
	GetSyncStatus(ctx context.Context, sourceID int64) (*domain.SyncRecord, error)
	ListSyncStats(ctx context.Context) ([]domain.SyncRecord, error)
}

// QuotaService reports current budget usage.
type QuotaService interface {
	GetUsageSummary(ctx context.Context) (*domain.QuotaSummary, error)
}

type Server struct {
	syncs  SyncService
	quota  QuotaService
	logger *slog.Logger
}

func NewServer(syncs SyncService, quota QuotaService, logger *slog.Logger) *Server {
	return &Server{
		syncs:  syncs,
		quota:  quota,
		logger: logger,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/sources/{sourceID}", func(r chi.Router) {
		r.Post("/sync", s.handleStartSync)
		r.Post("/resync", s.handleFullResync)
		r.Post("/resume", s.handleResume)
		r.Get("/sync", s.handleSyncStatus)
	})
	r.Get("/sync/stats", s.handleSyncStats)
	r.Get("/quota", s.handleQuota)

	return r
}

type syncRunResponse struct {
	SourceID int64   `json:"source_id"`
	Mode     string  `json:"mode"`
	Pages    int     `json:"pages"`
	Ingested int     `json:"ingested"`
	Failed   int     `json:"failed"`
	Paused   bool    `json:"paused"`
	Duration float64 `json:"duration_seconds"`
}

func toRunResponse(stats *domain.SyncRunStats) syncRunResponse {
	return syncRunResponse{
		SourceID: stats.SourceID,
		Mode:     string(stats.Mode),
		Pages:    stats.Pages,
		Ingested: stats.Ingested,
		Failed:   stats.Failed,
		Paused:   stats.Paused,
		Duration: stats.Duration.Seconds(),
	}
}

type syncStatusResponse struct {
	SourceID                int64                    `json:"source_id"`
	Status                  string                   `json:"status"`
	LastSyncedAt            *time.Time               `json:"last_synced_at,omitempty"`
	SyncStartedAt           *time.Time               `json:"sync_started_at,omitempty"`
	SyncCompletedAt         *time.Time               `json:"sync_completed_at,omitempty"`
	TotalCount              *int64                   `json:"total_count,omitempty"`
	SyncedCount             int64                    `json:"synced_count"`
	FailedCount             int64                    `json:"failed_count"`
	ConsecutiveFailureCount int                      `json:"consecutive_failure_count"`
	LastError               *string                  `json:"last_error,omitempty"`
	InitialSyncCompleted    bool                     `json:"initial_sync_completed"`
	FullSyncProgress        *domain.FullSyncProgress `json:"full_sync_progress,omitempty"`
}

func toStatusResponse(rec *domain.SyncRecord) syncStatusResponse {
	return syncStatusResponse{
		SourceID:                rec.SourceID,
		Status:                  string(rec.Status),
		LastSyncedAt:            rec.LastSyncedAt,
		SyncStartedAt:           rec.SyncStartedAt,
		SyncCompletedAt:         rec.SyncCompletedAt,
		TotalCount:              rec.TotalCount,
		SyncedCount:             rec.SyncedCount,
		FailedCount:             rec.FailedCount,
		ConsecutiveFailureCount: rec.ConsecutiveFailureCount,
		LastError:               rec.LastError,
		InitialSyncCompleted:    rec.InitialSyncCompleted,
		FullSyncProgress:        rec.FullSyncProgress,
	}
}

func (s *Server) handleStartSync(w http.ResponseWriter, r *http.Request) {
	s.runSync(w, r, s.syncs.StartManualSync)
}

func (s *Server) handleFullResync(w http.ResponseWriter, r *http.Request) {
	s.runSync(w, r, s.syncs.TriggerFullResync)
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	s.runSync(w, r, s.syncs.ResumeInitialSync)
}

func (s *Server) runSync(w http.ResponseWriter, r *http.Request, run func(context.Context, int64) (*domain.SyncRunStats, error)) {
	sourceID, ok := s.sourceID(w, r)
	if !ok {
		return
	}

	stats, err := run(r.Context(), sourceID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toRunResponse(stats))
}

func (s *Server) handleSyncStatus(w http.ResponseWriter, r *http.Request) {
	sourceID, ok := s.sourceID(w, r)
	if !ok {
		return
	}

	rec, err := s.syncs.GetSyncStatus(r.Context(), sourceID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toStatusResponse(rec))
}

func (s *Server) handleSyncStats(w http.ResponseWriter, r *http.Request) {
	recs, err := s.syncs.ListSyncStats(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]syncStatusResponse, 0, len(recs))
	for i := range recs {
		out = append(out, toStatusResponse(&recs[i]))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleQuota(w http.ResponseWriter, r *http.Request) {
	summary, err := s.quota.GetUsageSummary(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

func (s *Server) sourceID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "sourceID"), 10, 64)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid source id"})
		return 0, false
	}
	return id, true
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSourceNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSyncInProgress):
		s.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrQuotaExhausted):
		s.writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: err.Error()})
	default:
		s.logger.Error("request failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
