// Package handler exposes the comparison service over HTTP and consumes
// refresh commands from RabbitMQ.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"eurocompare/internal/platform"
	"eurocompare/internal/platform/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Comparer --filename comparer.go
//go:generate mockery --name Searcher --filename searcher.go
//go:generate mockery --name Historian --filename historian.go
//go:generate mockery --name AlertManager --filename alert_manager.go

// Comparer builds comparison results.
type Comparer interface {
	Compare(ctx context.Context, asin string) (models.Comparison, error)
}

// Searcher finds product candidates by free text query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.ProductCandidate, error)
}

// Historian serves recorded price history.
type Historian interface {
	History(ctx context.Context, asin string, days int) (models.PriceHistory, error)
	Trending(ctx context.Context, limit int64) ([]models.TrendingProduct, error)
}

// AlertManager manages price alerts.
type AlertManager interface {
	Create(ctx context.Context, alert *models.PriceAlert) error
	List(ctx context.Context, email, filter string) ([]models.PriceAlert, error)
	Delete(ctx context.Context, id int64) error
}

// HTTPHandler routes API requests to the services.
type HTTPHandler struct {
	comparer Comparer
	searcher Searcher
	history  Historian
	alerts   AlertManager
	logger   *zerolog.Logger
}

// NewHTTPHandler returns new HTTPHandler.
func NewHTTPHandler(
	comparer Comparer,
	searcher Searcher,
	history Historian,
	alerts AlertManager,
	logger *zerolog.Logger,
) *HTTPHandler {
	return &HTTPHandler{
		comparer: comparer,
		searcher: searcher,
		history:  history,
		alerts:   alerts,
		logger:   logger,
	}
}

// Router returns the API routes with request logging attached.
func (h *HTTPHandler) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/search", h.handleSearch)
	mux.HandleFunc("POST /api/compare/{asin}", h.handleCompare)
	mux.HandleFunc("GET /api/price-history/{asin}", h.handleHistory)
	mux.HandleFunc("GET /api/trending-products", h.handleTrending)
	mux.HandleFunc("POST /api/alerts", h.handleCreateAlert)
	mux.HandleFunc("GET /api/alerts/{email}", h.handleListAlerts)
	mux.HandleFunc("DELETE /api/alerts/{id}", h.handleDeleteAlert)
	mux.HandleFunc("GET /api/health", h.handleHealth)

	return h.logRequests(mux)
}

func (h *HTTPHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, badRequest("can't decode request body"))
		return
	}

	results, err := h.searcher.Search(r.Context(), req.Query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"query":   req.Query,
		"results": results,
		"count":   len(results),
	})
}

func (h *HTTPHandler) handleCompare(w http.ResponseWriter, r *http.Request) {
	comparison, err := h.comparer.Compare(r.Context(), r.PathValue("asin"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, comparison)
}

func (h *HTTPHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, r, badRequest("days must be a number"))
			return
		}
		days = parsed
	}

	history, err := h.history.History(r.Context(), r.PathValue("asin"), days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, history)
}

func (h *HTTPHandler) handleTrending(w http.ResponseWriter, r *http.Request) {
	limit := int64(0)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, r, badRequest("limit must be a number"))
			return
		}
		limit = parsed
	}

	trending, err := h.history.Trending(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"trending": trending,
	})
}

func (h *HTTPHandler) handleCreateAlert(w http.ResponseWriter, r *http.Request) {
	var alert models.PriceAlert
	if err := json.NewDecoder(r.Body).Decode(&alert); err != nil {
		h.writeError(w, r, badRequest("can't decode request body"))
		return
	}

	if err := h.alerts.Create(r.Context(), &alert); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]any{
		"alert": alert,
	})
}

func (h *HTTPHandler) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alerts.List(r.Context(), r.PathValue("email"), r.URL.Query().Get("active"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

func (h *HTTPHandler) handleDeleteAlert(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.writeError(w, r, badRequest("alert id must be a number"))
		return
	}

	if err := h.alerts.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HTTPHandler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		next.ServeHTTP(w, r)

		h.logger.Info().
			Str("requestId", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("can't encode response")
	}
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, platform.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, platform.ErrAlertNotFound):
		status = http.StatusNotFound
	case errors.Is(err, platform.ErrDuplicateAlert):
		status = http.StatusConflict
	case errors.Is(err, platform.ErrNoPricesAvailable):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}

	h.writeJSON(w, status, map[string]any{
		"error": err.Error(),
	})
}

func badRequest(reason string) error {
	return fmt.Errorf("%w: %s", platform.ErrValidation, reason)
}
