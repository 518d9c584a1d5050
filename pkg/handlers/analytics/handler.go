package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/retail-tools/sales-atlas/pkg/adapters"
	"github.com/retail-tools/sales-atlas/pkg/models/api"
	"github.com/retail-tools/sales-atlas/pkg/services/analytics"
	"github.com/retail-tools/sales-atlas/pkg/store/snapshot"
)

const (
	analyticsUnavailableMsg = "Analytics data not available. Please run the training script first."
	metricsUnavailableMsg   = "Model metrics not available. Please run the training script first."
)

type Handler struct {
	explorer analytics.Explorer
}

func NewHandler(explorer analytics.Explorer) *Handler {
	return &Handler{explorer: explorer}
}

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := h.explorer.GetSnapshot(ctx)
	if err != nil {
		if errors.Is(err, snapshot.ErrUnavailable) {
			writeJSON(ctx, w, http.StatusNotFound, api.Error{Error: analyticsUnavailableMsg})
			return
		}
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to load analytics")
		writeJSON(ctx, w, http.StatusInternalServerError, api.Error{Error: "Failed to load analytics data."})
		return
	}

	writeJSON(ctx, w, http.StatusOK, adapters.MapAnalyticsDomainToApi(*data))
}

func (h *Handler) GetModelMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	metrics, err := h.explorer.GetModelMetrics(ctx)
	if err != nil {
		if errors.Is(err, snapshot.ErrUnavailable) {
			writeJSON(ctx, w, http.StatusNotFound, api.Error{Error: metricsUnavailableMsg})
			return
		}
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to load model metrics")
		writeJSON(ctx, w, http.StatusInternalServerError, api.Error{Error: "Failed to load model metrics."})
		return
	}

	writeJSON(ctx, w, http.StatusOK, adapters.MapModelMetricsDomainToApi(*metrics))
}

func (h *Handler) RefreshCache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.explorer.Refresh(ctx)
	writeJSON(ctx, w, http.StatusOK, api.Status{Status: "cache cleared"})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
