package prediction

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/retail-tools/sales-atlas/pkg/adapters"
	"github.com/retail-tools/sales-atlas/pkg/models/api"
	"github.com/retail-tools/sales-atlas/pkg/models/domain"
	"github.com/retail-tools/sales-atlas/pkg/services/scoring"
	"github.com/retail-tools/sales-atlas/pkg/store/duckdb/history"
)

type Handler struct {
	scorer  scoring.Scorer
	history history.Store // optional; nil disables recording
}

func NewHandler(scorer scoring.Scorer, historyStore history.Store) *Handler {
	return &Handler{scorer: scorer, history: historyStore}
}

// Predict scores a feature vector. Completed attempts return 200 even when
// the envelope carries success=false; only absent model artifacts map to 404.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, api.PredictionResult{
			Success: false,
			Error:   "invalid request body: " + err.Error(),
		})
		return
	}

	domReq := adapters.MapApiPredictionRequestToDomain(req)
	result := h.scorer.Score(ctx, domReq)

	h.record(ctx, domReq, result)

	status := http.StatusOK
	if len(result.MissingArtifacts) > 0 {
		status = http.StatusNotFound
	}
	writeJSON(ctx, w, status, adapters.MapPredictionResultDomainToApi(result))
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.history == nil {
		writeJSON(ctx, w, http.StatusNotFound, api.Error{Error: "prediction history is not enabled"})
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid 'limit' parameter. Expected a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := h.history.GetRecent(ctx, limit)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to load prediction history")
		writeJSON(ctx, w, http.StatusInternalServerError, api.Error{Error: "Failed to load prediction history."})
		return
	}

	response := make([]api.PredictionRecord, 0, len(records))
	for _, rec := range records {
		response = append(response, adapters.MapStorePredictionRecordToApi(rec))
	}
	writeJSON(ctx, w, http.StatusOK, response)
}

func (h *Handler) record(ctx context.Context, req domain.PredictionRequest, result domain.PredictionResult) {
	if h.history == nil {
		return
	}
	rec := adapters.MapPredictionToStoreRecord(req, result)
	if err := h.history.Add(ctx, rec); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to record prediction")
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
