package adapters

import (
	"time"

	"github.com/google/uuid"

	"github.com/retail-tools/sales-atlas/pkg/models/api"
	"github.com/retail-tools/sales-atlas/pkg/models/domain"
	"github.com/retail-tools/sales-atlas/pkg/models/store"
)

const heuristicNote = "Simulated prediction; the trained model is not available in this deployment."

func MapApiPredictionRequestToDomain(req api.PredictionRequest) domain.PredictionRequest {
	return domain.PredictionRequest{
		Category:     req.Category,
		SubCategory:  req.SubCategory,
		City:         req.City,
		Region:       req.Region,
		State:        req.State,
		Discount:     req.Discount,
		Month:        req.Month,
		Year:         req.Year,
		DayOfWeek:    req.DayOfWeek,
		IsWeekend:    req.IsWeekend,
		ProfitMargin: req.ProfitMargin,
	}
}

func MapPredictionResultDomainToApi(res domain.PredictionResult) api.PredictionResult {
	out := api.PredictionResult{
		Prediction:       res.Prediction,
		Success:          res.Success,
		ModelType:        string(res.Mode),
		Features:         append([]float64(nil), res.Features...),
		Error:            res.Error,
		MissingArtifacts: append([]string(nil), res.MissingArtifacts...),
		Output:           res.RawOutput,
		Stderr:           res.RawStderr,
	}
	if res.Success && res.Mode == domain.ModeHeuristic {
		out.Note = heuristicNote
	}
	return out
}

func MapPredictionToStoreRecord(req domain.PredictionRequest, res domain.PredictionResult) store.PredictionRecord {
	return store.PredictionRecord{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Mode:         string(res.Mode),
		Category:     req.Category,
		Region:       req.Region,
		Month:        req.Month,
		Discount:     req.Discount,
		ProfitMargin: req.ProfitMargin,
		Prediction:   res.Prediction,
		Success:      res.Success,
	}
}

func MapStorePredictionRecordToApi(rec store.PredictionRecord) api.PredictionRecord {
	return api.PredictionRecord{
		ID:           rec.ID,
		CreatedAt:    rec.CreatedAt,
		ModelType:    rec.Mode,
		Category:     rec.Category,
		Region:       rec.Region,
		Month:        rec.Month,
		Discount:     rec.Discount,
		ProfitMargin: rec.ProfitMargin,
		Prediction:   rec.Prediction,
		Success:      rec.Success,
	}
}
