package domain

import "fmt"

// ScorerMode identifies which estimator produced a prediction.
type ScorerMode string

const (
	ModeTrainedModel ScorerMode = "trained-model"
	ModeHeuristic    ScorerMode = "heuristic-simulation"
)

// PredictionRequest is the feature vector describing a hypothetical sale.
// Categorical fields carry the integer codes assigned by the training
// pipeline's label encoders.
type PredictionRequest struct {
	Category     int
	SubCategory  int
	City         int
	Region       int
	State        int
	Discount     float64 // fraction, 0.0-0.5
	Month        int     // calendar month, 1-12
	Year         int
	DayOfWeek    int // 0-6
	IsWeekend    int // 0/1
	ProfitMargin float64 // fraction, 0.05-0.5
}

// Validate checks the numeric ranges the upstream input widgets guarantee.
// Categorical codes are deliberately not bounded: an unknown code falls back
// to a neutral multiplier in the heuristic and is the model's problem in
// delegated mode.
func (r PredictionRequest) Validate() error {
	if r.Discount < 0 || r.Discount > 0.5 {
		return fmt.Errorf("discount %.2f out of range [0, 0.5]", r.Discount)
	}
	if r.Month < 1 || r.Month > 12 {
		return fmt.Errorf("month %d out of range [1, 12]", r.Month)
	}
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return fmt.Errorf("dayOfWeek %d out of range [0, 6]", r.DayOfWeek)
	}
	if r.IsWeekend != 0 && r.IsWeekend != 1 {
		return fmt.Errorf("isWeekend must be 0 or 1, got %d", r.IsWeekend)
	}
	if r.ProfitMargin < 0.05 || r.ProfitMargin > 0.5 {
		return fmt.Errorf("profitMargin %.2f out of range [0.05, 0.5]", r.ProfitMargin)
	}
	return nil
}

// PredictionResult is the uniform envelope both scoring strategies return.
// Business failures are carried in the envelope (Success=false) rather than
// as errors so callers stay strategy-agnostic.
type PredictionResult struct {
	Prediction float64
	Success    bool
	Mode       ScorerMode
	ModelName  string
	Features   []float64

	// Failure diagnostics.
	Error            string
	MissingArtifacts []string
	RawOutput        string
	RawStderr        string
}
