package api

import "time"

type PredictionRequest struct {
	Category     int     `json:"category"`
	SubCategory  int     `json:"subCategory"`
	City         int     `json:"city"`
	Region       int     `json:"region"`
	State        int     `json:"state"`
	Discount     float64 `json:"discount"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	DayOfWeek    int     `json:"dayOfWeek"`
	IsWeekend    int     `json:"isWeekend"`
	ProfitMargin float64 `json:"profitMargin"`
}

type PredictionResult struct {
	Prediction       float64   `json:"prediction,omitempty"`
	Success          bool      `json:"success"`
	ModelType        string    `json:"model_type,omitempty"`
	Features         []float64 `json:"features,omitempty"`
	Note             string    `json:"note,omitempty"`
	Error            string    `json:"error,omitempty"`
	MissingArtifacts []string  `json:"missing_artifacts,omitempty"`
	Output           string    `json:"output,omitempty"`
	Stderr           string    `json:"stderr,omitempty"`
}

type PredictionRecord struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	ModelType    string    `json:"model_type"`
	Category     int       `json:"category"`
	Region       int       `json:"region"`
	Month        int       `json:"month"`
	Discount     float64   `json:"discount"`
	ProfitMargin float64   `json:"profit_margin"`
	Prediction   float64   `json:"prediction"`
	Success      bool      `json:"success"`
}
