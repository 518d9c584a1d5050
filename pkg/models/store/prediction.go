package store

import "time"

// PredictionRecord is one row in the predictions history table.
type PredictionRecord struct {
	ID           string
	CreatedAt    time.Time
	Mode         string
	Category     int
	Region       int
	Month        int
	Discount     float64
	ProfitMargin float64
	Prediction   float64
	Success      bool
}

// PredictionStats summarizes the history table.
type PredictionStats struct {
	RecordsCount     int64
	LastPredictionAt *time.Time
}
