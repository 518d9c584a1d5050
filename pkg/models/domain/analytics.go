package domain

// MonthlySale is a single point in the monthly sales series.
type MonthlySale struct {
	Date  string
	Sales int64
}

// AnalyticsSnapshot is the precomputed analytics aggregate produced by the
// offline training pipeline. Immutable once loaded; absence of the backing
// document means the pipeline has not been run yet.
type AnalyticsSnapshot struct {
	MonthlySales     []MonthlySale
	CategorySales    map[string]int64
	RegionSales      map[string]int64
	ProfitByCategory map[string]int64
	TopCities        map[string]int64
	TotalSales       int64
	TotalOrders      int64
	AvgOrderValue    float64
	TotalProfit      int64
	UniqueCities     int64
}

// ModelMetrics describes the outcome of the offline training run: the
// baseline linear regression, the trained gradient-boosting model, the
// hyperparameters picked by the grid search and the feature order the model
// was trained with.
type ModelMetrics struct {
	BaselineMSE  float64
	BaselineR2   float64
	TrainedMSE   float64
	TrainedR2    float64
	BestParams   map[string]any
	FeatureNames []string
}
