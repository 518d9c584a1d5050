package store

// AnalyticsDocument mirrors data/processed/analytics.json as written by the
// training pipeline. The document is parsed atomically: a partial parse is a
// failed parse.
type AnalyticsDocument struct {
	MonthlySales     []MonthlySaleEntry `json:"monthly_sales"`
	CategorySales    map[string]int64   `json:"category_sales"`
	RegionSales      map[string]int64   `json:"region_sales"`
	ProfitByCategory map[string]int64   `json:"profit_by_category"`
	TopCities        map[string]int64   `json:"top_cities"`
	TotalSales       int64              `json:"total_sales"`
	TotalOrders      int64              `json:"total_orders"`
	AvgOrderValue    float64            `json:"avg_order_value"`
	TotalProfit      int64              `json:"total_profit"`
	UniqueCities     int64              `json:"unique_cities"`
}

type MonthlySaleEntry struct {
	Date  string `json:"date"`
	Sales int64  `json:"Sales"`
}

// ModelMetricsDocument mirrors data/processed/model_metrics.json.
type ModelMetricsDocument struct {
	LRMSE        float64        `json:"lr_mse"`
	LRR2         float64        `json:"lr_r2"`
	XGBMSE       float64        `json:"xgb_mse"`
	XGBR2        float64        `json:"xgb_r2"`
	BestParams   map[string]any `json:"best_params"`
	FeatureNames []string       `json:"feature_names"`
}
