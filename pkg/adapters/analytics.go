package adapters

import (
	"golang.org/x/exp/maps"

	"github.com/retail-tools/sales-atlas/pkg/models/api"
	"github.com/retail-tools/sales-atlas/pkg/models/domain"
	"github.com/retail-tools/sales-atlas/pkg/models/store"
)

func MapStoreAnalyticsToDomain(doc store.AnalyticsDocument) domain.AnalyticsSnapshot {
	monthly := make([]domain.MonthlySale, 0, len(doc.MonthlySales))
	for _, m := range doc.MonthlySales {
		monthly = append(monthly, domain.MonthlySale{Date: m.Date, Sales: m.Sales})
	}
	return domain.AnalyticsSnapshot{
		MonthlySales:     monthly,
		CategorySales:    maps.Clone(doc.CategorySales),
		RegionSales:      maps.Clone(doc.RegionSales),
		ProfitByCategory: maps.Clone(doc.ProfitByCategory),
		TopCities:        maps.Clone(doc.TopCities),
		TotalSales:       doc.TotalSales,
		TotalOrders:      doc.TotalOrders,
		AvgOrderValue:    doc.AvgOrderValue,
		TotalProfit:      doc.TotalProfit,
		UniqueCities:     doc.UniqueCities,
	}
}

func MapAnalyticsDomainToApi(s domain.AnalyticsSnapshot) api.AnalyticsSnapshot {
	monthly := make([]api.MonthlySale, 0, len(s.MonthlySales))
	for _, m := range s.MonthlySales {
		monthly = append(monthly, api.MonthlySale{Date: m.Date, Sales: m.Sales})
	}
	return api.AnalyticsSnapshot{
		MonthlySales:     monthly,
		CategorySales:    maps.Clone(s.CategorySales),
		RegionSales:      maps.Clone(s.RegionSales),
		ProfitByCategory: maps.Clone(s.ProfitByCategory),
		TopCities:        maps.Clone(s.TopCities),
		TotalSales:       s.TotalSales,
		TotalOrders:      s.TotalOrders,
		AvgOrderValue:    s.AvgOrderValue,
		TotalProfit:      s.TotalProfit,
		UniqueCities:     s.UniqueCities,
	}
}

func MapStoreModelMetricsToDomain(doc store.ModelMetricsDocument) domain.ModelMetrics {
	return domain.ModelMetrics{
		BaselineMSE:  doc.LRMSE,
		BaselineR2:   doc.LRR2,
		TrainedMSE:   doc.XGBMSE,
		TrainedR2:    doc.XGBR2,
		BestParams:   maps.Clone(doc.BestParams),
		FeatureNames: append([]string(nil), doc.FeatureNames...),
	}
}

func MapModelMetricsDomainToApi(m domain.ModelMetrics) api.ModelMetrics {
	return api.ModelMetrics{
		LRMSE:        m.BaselineMSE,
		LRR2:         m.BaselineR2,
		XGBMSE:       m.TrainedMSE,
		XGBR2:        m.TrainedR2,
		BestParams:   maps.Clone(m.BestParams),
		FeatureNames: append([]string(nil), m.FeatureNames...),
	}
}
