package scoring

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/retail-tools/sales-atlas/pkg/models/domain"
)

const (
	baseSales     = 1500.0
	heuristicCap  = 50000.0
	minPrediction = 100.0
)

// Multiplier tables calibrated against the training data patterns. Lookups
// are by raw integer code; an out-of-range code falls back to a neutral 1.0,
// which keeps unknown categories from failing the request at the cost of
// masking them. That trade-off is intentional.
var (
	categoryMultipliers = []float64{1.2, 1.5, 1.1, 1.3, 1.0, 1.4, 0.9, 0.8, 0.7, 0.8, 0.6}
	regionMultipliers   = []float64{1.1, 1.3, 0.9, 1.0, 0.8}
	seasonalMultipliers = []float64{0.9, 0.95, 1.0, 1.05, 1.1, 1.15, 1.2, 1.15, 1.1, 1.05, 1.0, 1.1}
)

type HeuristicSettings struct {
	Random        rand.Source // defaults to a time-seeded source
	DisableJitter bool
}

// HeuristicScorer estimates a sale amount with a deterministic multiplicative
// formula plus ±5% uniform jitter. It is explicitly a rough simulation, hence
// the narrower upper bound than the delegated path. One instance serves all
// requests; the mutex keeps the shared generator race-free.
type HeuristicScorer struct {
	mu     sync.Mutex
	rng    *rand.Rand
	jitter bool
}

func NewHeuristicScorer(settings HeuristicSettings) *HeuristicScorer {
	src := settings.Random
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &HeuristicScorer{
		rng:    rand.New(src),
		jitter: !settings.DisableJitter,
	}
}

func (h *HeuristicScorer) Score(_ context.Context, req domain.PredictionRequest) domain.PredictionResult {
	if err := req.Validate(); err != nil {
		return failure(domain.ModeHeuristic, "invalid prediction request: %v", err)
	}

	prediction := baseSales *
		multiplierOrDefault(categoryMultipliers, req.Category) *
		multiplierOrDefault(regionMultipliers, req.Region) *
		multiplierOrDefault(seasonalMultipliers, req.Month) *
		(1 + req.Discount*2) *
		weekendMultiplier(req.IsWeekend) *
		math.Max(0.5, 1.2-req.ProfitMargin)

	if h.jitter {
		prediction *= 1 + (h.draw()-0.5)*0.1
	}

	prediction = clamp(prediction, minPrediction, heuristicCap)

	return domain.PredictionResult{
		Prediction: math.Round(prediction*100) / 100,
		Success:    true,
		Mode:       domain.ModeHeuristic,
	}
}

func (h *HeuristicScorer) draw() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rng.Float64()
}

func multiplierOrDefault(table []float64, code int) float64 {
	if code < 0 || code >= len(table) {
		return 1.0
	}
	return table[code]
}

func weekendMultiplier(isWeekend int) float64 {
	if isWeekend == 1 {
		return 1.1
	}
	return 1.0
}
