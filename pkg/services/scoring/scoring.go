// Package scoring produces bounded sales-amount estimates from a feature
// vector. Two interchangeable strategies exist: delegating to the external
// model executor (full deployments) and a deterministic heuristic (restricted
// deployments where the scoring runtime cannot be hosted). The strategy is
// picked once at construction; a failing delegated call is never silently
// downgraded to the heuristic.
package scoring

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/retail-tools/sales-atlas/pkg/models/domain"
)

const (
	ModeFull       = "full"
	ModeRestricted = "restricted"
)

// Scorer is the single contract both strategies implement. Every failure kind
// is folded into the result envelope (Success=false) so callers stay
// strategy-agnostic.
type Scorer interface {
	Score(ctx context.Context, req domain.PredictionRequest) domain.PredictionResult
}

// ArtifactSource locates the trained-model artifacts and the positional
// feature layout the model was trained with.
type ArtifactSource interface {
	// Missing returns the names of required artifacts absent from storage.
	Missing() []string
	// ModelPaths returns the locations of the model, scaler and encoders.
	ModelPaths() (model, scaler, encoders string)
	// FeatureOrder returns the positional feature layout. Order is
	// load-bearing: it must match what the training job used.
	FeatureOrder() []string
}

type Settings struct {
	Mode      string
	Artifacts ArtifactSource
	Executor  Executor
	Timeout   time.Duration
	TempDir   string

	// Heuristic knobs, used by tests and the restricted mode.
	Random        rand.Source
	DisableJitter bool
}

// NewScorer builds the strategy selected by the deployment mode.
func NewScorer(settings Settings) (Scorer, error) {
	switch settings.Mode {
	case ModeFull:
		return NewDelegatedScorer(settings)
	case ModeRestricted:
		return NewHeuristicScorer(HeuristicSettings{
			Random:        settings.Random,
			DisableJitter: settings.DisableJitter,
		}), nil
	default:
		return nil, fmt.Errorf("unknown scoring mode %q", settings.Mode)
	}
}

func failure(mode domain.ScorerMode, format string, args ...any) domain.PredictionResult {
	return domain.PredictionResult{
		Success: false,
		Mode:    mode,
		Error:   fmt.Sprintf(format, args...),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
