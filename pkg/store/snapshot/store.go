package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/retail-tools/sales-atlas/pkg/adapters"
	"github.com/retail-tools/sales-atlas/pkg/models/domain"
	"github.com/retail-tools/sales-atlas/pkg/models/store"
)

// ErrUnavailable signals that a backing document is missing, empty or
// unparsable. All three fold into the same outcome because all three have the
// same remedy: re-run the training pipeline.
var ErrUnavailable = errors.New("analytics data not available")

// ReadFileFunc reads a backing document; swappable in tests to observe how
// many disk reads a sequence of loads performs.
type ReadFileFunc func(path string) ([]byte, error)

type Settings struct {
	AnalyticsPath string
	MetricsPath   string
	ReadFile      ReadFileFunc // defaults to os.ReadFile
}

// Store memoizes the two precomputed documents for the life of the process.
// Loads are idempotent re-reads of immutable files; the mutex only keeps the
// two slots race-free.
type Store struct {
	analyticsPath string
	metricsPath   string
	readFile      ReadFileFunc

	mu        sync.Mutex
	analytics *domain.AnalyticsSnapshot
	metrics   *domain.ModelMetrics
}

func NewStore(settings Settings) (*Store, error) {
	if settings.AnalyticsPath == "" {
		return nil, fmt.Errorf("analytics path is required")
	}
	if settings.MetricsPath == "" {
		return nil, fmt.Errorf("metrics path is required")
	}
	readFile := settings.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	return &Store{
		analyticsPath: settings.AnalyticsPath,
		metricsPath:   settings.MetricsPath,
		readFile:      readFile,
	}, nil
}

// LoadAnalytics returns the memoized snapshot, reading and parsing the
// backing document on first use. Returns ErrUnavailable when the document
// cannot be produced; the caller surfaces that as "run the pipeline first".
func (s *Store) LoadAnalytics(ctx context.Context) (*domain.AnalyticsSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.analytics != nil {
		return s.analytics, nil
	}

	raw, err := s.read(ctx, s.analyticsPath)
	if err != nil {
		return nil, err
	}

	var doc store.AnalyticsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("path", s.analyticsPath).Msg("failed to parse analytics document")
		return nil, ErrUnavailable
	}

	snapshot := adapters.MapStoreAnalyticsToDomain(doc)
	s.analytics = &snapshot
	return s.analytics, nil
}

// LoadModelMetrics has the same contract as LoadAnalytics with an independent
// backing document and memoization slot.
func (s *Store) LoadModelMetrics(ctx context.Context) (*domain.ModelMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.metrics != nil {
		return s.metrics, nil
	}

	raw, err := s.read(ctx, s.metricsPath)
	if err != nil {
		return nil, err
	}

	var doc store.ModelMetricsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("path", s.metricsPath).Msg("failed to parse model metrics document")
		return nil, ErrUnavailable
	}

	metrics := adapters.MapStoreModelMetricsToDomain(doc)
	s.metrics = &metrics
	return s.metrics, nil
}

// ClearCache discards both memoized documents; the next load of either
// re-reads from storage.
func (s *Store) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analytics = nil
	s.metrics = nil
}

func (s *Store) read(ctx context.Context, path string) ([]byte, error) {
	logger := zerolog.Ctx(ctx)

	raw, err := s.readFile(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to read document")
		return nil, ErrUnavailable
	}
	if len(raw) == 0 {
		logger.Error().Str("path", path).Msg("document is empty")
		return nil, ErrUnavailable
	}
	return raw, nil
}
