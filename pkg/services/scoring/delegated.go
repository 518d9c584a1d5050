package scoring

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/retail-tools/sales-atlas/pkg/models/domain"
)

const (
	delegatedCap        = 100000.0
	defaultScoreTimeout = 30 * time.Second
)

// scoringRequest is staged as a JSON file for the executor. The features
// slice follows the positional layout from ArtifactSource.FeatureOrder.
type scoringRequest struct {
	Features     []float64         `json:"features"`
	FeatureOrder []string          `json:"feature_order"`
	Artifacts    map[string]string `json:"artifacts"`
}

// executorMessage is one NDJSON line on the executor's stdout. Only the
// "result" and "error" types are terminal; anything else is diagnostic noise
// and skipped.
type executorMessage struct {
	Type       string    `json:"type"`
	Prediction float64   `json:"prediction"`
	Success    bool      `json:"success"`
	Model      string    `json:"model"`
	Features   []float64 `json:"features"`
	Error      string    `json:"error"`
	Trace      string    `json:"trace"`
}

// DelegatedScorer stages a scoring request and hands it to the external model
// executor. It fails fast when the trained artifacts are absent and never
// falls back to the heuristic on executor failure.
type DelegatedScorer struct {
	artifacts ArtifactSource
	executor  Executor
	timeout   time.Duration
	tempDir   string
}

func NewDelegatedScorer(settings Settings) (*DelegatedScorer, error) {
	if settings.Artifacts == nil {
		return nil, fmt.Errorf("artifact source is required")
	}
	if settings.Executor == nil {
		return nil, fmt.Errorf("executor is required")
	}
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = defaultScoreTimeout
	}
	tempDir := settings.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &DelegatedScorer{
		artifacts: settings.Artifacts,
		executor:  settings.Executor,
		timeout:   timeout,
		tempDir:   tempDir,
	}, nil
}

func (d *DelegatedScorer) Score(ctx context.Context, req domain.PredictionRequest) domain.PredictionResult {
	logger := zerolog.Ctx(ctx)

	if missing := d.artifacts.Missing(); len(missing) > 0 {
		return domain.PredictionResult{
			Success:          false,
			Mode:             domain.ModeTrainedModel,
			MissingArtifacts: missing,
			Error: fmt.Sprintf("model artifacts missing: %s. Please run the training script first.",
				strings.Join(missing, ", ")),
		}
	}

	if err := req.Validate(); err != nil {
		return failure(domain.ModeTrainedModel, "invalid prediction request: %v", err)
	}

	features, err := featureVector(req, d.artifacts.FeatureOrder())
	if err != nil {
		return failure(domain.ModeTrainedModel, "failed to build feature vector: %v", err)
	}

	requestPath, cleanup, err := d.stageRequest(features)
	if err != nil {
		return failure(domain.ModeTrainedModel, "failed to stage scoring request: %v", err)
	}
	defer cleanup()

	execCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	stdout, stderr, execErr := d.executor.Execute(execCtx, requestPath)
	if execErr != nil {
		logger.Warn().Err(execErr).Msg("scoring executor exited with error; scanning output for a terminal message")
	}

	// A crashing executor may still have written its terminal message, so the
	// output is scanned regardless of the exit status.
	if msg, ok := terminalMessage(stdout); ok {
		if msg.Type == "error" {
			logger.Error().Str("trace", msg.Trace).Msg("scoring executor reported an error")
			return failure(domain.ModeTrainedModel, "scoring failed: %s", msg.Error)
		}
		return domain.PredictionResult{
			Prediction: clamp(msg.Prediction, minPrediction, delegatedCap),
			Success:    true,
			Mode:       domain.ModeTrainedModel,
			ModelName:  msg.Model,
			Features:   msg.Features,
		}
	}

	detail := "scoring executor produced no terminal message"
	if execErr != nil {
		detail = fmt.Sprintf("%s: %v", detail, execErr)
	}
	return domain.PredictionResult{
		Success:   false,
		Mode:      domain.ModeTrainedModel,
		Error:     detail,
		RawOutput: stdout,
		RawStderr: stderr,
	}
}

func (d *DelegatedScorer) stageRequest(features []float64) (string, func(), error) {
	model, scaler, encoders := d.artifacts.ModelPaths()
	request := scoringRequest{
		Features:     features,
		FeatureOrder: d.artifacts.FeatureOrder(),
		Artifacts: map[string]string{
			"model":    model,
			"scaler":   scaler,
			"encoders": encoders,
		},
	}

	f, err := os.CreateTemp(d.tempDir, "score-request-*.json")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.Remove(f.Name()) }

	if err := json.NewEncoder(f).Encode(request); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return f.Name(), cleanup, nil
}

// featureVector orders the request fields into the positional layout the
// trained model expects. The profit feature is an estimate: the request
// carries a margin fraction while the model was trained on absolute profit,
// so the margin is projected onto the base ticket size.
func featureVector(req domain.PredictionRequest, order []string) ([]float64, error) {
	values := map[string]float64{
		"category": float64(req.Category),
		"city":     float64(req.City),
		"region":   float64(req.Region),
		"profit":   req.ProfitMargin * baseSales,
		"discount": req.Discount,
	}

	features := make([]float64, 0, len(order))
	for _, name := range order {
		v, ok := values[name]
		if !ok {
			return nil, fmt.Errorf("unknown feature %q in feature order", name)
		}
		features = append(features, v)
	}
	return features, nil
}

// terminalMessage scans NDJSON output for the first result or error message.
// Unparsable lines and unknown message types are ignored.
func terminalMessage(output string) (executorMessage, bool) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var msg executorMessage
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			continue
		}
		if msg.Type == "result" || msg.Type == "error" {
			return msg, true
		}
	}
	return executorMessage{}, false
}
