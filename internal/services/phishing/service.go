package phishing

import (
	"context"
	"fmt"
	"math"
	"os"

	"cypher/internal/features"

	"golang.org/x/sync/errgroup"
)

// Estimator maps payment handles to phishing probabilities.
type Estimator struct {
	forest *Forest
	path   string
}

// Load reads the classifier artifact at path. Any failure wraps
// ErrModelUnavailable.
func Load(path string) (*Estimator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	forest, err := ParseForest(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrModelUnavailable, path, err)
	}
	return &Estimator{forest: forest, path: path}, nil
}

// NewEstimator wraps an already parsed forest.
func NewEstimator(forest *Forest) *Estimator {
	return &Estimator{forest: forest}
}

// Version reports the artifact version string.
func (e *Estimator) Version() string {
	return e.forest.Version
}

// Path reports where the artifact was loaded from, if anywhere.
func (e *Estimator) Path() string {
	return e.path
}

// Probability returns P(phishing) for handle.
func (e *Estimator) Probability(handle string) (float64, error) {
	x := features.Extract(handle).Values()
	return e.forest.PredictProba(x[:])
}

// Predict returns the labelled prediction for handle.
func (e *Estimator) Predict(handle string) (Prediction, error) {
	p, err := e.Probability(handle)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{
		Handle:      handle,
		IsPhishing:  p >= PhishingThreshold,
		Probability: math.Round(p*1e4) / 1e4,
		Confidence:  confidence(p),
	}, nil
}

// PredictBatch predicts every handle concurrently, preserving input order.
func (e *Estimator) PredictBatch(ctx context.Context, handles []string) ([]Prediction, error) {
	out := make([]Prediction, len(handles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultBatchSize)
	for i, h := range handles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := e.Predict(h)
			if err != nil {
				return fmt.Errorf("predict %q: %w", h, err)
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func confidence(p float64) string {
	switch {
	case p >= 0.8 || p <= 0.2:
		return ConfidenceHigh
	case p >= 0.6 || p <= 0.4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
