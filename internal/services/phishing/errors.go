package phishing

import "errors"

var (
	// ErrModelUnavailable means the classifier artifact could not be loaded.
	// Callers treat it as "estimator unavailable" and fall back to rules.
	ErrModelUnavailable = errors.New("phishing model unavailable")
	ErrInvalidModel     = errors.New("invalid phishing model")
	ErrFeatureMismatch  = errors.New("feature vector length mismatch")
)
