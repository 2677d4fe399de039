package phishing

// DefaultModelPath is where the training pipeline exports the classifier.
const DefaultModelPath = "ml/models/upi_classifier.json"

// PhishingThreshold is the probability at which a handle is labelled phishing.
const PhishingThreshold = 0.5

// Confidence levels reported with a prediction
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

const (
	leafNode         = -1
	positiveClass    = 1
	defaultBatchSize = 8
)
