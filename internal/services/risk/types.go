package risk

import (
	"math"
	"time"
)

// Label is the categorical verdict derived from the score.
type Label string

const (
	LabelSafe    Label = "safe"
	LabelWarning Label = "warning"
	LabelDanger  Label = "danger"
)

// Inputs are the five normalized risk signals, each in [0, 1].
type Inputs struct {
	AmountRisk    float64
	PayeeRisk     float64
	FrequencyRisk float64
	TimingRisk    float64
	DeviceRisk    float64
}

// Clamp returns a copy with every signal forced into [0, 1]. NaN becomes 0.
func (in Inputs) Clamp() Inputs {
	return Inputs{
		AmountRisk:    clamp01(in.AmountRisk),
		PayeeRisk:     clamp01(in.PayeeRisk),
		FrequencyRisk: clamp01(in.FrequencyRisk),
		TimingRisk:    clamp01(in.TimingRisk),
		DeviceRisk:    clamp01(in.DeviceRisk),
	}
}

// Context carries optional transaction details. Nil fields are absent.
type Context struct {
	PayeeHandle *string
	AmountValue *float64
	HourOfDay   *int
}

// Result is the scored verdict. Reasons is never empty.
type Result struct {
	Score     int       `json:"risk_score"`
	Label     Label     `json:"risk_label"`
	Reasons   []string  `json:"reasons"`
	Timestamp time.Time `json:"timestamp"`
}

// Config tunes presentation details of the scorer.
type Config struct {
	CurrencySymbol string
	Now            func() time.Time
}

// MetricsCollector receives scoring telemetry.
type MetricsCollector interface {
	RecordScore(label Label, score int)
	RecordEstimatorFallback(reason string)
	RecordDuration(d time.Duration)
}

// PhishingEstimator returns the probability that a payee handle is phishing.
type PhishingEstimator interface {
	Probability(handle string) (float64, error)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
