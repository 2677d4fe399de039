package risk

import (
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Scorer combines the five risk signals, and optionally the phishing
// estimate for the payee handle, into an explained 0-100 score.
//
// A Scorer holds no per-call state and is safe for concurrent use.
type Scorer struct {
	estimator PhishingEstimator
	config    Config
	metrics   MetricsCollector
	logger    *zap.Logger
	printer   *message.Printer
}

// NewScorer creates a Scorer. A nil estimator selects rule-only scoring;
// callers holding a typed nil must pass an untyped nil instead.
func NewScorer(estimator PhishingEstimator, config Config, metrics MetricsCollector, logger *zap.Logger) *Scorer {
	if config.CurrencySymbol == "" {
		config.CurrencySymbol = DefaultCurrencySymbol
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scorer{
		estimator: estimator,
		config:    config,
		metrics:   metrics,
		logger:    logger.With(zap.String("component", "risk_scorer")),
		printer:   message.NewPrinter(language.English),
	}
}

// MLEnabled reports whether payee risk is blended with the phishing model.
func (s *Scorer) MLEnabled() bool {
	return s.estimator != nil
}

// Score evaluates in with optional context tx. It never fails.
func (s *Scorer) Score(in Inputs, tx *Context) Result {
	start := time.Now()
	defer func() { s.metrics.RecordDuration(time.Since(start)) }()

	if tx == nil {
		tx = &Context{}
	}
	in = in.Clamp()
	in.PayeeRisk = s.blendPayeeRisk(in.PayeeRisk, tx.PayeeHandle)

	reasons := make([]string, 0, 8)

	base := in.AmountRisk*WeightAmount +
		in.PayeeRisk*WeightPayee +
		in.FrequencyRisk*WeightFrequency +
		in.TimingRisk*WeightTiming +
		in.DeviceRisk*WeightDevice

	factor, amplified := amplification(in)
	reasons = append(reasons, amplified...)

	final := clamp01(base * factor)
	reasons = append(reasons, s.explain(in, tx)...)

	score := int(math.RoundToEven(final * 100))
	label := LabelFor(score)

	if len(reasons) == 0 {
		if score < WarningThreshold {
			reasons = append(reasons, ReasonNormal)
		} else {
			reasons = append(reasons, ReasonMinorFactors)
		}
	}

	s.metrics.RecordScore(label, score)

	return Result{
		Score:     score,
		Label:     label,
		Reasons:   reasons,
		Timestamp: s.config.Now(),
	}
}

// blendPayeeRisk mixes the rule-based payee risk with the phishing
// probability. Any estimator failure leaves the rule-based value untouched.
func (s *Scorer) blendPayeeRisk(payeeRisk float64, handle *string) float64 {
	if handle == nil || *handle == "" {
		return payeeRisk
	}
	if s.estimator == nil {
		s.metrics.RecordEstimatorFallback("unavailable")
		return payeeRisk
	}

	p, err := s.estimator.Probability(*handle)
	if err != nil {
		s.logger.Warn("phishing estimate failed, using rule-based payee risk",
			zap.String("payee", *handle), zap.Error(err))
		s.metrics.RecordEstimatorFallback("error")
		return payeeRisk
	}

	blended := payeeRisk*blendRuleWeight + clamp01(p)*blendMLWeight
	s.logger.Debug("payee risk blended with phishing model",
		zap.String("payee", *handle),
		zap.Float64("rule_risk", payeeRisk),
		zap.Float64("phishing_probability", p),
		zap.Float64("payee_risk", blended))
	return blended
}

// amplification returns the compounded factor for every dangerous
// combination present in in, with one reason per matched rule.
func amplification(in Inputs) (float64, []string) {
	factor := 1.0
	var reasons []string

	if in.TimingRisk > amplifyTimingThreshold && in.AmountRisk > amplifyAmountThreshold {
		factor *= AmplifyOddHoursLargeAmount
		reasons = append(reasons, ReasonOddHoursLargeAmount)
	}
	if in.PayeeRisk > amplifyPayeeThreshold && in.AmountRisk > amplifyAmountThreshold {
		factor *= AmplifyUnverifiedLargeAmount
		reasons = append(reasons, ReasonUnverifiedLargeAmount)
	}
	if in.FrequencyRisk > amplifyFrequencyThreshold {
		factor *= AmplifyVelocity
		reasons = append(reasons, ReasonVelocity)
	}

	return factor, reasons
}

// LabelFor maps a 0-100 score onto its label.
func LabelFor(score int) Label {
	switch {
	case score >= DangerThreshold:
		return LabelDanger
	case score >= WarningThreshold:
		return LabelWarning
	default:
		return LabelSafe
	}
}
