package risk

// Weights of the five risk signals. They sum to exactly 1.0.
const (
	WeightAmount    = 0.30
	WeightPayee     = 0.25
	WeightFrequency = 0.20
	WeightTiming    = 0.15
	WeightDevice    = 0.10
)

// ML blending of the rule-based payee risk with the phishing probability
const (
	blendRuleWeight = 0.4
	blendMLWeight   = 0.6
)

// Amplification factors for dangerous signal combinations
const (
	AmplifyOddHoursLargeAmount   = 1.30
	AmplifyUnverifiedLargeAmount = 1.25
	AmplifyVelocity              = 1.15
)

// Label thresholds on the 0-100 score, inclusive lower bounds.
const (
	DangerThreshold  = 60
	WarningThreshold = 30
)

// Signal thresholds
const (
	amplifyTimingThreshold    = 0.6
	amplifyAmountThreshold    = 0.5
	amplifyPayeeThreshold     = 0.6
	amplifyFrequencyThreshold = 0.7

	explainAmountThreshold    = 0.6
	explainPayeeThreshold     = 0.5
	explainTimingThreshold    = 0.6
	explainFrequencyThreshold = 0.5
	explainDeviceThreshold    = 0.5
)

// Amount context
const (
	roundAmountMinimum = 5000
	roundAmountUnit    = 1000
	highValueAmount    = 10000
)

// High-risk hours run from 23:00 to 05:59.
const (
	lateNightStartHour  = 23
	earlyMorningEndHour = 6
)

// DefaultCurrencySymbol prefixes rendered amounts.
const DefaultCurrencySymbol = "₹"

// Reason texts
const (
	ReasonOddHoursLargeAmount   = "High-risk pattern: Large transaction during unusual hours"
	ReasonUnverifiedLargeAmount = "High-risk pattern: Large payment to unverified recipient"
	ReasonVelocity              = "Suspicious velocity: Multiple rapid transactions detected"
	ReasonHighAmount            = "Unusually high transaction amount"
	ReasonSuspiciousPayee       = "Payee has suspicious or unverified history"
	ReasonUnusualHours          = "Transaction initiated at unusual hours"
	ReasonRapidFrequency        = "Rapid transaction frequency detected"
	ReasonUntrustedDevice       = "Transaction from a new or untrusted device"
	ReasonNormal                = "Transaction pattern appears normal"
	ReasonMinorFactors          = "Multiple minor risk factors detected"
)
