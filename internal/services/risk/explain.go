package risk

import (
	"fmt"
	"math"
	"strings"

	"cypher/internal/features"

	"github.com/shopspring/decimal"
)

var (
	roundAmountMin  = decimal.NewFromInt(roundAmountMinimum)
	roundAmountStep = decimal.NewFromInt(roundAmountUnit)
	highValueMin    = decimal.NewFromInt(highValueAmount)
	maxIntAmount    = decimal.NewFromInt(math.MaxInt64)
)

// explain returns one context-aware reason per signal above its threshold.
func (s *Scorer) explain(in Inputs, tx *Context) []string {
	var reasons []string

	if in.AmountRisk > explainAmountThreshold {
		reasons = append(reasons, s.amountReason(tx.AmountValue))
	}
	if in.PayeeRisk > explainPayeeThreshold {
		reasons = append(reasons, payeeReason(tx.PayeeHandle))
	}
	if in.TimingRisk > explainTimingThreshold {
		reasons = append(reasons, timingReason(tx.HourOfDay))
	}
	if in.FrequencyRisk > explainFrequencyThreshold {
		reasons = append(reasons, ReasonRapidFrequency)
	}
	if in.DeviceRisk > explainDeviceThreshold {
		reasons = append(reasons, ReasonUntrustedDevice)
	}

	return reasons
}

func (s *Scorer) amountReason(value *float64) string {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return ReasonHighAmount
	}

	amount := decimal.NewFromFloat(*value)
	rendered := s.formatAmount(amount)

	switch {
	case amount.GreaterThanOrEqual(roundAmountMin) && amount.Mod(roundAmountStep).IsZero():
		return fmt.Sprintf("%s is a round amount (common in scams)", rendered)
	case amount.GreaterThan(highValueMin):
		return fmt.Sprintf("High-value transaction: %s", rendered)
	default:
		return fmt.Sprintf("Transaction amount: %s flagged as unusual", rendered)
	}
}

// formatAmount renders amount with thousands separators and no decimals,
// rounding half to even.
func (s *Scorer) formatAmount(amount decimal.Decimal) string {
	rounded := amount.RoundBank(0)
	if rounded.Abs().GreaterThan(maxIntAmount) {
		return s.config.CurrencySymbol + groupThousands(rounded.String())
	}
	return s.printer.Sprintf("%s%d", s.config.CurrencySymbol, rounded.IntPart())
}

// groupThousands inserts commas into an integer literal such as "-1234567".
func groupThousands(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}

func payeeReason(handle *string) string {
	if handle == nil || !strings.Contains(*handle, "@") {
		return ReasonSuspiciousPayee
	}

	domain := strings.Split(*handle, "@")[1]
	if !features.IsTrustedDomain(domain) {
		return fmt.Sprintf("Unverified payment provider: @%s", domain)
	}
	return fmt.Sprintf("First-time transaction to %s", *handle)
}

func timingReason(hour *int) string {
	if hour == nil {
		return ReasonUnusualHours
	}
	if *hour >= lateNightStartHour || *hour < earlyMorningEndHour {
		return fmt.Sprintf("Transaction at %02d:00 (high-risk hours: 11 PM - 6 AM)", *hour)
	}
	return fmt.Sprintf("Transaction at unusual time: %02d:00", *hour)
}
