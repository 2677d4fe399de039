package upi

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"cypher/internal/services/risk"
)

const (
	UnknownMerchant = "Unknown Merchant"

	defaultFrequencyRisk = 0.1
	defaultDeviceRisk    = 0.0

	patternPenalty     = 0.3
	trustedDiscount    = 0.2
	shortDomainPenalty = 0.2
	weakNamePenalty    = 0.1
	minNameLength      = 3
	minDomainLength    = 3
)

var (
	suspiciousPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d+@`),
		regexp.MustCompile(`(?i)@(unknown|temp|test)`),
		regexp.MustCompile(`(?i)random|temp|fake`),
	}

	// Matched as substrings of the handle's domain.
	trustedHandleDomains = []string{
		"paytm", "phonepe", "googlepay", "amazonpay", "ybl",
		"okaxis", "oksbi", "okhdfcbank", "okicici",
	}
)

// DeriveSignals estimates the five risk signals for a scanned payment link
// made at hour, and returns the context the scorer uses for explanations.
// Frequency and device cannot be observed from a QR code and get fixed priors.
func DeriveSignals(p Params, hour int) (risk.Inputs, risk.Context) {
	in := risk.Inputs{
		PayeeRisk:     PayeeRisk(p.PayeeAddress, p.PayeeName),
		FrequencyRisk: defaultFrequencyRisk,
		TimingRisk:    TimingRisk(hour),
		DeviceRisk:    defaultDeviceRisk,
	}

	handle := p.PayeeAddress
	tx := risk.Context{PayeeHandle: &handle, HourOfDay: &hour}

	amount, ok := p.AmountValue()
	in.AmountRisk = AmountRisk(amount)
	if ok {
		tx.AmountValue = &amount
	}
	return in, tx
}

// AmountRisk buckets a rupee amount.
func AmountRisk(amount float64) float64 {
	switch {
	case amount > 10000:
		return 0.8
	case amount > 5000:
		return 0.5
	case amount > 1000:
		return 0.3
	default:
		return 0.1
	}
}

// PayeeRisk scores a handle and payee name by surface patterns alone.
func PayeeRisk(handle, payeeName string) float64 {
	score := 0.0
	for _, re := range suspiciousPatterns {
		if re.MatchString(handle) {
			score += patternPenalty
		}
	}

	domain := ""
	if parts := strings.Split(handle, "@"); len(parts) > 1 {
		domain = strings.ToLower(parts[1])
	}

	if isTrustedHandleDomain(domain) {
		score = max(0, score-trustedDiscount)
	} else if utf8.RuneCountInString(domain) < minDomainLength {
		score += shortDomainPenalty
	}

	if payeeName == "" || payeeName == UnknownMerchant || utf8.RuneCountInString(payeeName) < minNameLength {
		score += weakNamePenalty
	}

	return min(1, max(0, score))
}

// TimingRisk is high overnight (23:00-06:00), moderate around it and low
// during the day.
func TimingRisk(hour int) float64 {
	switch {
	case hour >= 23 || hour < 6:
		return 0.7
	case hour < 8 || hour >= 21:
		return 0.4
	default:
		return 0.1
	}
}

func isTrustedHandleDomain(domain string) bool {
	if domain == "" {
		return false
	}
	for _, trusted := range trustedHandleDomains {
		if strings.Contains(domain, trusted) {
			return true
		}
	}
	return false
}
