// Package features turns a payment handle ("username@domain") into the
// fixed-order numeric vector consumed by the phishing classifier.
//
// Extraction is pure: it holds no state, never fails and may be called from
// any number of goroutines.
package features

import (
	"strings"
	"unicode"
)

// Count is the number of features in a FeatureVector.
const Count = 11

// FeatureVector holds the handle-derived features in training order.
type FeatureVector struct {
	UsernameLength     float64 `json:"username_length"`
	DomainLength       float64 `json:"domain_length"`
	TotalLength        float64 `json:"total_length"`
	DigitRatio         float64 `json:"digit_ratio"`
	SpecialCharRatio   float64 `json:"special_char_ratio"`
	Entropy            float64 `json:"entropy"`
	HasTrustedDomain   float64 `json:"has_trusted_domain"`
	HasPhishingKeyword float64 `json:"has_phishing_keyword"`
	StartsWithDigits   float64 `json:"starts_with_digits"`
	MinBrandDistance   float64 `json:"min_brand_distance"`
	DomainReputation   float64 `json:"domain_reputation"`
}

var featureNames = [Count]string{
	"username_length",
	"domain_length",
	"total_length",
	"digit_ratio",
	"special_char_ratio",
	"entropy",
	"has_trusted_domain",
	"has_phishing_keyword",
	"starts_with_digits",
	"min_brand_distance",
	"domain_reputation",
}

// Names returns the feature column names in the order used by Values.
func Names() [Count]string {
	return featureNames
}

// Values returns the features in the order the classifier was trained on.
func (v FeatureVector) Values() [Count]float64 {
	return [Count]float64{
		v.UsernameLength,
		v.DomainLength,
		v.TotalLength,
		v.DigitRatio,
		v.SpecialCharRatio,
		v.Entropy,
		v.HasTrustedDomain,
		v.HasPhishingKeyword,
		v.StartsWithDigits,
		v.MinBrandDistance,
		v.DomainReputation,
	}
}

// Degenerate is the vector returned for handles without a separator.
func Degenerate() FeatureVector {
	return FeatureVector{
		MinBrandDistance: DegenerateBrandDistance,
		DomainReputation: ReputationUntrusted,
	}
}

// Extract computes the feature vector for handle. A handle without "@" yields
// Degenerate().
func Extract(handle string) FeatureVector {
	username, domain, ok := strings.Cut(handle, "@")
	if !ok {
		return Degenerate()
	}

	usernameLower := strings.ToLower(username)
	domainLower := strings.ToLower(domain)

	userRunes := []rune(username)
	userLen := len(userRunes)
	domainLen := len([]rune(domain))

	var digits, specials int
	for _, r := range userRunes {
		if unicode.IsDigit(r) {
			digits++
		}
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			specials++
		}
	}

	v := FeatureVector{
		UsernameLength:   float64(userLen),
		DomainLength:     float64(domainLen),
		TotalLength:      float64(len([]rune(handle))),
		Entropy:          Entropy(username),
		MinBrandDistance: float64(minBrandDistance(usernameLower, LegitimateBrands)),
	}
	if userLen > 0 {
		v.DigitRatio = float64(digits) / float64(userLen)
		v.SpecialCharRatio = float64(specials) / float64(userLen)
		if unicode.IsDigit(userRunes[0]) {
			v.StartsWithDigits = 1
		}
	}

	trusted := IsTrustedDomain(domainLower)
	if trusted {
		v.HasTrustedDomain = 1
	}
	if containsAny(usernameLower, PhishingKeywords) {
		v.HasPhishingKeyword = 1
	}
	v.DomainReputation = domainReputation(domainLower, domainLen, trusted)

	return v
}

// ExtractBatch extracts features for every handle, preserving order.
func ExtractBatch(handles []string) []FeatureVector {
	out := make([]FeatureVector, len(handles))
	for i, h := range handles {
		out[i] = Extract(h)
	}
	return out
}

// IsTrustedDomain reports whether domain contains a trusted provider name.
// Matching is case-insensitive.
func IsTrustedDomain(domain string) bool {
	return containsAny(strings.ToLower(domain), TrustedDomains)
}

func domainReputation(domainLower string, domainLen int, trusted bool) float64 {
	if trusted {
		return ReputationTrusted
	}
	if _, placeholder := placeholderDomains[domainLower]; placeholder || domainLen < minDomainLength {
		return ReputationUntrusted
	}
	return ReputationNeutral
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
