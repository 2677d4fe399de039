package validation

import (
	"strings"

	"cypher/internal/models"
)

const (
	maxHandleLength   = 255
	maxLanguageLength = 40
	maxNameLength     = 120

	// MaxAmountValue bounds amount_value to what a single UPI payment
	// could plausibly carry.
	MaxAmountValue = 1e12
)

// ValidateAnalyzeRequest checks the inbound transaction contract. Risk
// values outside 0-1 are accepted here and clamped by the scorer.
func ValidateAnalyzeRequest(req *models.AnalyzeRequest) error {
	v := New()

	if req == nil {
		v.AddError("body", "request body is required")
		return v.Err()
	}

	signals := []struct {
		field string
		value *float64
	}{
		{"amount_risk", req.AmountRisk},
		{"payee_risk", req.PayeeRisk},
		{"frequency_risk", req.FrequencyRisk},
		{"timing_risk", req.TimingRisk},
		{"device_risk", req.DeviceRisk},
	}
	for _, s := range signals {
		if s.value == nil {
			v.AddError(s.field, "is required")
			continue
		}
		v.Check(Finite(*s.value), s.field, "must be a finite number")
	}

	if req.PayeeID != nil {
		v.Check(strings.Contains(*req.PayeeID, "@"), "payee_id", "must be a UPI ID containing @")
		v.Check(len(*req.PayeeID) <= maxHandleLength, "payee_id", "is too long")
	}
	if req.AmountValue != nil {
		v.Check(Finite(*req.AmountValue), "amount_value", "must be a finite number")
		v.Check(*req.AmountValue >= 0, "amount_value", "must not be negative")
		v.Check(*req.AmountValue <= MaxAmountValue, "amount_value", "is too large")
	}
	if req.HourOfDay != nil {
		v.Check(*req.HourOfDay >= 0 && *req.HourOfDay <= 23, "hour_of_day", "must be between 0 and 23")
	}

	return v.Err()
}

// ValidateHour checks an optional hour of day.
func ValidateHour(hour *int) error {
	v := New()
	if hour != nil {
		v.Check(*hour >= 0 && *hour <= 23, "hour_of_day", "must be between 0 and 23")
	}
	return v.Err()
}

// ValidateUserInfo checks a partial profile update.
func ValidateUserInfo(in *models.UpdateUserInfoInput) error {
	v := New()
	if in.Name != nil && *in.Name != "" {
		v.Check(len(*in.Name) <= maxNameLength, "name", "is too long")
	}
	if in.Email != nil && *in.Email != "" {
		v.Check(Email(*in.Email), "email", "must be a valid email address")
	}
	return v.Err()
}

// ValidatePreferences checks a partial preferences update.
func ValidatePreferences(in *models.UpdatePreferencesInput) error {
	v := New()
	if in.Language != nil {
		v.Check(strings.TrimSpace(*in.Language) != "", "language", "must not be empty")
		v.Check(len(*in.Language) <= maxLanguageLength, "language", "is too long")
	}
	return v.Err()
}
