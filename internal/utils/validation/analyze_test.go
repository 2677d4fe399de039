package validation

import (
	"errors"
	"math"
	"testing"

	"cypher/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }
func s(v string) *string   { return &v }

func validRequest() *models.AnalyzeRequest {
	return &models.AnalyzeRequest{
		AmountRisk:    f(0.2),
		PayeeRisk:     f(0.1),
		FrequencyRisk: f(0.1),
		TimingRisk:    f(0.1),
		DeviceRisk:    f(0.0),
	}
}

func fields(t *testing.T, err error) []string {
	t.Helper()
	var verrs Errors
	require.True(t, errors.As(err, &verrs))
	out := make([]string, len(verrs))
	for i, e := range verrs {
		out[i] = e.Field
	}
	return out
}

func TestValidateAnalyzeRequest_Valid(t *testing.T) {
	assert.NoError(t, ValidateAnalyzeRequest(validRequest()))

	req := validRequest()
	req.PayeeID = s("merchant@paytm")
	req.AmountValue = f(0)
	req.HourOfDay = i(23)
	req.AmountRisk = f(1.7) // clamped later, not rejected
	assert.NoError(t, ValidateAnalyzeRequest(req))

	req.AmountValue = f(MaxAmountValue)
	assert.NoError(t, ValidateAnalyzeRequest(req))
}

func TestValidateAnalyzeRequest_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.AnalyzeRequest)
		want   []string
	}{
		{"missing signal", func(r *models.AnalyzeRequest) { r.PayeeRisk = nil }, []string{"payee_risk"}},
		{"NaN signal", func(r *models.AnalyzeRequest) { r.TimingRisk = f(math.NaN()) }, []string{"timing_risk"}},
		{"infinite signal", func(r *models.AnalyzeRequest) { r.DeviceRisk = f(math.Inf(1)) }, []string{"device_risk"}},
		{"handle without at", func(r *models.AnalyzeRequest) { r.PayeeID = s("merchant") }, []string{"payee_id"}},
		{"hour too large", func(r *models.AnalyzeRequest) { r.HourOfDay = i(24) }, []string{"hour_of_day"}},
		{"negative hour", func(r *models.AnalyzeRequest) { r.HourOfDay = i(-1) }, []string{"hour_of_day"}},
		{"negative amount", func(r *models.AnalyzeRequest) { r.AmountValue = f(-5) }, []string{"amount_value"}},
		{"amount too large", func(r *models.AnalyzeRequest) { r.AmountValue = f(MaxAmountValue * 10) }, []string{"amount_value"}},
		{"several", func(r *models.AnalyzeRequest) {
			r.AmountRisk = nil
			r.FrequencyRisk = nil
		}, []string{"amount_risk", "frequency_risk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)

			err := ValidateAnalyzeRequest(req)
			require.Error(t, err)
			assert.Equal(t, tt.want, fields(t, err))
		})
	}
}

func TestValidateAnalyzeRequest_Nil(t *testing.T) {
	assert.Equal(t, []string{"body"}, fields(t, ValidateAnalyzeRequest(nil)))
}

func TestValidateHour(t *testing.T) {
	assert.NoError(t, ValidateHour(nil))
	assert.NoError(t, ValidateHour(i(0)))
	assert.Error(t, ValidateHour(i(25)))
}

func TestValidateUserInfo(t *testing.T) {
	assert.NoError(t, ValidateUserInfo(&models.UpdateUserInfoInput{Name: s("Asha"), Email: s("asha@example.com")}))
	assert.NoError(t, ValidateUserInfo(&models.UpdateUserInfoInput{Email: s("")}))
	assert.Equal(t, []string{"email"}, fields(t, ValidateUserInfo(&models.UpdateUserInfoInput{Email: s("not-an-email")})))
}

func TestValidatePreferences(t *testing.T) {
	assert.NoError(t, ValidatePreferences(&models.UpdatePreferencesInput{Language: s("Hindi")}))
	assert.Error(t, ValidatePreferences(&models.UpdatePreferencesInput{Language: s("  ")}))
}

func TestErrors_Error(t *testing.T) {
	err := Errors{{Field: "a", Message: "bad"}, {Field: "b", Message: "worse"}}
	assert.Equal(t, "a: bad; b: worse", err.Error())
}
