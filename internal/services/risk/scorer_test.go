package risk

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeEstimator struct {
	mu    sync.Mutex
	p     float64
	err   error
	calls int
}

func (f *fakeEstimator) Probability(string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.p, f.err
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordScore(label Label, score int) {
	m.Called(label, score)
}

func (m *MockMetrics) RecordEstimatorFallback(reason string) {
	m.Called(reason)
}

func (m *MockMetrics) RecordDuration(d time.Duration) {
	m.Called(d)
}

var fixedNow = time.Date(2026, 1, 15, 2, 0, 0, 0, time.UTC)

func newTestScorer(est PhishingEstimator) *Scorer {
	return NewScorer(est, Config{Now: func() time.Time { return fixedNow }}, nil, nil)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestWeights_SumToOne(t *testing.T) {
	assert.Equal(t, 1.0, WeightAmount+WeightPayee+WeightFrequency+WeightTiming+WeightDevice)
}

func TestScore_AllZero(t *testing.T) {
	res := newTestScorer(nil).Score(Inputs{}, nil)

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, LabelSafe, res.Label)
	assert.Equal(t, []string{ReasonNormal}, res.Reasons)
	assert.Equal(t, fixedNow, res.Timestamp)
}

func TestScore_AllOneClampsAtHundred(t *testing.T) {
	res := newTestScorer(nil).Score(Inputs{1, 1, 1, 1, 1}, nil)

	assert.Equal(t, 100, res.Score)
	assert.Equal(t, LabelDanger, res.Label)
	assert.Contains(t, res.Reasons, ReasonOddHoursLargeAmount)
	assert.Contains(t, res.Reasons, ReasonUnverifiedLargeAmount)
	assert.Contains(t, res.Reasons, ReasonVelocity)
}

func TestScore_LowRiskNoContext(t *testing.T) {
	res := newTestScorer(nil).Score(Inputs{0.2, 0.1, 0.1, 0.1, 0.0}, nil)

	assert.Equal(t, 12, res.Score)
	assert.Equal(t, LabelSafe, res.Label)
	assert.Equal(t, []string{ReasonNormal}, res.Reasons)
}

func TestScore_NightTimeLargePaymentToUnknownProvider(t *testing.T) {
	in := Inputs{AmountRisk: 0.8, PayeeRisk: 0.7, FrequencyRisk: 0.1, TimingRisk: 0.9}
	tx := &Context{
		PayeeHandle: strPtr("unknown@xyz"),
		AmountValue: floatPtr(15000),
		HourOfDay:   intPtr(2),
	}

	t.Run("rule only", func(t *testing.T) {
		res := newTestScorer(nil).Score(in, tx)

		assert.Equal(t, LabelDanger, res.Label)
		assert.Equal(t, 93, res.Score)
		assert.Equal(t, []string{
			ReasonOddHoursLargeAmount,
			ReasonUnverifiedLargeAmount,
			"₹15,000 is a round amount (common in scams)",
			"Unverified payment provider: @xyz",
			"Transaction at 02:00 (high-risk hours: 11 PM - 6 AM)",
		}, res.Reasons)
	})

	t.Run("blended with phishing model", func(t *testing.T) {
		est := &fakeEstimator{p: 0.45}
		res := newTestScorer(est).Score(in, tx)

		// payee = 0.7*0.4 + 0.45*0.6 = 0.55, below the amplification bar
		assert.Equal(t, LabelDanger, res.Label)
		assert.GreaterOrEqual(t, res.Score, 60)
		assert.Equal(t, 69, res.Score)
		assert.NotContains(t, res.Reasons, ReasonUnverifiedLargeAmount)
		assert.Contains(t, res.Reasons, "Unverified payment provider: @xyz")
		assert.Equal(t, 1, est.calls)
	})
}

func TestScore_AmplificationMonotonicInTiming(t *testing.T) {
	s := newTestScorer(nil)
	low := s.Score(Inputs{AmountRisk: 0.8, PayeeRisk: 0.2, FrequencyRisk: 0.2, TimingRisk: 0.1, DeviceRisk: 0.2}, nil)
	high := s.Score(Inputs{AmountRisk: 0.8, PayeeRisk: 0.2, FrequencyRisk: 0.2, TimingRisk: 0.9, DeviceRisk: 0.2}, nil)

	assert.Greater(t, high.Score, low.Score)
	assert.Contains(t, high.Reasons, ReasonOddHoursLargeAmount)
	assert.NotContains(t, low.Reasons, ReasonOddHoursLargeAmount)
}

func TestScore_AmountReasons(t *testing.T) {
	tests := []struct {
		name   string
		amount *float64
		want   string
	}{
		{"round ten thousand", floatPtr(10000), "₹10,000 is a round amount (common in scams)"},
		{"round five thousand", floatPtr(5000), "₹5,000 is a round amount (common in scams)"},
		{"high value", floatPtr(12500), "High-value transaction: ₹12,500"},
		{"small but unusual", floatPtr(3000), "Transaction amount: ₹3,000 flagged as unusual"},
		{"not a round amount", floatPtr(7250.25), "Transaction amount: ₹7,250 flagged as unusual"},
		{"half rounds down to even", floatPtr(5500.5), "Transaction amount: ₹5,500 flagged as unusual"},
		{"half rounds up to even", floatPtr(5501.5), "Transaction amount: ₹5,502 flagged as unusual"},
		{"beyond int64", floatPtr(1e20), "₹100,000,000,000,000,000,000 is a round amount (common in scams)"},
		{"no amount", nil, ReasonHighAmount},
		{"non finite amount", floatPtr(math.Inf(1)), ReasonHighAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestScorer(nil).Score(Inputs{AmountRisk: 0.7}, &Context{AmountValue: tt.amount})
			assert.Contains(t, res.Reasons, tt.want)
		})
	}
}

func TestScore_PayeeReasons(t *testing.T) {
	tests := []struct {
		name   string
		handle *string
		want   string
	}{
		{"trusted provider", strPtr("merchant@paytm"), "First-time transaction to merchant@paytm"},
		{"untrusted provider", strPtr("shop@randombank"), "Unverified payment provider: @randombank"},
		{"no separator", strPtr("merchant"), ReasonSuspiciousPayee},
		{"no handle", nil, ReasonSuspiciousPayee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestScorer(nil).Score(Inputs{PayeeRisk: 0.9}, &Context{PayeeHandle: tt.handle})
			assert.Contains(t, res.Reasons, tt.want)
		})
	}
}

func TestScore_TimingReasons(t *testing.T) {
	tests := []struct {
		name string
		hour *int
		want string
	}{
		{"late night", intPtr(23), "Transaction at 23:00 (high-risk hours: 11 PM - 6 AM)"},
		{"early morning", intPtr(5), "Transaction at 05:00 (high-risk hours: 11 PM - 6 AM)"},
		{"daytime", intPtr(14), "Transaction at unusual time: 14:00"},
		{"six am boundary", intPtr(6), "Transaction at unusual time: 06:00"},
		{"no hour", nil, ReasonUnusualHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestScorer(nil).Score(Inputs{TimingRisk: 0.7}, &Context{HourOfDay: tt.hour})
			assert.Contains(t, res.Reasons, tt.want)
		})
	}
}

func TestScore_FrequencyAndDeviceReasons(t *testing.T) {
	res := newTestScorer(nil).Score(Inputs{FrequencyRisk: 0.6, DeviceRisk: 0.6}, nil)

	assert.Equal(t, []string{ReasonRapidFrequency, ReasonUntrustedDevice}, res.Reasons)
}

func TestScore_MinorFactorsFallback(t *testing.T) {
	// Every signal sits exactly on its explanation threshold.
	res := newTestScorer(nil).Score(Inputs{0.6, 0.5, 0.5, 0.6, 0.5}, nil)

	assert.Equal(t, LabelWarning, res.Label)
	assert.Equal(t, []string{ReasonMinorFactors}, res.Reasons)
}

func TestScore_BlendsPhishingProbability(t *testing.T) {
	est := &fakeEstimator{p: 1.0}
	res := newTestScorer(est).Score(Inputs{}, &Context{PayeeHandle: strPtr("refund@xyz")})

	// payee = 0*0.4 + 1.0*0.6 = 0.6, weighted by 0.25
	assert.Equal(t, 15, res.Score)
	assert.Contains(t, res.Reasons, "Unverified payment provider: @xyz")
}

func TestScore_SkipsEstimatorWithoutHandle(t *testing.T) {
	est := &fakeEstimator{p: 1.0}
	s := newTestScorer(est)

	s.Score(Inputs{PayeeRisk: 0.3}, nil)
	s.Score(Inputs{PayeeRisk: 0.3}, &Context{PayeeHandle: strPtr("")})

	assert.Zero(t, est.calls)
}

func TestScore_EstimatorFailureFallsBackToRules(t *testing.T) {
	in := Inputs{AmountRisk: 0.8, PayeeRisk: 0.7, TimingRisk: 0.9}
	tx := &Context{PayeeHandle: strPtr("unknown@xyz")}

	metrics := new(MockMetrics)
	metrics.On("RecordEstimatorFallback", "error").Return().Once()
	metrics.On("RecordScore", mock.Anything, mock.Anything).Return()
	metrics.On("RecordDuration", mock.Anything).Return()

	failing := NewScorer(&fakeEstimator{err: errors.New("model exploded")}, Config{}, metrics, nil)
	ruleOnly := NewScorer(nil, Config{}, nil, nil)

	got := failing.Score(in, tx)
	want := ruleOnly.Score(in, tx)

	assert.Equal(t, want.Score, got.Score)
	assert.Equal(t, want.Label, got.Label)
	assert.Equal(t, want.Reasons, got.Reasons)
	metrics.AssertExpectations(t)
}

func TestScore_RecordsMetrics(t *testing.T) {
	metrics := new(MockMetrics)
	metrics.On("RecordScore", LabelSafe, 12).Return().Once()
	metrics.On("RecordDuration", mock.AnythingOfType("time.Duration")).Return().Once()

	NewScorer(nil, Config{}, metrics, nil).Score(Inputs{0.2, 0.1, 0.1, 0.1, 0.0}, nil)

	metrics.AssertExpectations(t)
}

func TestScore_ClampsOutOfRangeInputs(t *testing.T) {
	s := newTestScorer(nil)
	got := s.Score(Inputs{AmountRisk: 1.5, PayeeRisk: -0.3, FrequencyRisk: math.NaN(), TimingRisk: 2, DeviceRisk: -1}, nil)
	want := s.Score(Inputs{AmountRisk: 1, TimingRisk: 1}, nil)

	assert.Equal(t, want, got)
}

func TestScore_ContextDoesNotChangeShape(t *testing.T) {
	s := newTestScorer(nil)
	in := Inputs{0.4, 0.4, 0.4, 0.4, 0.4}

	bare := s.Score(in, nil)
	empty := s.Score(in, &Context{})
	assert.Equal(t, bare, empty)

	withCtx := s.Score(in, &Context{AmountValue: floatPtr(100), HourOfDay: intPtr(12), PayeeHandle: strPtr("a@paytm")})
	assert.Equal(t, bare.Score, withCtx.Score)
	assert.NotEmpty(t, withCtx.Reasons)
}

func TestScore_InvariantsOverGrid(t *testing.T) {
	s := newTestScorer(nil)
	levels := []float64{0, 0.25, 0.5, 0.55, 0.65, 0.75, 1}

	for _, a := range levels {
		for _, p := range levels {
			for _, f := range levels {
				for _, tm := range levels {
					for _, d := range levels {
						res := s.Score(Inputs{a, p, f, tm, d}, nil)
						require.GreaterOrEqual(t, res.Score, 0)
						require.LessOrEqual(t, res.Score, 100)
						require.Equal(t, LabelFor(res.Score), res.Label)
						require.NotEmpty(t, res.Reasons)
					}
				}
			}
		}
	}
}

func TestScore_ConcurrentCalls(t *testing.T) {
	s := newTestScorer(&fakeEstimator{p: 0.8})
	in := Inputs{0.8, 0.7, 0.1, 0.9, 0}
	tx := &Context{PayeeHandle: strPtr("unknown@xyz"), AmountValue: floatPtr(15000), HourOfDay: intPtr(2)}
	want := s.Score(in, tx)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, s.Score(in, tx))
		}()
	}
	wg.Wait()
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		score int
		want  Label
	}{
		{0, LabelSafe},
		{29, LabelSafe},
		{30, LabelWarning},
		{59, LabelWarning},
		{60, LabelDanger},
		{100, LabelDanger},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelFor(tt.score), "score %d", tt.score)
	}
}

func TestNewScorer_Defaults(t *testing.T) {
	s := NewScorer(nil, Config{}, nil, nil)

	assert.Equal(t, DefaultCurrencySymbol, s.config.CurrencySymbol)
	assert.NotNil(t, s.config.Now)
	assert.False(t, s.MLEnabled())
	assert.True(t, NewScorer(&fakeEstimator{}, Config{}, nil, nil).MLEnabled())
}
