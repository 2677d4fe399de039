package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_DegenerateHandle(t *testing.T) {
	for _, handle := range []string{"no-at-sign", "", "merchant.paytm"} {
		t.Run(handle, func(t *testing.T) {
			v := Extract(handle)
			assert.Equal(t, Degenerate(), v)
			assert.Zero(t, v.UsernameLength)
			assert.Zero(t, v.DomainLength)
			assert.Zero(t, v.TotalLength)
			assert.Zero(t, v.DigitRatio)
			assert.Zero(t, v.SpecialCharRatio)
			assert.Equal(t, float64(DegenerateBrandDistance), v.MinBrandDistance)
			assert.Equal(t, ReputationUntrusted, v.DomainReputation)
		})
	}
}

func TestExtract_TrustedMerchant(t *testing.T) {
	v := Extract("merchant@paytm")

	assert.Equal(t, 8.0, v.UsernameLength)
	assert.Equal(t, 5.0, v.DomainLength)
	assert.Equal(t, 14.0, v.TotalLength)
	assert.Zero(t, v.DigitRatio)
	assert.Zero(t, v.SpecialCharRatio)
	assert.InDelta(t, 3.0, v.Entropy, 1e-9)
	assert.Equal(t, 1.0, v.HasTrustedDomain)
	assert.Zero(t, v.HasPhishingKeyword)
	assert.Zero(t, v.StartsWithDigits)
	assert.Equal(t, ReputationTrusted, v.DomainReputation)
}

func TestExtract_NumericUsernameOnPlaceholderDomain(t *testing.T) {
	v := Extract("98765@unknown")

	assert.Equal(t, 1.0, v.DigitRatio)
	assert.Equal(t, 1.0, v.StartsWithDigits)
	assert.InDelta(t, math.Log2(5), v.Entropy, 1e-9)
	assert.Zero(t, v.HasTrustedDomain)
	assert.Equal(t, ReputationUntrusted, v.DomainReputation)
}

func TestExtract_KeywordAndSpecialChars(t *testing.T) {
	v := Extract("urgent-prize@fake")

	assert.Equal(t, 12.0, v.UsernameLength)
	assert.InDelta(t, 1.0/12.0, v.SpecialCharRatio, 1e-9)
	assert.Equal(t, 1.0, v.HasPhishingKeyword)
	assert.Equal(t, ReputationUntrusted, v.DomainReputation)
}

func TestExtract_DomainReputation(t *testing.T) {
	tests := []struct {
		handle string
		want   float64
	}{
		{"shop@OKAXIS", ReputationTrusted},
		{"shop@mybhimbank", ReputationTrusted},
		{"shop@xy", ReputationUntrusted},
		{"shop@TEST", ReputationUntrusted},
		{"shop@example", ReputationNeutral},
		{"a@b@c", ReputationNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.handle, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.handle).DomainReputation)
		})
	}
}

func TestExtract_BrandDistance(t *testing.T) {
	assert.Equal(t, 0.0, Extract("Zomato@paytm").MinBrandDistance)
	assert.Equal(t, 1.0, Extract("zomat0@ybl").MinBrandDistance)
	// Empty username: distance equals the shortest brand length.
	assert.Equal(t, 3.0, Extract("@paytm").MinBrandDistance)
}

func TestExtract_EmptyUsername(t *testing.T) {
	v := Extract("@paytm")
	assert.Zero(t, v.UsernameLength)
	assert.Zero(t, v.DigitRatio)
	assert.Zero(t, v.SpecialCharRatio)
	assert.Zero(t, v.Entropy)
	assert.Zero(t, v.StartsWithDigits)
}

func TestExtract_IsPure(t *testing.T) {
	for _, handle := range []string{"refund@paytmm", "zomato123@phonepe", "x"} {
		assert.Equal(t, Extract(handle), Extract(handle))
	}
}

func TestExtract_EntropyStableAcrossCalls(t *testing.T) {
	for _, handle := range []string{"zomato123@phonepe", "refund-support-team@fake", "aabbccddeeffgg@ybl"} {
		first := Extract(handle)
		for i := 0; i < 1000; i++ {
			got := Extract(handle)
			require.Equal(t, first.Entropy, got.Entropy, "call %d for %s", i, handle)
			require.Equal(t, first, got)
		}
	}
}

func TestFeatureVector_ValuesOrder(t *testing.T) {
	v := Extract("support-team@googlepay")
	values := v.Values()
	names := Names()

	require.Len(t, values, Count)
	assert.Equal(t, "username_length", names[0])
	assert.Equal(t, "domain_reputation", names[Count-1])
	assert.Equal(t, v.UsernameLength, values[0])
	assert.Equal(t, v.Entropy, values[5])
	assert.Equal(t, v.MinBrandDistance, values[9])
	assert.Equal(t, v.DomainReputation, values[10])
}

func TestExtractBatch(t *testing.T) {
	handles := []string{"merchant@paytm", "no-at-sign"}
	out := ExtractBatch(handles)

	require.Len(t, out, 2)
	assert.Equal(t, Extract(handles[0]), out[0])
	assert.Equal(t, Degenerate(), out[1])
}

func TestEntropy(t *testing.T) {
	assert.Zero(t, Entropy(""))
	assert.Zero(t, Entropy("aaaa"))
	assert.InDelta(t, 1.0, Entropy("aabb"), 1e-9)
	assert.InDelta(t, 2.0, Entropy("abcd"), 1e-9)
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"abc", "", 3},
		{"flaw", "lawn", 2},
		{"paytm", "paytm", 0},
		{"café", "cafe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
		})
	}
}
