// Package upi parses and builds UPI payment links and derives the risk
// signals a scanned payment QR code carries on its own.
package upi

import (
	"fmt"
	"net/url"
	"strings"

	apperrors "cypher/internal/errors"

	"github.com/shopspring/decimal"
)

const (
	Scheme          = "upi://"
	payPath         = "pay"
	DefaultCurrency = "INR"
)

// Params are the query parameters of a upi://pay link.
type Params struct {
	PayeeAddress string `json:"pa"`
	PayeeName    string `json:"pn,omitempty"`
	Amount       string `json:"am,omitempty"`
	Currency     string `json:"cu,omitempty"`
	Note         string `json:"tn,omitempty"`
	Reference    string `json:"tr,omitempty"`
}

// ParseURI reads a upi://pay?... link, a pay?... fragment or a bare query
// string. The payee address is the only required parameter.
func ParseURI(raw string) (*Params, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, Scheme)

	var query string
	if _, after, ok := strings.Cut(s, "?"); ok {
		query = after
	} else if strings.Contains(s, "=") {
		query = s
	} else {
		return nil, apperrors.ErrMissingPayeeAddress
	}
	if i := strings.IndexByte(query, '#'); i >= 0 {
		query = query[:i]
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedUPI, err)
	}

	p := &Params{
		PayeeAddress: values.Get("pa"),
		PayeeName:    values.Get("pn"),
		Amount:       values.Get("am"),
		Currency:     values.Get("cu"),
		Note:         values.Get("tn"),
		Reference:    values.Get("tr"),
	}
	if p.PayeeAddress == "" {
		return nil, apperrors.ErrMissingPayeeAddress
	}
	return p, nil
}

// BuildDeepLink renders p as a upi://pay link. The currency defaults to INR.
func BuildDeepLink(p Params) (string, error) {
	if !strings.Contains(p.PayeeAddress, "@") {
		return "", apperrors.ErrInvalidPayeeAddress
	}
	if p.Amount != "" {
		amount, err := decimal.NewFromString(p.Amount)
		if err != nil || !amount.IsPositive() {
			return "", apperrors.ErrInvalidAmount
		}
	}

	q := url.Values{}
	q.Set("pa", p.PayeeAddress)
	if p.PayeeName != "" {
		q.Set("pn", p.PayeeName)
	}
	if p.Amount != "" {
		q.Set("am", p.Amount)
	}
	if p.Currency != "" {
		q.Set("cu", p.Currency)
	} else {
		q.Set("cu", DefaultCurrency)
	}
	if p.Note != "" {
		q.Set("tn", p.Note)
	}
	if p.Reference != "" {
		q.Set("tr", p.Reference)
	}

	return Scheme + payPath + "?" + q.Encode(), nil
}

// AmountValue returns the parsed amount, or false when it is absent,
// malformed or not positive.
func (p Params) AmountValue() (float64, bool) {
	if p.Amount == "" {
		return 0, false
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(p.Amount))
	if err != nil || !amount.IsPositive() {
		return 0, false
	}
	return amount.InexactFloat64(), true
}
