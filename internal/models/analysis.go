package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalyzeRequest is the inbound transaction contract. The five risk
// signals are required; the remaining fields add context.
type AnalyzeRequest struct {
	AmountRisk    *float64 `json:"amount_risk"`
	PayeeRisk     *float64 `json:"payee_risk"`
	FrequencyRisk *float64 `json:"frequency_risk"`
	TimingRisk    *float64 `json:"timing_risk"`
	DeviceRisk    *float64 `json:"device_risk"`

	PayeeID     *string  `json:"payee_id,omitempty"`
	AmountValue *float64 `json:"amount_value,omitempty"`
	HourOfDay   *int     `json:"hour_of_day,omitempty"`

	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// AnalyzeQRRequest carries raw QR text to be parsed as a UPI payment link.
type AnalyzeQRRequest struct {
	QRData    string `json:"qr_data"`
	HourOfDay *int   `json:"hour_of_day,omitempty"`
}

// ScanDetails describes the payment a QR code points at.
type ScanDetails struct {
	Merchant          string `json:"merchant"`
	UPIID             string `json:"upi_id"`
	Amount            string `json:"amount"`
	OriginalUPIString string `json:"original_upi_string"`
}

// AnalysisResult is the outbound contract of every analysis.
type AnalysisResult struct {
	RiskScore int          `json:"risk_score"`
	RiskLabel string       `json:"risk_label"`
	Reasons   []string     `json:"reasons"`
	Timestamp time.Time    `json:"timestamp"`
	ScanID    *uuid.UUID   `json:"scan_id,omitempty"`
	Details   *ScanDetails `json:"details,omitempty"`
}
