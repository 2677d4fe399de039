package phishing

// Prediction is the full classifier verdict for one handle.
type Prediction struct {
	Handle      string  `json:"upi_id"`
	IsPhishing  bool    `json:"is_phishing"`
	Probability float64 `json:"phishing_probability"`
	Confidence  string  `json:"confidence"`
}
