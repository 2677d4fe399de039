/*
Package phishing estimates the probability that a payment handle belongs to a
phishing payee.

The classifier is a random forest trained offline and exported as JSON in
scikit-learn's flat tree layout (see Forest). It is loaded once and is
read-only afterwards, so a single *Estimator is shared by every request:

	est, err := phishing.Load("ml/models/upi_classifier.json")
	if err != nil {
	    // errors.Is(err, phishing.ErrModelUnavailable): score rule-only
	}
	p, err := est.Probability("refund@paytmm")

Loader wraps Load behind a sync.Once for callers that want lazy, race-free
initialization. A failed load is cached for the process lifetime.
*/
package phishing
