/*
Package analysis turns inbound scan requests into explained risk results.

It validates the transaction contract, hands the five signals and their
context to the risk scorer, files the outcome in the caller's scan history
and returns the outbound result. Persistence is best effort: a failed write
is logged and the analysis is still returned.

Usage:

	svc := analysis.NewService(scorer, scans, analysis.Config{}, metrics, logger)

	// Score a transaction described by its five signals
	result, err := svc.Analyze(ctx, req, userID)

	// Score the payment a UPI QR code points at
	result, err = svc.AnalyzeQR(ctx, "upi://pay?pa=shop@ybl&am=250", nil, userID)

	// Page through earlier scans, newest first
	page, err := svc.History(ctx, userID, pagination.New(1, 20))

Error Handling:
  - ErrInvalidInput: wraps validation.Errors or a coded UPI error
  - ErrHistoryUnavailable: no scan store is configured
*/
package analysis
