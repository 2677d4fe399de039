// Command model_check loads the phishing model artifact and prints its
// predictions for the given UPI handles, or for a built-in sample set.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"cypher/internal/config"
	"cypher/internal/logger"
	"cypher/internal/services/phishing"

	"go.uber.org/zap"
)

var sampleHandles = []string{
	"merchant@paytm",
	"shop123@ybl",
	"urgent-refund@fake",
	"98765@unknown",
	"1support@xyz",
}

func main() {
	config.LoadEnv()
	cfg := config.Load()

	log := logger.NewOrNop(false)
	defer func() { _ = log.Sync() }()

	est, err := phishing.Load(cfg.ModelPath)
	if err != nil {
		log.Fatal("failed to load phishing model", zap.String("path", cfg.ModelPath), zap.Error(err))
	}

	handles := os.Args[1:]
	if len(handles) == 0 {
		handles = sampleHandles
	}

	preds, err := est.PredictBatch(context.Background(), handles)
	if err != nil {
		log.Fatal("prediction failed", zap.Error(err))
	}

	fmt.Printf("model %s (%s)\n\n", est.Version(), est.Path())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UPI ID\tPROBABILITY\tPHISHING\tCONFIDENCE")
	for _, p := range preds {
		fmt.Fprintf(w, "%s\t%.4f\t%t\t%s\n", p.Handle, p.Probability, p.IsPhishing, p.Confidence)
	}
	_ = w.Flush()
}
