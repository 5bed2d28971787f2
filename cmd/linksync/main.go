package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"paylink_sync/internal/config"
	"paylink_sync/internal/logging"
	"paylink_sync/internal/ports"
	"paylink_sync/internal/razorpay"
	syncsvc "paylink_sync/internal/services/sync"
	"paylink_sync/internal/sheets"
)

func main() {
	var (
		fromDate string
		toDate   string
		debug    bool
	)

	rootCmd := &cobra.Command{
		Use:          "linksync",
		Short:        "Sync Razorpay payment links into a Google Sheet",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(fromDate, toDate, debug)
		},
	}

	rootCmd.Flags().StringVar(&fromDate, "from-date", "", "start of created_at window (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&toDate, "to-date", "", "end of created_at window (YYYY-MM-DD, inclusive)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "verbose logging and raw response dumps")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fromDate, toDate string, debug bool) error {
	closeLog := logging.Setup("razorpay_sync.log")
	defer closeLog()

	cfg := config.Init()
	if debug {
		cfg.Debug = true
	}
	if err := cfg.ValidateSync(); err != nil {
		log.Printf("[SYNC][ERR] configuration: %v", err)
		return err
	}

	rng, err := parseRange(fromDate, toDate)
	if err != nil {
		log.Printf("[SYNC][ERR] %v", err)
		return err
	}

	ctx := context.Background()

	store, err := sheets.NewClient(ctx, cfg.SheetID, cfg.ServiceAccountFile)
	if err != nil {
		log.Printf("[SYNC][ERR] %v", err)
		return err
	}

	source := razorpay.NewClient(cfg.APIKeyID, cfg.APIKeySecret)
	source.Debug = cfg.Debug

	res, err := syncsvc.NewService(source, store, cfg.SheetTab).Run(ctx, rng)
	if err != nil {
		return err
	}

	log.Printf("[SYNC] sheet updated: %s (%d links)", res.SheetURL, res.Rows)
	return nil
}

func parseRange(fromDate, toDate string) (ports.FetchRange, error) {
	var r ports.FetchRange
	if fromDate != "" {
		t, err := time.Parse("2006-01-02", fromDate)
		if err != nil {
			return r, fmt.Errorf("bad --from-date %q: %w", fromDate, err)
		}
		r.From = t.Unix()
	}
	if toDate != "" {
		t, err := time.Parse("2006-01-02", toDate)
		if err != nil {
			return r, fmt.Errorf("bad --to-date %q: %w", toDate, err)
		}
		// Inclusive: extend to the end of that day.
		r.To = t.Add(24*time.Hour - time.Second).Unix()
	}
	return r, nil
}
