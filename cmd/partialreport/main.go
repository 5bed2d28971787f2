package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"paylink_sync/internal/config"
	"paylink_sync/internal/logging"
	"paylink_sync/internal/mailer"
	"paylink_sync/internal/services/report"
	"paylink_sync/internal/sheets"
)

type flags struct {
	testEmail         bool
	currencyBreakdown bool
	xlsx              bool
	noEmail           bool
	debug             bool
}

func main() {
	var f flags

	rootCmd := &cobra.Command{
		Use:          "partialreport",
		Short:        "Extract open partial payments from the sheet and mail a summary",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}

	rootCmd.Flags().BoolVar(&f.testEmail, "test-email", false, "send a fixed SMTP self-test message and exit")
	rootCmd.Flags().BoolVar(&f.currencyBreakdown, "currency-breakdown", false, "include a per-currency breakdown in the summary")
	rootCmd.Flags().BoolVar(&f.xlsx, "xlsx", false, "also export the report as an XLSX workbook")
	rootCmd.Flags().BoolVar(&f.noEmail, "no-email", false, "skip the summary email")
	rootCmd.Flags().BoolVar(&f.debug, "debug", false, "verbose logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(f flags) error {
	closeLog := logging.Setup("partial_payments.log")
	defer closeLog()

	cfg := config.Init()
	if f.debug {
		cfg.Debug = true
	}

	withEmail := !f.noEmail || f.testEmail

	if f.testEmail {
		// Self-test needs only the mail settings.
		if errs := cfg.ValidateMail(); len(errs) > 0 {
			for _, err := range errs {
				log.Printf("[REPORT][ERR] configuration: %v", err)
			}
			return fmt.Errorf("invalid mail configuration")
		}
		m := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailSender, cfg.EmailPassword, cfg.ReportRecipient)
		if err := m.SelfTest(); err != nil {
			log.Printf("[REPORT][ERR] self-test failed: %v", err)
			return err
		}
		log.Printf("[REPORT] self-test ok")
		return nil
	}

	if err := cfg.ValidateReport(withEmail); err != nil {
		log.Printf("[REPORT][ERR] configuration: %v", err)
		return err
	}

	ctx := context.Background()

	store, err := sheets.NewClient(ctx, cfg.SheetID, cfg.ServiceAccountFile)
	if err != nil {
		log.Printf("[REPORT][ERR] %v", err)
		return err
	}

	svc := &report.Service{
		Store:     store,
		Mailer:    mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailSender, cfg.EmailPassword, cfg.ReportRecipient),
		SheetTab:  cfg.SheetTab,
		ReportTab: cfg.ReportTab,
		Prefix:    cfg.ReportRefPrefix,
	}

	res, err := svc.Run(ctx, report.Options{
		CurrencyBreakdown: f.currencyBreakdown,
		WriteXLSX:         f.xlsx,
		SendEmail:         withEmail,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Partial payments: %d, total due %s\n", res.Partial, res.TotalDue)
	return nil
}
