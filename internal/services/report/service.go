package report

import (
	"context"
	"fmt"
	"log"
	"time"

	"paylink_sync/internal/ports"
)

const csvPath = "partial_payments.csv"
const xlsxPath = "partial_payments.xlsx"

// Service runs the derived-report pipeline: read the primary tab back,
// extract open partial payments, full-replace the report tab, export
// locally, and mail a summary. The email step runs last so a transport
// failure never unwinds the sheet write.
type Service struct {
	Store  ports.TabStore
	Mailer ports.Mailer

	SheetTab  string
	ReportTab string
	Prefix    string
}

type Options struct {
	CurrencyBreakdown bool
	WriteXLSX         bool
	SendEmail         bool
}

type Result struct {
	Partial  int
	TotalDue string
}

func (s *Service) Run(ctx context.Context, opts Options) (Result, error) {
	t0 := time.Now()
	log.Printf("[REPORT][START] source=%q target=%q prefix=%q", s.SheetTab, s.ReportTab, s.Prefix)

	rows, err := s.Store.ReadTab(ctx, s.SheetTab)
	if err != nil {
		log.Printf("[REPORT][ERR] read: %v", err)
		return Result{}, err
	}

	records, sum := ExtractPartial(rows, s.Prefix)
	if len(records) == 0 {
		log.Printf("[REPORT] no partial payments found")
	}

	if err := s.Store.ReplaceTab(ctx, s.ReportTab, ReportHeader(), Rows(records)); err != nil {
		log.Printf("[REPORT][ERR] sheet write: %v", err)
		return Result{}, err
	}

	if err := WriteCSV(csvPath, records); err != nil {
		log.Printf("[REPORT][ERR] csv export: %v", err)
		return Result{}, err
	}
	if opts.WriteXLSX {
		if err := WriteXLSX(xlsxPath, s.ReportTab, records); err != nil {
			log.Printf("[REPORT][ERR] xlsx export: %v", err)
			return Result{}, err
		}
	}

	res := Result{Partial: len(records), TotalDue: sum.Total.Due.StringFixed(2)}

	if opts.SendEmail {
		var byCurrency []CurrencySummary
		if opts.CurrencyBreakdown {
			byCurrency = SummarizeByCurrency(records, s.Prefix)
		}
		subject, body := ComposeEmail(sum, byCurrency, s.Store.URL())
		if err := s.Mailer.Send(subject, body); err != nil {
			// Sheet and exports are already committed; surface the
			// cause without masking it.
			log.Printf("[REPORT][ERR] notification: %v", err)
			return res, fmt.Errorf("summary email: %w", err)
		}
		log.Printf("[REPORT] summary email sent")
	}

	log.Printf("[REPORT][DONE] partial=%d total_due=%s duration=%s", res.Partial, res.TotalDue, time.Since(t0))
	return res, nil
}
