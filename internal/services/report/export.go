package report

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"github.com/xuri/excelize/v2"
)

// ReportHeader is the column schema of the "Partial Payments" tab and
// the local exports mirroring it.
func ReportHeader() []string {
	return []string{
		"ID", "Amount", "Amount Paid", "Due Amount", "Status",
		"Short URL", "Reference ID", "Customer Email", "Customer Contact", "Currency",
	}
}

// Rows projects the extracted records onto ReportHeader order.
func Rows(records []PartialPayment) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ID,
			r.Amount.StringFixed(2),
			r.AmountPaid.StringFixed(2),
			r.Due.StringFixed(2),
			r.Status,
			r.ShortURL,
			r.ReferenceID,
			r.CustomerEmail,
			r.CustomerContact,
			r.Currency,
		})
	}
	return rows
}

// WriteCSV mirrors the report tab into a local CSV file.
func WriteCSV(path string, records []PartialPayment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ReportHeader()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, row := range Rows(records) {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	log.Printf("[EXPORT] csv written path=%s rows=%d", path, len(records))
	return nil
}

// WriteXLSX mirrors the report tab into a local workbook.
func WriteXLSX(path, sheet string, records []PartialPayment) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("xlsx sheet %q: %w", sheet, err)
	}

	all := append([][]string{ReportHeader()}, Rows(records)...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("xlsx row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	log.Printf("[EXPORT] xlsx written path=%s rows=%d", path, len(records))
	return nil
}
