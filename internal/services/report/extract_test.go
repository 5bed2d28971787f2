package report

import (
	"testing"

	syncsvc "paylink_sync/internal/services/sync"
)

// primaryRow builds a full-width primary-tab row with just the fields
// the extractor reads.
func primaryRow(id, amount, paid, status, currency, ref string) []string {
	row := make([]string, colCount)
	row[colID] = id
	row[colAmount] = amount
	row[colAmountPaid] = paid
	row[colStatus] = status
	row[colCurrency] = currency
	row[colReferenceID] = ref
	row[colShortURL] = "https://rzp.io/i/" + id
	return row
}

func TestExtractPartialFilterAggregateSort(t *testing.T) {
	rows := [][]string{
		syncsvc.Header(),
		primaryRow("plink_1", "1000.00", "0.00", "created", "INR", "July-1"),
		primaryRow("plink_2", "500.00", "500.00", "paid", "INR", ""),
		primaryRow("plink_3", "207.00", "0.00", "created", "INR", "Aug-1"),
	}

	records, sum := ExtractPartial(rows, "July")

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != "plink_1" || records[1].ID != "plink_3" {
		t.Errorf("not sorted by due descending: %v, %v", records[0].ID, records[1].ID)
	}
	if got := records[0].Due.StringFixed(2); got != "1000.00" {
		t.Errorf("due[0]: got %s want 1000.00", got)
	}
	if got := records[1].Due.StringFixed(2); got != "207.00" {
		t.Errorf("due[1]: got %s want 207.00", got)
	}

	if got := sum.Total.Due.StringFixed(2); got != "1207.00" {
		t.Errorf("total due: got %s want 1207.00", got)
	}
	if sum.InBkt.Count != 1 || sum.InBkt.Due.StringFixed(2) != "1000.00" {
		t.Errorf("July bucket: got %d/%s want 1/1000.00", sum.InBkt.Count, sum.InBkt.Due.StringFixed(2))
	}
	if sum.Other.Count != 1 || sum.Other.Due.StringFixed(2) != "207.00" {
		t.Errorf("other bucket: got %d/%s want 1/207.00", sum.Other.Count, sum.Other.Due.StringFixed(2))
	}
}

func TestExtractPartialExcludesNonCreated(t *testing.T) {
	rows := [][]string{
		syncsvc.Header(),
		// Partially paid but already past "created": excluded.
		primaryRow("plink_1", "1000.00", "400.00", "partially_paid", "INR", ""),
		// Fully paid created link: excluded (paid == amount).
		primaryRow("plink_2", "300.00", "300.00", "created", "INR", ""),
	}

	records, sum := ExtractPartial(rows, "July")
	if len(records) != 0 || sum.Total.Count != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestExtractPartialStableTieOrder(t *testing.T) {
	rows := [][]string{
		syncsvc.Header(),
		primaryRow("first", "100.00", "0.00", "created", "INR", ""),
		primaryRow("second", "100.00", "0.00", "created", "INR", ""),
	}

	records, _ := ExtractPartial(rows, "")
	if records[0].ID != "first" || records[1].ID != "second" {
		t.Errorf("equal due amounts must keep row order: %s, %s", records[0].ID, records[1].ID)
	}
}

func TestExtractPartialSkipsUnparseableRows(t *testing.T) {
	rows := [][]string{
		syncsvc.Header(),
		primaryRow("bad", "not-a-number", "0.00", "created", "INR", ""),
		primaryRow("good", "50.00", "10.00", "created", "INR", ""),
		{"short-row"},
	}

	records, sum := ExtractPartial(rows, "")
	if len(records) != 1 || records[0].ID != "good" {
		t.Fatalf("expected only the parseable row, got %v", records)
	}
	if got := sum.Total.Due.StringFixed(2); got != "40.00" {
		t.Errorf("total due: got %s want 40.00", got)
	}
}

func TestExtractPartialEmptySheet(t *testing.T) {
	records, sum := ExtractPartial(nil, "July")
	if len(records) != 0 || sum.Total.Count != 0 {
		t.Errorf("empty sheet should yield nothing")
	}

	records, _ = ExtractPartial([][]string{syncsvc.Header()}, "July")
	if len(records) != 0 {
		t.Errorf("header-only sheet should yield nothing")
	}
}

func TestSummarizeByCurrency(t *testing.T) {
	rows := [][]string{
		syncsvc.Header(),
		primaryRow("a", "100.00", "0.00", "created", "USD", "July-a"),
		primaryRow("b", "250.00", "50.00", "created", "INR", ""),
		primaryRow("c", "40.00", "0.00", "created", "INR", "July-c"),
	}

	records, _ := ExtractPartial(rows, "July")
	byCur := SummarizeByCurrency(records, "July")

	if len(byCur) != 2 {
		t.Fatalf("got %d currencies, want 2", len(byCur))
	}
	if byCur[0].Currency != "INR" || byCur[1].Currency != "USD" {
		t.Errorf("currencies not sorted: %v", byCur)
	}

	inr := byCur[0]
	if inr.Total.Count != 2 || inr.Total.Due.StringFixed(2) != "240.00" {
		t.Errorf("INR total: %d/%s", inr.Total.Count, inr.Total.Due.StringFixed(2))
	}
	if inr.InBkt.Count != 1 || inr.Other.Count != 1 {
		t.Errorf("INR buckets: %d/%d", inr.InBkt.Count, inr.Other.Count)
	}
}
