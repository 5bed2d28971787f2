package report

import (
	"log"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"paylink_sync/internal/models"
)

// Column positions in the primary worksheet (see sync.Header).
const (
	colID              = 0
	colAmount          = 3
	colAmountPaid      = 4
	colStatus          = 5
	colCurrency        = 6
	colReferenceID     = 8
	colShortURL        = 9
	colCustomerEmail   = 14
	colCustomerContact = 15
	colCount           = 26
)

// PartialPayment is a primary-tab row re-parsed into typed fields,
// kept only while the link is still open for payment.
type PartialPayment struct {
	ID              string
	Amount          decimal.Decimal
	AmountPaid      decimal.Decimal
	Due             decimal.Decimal
	Status          string
	ShortURL        string
	ReferenceID     string
	CustomerEmail   string
	CustomerContact string
	Currency        string
}

// Bucket is a count plus summed due amount.
type Bucket struct {
	Count int
	Due   decimal.Decimal
}

func (b *Bucket) add(d decimal.Decimal) {
	b.Count++
	b.Due = b.Due.Add(d)
}

// Summary aggregates the due amounts: overall, the bucket whose
// reference id starts with the configured literal prefix, and the
// rest.
type Summary struct {
	Prefix string
	Total  Bucket
	InBkt  Bucket
	Other  Bucket
}

// ExtractPartial filters the primary-tab rows (header first) down to
// open partial payments, computes due amounts, and returns them sorted
// by due descending (stable, ties keep row order) with the aggregate.
// Rows that fail to re-parse are skipped, never fatal.
func ExtractPartial(rows [][]string, prefix string) ([]PartialPayment, Summary) {
	sum := Summary{Prefix: prefix}
	var out []PartialPayment

	if len(rows) <= 1 {
		return nil, sum
	}

	for i, row := range rows[1:] {
		row = pad(row, colCount)

		amount, err1 := decimal.NewFromString(strings.TrimSpace(row[colAmount]))
		paid, err2 := decimal.NewFromString(strings.TrimSpace(row[colAmountPaid]))
		if err1 != nil || err2 != nil {
			log.Printf("[EXTRACT][WARN] row %d id=%s: unparseable amount — skipped", i+2, row[colID])
			continue
		}

		if row[colStatus] != models.StatusCreated || !paid.LessThan(amount) {
			continue
		}

		rec := PartialPayment{
			ID:              row[colID],
			Amount:          amount,
			AmountPaid:      paid,
			Due:             amount.Sub(paid),
			Status:          row[colStatus],
			ShortURL:        row[colShortURL],
			ReferenceID:     row[colReferenceID],
			CustomerEmail:   row[colCustomerEmail],
			CustomerContact: row[colCustomerContact],
			Currency:        row[colCurrency],
		}
		out = append(out, rec)

		sum.Total.add(rec.Due)
		if prefix != "" && strings.HasPrefix(rec.ReferenceID, prefix) {
			sum.InBkt.add(rec.Due)
		} else {
			sum.Other.add(rec.Due)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Due.GreaterThan(out[j].Due)
	})

	log.Printf("[EXTRACT] partial=%d total_due=%s %s_bucket=%d other=%d",
		len(out), sum.Total.Due.StringFixed(2), prefix, sum.InBkt.Count, sum.Other.Count)
	return out, sum
}

// CurrencySummary is the optional per-currency breakdown. It is a
// separate pass so the core totals never depend on it.
type CurrencySummary struct {
	Currency string
	Total    Bucket
	InBkt    Bucket
	Other    Bucket
}

// SummarizeByCurrency partitions the extracted records per currency
// code, sorted by code for deterministic rendering.
func SummarizeByCurrency(records []PartialPayment, prefix string) []CurrencySummary {
	byCode := map[string]*CurrencySummary{}
	for _, rec := range records {
		code := rec.Currency
		if code == "" {
			code = "unknown"
		}
		cs, ok := byCode[code]
		if !ok {
			cs = &CurrencySummary{Currency: code}
			byCode[code] = cs
		}
		cs.Total.add(rec.Due)
		if prefix != "" && strings.HasPrefix(rec.ReferenceID, prefix) {
			cs.InBkt.add(rec.Due)
		} else {
			cs.Other.add(rec.Due)
		}
	}

	out := make([]CurrencySummary, 0, len(byCode))
	for _, cs := range byCode {
		out = append(out, *cs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}

func pad(row []string, n int) []string {
	if len(row) >= n {
		return row
	}
	padded := make([]string, n)
	copy(padded, row)
	return padded
}
