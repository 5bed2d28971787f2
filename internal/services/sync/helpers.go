package sync

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"paylink_sync/internal/models"
)

// formatTimestamp renders unix seconds as an RFC3339 UTC string.
// Absent or zero timestamps become empty, not the epoch.
func formatTimestamp(ts *int64) string {
	if ts == nil || *ts == 0 {
		return ""
	}
	return time.Unix(*ts, 0).UTC().Format(time.RFC3339)
}

// formatAmount converts integer minor units to a two-decimal major
// unit string (159000 → "1590.00").
func formatAmount(minor *int64) string {
	if minor == nil {
		return "0.00"
	}
	return decimal.New(*minor, -2).StringFixed(2)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// paymentsSummary flattens the nested payments array into one cell,
// one "<id>: <amount> via <method> (<status>)" entry per payment.
func paymentsSummary(payments []models.LinkPayment) string {
	if len(payments) == 0 {
		return ""
	}
	parts := make([]string, 0, len(payments))
	for _, p := range payments {
		parts = append(parts, p.PaymentID+": "+formatAmount(p.Amount)+" via "+p.Method+" ("+p.Status+")")
	}
	return strings.Join(parts, " | ")
}

// notesSummary flattens the notes mapping into "key: value" pairs.
// Keys are sorted so the cell is stable across runs.
func notesSummary(notes models.Notes) string {
	if len(notes) == 0 {
		return ""
	}
	keys := make([]string, 0, len(notes))
	for k := range notes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+notes[k])
	}
	return strings.Join(parts, ", ")
}
