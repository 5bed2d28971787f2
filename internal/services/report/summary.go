package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DefaultCurrency gets its symbol in human-facing output; everything
// else is rendered symbol-less with the code.
const DefaultCurrency = "INR"

// RenderMoney formats a due amount for humans: two-decimal fixed
// point with grouped thousands, ₹-prefixed for the default currency.
func RenderMoney(d decimal.Decimal, currency string) string {
	f, _ := d.Float64()
	grouped := humanize.FormatFloat("#,###.##", f)
	if currency == DefaultCurrency || currency == "" {
		return "₹" + grouped
	}
	return grouped + " " + currency
}

// ComposeEmail builds the deterministic plain-text summary body.
// byCurrency may be nil when the breakdown was not requested.
func ComposeEmail(sum Summary, byCurrency []CurrencySummary, sheetURL string) (subject, body string) {
	subject = fmt.Sprintf("Partial Payments Report: %d open links, %s due",
		sum.Total.Count, RenderMoney(sum.Total.Due, DefaultCurrency))

	var b strings.Builder
	b.WriteString("Partial Payments Summary\n")
	b.WriteString("========================\n\n")
	fmt.Fprintf(&b, "Open payment links: %d\n", sum.Total.Count)
	fmt.Fprintf(&b, "Total due: %s\n\n", RenderMoney(sum.Total.Due, DefaultCurrency))

	prefix := sum.Prefix
	if prefix == "" {
		prefix = "(no prefix)"
	}
	fmt.Fprintf(&b, "%s links: %d (%s)\n", prefix, sum.InBkt.Count, RenderMoney(sum.InBkt.Due, DefaultCurrency))
	fmt.Fprintf(&b, "Other links: %d (%s)\n", sum.Other.Count, RenderMoney(sum.Other.Due, DefaultCurrency))

	if len(byCurrency) > 0 {
		b.WriteString("\nBy currency:\n")
		for _, cs := range byCurrency {
			fmt.Fprintf(&b, "  %s: total %d (%s) | %s %d (%s) | other %d (%s)\n",
				cs.Currency,
				cs.Total.Count, RenderMoney(cs.Total.Due, cs.Currency),
				prefix,
				cs.InBkt.Count, RenderMoney(cs.InBkt.Due, cs.Currency),
				cs.Other.Count, RenderMoney(cs.Other.Due, cs.Currency))
		}
	}

	fmt.Fprintf(&b, "\nFull report: %s\n", sheetURL)
	return subject, b.String()
}
