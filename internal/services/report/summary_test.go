package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestRenderMoney(t *testing.T) {
	cases := []struct {
		amount   string
		currency string
		want     string
	}{
		{"1207.00", "INR", "₹1,207.00"},
		{"1590.00", "", "₹1,590.00"},
		{"207.00", "INR", "₹207.00"},
		{"1234567.89", "INR", "₹1,234,567.89"},
		{"99.50", "USD", "99.50 USD"},
	}
	for _, tc := range cases {
		if got := RenderMoney(d(tc.amount), tc.currency); got != tc.want {
			t.Errorf("RenderMoney(%s, %s): got %q want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func sampleSummary() Summary {
	return Summary{
		Prefix: "July",
		Total:  Bucket{Count: 2, Due: d("1207.00")},
		InBkt:  Bucket{Count: 1, Due: d("1000.00")},
		Other:  Bucket{Count: 1, Due: d("207.00")},
	}
}

func TestComposeEmailBody(t *testing.T) {
	subject, body := ComposeEmail(sampleSummary(), nil, "https://docs.google.com/spreadsheets/d/test")

	if !strings.Contains(subject, "2 open links") || !strings.Contains(subject, "₹1,207.00") {
		t.Errorf("subject missing totals: %q", subject)
	}

	for _, want := range []string{
		"Open payment links: 2",
		"Total due: ₹1,207.00",
		"July links: 1 (₹1,000.00)",
		"Other links: 1 (₹207.00)",
		"https://docs.google.com/spreadsheets/d/test",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "By currency") {
		t.Errorf("currency section should be absent when not requested")
	}
}

func TestComposeEmailDeterministic(t *testing.T) {
	_, first := ComposeEmail(sampleSummary(), nil, "https://example.com")
	_, second := ComposeEmail(sampleSummary(), nil, "https://example.com")
	if first != second {
		t.Error("identical input produced different bodies")
	}
}

func TestComposeEmailCurrencyBreakdown(t *testing.T) {
	byCur := []CurrencySummary{
		{Currency: "INR", Total: Bucket{Count: 1, Due: d("207.00")}, Other: Bucket{Count: 1, Due: d("207.00")}},
		{Currency: "USD", Total: Bucket{Count: 1, Due: d("100.00")}, InBkt: Bucket{Count: 1, Due: d("100.00")}},
	}

	_, body := ComposeEmail(sampleSummary(), byCur, "https://example.com")

	if !strings.Contains(body, "By currency:") {
		t.Fatalf("missing currency section:\n%s", body)
	}
	if !strings.Contains(body, "INR: total 1 (₹207.00)") {
		t.Errorf("INR line wrong:\n%s", body)
	}
	if !strings.Contains(body, "100.00 USD") {
		t.Errorf("non-default currency should render symbol-less:\n%s", body)
	}
}
