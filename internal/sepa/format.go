package sepa

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire formats required by the pain.008 schema. Amounts are fixed-point with
// exactly two decimals, dates are ISO calendar dates, timestamps are ISO
// date-times without a zone designator.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// FormatAmount renders a decimal amount in the canonical two-decimal form.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatDate renders an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatDateTime renders an ISO date-time.
func FormatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}
