package recurring

import (
	"regexp"
	"strconv"
	"time"
)

var netTermsPattern = regexp.MustCompile(`(?i)^net\s*(\d+)$`)

// NextRunDate advances a run date by one billing period. Monthly and
// longer periods use calendar arithmetic, so month-end overflow follows
// time.AddDate normalization (Jan 31 + 1 month lands on Mar 2/3).
func NextRunDate(from time.Time, frequency string) time.Time {
	switch frequency {
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyBiweekly:
		return from.AddDate(0, 0, 14)
	case FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	case FrequencyQuarterly:
		return from.AddDate(0, 3, 0)
	case FrequencyYearly:
		return from.AddDate(1, 0, 0)
	}
	return from
}

// DueDate resolves "Net N" payment terms against an invoice date. Terms
// that do not match the pattern fall back to net 30.
func DueDate(invoiceDate time.Time, terms string) time.Time {
	days := 30
	if m := netTermsPattern.FindStringSubmatch(terms); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			days = n
		}
	}
	return invoiceDate.AddDate(0, 0, days)
}
