package recurring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextRunDate_Frequencies(t *testing.T) {
	start := date(2026, time.January, 15)

	assert.Equal(t, date(2026, time.January, 22), NextRunDate(start, FrequencyWeekly))
	assert.Equal(t, date(2026, time.January, 29), NextRunDate(start, FrequencyBiweekly))
	assert.Equal(t, date(2026, time.February, 15), NextRunDate(start, FrequencyMonthly))
	assert.Equal(t, date(2026, time.April, 15), NextRunDate(start, FrequencyQuarterly))
	assert.Equal(t, date(2027, time.January, 15), NextRunDate(start, FrequencyYearly))
}

func TestNextRunDate_MonthlyTwelveTimesAdvancesOneYear(t *testing.T) {
	d := date(2026, time.March, 10)
	for i := 0; i < 12; i++ {
		d = NextRunDate(d, FrequencyMonthly)
	}
	assert.Equal(t, date(2027, time.March, 10), d)
}

func TestNextRunDate_MonthEndOverflowNormalizes(t *testing.T) {
	// Jan 31 + 1 month overflows February and lands in March, the
	// time.AddDate behavior.
	d := NextRunDate(date(2026, time.January, 31), FrequencyMonthly)
	assert.Equal(t, time.March, d.Month())
}

func TestDueDate_NetTerms(t *testing.T) {
	d := date(2026, time.September, 1)

	assert.Equal(t, d.AddDate(0, 0, 45), DueDate(d, "Net 45"))
	assert.Equal(t, d.AddDate(0, 0, 15), DueDate(d, "net 15"))
	assert.Equal(t, d.AddDate(0, 0, 10), DueDate(d, "NET10"))
	assert.Equal(t, d.AddDate(0, 0, 30), DueDate(d, "garbage"))
	assert.Equal(t, d.AddDate(0, 0, 30), DueDate(d, ""))
}
