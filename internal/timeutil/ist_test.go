package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBillingMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			"plain date",
			time.Date(2025, time.March, 15, 12, 0, 0, 0, IST),
			"2025-03",
		},
		{
			"single digit month is zero padded",
			time.Date(2025, time.July, 1, 0, 0, 0, 0, IST),
			"2025-07",
		},
		{
			// 2025-01-01 00:30 IST is still 2024-12-31 19:00 UTC;
			// the billing month follows IST, not UTC.
			"utc time close to month boundary",
			time.Date(2024, time.December, 31, 19, 0, 0, 0, time.UTC),
			"2025-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BillingMonth(tt.in))
		})
	}
}

func TestCurrentBillingMonthMatchesNow(t *testing.T) {
	assert.Equal(t, Now().Format(MonthLayout), CurrentBillingMonth())
}
