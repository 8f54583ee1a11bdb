package timeutil

import (
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30)
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback: create fixed zone if Asia/Kolkata not available
		IST = time.FixedZone("IST", 5*60*60+30*60) // UTC+5:30
	}
}

// Now returns the current time in IST
func Now() time.Time {
	return time.Now().In(IST)
}

// ToIST converts any time to IST
func ToIST(t time.Time) time.Time {
	return t.In(IST)
}

// BillingMonth returns the calendar month of t in YYYY-MM form, the key
// under which rent payments are recorded.
func BillingMonth(t time.Time) string {
	return t.In(IST).Format(MonthLayout)
}

// CurrentBillingMonth returns the current calendar month in YYYY-MM form.
func CurrentBillingMonth() string {
	return BillingMonth(Now())
}

// Common layouts for IST formatting
const (
	MonthLayout    = "2006-01"
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
