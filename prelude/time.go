package prelude

import (
	"time"

	"cloud.google.com/go/civil"
)

// Now returns the current local time
func Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Sleep pauses the current goroutine for d
func Sleep(d time.Duration) {
	time.Sleep(d)
}

// Unix returns the current time in seconds since the epoch, with
// sub-second precision
func Unix() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// Date is a calendar date without time of day or location
type Date = civil.Date

// Today returns the current local date
func Today() Date {
	return civil.DateOf(time.Now())
}

// DateOf returns the date on which t falls, in t's location
func DateOf(t time.Time) Date {
	return civil.DateOf(t)
}

// ParseDate parses a date in YYYY-MM-DD form
func ParseDate(s string) (Date, error) {
	return civil.ParseDate(s)
}
