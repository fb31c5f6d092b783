package prelude

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClock(t *testing.T) {
	start := Now()
	Sleep(time.Millisecond)
	require.GreaterOrEqual(t, Since(start), time.Millisecond)

	secs := Unix()
	require.InDelta(t, float64(time.Now().Unix()), secs, 2)
}

func TestDates(t *testing.T) {
	d, err := ParseDate("2026-03-01")
	require.NoError(t, err)
	require.Equal(t, Date{Year: 2026, Month: time.March, Day: 1}, d)
	require.Equal(t, "2026-03-01", d.String())

	ts := time.Date(2026, time.March, 1, 23, 30, 0, 0, time.UTC)
	require.Equal(t, d, DateOf(ts))
	require.Equal(t, d.AddDays(1), DateOf(ts.Add(time.Hour)))

	require.True(t, Today().IsValid())

	_, err = ParseDate("2026-02-30")
	require.Error(t, err)
}
