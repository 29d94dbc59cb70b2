package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 4, 27, hour, minute, 0, 0, time.UTC)
}

func TestDayLabel(t *testing.T) {
	// 2025-04-25 is a Friday
	assert.Equal(t, "FRI, APR 25", DayLabel("2025-04-25", 0))
	assert.Equal(t, "SAT, APR 26", DayLabel("2025-04-25", 1))
	assert.Equal(t, "THU, MAY 1", DayLabel("2025-04-25", 6))

	// no start date falls back to the day number
	assert.Equal(t, "DAY 1", DayLabel("", 0))
	assert.Equal(t, "DAY 4", DayLabel("not-a-date", 3))
}

func TestDayOfMonth(t *testing.T) {
	day, ok := DayOfMonth("2025-04-25", 0)
	assert.True(t, ok)
	assert.Equal(t, 25, day)

	// offset 6 crosses into May
	day, ok = DayOfMonth("2025-04-25", 6)
	assert.True(t, ok)
	assert.Equal(t, 1, day)

	_, ok = DayOfMonth("", 2)
	assert.False(t, ok)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 4, 20, 15, 30, 0, 0, time.UTC)

	days, ok := DaysUntil("2025-04-25", now)
	assert.True(t, ok)
	assert.Equal(t, 5, days)

	days, _ = DaysUntil("2025-04-20", now)
	assert.Equal(t, 0, days)

	days, _ = DaysUntil("2025-04-18", now)
	assert.Equal(t, -2, days)

	_, ok = DaysUntil("", now)
	assert.False(t, ok)
}

func TestIsTripDayToday(t *testing.T) {
	now := time.Date(2025, 4, 27, 9, 0, 0, 0, time.UTC)

	assert.True(t, IsTripDayToday("2025-04-25", 3, now))
	assert.False(t, IsTripDayToday("2025-04-25", 2, now))
	assert.False(t, IsTripDayToday("", 1, now))
}

func TestIsOngoingWithNextActivity(t *testing.T) {
	assert.True(t, IsOngoing("10:00", "11:00", at(10, 0)))
	assert.True(t, IsOngoing("10:00", "11:00", at(10, 59)))

	// half-open interval: the end minute is exclusive
	assert.False(t, IsOngoing("10:00", "11:00", at(11, 0)))
	assert.False(t, IsOngoing("10:00", "11:00", at(9, 59)))
}

func TestIsOngoingDefaultWindow(t *testing.T) {
	// without a next activity a 120-minute window applies
	assert.True(t, IsOngoing("10:00", "", at(11, 59)))
	assert.False(t, IsOngoing("10:00", "", at(12, 0)))
}

func TestIsOngoingInvertedInterval(t *testing.T) {
	// a next activity earlier than this one never wraps past midnight
	assert.False(t, IsOngoing("23:00", "01:00", at(23, 30)))
	assert.False(t, IsOngoing("23:00", "01:00", at(0, 30)))
}

func TestIsOngoingMalformedTime(t *testing.T) {
	assert.False(t, IsOngoing("", "", at(10, 0)))
	assert.False(t, IsOngoing("25:00", "", at(10, 0)))
	assert.False(t, IsOngoing("10:00", "nope", at(10, 30)))
}
